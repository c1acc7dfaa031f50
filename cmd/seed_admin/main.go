package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/config"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/database"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/auth"
)

func main() {
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	name := flag.String("name", "Administrator", "admin display name")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("email and password are required")
	}

	config.Load()
	db := config.GetDB()
	defer db.Close()

	count, err := database.CountAdmins(db)
	if err != nil {
		log.Fatal("Failed to check existing admins:", err)
	}
	if count > 0 {
		log.Fatal("An admin account already exists; seeding is only for an empty system")
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := &models.Admin{Email: *email, Name: *name}
	if err := database.CreateAdmin(db, admin, hashed); err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	fmt.Printf("Admin created: %s (%s)\n", admin.Name, admin.Email)
}
