package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/apperr"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/config"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/database"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/auth"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/categories"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/expenditures"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/ledger"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/reports"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/students"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/services"
)

// customErrorHandler maps application errors to JSON responses. Internal
// causes are logged but never leaked to the client.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var appErr *apperr.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		code = apperr.StatusCode(appErr.Kind)
		message = appErr.Message
		if appErr.Err != nil {
			log.Printf("%s: %s: %v", appErr.Kind, appErr.Message, appErr.Err)
		}
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	default:
		log.Printf("unhandled error: %v", err)
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func main() {
	config.Load()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Sweep expired password-reset OTPs in the background
	services.StartOTPSweeper(config.GetDB())

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	})

	auth.SetupAuthRoutes(app)
	students.SetupStudentsRoutes(app)
	expenditures.SetupExpendituresRoutes(app)
	categories.SetupCategoriesRoutes(app)
	ledger.SetupLedgerRoutes(app)
	reports.SetupReportsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	})

	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
