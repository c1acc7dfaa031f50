package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/database"
)

// StartOTPSweeper runs a background loop clearing expired password-reset
// codes so a stale OTP can never be verified later.
func StartOTPSweeper(db *sql.DB) {
	go func() {
		log.Println("OTP sweeper started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			cleared, err := database.ClearExpiredOTPs(db)
			if err != nil {
				log.Printf("Error clearing expired OTPs: %v", err)
				continue
			}
			if cleared > 0 {
				log.Printf("Cleared %d expired password-reset OTPs", cleared)
			}
		}
	}()
}
