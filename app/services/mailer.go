package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/config"
)

// ReceiptFacts carries everything the receipt mail mentions.
type ReceiptFacts struct {
	StudentName   string
	PRN           string
	Amount        float64
	Type          string
	Category      string
	ReceiptNumber string
	Date          time.Time
}

func sendMail(to, subject, body string) error {
	cfg := config.AppConfig.SMTP
	if cfg.Username == "" || cfg.Password == "" {
		return fmt.Errorf("smtp credentials not configured")
	}

	msg := strings.Join([]string{
		"From: " + cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	return smtp.SendMail(addr, auth, cfg.From, []string{to}, []byte(msg))
}

// SendReceipt delivers a payment receipt synchronously. Most callers want
// DispatchReceipt instead.
func SendReceipt(to string, facts ReceiptFacts) error {
	subject := fmt.Sprintf("Payment Receipt %s", facts.ReceiptNumber)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour %s payment has been recorded.\n\nReceipt Number: %s\nPRN: %s\nCategory: %s\nAmount: %.2f\nDate: %s\n\nThank you.",
		facts.StudentName, facts.Type, facts.ReceiptNumber, facts.PRN,
		facts.Category, facts.Amount, facts.Date.Format("2006-01-02"),
	)
	return sendMail(to, subject, body)
}

// DispatchReceipt sends the receipt in an unsupervised goroutine. A
// failure is logged and never reaches the caller: the payment is already
// persisted, and receipt delivery must not affect its outcome.
func DispatchReceipt(to string, facts ReceiptFacts) {
	if to == "" {
		log.Printf("Skipping receipt %s: student has no email", facts.ReceiptNumber)
		return
	}
	go func() {
		if err := SendReceipt(to, facts); err != nil {
			log.Printf("Failed to send receipt %s to %s: %v", facts.ReceiptNumber, to, err)
		}
	}()
}

// SendOTP delivers a password-reset code. Unlike receipts this is
// synchronous: the reset flow rolls back when the mail cannot be sent.
func SendOTP(to, otp string) error {
	body := fmt.Sprintf(
		"Your password reset code is %s.\n\nIt expires in 10 minutes. If you did not request a reset, ignore this email.",
		otp,
	)
	return sendMail(to, "Password Reset Code", body)
}
