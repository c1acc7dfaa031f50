package models

import "time"

// Expenditure is a standalone outgoing record, unrelated to any student.
type Expenditure struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Department    string    `json:"department,omitempty"`
	Date          time.Time `json:"date"`
	ReceiptNumber string    `json:"receipt_number,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	AddedBy       string    `json:"added_by,omitempty"`
	AddedByName   string    `json:"added_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
