package models

import "time"

// Ledger entry statuses. Status is always derived from the applied
// payments, never stored as independently-settable truth.
const (
	LedgerStatusUnpaid  = "unpaid"
	LedgerStatusPartial = "partial"
	LedgerStatusPaid    = "paid"
)

// LedgerEntry is an expected-payment obligation for one student in one
// payment category within an academic year.
type LedgerEntry struct {
	ID             string           `json:"id"`
	StudentID      string           `json:"student_id"`
	CategoryID     string           `json:"category_id"`
	AcademicYear   string           `json:"academic_year"`
	ExpectedAmount float64          `json:"expected_amount"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	Payments       []*LedgerPayment `json:"payments,omitempty"`

	// Joined for display
	StudentPRN   string  `json:"student_prn,omitempty"`
	StudentName  string  `json:"student_name,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
	PaidTotal    float64 `json:"paid_total"`
	Status       string  `json:"status"`
}

// LedgerPayment is one payment applied against a ledger entry.
type LedgerPayment struct {
	ID      string    `json:"id"`
	EntryID string    `json:"entry_id"`
	Amount  float64   `json:"amount"`
	Mode    string    `json:"mode,omitempty"`
	Remarks string    `json:"remarks,omitempty"`
	Date    time.Time `json:"date"`
}
