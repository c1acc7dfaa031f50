package models

import "time"

// PaymentType distinguishes the two payment subtypes sharing one record shape.
type PaymentType string

const (
	PaymentTypeFee  PaymentType = "fee"
	PaymentTypeFine PaymentType = "fine"
)

// Student is the owning aggregate for its payment records. PRN is unique
// and stored uppercase; lookups normalize before comparing.
type Student struct {
	ID           string     `json:"id"`
	PRN          string     `json:"prn"`
	Name         string     `json:"name"`
	Year         string     `json:"year,omitempty"`
	Division     string     `json:"division,omitempty"`
	AcademicYear string     `json:"academic_year,omitempty"`
	Semester     string     `json:"semester,omitempty"`
	RollNo       string     `json:"roll_no,omitempty"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Payments     []*StudentPayment `json:"payments,omitempty"`
}

// StudentPayment is a fee or fine recorded against one student. Records are
// append-only; only the paid flag and paid date are ever mutated.
type StudentPayment struct {
	ID            string      `json:"id"`
	StudentID     string      `json:"student_id"`
	Amount        float64     `json:"amount"`
	Type          PaymentType `json:"type"`
	Category      string      `json:"category"`
	Reason        string      `json:"reason,omitempty"`
	ReceiptNumber string      `json:"receipt_number"`
	Date          time.Time   `json:"date"`
	IsPaid        bool        `json:"is_paid"`
	PaidDate      *time.Time  `json:"paid_date,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// IsFee reports whether the payment is a scheduled charge.
func (p *StudentPayment) IsFee() bool {
	return p.Type == PaymentTypeFee
}

// IsFine reports whether the payment is a penalty.
func (p *StudentPayment) IsFine() bool {
	return p.Type == PaymentTypeFine
}
