package models

import "time"

// PaymentCategory is a named fee/fine template used to batch-generate
// ledger entries. It is a catalog only: free-text categories on payments
// and expenditures are never checked against it.
type PaymentCategory struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Type              PaymentType `json:"type"`
	Amount            float64     `json:"amount"`
	ApplicableClasses []string    `json:"applicable_classes"`
	IsAutoAssign      bool        `json:"is_auto_assign"`
	IsActive          bool        `json:"is_active"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
