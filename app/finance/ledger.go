package finance

import "github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"

// LedgerStatus derives an entry's status from its paid total and expected
// amount. Overpayment clamps to paid; the excess stays on the record.
func LedgerStatus(paidTotal, expectedAmount float64) string {
	switch {
	case paidTotal <= 0:
		return models.LedgerStatusUnpaid
	case paidTotal < expectedAmount:
		return models.LedgerStatusPartial
	default:
		return models.LedgerStatusPaid
	}
}

// LedgerPaidTotal sums the payments applied to one entry.
func LedgerPaidTotal(payments []*models.LedgerPayment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}
