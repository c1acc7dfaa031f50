package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

func TestLedgerStatus(t *testing.T) {
	assert.Equal(t, models.LedgerStatusUnpaid, LedgerStatus(0, 1000))
	assert.Equal(t, models.LedgerStatusPartial, LedgerStatus(400, 1000))
	assert.Equal(t, models.LedgerStatusPaid, LedgerStatus(1000, 1000))

	// Overpayment clamps to paid.
	assert.Equal(t, models.LedgerStatusPaid, LedgerStatus(1500, 1000))
}

func TestLedgerStatusMonotonic(t *testing.T) {
	expected := 500.0
	paid := 0.0
	reachedPaid := false
	for _, amount := range []float64{200, 300, 100} {
		paid += amount
		status := LedgerStatus(paid, expected)
		if reachedPaid {
			assert.Equal(t, models.LedgerStatusPaid, status)
		}
		if status == models.LedgerStatusPaid {
			reachedPaid = true
		}
	}
	assert.True(t, reachedPaid)
}

func TestLedgerPaidTotal(t *testing.T) {
	payments := []*models.LedgerPayment{
		{Amount: 200},
		{Amount: 150},
	}
	assert.Equal(t, 350.0, LedgerPaidTotal(payments))
	assert.Equal(t, 0.0, LedgerPaidTotal(nil))
}
