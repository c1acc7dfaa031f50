package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumByEmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, SumBy(nil, Any))
	assert.Equal(t, 0.0, SumBy([]Transaction{}, Any))
}

func TestSumByPartition(t *testing.T) {
	txs := []Transaction{
		{Amount: 500, TransactionType: TransactionIncome, PaymentType: "fee"},
		{Amount: 200, TransactionType: TransactionIncome, PaymentType: "fine"},
		{Amount: 300, TransactionType: TransactionIncome, PaymentType: "fee"},
	}

	fees := SumBy(txs, IsFee)
	fines := SumBy(txs, IsFine)
	assert.Equal(t, 800.0, fees)
	assert.Equal(t, 200.0, fines)

	// Every item is exactly one of fee/fine, so the parts cover the whole.
	assert.Equal(t, SumBy(txs, Any), fees+fines)
}

func TestGroupSum(t *testing.T) {
	txs := []Transaction{
		{Amount: 100, Category: "Library"},
		{Amount: 50, Category: "Library"},
		{Amount: 75, Category: ""},
	}

	groups := GroupSum(txs, ByCategory)
	require.Len(t, groups, 2)
	assert.Equal(t, Bucket{Amount: 150, Count: 2}, groups["Library"])
	assert.Equal(t, Bucket{Amount: 75, Count: 1}, groups["Others"])
}

func TestGroupSumNilInput(t *testing.T) {
	groups := GroupSum(nil, ByCategory)
	assert.Empty(t, groups)
}

func TestBreakdownByAmountOrder(t *testing.T) {
	rows := BreakdownByAmount(map[string]Bucket{
		"Sports":  {Amount: 300, Count: 1},
		"Library": {Amount: 900, Count: 3},
		"Lab":     {Amount: 300, Count: 2},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, "Library", rows[0].Category)
	// Equal amounts break ties on category name.
	assert.Equal(t, "Lab", rows[1].Category)
	assert.Equal(t, "Sports", rows[2].Category)
}

func TestSortCategoriesOthersLast(t *testing.T) {
	names := []string{"Others", "Library", "Exam", "Sports"}
	SortCategoriesOthersLast(names)
	assert.Equal(t, []string{"Exam", "Library", "Sports", "Others"}, names)
}

func TestNormalizeAmount(t *testing.T) {
	v, err := NormalizeAmount(150.5)
	require.NoError(t, err)
	assert.Equal(t, 150.5, v)

	_, err = NormalizeAmount(0)
	assert.Error(t, err)

	_, err = NormalizeAmount(-10)
	assert.Error(t, err)

	_, err = NormalizeAmount(math.NaN())
	assert.Error(t, err)

	_, err = NormalizeAmount(math.Inf(1))
	assert.Error(t, err)
}
