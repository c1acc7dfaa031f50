package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleStudents() []*models.Student {
	return []*models.Student{
		{
			PRN: "TE123", Name: "Asha Kulkarni", Year: "TE", Division: "A", RollNo: "42",
			Payments: []*models.StudentPayment{
				{Amount: 500, Type: models.PaymentTypeFee, Category: "Tuition", Date: date(2024, 3, 10), ReceiptNumber: "RCP-20240310-00001", CreatedAt: date(2024, 3, 10)},
				{Amount: 200, Type: models.PaymentTypeFine, Category: "Library", Date: date(2024, 5, 2), ReceiptNumber: "RCP-20240502-00002", CreatedAt: date(2024, 5, 2)},
				{Amount: 300, Type: models.PaymentTypeFee, Category: "Exam", Date: date(2024, 7, 15), ReceiptNumber: "RCP-20240715-00003", CreatedAt: date(2024, 7, 15)},
			},
		},
		{
			PRN: "BE456", Name: "Rohan Patil", Year: "BE", Division: "B", RollNo: "7A",
			Payments: []*models.StudentPayment{
				{Amount: 1000, Type: models.PaymentTypeFee, Category: "Tuition", Date: date(2024, 6, 1), CreatedAt: date(2024, 6, 1)},
			},
		},
	}
}

func sampleExpenditures() []*models.Expenditure {
	return []*models.Expenditure{
		{Amount: 400, Description: "Lab equipment", Category: "Lab", Date: date(2024, 4, 20), CreatedAt: date(2024, 4, 20)},
		{Amount: 250, Description: "Stationery order", Category: "Office", Date: date(2024, 6, 5), CreatedAt: date(2024, 6, 5)},
	}
}

func TestIncomeTransactionsCarryStudentIdentity(t *testing.T) {
	txs := IncomeTransactions(sampleStudents())
	require.Len(t, txs, 4)

	for _, tx := range txs {
		assert.Equal(t, TransactionIncome, tx.TransactionType)
		assert.NotEmpty(t, tx.StudentPRN)
	}
	assert.Equal(t, "TE123", txs[0].StudentPRN)
	assert.Equal(t, "A", txs[0].StudentDivision)
}

func TestExpenditureTransactionsHaveNoStudent(t *testing.T) {
	txs := ExpenditureTransactions(sampleExpenditures())
	require.Len(t, txs, 2)
	for _, tx := range txs {
		assert.Equal(t, TransactionExpenditure, tx.TransactionType)
		assert.Empty(t, tx.StudentPRN)
	}
}

func TestFilterDateAndAmountRange(t *testing.T) {
	txs := IncomeTransactions(sampleStudents())

	got := Filter(txs, TransactionFilter{DateFrom: date(2024, 5, 1), DateTo: date(2024, 6, 30)})
	require.Len(t, got, 2)

	got = Filter(txs, TransactionFilter{AmountMin: 300, AmountMax: 600})
	require.Len(t, got, 2)
	for _, tx := range got {
		assert.GreaterOrEqual(t, tx.Amount, 300.0)
		assert.LessOrEqual(t, tx.Amount, 600.0)
	}
}

func TestFilterSearchMatchesSeveralFields(t *testing.T) {
	txs := IncomeTransactions(sampleStudents())

	assert.Len(t, Filter(txs, TransactionFilter{Search: "te123"}), 3)
	assert.Len(t, Filter(txs, TransactionFilter{Search: "rohan"}), 1)
	assert.Len(t, Filter(txs, TransactionFilter{Search: "RCP-20240502"}), 1)
}

func TestDivisionFilterSuppressesExpenditures(t *testing.T) {
	income := IncomeTransactions(sampleStudents())
	expenditure := ExpenditureTransactions(sampleExpenditures())

	page, totals, pg := Reconcile(income, expenditure, TransactionFilter{Division: "A"}, "date", "asc", 1, 50)
	require.Len(t, page, 3)
	for _, tx := range page {
		assert.Equal(t, TransactionIncome, tx.TransactionType)
	}
	assert.Equal(t, 1000.0, totals.TotalIncome)
	assert.Equal(t, 0.0, totals.TotalExpenditure)
	assert.Equal(t, 3, pg.Total)
}

func TestReconcileGlobalSortAndTotals(t *testing.T) {
	income := IncomeTransactions(sampleStudents())
	expenditure := ExpenditureTransactions(sampleExpenditures())

	page, totals, pg := Reconcile(income, expenditure, TransactionFilter{}, "date", "asc", 1, 100)
	require.Len(t, page, 6)
	for i := 1; i < len(page); i++ {
		assert.False(t, sortDate(page[i]).Before(sortDate(page[i-1])))
	}

	assert.Equal(t, 2000.0, totals.TotalIncome)
	assert.Equal(t, 650.0, totals.TotalExpenditure)
	assert.Equal(t, 1350.0, totals.NetBalance)
	assert.False(t, pg.HasNextPage)
}

func TestReconcileTotalsIgnorePagination(t *testing.T) {
	income := IncomeTransactions(sampleStudents())
	expenditure := ExpenditureTransactions(sampleExpenditures())

	page, totals, pg := Reconcile(income, expenditure, TransactionFilter{}, "date", "desc", 1, 2)
	require.Len(t, page, 2)
	// Totals cover the filtered whole, not the returned page.
	assert.Equal(t, 2000.0, totals.TotalIncome)
	assert.Equal(t, 650.0, totals.TotalExpenditure)
	assert.Equal(t, 6, pg.Total)
	assert.True(t, pg.HasNextPage)
}

func TestPaginationReproducesFullSet(t *testing.T) {
	income := IncomeTransactions(sampleStudents())
	expenditure := ExpenditureTransactions(sampleExpenditures())

	var all []Transaction
	for pageNum := 1; ; pageNum++ {
		page, _, pg := Reconcile(income, expenditure, TransactionFilter{}, "date", "asc", pageNum, 2)
		all = append(all, page...)
		if !pg.HasNextPage {
			break
		}
	}

	full, _, _ := Reconcile(income, expenditure, TransactionFilter{}, "date", "asc", 1, 100)
	assert.Equal(t, full, all)
}

func TestSortTransactionsAmountDesc(t *testing.T) {
	txs := []Transaction{{Amount: 10}, {Amount: 30}, {Amount: 20}}
	SortTransactions(txs, "amount", "desc")
	assert.Equal(t, []float64{30, 20, 10}, []float64{txs[0].Amount, txs[1].Amount, txs[2].Amount})
}

func TestSortTransactionsDescTiesKeepSourceOrder(t *testing.T) {
	d := date(2024, 5, 1)
	txs := []Transaction{
		{Amount: 100, Date: d, CreatedAt: d, ReceiptNumber: "first"},
		{Amount: 100, Date: d, CreatedAt: d, ReceiptNumber: "second"},
		{Amount: 100, Date: d, CreatedAt: d, ReceiptNumber: "third"},
	}

	SortTransactions(txs, "amount", "desc")
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{txs[0].ReceiptNumber, txs[1].ReceiptNumber, txs[2].ReceiptNumber})

	SortTransactions(txs, "date", "desc")
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{txs[0].ReceiptNumber, txs[1].ReceiptNumber, txs[2].ReceiptNumber})
}

func TestSortDateFallsBackToCreatedAt(t *testing.T) {
	txs := []Transaction{
		{CreatedAt: date(2024, 9, 1)},
		{Date: date(2024, 1, 1), CreatedAt: date(2024, 12, 1)},
	}
	SortTransactions(txs, "date", "asc")
	assert.Equal(t, date(2024, 1, 1), txs[0].Date)
}

func TestFacetsFromUnfilteredSet(t *testing.T) {
	income := IncomeTransactions(sampleStudents())
	expenditure := ExpenditureTransactions(sampleExpenditures())
	all := append(append([]Transaction{}, income...), expenditure...)

	opts := Facets(all)
	assert.Equal(t, []string{"Exam", "Lab", "Library", "Office", "Tuition"}, opts.Categories)
	assert.Equal(t, []string{"BE", "TE"}, opts.Years)
	assert.Equal(t, []string{"A", "B"}, opts.Divisions)
}
