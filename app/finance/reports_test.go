package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

func TestMonthlyReportEveryMonthPresent(t *testing.T) {
	income := IncomeTransactions(sampleStudents())
	expenditure := ExpenditureTransactions(sampleExpenditures())

	rows, totals := MonthlyReport(income, expenditure, 2024)
	require.Len(t, rows, 12)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Month)
	}

	// Months without activity stay zeroed.
	assert.Equal(t, MonthlyRow{Month: 1, MonthName: "January"}, rows[0])

	// The yearly balance equals the sum of the monthly balances.
	var sum float64
	for _, row := range rows {
		sum += row.Balance
	}
	assert.Equal(t, totals.TotalBalance, sum)
	assert.Equal(t, 2000.0, totals.TotalIncome)
	assert.Equal(t, 650.0, totals.TotalExpenditure)
	assert.Equal(t, "surplus", totals.Status)
}

func TestMonthlyReportEmptyYear(t *testing.T) {
	rows, totals := MonthlyReport(nil, nil, 2023)
	require.Len(t, rows, 12)
	assert.Equal(t, 0.0, totals.TotalBalance)
	assert.Equal(t, "surplus", totals.Status)
}

func TestFinancialStatus(t *testing.T) {
	assert.Equal(t, "surplus", FinancialStatus(3500))
	assert.Equal(t, "deficit", FinancialStatus(-1000))
}

func TestBuildStudentSummaries(t *testing.T) {
	rows := BuildStudentSummaries(sampleStudents(), "")
	require.Len(t, rows, 2)

	var te123 StudentSummary
	for _, row := range rows {
		if row.PRN == "TE123" {
			te123 = row
		}
	}
	assert.Equal(t, 800.0, te123.TotalFeesPaid)
	assert.Equal(t, 200.0, te123.TotalFinePaid)
	assert.Equal(t, 1000.0, te123.TotalAmount)
}

func TestBuildStudentSummariesTypeFilterDropsZeroBuckets(t *testing.T) {
	rows := BuildStudentSummaries(sampleStudents(), "fine")
	require.Len(t, rows, 1)
	assert.Equal(t, "TE123", rows[0].PRN)
}

func TestSortStudentSummaries(t *testing.T) {
	students := []*models.Student{
		{PRN: "A", Name: "Zoya", RollNo: "10"},
		{PRN: "B", Name: "Amit", RollNo: "9"},
	}
	students[0].Payments = []*models.StudentPayment{{Amount: 100, Type: models.PaymentTypeFee}}
	students[1].Payments = []*models.StudentPayment{{Amount: 500, Type: models.PaymentTypeFee}}

	rows := BuildStudentSummaries(students, "")

	// Default: total amount descending.
	SortStudentSummaries(rows, "", "")
	assert.Equal(t, "B", rows[0].PRN)

	// Roll numbers compare as raw strings, so "10" sorts before "9".
	SortStudentSummaries(rows, "roll_no", "asc")
	assert.Equal(t, "10", rows[0].RollNo)

	SortStudentSummaries(rows, "name", "asc")
	assert.Equal(t, "Amit", rows[0].Name)
}

func TestSortStudentSummariesDescTiesKeepSourceOrder(t *testing.T) {
	rows := []StudentSummary{
		{PRN: "A", TotalAmount: 300},
		{PRN: "B", TotalAmount: 300},
		{PRN: "C", TotalAmount: 300},
	}

	SortStudentSummaries(rows, "", "desc")
	assert.Equal(t, []string{"A", "B", "C"}, []string{rows[0].PRN, rows[1].PRN, rows[2].PRN})
}
