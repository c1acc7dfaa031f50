package finance

import (
	"sort"
	"strconv"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

// MonthlyRow is one calendar month of a yearly report. Months with no
// activity are present with zero values.
type MonthlyRow struct {
	Month       int     `json:"month"`
	MonthName   string  `json:"month_name"`
	Income      float64 `json:"income"`
	Expenditure float64 `json:"expenditure"`
	Balance     float64 `json:"balance"`
}

// YearTotals aggregates the twelve monthly balances.
type YearTotals struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpenditure float64 `json:"total_expenditure"`
	TotalBalance     float64 `json:"total_balance"`
	Status           string  `json:"status"`
}

var monthNames = []string{"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

// FinancialStatus labels a balance as surplus or deficit.
func FinancialStatus(balance float64) string {
	if balance >= 0 {
		return "surplus"
	}
	return "deficit"
}

// MonthlyReport buckets the given year's income and expenditure by
// calendar month. Every month 1-12 appears exactly once.
func MonthlyReport(income, expenditure []Transaction, year int) ([]MonthlyRow, YearTotals) {
	inYear := func(tx Transaction) bool {
		return sortDate(tx).Year() == year
	}
	byMonth := func(tx Transaction) string {
		return strconv.Itoa(int(sortDate(tx).Month()))
	}

	incomeGroups := GroupSum(Where(income, inYear), byMonth)
	expenditureGroups := GroupSum(Where(expenditure, inYear), byMonth)

	rows := make([]MonthlyRow, 12)
	var totals YearTotals
	for m := 1; m <= 12; m++ {
		key := strconv.Itoa(m)
		row := MonthlyRow{
			Month:       m,
			MonthName:   monthNames[m-1],
			Income:      incomeGroups[key].Amount,
			Expenditure: expenditureGroups[key].Amount,
		}
		row.Balance = row.Income - row.Expenditure
		rows[m-1] = row

		totals.TotalIncome += row.Income
		totals.TotalExpenditure += row.Expenditure
		totals.TotalBalance += row.Balance
	}
	totals.Status = FinancialStatus(totals.TotalBalance)
	return rows, totals
}

// Where keeps the transactions matching an arbitrary predicate.
func Where(txs []Transaction, pred func(Transaction) bool) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if pred(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// StudentSummary is one row of the student-payment summary report.
type StudentSummary struct {
	PRN           string  `json:"prn"`
	Name          string  `json:"name"`
	Year          string  `json:"year,omitempty"`
	Division      string  `json:"division,omitempty"`
	RollNo        string  `json:"roll_no,omitempty"`
	TotalFeesPaid float64 `json:"total_fees_paid"`
	TotalFinePaid float64 `json:"total_fine_paid"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentCount  int     `json:"payment_count"`
}

// BuildStudentSummaries computes per-student fee and fine totals from the
// embedded payment records. When typeFilter narrows to "fee" or "fine",
// students with nothing in that bucket are dropped.
func BuildStudentSummaries(students []*models.Student, typeFilter string) []StudentSummary {
	var rows []StudentSummary
	for _, s := range students {
		txs := IncomeTransactions([]*models.Student{s})
		row := StudentSummary{
			PRN:           s.PRN,
			Name:          s.Name,
			Year:          s.Year,
			Division:      s.Division,
			RollNo:        s.RollNo,
			TotalFeesPaid: SumBy(txs, IsFee),
			TotalFinePaid: SumBy(txs, IsFine),
			PaymentCount:  len(txs),
		}
		row.TotalAmount = row.TotalFeesPaid + row.TotalFinePaid

		if typeFilter == "fee" && row.TotalFeesPaid == 0 {
			continue
		}
		if typeFilter == "fine" && row.TotalFinePaid == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// SortStudentSummaries orders summary rows. sortBy is "roll_no" (raw
// string comparison), "name", or "total_amount" (the default); order
// defaults to descending. The sort is stable, so rows equal on the sort
// key keep their source order.
func SortStudentSummaries(rows []StudentSummary, sortBy, order string) {
	less := func(a, b StudentSummary) bool {
		switch sortBy {
		case "roll_no":
			return a.RollNo < b.RollNo
		case "name":
			return a.Name < b.Name
		default:
			return a.TotalAmount < b.TotalAmount
		}
	}
	asc := order == "asc"
	sort.SliceStable(rows, func(i, j int) bool {
		if asc {
			return less(rows[i], rows[j])
		}
		return less(rows[j], rows[i])
	})
}
