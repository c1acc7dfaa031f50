package finance

import (
	"sort"
	"strings"
	"time"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

const (
	TransactionIncome      = "income"
	TransactionExpenditure = "expenditure"
)

// Transaction is the unified row shape both payment sources reconcile
// into. Student identity fields are set only on income rows.
type Transaction struct {
	Date            time.Time `json:"date"`
	TransactionType string    `json:"transaction_type"`
	PaymentType     string    `json:"payment_type,omitempty"`
	Amount          float64   `json:"amount"`
	Category        string    `json:"category"`
	Description     string    `json:"description,omitempty"`
	ReceiptNumber   string    `json:"receipt_number,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	StudentPRN      string `json:"student_prn,omitempty"`
	StudentName     string `json:"student_name,omitempty"`
	StudentYear     string `json:"student_year,omitempty"`
	StudentDivision string `json:"student_division,omitempty"`
	StudentRollNo   string `json:"student_roll_no,omitempty"`
}

// IncomeTransactions flattens every student's payment records into income
// rows carrying the owning student's identity.
func IncomeTransactions(students []*models.Student) []Transaction {
	var txs []Transaction
	for _, s := range students {
		for _, p := range s.Payments {
			txs = append(txs, Transaction{
				Date:            p.Date,
				TransactionType: TransactionIncome,
				PaymentType:     string(p.Type),
				Amount:          p.Amount,
				Category:        p.Category,
				Description:     p.Reason,
				ReceiptNumber:   p.ReceiptNumber,
				CreatedAt:       p.CreatedAt,
				StudentPRN:      s.PRN,
				StudentName:     s.Name,
				StudentYear:     s.Year,
				StudentDivision: s.Division,
				StudentRollNo:   s.RollNo,
			})
		}
	}
	return txs
}

// ExpenditureTransactions converts standalone expenditure records into
// expenditure rows with no student identity.
func ExpenditureTransactions(expenditures []*models.Expenditure) []Transaction {
	var txs []Transaction
	for _, e := range expenditures {
		txs = append(txs, Transaction{
			Date:            e.Date,
			TransactionType: TransactionExpenditure,
			Amount:          e.Amount,
			Category:        e.Category,
			Description:     e.Description,
			ReceiptNumber:   e.ReceiptNumber,
			CreatedAt:       e.CreatedAt,
		})
	}
	return txs
}

// TransactionFilter is the canonical filter shape shared by the transaction
// report. Zero values mean "no constraint".
type TransactionFilter struct {
	DateFrom    time.Time
	DateTo      time.Time
	AmountMin   float64
	AmountMax   float64
	Category    string // case-insensitive substring match
	PaymentType string // fee | fine, income side only
	Division    string
	Year        string
	Search      string // name / PRN / roll no / receipt / description
}

// StudentScoped reports whether the filter carries a constraint that only
// a student-owned row can satisfy. Such a filter suppresses the
// expenditure side entirely.
func (f TransactionFilter) StudentScoped() bool {
	return f.Division != "" || f.Year != ""
}

// Matches applies the filter to one transaction. Filters are applied to
// each side before merging.
func (f TransactionFilter) Matches(tx Transaction) bool {
	if !f.DateFrom.IsZero() && tx.Date.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && tx.Date.After(f.DateTo) {
		return false
	}
	if f.AmountMin > 0 && tx.Amount < f.AmountMin {
		return false
	}
	if f.AmountMax > 0 && tx.Amount > f.AmountMax {
		return false
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(ByCategory(tx)), strings.ToLower(f.Category)) {
		return false
	}
	if f.PaymentType != "" && tx.PaymentType != f.PaymentType {
		return false
	}
	if f.Division != "" && !strings.EqualFold(tx.StudentDivision, f.Division) {
		return false
	}
	if f.Year != "" && !strings.EqualFold(tx.StudentYear, f.Year) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(tx.StudentName), q) &&
			!strings.Contains(strings.ToLower(tx.StudentPRN), q) &&
			!strings.Contains(strings.ToLower(tx.StudentRollNo), q) &&
			!strings.Contains(strings.ToLower(tx.ReceiptNumber), q) &&
			!strings.Contains(strings.ToLower(tx.Description), q) {
			return false
		}
	}
	return true
}

// Filter returns the transactions matching f, preserving input order.
func Filter(txs []Transaction, f TransactionFilter) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// sortDate resolves the effective sort timestamp: the payment date when
// present, falling back to the creation time.
func sortDate(tx Transaction) time.Time {
	if tx.Date.IsZero() {
		return tx.CreatedAt
	}
	return tx.Date
}

// SortTransactions orders the merged sequence once, globally. sortBy is
// "amount" or "date" (the default); order is "asc" or "desc" (the
// default). The sort is stable so equal rows keep their source order.
func SortTransactions(txs []Transaction, sortBy, order string) {
	less := func(a, b Transaction) bool {
		switch sortBy {
		case "amount":
			if a.Amount == b.Amount {
				return sortDate(a).Before(sortDate(b))
			}
			return a.Amount < b.Amount
		default:
			da, db := sortDate(a), sortDate(b)
			if da.Equal(db) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return da.Before(db)
		}
	}
	asc := order == "asc"
	// Descending swaps the operands so ties compare false both ways and
	// keep their source order under the stable sort.
	sort.SliceStable(txs, func(i, j int) bool {
		if asc {
			return less(txs[i], txs[j])
		}
		return less(txs[j], txs[i])
	})
}

// Totals are running sums over the filtered, unpaginated sets.
type Totals struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpenditure float64 `json:"total_expenditure"`
	NetBalance       float64 `json:"net_balance"`
}

// ComputeTotals sums both sides of an already-filtered merged sequence.
func ComputeTotals(txs []Transaction) Totals {
	t := Totals{
		TotalIncome:      SumBy(txs, IsIncome),
		TotalExpenditure: SumBy(txs, IsExpenditure),
	}
	t.NetBalance = t.TotalIncome - t.TotalExpenditure
	return t
}

// FacetOptions are the distinct filter values offered to narrow a report,
// computed from the unfiltered active dataset.
type FacetOptions struct {
	Categories []string `json:"categories"`
	Years      []string `json:"years"`
	Divisions  []string `json:"divisions"`
}

// Facets collects the available categories, years and divisions across
// both transaction sides. Categories sort alphabetically with "Others"
// last; years and divisions sort lexicographically.
func Facets(txs []Transaction) FacetOptions {
	catSet := make(map[string]bool)
	yearSet := make(map[string]bool)
	divSet := make(map[string]bool)
	for _, tx := range txs {
		catSet[ByCategory(tx)] = true
		if tx.StudentYear != "" {
			yearSet[tx.StudentYear] = true
		}
		if tx.StudentDivision != "" {
			divSet[tx.StudentDivision] = true
		}
	}
	opts := FacetOptions{
		Categories: setToSlice(catSet),
		Years:      setToSlice(yearSet),
		Divisions:  setToSlice(divSet),
	}
	SortCategoriesOthersLast(opts.Categories)
	sort.Strings(opts.Years)
	sort.Strings(opts.Divisions)
	return opts
}

func setToSlice(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

// Reconcile runs the full pipeline: per-side filtering, merge, one global
// sort, pagination over the merged sequence, and totals over the filtered
// unpaginated whole.
func Reconcile(income, expenditure []Transaction, f TransactionFilter, sortBy, order string, page, limit int) ([]Transaction, Totals, Pagination) {
	filteredIncome := Filter(income, f)

	var filteredExpenditure []Transaction
	if !f.StudentScoped() {
		// An expenditure has no student division or class to match.
		filteredExpenditure = Filter(expenditure, f)
	}

	merged := make([]Transaction, 0, len(filteredIncome)+len(filteredExpenditure))
	merged = append(merged, filteredIncome...)
	merged = append(merged, filteredExpenditure...)

	SortTransactions(merged, sortBy, order)
	totals := ComputeTotals(merged)

	pg := NewPagination(page, limit, len(merged))
	start, end := pg.Bounds()
	return merged[start:end], totals, pg
}
