package finance

import (
	"math"
	"sort"
	"strings"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/apperr"
)

// Bucket is one group's accumulated amount and record count.
type Bucket struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// SumBy totals the amount of the transactions matching pred. Empty or nil
// input yields 0.
func SumBy(txs []Transaction, pred func(Transaction) bool) float64 {
	var total float64
	for _, tx := range txs {
		if pred(tx) {
			total += tx.Amount
		}
	}
	return total
}

// GroupSum buckets transactions by the given key. The returned map is
// unordered; presentation order is the caller's responsibility.
func GroupSum(txs []Transaction, key func(Transaction) string) map[string]Bucket {
	groups := make(map[string]Bucket)
	for _, tx := range txs {
		k := key(tx)
		b := groups[k]
		b.Amount += tx.Amount
		b.Count++
		groups[k] = b
	}
	return groups
}

// Common predicates.

func IsFee(tx Transaction) bool {
	return tx.PaymentType == "fee"
}

func IsFine(tx Transaction) bool {
	return tx.PaymentType == "fine"
}

func IsIncome(tx Transaction) bool {
	return tx.TransactionType == TransactionIncome
}

func IsExpenditure(tx Transaction) bool {
	return tx.TransactionType == TransactionExpenditure
}

func Any(Transaction) bool {
	return true
}

// ByCategory is a GroupSum key over the free-text category, with blank
// categories folded into "Others".
func ByCategory(tx Transaction) string {
	if tx.Category == "" {
		return DefaultCategory
	}
	return tx.Category
}

// DefaultCategory is applied when a payment carries no category. It also
// sorts last in category listings.
const DefaultCategory = "Others"

// CategoryBreakdown is one row of a per-category report.
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// BreakdownByAmount flattens grouped sums into rows ordered by descending
// amount, category name breaking ties.
func BreakdownByAmount(groups map[string]Bucket) []CategoryBreakdown {
	rows := make([]CategoryBreakdown, 0, len(groups))
	for name, b := range groups {
		rows = append(rows, CategoryBreakdown{Category: name, Amount: b.Amount, Count: b.Count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// SortCategoriesOthersLast orders category names lexicographically with
// "Others" always at the end.
func SortCategoriesOthersLast(names []string) {
	sort.Slice(names, func(i, j int) bool {
		if names[i] == DefaultCategory {
			return false
		}
		if names[j] == DefaultCategory {
			return true
		}
		return names[i] < names[j]
	})
}

// NormalizeAmount enforces the shared write-path policy: the amount must be
// a finite number greater than zero.
func NormalizeAmount(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperr.Validation("Amount must be a valid number")
	}
	if v <= 0 {
		return 0, apperr.Validation("Amount must be greater than zero")
	}
	return v, nil
}

// CleanText trims surrounding whitespace from a free-text field.
func CleanText(s string) string {
	return strings.TrimSpace(s)
}
