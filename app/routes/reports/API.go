package reports

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/apperr"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/config"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/database"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/finance"
)

// GetStudentSummaryAPI reports per-student fee and fine totals computed
// from the embedded payment records.
func GetStudentSummaryAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	students, err := database.GetStudentsWithFilters(db, database.StudentFilters{
		Search:   c.Query("search"),
		Year:     c.Query("year"),
		Division: c.Query("division"),
		Status:   "active",
	})
	if err != nil {
		return apperr.Internal("Failed to fetch students", err)
	}
	if err := database.AttachPayments(db, students); err != nil {
		return apperr.Internal("Failed to fetch payments", err)
	}

	rows := finance.BuildStudentSummaries(students, c.Query("type"))
	finance.SortStudentSummaries(rows, c.Query("sort_by", "total_amount"), c.Query("sort_order", "desc"))

	var totalCollected float64
	for _, row := range rows {
		totalCollected += row.TotalAmount
	}

	pg := finance.NewPagination(c.QueryInt("page", 1), c.QueryInt("limit", finance.DefaultPageLimit), len(rows))
	start, end := pg.Bounds()

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"students":   rows[start:end],
			"pagination": pg,
			"totals": fiber.Map{
				"total_collected": totalCollected,
				"student_count":   len(rows),
			},
		},
	})
}

// GetMonthlyReportAPI buckets a year's income and expenditure by calendar
// month. Every month appears, zero-valued when silent.
func GetMonthlyReportAPI(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	db := config.GetDB()

	students, err := database.GetActiveStudentsWithPayments(db)
	if err != nil {
		return apperr.Internal("Failed to fetch students", err)
	}
	expenditures, err := database.GetAllExpenditures(db)
	if err != nil {
		return apperr.Internal("Failed to fetch expenditures", err)
	}

	rows, totals := finance.MonthlyReport(
		finance.IncomeTransactions(students),
		finance.ExpenditureTransactions(expenditures),
		year,
	)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"year":   year,
			"months": rows,
			"totals": totals,
		},
	})
}

// GetTransactionsAPI merges student payments and standalone expenditures
// into one reconciled, filterable, globally sorted sequence.
func GetTransactionsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	students, err := database.GetActiveStudentsWithPayments(db)
	if err != nil {
		return apperr.Internal("Failed to fetch students", err)
	}
	expenditures, err := database.GetAllExpenditures(db)
	if err != nil {
		return apperr.Internal("Failed to fetch expenditures", err)
	}

	income := finance.IncomeTransactions(students)
	expenditureTxs := finance.ExpenditureTransactions(expenditures)

	f := finance.TransactionFilter{
		AmountMin:   c.QueryFloat("amount_min", 0),
		AmountMax:   c.QueryFloat("amount_max", 0),
		Category:    c.Query("category"),
		PaymentType: c.Query("payment_type"),
		Division:    c.Query("division"),
		Year:        c.Query("year"),
		Search:      c.Query("search"),
	}
	if from := c.Query("date_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			f.DateFrom = t
		}
	}
	if to := c.Query("date_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			f.DateTo = t
		}
	}

	transactionType := c.Query("transaction_type")
	if transactionType == finance.TransactionIncome {
		expenditureTxs = nil
	}
	if transactionType == finance.TransactionExpenditure {
		income = nil
	}

	// Facets come from the unfiltered dataset so narrowing one filter
	// never hides the other options.
	facets := finance.Facets(append(append([]finance.Transaction{}, income...), expenditureTxs...))

	page, limit := c.QueryInt("page", 1), c.QueryInt("limit", finance.DefaultPageLimit)
	txs, totals, pg := finance.Reconcile(income, expenditureTxs, f,
		c.Query("sort_by", "date"), c.Query("sort_order", "desc"), page, limit)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"transactions": txs,
			"totals":       totals,
			"pagination":   pg,
			"facets":       facets,
		},
	})
}

// GetExpenditureReportAPI is the detailed expenditure report: the
// filtered records plus a category breakdown and grand total over the
// whole filtered set, not just the returned page.
func GetExpenditureReportAPI(c *fiber.Ctx) error {
	filters := database.ExpenditureFilters{
		Year:      c.QueryInt("year", 0),
		Month:     c.QueryInt("month", 0),
		Category:  c.Query("category"),
		AmountMin: c.QueryFloat("amount_min", 0),
		AmountMax: c.QueryFloat("amount_max", 0),
		SortBy:    c.Query("sort_by", "date"),
		SortOrder: c.Query("sort_order", "desc"),
	}
	if from := c.Query("date_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filters.DateFrom = t
		}
	}
	if to := c.Query("date_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filters.DateTo = t
		}
	}

	expenditures, err := database.GetExpendituresWithFilters(config.GetDB(), filters)
	if err != nil {
		return apperr.Internal("Failed to fetch expenditures", err)
	}

	txs := finance.ExpenditureTransactions(expenditures)
	breakdown := finance.BreakdownByAmount(finance.GroupSum(txs, finance.ByCategory))
	total := finance.SumBy(txs, finance.Any)

	pg := finance.NewPagination(c.QueryInt("page", 1), c.QueryInt("limit", finance.DefaultPageLimit), len(expenditures))
	start, end := pg.Bounds()

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"expenditures": expenditures[start:end],
			"breakdown":    breakdown,
			"grand_total":  total,
			"count":        len(txs),
			"pagination":   pg,
		},
	})
}

// GetDashboardAPI is the financial overview: lifetime totals, surplus or
// deficit status, and the current year's monthly trend.
func GetDashboardAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	students, err := database.GetActiveStudentsWithPayments(db)
	if err != nil {
		return apperr.Internal("Failed to fetch students", err)
	}
	expenditures, err := database.GetAllExpenditures(db)
	if err != nil {
		return apperr.Internal("Failed to fetch expenditures", err)
	}

	income := finance.IncomeTransactions(students)
	expenditureTxs := finance.ExpenditureTransactions(expenditures)

	totals := finance.ComputeTotals(append(append([]finance.Transaction{}, income...), expenditureTxs...))
	months, yearTotals := finance.MonthlyReport(income, expenditureTxs, time.Now().Year())

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_income":      totals.TotalIncome,
			"total_expenditure": totals.TotalExpenditure,
			"net_balance":       totals.NetBalance,
			"status":            finance.FinancialStatus(totals.NetBalance),
			"total_fees":        finance.SumBy(income, finance.IsFee),
			"total_fines":       finance.SumBy(income, finance.IsFine),
			"student_count":     len(students),
			"current_year":      fiber.Map{"months": months, "totals": yearTotals},
		},
	})
}
