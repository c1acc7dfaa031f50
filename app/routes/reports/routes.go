package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/auth"
)

func SetupReportsRoutes(app *fiber.App) {
	group := app.Group("/api/reports", auth.AuthMiddleware)

	group.Get("/summary", GetStudentSummaryAPI)
	group.Get("/monthly", GetMonthlyReportAPI)
	group.Get("/transactions", GetTransactionsAPI)
	group.Get("/expenditure", GetExpenditureReportAPI)
	group.Get("/dashboard", GetDashboardAPI)
}
