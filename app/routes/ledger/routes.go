package ledger

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/routes/auth"
)

func SetupLedgerRoutes(app *fiber.App) {
	group := app.Group("/api/ledger", auth.AuthMiddleware)

	group.Get("/", GetLedgerEntriesAPI)
	group.Post("/generate", GenerateLedgerEntriesAPI)
	group.Delete("/bulk", BulkDeleteLedgerEntriesAPI)
	group.Get("/:id", GetLedgerEntryByIDAPI)
	group.Post("/:id/payments", ApplyLedgerPaymentAPI)
	group.Delete("/:id", DeleteLedgerEntryAPI)
}
