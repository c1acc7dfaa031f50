package ledger

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/apperr"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/config"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/database"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/finance"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

var validate = validator.New()

// decorate fills in the derived paid total and status for each entry.
func decorate(entries []*models.LedgerEntry) {
	for _, e := range entries {
		e.PaidTotal = finance.LedgerPaidTotal(e.Payments)
		e.Status = finance.LedgerStatus(e.PaidTotal, e.ExpectedAmount)
	}
}

// GetLedgerEntriesAPI lists ledger entries with derived statuses. The
// status filter is applied after derivation since status is never stored.
func GetLedgerEntriesAPI(c *fiber.Ctx) error {
	filters := database.LedgerFilters{
		StudentPRN:   c.Query("prn"),
		CategoryID:   c.Query("category_id"),
		AcademicYear: c.Query("academic_year"),
	}

	entries, err := database.GetLedgerEntries(config.GetDB(), filters)
	if err != nil {
		return apperr.Internal("Failed to fetch ledger entries", err)
	}
	decorate(entries)

	if status := c.Query("status"); status != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.Status == status {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	var totalExpected, totalPaid float64
	for _, e := range entries {
		totalExpected += e.ExpectedAmount
		totalPaid += e.PaidTotal
	}

	pg := finance.NewPagination(c.QueryInt("page", 1), c.QueryInt("limit", finance.DefaultPageLimit), len(entries))
	start, end := pg.Bounds()

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"entries":    entries[start:end],
			"pagination": pg,
			"totals": fiber.Map{
				"expected":    totalExpected,
				"paid":        totalPaid,
				"outstanding": totalExpected - totalPaid,
			},
		},
	})
}

func GetLedgerEntryByIDAPI(c *fiber.Ctx) error {
	e, err := database.GetLedgerEntryByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Ledger entry not found")
		}
		return apperr.Internal("Failed to fetch ledger entry", err)
	}
	decorate([]*models.LedgerEntry{e})

	return c.JSON(fiber.Map{
		"success": true,
		"data":    e,
	})
}

type GenerateRequest struct {
	CategoryID   string   `json:"category_id" validate:"required"`
	Classes      []string `json:"classes" validate:"required,min=1"`
	AcademicYear string   `json:"academic_year" validate:"required"`
	Amount       float64  `json:"amount"`
}

// GenerateLedgerEntriesAPI creates entries for every active student in the
// requested classes. Pairs that already have an entry for the academic year
// are skipped, so running generation twice never duplicates obligations.
func GenerateLedgerEntriesAPI(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("category_id, classes and academic_year are required")
	}

	db := config.GetDB()

	category, err := database.GetPaymentCategoryByID(db, req.CategoryID)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Payment category not found")
		}
		return apperr.Internal("Failed to fetch payment category", err)
	}

	amount := req.Amount
	if amount <= 0 {
		amount = category.Amount
	}
	if amount, err = finance.NormalizeAmount(amount); err != nil {
		return err
	}

	created, err := database.GenerateLedgerEntries(db, category, req.Classes, finance.CleanText(req.AcademicYear), amount)
	if err != nil {
		return apperr.Internal("Failed to generate ledger entries", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"created": created,
		},
	})
}

type LedgerPaymentRequest struct {
	Amount  float64           `json:"amount"`
	Mode    string            `json:"mode"`
	Remarks string            `json:"remarks"`
	Date    models.CustomTime `json:"date"`
}

// ApplyLedgerPaymentAPI records a payment against an entry and returns the
// entry with its recalculated status.
func ApplyLedgerPaymentAPI(c *fiber.Ctx) error {
	var req LedgerPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	amount, err := finance.NormalizeAmount(req.Amount)
	if err != nil {
		return err
	}

	db := config.GetDB()
	entryID := c.Params("id")

	if _, err := database.GetLedgerEntryByID(db, entryID); err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Ledger entry not found")
		}
		return apperr.Internal("Failed to fetch ledger entry", err)
	}

	date := req.Date.Time
	if date.IsZero() {
		date = time.Now()
	}

	payment := &models.LedgerPayment{
		EntryID: entryID,
		Amount:  amount,
		Mode:    finance.CleanText(req.Mode),
		Remarks: finance.CleanText(req.Remarks),
		Date:    date,
	}
	if err := database.CreateLedgerPayment(db, payment); err != nil {
		return apperr.Internal("Failed to apply payment", err)
	}

	entry, err := database.GetLedgerEntryByID(db, entryID)
	if err != nil {
		return apperr.Internal("Failed to fetch ledger entry", err)
	}
	decorate([]*models.LedgerEntry{entry})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    entry,
	})
}

// DeleteLedgerEntryAPI removes one entry, refusing when payments have
// already been applied against it.
func DeleteLedgerEntryAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	entryID := c.Params("id")

	count, err := database.CountLedgerPayments(db, entryID)
	if err != nil {
		return apperr.Internal("Failed to check ledger payments", err)
	}
	if count > 0 {
		return apperr.Conflict("Cannot delete a ledger entry that has payments applied")
	}

	deleted, err := database.DeleteLedgerEntries(db, []string{entryID})
	if err != nil {
		return apperr.Internal("Failed to delete ledger entry", err)
	}
	if deleted == 0 {
		return apperr.NotFound("Ledger entry not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Ledger entry deleted successfully",
	})
}

type BulkDeleteRequest struct {
	EntryIDs []string `json:"entry_ids" validate:"required,min=1"`
}

// BulkDeleteLedgerEntriesAPI deletes a batch of entries. If any entry in
// the batch has payments applied the whole request is refused, so a bulk
// delete never partially succeeds.
func BulkDeleteLedgerEntriesAPI(c *fiber.Ctx) error {
	var req BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("entry_ids is required")
	}

	db := config.GetDB()

	count, err := database.CountLedgerPaymentsForEntries(db, req.EntryIDs)
	if err != nil {
		return apperr.Internal("Failed to check ledger payments", err)
	}
	if count > 0 {
		return apperr.Conflict("Cannot delete ledger entries that have payments applied")
	}

	deleted, err := database.DeleteLedgerEntries(db, req.EntryIDs)
	if err != nil {
		return apperr.Internal("Failed to delete ledger entries", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"deleted": deleted,
		},
	})
}
