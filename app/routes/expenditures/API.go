package expenditures

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

// GetExpendituresAPI lists expenditures with filtering and pagination.
func GetExpendituresAPI(c *fiber.Ctx) error {
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

	pg := finance.NewPagination(c.QueryInt("page", 1), c.QueryInt("limit", finance.DefaultPageLimit), len(expenditures))
	start, end := pg.Bounds()

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"expenditures": expenditures[start:end],
			"pagination":   pg,
		},
	})
}

func GetExpenditureByIDAPI(c *fiber.Ctx) error {
	e, err := database.GetExpenditureByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Expenditure not found")
		}
		return apperr.Internal("Failed to fetch expenditure", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    e,
	})
}

type ExpenditureRequest struct {
	Amount        float64           `json:"amount"`
	Description   string            `json:"description" validate:"required"`
	Category      string            `json:"category"`
	Department    string            `json:"department"`
	Date          models.CustomTime `json:"date"`
	ReceiptNumber string            `json:"receipt_number"`
	Notes         string            `json:"notes"`
}

func buildExpenditure(req ExpenditureRequest) (*models.Expenditure, error) {
	amount, err := finance.NormalizeAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	category := finance.CleanText(req.Category)
	if category == "" {
		category = finance.DefaultCategory
	}

	date := req.Date.Time
	if date.IsZero() {
		date = time.Now()
	}

	return &models.Expenditure{
		Amount:        amount,
		Description:   finance.CleanText(req.Description),
		Category:      category,
		Department:    finance.CleanText(req.Department),
		Date:          date,
		ReceiptNumber: finance.CleanText(req.ReceiptNumber),
		Notes:         finance.CleanText(req.Notes),
	}, nil
}

func CreateExpenditureAPI(c *fiber.Ctx) error {
	var req ExpenditureRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("Description is required")
	}

	e, err := buildExpenditure(req)
	if err != nil {
		return err
	}
	e.AddedBy, _ = c.Locals("admin_id").(string)

	if err := database.CreateExpenditure(config.GetDB(), e); err != nil {
		return apperr.Internal("Failed to create expenditure", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    e,
	})
}

func UpdateExpenditureAPI(c *fiber.Ctx) error {
	var req ExpenditureRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("Description is required")
	}

	e, err := buildExpenditure(req)
	if err != nil {
		return err
	}
	e.ID = c.Params("id")

	if err := database.UpdateExpenditure(config.GetDB(), e); err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Expenditure not found")
		}
		return apperr.Internal("Failed to update expenditure", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    e,
	})
}

func DeleteExpenditureAPI(c *fiber.Ctx) error {
	if err := database.DeleteExpenditure(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Expenditure not found")
		}
		return apperr.Internal("Failed to delete expenditure", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Expenditure deleted successfully",
	})
}
