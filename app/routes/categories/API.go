package categories

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/apperr"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/config"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/database"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/finance"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

var validate = validator.New()

func GetCategoriesAPI(c *fiber.Ctx) error {
	activeOnly := c.Query("active", "true") != "false"

	cats, err := database.GetPaymentCategories(config.GetDB(), activeOnly)
	if err != nil {
		return apperr.Internal("Failed to fetch payment categories", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cats,
	})
}

func GetCategoryByIDAPI(c *fiber.Ctx) error {
	cat, err := database.GetPaymentCategoryByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Payment category not found")
		}
		return apperr.Internal("Failed to fetch payment category", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cat,
	})
}

type CategoryRequest struct {
	Name              string   `json:"name" validate:"required"`
	Type              string   `json:"type" validate:"required,oneof=fee fine"`
	Amount            float64  `json:"amount"`
	ApplicableClasses []string `json:"applicable_classes"`
	IsAutoAssign      bool     `json:"is_auto_assign"`
	IsActive          *bool    `json:"is_active"`
}

func buildCategory(req CategoryRequest) (*models.PaymentCategory, error) {
	amount, err := finance.NormalizeAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	classes := make([]string, 0, len(req.ApplicableClasses))
	for _, cls := range req.ApplicableClasses {
		if cls = finance.CleanText(cls); cls != "" {
			classes = append(classes, cls)
		}
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return &models.PaymentCategory{
		Name:              finance.CleanText(req.Name),
		Type:              models.PaymentType(req.Type),
		Amount:            amount,
		ApplicableClasses: classes,
		IsAutoAssign:      req.IsAutoAssign,
		IsActive:          active,
	}, nil
}

func CreateCategoryAPI(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("Category name and type (fee or fine) are required")
	}

	cat, err := buildCategory(req)
	if err != nil {
		return err
	}

	if err := database.CreatePaymentCategory(config.GetDB(), cat); err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("A payment category with this name already exists")
		}
		return apperr.Internal("Failed to create payment category", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    cat,
	})
}

func UpdateCategoryAPI(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("Category name and type (fee or fine) are required")
	}

	cat, err := buildCategory(req)
	if err != nil {
		return err
	}
	cat.ID = c.Params("id")

	if err := database.UpdatePaymentCategory(config.GetDB(), cat); err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Payment category not found")
		}
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("A payment category with this name already exists")
		}
		return apperr.Internal("Failed to update payment category", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cat,
	})
}

func DeleteCategoryAPI(c *fiber.Ctx) error {
	if err := database.DeletePaymentCategory(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Payment category not found")
		}
		return apperr.Internal("Failed to delete payment category", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment category deleted successfully",
	})
}
