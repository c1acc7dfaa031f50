package students

import (
	"database/sql"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/apperr"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/config"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/database"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/finance"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/services"
)

var validate = validator.New()

// GetStudentsAPI returns students with optional filtering and pagination.
func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:   c.Query("search"),
		Year:     c.Query("year"),
		Division: c.Query("division"),
		Status:   c.Query("status"),
	}
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", finance.DefaultPageLimit)

	students, err := database.GetStudentsWithFilters(config.GetDB(), filters)
	if err != nil {
		return apperr.Internal("Failed to fetch students", err)
	}

	pg := finance.NewPagination(page, limit, len(students))
	start, end := pg.Bounds()

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"students":   students[start:end],
			"pagination": pg,
		},
	})
}

func GetStudentByPRNAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByPRN(config.GetDB(), c.Params("prn"))
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Student not found")
		}
		return apperr.Internal("Failed to fetch student", err)
	}

	if err := database.AttachPayments(config.GetDB(), []*models.Student{student}); err != nil {
		return apperr.Internal("Failed to fetch payments", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

type StudentRequest struct {
	PRN          string `json:"prn" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Year         string `json:"year"`
	Division     string `json:"division"`
	AcademicYear string `json:"academic_year"`
	Semester     string `json:"semester"`
	RollNo       string `json:"roll_no"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("PRN and name are required; email must be valid if given")
	}

	student := &models.Student{
		PRN:          strings.ToUpper(finance.CleanText(req.PRN)),
		Name:         finance.CleanText(req.Name),
		Year:         finance.CleanText(req.Year),
		Division:     finance.CleanText(req.Division),
		AcademicYear: finance.CleanText(req.AcademicYear),
		Semester:     finance.CleanText(req.Semester),
		RollNo:       finance.CleanText(req.RollNo),
		Email:        finance.CleanText(req.Email),
		Phone:        finance.CleanText(req.Phone),
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("A student with this PRN already exists")
		}
		return apperr.Internal("Failed to create student", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	student := &models.Student{
		PRN:          c.Params("prn"),
		Name:         finance.CleanText(req.Name),
		Year:         finance.CleanText(req.Year),
		Division:     finance.CleanText(req.Division),
		AcademicYear: finance.CleanText(req.AcademicYear),
		Semester:     finance.CleanText(req.Semester),
		RollNo:       finance.CleanText(req.RollNo),
		Email:        finance.CleanText(req.Email),
		Phone:        finance.CleanText(req.Phone),
	}
	if student.Name == "" {
		return apperr.Validation("Name is required")
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Student not found")
		}
		return apperr.Internal("Failed to update student", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
	})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeactivateStudent(config.GetDB(), c.Params("prn")); err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Student not found")
		}
		return apperr.Internal("Failed to delete student", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deactivated successfully",
	})
}

type PaymentRequest struct {
	Amount   float64           `json:"amount"`
	Type     string            `json:"type" validate:"required,oneof=fee fine"`
	Category string            `json:"category"`
	Reason   string            `json:"reason"`
	Date     models.CustomTime `json:"date"`
}

// AddPaymentAPI records a fee or fine against a student and dispatches the
// receipt email without blocking the response.
func AddPaymentAPI(c *fiber.Ctx) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return apperr.Validation("Type must be fee or fine")
	}

	amount, err := finance.NormalizeAmount(req.Amount)
	if err != nil {
		return err
	}

	db := config.GetDB()
	student, err := database.GetStudentByPRN(db, c.Params("prn"))
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Student not found")
		}
		return apperr.Internal("Failed to fetch student", err)
	}

	date := req.Date.Time
	if date.IsZero() {
		date = time.Now()
	}

	category := finance.CleanText(req.Category)
	if category == "" {
		category = finance.DefaultCategory
	}

	payment := &models.StudentPayment{
		StudentID:     student.ID,
		Amount:        amount,
		Type:          models.PaymentType(req.Type),
		Category:      category,
		Reason:        finance.CleanText(req.Reason),
		ReceiptNumber: finance.GenerateReceiptNumber(date),
		Date:          date,
	}

	if err := database.CreateStudentPayment(db, payment); err != nil {
		return apperr.Internal("Failed to record payment", err)
	}

	services.DispatchReceipt(student.Email, services.ReceiptFacts{
		StudentName:   student.Name,
		PRN:           student.PRN,
		Amount:        payment.Amount,
		Type:          string(payment.Type),
		Category:      payment.Category,
		ReceiptNumber: payment.ReceiptNumber,
		Date:          payment.Date,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}

// MarkPaymentPaidAPI toggles a payment's paid status exactly once.
func MarkPaymentPaidAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	student, err := database.GetStudentByPRN(db, c.Params("prn"))
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Student not found")
		}
		return apperr.Internal("Failed to fetch student", err)
	}

	if err := database.MarkPaymentPaid(db, student.ID, c.Params("paymentId")); err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Payment not found or already paid")
		}
		return apperr.Internal("Failed to mark payment as paid", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment marked as paid",
	})
}

// GetStudentPaymentsAPI lists one student's payments with their summary.
func GetStudentPaymentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	student, err := database.GetStudentByPRN(db, c.Params("prn"))
	if err != nil {
		if err == sql.ErrNoRows {
			return apperr.NotFound("Student not found")
		}
		return apperr.Internal("Failed to fetch student", err)
	}

	payments, err := database.GetStudentPayments(db, student.ID)
	if err != nil {
		return apperr.Internal("Failed to fetch payments", err)
	}

	student.Payments = payments
	summaries := finance.BuildStudentSummaries([]*models.Student{student}, "")
	summary := finance.StudentSummary{PRN: student.PRN, Name: student.Name}
	if len(summaries) > 0 {
		summary = summaries[0]
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"payments": payments,
			"summary":  summary,
		},
	})
}
