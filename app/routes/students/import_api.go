package students

import (
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/apperr"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/config"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/database"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/services"
)

// ImportResult reports the outcome of a bulk roster upload. Row failures
// are collected, not raised; partial success is the normal case.
type ImportResult struct {
	BatchID string   `json:"batch_id"`
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// ImportStudentsAPI ingests a CSV roster. Rows are processed sequentially;
// an existing PRN updates the student, a new one creates it.
func ImportStudentsAPI(c *fiber.Ctx) error {
	raw, err := readUpload(c)
	if err != nil {
		return err
	}

	rows, err := services.ParseRows(raw)
	if err != nil {
		return apperr.Validation(err.Error())
	}

	db := config.GetDB()
	result := ImportResult{BatchID: uuid.NewString(), Errors: []string{}}

	for i, row := range rows {
		created, err := importRow(db, row)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

func readUpload(c *fiber.Ctx) ([]byte, error) {
	file, err := c.FormFile("file")
	if err != nil {
		// Fall back to a raw CSV body
		if len(c.Body()) > 0 {
			return c.Body(), nil
		}
		return nil, apperr.Validation("A CSV file is required")
	}

	f, err := file.Open()
	if err != nil {
		return nil, apperr.Validation("Failed to open uploaded file")
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, apperr.Validation("Failed to read uploaded file")
	}
	return raw, nil
}

// overlayRosterRow writes only the values the row actually supplies.
// Empty cells leave the stored field alone, so re-importing a partial
// roster never blanks existing data.
func overlayRosterRow(s *models.Student, row services.Row) {
	set := func(dst *string, keys ...string) {
		if v := row.Get(keys...); v != "" {
			*dst = v
		}
	}
	set(&s.Name, "name", "student name", "full name")
	set(&s.Year, "year", "class")
	set(&s.Division, "division", "div")
	set(&s.AcademicYear, "academic year")
	set(&s.Semester, "semester", "sem")
	set(&s.RollNo, "roll no", "roll number", "roll")
	set(&s.Email, "email", "email id")
	set(&s.Phone, "phone", "mobile", "contact")
}

// importRow upserts one roster row and reports whether it created a new
// student.
func importRow(db *sql.DB, row services.Row) (bool, error) {
	prn := strings.ToUpper(row.Get("prn", "student prn", "prn no"))
	name := row.Get("name", "student name", "full name")
	if prn == "" {
		return false, fmt.Errorf("missing PRN")
	}
	if name == "" {
		return false, fmt.Errorf("missing name")
	}

	existing, err := database.GetStudentByPRN(db, prn)
	if err == nil {
		overlayRosterRow(existing, row)
		return false, database.UpdateStudent(db, existing)
	}
	if err != sql.ErrNoRows {
		return false, err
	}

	student := &models.Student{PRN: prn}
	overlayRosterRow(student, row)

	if err := database.CreateStudent(db, student); err != nil {
		if database.IsUniqueViolation(err) {
			return false, fmt.Errorf("duplicate PRN %s", prn)
		}
		return false, err
	}
	return true, nil
}
