package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

// StudentFilters represents filtering options for listing students.
type StudentFilters struct {
	Search   string
	Year     string
	Division string
	Status   string
}

func GetStudentByPRN(db *sql.DB, prn string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, prn, name, year, division, academic_year, semester, roll_no, email, phone, is_active, created_at, updated_at
			  FROM students WHERE prn = UPPER($1)`

	err := db.QueryRow(query, prn).Scan(
		&student.ID, &student.PRN, &student.Name, &student.Year, &student.Division,
		&student.AcademicYear, &student.Semester, &student.RollNo,
		&student.Email, &student.Phone, &student.IsActive,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudentsWithFilters lists students matching the filters. Payments are
// not attached; use AttachPayments when the caller needs them.
func GetStudentsWithFilters(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	baseQuery := `SELECT id, prn, name, year, division, academic_year, semester, roll_no, email, phone, is_active, created_at, updated_at
				  FROM students WHERE 1=1`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Status == "" || filters.Status == "active" {
		conditions = append(conditions, "is_active = true")
	} else if filters.Status == "inactive" {
		conditions = append(conditions, "is_active = false")
	}

	if filters.Year != "" {
		conditions = append(conditions, fmt.Sprintf("year = $%d", argIndex))
		args = append(args, filters.Year)
		argIndex++
	}

	if filters.Division != "" {
		conditions = append(conditions, fmt.Sprintf("division = $%d", argIndex))
		args = append(args, filters.Division)
		argIndex++
	}

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(
			"(LOWER(name) LIKE $%d OR LOWER(prn) LIKE $%d OR LOWER(roll_no) LIKE $%d)",
			argIndex, argIndex+1, argIndex+2))
		args = append(args, pattern, pattern, pattern)
		argIndex += 3
	}

	for _, cond := range conditions {
		baseQuery += " AND " + cond
	}
	baseQuery += " ORDER BY prn ASC"

	rows, err := db.Query(baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		err := rows.Scan(
			&s.ID, &s.PRN, &s.Name, &s.Year, &s.Division,
			&s.AcademicYear, &s.Semester, &s.RollNo,
			&s.Email, &s.Phone, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// AttachPayments loads the payment records for every given student in one
// query and assigns them to their owners.
func AttachPayments(db *sql.DB, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}

	byID := make(map[string]*models.Student, len(students))
	ids := make([]string, 0, len(students))
	for _, s := range students {
		byID[s.ID] = s
		ids = append(ids, s.ID)
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT id, student_id, amount, type, category, COALESCE(reason, ''), receipt_number, date, is_paid, paid_date, created_at
						  FROM student_payments
						  WHERE student_id IN (%s)
						  ORDER BY created_at ASC`, strings.Join(placeholders, ","))

	rows, err := db.Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		p := &models.StudentPayment{}
		var pType string
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.Amount, &pType, &p.Category, &p.Reason,
			&p.ReceiptNumber, &p.Date, &p.IsPaid, &p.PaidDate, &p.CreatedAt,
		)
		if err != nil {
			return err
		}
		p.Type = models.PaymentType(pType)
		if s, ok := byID[p.StudentID]; ok {
			s.Payments = append(s.Payments, p)
		}
	}
	return rows.Err()
}

// GetActiveStudentsWithPayments is the income side of the ledger: every
// active student with their full payment history attached.
func GetActiveStudentsWithPayments(db *sql.DB) ([]*models.Student, error) {
	students, err := GetStudentsWithFilters(db, StudentFilters{Status: "active"})
	if err != nil {
		return nil, err
	}
	if err := AttachPayments(db, students); err != nil {
		return nil, err
	}
	return students, nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (prn, name, year, division, academic_year, semester, roll_no, email, phone, is_active, created_at, updated_at)
			  VALUES (UPPER($1), $2, $3, $4, $5, $6, $7, $8, $9, true, NOW(), NOW())
			  RETURNING id, prn, created_at, updated_at`

	return db.QueryRow(query, s.PRN, s.Name, s.Year, s.Division, s.AcademicYear, s.Semester, s.RollNo, s.Email, s.Phone).
		Scan(&s.ID, &s.PRN, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students
			  SET name = $1, year = $2, division = $3, academic_year = $4, semester = $5, roll_no = $6, email = $7, phone = $8, updated_at = NOW()
			  WHERE prn = UPPER($9)`

	result, err := db.Exec(query, s.Name, s.Year, s.Division, s.AcademicYear, s.Semester, s.RollNo, s.Email, s.Phone, s.PRN)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeactivateStudent soft-deletes: records stay for reporting.
func DeactivateStudent(db *sql.DB, prn string) error {
	result, err := db.Exec(`UPDATE students SET is_active = false, updated_at = NOW() WHERE prn = UPPER($1)`, prn)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func CreateStudentPayment(db *sql.DB, p *models.StudentPayment) error {
	query := `INSERT INTO student_payments (student_id, amount, type, category, reason, receipt_number, date, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, p.StudentID, p.Amount, string(p.Type), p.Category, p.Reason, p.ReceiptNumber, p.Date).
		Scan(&p.ID, &p.CreatedAt)
}

// MarkPaymentPaid flips the paid flag once; an already-paid record is left
// untouched and reported via sql.ErrNoRows.
func MarkPaymentPaid(db *sql.DB, studentID, paymentID string) error {
	query := `UPDATE student_payments SET is_paid = true, paid_date = NOW()
			  WHERE id = $1 AND student_id = $2 AND is_paid = false`

	result, err := db.Exec(query, paymentID, studentID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func GetStudentPayments(db *sql.DB, studentID string) ([]*models.StudentPayment, error) {
	query := `SELECT id, student_id, amount, type, category, COALESCE(reason, ''), receipt_number, date, is_paid, paid_date, created_at
			  FROM student_payments WHERE student_id = $1 ORDER BY date DESC, created_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.StudentPayment{}
	for rows.Next() {
		p := &models.StudentPayment{}
		var pType string
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.Amount, &pType, &p.Category, &p.Reason,
			&p.ReceiptNumber, &p.Date, &p.IsPaid, &p.PaidDate, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		p.Type = models.PaymentType(pType)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
