package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

// LedgerFilters narrows the ledger listing.
type LedgerFilters struct {
	StudentPRN   string
	CategoryID   string
	AcademicYear string
}

// GetLedgerEntries lists entries with their student/category names and the
// applied payments attached. Status is derived by the caller.
func GetLedgerEntries(db *sql.DB, filters LedgerFilters) ([]*models.LedgerEntry, error) {
	baseQuery := `SELECT le.id, le.student_id, le.category_id, le.academic_year, le.expected_amount,
				  le.created_at, le.updated_at, s.prn, s.name, pc.name
				  FROM ledger_entries le
				  JOIN students s ON le.student_id = s.id
				  JOIN payment_categories pc ON le.category_id = pc.id
				  WHERE 1=1`

	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.StudentPRN != "" {
		conditions = append(conditions, fmt.Sprintf("s.prn = UPPER($%d)", argIndex))
		args = append(args, filters.StudentPRN)
		argIndex++
	}
	if filters.CategoryID != "" {
		conditions = append(conditions, fmt.Sprintf("le.category_id = $%d", argIndex))
		args = append(args, filters.CategoryID)
		argIndex++
	}
	if filters.AcademicYear != "" {
		conditions = append(conditions, fmt.Sprintf("le.academic_year = $%d", argIndex))
		args = append(args, filters.AcademicYear)
		argIndex++
	}

	for _, cond := range conditions {
		baseQuery += " AND " + cond
	}
	baseQuery += " ORDER BY s.prn ASC, pc.name ASC"

	rows, err := db.Query(baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.LedgerEntry{}
	byID := make(map[string]*models.LedgerEntry)
	for rows.Next() {
		e := &models.LedgerEntry{}
		err := rows.Scan(
			&e.ID, &e.StudentID, &e.CategoryID, &e.AcademicYear, &e.ExpectedAmount,
			&e.CreatedAt, &e.UpdatedAt, &e.StudentPRN, &e.StudentName, &e.CategoryName,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := attachLedgerPayments(db, entries, byID); err != nil {
		return nil, err
	}
	return entries, nil
}

func attachLedgerPayments(db *sql.DB, entries []*models.LedgerEntry, byID map[string]*models.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	placeholders := make([]string, len(entries))
	args := make([]interface{}, len(entries))
	for i, e := range entries {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = e.ID
	}

	query := fmt.Sprintf(`SELECT id, entry_id, amount, COALESCE(mode, ''), COALESCE(remarks, ''), date
						  FROM ledger_entry_payments
						  WHERE entry_id IN (%s)
						  ORDER BY date ASC`, strings.Join(placeholders, ","))

	rows, err := db.Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		p := &models.LedgerPayment{}
		if err := rows.Scan(&p.ID, &p.EntryID, &p.Amount, &p.Mode, &p.Remarks, &p.Date); err != nil {
			return err
		}
		if e, ok := byID[p.EntryID]; ok {
			e.Payments = append(e.Payments, p)
		}
	}
	return rows.Err()
}

// GetLedgerEntryByID loads one entry with payments attached.
func GetLedgerEntryByID(db *sql.DB, id string) (*models.LedgerEntry, error) {
	query := `SELECT le.id, le.student_id, le.category_id, le.academic_year, le.expected_amount,
			  le.created_at, le.updated_at, s.prn, s.name, pc.name
			  FROM ledger_entries le
			  JOIN students s ON le.student_id = s.id
			  JOIN payment_categories pc ON le.category_id = pc.id
			  WHERE le.id = $1`

	e := &models.LedgerEntry{}
	err := db.QueryRow(query, id).Scan(
		&e.ID, &e.StudentID, &e.CategoryID, &e.AcademicYear, &e.ExpectedAmount,
		&e.CreatedAt, &e.UpdatedAt, &e.StudentPRN, &e.StudentName, &e.CategoryName,
	)
	if err != nil {
		return nil, err
	}

	if err := attachLedgerPayments(db, []*models.LedgerEntry{e}, map[string]*models.LedgerEntry{e.ID: e}); err != nil {
		return nil, err
	}
	return e, nil
}

// GenerateLedgerEntries creates one entry per (student x category) pair for
// the academic year, skipping pairs that already have one. Re-running is a
// no-op for existing pairs, so generation is idempotent.
func GenerateLedgerEntries(db *sql.DB, category *models.PaymentCategory, classes []string, academicYear string, amount float64) (int, error) {
	var studentIDs []string

	for _, class := range classes {
		rows, err := db.Query(`SELECT id FROM students WHERE year = $1 AND is_active = true`, class)
		if err != nil {
			return 0, err
		}
		for rows.Next() {
			var studentID string
			if err := rows.Scan(&studentID); err != nil {
				rows.Close()
				return 0, err
			}
			studentIDs = append(studentIDs, studentID)
		}
		rows.Close()
	}

	created := 0
	for _, studentID := range studentIDs {
		result, err := db.Exec(`
			INSERT INTO ledger_entries (student_id, category_id, academic_year, expected_amount, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			ON CONFLICT (student_id, category_id, academic_year) DO NOTHING
		`, studentID, category.ID, academicYear, amount)
		if err != nil {
			return created, err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return created, err
		}
		created += int(rows)
	}
	return created, nil
}

func CountLedgerPayments(db *sql.DB, entryID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM ledger_entry_payments WHERE entry_id = $1`, entryID).Scan(&count)
	return count, err
}

// CountLedgerPaymentsForEntries returns how many applied payments exist
// across the given entries. Used to guard bulk deletion.
func CountLedgerPaymentsForEntries(db *sql.DB, entryIDs []string) (int, error) {
	if len(entryIDs) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(entryIDs))
	args := make([]interface{}, len(entryIDs))
	for i, id := range entryIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM ledger_entry_payments WHERE entry_id IN (%s)`, strings.Join(placeholders, ","))
	err := db.QueryRow(query, args...).Scan(&count)
	return count, err
}

func CreateLedgerPayment(db *sql.DB, p *models.LedgerPayment) error {
	query := `INSERT INTO ledger_entry_payments (entry_id, amount, mode, remarks, date)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	return db.QueryRow(query, p.EntryID, p.Amount, p.Mode, p.Remarks, p.Date).Scan(&p.ID)
}

func DeleteLedgerEntries(db *sql.DB, entryIDs []string) (int64, error) {
	if len(entryIDs) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(entryIDs))
	args := make([]interface{}, len(entryIDs))
	for i, id := range entryIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`DELETE FROM ledger_entries WHERE id IN (%s)`, strings.Join(placeholders, ","))
	result, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
