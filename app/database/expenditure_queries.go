package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

// ExpenditureFilters narrows the expenditure listing. Zero values mean
// "no constraint". DateFrom/DateTo take precedence over Year/Month.
type ExpenditureFilters struct {
	Year      int
	Month     int
	DateFrom  time.Time
	DateTo    time.Time
	Category  string
	AmountMin float64
	AmountMax float64
	SortBy    string // date | amount | created_at
	SortOrder string // asc | desc
}

func buildExpenditureConditions(filters ExpenditureFilters) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	add := func(cond string, vals ...interface{}) {
		conditions = append(conditions, cond)
		args = append(args, vals...)
		argIndex += len(vals)
	}

	if !filters.DateFrom.IsZero() || !filters.DateTo.IsZero() {
		if !filters.DateFrom.IsZero() {
			add(fmt.Sprintf("e.date >= $%d", argIndex), filters.DateFrom)
		}
		if !filters.DateTo.IsZero() {
			add(fmt.Sprintf("e.date <= $%d", argIndex), filters.DateTo)
		}
	} else if filters.Year != 0 {
		if filters.Month != 0 {
			add(fmt.Sprintf("EXTRACT(YEAR FROM e.date) = $%d AND EXTRACT(MONTH FROM e.date) = $%d", argIndex, argIndex+1),
				filters.Year, filters.Month)
		} else {
			add(fmt.Sprintf("EXTRACT(YEAR FROM e.date) = $%d", argIndex), filters.Year)
		}
	}

	if filters.Category != "" {
		add(fmt.Sprintf("LOWER(e.category) LIKE $%d", argIndex), "%"+strings.ToLower(filters.Category)+"%")
	}
	if filters.AmountMin > 0 {
		add(fmt.Sprintf("e.amount >= $%d", argIndex), filters.AmountMin)
	}
	if filters.AmountMax > 0 {
		add(fmt.Sprintf("e.amount <= $%d", argIndex), filters.AmountMax)
	}

	clause := ""
	if len(conditions) > 0 {
		clause = " AND " + strings.Join(conditions, " AND ")
	}
	return clause, args
}

func expenditureOrderClause(filters ExpenditureFilters) string {
	column := "e.date"
	switch filters.SortBy {
	case "amount":
		column = "e.amount"
	case "created_at":
		column = "e.created_at"
	}
	direction := "DESC"
	if filters.SortOrder == "asc" {
		direction = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, e.created_at %s", column, direction, direction)
}

// GetExpendituresWithFilters returns the matching records, ordered per the
// filter's sort settings.
func GetExpendituresWithFilters(db *sql.DB, filters ExpenditureFilters) ([]*models.Expenditure, error) {
	clause, args := buildExpenditureConditions(filters)

	query := `SELECT e.id, e.amount, e.description, e.category, COALESCE(e.department, ''), e.date,
			  COALESCE(e.receipt_number, ''), COALESCE(e.notes, ''), COALESCE(e.added_by::text, ''), COALESCE(a.name, ''),
			  e.created_at, e.updated_at
			  FROM expenditures e
			  LEFT JOIN admins a ON e.added_by = a.id
			  WHERE 1=1` + clause + expenditureOrderClause(filters)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenditures := []*models.Expenditure{}
	for rows.Next() {
		e := &models.Expenditure{}
		err := rows.Scan(
			&e.ID, &e.Amount, &e.Description, &e.Category, &e.Department, &e.Date,
			&e.ReceiptNumber, &e.Notes, &e.AddedBy, &e.AddedByName,
			&e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		expenditures = append(expenditures, e)
	}
	return expenditures, rows.Err()
}

// GetAllExpenditures fetches every record, newest first. Used as the
// expenditure side of the transaction merge.
func GetAllExpenditures(db *sql.DB) ([]*models.Expenditure, error) {
	return GetExpendituresWithFilters(db, ExpenditureFilters{})
}

func GetExpenditureByID(db *sql.DB, id string) (*models.Expenditure, error) {
	query := `SELECT e.id, e.amount, e.description, e.category, COALESCE(e.department, ''), e.date,
			  COALESCE(e.receipt_number, ''), COALESCE(e.notes, ''), COALESCE(e.added_by::text, ''), COALESCE(a.name, ''),
			  e.created_at, e.updated_at
			  FROM expenditures e
			  LEFT JOIN admins a ON e.added_by = a.id
			  WHERE e.id = $1`

	e := &models.Expenditure{}
	err := db.QueryRow(query, id).Scan(
		&e.ID, &e.Amount, &e.Description, &e.Category, &e.Department, &e.Date,
		&e.ReceiptNumber, &e.Notes, &e.AddedBy, &e.AddedByName,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func CreateExpenditure(db *sql.DB, e *models.Expenditure) error {
	query := `INSERT INTO expenditures (amount, description, category, department, date, receipt_number, notes, added_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::uuid, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, e.Amount, e.Description, e.Category, e.Department, e.Date, e.ReceiptNumber, e.Notes, e.AddedBy).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func UpdateExpenditure(db *sql.DB, e *models.Expenditure) error {
	query := `UPDATE expenditures
			  SET amount = $1, description = $2, category = $3, department = $4, date = $5, receipt_number = $6, notes = $7, updated_at = NOW()
			  WHERE id = $8`

	result, err := db.Exec(query, e.Amount, e.Description, e.Category, e.Department, e.Date, e.ReceiptNumber, e.Notes, e.ID)
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

func DeleteExpenditure(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM expenditures WHERE id = $1`, id)
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
