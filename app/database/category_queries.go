package database

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/pratiktawhare/Zeal-IT-Fine-Management-sub001/app/models"
)

func GetPaymentCategories(db *sql.DB, activeOnly bool) ([]*models.PaymentCategory, error) {
	query := `SELECT id, name, type, amount, applicable_classes, is_auto_assign, is_active, created_at, updated_at
			  FROM payment_categories`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.PaymentCategory{}
	for rows.Next() {
		c := &models.PaymentCategory{}
		var cType string
		err := rows.Scan(
			&c.ID, &c.Name, &cType, &c.Amount, pq.Array(&c.ApplicableClasses),
			&c.IsAutoAssign, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		c.Type = models.PaymentType(cType)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func GetPaymentCategoryByID(db *sql.DB, id string) (*models.PaymentCategory, error) {
	query := `SELECT id, name, type, amount, applicable_classes, is_auto_assign, is_active, created_at, updated_at
			  FROM payment_categories WHERE id = $1`

	c := &models.PaymentCategory{}
	var cType string
	err := db.QueryRow(query, id).Scan(
		&c.ID, &c.Name, &cType, &c.Amount, pq.Array(&c.ApplicableClasses),
		&c.IsAutoAssign, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Type = models.PaymentType(cType)
	return c, nil
}

func CreatePaymentCategory(db *sql.DB, c *models.PaymentCategory) error {
	query := `INSERT INTO payment_categories (name, type, amount, applicable_classes, is_auto_assign, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, c.Name, string(c.Type), c.Amount, pq.Array(c.ApplicableClasses), c.IsAutoAssign, c.IsActive).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func UpdatePaymentCategory(db *sql.DB, c *models.PaymentCategory) error {
	query := `UPDATE payment_categories
			  SET name = $1, type = $2, amount = $3, applicable_classes = $4, is_auto_assign = $5, is_active = $6, updated_at = NOW()
			  WHERE id = $7`

	result, err := db.Exec(query, c.Name, string(c.Type), c.Amount, pq.Array(c.ApplicableClasses), c.IsAutoAssign, c.IsActive, c.ID)
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

func DeletePaymentCategory(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM payment_categories WHERE id = $1`, id)
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

// IsUniqueViolation reports whether err is Postgres' duplicate-key error.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
