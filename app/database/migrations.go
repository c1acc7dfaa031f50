package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist and applies
// incremental column additions for older databases.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	// 1. Create tables if they don't exist
	tables := []string{
		`CREATE TABLE IF NOT EXISTS admins (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			last_login TIMESTAMP WITH TIME ZONE,
			reset_otp VARCHAR(10),
			reset_otp_expiry TIMESTAMP WITH TIME ZONE,
			otp_verified BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			prn VARCHAR(50) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL,
			year VARCHAR(20),
			division VARCHAR(20),
			academic_year VARCHAR(20),
			semester VARCHAR(20),
			roll_no VARCHAR(20),
			email VARCHAR(255),
			phone VARCHAR(20),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS student_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
			type VARCHAR(10) NOT NULL CHECK (type IN ('fee','fine')),
			category VARCHAR(100) NOT NULL DEFAULT 'Others',
			reason TEXT,
			receipt_number VARCHAR(30) NOT NULL,
			date DATE NOT NULL,
			is_paid BOOLEAN NOT NULL DEFAULT false,
			paid_date TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenditures (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
			description TEXT NOT NULL,
			category VARCHAR(100) NOT NULL DEFAULT 'Others',
			department VARCHAR(100),
			date DATE NOT NULL,
			receipt_number VARCHAR(50),
			notes TEXT,
			added_by UUID REFERENCES admins(id),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS payment_categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL,
			type VARCHAR(10) NOT NULL CHECK (type IN ('fee','fine')),
			amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			applicable_classes TEXT[] NOT NULL DEFAULT '{}',
			is_auto_assign BOOLEAN NOT NULL DEFAULT false,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS ledger_entries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			category_id UUID NOT NULL REFERENCES payment_categories(id) ON DELETE CASCADE,
			academic_year VARCHAR(20) NOT NULL,
			expected_amount NUMERIC(12,2) NOT NULL CHECK (expected_amount >= 0),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (student_id, category_id, academic_year)
		)`,
		`CREATE TABLE IF NOT EXISTS ledger_entry_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			entry_id UUID NOT NULL REFERENCES ledger_entries(id) ON DELETE CASCADE,
			amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
			mode VARCHAR(30),
			remarks TEXT,
			date TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	// 2. Indexes for the hot query paths
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_students_prn ON students(prn)`,
		`CREATE INDEX IF NOT EXISTS idx_students_is_active ON students(is_active)`,
		`CREATE INDEX IF NOT EXISTS idx_student_payments_student_id ON student_payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_student_payments_date ON student_payments(date)`,
		`CREATE INDEX IF NOT EXISTS idx_expenditures_date ON expenditures(date)`,
		`CREATE INDEX IF NOT EXISTS idx_expenditures_category ON expenditures(category)`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_entries_student_id ON ledger_entries(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ledger_entry_payments_entry_id ON ledger_entry_payments(entry_id)`,
	}

	for _, m := range indexes {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error creating index: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
