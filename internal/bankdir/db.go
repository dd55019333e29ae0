// Package bankdir persists the bank master data decoded from the lookup
// table, optionally enriched with the name, city and BIC from a directory
// listing.
package bankdir

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Bank is one bank directory row. Only the routing number and the method
// identifier are mandatory; the descriptive columns stay empty when no
// directory listing was imported.
type Bank struct {
	BLZ    string
	Method byte
	Name   string
	City   string
	BIC    string
}

// InitDB initializes and returns a SQLite database connection
func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// CreateSchema creates the banks table if it does not exist yet.
func CreateSchema(db *sql.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS banks (
		blz TEXT PRIMARY KEY,
		method INTEGER NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		bic TEXT NOT NULL DEFAULT ''
	)`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// UpsertBanks inserts or updates all banks in a single transaction.
func UpsertBanks(db *sql.DB, banks []Bank) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO banks (blz, method, name, city, bic) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(blz) DO UPDATE SET method = excluded.method,
			name = excluded.name, city = excluded.city, bic = excluded.bic`
	for _, b := range banks {
		if _, err := tx.Exec(query, b.BLZ, b.Method, b.Name, b.City, b.BIC); err != nil {
			return fmt.Errorf("failed to upsert bank %s: %w", b.BLZ, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetBank fetches a single bank by its routing number
func GetBank(db *sql.DB, blz string) (*Bank, error) {
	query := `SELECT blz, method, name, city, bic FROM banks WHERE blz = ?`

	var b Bank
	var method int
	err := db.QueryRow(query, blz).Scan(&b.BLZ, &method, &b.Name, &b.City, &b.BIC)
	if err == sql.ErrNoRows {
		return nil, nil // Bank not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query bank: %w", err)
	}

	b.Method = byte(method)
	return &b, nil
}

// CountBanks returns the number of banks in the directory.
func CountBanks(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM banks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count banks: %w", err)
	}
	return count, nil
}
