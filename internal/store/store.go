// Package store persists the local workspace: data tables with their rows,
// and the test-scenario list. It is the table-storage collaborator the
// query-builder core reads snapshots from; the core itself never touches
// the database.
package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/rvale/lazygrid/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// Store manages workspace persistence
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the workspace database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// TableNames lists the stored data tables in creation order
func (s *Store) TableNames() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM data_tables ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetTable loads a table snapshot: schema plus at most limit rows in
// stored order. limit <= 0 loads all rows.
func (s *Store) GetTable(name string, limit int) (*models.Table, error) {
	table := &models.Table{Name: name}

	colRows, err := s.db.Query(`
		SELECT name, type FROM data_columns
		WHERE table_name = ?
		ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load columns: %w", err)
	}
	defer func() { _ = colRows.Close() }()

	for colRows.Next() {
		var col models.Column
		var colType string
		if err := colRows.Scan(&col.Name, &colType); err != nil {
			return nil, err
		}
		col.Type = models.ColumnType(colType)
		table.Columns = append(table.Columns, col)
	}
	if err := colRows.Err(); err != nil {
		return nil, err
	}
	if len(table.Columns) == 0 {
		return nil, fmt.Errorf("unknown table: %s", name)
	}

	query := `SELECT id, data FROM data_rows WHERE table_name = ? ORDER BY position`
	args := []any{name}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	dataRows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load rows: %w", err)
	}
	defer func() { _ = dataRows.Close() }()

	for dataRows.Next() {
		var row models.Row
		var encoded string
		if err := dataRows.Scan(&row.ID, &encoded); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(encoded), &row.Data); err != nil {
			return nil, fmt.Errorf("corrupt row %s: %w", row.ID, err)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, dataRows.Err()
}

// SaveTable stores a table snapshot, replacing any previous contents
func (s *Store) SaveTable(table *models.Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`INSERT OR IGNORE INTO data_tables (name) VALUES (?)`, table.Name); err != nil {
		return fmt.Errorf("failed to save table: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM data_columns WHERE table_name = ?`, table.Name); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM data_rows WHERE table_name = ?`, table.Name); err != nil {
		return err
	}

	for i, col := range table.Columns {
		_, err := tx.Exec(`
			INSERT INTO data_columns (table_name, name, type, position)
			VALUES (?, ?, ?, ?)`,
			table.Name, col.Name, string(col.Type), i)
		if err != nil {
			return fmt.Errorf("failed to save column %s: %w", col.Name, err)
		}
	}

	for i, row := range table.Rows {
		id := row.ID
		if id == "" {
			id = uuid.NewString()
		}
		encoded, err := json.Marshal(row.Data)
		if err != nil {
			return fmt.Errorf("failed to encode row: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO data_rows (id, table_name, data, position)
			VALUES (?, ?, ?, ?)`,
			id, table.Name, string(encoded), i)
		if err != nil {
			return fmt.Errorf("failed to save row: %w", err)
		}
	}

	return tx.Commit()
}

// Scenarios lists all stored test scenarios
func (s *Store) Scenarios() ([]models.Scenario, error) {
	rows, err := s.db.Query(`SELECT id, name, tags FROM scenarios ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var scenarios []models.Scenario
	for rows.Next() {
		var sc models.Scenario
		var tags string
		if err := rows.Scan(&sc.ID, &sc.Name, &tags); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tags), &sc.Tags); err != nil {
			return nil, fmt.Errorf("corrupt scenario %s: %w", sc.ID, err)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, rows.Err()
}

// SaveScenario inserts or updates a scenario
func (s *Store) SaveScenario(sc models.Scenario) error {
	if sc.ID == "" {
		sc.ID = uuid.NewString()
	}
	tags, err := json.Marshal(sc.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO scenarios (id, name, tags) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, tags = excluded.tags`,
		sc.ID, sc.Name, string(tags))
	if err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}
	return nil
}

// IsEmpty reports whether the workspace holds no tables yet
func (s *Store) IsEmpty() (bool, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM data_tables`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
