package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"flowerytools/internal/extractor"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

var _ CatalogStore = (*SQLiteStore)(nil)

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS controls (
			name TEXT PRIMARY KEY,
			base_class TEXT,
			description TEXT,
			source_path TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS properties (
			control TEXT,
			ordinal INTEGER,
			name TEXT,
			type TEXT,
			default_value TEXT,
			description TEXT,
			PRIMARY KEY (control, ordinal)
		);`,
		`CREATE TABLE IF NOT EXISTS enums (
			control TEXT,
			ordinal INTEGER,
			name TEXT,
			description TEXT,
			members JSON,
			PRIMARY KEY (control, ordinal)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_properties_name ON properties(name);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveCatalog replaces the whole catalog in one transaction, so controls
// that disappeared from the sources disappear from the catalog too.
func (s *SQLiteStore) SaveCatalog(ctx context.Context, controls []extractor.ControlRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"controls", "properties", "enums"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	controlStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO controls (name, base_class, description, source_path)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			base_class=excluded.base_class,
			description=excluded.description,
			source_path=excluded.source_path
	`)
	if err != nil {
		return err
	}
	defer controlStmt.Close()

	propStmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO properties (control, ordinal, name, type, default_value, description)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer propStmt.Close()

	enumStmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO enums (control, ordinal, name, description, members)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer enumStmt.Close()

	for _, c := range controls {
		if _, err := controlStmt.ExecContext(ctx, c.Name, c.BaseClass, c.Description, c.SourcePath); err != nil {
			return fmt.Errorf("failed to save control %s: %w", c.Name, err)
		}
		for i, p := range c.Properties {
			if _, err := propStmt.ExecContext(ctx, c.Name, i, p.Name, p.Type, p.Default, p.Description); err != nil {
				return fmt.Errorf("failed to save property %s.%s: %w", c.Name, p.Name, err)
			}
		}
		for i, e := range c.Enums {
			members, err := json.Marshal(e.Values)
			if err != nil {
				return err
			}
			if _, err := enumStmt.ExecContext(ctx, c.Name, i, e.Name, e.Description, members); err != nil {
				return fmt.Errorf("failed to save enum %s.%s: %w", c.Name, e.Name, err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadCatalog(ctx context.Context) ([]extractor.ControlRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, base_class, description, source_path FROM controls ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query controls: %w", err)
	}
	defer rows.Close()

	var controls []extractor.ControlRecord
	index := make(map[string]int)
	for rows.Next() {
		var c extractor.ControlRecord
		if err := rows.Scan(&c.Name, &c.BaseClass, &c.Description, &c.SourcePath); err != nil {
			return nil, fmt.Errorf("failed to scan control: %w", err)
		}
		index[c.Name] = len(controls)
		controls = append(controls, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	propRows, err := s.db.QueryContext(ctx, "SELECT control, name, type, default_value, description FROM properties ORDER BY control, ordinal")
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer propRows.Close()

	for propRows.Next() {
		var control string
		var p extractor.PropertyRecord
		if err := propRows.Scan(&control, &p.Name, &p.Type, &p.Default, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		if i, ok := index[control]; ok {
			controls[i].Properties = append(controls[i].Properties, p)
		}
	}
	if err := propRows.Err(); err != nil {
		return nil, err
	}

	enumRows, err := s.db.QueryContext(ctx, "SELECT control, name, description, members FROM enums ORDER BY control, ordinal")
	if err != nil {
		return nil, fmt.Errorf("failed to query enums: %w", err)
	}
	defer enumRows.Close()

	for enumRows.Next() {
		var control string
		var members []byte
		var e extractor.EnumRecord
		if err := enumRows.Scan(&control, &e.Name, &e.Description, &members); err != nil {
			return nil, fmt.Errorf("failed to scan enum: %w", err)
		}
		if err := json.Unmarshal(members, &e.Values); err != nil {
			return nil, fmt.Errorf("failed to decode members of %s: %w", e.Name, err)
		}
		if i, ok := index[control]; ok {
			controls[i].Enums = append(controls[i].Enums, e)
		}
	}
	return controls, enumRows.Err()
}

// GetControl returns sql.ErrNoRows when name is not in the catalog.
func (s *SQLiteStore) GetControl(ctx context.Context, name string) (*extractor.ControlRecord, error) {
	controls, err := s.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	for i := range controls {
		if controls[i].Name == name {
			return &controls[i], nil
		}
	}
	return nil, sql.ErrNoRows
}
