package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/structedit/structedit/internal/cliconfig"
)

// SQLiteStore is a PresetStore backed by a local SQLite file, for offline
// use and development without a Postgres instance.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) the SQLite database at path
// and ensures the presets table exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) createTable() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS presets (
			id TEXT PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			config TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("store: create presets table: %w", err)
	}
	return nil
}

// Create implements PresetStore.
func (s *SQLiteStore) Create(ctx context.Context, name string, preset cliconfig.PresetConfig) (Record, error) {
	data, err := json.Marshal(preset)
	if err != nil {
		return Record{}, fmt.Errorf("store: marshal preset: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO presets (id, name, config) VALUES (?, ?, ?)
	`, id, name, string(data))
	if err != nil {
		return Record{}, fmt.Errorf("store: insert preset %q: %w", name, err)
	}

	return Record{ID: id, Name: name, Preset: preset}, nil
}

// Get implements PresetStore.
func (s *SQLiteStore) Get(ctx context.Context, name string) (Record, error) {
	var id, data string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, config FROM presets WHERE name = ?
	`, name).Scan(&id, &data)
	if err == sql.ErrNoRows {
		return Record{}, ErrPresetNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("store: query preset %q: %w", name, err)
	}

	var preset cliconfig.PresetConfig
	if err := json.Unmarshal([]byte(data), &preset); err != nil {
		return Record{}, fmt.Errorf("store: unmarshal preset %q: %w", name, err)
	}

	return Record{ID: id, Name: name, Preset: preset}, nil
}

// List implements PresetStore.
func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, config FROM presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list presets: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var id, name, data string
		if err := rows.Scan(&id, &name, &data); err != nil {
			return nil, fmt.Errorf("store: scan preset row: %w", err)
		}
		var preset cliconfig.PresetConfig
		if err := json.Unmarshal([]byte(data), &preset); err != nil {
			return nil, fmt.Errorf("store: unmarshal preset %q: %w", name, err)
		}
		records = append(records, Record{ID: id, Name: name, Preset: preset})
	}
	return records, rows.Err()
}

// Delete implements PresetStore.
func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("store: delete preset %q: %w", name, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: rows affected: %w", err)
	}
	if rows == 0 {
		return ErrPresetNotFound
	}
	return nil
}

// Close implements PresetStore.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
