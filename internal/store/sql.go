package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/structedit/structedit/internal/cliconfig"
)

// SQLStore is a PresetStore backed by database/sql, using lib/pq as its
// Postgres driver. It exists alongside PostgresStore so the preset store's
// SQL path can be exercised with go-sqlmock, which has no pgx-native
// equivalent in this module's dependency surface.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore opens dsn via lib/pq and ensures the presets table exists.
func NewSQLStore(dsn string) (*SQLStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open postgres: %w", err)
	}

	s := &SQLStore{db: db}
	if err := s.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLStoreFromDB wraps an already-open *sql.DB, used by tests to inject
// a sqlmock connection.
func NewSQLStoreFromDB(db *sql.DB) (*SQLStore, error) {
	s := &SQLStore{db: db}
	if err := s.createTable(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) createTable() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS presets (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			config TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("store: create presets table: %w", err)
	}
	return nil
}

// Create implements PresetStore.
func (s *SQLStore) Create(ctx context.Context, name string, preset cliconfig.PresetConfig) (Record, error) {
	data, err := json.Marshal(preset)
	if err != nil {
		return Record{}, fmt.Errorf("store: marshal preset: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO presets (id, name, config) VALUES ($1, $2, $3)
	`, id, name, string(data))
	if err != nil {
		return Record{}, fmt.Errorf("store: insert preset %q: %w", name, err)
	}

	return Record{ID: id, Name: name, Preset: preset}, nil
}

// Get implements PresetStore.
func (s *SQLStore) Get(ctx context.Context, name string) (Record, error) {
	var id, data string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, config FROM presets WHERE name = $1
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
func (s *SQLStore) List(ctx context.Context) ([]Record, error) {
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
func (s *SQLStore) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE name = $1`, name)
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
func (s *SQLStore) Close() error {
	return s.db.Close()
}
