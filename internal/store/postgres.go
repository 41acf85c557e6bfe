package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/structedit/structedit/internal/cliconfig"
)

// PostgresStore is a PresetStore backed by a native pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to dsn and ensures the presets table exists.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: connect to postgres: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.createTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) createTable(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS presets (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			config JSONB NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("store: create presets table: %w", err)
	}
	return nil
}

// Create implements PresetStore.
func (s *PostgresStore) Create(ctx context.Context, name string, preset cliconfig.PresetConfig) (Record, error) {
	data, err := json.Marshal(preset)
	if err != nil {
		return Record{}, fmt.Errorf("store: marshal preset: %w", err)
	}

	id := uuid.NewString()
	_, err = s.pool.Exec(ctx, `
		INSERT INTO presets (id, name, config) VALUES ($1, $2, $3)
	`, id, name, data)
	if err != nil {
		return Record{}, fmt.Errorf("store: insert preset %q: %w", name, err)
	}

	return Record{ID: id, Name: name, Preset: preset}, nil
}

// Get implements PresetStore.
func (s *PostgresStore) Get(ctx context.Context, name string) (Record, error) {
	var id string
	var data []byte
	err := s.pool.QueryRow(ctx, `
		SELECT id, config FROM presets WHERE name = $1
	`, name).Scan(&id, &data)
	if err != nil {
		return Record{}, ErrPresetNotFound
	}

	var preset cliconfig.PresetConfig
	if err := json.Unmarshal(data, &preset); err != nil {
		return Record{}, fmt.Errorf("store: unmarshal preset %q: %w", name, err)
	}

	return Record{ID: id, Name: name, Preset: preset}, nil
}

// List implements PresetStore.
func (s *PostgresStore) List(ctx context.Context) ([]Record, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, config FROM presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: list presets: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var id, name string
		var data []byte
		if err := rows.Scan(&id, &name, &data); err != nil {
			return nil, fmt.Errorf("store: scan preset row: %w", err)
		}
		var preset cliconfig.PresetConfig
		if err := json.Unmarshal(data, &preset); err != nil {
			return nil, fmt.Errorf("store: unmarshal preset %q: %w", name, err)
		}
		records = append(records, Record{ID: id, Name: name, Preset: preset})
	}
	return records, rows.Err()
}

// Delete implements PresetStore.
func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM presets WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("store: delete preset %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPresetNotFound
	}
	return nil
}

// Close implements PresetStore.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
