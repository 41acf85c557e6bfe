// Package store persists named presets (scoper+action pipelines) so the CLI,
// the transform service, and the LSP server can all resolve a preset name to
// the same configuration without re-reading .structedit.yaml.
package store

import (
	"context"
	"errors"

	"github.com/structedit/structedit/internal/cliconfig"
)

// ErrPresetNotFound is returned by Get and Delete when name has no record.
var ErrPresetNotFound = errors.New("store: preset not found")

// ErrPresetAlreadyExists reports a preset name that is already taken. The
// stores in this package do not return it: Create on a taken name fails with
// the wrapped insert error from the name column's UNIQUE constraint.
var ErrPresetAlreadyExists = errors.New("store: preset already exists")

// Record is a stored preset: its generated ID, name, and configuration.
type Record struct {
	ID     string
	Name   string
	Preset cliconfig.PresetConfig
}

// PresetStore persists named presets. Implementations: Postgres (pgx,
// native), SQL (database/sql + lib/pq, mockable), and SQLite
// (mattn/go-sqlite3) for local/offline use.
type PresetStore interface {
	Create(ctx context.Context, name string, preset cliconfig.PresetConfig) (Record, error)
	Get(ctx context.Context, name string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, name string) error
	Close() error
}
