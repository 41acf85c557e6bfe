package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structedit/structedit/internal/cli/ui"
	"github.com/structedit/structedit/internal/cliconfig"
	"github.com/structedit/structedit/internal/store"
)

// NewPresetsCommand creates the presets command group: list, show, and
// delete presets persisted in the configured store backend.
func NewPresetsCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List, inspect, or delete stored presets",
	}

	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newPresetsListCommand(&noColor))
	cmd.AddCommand(newPresetsShowCommand(&noColor))
	cmd.AddCommand(newPresetsDeleteCommand(&noColor))

	return cmd
}

func newPresetsListCommand(noColor *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.StoreError(err.Error(), "cannot reach the preset store", nil, *noColor))
				return err
			}
			defer s.Close()

			records, err := s.List(context.Background())
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.StoreError(err.Error(), "listing presets failed", nil, *noColor))
				return err
			}

			table := ui.NewTable(cmd.OutOrStdout(), []string{"NAME", "ACTIONS"}, nil)
			for _, r := range records {
				table.AddRow(r.Name, fmt.Sprintf("%v", r.Preset.Actions))
			}
			table.Render()

			return nil
		},
	}
}

func newPresetsShowCommand(noColor *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the configuration of a stored preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			s, err := openStore()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.StoreError(err.Error(), "cannot reach the preset store", nil, *noColor))
				return err
			}
			defer s.Close()

			rec, err := s.Get(context.Background(), name)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.PresetNotFoundError(name, nil, *noColor))
				return err
			}

			table := ui.NewKeyValueTable(cmd.OutOrStdout(), *noColor)
			table.AddRow("name", rec.Name)
			table.AddRow("regex", rec.Preset.Scope.Regex)
			table.AddRow("literal", rec.Preset.Scope.Literal)
			table.AddRow("language", rec.Preset.Scope.Language)
			table.AddRow("query", rec.Preset.Scope.Query)
			table.AddRow("actions", fmt.Sprintf("%v", rec.Preset.Actions))
			table.Render()

			return nil
		},
	}
}

func newPresetsDeleteCommand(noColor *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			s, err := openStore()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.StoreError(err.Error(), "cannot reach the preset store", nil, *noColor))
				return err
			}
			defer s.Close()

			if err := s.Delete(context.Background(), name); err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.PresetNotFoundError(name, nil, *noColor))
				return err
			}

			ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("deleted preset %q", name), *noColor)
			return nil
		},
	}
}

// openStore opens the preset store configured in .structedit.yaml, defaulting
// to the sqlite backend when no config file is present.
func openStore() (store.PresetStore, error) {
	cfg, err := cliconfig.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	switch cfg.Store.Driver {
	case "postgres":
		return store.NewSQLStore(cfg.Store.DSN)
	case "", "sqlite":
		dsn := cfg.Store.DSN
		if dsn == "" {
			dsn = ".structedit/presets.db"
		}
		return store.NewSQLiteStore(dsn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
