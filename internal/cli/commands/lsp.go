package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structedit/structedit/internal/cli/ui"
	"github.com/structedit/structedit/internal/cliconfig"
	"github.com/structedit/structedit/internal/lsp"
	"github.com/structedit/structedit/internal/presetbuild"
	"github.com/structedit/structedit/pipeline"
)

// NewLSPCommand creates the lsp command: run the language server over
// stdio, exposing every configured preset as a code action.
func NewLSPCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run the language server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliconfig.Load()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), nil, noColor))
				return err
			}

			pipelines := make(map[string]*pipeline.Pipeline, len(cfg.Presets))
			for name, preset := range cfg.Presets {
				pipe, err := presetbuild.Build(name, preset)
				if err != nil {
					fmt.Fprint(cmd.ErrOrStderr(), ui.ScopeBuildError(err.Error(), nil, noColor))
					return err
				}
				pipelines[name] = pipe
			}

			server := lsp.NewServer(pipelines)
			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
