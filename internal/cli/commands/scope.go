package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structedit/structedit/internal/cli/ui"
	"github.com/structedit/structedit/internal/cliconfig"
	"github.com/structedit/structedit/internal/presetbuild"
	"github.com/structedit/structedit/scope"
)

// NewScopeCommand creates the scope command: preview what a scoper selects
// without running any action.
func NewScopeCommand() *cobra.Command {
	var (
		preset   string
		regex    string
		literal  string
		language string
		query    string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "scope [file]",
		Short: "Preview the scopes a pipeline would select",
		Long: `Scope builds and prints the in/out regions a scoper would carve from the
input, without running any action. Useful for checking a regex or tree-sitter
query in isolation before wiring it into a preset.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cliconfig.PresetConfig{}

			if preset != "" {
				loaded, err := cliconfig.Load()
				if err != nil {
					fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), nil, noColor))
					return err
				}
				p, ok := loaded.Presets[preset]
				if !ok {
					suggestions := ui.FindSimilar(preset, presetNames(loaded.Presets), nil)
					fmt.Fprint(cmd.ErrOrStderr(), ui.PresetNotFoundError(preset, suggestions, noColor))
					return fmt.Errorf("preset %q not found", preset)
				}
				cfg = p
			} else {
				cfg.Scope = cliconfig.ScopeConfig{Regex: regex, Literal: literal, Language: language, Query: query}
			}

			pipe, err := presetbuild.Build(presetLabel(preset), cfg)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ScopeBuildError(err.Error(), nil, noColor))
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			scopes := pipe.Scopes(input)
			section := ui.NewSection(cmd.OutOrStdout(), fmt.Sprintf("%d scope(s)", len(scopes)), noColor)
			for i, s := range scopes {
				kind := "out"
				if s.Kind == scope.In {
					kind = "in"
				}
				section.AddLine(fmt.Sprintf("[%d] %-3s %q", i, kind, s.Bytes))
			}
			section.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "run a stored preset from .structedit.yaml")
	cmd.Flags().StringVar(&regex, "regex", "", "ad-hoc regex scoper")
	cmd.Flags().StringVar(&literal, "literal", "", "ad-hoc literal scoper")
	cmd.Flags().StringVar(&language, "language", "", "ad-hoc tree-sitter language (python, hcl, go)")
	cmd.Flags().StringVar(&query, "query", "", "premade query name for --language")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
