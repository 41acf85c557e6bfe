package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/structedit/structedit/internal/cli/ui"
	"github.com/structedit/structedit/internal/cliconfig"
)

// NewInitCommand creates the init command: an interactive wizard that walks
// the user through a scoper and an action chain and writes the result as a
// named preset in .structedit.yaml.
func NewInitCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a preset and write it to .structedit.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliconfig.Load()
			if err != nil {
				cfg = &cliconfig.Config{}
			}
			if cfg.Presets == nil {
				cfg.Presets = map[string]cliconfig.PresetConfig{}
			}

			var name string
			if err := survey.AskOne(&survey.Input{Message: "Preset name:"}, &name, survey.WithValidator(survey.Required)); err != nil {
				return err
			}

			var scopeKind string
			if err := survey.AskOne(&survey.Select{
				Message: "Scope kind:",
				Options: []string{"regex", "literal", "language"},
			}, &scopeKind); err != nil {
				return err
			}

			scope := cliconfig.ScopeConfig{}
			switch scopeKind {
			case "regex":
				if err := survey.AskOne(&survey.Input{Message: "Regex pattern:"}, &scope.Regex, survey.WithValidator(survey.Required)); err != nil {
					return err
				}
			case "literal":
				if err := survey.AskOne(&survey.Input{Message: "Literal text:"}, &scope.Literal, survey.WithValidator(survey.Required)); err != nil {
					return err
				}
			case "language":
				if err := survey.AskOne(&survey.Select{
					Message: "Language:",
					Options: []string{"python", "hcl", "go"},
				}, &scope.Language); err != nil {
					return err
				}
				if err := survey.AskOne(&survey.Input{Message: "Premade query name:"}, &scope.Query, survey.WithValidator(survey.Required)); err != nil {
					return err
				}
			}

			var actions []string
			if err := survey.AskOne(&survey.MultiSelect{
				Message: "Actions to apply, in order selected:",
				Options: knownActions,
			}, &actions); err != nil {
				return err
			}

			cfg.Presets[name] = cliconfig.PresetConfig{Scope: scope, Actions: actions}

			if err := cliconfig.Save(cfg); err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), nil, noColor))
				return err
			}

			ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("wrote preset %q to .structedit.yaml", name), noColor)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}
