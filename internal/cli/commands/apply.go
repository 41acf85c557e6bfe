package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/structedit/structedit/internal/cli/ui"
	"github.com/structedit/structedit/internal/cliconfig"
	"github.com/structedit/structedit/internal/presetbuild"
	"github.com/structedit/structedit/internal/utils"
	"github.com/structedit/structedit/pipeline"
)

var knownActions = []string{
	"upper", "lower", "titlecase", "normalize", "german", "symbols", "squeeze", "replace", "deletion",
}

// NewApplyCommand creates the apply command: run a preset or an ad-hoc
// scope+action pipeline over a file or stdin.
func NewApplyCommand() *cobra.Command {
	var (
		preset      string
		regex       string
		literal     string
		language    string
		query       string
		actions     []string
		inPlace     bool
		diff        bool
		noColor     bool
		listActions bool
		dir         string
		ext         []string
	)

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Run a pipeline over a file or stdin",
		Long: `Apply builds a scope over the input (a stored preset, or an ad-hoc
--regex/--literal/--language+--query scope), runs the configured actions over
every in-scope fragment, and writes the rendered result.

Examples:

  structedit apply --preset strip-docstrings main.py
  structedit apply --regex '[a-z]+' --actions upper notes.txt
  cat config.tf | structedit apply --language hcl --query variables --actions upper`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listActions {
				for _, name := range knownActions {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			cfg := cliconfig.PresetConfig{}

			if preset != "" {
				loaded, err := cliconfig.Load()
				if err != nil {
					fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), nil, noColor))
					return err
				}
				p, ok := loaded.Presets[preset]
				if !ok {
					names := presetNames(loaded.Presets)
					suggestions := ui.FindSimilar(preset, names, nil)
					fmt.Fprint(cmd.ErrOrStderr(), ui.PresetNotFoundError(preset, suggestions, noColor))
					return fmt.Errorf("preset %q not found", preset)
				}
				cfg = p
			} else {
				cfg.Scope = cliconfig.ScopeConfig{Regex: regex, Literal: literal, Language: language, Query: query}
				cfg.Actions = actions
			}

			pipe, err := presetbuild.Build(presetLabel(preset), cfg)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ScopeBuildError(err.Error(), nil, noColor))
				return err
			}

			if dir != "" {
				return applyToDir(cmd, pipe, dir, ext, inPlace, diff, noColor)
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			result := pipe.Run(input)

			if diff {
				rendered, err := ui.RenderDiff(input, result, noColor)
				if err != nil {
					return err
				}
				if rendered == "" {
					fmt.Fprintln(cmd.OutOrStdout(), "no changes")
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}

			if inPlace {
				if len(args) == 0 {
					return fmt.Errorf("--in-place requires a file argument")
				}
				return os.WriteFile(args[0], []byte(result), 0644)
			}

			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "run a stored preset from .structedit.yaml")
	cmd.Flags().StringVar(&regex, "regex", "", "ad-hoc regex scoper")
	cmd.Flags().StringVar(&literal, "literal", "", "ad-hoc literal scoper")
	cmd.Flags().StringVar(&language, "language", "", "ad-hoc tree-sitter language (python, hcl, go)")
	cmd.Flags().StringVar(&query, "query", "", "premade query name for --language")
	cmd.Flags().StringSliceVar(&actions, "actions", nil, "ordered action specs, e.g. upper,normalize:nfc")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "write the result back to the input file")
	cmd.Flags().BoolVar(&diff, "diff", false, "print a unified diff instead of the rendered result")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&listActions, "list-actions", false, "print the known action names and exit")
	cmd.Flags().StringVar(&dir, "dir", "", "apply the pipeline to every matching file under this directory instead of a single file")
	cmd.Flags().StringSliceVar(&ext, "ext", nil, "restrict --dir to files with these extensions, e.g. .py,.tf")

	return cmd
}

// applyToDir runs pipe over every file under dir matching ext, writing
// results back in place or printing a diff per file; neither flag prints
// the rendered result to stdout, since that would interleave unreadably
// across files.
func applyToDir(cmd *cobra.Command, pipe *pipeline.Pipeline, dir string, ext []string, inPlace, diff, noColor bool) error {
	files, err := utils.FindFiles(dir, ext...)
	if err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}

	for _, path := range files {
		before, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		after := pipe.Run(string(before))
		if after == string(before) {
			continue
		}

		if diff {
			rendered, err := ui.RenderDiff(string(before), after, noColor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n%s", path, rendered)
			continue
		}

		if inPlace {
			if err := os.WriteFile(path, []byte(after), 0644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("rewrote %s", path), noColor)
		}
	}

	return nil
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func presetNames(presets map[string]cliconfig.PresetConfig) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

func presetLabel(preset string) string {
	if preset == "" {
		return "ad-hoc"
	}
	return preset
}
