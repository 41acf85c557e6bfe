package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "structedit",
		Short: "A structural stream editor",
		Long: color.CyanString(`structedit - a structural stream editor

structedit carves text into in-scope and out-of-scope regions using
composable scopers (regex, literal, tree-sitter language queries), then
runs a pipeline of actions over the in-scope fragments, leaving everything
else untouched.

Commands:
  apply    run a preset or ad-hoc pipeline over a file or stdin
  scope    preview the scopes a pipeline would select, without applying actions
  init     interactive wizard that writes a preset to .structedit.yaml
  watch    re-run a preset on file changes and push rendered diffs
  serve    run the HTTP transform service
  lsp      run the language server over stdio
  presets  list, inspect, or manage stored presets`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewApplyCommand())
	rootCmd.AddCommand(NewScopeCommand())
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewWatchCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewLSPCommand())
	rootCmd.AddCommand(NewPresetsCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the structedit version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			titleColor.Print("structedit version: ")
			valueColor.Println(Version)

			titleColor.Print("Git commit: ")
			valueColor.Println(GitCommit)

			titleColor.Print("Build date: ")
			valueColor.Println(BuildDate)

			titleColor.Print("Go version: ")
			valueColor.Println(goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
