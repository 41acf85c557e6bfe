package main

import (
	"os"

	"github.com/structedit/structedit/internal/cli/commands"
)

// Version information, set at build time via -ldflags.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
	goVersion = "unknown"
)

func main() {
	commands.Version = version
	commands.GitCommit = gitCommit
	commands.BuildDate = buildDate
	commands.GoVersion = goVersion

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
