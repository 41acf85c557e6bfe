package commands

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/structedit/structedit/internal/cli/ui"
	"github.com/structedit/structedit/internal/cliconfig"
	"github.com/structedit/structedit/internal/presetbuild"
	"github.com/structedit/structedit/internal/watch"
)

// NewWatchCommand creates the watch command: re-run a preset whenever its
// target files change, pushing the rendered diff to connected clients over
// a websocket.
func NewWatchCommand() *cobra.Command {
	var (
		preset   string
		patterns []string
		addr     string
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run a preset on file changes and push rendered diffs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			loaded, err := cliconfig.Load()
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), nil, noColor))
				return err
			}
			cfg, ok := loaded.Presets[preset]
			if !ok {
				suggestions := ui.FindSimilar(preset, presetNames(loaded.Presets), nil)
				fmt.Fprint(cmd.ErrOrStderr(), ui.PresetNotFoundError(preset, suggestions, noColor))
				return fmt.Errorf("preset %q not found", preset)
			}

			pipe, err := presetbuild.Build(preset, cfg)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ScopeBuildError(err.Error(), nil, noColor))
				return err
			}

			reload := watch.NewReloadServer()
			defer reload.Close()

			mux := http.NewServeMux()
			mux.HandleFunc("/ws", reload.HandleWebSocket)
			server := &http.Server{Addr: addr, Handler: mux}
			go server.ListenAndServe()
			defer server.Close()

			run := func(files []string) error {
				reload.NotifyBuilding(files)
				start := time.Now()

				before, err := os.ReadFile(target)
				if err != nil {
					reload.NotifyError(&watch.ErrorInfo{Message: err.Error(), File: target})
					return nil
				}

				after := pipe.Run(string(before))
				diff, err := ui.RenderDiff(string(before), after, true)
				if err != nil {
					reload.NotifyError(&watch.ErrorInfo{Message: err.Error(), File: target})
					return nil
				}

				reload.NotifyRendered(preset, diff)
				reload.NotifySuccess(time.Since(start))
				return nil
			}

			watcher, err := watch.NewFileWatcher(patterns, nil, run)
			if err != nil {
				return err
			}
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("watching %s for preset %q, reload server on %s/ws", target, preset, addr), noColor)

			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "preset to re-run on change")
	cmd.Flags().StringSliceVar(&patterns, "patterns", nil, "glob patterns to watch, default all files")
	cmd.Flags().StringVar(&addr, "addr", "localhost:4000", "reload server listen address")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.MarkFlagRequired("preset")

	return cmd
}
