package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/structedit/structedit/internal/cache"
	"github.com/structedit/structedit/internal/cli/ui"
	"github.com/structedit/structedit/internal/cliconfig"
	"github.com/structedit/structedit/internal/presetbuild"
	"github.com/structedit/structedit/internal/ratelimit"
	"github.com/structedit/structedit/internal/transform"
	"github.com/structedit/structedit/internal/transform/server"
	"github.com/structedit/structedit/pipeline"
)

// NewServeCommand creates the serve command: run every configured preset as
// a route on the transform HTTP service.
func NewServeCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP transform service",
		Long:  `Serve exposes every preset in .structedit.yaml as POST /transform/{preset}.`,
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

			router := transform.NewRouterWithOptions(pipelines, transform.RouterOptions{
				Cache:   buildCache(cfg.Cache),
				Limiter: ratelimit.NewTokenBucket(),
			})

			addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
			defaults := server.DefaultConfig(router)
			defaults.Address = addr

			srv, err := server.New(defaults)
			if err != nil {
				return err
			}

			ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("serving %d preset(s) on %s", len(pipelines), addr), noColor)

			return server.StartWithGracefulShutdown(srv, server.DefaultShutdownConfig())
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

// buildCache resolves the configured cache driver for the transform
// service, falling back to an in-memory cache for anything but an
// explicit "redis" driver or "none".
func buildCache(cfg cliconfig.CacheConfig) cache.Cache {
	switch cfg.Driver {
	case "none":
		return nil
	case "redis":
		redisCfg := cache.DefaultRedisConfig()
		if cfg.Addr != "" {
			redisCfg.Addr = cfg.Addr
		}
		c, err := cache.NewRedisCacheWithConfig(redisCfg)
		if err != nil {
			return cache.NewMemoryCache()
		}
		return c
	default:
		return cache.NewMemoryCache()
	}
}
