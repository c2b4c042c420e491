package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quickfind/quickfind-terminal/internal/cli"
	"github.com/quickfind/quickfind-terminal/internal/logging"
	"github.com/quickfind/quickfind-terminal/internal/metrics"
	"github.com/quickfind/quickfind-terminal/pkg/files"
	"github.com/quickfind/quickfind-terminal/pkg/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search widget over HTTP and WebSocket",
		Long: `Start an HTTP server exposing the search widget.

Routes:
  /ws            one widget session per WebSocket connection
  /api/search    one-shot search (?q=&tab=)
  /api/catalog   the current catalog
  /metrics       Prometheus metrics
  /health        liveness probe

The catalog file is reloaded on change when server.watch_catalog is set.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				if err := cli.ValidateAddr(addr); err != nil {
					return err
				}
			}
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.NewCommandContext()
			settings := ctx.LoadSettingsWithDefault()
			if addr != "" {
				settings.Server.Addr = addr
			}

			catalog, err := ctx.LoadCatalog()
			if err != nil {
				return err
			}

			logger, err := logging.NewLogger(settings.Log.Level)
			if err != nil {
				return err
			}
			defer logger.Sync()

			srv := server.New(settings, catalog,
				server.WithLogger(logger),
				server.WithMetrics(metrics.New(true)),
				server.WithCatalogPath(files.CatalogPath()),
			)

			runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("starting quickfind server",
				zap.String("addr", settings.Server.Addr),
				zap.Int("items", len(catalog)))
			return srv.Run(runCtx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from settings, e.g. :8088)")
	return cmd
}
