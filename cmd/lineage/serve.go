package main

import (
	"strings"

	"github.com/aretw0/lineage"
	httpAdapter "github.com/aretw0/lineage/pkg/adapters/http"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only HTTP server",
	Long: `Serves hierarchy queries and renderings as JSON over HTTP, with Prometheus
metrics on /metrics. With --watch, the hierarchy is rebuilt whenever the source
directory changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		loader, err := app.Loader()
		if err != nil {
			return err
		}
		h, err := app.Load(ctx, loader)
		if err != nil {
			return err
		}
		loaded = h

		srv, err := httpAdapter.NewServer(h,
			httpAdapter.WithLogger(app.Logger),
			httpAdapter.WithMetrics(app.Metrics, app.Registry),
			httpAdapter.WithVersion(strings.TrimSpace(lineage.Version)),
		)
		if err != nil {
			return err
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return app.ListenAndServe(ctx, ":"+app.Config.HTTP.Port, srv.Handler())
		})
		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			g.Go(func() error {
				return app.WatchAndReload(ctx, loader, srv)
			})
		}
		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Bool("watch", false, "Reload the hierarchy when the source changes")
}
