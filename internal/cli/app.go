// Package cli holds the glue shared by the lineage commands: opening the
// configured source, reporting errors and long-running serve loops.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/lineage"
	"github.com/aretw0/lineage/internal/config"
	"github.com/aretw0/lineage/internal/logging"
	"github.com/aretw0/lineage/pkg/adapters/redis"
	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/aretw0/lineage/pkg/observability"
	"github.com/aretw0/lineage/pkg/persistence/middleware"
	"github.com/aretw0/lineage/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// App bundles the resolved configuration with the logger and metrics every
// command shares.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  *observability.Metrics
	Registry *prometheus.Registry
	Out      io.Writer
	Err      io.Writer
}

// NewApp builds an App from cfg. Logs go to errOut, command output to out.
func NewApp(cfg *config.Config, out, errOut io.Writer) (*App, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	return &App{
		Config:   cfg,
		Logger:   logging.NewWithWriter(errOut, level),
		Metrics:  observability.NewMetrics(reg),
		Registry: reg,
		Out:      out,
		Err:      errOut,
	}, nil
}

// Loader returns the EdgeLoader for the configured source.
func (a *App) Loader() (ports.EdgeLoader, error) {
	return lineage.LoaderFor(a.Config.Source)
}

// Open loads and builds the hierarchy from the configured source.
func (a *App) Open(ctx context.Context) (*hierarchy.Hierarchy, error) {
	loader, err := a.Loader()
	if err != nil {
		return nil, err
	}
	return a.Load(ctx, loader)
}

// Load builds a hierarchy from loader with the App's options.
func (a *App) Load(ctx context.Context, loader ports.EdgeLoader) (*hierarchy.Hierarchy, error) {
	opts := []lineage.Option{
		lineage.WithLoader(loader),
		lineage.WithLogger(a.Logger),
		lineage.WithMetrics(a.Metrics),
	}
	if a.Config.ImplicitRoots {
		opts = append(opts, lineage.WithImplicitRoots())
	}

	h, err := lineage.Open(ctx, a.Config.Source, opts...)
	if err != nil {
		return nil, err
	}
	a.Logger.Debug("Hierarchy loaded", "nodes", h.Len(), "roots", len(h.Roots()), "fingerprint", h.Fingerprint())
	return h, nil
}

// SnapshotStore connects to the configured Redis snapshot store, wrapped
// with logging and fingerprint verification. The returned func closes the connection.
func (a *App) SnapshotStore() (ports.SnapshotStore, func() error) {
	r := a.Config.Redis
	backend := redis.New(r.Addr, r.Password, r.DB, redis.WithTTL(r.TTL))
	store := middleware.Chain(backend,
		middleware.NewLoggingMiddleware(a.Logger),
		middleware.NewVerifyMiddleware(),
	)
	return store, backend.Close
}

// Printf writes command output.
func (a *App) Printf(format string, args ...any) {
	fmt.Fprintf(a.Out, format, args...)
}

// SystemMessage prints a standardized status line to the error stream.
func (a *App) SystemMessage(format string, args ...any) {
	fmt.Fprintf(a.Err, ">>> %s\n", fmt.Sprintf(format, args...))
}
