package lineage

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lineage/pkg/adapters/doxygen"
	loamAdapter "github.com/aretw0/lineage/pkg/adapters/loam"
	"github.com/aretw0/lineage/pkg/adapters/manifest"
	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/aretw0/lineage/pkg/observability"
	"github.com/aretw0/lineage/pkg/ports"
)

// Version is the release version of the module.
//
//go:embed VERSION
var Version string

// config collects what Open needs besides the source.
type config struct {
	loader        ports.EdgeLoader
	logger        *slog.Logger
	metrics       *observability.Metrics
	implicitRoots bool
}

// Option defines a functional option for Open and Load.
type Option func(*config)

// WithLoader injects a custom EdgeLoader, bypassing source detection.
func WithLoader(l ports.EdgeLoader) Option {
	return func(c *config) {
		c.loader = l
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics records build duration and size in m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithImplicitRoots turns parents that are referenced but never declared into roots.
func WithImplicitRoots() Option {
	return func(c *config) {
		c.implicitRoots = true
	}
}

// LoaderFor picks an EdgeLoader for source:
// a directory is a Loam repository, *.js a Doxygen hierarchy index, and
// *.yaml, *.yml or *.json a manifest.
func LoaderFor(source string) (ports.EdgeLoader, error) {
	if source == "" {
		return nil, fmt.Errorf("source is required when no custom loader is provided")
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("invalid source: %w", err)
	}
	if info.IsDir() {
		return loamAdapter.Open(source)
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".js":
		return doxygen.NewLoader(source), nil
	case ".yaml", ".yml", ".json":
		return manifest.NewLoader(source), nil
	}
	return nil, fmt.Errorf("unsupported source %q: expected a directory, .js, .yaml, .yml or .json", source)
}

// Open loads the hierarchy described by source.
// If WithLoader is provided, source may be empty and is only used in logs.
func Open(ctx context.Context, source string, opts ...Option) (*hierarchy.Hierarchy, error) {
	cfg := newConfig(opts)
	if cfg.loader == nil {
		loader, err := LoaderFor(source)
		if err != nil {
			return nil, err
		}
		cfg.loader = loader
	}
	if source != "" {
		cfg.logger = cfg.logger.With("source", source)
	}
	return load(ctx, cfg)
}

// Load builds a hierarchy from the edges produced by loader.
func Load(ctx context.Context, loader ports.EdgeLoader, opts ...Option) (*hierarchy.Hierarchy, error) {
	cfg := newConfig(opts)
	cfg.loader = loader
	return load(ctx, cfg)
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}

func load(ctx context.Context, cfg *config) (*hierarchy.Hierarchy, error) {
	edges, err := cfg.loader.LoadEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load edges: %w", err)
	}

	buildOpts := []hierarchy.Option{hierarchy.WithLogger(cfg.logger)}
	if cfg.implicitRoots {
		buildOpts = append(buildOpts, hierarchy.WithImplicitRoots())
	}

	start := time.Now()
	h, err := hierarchy.Build(edges, buildOpts...)
	if err != nil {
		return nil, err
	}
	cfg.metrics.ObserveBuild(time.Since(start), h.Len())
	return h, nil
}
