package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.SnapshotStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store operation at debug level and failures at warn.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.SnapshotStore) ports.SnapshotStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) log(op, name string, start time.Time, err error) {
	if err != nil {
		m.logger.Warn("Snapshot store operation failed", "op", op, "name", name, "error", err)
		return
	}
	m.logger.Debug("Snapshot store operation", "op", op, "name", name, "duration", time.Since(start))
}

func (m *loggingMiddleware) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	start := time.Now()
	err := m.next.Save(ctx, snapshot)
	m.log("save", snapshot.Name, start, err)
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, name string) (*domain.Snapshot, error) {
	start := time.Now()
	snap, err := m.next.Load(ctx, name)
	m.log("load", name, start, err)
	return snap, err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := m.next.List(ctx)
	m.log("list", "", start, err)
	return names, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, name string) error {
	start := time.Now()
	err := m.next.Delete(ctx, name)
	m.log("delete", name, start, err)
	return err
}
