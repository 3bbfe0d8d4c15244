package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/lineage/pkg/adapters/memory"
	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/aretw0/lineage/pkg/ports"
)

// SaveSnapshot stores the edges of h under name.
func (a *App) SaveSnapshot(ctx context.Context, store ports.SnapshotStore, name string, h *hierarchy.Hierarchy) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{
		Name:        name,
		Fingerprint: h.Fingerprint(),
		Edges:       h.Edges(),
		SavedAt:     time.Now().UTC(),
	}
	if err := store.Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to save snapshot %q: %w", name, err)
	}
	a.Logger.Info("Snapshot saved", "name", name, "nodes", h.Len(), "fingerprint", snap.Fingerprint)
	return snap, nil
}

// OpenSnapshot rebuilds the hierarchy stored under name. Integrity is checked
// by the store, see middleware.NewVerifyMiddleware.
func (a *App) OpenSnapshot(ctx context.Context, store ports.SnapshotStore, name string) (*hierarchy.Hierarchy, error) {
	snap, err := store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %q: %w", name, err)
	}

	h, err := a.Load(ctx, memory.NewLoader(snap.Edges...))
	if err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", name, err)
	}
	return h, nil
}
