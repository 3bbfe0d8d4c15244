package middleware

import (
	"context"
	"fmt"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/aretw0/lineage/pkg/ports"
)

type verifyMiddleware struct {
	ports.SnapshotStore
}

// NewVerifyMiddleware fingerprints snapshots on Save when the caller left
// the fingerprint empty, and rejects loaded snapshots whose edges no longer
// match their fingerprint with domain.ErrCorruptSnapshot.
func NewVerifyMiddleware() Middleware {
	return func(next ports.SnapshotStore) ports.SnapshotStore {
		return &verifyMiddleware{SnapshotStore: next}
	}
}

func (m *verifyMiddleware) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot.Fingerprint == "" {
		copied := *snapshot
		copied.Fingerprint = hierarchy.FingerprintEdges(snapshot.Edges)
		snapshot = &copied
	}
	return m.SnapshotStore.Save(ctx, snapshot)
}

func (m *verifyMiddleware) Load(ctx context.Context, name string) (*domain.Snapshot, error) {
	snap, err := m.SnapshotStore.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	if hierarchy.FingerprintEdges(snap.Edges) != snap.Fingerprint {
		return nil, fmt.Errorf("snapshot %q: %w", name, domain.ErrCorruptSnapshot)
	}
	return snap, nil
}
