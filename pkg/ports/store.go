package ports

import (
	"context"

	"github.com/aretw0/lineage/pkg/domain"
)

// SnapshotStore defines the interface for persisting edge lists by name.
type SnapshotStore interface {
	// Save persists the snapshot, replacing any snapshot with the same name.
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// Load retrieves a snapshot by name.
	// Returns domain.ErrSnapshotNotFound if the snapshot does not exist.
	Load(ctx context.Context, name string) (*domain.Snapshot, error)

	// List returns the names of all stored snapshots, sorted.
	List(ctx context.Context) ([]string, error)

	// Delete removes a snapshot. Deleting a missing snapshot is not an error.
	Delete(ctx context.Context, name string) error
}
