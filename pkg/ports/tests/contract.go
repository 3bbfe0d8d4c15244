package tests

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/aretw0/lineage/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// EdgeLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.EdgeLoader.
func EdgeLoaderContractTest(t *testing.T, loader ports.EdgeLoader, want []domain.Edge) {
	t.Helper()
	ctx := context.Background()

	t.Run("LoadEdges", func(t *testing.T) {
		edges, err := loader.LoadEdges(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, edges)
	})

	t.Run("LoadEdges_Repeatable", func(t *testing.T) {
		first, err := loader.LoadEdges(ctx)
		require.NoError(t, err)
		second, err := loader.LoadEdges(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("LoadEdges_Builds", func(t *testing.T) {
		edges, err := loader.LoadEdges(ctx)
		require.NoError(t, err)
		_, err = hierarchy.Build(edges)
		assert.NoError(t, err)
	})
}

// SnapshotStoreContractTest is a reusable test suite that verifies if an adapter complies with ports.SnapshotStore.
func SnapshotStoreContractTest(t *testing.T, store ports.SnapshotStore) {
	t.Helper()
	ctx := context.Background()

	edges := []domain.Edge{
		domain.Root("LoggingBaseClass"),
		{Child: "Dialog", Parent: "LoggingBaseClass", Link: "classDialog.html"},
		domain.Root("QDialog"),
		domain.Realizes("Dialog", "QDialog"),
	}
	snap := &domain.Snapshot{
		Name:        "widgets",
		Fingerprint: hierarchy.FingerprintEdges(edges),
		Edges:       edges,
		SavedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Save_Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, snap))

		loaded, err := store.Load(ctx, "widgets")
		require.NoError(t, err)
		assert.Equal(t, snap.Name, loaded.Name)
		assert.Equal(t, snap.Fingerprint, loaded.Fingerprint)
		assert.Equal(t, snap.Edges, loaded.Edges)
		assert.True(t, snap.SavedAt.Equal(loaded.SavedAt))
	})

	t.Run("Save_Overwrites", func(t *testing.T) {
		smaller := &domain.Snapshot{
			Name:        "widgets",
			Fingerprint: hierarchy.FingerprintEdges(edges[:1]),
			Edges:       edges[:1],
			SavedAt:     snap.SavedAt,
		}
		require.NoError(t, store.Save(ctx, smaller))

		loaded, err := store.Load(ctx, "widgets")
		require.NoError(t, err)
		assert.Len(t, loaded.Edges, 1)
	})

	t.Run("List", func(t *testing.T) {
		other := *snap
		other.Name = "another"
		require.NoError(t, store.Save(ctx, &other))

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"another", "widgets"}, names)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "widgets"))
		require.NoError(t, store.Delete(ctx, "widgets"))

		_, err := store.Load(ctx, "widgets")
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"another"}, names)
	})
}
