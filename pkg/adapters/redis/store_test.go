package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/lineage/pkg/adapters/redis"
	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/aretw0/lineage/pkg/persistence/middleware"
	"github.com/aretw0/lineage/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return mr, client
}

func sampleSnapshot(name string) *domain.Snapshot {
	edges := []domain.Edge{
		domain.Root("QObject"),
		domain.Inherits("ToastManager", "QObject"),
	}
	return &domain.Snapshot{
		Name:        name,
		Fingerprint: hierarchy.FingerprintEdges(edges),
		Edges:       edges,
		SavedAt:     time.Now().UTC(),
	}
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := setup(t)
	tests.SnapshotStoreContractTest(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := setup(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSnapshot("short-lived")))

	names, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Contains(t, names, "short-lived")

	// Key expiration happens inside miniredis.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "short-lived")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	// Index pruning compares against time.Now(), so real time must pass the score.
	time.Sleep(1200 * time.Millisecond)

	names, err = store.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := setup(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleSnapshot("widgets")))

	assert.True(t, mr.Exists("custom:app:widgets"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	list, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"widgets"}, list)
}

func TestRedisStore_WithVerifyMiddleware(t *testing.T) {
	_, client := setup(t)
	backendStore := redis.NewFromClient(client)
	store := middleware.Chain(backendStore, middleware.NewVerifyMiddleware())
	ctx := context.Background()

	t.Run("Fills a missing fingerprint", func(t *testing.T) {
		snap := sampleSnapshot("widgets")
		want := snap.Fingerprint
		snap.Fingerprint = ""
		require.NoError(t, store.Save(ctx, snap))

		loaded, err := store.Load(ctx, "widgets")
		require.NoError(t, err)
		assert.Equal(t, want, loaded.Fingerprint)
	})

	t.Run("Mismatch is rejected by the middleware only", func(t *testing.T) {
		snap := sampleSnapshot("tampered")
		snap.Fingerprint = "deadbeef"
		require.NoError(t, backendStore.Save(ctx, snap))

		raw, err := backendStore.Load(ctx, "tampered")
		require.NoError(t, err)
		assert.Equal(t, "deadbeef", raw.Fingerprint)

		_, err = store.Load(ctx, "tampered")
		assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
	})
}

func TestRedisStore_CorruptPayload(t *testing.T) {
	mr, client := setup(t)
	store := redis.NewFromClient(client)

	require.NoError(t, mr.Set("lineage:snapshot:broken", "not zstd at all"))

	_, err := store.Load(context.Background(), "broken")
	assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
}

func TestRedisStore_ReservedName(t *testing.T) {
	_, client := setup(t)
	store := redis.NewFromClient(client)

	err := store.Save(context.Background(), sampleSnapshot("index"))
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}
