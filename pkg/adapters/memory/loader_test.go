package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/lineage/pkg/adapters/memory"
	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
	contract "github.com/aretw0/lineage/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLoader_Contract(t *testing.T) {
	edges := []domain.Edge{
		domain.Inherits("B", "A"),
		domain.Root("A"),
	}
	contract.EdgeLoaderContractTest(t, memory.NewLoader(edges...), edges)
}

func TestInMemoryLoader_FromHierarchy(t *testing.T) {
	h, err := hierarchy.Build([]domain.Edge{domain.Inherits("B", "A"), domain.Root("A")})
	require.NoError(t, err)

	edges, err := memory.NewFromHierarchy(h).LoadEdges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Edge{domain.Root("A"), domain.Inherits("B", "A")}, edges)
}

func TestInMemoryLoader_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.NewLoader(domain.Root("A")).LoadEdges(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
