package hierarchy

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	h, err := Build(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Roots())
	assert.Empty(t, h.Leaves())
}

func TestBuild_ChildBeforeParent(t *testing.T) {
	h, err := Build([]domain.Edge{
		domain.Inherits("B", "A"),
		domain.Root("A"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, h.Roots())

	ancestors, err := h.AncestorsOf("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ancestors)

	assert.Equal(t, []string{"B"}, h.Leaves())
}

func TestBuild_DeepDeferral(t *testing.T) {
	h, err := Build([]domain.Edge{
		domain.Inherits("D", "C"),
		domain.Inherits("C", "B"),
		domain.Inherits("B", "A"),
		domain.Root("A"),
	})
	require.NoError(t, err)

	ancestors, err := h.AncestorsOf("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, ancestors)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name     string
		edges    []domain.Edge
		wantErr  error
		wantName string
	}{
		{
			name:     "Mutual Cycle",
			edges:    []domain.Edge{domain.Inherits("A", "B"), domain.Inherits("B", "A")},
			wantErr:  domain.ErrCyclicReference,
			wantName: "A",
		},
		{
			name:     "Self Parent",
			edges:    []domain.Edge{domain.Inherits("A", "A")},
			wantErr:  domain.ErrCyclicReference,
			wantName: "A",
		},
		{
			name: "Node Hanging Under Cycle",
			edges: []domain.Edge{
				domain.Inherits("C", "A"),
				domain.Inherits("A", "B"),
				domain.Inherits("B", "A"),
			},
			wantErr:  domain.ErrCyclicReference,
			wantName: "A",
		},
		{
			name:     "Unknown Parent",
			edges:    []domain.Edge{domain.Inherits("B", "A")},
			wantErr:  domain.ErrUnknownParent,
			wantName: "B",
		},
		{
			name: "Unknown Grandparent",
			edges: []domain.Edge{
				domain.Inherits("C", "B"),
				domain.Inherits("B", "A"),
			},
			wantErr:  domain.ErrUnknownParent,
			wantName: "B",
		},
		{
			name: "Conflicting Parents",
			edges: []domain.Edge{
				domain.Root("A"),
				domain.Root("Q"),
				domain.Inherits("X", "A"),
				domain.Inherits("X", "Q"),
			},
			wantErr:  domain.ErrDuplicateName,
			wantName: "X",
		},
		{
			name:     "Root Then Child",
			edges:    []domain.Edge{domain.Root("A"), domain.Root("X"), domain.Inherits("X", "A")},
			wantErr:  domain.ErrDuplicateName,
			wantName: "X",
		},
		{
			name:     "Empty Name",
			edges:    []domain.Edge{domain.Root("")},
			wantErr:  domain.ErrInvalidName,
			wantName: "",
		},
		{
			name: "Realization Of Unknown Interface",
			edges: []domain.Edge{
				domain.Root("A"),
				domain.Realizes("A", "IFoo"),
			},
			wantErr:  domain.ErrUnknownParent,
			wantName: "A",
		},
		{
			name: "Realization By Unknown Node",
			edges: []domain.Edge{
				domain.Root("IFoo"),
				domain.Realizes("A", "IFoo"),
			},
			wantErr:  domain.ErrUnknownNode,
			wantName: "A",
		},
		{
			name: "Realization Closing A Loop",
			edges: []domain.Edge{
				domain.Root("A"),
				domain.Inherits("B", "A"),
				domain.Realizes("A", "B"),
			},
			wantErr:  domain.ErrCyclicReference,
			wantName: "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Build(tt.edges)
			assert.Nil(t, h, "failed build must not expose a hierarchy")
			require.ErrorIs(t, err, tt.wantErr)

			name, ok := domain.OffendingName(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestBuild_RepeatedDeclarationMerged(t *testing.T) {
	h, err := Build([]domain.Edge{
		domain.Root("A"),
		domain.Inherits("B", "A"),
		domain.Inherits("B", "A"),
		domain.Root("A"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, h.Len())
	children, err := h.ChildrenOf("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, children)
}

func TestBuild_ImplicitRoots(t *testing.T) {
	edges := []domain.Edge{
		domain.Inherits("Dialog", "QDialog"),
		domain.Inherits("MdiWindow", "MainWindowBase"),
		domain.Inherits("MainWindowBase", "QMainWindow"),
	}

	_, err := Build(edges)
	require.ErrorIs(t, err, domain.ErrUnknownParent)

	h, err := Build(edges, WithImplicitRoots())
	require.NoError(t, err)
	assert.Equal(t, []string{"QDialog", "QMainWindow"}, h.Roots())

	depth, err := h.DepthOf("MdiWindow")
	require.NoError(t, err)
	assert.Equal(t, 2, depth)
}

func TestBuild_Realizations(t *testing.T) {
	h, err := Build([]domain.Edge{
		domain.Root("IDeserializableFromJson"),
		domain.Inherits("HeaderState", "IDeserializableFromJson"),
		domain.Root("ISerializableToJson"),
		domain.Realizes("HeaderState", "ISerializableToJson"),
		domain.Realizes("HeaderState", "ISerializableToJson"),
	})
	require.NoError(t, err)

	realizes, err := h.Realizes("HeaderState")
	require.NoError(t, err)
	assert.Equal(t, []string{"ISerializableToJson"}, realizes)

	ancestors, err := h.AncestorsOf("HeaderState")
	require.NoError(t, err)
	assert.Equal(t, []string{"IDeserializableFromJson"}, ancestors, "realizations are excluded from ancestors")

	depth, err := h.DepthOf("HeaderState")
	require.NoError(t, err)
	assert.Equal(t, 1, depth)

	by, err := h.RealizedBy("ISerializableToJson")
	require.NoError(t, err)
	assert.Equal(t, []string{"HeaderState"}, by)

	assert.Contains(t, h.Leaves(), "ISerializableToJson", "realized interfaces own no children")
}

func TestBuild_NoDanglingParents(t *testing.T) {
	h, err := Build(sampleEdges())
	require.NoError(t, err)

	for _, name := range h.Names() {
		parent, err := h.Parent(name)
		require.NoError(t, err)
		if parent == "" {
			continue
		}
		assert.True(t, h.Has(parent), "parent %q of %q must exist", parent, name)
	}
}

func TestBuild_LogsDeferrals(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Build([]domain.Edge{domain.Inherits("B", "A"), domain.Root("A")}, WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "deferred edges")
	assert.Contains(t, buf.String(), "hierarchy built")
}

func TestBuild_EdgesRoundTrip(t *testing.T) {
	h, err := Build(sampleEdges())
	require.NoError(t, err)

	rebuilt, err := Build(h.Edges())
	require.NoError(t, err)

	assert.Equal(t, h.Names(), rebuilt.Names())
	assert.Equal(t, h.Fingerprint(), rebuilt.Fingerprint())
	assert.Equal(t, h.Fingerprint(), FingerprintEdges(h.Edges()))
}

func TestFingerprint_SensitiveToOrder(t *testing.T) {
	a, err := Build([]domain.Edge{domain.Root("A"), domain.Inherits("B", "A"), domain.Inherits("C", "A")})
	require.NoError(t, err)
	b, err := Build([]domain.Edge{domain.Root("A"), domain.Inherits("C", "A"), domain.Inherits("B", "A")})
	require.NoError(t, err)

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 64)
}

func TestFingerprintEdges_FieldBoundaries(t *testing.T) {
	a := FingerprintEdges([]domain.Edge{{Child: "A\tB", Parent: "C"}})
	b := FingerprintEdges([]domain.Edge{{Child: "A", Parent: "B\tC"}})
	assert.NotEqual(t, a, b)

	c := FingerprintEdges([]domain.Edge{{Child: "A", Link: "x\ninherits\tB\tA\t"}})
	d := FingerprintEdges([]domain.Edge{{Child: "A", Link: "x"}, domain.Inherits("B", "A")})
	assert.NotEqual(t, c, d)

	assert.Equal(t, FingerprintEdges(nil), FingerprintEdges([]domain.Edge{}))
}

// sampleEdges mirrors a slice of a GUI toolkit class index, listed out of order.
func sampleEdges() []domain.Edge {
	return []domain.Edge{
		domain.Inherits("AbstractListModel", "AbstractItemModel"),
		domain.Inherits("AbstractTableModel", "AbstractItemModel"),
		domain.Inherits("AbstractItemModel", "LoggingBaseClass"),
		domain.Root("LoggingBaseClass"),
		domain.Inherits("MainWindowBase", "LoggingBaseClass"),
		domain.Inherits("MdiWindow", "MainWindowBase"),
		domain.Root("QAbstractItemModel"),
		domain.Realizes("AbstractItemModel", "QAbstractItemModel"),
		domain.Root("HtmlUtil"),
	}
}
