package store

import (
	"testing"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InsertAndGet(t *testing.T) {
	s := New()

	a, err := s.Insert("A", "", "classA.html")
	require.NoError(t, err)
	b, err := s.Insert("B", "A", "")
	require.NoError(t, err)
	c, err := s.Insert("C", "A", "")
	require.NoError(t, err)

	node, ok := s.Get("A")
	require.True(t, ok)
	assert.Equal(t, "classA.html", node.Link)
	assert.True(t, node.IsRoot())
	assert.Equal(t, []domain.NodeID{b, c}, node.Children)

	child, ok := s.Get("B")
	require.True(t, ok)
	assert.Equal(t, a, child.Parent)
	assert.True(t, child.IsLeaf())

	_, ok = s.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []domain.NodeID{a}, s.Roots())
}

func TestStore_DuplicateRoot(t *testing.T) {
	s := New()

	_, err := s.Insert("X", "", "")
	require.NoError(t, err)

	_, err = s.Insert("X", "", "")
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	assert.Equal(t, 1, s.Len())
}

func TestStore_UnknownParent(t *testing.T) {
	s := New()

	_, err := s.Insert("B", "A", "")
	assert.ErrorIs(t, err, domain.ErrUnknownParent)

	name, ok := domain.OffendingName(err)
	assert.True(t, ok)
	assert.Equal(t, "B", name)
	assert.Equal(t, 0, s.Len())
}

func TestStore_InvalidName(t *testing.T) {
	_, err := New().Insert("", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestStore_RootsInsertionOrder(t *testing.T) {
	s := New()
	for _, name := range []string{"Z", "A", "M"} {
		_, err := s.Insert(name, "", "")
		require.NoError(t, err)
	}

	var names []string
	for _, id := range s.Roots() {
		names = append(names, s.Name(id))
	}
	assert.Equal(t, []string{"Z", "A", "M"}, names)
}

func TestStore_Realize(t *testing.T) {
	s := New()
	_, _ = s.Insert("ISerializable", "", "")
	_, _ = s.Insert("IDeserializable", "", "")
	h, _ := s.Insert("HeaderState", "IDeserializable", "")

	require.NoError(t, s.Realize("HeaderState", "ISerializable"))
	require.NoError(t, s.Realize("HeaderState", "ISerializable")) // merged

	node := s.Node(h)
	assert.Len(t, node.Realizes, 1)
	assert.Equal(t, "ISerializable", s.Name(node.Realizes[0]))

	assert.ErrorIs(t, s.Realize("Nope", "ISerializable"), domain.ErrUnknownNode)
	assert.ErrorIs(t, s.Realize("HeaderState", "Nope"), domain.ErrUnknownParent)
	assert.ErrorIs(t, s.Realize("HeaderState", "HeaderState"), domain.ErrCyclicReference)
}

func TestStore_Freeze(t *testing.T) {
	s := New()
	_, _ = s.Insert("A", "", "")
	s.Freeze()

	assert.True(t, s.Frozen())
	_, err := s.Insert("B", "A", "")
	assert.ErrorIs(t, err, domain.ErrFrozen)
	assert.ErrorIs(t, s.Realize("A", "A"), domain.ErrFrozen)
}
