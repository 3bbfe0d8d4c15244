package doxygen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/lineage/pkg/adapters/doxygen"
	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/hierarchy"
	contract "github.com/aretw0/lineage/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "testdata/hierarchy.js"

func loadFixture(t *testing.T) *hierarchy.Hierarchy {
	t.Helper()
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)
	edges, err := doxygen.Parse(data)
	require.NoError(t, err)
	h, err := hierarchy.Build(edges)
	require.NoError(t, err)
	return h
}

func TestParse_Small(t *testing.T) {
	input := `var hierarchy =
[
    [ "IDeserializableFromJson", null, [
      [ "HeaderState", "classHeaderState.html", null ]
    ] ],
    [ "ISerializableToJson", null, [
      [ "HeaderState", "classHeaderState.html", null ]
    ] ],
    [ "StyleSheet< T >", "classStyleSheet.html", null ],
    [ "StyleSheet< T >", "classStyleSheet.html", null ]
];`

	edges, err := doxygen.Parse([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, []domain.Edge{
		domain.Root("IDeserializableFromJson"),
		{Child: "HeaderState", Parent: "IDeserializableFromJson", Link: "classHeaderState.html"},
		domain.Root("ISerializableToJson"),
		domain.Realizes("HeaderState", "ISerializableToJson"),
		{Child: "StyleSheet< T >", Link: "classStyleSheet.html"},
	}, edges)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"NoArray", "var hierarchy = 42;"},
		{"BadSyntax", `[ [ "A", null, null ],, ]`},
		{"ShortEntry", `[ [ "A", null ] ]`},
		{"EmptyName", `[ [ "", null, null ] ]`},
		{"NumericName", `[ [ 7, null, null ] ]`},
		{"BadChildren", `[ [ "A", null, "B" ] ]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := doxygen.Parse([]byte(tt.input))
			assert.ErrorIs(t, err, doxygen.ErrMalformed)
		})
	}
}

func TestParse_Fixture(t *testing.T) {
	h := loadFixture(t)

	assert.Equal(t, 105, h.Len())
	assert.Len(t, h.Roots(), 51)
	assert.Len(t, h.Leaves(), 72)

	ancestors, err := h.AncestorsOf("MdiWindow")
	require.NoError(t, err)
	assert.Equal(t, []string{"MainWindowBase", "LoggingBaseClass"}, ancestors)

	parent, err := h.Parent("HeaderState")
	require.NoError(t, err)
	assert.Equal(t, "IDeserializableFromJson", parent)

	realizes, err := h.Realizes("HeaderState")
	require.NoError(t, err)
	assert.Equal(t, []string{"ISerializableToJson"}, realizes)

	realizes, err = h.Realizes("HeaderState::SectionState")
	require.NoError(t, err)
	assert.Equal(t, []string{"ISerializableToJsonObject"}, realizes)

	realizes, err = h.Realizes("Application")
	require.NoError(t, err)
	assert.Equal(t, []string{"QApplication"}, realizes)

	realizes, err = h.Realizes("AbstractItemModel")
	require.NoError(t, err)
	assert.Equal(t, []string{"QAbstractItemModel"}, realizes)

	n, ok := h.Node("StyleSheet< T >")
	require.True(t, ok)
	assert.Equal(t, "classStyleSheet.html", n.Link)
	assert.True(t, n.IsRoot())
}

func TestLoader_Contract(t *testing.T) {
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)
	want, err := doxygen.Parse(data)
	require.NoError(t, err)

	contract.EdgeLoaderContractTest(t, doxygen.NewLoader(fixture), want)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := doxygen.NewLoader(filepath.Join(t.TempDir(), "missing.js")).LoadEdges(t.Context())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
