package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	h, err := Build(sampleEdges())
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		max   int
		want  []string
	}{
		{"Typo", "MdiWindw", 3, []string{"MdiWindow"}},
		{"Case", "htmlutil", 3, []string{"HtmlUtil"}},
		{"Substring", "ListModel", 1, []string{"AbstractListModel"}},
		{"Nothing Close", "Zebra", 3, []string{}},
		{"Zero Max", "MdiWindow", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.Suggest(tt.query, tt.max)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
