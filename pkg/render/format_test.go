package render_test

import (
	"testing"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want render.Format
	}{
		{"", render.FormatText},
		{"TEXT", render.FormatText},
		{"mermaid", render.FormatMermaid},
		{" markdown ", render.FormatMarkdown},
	}
	for _, tt := range tests {
		got, err := render.ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := render.ParseFormat("svg")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestRender_Dispatch(t *testing.T) {
	h := build(t, widgetEdges()...)

	text, err := render.Render(h, render.FormatText, "")
	require.NoError(t, err)
	assert.Equal(t, render.Text(h), text)

	sub, err := render.Render(h, render.FormatText, "MainWindowBase")
	require.NoError(t, err)
	assert.Equal(t, "MainWindowBase\n  MdiWindow\n", sub)

	mermaid, err := render.Render(h, render.FormatMermaid, "MdiWindow")
	require.NoError(t, err)
	assert.Equal(t, render.Mermaid(h, &render.Overlay{Focus: "MdiWindow"}), mermaid)

	md, err := render.Render(h, render.FormatMarkdown, "MdiWindow")
	require.NoError(t, err)
	assert.Equal(t, render.Markdown(h), md)

	_, err = render.Render(h, render.FormatMarkdown, "Missing")
	assert.ErrorIs(t, err, domain.ErrUnknownNode)

	_, err = render.Render(h, render.Format("svg"), "")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "text/markdown; charset=utf-8", render.FormatMarkdown.ContentType())
	assert.Equal(t, "text/plain; charset=utf-8", render.FormatMermaid.ContentType())
}
