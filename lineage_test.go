package lineage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/lineage"
	"github.com/aretw0/lineage/internal/testutils"
	"github.com/aretw0/lineage/pkg/adapters/doxygen"
	loamAdapter "github.com/aretw0/lineage/pkg/adapters/loam"
	"github.com/aretw0/lineage/pkg/adapters/manifest"
	"github.com/aretw0/lineage/pkg/adapters/memory"
	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doxygenFixture = "pkg/adapters/doxygen/testdata/hierarchy.js"

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(lineage.Version))
}

func TestLoaderFor(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteFiles(t, dir, map[string]string{
		"classes.yaml": "nodes:\n  - name: A\n",
		"classes.json": `{"nodes":[{"name":"A"}]}`,
		"classes.txt":  "A",
		"docs/a.md":    "---\nname: A\n---\n",
	})

	loader, err := lineage.LoaderFor(doxygenFixture)
	require.NoError(t, err)
	assert.IsType(t, &doxygen.Loader{}, loader)

	loader, err = lineage.LoaderFor(filepath.Join(dir, "classes.yaml"))
	require.NoError(t, err)
	assert.IsType(t, &manifest.Loader{}, loader)

	loader, err = lineage.LoaderFor(filepath.Join(dir, "classes.json"))
	require.NoError(t, err)
	assert.IsType(t, &manifest.Loader{}, loader)

	loader, err = lineage.LoaderFor(filepath.Join(dir, "docs"))
	require.NoError(t, err)
	assert.IsType(t, &loamAdapter.Loader{}, loader)

	_, err = lineage.LoaderFor(filepath.Join(dir, "classes.txt"))
	assert.ErrorContains(t, err, "unsupported source")

	_, err = lineage.LoaderFor(filepath.Join(dir, "missing.js"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = lineage.LoaderFor("")
	assert.Error(t, err)
}

func TestOpen_Doxygen(t *testing.T) {
	h, err := lineage.Open(context.Background(), doxygenFixture)
	require.NoError(t, err)

	depth, err := h.DepthOf("MdiWindow")
	require.NoError(t, err)
	assert.Equal(t, 2, depth)
}

func TestOpen_ImplicitRoots(t *testing.T) {
	loader := memory.NewLoader(domain.Inherits("Dialog", "QDialog"))

	_, err := lineage.Open(context.Background(), "", lineage.WithLoader(loader))
	assert.ErrorIs(t, err, domain.ErrUnknownParent)

	h, err := lineage.Open(context.Background(), "", lineage.WithLoader(loader), lineage.WithImplicitRoots())
	require.NoError(t, err)
	assert.Equal(t, []string{"QDialog"}, h.Roots())
}

func TestLoad_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	_, err := lineage.Load(context.Background(), memory.NewLoader(domain.Root("A"), domain.Inherits("B", "A")), lineage.WithMetrics(m))
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "lineage_nodes" {
			assert.Equal(t, 2.0, mf.GetMetric()[0].GetGauge().GetValue())
		}
	}
}

func TestLoad_LoaderError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lineage.Load(ctx, memory.NewLoader(domain.Root("A")))
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "failed to load edges")
}
