package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/loam"
)

// Loader adapts a Loam repository of class documents to ports.EdgeLoader.
// Each document is one node; its frontmatter names the owning parent and
// any realized interfaces.
type Loader struct {
	Repo *loam.TypedRepository[ClassMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[ClassMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir and wraps it in a Loader.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps decoded types consistent across Markdown, YAML and JSON.
	// Read-only mode avoids Loam's sandbox copy; the loader never writes.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[ClassMetadata](repo)), nil
}

type class struct {
	id   string
	meta ClassMetadata
}

// LoadEdges lists every document and converts its frontmatter into edges.
// Owning edges come first in document order, realizations after them.
func (l *Loader) LoadEdges(ctx context.Context) ([]domain.Edge, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	// doc.ID is the path relative to the repository root.
	classes := make([]class, 0, len(docs))
	for _, doc := range docs {
		classes = append(classes, class{id: doc.ID, meta: doc.Data})
	}
	slices.SortFunc(classes, func(a, b class) int {
		return strings.Compare(a.id, b.id)
	})

	seen := make(map[string]string, len(classes))
	edges := make([]domain.Edge, 0, len(classes))
	var realizations []domain.Edge

	for _, c := range classes {
		name := c.meta.Name
		if name == "" {
			name = trimExtension(c.id)
		}

		if existing, ok := seen[name]; ok {
			return nil, fmt.Errorf("collision detected in %s: %w", c.id,
				domain.NewNameError(domain.ErrDuplicateName, name, existing, c.id))
		}
		seen[name] = c.id

		edges = append(edges, domain.Edge{
			Child:  name,
			Parent: c.meta.Parent,
			Link:   c.meta.Link,
		})
		for _, iface := range c.meta.Realizes {
			realizations = append(realizations, domain.Realizes(name, iface))
		}
	}

	return append(edges, realizations...), nil
}

// Names lists the node name each document resolves to.
func (l *Loader) Names(ctx context.Context) ([]string, error) {
	edges, err := l.LoadEdges(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(edges))
	for _, e := range edges {
		if !e.IsRealization() {
			names = append(names, e.Child)
		}
	}
	return names, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}

// Watch emits the ID of every class document that changes until ctx is done.
func (l *Loader) Watch(ctx context.Context) (<-chan string, error) {
	events, err := l.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- evt.ID:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
