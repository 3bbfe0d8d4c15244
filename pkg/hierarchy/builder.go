package hierarchy

import (
	"io"
	"log/slog"
	"slices"

	"github.com/aretw0/lineage/pkg/domain"
	"github.com/aretw0/lineage/pkg/store"
)

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	logger        *slog.Logger
	implicitRoots bool
}

// WithLogger sets the structured logger used to report deferrals and build summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(c *buildConfig) {
		c.logger = logger
	}
}

// WithImplicitRoots creates parents that are never declared as roots
// instead of failing with domain.ErrUnknownParent.
func WithImplicitRoots() Option {
	return func(c *buildConfig) {
		c.implicitRoots = true
	}
}

type builder struct {
	store    *store.Store
	declared map[string]string // child -> owning parent as first declared
	logger   *slog.Logger
}

// Build converts a flat edge list into a validated, frozen Hierarchy.
// A failed build returns a nil Hierarchy.
func Build(edges []domain.Edge, opts ...Option) (*Hierarchy, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	b := &builder{
		store:    store.New(),
		declared: make(map[string]string),
		logger:   cfg.logger,
	}

	owning, realizations, err := b.split(edges)
	if err != nil {
		return nil, err
	}

	remaining, err := b.resolve(owning)
	if err != nil {
		return nil, err
	}

	if len(remaining) > 0 && cfg.implicitRoots {
		if err := b.createImplicitRoots(remaining); err != nil {
			return nil, err
		}
		if remaining, err = b.resolve(remaining); err != nil {
			return nil, err
		}
	}
	if len(remaining) > 0 {
		return nil, b.diagnose(remaining)
	}

	for _, e := range realizations {
		if err := b.store.Realize(e.Child, e.Parent); err != nil {
			return nil, err
		}
	}

	if err := b.validateAcyclic(); err != nil {
		return nil, err
	}

	b.store.Freeze()
	h := newHierarchy(b.store)

	b.logger.Debug("hierarchy built",
		"nodes", b.store.Len(),
		"roots", len(h.roots),
		"realizations", len(realizations),
	)
	return h, nil
}

// split separates owning edges from realizations and merges repeated declarations.
func (b *builder) split(edges []domain.Edge) (owning, realizations []domain.Edge, err error) {
	for _, e := range edges {
		if e.Child == "" {
			return nil, nil, domain.NewNameError(domain.ErrInvalidName, e.Child, e.Parent)
		}

		if e.IsRealization() {
			if e.Parent == "" {
				return nil, nil, domain.NewNameError(domain.ErrInvalidName, e.Child, "realizes <empty>")
			}
			realizations = append(realizations, e)
			continue
		}

		if prev, seen := b.declared[e.Child]; seen {
			if prev == e.Parent {
				continue
			}
			return nil, nil, domain.NewNameError(domain.ErrDuplicateName, e.Child, prev, e.Parent)
		}
		b.declared[e.Child] = e.Parent
		owning = append(owning, e)
	}
	return owning, realizations, nil
}

// resolve inserts edges in rounds until no further progress is possible,
// returning the edges whose parent never appeared.
func (b *builder) resolve(pending []domain.Edge) ([]domain.Edge, error) {
	for round := 1; len(pending) > 0; round++ {
		var deferred []domain.Edge
		for _, e := range pending {
			if e.Parent != "" {
				if _, ok := b.store.Lookup(e.Parent); !ok {
					deferred = append(deferred, e)
					continue
				}
			}
			if _, err := b.store.Insert(e.Child, e.Parent, e.Link); err != nil {
				return nil, err
			}
		}

		if len(deferred) == len(pending) {
			return deferred, nil
		}
		if len(deferred) > 0 {
			b.logger.Debug("deferred edges", "round", round, "count", len(deferred))
		}
		pending = deferred
	}
	return nil, nil
}

func (b *builder) createImplicitRoots(remaining []domain.Edge) error {
	for _, e := range remaining {
		if _, declared := b.declared[e.Parent]; declared {
			continue
		}
		if _, exists := b.store.Lookup(e.Parent); exists {
			continue
		}
		if _, err := b.store.Insert(e.Parent, "", ""); err != nil {
			return err
		}
		b.declared[e.Parent] = ""
		b.logger.Info("implicit root created", "name", e.Parent, "child", e.Child)
	}
	return nil
}

// diagnose classifies the first unresolved edge as a cycle or a dangling parent.
func (b *builder) diagnose(remaining []domain.Edge) error {
	e := remaining[0]
	path := []string{e.Child}
	cur := e.Parent

	for {
		if idx := slices.Index(path, cur); idx >= 0 {
			cycle := append(slices.Clone(path[idx:]), cur)
			return domain.NewNameError(domain.ErrCyclicReference, cur, cycle...)
		}

		parent, declared := b.declared[cur]
		if !declared {
			return domain.NewNameError(domain.ErrUnknownParent, path[len(path)-1], cur)
		}
		path = append(path, cur)
		cur = parent
	}
}

// validateAcyclic walks owning and realization edges together; the combined graph must be a DAG.
func (b *builder) validateAcyclic() error {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make([]uint8, b.store.Len())
	var path []domain.NodeID

	var visit func(id domain.NodeID) error
	visit = func(id domain.NodeID) error {
		switch state[id] {
		case done:
			return nil
		case inProgress:
			idx := slices.Index(path, id)
			cycle := make([]string, 0, len(path)-idx+1)
			for _, p := range path[idx:] {
				cycle = append(cycle, b.store.Name(p))
			}
			cycle = append(cycle, b.store.Name(id))
			return domain.NewNameError(domain.ErrCyclicReference, b.store.Name(id), cycle...)
		}

		state[id] = inProgress
		path = append(path, id)

		node := b.store.Node(id)
		if node.Parent != domain.NoParent {
			if err := visit(node.Parent); err != nil {
				return err
			}
		}
		for _, iface := range node.Realizes {
			if err := visit(iface); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		state[id] = done
		return nil
	}

	for _, id := range b.store.All() {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}
