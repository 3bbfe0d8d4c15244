package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/lineage/pkg/hierarchy"
	"github.com/aretw0/lineage/pkg/ports"
)

// reloadDelay lets a burst of file events settle before rebuilding.
var reloadDelay = 100 * time.Millisecond

// HierarchySetter receives rebuilt hierarchies. Both the HTTP and the MCP
// servers implement it.
type HierarchySetter interface {
	SetHierarchy(h *hierarchy.Hierarchy)
}

// WatchAndReload rebuilds from loader every time it reports a change and
// hands the new hierarchy to targets. A failed rebuild is logged and the
// previous hierarchy stays in place. It blocks until ctx is done.
func (a *App) WatchAndReload(ctx context.Context, loader ports.EdgeLoader, targets ...HierarchySetter) error {
	w, ok := loader.(ports.Watchable)
	if !ok {
		return fmt.Errorf("source %q does not support watching", a.Config.Source)
	}

	events, err := w.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	a.Logger.Info("Watching for changes", "source", a.Config.Source)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !settle(ctx, events) {
				return nil
			}
			a.reload(ctx, loader, event, targets)
		}
	}
}

// settle drains events until reloadDelay passes without one.
// It reports false when ctx ends or the channel closes meanwhile.
func settle(ctx context.Context, events <-chan string) bool {
	timer := time.NewTimer(reloadDelay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case _, ok := <-events:
			if !ok {
				return false
			}
			timer.Reset(reloadDelay)
		case <-timer.C:
			return true
		}
	}
}

func (a *App) reload(ctx context.Context, loader ports.EdgeLoader, event string, targets []HierarchySetter) {
	a.Logger.Info("Change detected, triggering reload", "event", event)
	h, err := a.Load(ctx, loader)
	if err != nil {
		a.Logger.Error("Reload failed, keeping previous hierarchy", "err", err)
		return
	}
	for _, t := range targets {
		t.SetHierarchy(h)
	}
	a.SystemMessage("Reloaded %d nodes after change in '%s'.", h.Len(), event)
}
