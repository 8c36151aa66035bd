package modkeeper

import (
	"sync"

	"github.com/modkeeper/modkeeper/pkg/registry"
)

// Listener receives sync engine events. Dispatch is synchronous on the
// goroutine that completed the triggering fetch, in registration order;
// implementations that need to hand off to another execution context (a UI
// loop, say) do that themselves. Embed NopListener to implement a subset.
type Listener interface {
	// CatalogLoaded fires after a catalog-wide sync has published a new
	// catalog and version index.
	CatalogLoaded()

	// ModuleReleasesLoaded fires after a per-module sync has fetched a
	// module's full release history.
	ModuleReleasesLoaded(module *registry.Module)

	// SyncFailed fires when a sync surfaces an error: a network failure on
	// the backup endpoint, or any parse or persistence failure.
	SyncFailed(err error)
}

// NopListener provides no-op implementations of every Listener method.
type NopListener struct{}

// CatalogLoaded implements Listener.
func (NopListener) CatalogLoaded() {}

// ModuleReleasesLoaded implements Listener.
func (NopListener) ModuleReleasesLoaded(*registry.Module) {}

// SyncFailed implements Listener.
func (NopListener) SyncFailed(error) {}

// hooks manages the listener registry and event fan-out.
type hooks struct {
	mu        sync.RWMutex
	listeners []Listener
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// add registers a listener. The same listener instance registers at most
// once (identity comparison), so each event reaches it exactly once.
func (h *hooks) add(l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, existing := range h.listeners {
		if existing == l {
			return
		}
	}
	h.listeners = append(h.listeners, l)
}

// remove drops a listener if present. Callers may invoke it from inside a
// dispatch callback; the in-progress dispatch keeps its snapshot.
func (h *hooks) remove(l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, existing := range h.listeners {
		if existing == l {
			h.listeners = append(h.listeners[:i:i], h.listeners[i+1:]...)
			return
		}
	}
}

// snapshot copies the listener slice so dispatch iterates a stable view
// while subscribes and unsubscribes proceed concurrently.
func (h *hooks) snapshot() []Listener {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Listener, len(h.listeners))
	copy(out, h.listeners)
	return out
}

// catalogLoaded notifies all listeners that a catalog sync completed.
func (h *hooks) catalogLoaded() {
	for _, l := range h.snapshot() {
		l.CatalogLoaded()
	}
}

// moduleReleasesLoaded notifies all listeners of a fetched release history.
func (h *hooks) moduleReleasesLoaded(m *registry.Module) {
	for _, l := range h.snapshot() {
		l.ModuleReleasesLoaded(m)
	}
}

// syncFailed notifies all listeners of a sync failure.
func (h *hooks) syncFailed(err error) {
	for _, l := range h.snapshot() {
		l.SyncFailed(err)
	}
}
