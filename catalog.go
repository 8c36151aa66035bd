package modkeeper

import (
	"github.com/modkeeper/modkeeper/pkg/registry"
)

// Compile-time interface check to ensure proper implementation.
var _ Catalog = (*client)(nil)

// Loaded reports whether a catalog-wide sync has ever succeeded.
func (c *client) Loaded() bool {
	return c.loaded.Load()
}

// Module returns the descriptor for a module, or nil if unknown.
func (c *client) Module(name string) *registry.Module {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modules[name]
}

// Modules returns the descriptors of the latest synced catalog. Order is
// unspecified; callers that need a stable order sort by name.
func (c *client) Modules() []*registry.Module {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*registry.Module, 0, len(c.modules))
	for _, m := range c.modules {
		out = append(out, m)
	}
	return out
}

// LatestVersion returns the parsed latest release of a module.
func (c *client) LatestVersion(name string) (registry.Version, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.versions[name]
	return v, ok
}
