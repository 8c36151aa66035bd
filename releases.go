package modkeeper

import (
	"context"

	"github.com/modkeeper/modkeeper/internal/transport"
	"github.com/modkeeper/modkeeper/pkg/errors"
	"github.com/modkeeper/modkeeper/pkg/logging"
	"github.com/modkeeper/modkeeper/pkg/registry"
)

// SyncModule triggers an asynchronous fetch of one module's full descriptor,
// including its release history. Per-module fetches are independent of the
// catalog-wide single-flight guard and of each other.
func (c *client) SyncModule(name string) {
	go c.syncModule(name)
}

// syncModule runs one per-module sync cycle.
func (c *client) syncModule(name string) {
	for {
		url := c.activeEndpoint() + "module/" + name + ".json"

		resp, err := c.transport.Get(context.Background(), url)
		if err != nil {
			logging.Error().Err(err).Str("url", url).Msg("Module fetch failed")
			if c.failover() {
				logging.Warn().
					Str("endpoint", c.activeEndpoint()).
					Msg("Switching to backup endpoint")
				continue
			}
			c.hooks.syncFailed(err)
			return
		}

		if !resp.OK() {
			apiErr := &errors.APIError{
				Endpoint:   url,
				StatusCode: resp.StatusCode,
				Message:    "fetching module releases",
			}
			logging.Warn().
				Int("status", resp.StatusCode).
				Str("module", name).
				Msg("Module fetch returned non-success status")
			c.hooks.syncFailed(apiErr)
			return
		}

		var module registry.Module
		if err := transport.DecodeJSON(resp, url, &module); err != nil {
			logging.Error().Err(err).Str("module", name).Msg("Module parse failed")
			c.hooks.syncFailed(err)
			return
		}
		module.ReleasesLoaded = true

		c.replaceModule(name, &module)

		logging.Debug().
			Str("module", name).
			Int("releases", len(module.Releases)).
			Msg("Module releases loaded")

		c.hooks.moduleReleasesLoaded(&module)
		return
	}
}

// replaceModule swaps a single catalog entry, leaving all others untouched.
// The map is copied and the reference swapped so concurrent readers see a
// consistent view. The entry is replaced only when present: a module that
// vanished in a concurrent catalog rebuild stays gone, and that rebuild may
// silently supersede this update.
func (c *client) replaceModule(name string, m *registry.Module) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.modules[name]; !ok {
		return
	}

	next := make(map[string]*registry.Module, len(c.modules))
	for k, v := range c.modules {
		next[k] = v
	}
	next[name] = m
	c.modules = next
}
