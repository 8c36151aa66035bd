package modkeeper

import (
	"context"
	"encoding/json"

	"github.com/modkeeper/modkeeper/pkg/constants"
	"github.com/modkeeper/modkeeper/pkg/errors"
	"github.com/modkeeper/modkeeper/pkg/logging"
	"github.com/modkeeper/modkeeper/pkg/registry"
)

// Sync triggers an asynchronous catalog-wide fetch. Catalog-wide syncs are
// single-flight: while one is outstanding, further calls return immediately
// without issuing a second request.
func (c *client) Sync() {
	c.loadMu.Lock()
	if c.loading {
		c.loadMu.Unlock()
		return
	}
	c.loading = true
	c.loadMu.Unlock()

	go c.syncCatalog()
}

// syncCatalog runs one catalog-wide sync cycle: fetch, ingest, notify.
func (c *client) syncCatalog() {
	defer func() {
		c.loadMu.Lock()
		c.loading = false
		c.loadMu.Unlock()
	}()

	for {
		url := c.activeEndpoint() + constants.CatalogPath

		resp, err := c.transport.Get(context.Background(), url)
		if err != nil {
			logging.Error().Err(err).Str("url", url).Msg("Catalog fetch failed")
			// One retry against the backup mirror; the switch is permanent.
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
			// A response with a non-success status is dropped without
			// notifying listeners or retrying; the next Sync starts fresh.
			logging.Warn().
				Int("status", resp.StatusCode).
				Str("url", url).
				Msg("Catalog fetch returned non-success status")
			return
		}

		if err := c.ingest(resp.Body); err != nil {
			logging.Error().Err(err).Msg("Catalog ingest failed")
			c.hooks.syncFailed(err)
			return
		}

		c.loaded.Store(true)

		c.mu.RLock()
		count := len(c.modules)
		c.mu.RUnlock()
		logging.Info().
			Int("modules", count).
			Str("endpoint", c.activeEndpoint()).
			Msg("Catalog loaded")

		c.hooks.catalogLoaded()
		return
	}
}

// ingest parses a catalog payload, derives the version index, persists the
// raw snapshot, and publishes catalog and index together by swapping both map
// references under the write lock. Any failure leaves the previous catalog,
// index, and loaded flag untouched.
func (c *client) ingest(payload []byte) error {
	var parsed []registry.Module
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return errors.WrapParse("json", constants.CatalogPath, err)
	}

	// Payload order matters: a later descriptor with a duplicate name
	// overwrites the earlier one.
	modules := make(map[string]*registry.Module, len(parsed))
	for i := range parsed {
		modules[parsed[i].Name] = &parsed[i]
	}

	versions := make(map[string]registry.Version, len(modules))
	for name, m := range modules {
		if v, ok := m.LatestVersion(); ok {
			versions[name] = v
		}
	}

	if err := c.writeSnapshot(payload); err != nil {
		return err
	}

	c.mu.Lock()
	c.modules = modules
	c.versions = versions
	c.mu.Unlock()

	return nil
}
