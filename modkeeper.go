// Package modkeeper provides the registry synchronization engine that keeps a
// module manager aware of an online catalog of installable modules: their
// metadata and which installed modules have newer releases available.
//
// The engine fetches the catalog from one of two interchangeable registry
// endpoints, parses it into an in-memory catalog plus a derived latest-version
// index, persists the last good payload to disk, and fans events out to
// subscribed listeners. Fetches are asynchronous; catalog-wide syncs are
// single-flight, and a network-level failure against the primary endpoint
// triggers exactly one retry against the backup mirror.
//
// Example usage:
//
//	client, err := modkeeper.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client.Subscribe(myListener)
//	client.Sync()
//
//	// after the CatalogLoaded event:
//	if v, ok := client.LatestVersion("com.example.mod"); ok {
//	    if v.Upgradable(installedCode, installedName) {
//	        fmt.Println("upgrade available:", v)
//	    }
//	}
package modkeeper

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/modkeeper/modkeeper/internal/transport"
	"github.com/modkeeper/modkeeper/pkg/constants"
	"github.com/modkeeper/modkeeper/pkg/errors"
	"github.com/modkeeper/modkeeper/pkg/registry"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client is the registry synchronization engine. Construct one per process
// with New and pass it by reference to all consumers; it has no teardown.
type Client interface {

	// Syncer triggers catalog-wide and per-module fetches
	Syncer

	// Catalog provides read access to the synced catalog and version index
	Catalog

	// Hooks provides listener registration for sync events
	Hooks
}

// Syncer triggers asynchronous registry fetches.
type Syncer interface {
	// Sync triggers a catalog-wide fetch. It returns immediately; if a
	// catalog-wide fetch is already outstanding, no second request is issued.
	Sync()

	// SyncModule fetches one module's full descriptor, including its release
	// history. Independent of Sync; any number may run concurrently.
	SyncModule(name string)
}

// Catalog provides read access to the current catalog and version index.
// All methods are safe for concurrent use with in-flight syncs.
type Catalog interface {
	// Loaded reports whether a catalog-wide sync has ever succeeded. Once
	// true it stays true, even after later failed syncs.
	Loaded() bool

	// Module returns the descriptor for a module, or nil if unknown.
	Module(name string) *registry.Module

	// Modules returns the descriptors of the latest synced catalog.
	Modules() []*registry.Module

	// LatestVersion returns the parsed latest release of a module. ok is
	// false when the module is unknown or its latest release tag could not
	// be parsed; absence means "no known upgrade", not "has no releases".
	LatestVersion(name string) (registry.Version, bool)

	// SnapshotPath returns the file the last good catalog payload is
	// written to.
	SnapshotPath() string
}

// Hooks provides access to event listener registration.
type Hooks interface {
	// Subscribe registers a listener. Registering the same listener instance
	// twice is a no-op.
	Subscribe(l Listener)

	// Unsubscribe removes a listener if present. Safe to call from within a
	// listener callback.
	Unsubscribe(l Listener)
}

// client is the internal implementation of the Client interface.
type client struct {

	// options are the configured options for the client
	options *options

	// transport issues the registry GETs
	transport *transport.Client

	// catalog state, replaced wholesale on each successful sync
	mu       sync.RWMutex
	modules  map[string]*registry.Module
	versions map[string]registry.Version

	// single-flight guard for catalog-wide syncs
	loadMu  sync.Mutex
	loading bool

	// loaded flips to true on the first successful catalog sync and never
	// resets
	loaded atomic.Bool

	// endpoint state; switches to backup once, never back
	epMu     sync.Mutex
	endpoint string
	backup   string

	// snapshotPath is where the raw last-good catalog payload is written
	snapshotPath string

	// hooks fan sync events out to listeners
	hooks *hooks
}

// New creates a new Client instance with the given options.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	storageDir := o.storageDir
	if storageDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, errors.WrapIO("resolve", "user cache directory", err)
		}
		storageDir = filepath.Join(base, "modkeeper")
	}

	return &client{
		options:   o,
		transport: transport.New(o.httpClient),

		modules:  make(map[string]*registry.Module),
		versions: make(map[string]registry.Version),

		endpoint: o.primaryEndpoint,
		backup:   o.backupEndpoint,

		snapshotPath: filepath.Join(storageDir, constants.SnapshotFileName),

		hooks: newHooks(),
	}, nil
}

// Subscribe registers a listener for sync events.
func (c *client) Subscribe(l Listener) {
	c.hooks.add(l)
}

// Unsubscribe removes a previously registered listener.
func (c *client) Unsubscribe(l Listener) {
	c.hooks.remove(l)
}

// activeEndpoint returns the registry base URL currently in use.
func (c *client) activeEndpoint() string {
	c.epMu.Lock()
	defer c.epMu.Unlock()
	return c.endpoint
}

// failover switches to the backup endpoint. It reports false when the backup
// was already active; the switch is monotonic for the life of the client.
func (c *client) failover() bool {
	c.epMu.Lock()
	defer c.epMu.Unlock()
	if c.endpoint == c.backup {
		return false
	}
	c.endpoint = c.backup
	return true
}
