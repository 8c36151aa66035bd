// Package constants provides shared constants used throughout the modkeeper
// codebase. This includes timeouts, file permissions, and the default registry
// endpoints, so that values stay consistent across the engine and the CLI.
package constants

import "time"

// Timeout constants define timeout durations used in the application.
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the
	// registry endpoints. The sync engine imposes no deadlines of its own;
	// the transport owns them.
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands that wait on a
	// sync to complete.
	CommandTimeout = 2 * time.Minute
)

// File permission constants define standard Unix file permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Registry endpoint constants. The primary and backup endpoints serve
// identical JSON and are interchangeable; the engine switches to the backup
// after a network-level failure and never switches back within a process.
const (
	// DefaultPrimaryEndpoint is the canonical registry mirror.
	DefaultPrimaryEndpoint = "https://modules.modkeeper.dev/"

	// DefaultBackupEndpoint is the CDN-backed mirror of the registry.
	DefaultBackupEndpoint = "https://cdn.jsdelivr.net/gh/modkeeper/modules@gh-pages/"
)

// Path constants.
const (
	// SnapshotFileName is the file the last successfully fetched catalog
	// payload is written to, inside the configured storage directory.
	SnapshotFileName = "repo.json"

	// CatalogPath is the path of the full-catalog document on an endpoint.
	CatalogPath = "modules.json"
)
