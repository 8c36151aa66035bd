// Package registry defines the value types of the online module registry:
// module descriptors, their releases, and release version identifiers.
//
// The types mirror the JSON documents served by the registry endpoints.
// Fields beyond the ones the sync engine consumes are carried opaquely so a
// presentation layer can render them without the engine caring.
package registry

// Module describes one installable module as published by the registry.
//
// A Module value is owned by the catalog that holds it and is replaced, never
// mutated, when new data arrives. The Releases slice is only populated after
// a per-module sync; ReleasesLoaded records that.
type Module struct {
	// Name is the unique module identifier (a package name).
	Name string `json:"name"`

	// Description is the short human-readable summary.
	Description string `json:"description"`

	// Summary is an optional longer description.
	Summary string `json:"summary,omitempty"`

	// SourceURL points at the module's source repository.
	SourceURL string `json:"sourceUrl,omitempty"`

	// Homepage is the module's project page.
	Homepage string `json:"homepageUrl,omitempty"`

	// LatestRelease is the raw "<code>-<name>" tag of the newest release.
	// Parsed with ParseVersion; an unparsable value simply yields no entry in
	// the version index.
	LatestRelease string `json:"latestRelease"`

	// Releases is the full release history, present only in per-module
	// documents.
	Releases []Release `json:"releases,omitempty"`

	// ReleasesLoaded is true once a per-module sync has populated Releases.
	// Never serialized; catalog-wide payloads do not carry histories.
	ReleasesLoaded bool `json:"-"`
}

// Release is one published build of a module.
type Release struct {
	Name        string         `json:"name"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	PublishedAt string         `json:"publishedAt,omitempty"`
	Assets      []ReleaseAsset `json:"releaseAssets,omitempty"`
}

// ReleaseAsset is a downloadable artifact attached to a release.
type ReleaseAsset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"downloadUrl"`
	Size        int64  `json:"size,omitempty"`
}

// LatestVersion parses the module's LatestRelease tag.
func (m *Module) LatestVersion() (Version, bool) {
	return ParseVersion(m.LatestRelease)
}
