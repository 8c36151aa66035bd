package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies one published release of a module: a monotonically
// increasing numeric code plus a human-readable display name.
// Immutable once constructed.
type Version struct {
	Code int64
	Name string
}

// ParseVersion parses the raw "latestRelease" field of a module descriptor,
// formatted as "<code>-<name>". It splits on the first '-' only, so the name
// part may itself contain dashes. ok is false when the raw string is empty,
// has no separator, or the code part is not a 64-bit integer; callers treat
// that as "no known latest version", not as an error.
func ParseVersion(raw string) (v Version, ok bool) {
	if raw == "" {
		return Version{}, false
	}
	code, name, found := strings.Cut(raw, "-")
	if !found {
		return Version{}, false
	}
	n, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		return Version{}, false
	}
	return Version{Code: n, Name: name}, true
}

// Upgradable reports whether this version is an upgrade over an installed
// module's (versionCode, versionName). A strictly higher code always means an
// upgrade; an equal code with a different name covers re-tagged releases that
// did not bump the code.
func (v Version) Upgradable(versionCode int64, versionName string) bool {
	return v.Code > versionCode || (v.Code == versionCode && v.Name != versionName)
}

// String implements fmt.Stringer.
func (v Version) String() string {
	return fmt.Sprintf("%s (%d)", v.Name, v.Code)
}
