package modkeeper

import (
	"net/http"
	"strings"
	"time"

	"github.com/modkeeper/modkeeper/pkg/constants"
	"github.com/modkeeper/modkeeper/pkg/errors"
)

// Option is a function that configures a Client instance
type Option func(*options) error

// options holds the configured options for a Client.
type options struct {
	primaryEndpoint string
	backupEndpoint  string
	storageDir      string
	httpClient      *http.Client
	httpTimeout     time.Duration
}

// defaults returns the default options.
func defaults() *options {
	return &options{
		primaryEndpoint: constants.DefaultPrimaryEndpoint,
		backupEndpoint:  constants.DefaultBackupEndpoint,
		httpTimeout:     constants.DefaultHTTPTimeout,
	}
}

// apply applies the given options, then normalizes and validates the result.
func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	o.primaryEndpoint = normalizeEndpoint(o.primaryEndpoint)
	o.backupEndpoint = normalizeEndpoint(o.backupEndpoint)

	if o.httpClient == nil && o.httpTimeout > 0 {
		o.httpClient = &http.Client{Timeout: o.httpTimeout}
	}

	return o, nil
}

// WithEndpoints configures the primary and backup registry base URLs. Both
// must serve the same document layout; the engine fails over from primary to
// backup once, on a network-level failure.
func WithEndpoints(primary, backup string) Option {
	return func(o *options) error {
		if primary == "" || backup == "" {
			return &errors.ValidationError{
				Field:   "endpoints",
				Message: "primary and backup endpoints must not be empty",
			}
		}
		o.primaryEndpoint = primary
		o.backupEndpoint = backup
		return nil
	}
}

// WithStorageDir configures the directory the catalog snapshot is written to.
// Defaults to a modkeeper directory under the user cache directory.
func WithStorageDir(dir string) Option {
	return func(o *options) error {
		if dir == "" {
			return &errors.ValidationError{
				Field:   "storageDir",
				Message: "storage directory must not be empty",
			}
		}
		o.storageDir = dir
		return nil
	}
}

// WithHTTPClient configures a custom HTTP client for registry fetches. The
// engine imposes no deadlines of its own; timeouts belong to this client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) error {
		o.httpClient = httpClient
		return nil
	}
}

// WithHTTPTimeout configures the timeout of the default HTTP client. Ignored
// when WithHTTPClient is also given.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout <= 0 {
			return &errors.ValidationError{
				Field:   "httpTimeout",
				Value:   timeout,
				Message: "timeout must be positive",
			}
		}
		o.httpTimeout = timeout
		return nil
	}
}

// normalizeEndpoint ensures a base URL ends with a single trailing slash so
// document paths can be appended directly.
func normalizeEndpoint(base string) string {
	return strings.TrimRight(base, "/") + "/"
}
