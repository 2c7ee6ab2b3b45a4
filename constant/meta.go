// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Folio is the canonical application identifier used for filesystem paths and CLI branding.
	Folio = "folio"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// UserAgent is the HTTP User-Agent string sent to content backends and media hosts.
	UserAgent = "folio/" + Version + " (+https://github.com/folio-cli/folio)"
)

// Platform identifiers for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)

// Content tags used for cache revalidation, one per media kind.
const (
	TagVideo = "video"
	TagPhoto = "photo"
)
