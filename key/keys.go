// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Content backend selection and Sanity project coordinates.
const (
	ContentSource     = "content.source"
	ContentRevalidate = "content.revalidate"
	SanityProject     = "content.sanity.project"
	SanityDataset     = "content.sanity.dataset"
	SanityAPIVersion  = "content.sanity.api_version"
	SanityUseCDN      = "content.sanity.use_cdn"
)

// Preloading of adjacent lightbox media.
const (
	PreloadTimeout     = "preload.timeout"
	PreloadConcurrency = "preload.concurrency"
)

// Web server.
const (
	ServerAddr = "server.addr"
	ServerH2C  = "server.h2c"
	ServerSite = "server.site"
)

// Contact form delivery.
const (
	ContactEndpoint   = "contact.endpoint"
	ContactFallback   = "contact.fallback"
	ContactResetDelay = "contact.reset_delay"
)

// Splash screen.
const (
	SplashEnable  = "splash.enable"
	SplashSession = "splash.session"
	SplashTitle   = "splash.title"
)

// Grid listing.
const (
	GridInitial = "grid.initial"
	GridStep    = "grid.step"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI).
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowURLs    = "tui.show_urls"
)

// Logging Infrastructure.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
