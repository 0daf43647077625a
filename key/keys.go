// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Input Sources - these keys locate the site data file and the bibliographies.
const (
	SiteFile        = "site.file"
	BibPublications = "bib.publications"
	BibTalks        = "bib.talks"
)

// Page Generation - these keys govern what the generated document contains and where it goes.
const (
	BuildOutput   = "build.output"
	BuildTalks    = "build.talks"
	BuildBoldName = "build.bold_name"
)

// Media Embedding - these keys shape the markup produced for entry videos.
const (
	MediaHeight = "media.height"
	MediaRatio  = "media.ratio"
)

// Watch Mode
const (
	WatchDebounceMS = "watch.debounce_ms"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment
const (
	CliColored = "cli.colored"
)
