package types

import "time"

// HTTPConfig holds shared HTTP settings for code that talks to the Sleeper API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "kicker-to-pick/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SleeperConfig holds settings for the Sleeper API client.
type SleeperConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retry attempts on rate-limited requests (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CatalogConfig holds settings for the local NFL player catalog.
type CatalogConfig struct {
	// Dir is the directory holding the catalog database (default "catalog").
	Dir string `json:"dir" yaml:"dir"`

	// MaxAge is how long a fetched player set stays fresh (default 24h).
	MaxAge time.Duration `json:"max_age" yaml:"max_age"`
}

// ReportConfig holds settings for the roster-mode pick report.
type ReportConfig struct {
	// Rounds is the rookie draft round count used when league settings
	// do not carry one (default 4).
	Rounds int `json:"rounds" yaml:"rounds"`
}

// ScanConfig holds settings for the kicker-draft scan.
type ScanConfig struct {
	// Teams is the number of picks per round (default 12).
	Teams int `json:"teams" yaml:"teams"`

	// Rounds caps the scan at Teams*Rounds picks (default 4).
	Rounds int `json:"rounds" yaml:"rounds"`

	// LowRemaining is the threshold under which the remaining-pick
	// warning footer appears (default 5).
	LowRemaining int `json:"low_remaining" yaml:"low_remaining"`
}

// LogbookConfig holds settings for the append-only report log.
type LogbookConfig struct {
	// Dir is the directory for per-league log files (default "logs").
	Dir string `json:"dir" yaml:"dir"`
}

// AppConfig groups all tool configuration.
type AppConfig struct {
	Sleeper SleeperConfig `json:"sleeper" yaml:"sleeper"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	Scan    ScanConfig    `json:"scan" yaml:"scan"`
	Logbook LogbookConfig `json:"logbook" yaml:"logbook"`
}
