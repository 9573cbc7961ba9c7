package config

// Default values applied to fields left empty.
const (
	DefaultDocsDir     = "docs"
	DefaultSiteDir     = "site"
	DefaultTheme       = "default"
	DefaultSiteName    = "My Docs"
	DefaultConcurrency = 1
)

// ApplyDefaults fills unset fields. It never overwrites values already set.
func ApplyDefaults(cfg *Config) {
	if cfg.DocsDir == "" {
		cfg.DocsDir = DefaultDocsDir
	}
	if cfg.SiteDir == "" {
		cfg.SiteDir = DefaultSiteDir
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	if cfg.Build.Concurrency == 0 {
		cfg.Build.Concurrency = DefaultConcurrency
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}
