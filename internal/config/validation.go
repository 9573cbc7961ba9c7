package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// Validate checks a defaulted configuration. Enumerations are canonicalized
// in place.
func Validate(cfg *Config) error {
	validators := []func(*Config) error{
		validateSite,
		validateDirs,
		validateBuild,
		validateLogging,
	}
	for _, v := range validators {
		if err := v(cfg); err != nil {
			return err
		}
	}
	return nil
}

func invalid(field, msg string) *errors.ErrorBuilder {
	return errors.ConfigurationError(msg).WithContext("field", field)
}

func validateSite(cfg *Config) error {
	if strings.TrimSpace(cfg.SiteName) == "" {
		return invalid("site_name", "site_name is required").Build()
	}
	if cfg.SiteURL != "" {
		u, err := url.Parse(cfg.SiteURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return invalid("site_url", "site_url must be an absolute http(s) URL").
				WithContext("value", cfg.SiteURL).
				Build()
		}
	}
	return nil
}

func validateDirs(cfg *Config) error {
	info, err := os.Stat(cfg.DocsDir)
	if err != nil || !info.IsDir() {
		return invalid("docs_dir", "docs_dir does not exist or is not a directory").
			WithContext(errors.ContextReason, errors.ReasonMissing).
			WithContext("path", cfg.DocsDir).
			Build()
	}

	docs, err := filepath.Abs(cfg.DocsDir)
	if err != nil {
		return invalid("docs_dir", "cannot resolve docs_dir").WithCause(err).Build()
	}
	site, err := filepath.Abs(cfg.SiteDir)
	if err != nil {
		return invalid("site_dir", "cannot resolve site_dir").WithCause(err).Build()
	}
	if site == docs || strings.HasPrefix(site, docs+string(filepath.Separator)) {
		return invalid("site_dir", "site_dir must not be inside docs_dir").
			WithContext("path", cfg.SiteDir).
			Build()
	}
	if rel, err := filepath.Rel(site, docs); err == nil && !strings.HasPrefix(rel, "..") {
		return invalid("site_dir", "site_dir must not contain docs_dir, it is cleaned before each build").
			WithContext("path", cfg.SiteDir).
			Build()
	}
	return nil
}

func validateBuild(cfg *Config) error {
	if cfg.Build.Concurrency < 1 {
		return invalid("build.concurrency", "build.concurrency must be at least 1").
			WithContext("value", cfg.Build.Concurrency).
			Build()
	}
	return nil
}

func validateLogging(cfg *Config) error {
	level, err := logLevelNormalizer.NormalizeWithError(string(cfg.Logging.Level))
	if err != nil {
		return invalid("logging.level", "invalid logging level").WithCause(err).Build()
	}
	format, err := logFormatNormalizer.NormalizeWithError(string(cfg.Logging.Format))
	if err != nil {
		return invalid("logging.format", "invalid logging format").WithCause(err).Build()
	}
	cfg.Logging.Level = level
	cfg.Logging.Format = format
	return nil
}
