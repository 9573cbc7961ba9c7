// Package config loads docnav.yml.
//
// Loading runs in a fixed order: .env files next to the config file are
// loaded (existing environment wins), ${VAR} references are expanded, the
// YAML is decoded strictly, defaults are applied, and the result is
// validated. Relative directories are resolved against the config file's
// directory.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "docnav.yml"

// Config is the full project configuration.
type Config struct {
	SiteName        string         `yaml:"site_name"`
	SiteURL         string         `yaml:"site_url,omitempty"`
	DocsDir         string         `yaml:"docs_dir"`
	SiteDir         string         `yaml:"site_dir"`
	Theme           string         `yaml:"theme"`
	ThemeDir        string         `yaml:"theme_dir,omitempty"`
	Nav             []nav.Entry    `yaml:"nav,omitempty"`
	ExtraCSS        []string       `yaml:"extra_css,omitempty"`
	ExtraJavaScript []string       `yaml:"extra_javascript,omitempty"`
	Strict          bool           `yaml:"strict"`
	LinkCheck       bool           `yaml:"link_check"`
	Markdown        MarkdownConfig `yaml:"markdown"`
	Build           BuildConfig    `yaml:"build"`
	Logging         LoggingConfig  `yaml:"logging"`
	Metrics         MetricsConfig  `yaml:"metrics,omitempty"`

	// Path is the file the configuration was loaded from.
	Path string `yaml:"-"`
}

// MarkdownConfig controls the Markdown parser.
type MarkdownConfig struct {
	// GFM enables GitHub Flavored Markdown. Defaults to true.
	GFM *bool `yaml:"gfm,omitempty"`
}

// GFMEnabled reports whether GFM is on.
func (m MarkdownConfig) GFMEnabled() bool { return m.GFM == nil || *m.GFM }

// BuildConfig controls page rendering.
type BuildConfig struct {
	// Concurrency is the number of pages rendered in parallel.
	Concurrency int `yaml:"concurrency"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig controls metrics export.
type MetricsConfig struct {
	// Textfile, when set, receives the build metrics in Prometheus text format.
	Textfile string `yaml:"textfile,omitempty"`
}

// Load reads, expands, decodes, defaults and validates the configuration at path.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(filepath.Dir(path)); err != nil {
		return nil, err
	}

	// #nosec G304 -- path is provided by the user on the command line.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigurationError("configuration file not found").
				WithContext(errors.ContextReason, errors.ReasonMissing).
				WithContext("path", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read configuration file").
			WithContext("path", path).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	cfg.resolvePaths(filepath.Dir(path))

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse expands ${VAR} references, decodes YAML configuration and applies
// defaults. Unknown keys are rejected. Paths are left as written and the
// result is not validated.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.ConfigurationError("failed to parse configuration").
			WithCause(err).
			Build()
	}

	ApplyDefaults(cfg)
	return cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func loadEnvFiles(dir string) error {
	for _, name := range []string{".env", ".env.local"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.ConfigurationError("failed to load environment file").
				WithCause(err).
				WithContext("path", p).
				Build()
		}
	}
	return nil
}

func (c *Config) resolvePaths(base string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	c.DocsDir = resolve(c.DocsDir)
	c.SiteDir = resolve(c.SiteDir)
	c.ThemeDir = resolve(c.ThemeDir)
	c.Metrics.Textfile = resolve(c.Metrics.Textfile)
}
