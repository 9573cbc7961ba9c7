package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// Init writes a starter configuration to path and a docs/index.md next to it
// when none exists. An existing configuration is only replaced when force is set.
func Init(path, siteName string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigurationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	cfg := Default()
	cfg.SiteName = siteName
	if cfg.SiteName == "" {
		cfg.SiteName = DefaultSiteName
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.InternalError("encode configuration").WithCause(err).Build()
	}
	// #nosec G306 -- configuration is not secret.
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write configuration file").
			WithContext("path", path).
			Build()
	}

	index := filepath.Join(filepath.Dir(path), cfg.DocsDir, "index.md")
	if _, err := os.Stat(index); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(index), 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "create docs directory").Build()
	}
	// #nosec G306 -- starter content is not secret.
	if err := os.WriteFile(index, []byte("# Welcome to "+cfg.SiteName+"\n"), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write starter page").
			WithContext("path", index).
			Build()
	}
	return nil
}
