// Package commands implements the docnav command line.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/internal/config"
)

// Global carries state shared by every command.
type Global struct {
	Context context.Context
	Logger  *slog.Logger
	Out     io.Writer
	// Err receives log output. Defaults to os.Stderr.
	Err io.Writer
}

// CLI is the root command with global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docnav.yml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" help:"Build the site into site_dir"`
	Nav     NavCmd     `cmd:"" help:"Print the navigation tree"`
	Resolve ResolveCmd `cmd:"" help:"Show how references resolve from a page"`
	Themes  ThemesCmd  `cmd:"" help:"List available themes"`
	Init    InitCmd    `cmd:"" help:"Write a starter configuration"`
}

// AfterApply runs after flag parsing and installs the default logger.
// The configuration may refine it once loaded.
func (c *CLI) AfterApply() error {
	level := config.LogLevelInfo
	if c.Verbose {
		level = config.LogLevelDebug
	}
	slog.SetDefault(newLogger(os.Stderr, level, config.LogFormatText))
	return nil
}

// loadConfig loads the configuration and applies its logging settings.
// --verbose always wins over logging.level.
func (c *CLI) loadConfig(g *Global) (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if c.Verbose {
		level = config.LogLevelDebug
	}
	w := g.Err
	if w == nil {
		w = os.Stderr
	}
	g.Logger = newLogger(w, level, cfg.Logging.Format)
	slog.SetDefault(g.Logger)
	g.Logger.Debug("Configuration loaded", slog.String("path", c.Config))
	return cfg, nil
}

func newLogger(w io.Writer, level config.LogLevel, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level.SlogLevel()}
	if config.NormalizeLogFormat(string(format)) == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
