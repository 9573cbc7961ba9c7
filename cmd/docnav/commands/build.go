package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	SiteDir     string `name:"site-dir" short:"d" help:"Override site_dir" type:"path"`
	Strict      bool   `help:"Fail on unresolved references and broken links"`
	Clean       bool   `help:"Remove previous output from site_dir first"`
	LinkCheck   bool   `name:"link-check" help:"Check rendered pages for broken local links"`
	Concurrency int    `help:"Pages rendered in parallel (overrides build.concurrency)"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	if err := b.apply(cfg); err != nil {
		return err
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if cfg.Metrics.Textfile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		rec = prom
	}

	builder := site.NewBuilder(cfg,
		site.WithRecorder(rec),
		site.WithLogger(g.Logger),
		site.WithClean(b.Clean),
	)
	report, buildErr := builder.Build(g.Context)

	if prom != nil {
		if err := prom.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			g.Logger.Warn("Failed to write metrics textfile",
				logfields.Path(cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	if buildErr != nil {
		return buildErr
	}

	_, err = fmt.Fprintf(g.Out, "Built %d pages and %d assets into %s (%d warnings, %d broken links)\n",
		report.Pages, report.Assets, cfg.SiteDir, len(report.Warnings), len(report.Broken))
	return err
}

// apply layers flag overrides on top of the configuration.
func (b *BuildCmd) apply(cfg *config.Config) error {
	if b.SiteDir != "" {
		cfg.SiteDir = b.SiteDir
	}
	if b.Strict {
		cfg.Strict = true
	}
	if b.LinkCheck {
		cfg.LinkCheck = true
	}
	if b.Concurrency != 0 {
		cfg.Build.Concurrency = b.Concurrency
	}
	return config.Validate(cfg)
}
