package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// ThemesCmd implements the 'themes' command. Without a configuration file
// only the builtin themes are listed.
type ThemesCmd struct{}

func (t *ThemesCmd) Run(g *Global, root *CLI) error {
	cfg := config.Default()
	if _, err := os.Stat(root.Config); err == nil {
		if cfg, err = root.loadConfig(g); err != nil {
			return err
		}
	}

	names, err := site.DefaultRegistry(cfg).Names()
	for _, name := range names {
		marker := " "
		if name == cfg.Theme {
			marker = "*"
		}
		if _, werr := fmt.Fprintf(g.Out, "%s %s\n", marker, name); werr != nil {
			return werr
		}
	}
	return err
}
