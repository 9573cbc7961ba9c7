package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docnav/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force    bool   `help:"Overwrite an existing configuration file"`
	SiteName string `name:"site-name" help:"Site name written to the configuration" default:"My Docs"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	if err := config.Init(root.Config, i.SiteName, i.Force); err != nil {
		return err
	}
	_, err := fmt.Fprintf(g.Out, "Wrote %s\n", root.Config)
	return err
}
