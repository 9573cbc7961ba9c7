package commands

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// NavCmd implements the 'nav' command.
type NavCmd struct {
	Format string `help:"Output format (text|yaml)" enum:"text,yaml" default:"text"`
}

func (n *NavCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	project, err := site.NewBuilder(cfg, site.WithLogger(g.Logger)).Load(g.Context)
	if err != nil {
		return err
	}

	if n.Format == "yaml" {
		enc := yaml.NewEncoder(g.Out)
		enc.SetIndent(2)
		if err := enc.Encode(project.Tree.Entries()); err != nil {
			return err
		}
		return enc.Close()
	}
	return printTree(g.Out, project.Tree)
}

func printTree(w io.Writer, tree *nav.Tree) error {
	return tree.Walk(func(node nav.Node, depth int) error {
		indent := strings.Repeat("  ", depth)
		var err error
		switch v := node.(type) {
		case *nav.Section:
			_, err = fmt.Fprintf(w, "%s%s/\n", indent, v.Title)
		case *nav.Page:
			_, err = fmt.Fprintf(w, "%s%s  %s  (%s)\n", indent, v.Title, v.URL, v.Source)
		}
		return err
	})
}
