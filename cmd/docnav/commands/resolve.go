package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/relurl"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	Page  string   `required:"" help:"Source path of the page the references appear on (e.g. guide/install.md)"`
	Media bool     `help:"Treat references as media URLs instead of Markdown links"`
	All   bool     `help:"Resolve every link and image found on the page"`
	Refs  []string `arg:"" optional:"" name:"ref" help:"References to resolve"`
}

func (r *ResolveCmd) Run(g *Global, root *CLI) error {
	if !r.All && len(r.Refs) == 0 {
		return errors.ValidationError("give at least one reference or --all").Build()
	}

	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}
	builder := site.NewBuilder(cfg, site.WithLogger(g.Logger))
	project, err := builder.Load(g.Context)
	if err != nil {
		return err
	}

	if r.All {
		return r.printPageReferences(g, builder, project)
	}

	page, err := project.Tree.Lookup(r.Page)
	if err != nil {
		return err
	}
	scope := relurl.NewScope(page)

	for _, ref := range r.Refs {
		var out string
		if r.Media {
			out, err = scope.ResolveMediaURL(ref)
		} else {
			out, err = scope.ResolveLink(ref, project.Tree)
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(g.Out, "%s -> %s\n", ref, out); err != nil {
			return err
		}
	}
	return nil
}

// printPageReferences lists the page's references with their kind. Failures
// are printed in place so one bad link does not hide the rest.
func (r *ResolveCmd) printPageReferences(g *Global, builder *site.Builder, project *site.Project) error {
	refs, err := builder.References(project, r.Page)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		out := ref.Resolved
		if ref.Err != nil {
			msg := ref.Err.Error()
			if ce, ok := errors.AsClassified(ref.Err); ok {
				msg = ce.Message()
			}
			out = "unresolved: " + msg
		}
		if _, err := fmt.Fprintf(g.Out, "%-8s %s -> %s\n", ref.Kind, ref.Destination, out); err != nil {
			return err
		}
	}
	return nil
}
