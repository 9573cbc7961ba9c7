package site

import (
	"git.home.luguber.info/inful/docnav/internal/markdown"
	"git.home.luguber.info/inful/docnav/internal/relurl"
)

// Reference is one link or image of a page and what it resolves to.
// Err is set when the reference cannot be resolved; Resolved is then empty.
type Reference struct {
	Destination string
	Kind        string
	Text        string
	Resolved    string
	Err         error
}

// References lists every reference on the page built from source, resolved
// the way rendering would resolve it.
func (b *Builder) References(project *Project, source string) ([]Reference, error) {
	page, err := project.Tree.Lookup(source)
	if err != nil {
		return nil, err
	}
	links, err := markdown.ExtractLinks(project.Docs[page.Source].Body, b.markdownOptions())
	if err != nil {
		return nil, pageError(page, err)
	}

	scope := relurl.NewScope(page)
	refs := make([]Reference, 0, len(links))
	for _, l := range links {
		ref := Reference{Destination: l.Destination, Kind: referenceKind(l.Destination), Text: l.Text}
		switch {
		case l.Kind == markdown.LinkKindAuto:
			ref.Kind = KindExternal
			ref.Resolved = l.Destination
		case ref.Kind == KindExternal, ref.Kind == KindAnchor:
			ref.Resolved = l.Destination
		case l.Kind == markdown.LinkKindImage:
			ref.Kind = KindMedia
			ref.Resolved, ref.Err = scope.ResolveMediaURL(l.Destination)
		default:
			ref.Resolved, ref.Err = scope.ResolveLink(l.Destination, project.Tree)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
