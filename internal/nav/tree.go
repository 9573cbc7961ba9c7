package nav

import (
	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/pathmap"
)

// Node is either a *Page or a *Section.
type Node interface {
	NodeTitle() string
	node()
}

// Page is a rendered document.
type Page struct {
	Title    string
	Source   string // normalized source path, e.g. "guide/config.md"
	URL      string // site-root URL, e.g. "/guide/config/"
	HTMLPath string // output path, e.g. "guide/config/index.html"

	Parent   *Section
	Previous *Page
	Next     *Page
}

// Section groups pages and other sections under a title.
type Section struct {
	Title    string
	Children []Node
	Parent   *Section
}

func (p *Page) NodeTitle() string    { return p.Title }
func (s *Section) NodeTitle() string { return s.Title }
func (*Page) node()                  {}
func (*Section) node()               {}

// IsHomepage reports whether p is served at the site root.
func (p *Page) IsHomepage() bool { return p.URL == "/" }

// Ancestors returns the enclosing sections, outermost first.
func (p *Page) Ancestors() []*Section {
	var out []*Section
	for s := p.Parent; s != nil; s = s.Parent {
		out = append([]*Section{s}, out...)
	}
	return out
}

// Tree is an ordered navigation structure. It is immutable once built.
type Tree struct {
	nodes    []Node
	pages    []*Page
	bySource map[string]*Page
}

// Option configures tree construction.
type Option func(*builder)

type builder struct {
	titleFor func(source string) string
}

// WithTitles supplies titles for pages whose entry has none, typically read
// from front matter. An empty result falls back to the inferred title.
func WithTitles(fn func(source string) string) Option {
	return func(b *builder) { b.titleFor = fn }
}

// FromPaths builds a tree from a sorted list of source paths, grouping paths
// that share a first directory into inferred sections.
func FromPaths(paths []string, opts ...Option) (*Tree, error) {
	return build(NestPaths(paths), opts)
}

// FromDeclared builds a tree from an author-declared structure. Titles and
// ordering are taken verbatim; pages without a title get an inferred one.
func FromDeclared(entries []Entry, opts ...Option) (*Tree, error) {
	return build(entries, opts)
}

func build(entries []Entry, opts []Option) (*Tree, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	t := &Tree{bySource: make(map[string]*Page)}
	nodes, err := t.buildNodes(b, entries, nil)
	if err != nil {
		return nil, err
	}
	t.nodes = nodes

	for i, p := range t.pages {
		if i > 0 {
			p.Previous = t.pages[i-1]
		}
		if i+1 < len(t.pages) {
			p.Next = t.pages[i+1]
		}
	}
	return t, nil
}

// buildNodes appends pages to t.pages in depth-first order as it goes.
func (t *Tree) buildNodes(b *builder, entries []Entry, parent *Section) ([]Node, error) {
	nodes := make([]Node, 0, len(entries))
	for _, e := range entries {
		if e.IsSection() {
			s := &Section{Title: e.Title, Parent: parent}
			children, err := t.buildNodes(b, e.Children, s)
			if err != nil {
				return nil, err
			}
			s.Children = children
			nodes = append(nodes, s)
			continue
		}

		page, err := t.newPage(b, e, parent)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, page)
	}
	return nodes, nil
}

func (t *Tree) newPage(b *builder, e Entry, parent *Section) (*Page, error) {
	source := pathmap.Normalize(e.Path)
	switch {
	case len(e.Children) > 0:
		return nil, errors.InvalidReferenceError("nav entry has both a path and children").
			WithContext(errors.ContextReference, e.Path).Build()
	case source == "":
		return nil, errors.InvalidReferenceError("nav entry has an empty path").
			WithContext("title", e.Title).Build()
	case !pathmap.IsMarkdownFile(source):
		return nil, errors.InvalidReferenceError("nav entry is not a markdown file").
			WithContext(errors.ContextReference, e.Path).Build()
	}
	if _, dup := t.bySource[source]; dup {
		return nil, errors.InvalidReferenceError("page listed more than once in nav").
			WithContext(errors.ContextReference, source).Build()
	}

	title := e.Title
	if title == "" && b.titleFor != nil {
		title = b.titleFor(source)
	}
	if title == "" {
		title = PageTitle(source)
	}
	p := &Page{
		Title:    title,
		Source:   source,
		URL:      pathmap.ToURLPath(source),
		HTMLPath: pathmap.ToHTMLPath(source),
		Parent:   parent,
	}
	t.bySource[source] = p
	t.pages = append(t.pages, p)
	return p, nil
}

// Nodes returns the top-level nodes in order.
func (t *Tree) Nodes() []Node {
	return t.nodes
}

// Pages returns every page in document order: sections are flattened
// depth-first, preserving declared or grouped order.
func (t *Tree) Pages() []*Page {
	return t.pages
}

// Len returns the number of pages.
func (t *Tree) Len() int { return len(t.pages) }

// Lookup returns the page built from source. Separators are normalized first.
func (t *Tree) Lookup(source string) (*Page, error) {
	if p, ok := t.bySource[pathmap.Normalize(source)]; ok {
		return p, nil
	}
	return nil, errors.NotFoundError("page not found in navigation").
		WithContext("source", source).Build()
}

// Homepage returns the page served at "/", or nil.
func (t *Tree) Homepage() *Page {
	for _, p := range t.pages {
		if p.IsHomepage() {
			return p
		}
	}
	return nil
}

// Walk calls fn for every node in document order with its nesting depth
// (top level is 0). A non-nil error from fn stops the walk.
func (t *Tree) Walk(fn func(n Node, depth int) error) error {
	return walk(t.nodes, 0, fn)
}

func walk(nodes []Node, depth int, fn func(Node, int) error) error {
	for _, n := range nodes {
		if err := fn(n, depth); err != nil {
			return err
		}
		if s, ok := n.(*Section); ok {
			if err := walk(s.Children, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Entries converts the tree back into declared form, titles included.
func (t *Tree) Entries() []Entry {
	return toEntries(t.nodes)
}

func toEntries(nodes []Node) []Entry {
	out := make([]Entry, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case *Page:
			out = append(out, Entry{Title: v.Title, Path: v.Source})
		case *Section:
			out = append(out, Entry{Title: v.Title, Children: toEntries(v.Children)})
		}
	}
	return out
}
