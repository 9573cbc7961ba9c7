package site

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/fileutil"
	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/frontmatter"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/markdown"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/pathmap"
	"git.home.luguber.info/inful/docnav/internal/relurl"
	"git.home.luguber.info/inful/docnav/internal/theme"
)

// Reference kinds used for metrics and warnings.
const (
	KindPage     = "page"
	KindMedia    = "media"
	KindExternal = "external"
	KindAnchor   = "anchor"
)

// renderPage renders one page with its own Scope and writes it to site_dir.
// The returned warnings are unresolved references left as written.
func (b *Builder) renderPage(log *slog.Logger, th *theme.Theme, tree *nav.Tree, p *nav.Page, doc *frontmatter.Document) ([]Warning, error) {
	scope := relurl.NewScope(p)
	rw := &pageRewriter{
		scope:    scope,
		tree:     tree,
		strict:   b.cfg.Strict,
		recorder: b.recorder,
		log:      log.With(logfields.Page(p.Source)),
	}

	res, err := markdown.Render(doc.Body, b.markdownOptions(), rw)
	if err != nil {
		return rw.warnings, pageError(p, err)
	}

	data, err := b.pageData(scope, tree, p, doc, res)
	if err != nil {
		return rw.warnings, pageError(p, err)
	}

	var buf bytes.Buffer
	if err := th.Execute(&buf, doc.Meta.Template, data); err != nil {
		return rw.warnings, pageError(p, err)
	}

	out := filepath.Join(b.cfg.SiteDir, filepath.FromSlash(p.HTMLPath))
	if err := fileutil.WriteFile(out, buf.Bytes()); err != nil {
		return rw.warnings, errors.WrapError(err, errors.CategoryFileSystem, "write page").
			WithContext("page", p.Source).
			WithContext("path", p.HTMLPath).
			Build()
	}
	b.recorder.IncPagesRendered()
	log.Debug("Page rendered", logfields.Page(p.Source), logfields.URL(p.URL))
	return rw.warnings, nil
}

func (b *Builder) pageData(scope *relurl.Scope, tree *nav.Tree, p *nav.Page, doc *frontmatter.Document, res *markdown.Result) (*theme.PageData, error) {
	root, err := scope.ResolvePageLink("/")
	if err != nil {
		return nil, err
	}

	data := &theme.PageData{
		SiteName: b.cfg.SiteName,
		Title:    p.Title,
		// Rendered by goldmark from the author's own source.
		Content:  template.HTML(res.HTML), // #nosec G203
		TOC:      res.Headings,
		BaseURL:  baseURL(root),
		Homepage: root,
		Meta:     doc.Meta.Fields,
	}
	if b.cfg.SiteURL != "" {
		data.SiteURL = strings.TrimSuffix(b.cfg.SiteURL, "/") + p.URL
	}
	if home := tree.Homepage(); home != nil {
		if data.Homepage, err = scope.ResolvePageLink(home.URL); err != nil {
			return nil, err
		}
	}
	if p.Previous != nil {
		if data.PreviousURL, err = scope.ResolvePageLink(p.Previous.URL); err != nil {
			return nil, err
		}
	}
	if p.Next != nil {
		if data.NextURL, err = scope.ResolvePageLink(p.Next.URL); err != nil {
			return nil, err
		}
	}
	if data.ExtraCSS, err = scope.ResolveMediaURLs(b.cfg.ExtraCSS); err != nil {
		return nil, err
	}
	if data.ExtraJS, err = scope.ResolveMediaURLs(b.cfg.ExtraJavaScript); err != nil {
		return nil, err
	}
	if data.Nav, err = navItems(tree.Nodes(), scope, p); err != nil {
		return nil, err
	}
	return data, nil
}

// baseURL turns the relative link to the site root ("./", "../../") into
// the form templates prefix paths with ("." or "../..").
func baseURL(root string) string {
	if root == "./" {
		return "."
	}
	return strings.TrimSuffix(root, "/")
}

func navItems(nodes []nav.Node, scope *relurl.Scope, current *nav.Page) ([]theme.NavItem, error) {
	items := make([]theme.NavItem, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case *nav.Page:
			u, err := scope.ResolvePageLink(v.URL)
			if err != nil {
				return nil, err
			}
			items = append(items, theme.NavItem{Title: v.Title, URL: u, Active: v == current})
		case *nav.Section:
			children, err := navItems(v.Children, scope, current)
			if err != nil {
				return nil, err
			}
			items = append(items, theme.NavItem{Title: v.Title, Children: children})
		}
	}
	return items, nil
}

// pageRewriter adapts a page Scope to markdown.LinkRewriter. In strict mode
// the first unresolved reference aborts rendering; otherwise it is recorded
// as a warning and kept unchanged.
type pageRewriter struct {
	scope    *relurl.Scope
	tree     *nav.Tree
	strict   bool
	recorder metrics.Recorder
	log      *slog.Logger
	warnings []Warning
}

func (r *pageRewriter) RewriteLink(dest string) (string, error) {
	kind := referenceKind(dest)
	if kind == KindExternal || kind == KindAnchor {
		r.recorder.IncReference(kind, metrics.ResultSkipped)
		return dest, nil
	}
	return r.handle(dest, kind, func() (string, error) { return r.scope.ResolveLink(dest, r.tree) })
}

func (r *pageRewriter) RewriteImage(dest string) (string, error) {
	if referenceKind(dest) == KindExternal {
		r.recorder.IncReference(KindExternal, metrics.ResultSkipped)
		return dest, nil
	}
	return r.handle(dest, KindMedia, func() (string, error) { return r.scope.ResolveMediaURL(dest) })
}

func (r *pageRewriter) handle(dest, kind string, resolve func() (string, error)) (string, error) {
	out, err := resolve()
	if err == nil {
		r.recorder.IncReference(kind, metrics.ResultResolved)
		return out, nil
	}

	result := metrics.ResultUnresolved
	if errors.IsInvalidReference(err) {
		result = metrics.ResultInvalid
	}
	r.recorder.IncReference(kind, result)
	if r.strict {
		return "", err
	}

	msg := err.Error()
	if ce, ok := errors.AsClassified(err); ok {
		msg = ce.Message()
	}
	r.warnings = append(r.warnings, Warning{Page: r.scope.File(), Reference: dest, Message: msg})
	r.log.Warn("Unresolved reference left as written",
		logfields.Reference(dest), logfields.Kind(kind), logfields.Error(err))
	return dest, nil
}

// referenceKind classifies a link destination without resolving it.
// Malformed destinations are reported as media so resolution reports them.
func referenceKind(dest string) string {
	u, err := url.Parse(dest)
	switch {
	case err != nil:
		return KindMedia
	case u.Scheme != "" || u.Host != "":
		return KindExternal
	case u.Path == "" && dest != "":
		return KindAnchor
	case pathmap.IsMarkdownFile(u.Path):
		return KindPage
	default:
		return KindMedia
	}
}

func sortWarnings(ws []Warning, order map[string]int) {
	sort.SliceStable(ws, func(i, j int) bool { return order[ws[i].Page] < order[ws[j].Page] })
}
