package theme

import (
	"bytes"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/markdown"
)

// MainTemplate is rendered for pages that do not name a template.
const MainTemplate = "main.html"

// NavItem is one navigation entry as seen from the page being rendered.
// URL is already relative to that page.
type NavItem struct {
	Title    string
	URL      string
	Active   bool
	Children []NavItem
}

// IsSection reports whether the item groups other items.
func (n NavItem) IsSection() bool { return n.URL == "" && len(n.Children) > 0 }

// PageData is the context handed to templates.
type PageData struct {
	SiteName    string
	SiteURL     string
	Title       string
	Content     template.HTML
	TOC         []markdown.Heading
	Nav         []NavItem
	Homepage    string
	PreviousURL string
	NextURL     string
	BaseURL     string
	ExtraCSS    []string
	ExtraJS     []string
	Meta        map[string]any
}

// Theme is a parsed theme ready to render pages.
type Theme struct {
	Name string
	fsys fs.FS
	tpl  *template.Template
}

// Load parses every top-level *.html file of fsys. The theme must provide main.html.
func Load(name string, fsys fs.FS) (*Theme, error) {
	if _, err := fs.Stat(fsys, MainTemplate); err != nil {
		return nil, errors.ThemeError("theme has no main.html").
			WithCause(err).
			WithContext("theme", name).
			Build()
	}

	tpl, err := template.New(name).Funcs(template.FuncMap{
		"lower": strings.ToLower,
	}).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, errors.ThemeError("parse theme templates").
			WithCause(err).
			WithContext("theme", name).
			Build()
	}
	return &Theme{Name: name, fsys: fsys, tpl: tpl}, nil
}

// Execute renders the named template (MainTemplate when empty).
func (t *Theme) Execute(w io.Writer, name string, data *PageData) error {
	if name == "" {
		name = MainTemplate
	}
	tpl := t.tpl.Lookup(name)
	if tpl == nil {
		return errors.ThemeError("template not found in theme").
			WithContext("theme", t.Name).
			WithContext("template", name).
			Build()
	}

	// Render to a buffer so a failing template never produces partial output.
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return errors.ThemeError("execute template").
			WithCause(err).
			WithContext("theme", t.Name).
			WithContext("template", name).
			Build()
	}
	_, err := buf.WriteTo(w)
	return err
}

// StaticFiles lists theme files that are copied verbatim into the site:
// everything except templates and dot files, sorted.
func (t *Theme) StaticFiles() ([]string, error) {
	var files []string
	err := fs.WalkDir(t.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !strings.Contains(p, "/") && path.Ext(p) == ".html" {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// FS returns the theme's file tree.
func (t *Theme) FS() fs.FS { return t.fsys }
