// Package relurl computes relative URLs from the page currently being
// rendered to other pages and media assets.
//
// The state of "the current page" lives in a Scope value owned by the caller.
// A Scope must not be shared between goroutines rendering different pages;
// each worker creates its own.
package relurl

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/pathmap"
)

// URLContext holds the URL of the page currently rendering.
type URLContext struct {
	current string
}

// Set records the current page URL.
func (c *URLContext) Set(url string) { c.current = url }

// Get returns the current page URL.
func (c *URLContext) Get() string { return c.current }

// BasePath is the directory the current URL resolves relative references
// against: "/guide/config/" gives "/guide/config", "/level1/level2" gives
// "/level1". The zero value yields "/".
func (c *URLContext) BasePath() string {
	if c.current == "" {
		return "/"
	}
	dir := path.Dir(c.current)
	if dir == "." || dir == "" {
		return "/"
	}
	return dir
}

// MakeRelative returns target relative to BasePath. A trailing "/" on target
// is kept, except for the bare root.
func (c *URLContext) MakeRelative(target string) string {
	suffix := ""
	if len(target) > 1 && strings.HasSuffix(target, "/") {
		suffix = "/"
	}
	return relPath(target, c.BasePath()) + suffix
}

// FileContext holds the source path of the page currently rendering.
type FileContext struct {
	current string
}

// Set records the current source path with backslashes converted to "/".
func (c *FileContext) Set(source string) {
	c.current = strings.ReplaceAll(source, `\`, "/")
}

// Get returns the stored source path.
func (c *FileContext) Get() string { return c.current }

// Dir returns the directory of the current source path, "" at the root.
func (c *FileContext) Dir() string {
	dir := path.Dir(pathmap.Normalize(c.current))
	if dir == "." {
		return ""
	}
	return dir
}

// IsIndex reports whether the current file is an index page.
func (c *FileContext) IsIndex() bool {
	return c.current != "" && pathmap.IsIndexFile(c.current)
}

// Scope pairs the URL and file context of one page. The two are only ever
// updated together through Enter.
type Scope struct {
	url  URLContext
	file FileContext
}

// NewScope returns a scope positioned on page p.
func NewScope(p *nav.Page) *Scope {
	s := &Scope{}
	s.Enter(p.URL, p.Source)
	return s
}

// Enter moves the scope to a new page.
func (s *Scope) Enter(url, source string) {
	s.url.Set(url)
	s.file.Set(source)
}

// URL returns the current page URL.
func (s *Scope) URL() string { return s.url.Get() }

// File returns the current (separator-normalized) source path.
func (s *Scope) File() string { return s.file.Get() }

// relPath mirrors POSIX relpath for two absolute slash paths.
func relPath(target, start string) string {
	t := segments(target)
	b := segments(start)

	i := 0
	for i < len(t) && i < len(b) && t[i] == b[i] {
		i++
	}

	parts := make([]string, 0, len(b)-i+len(t)-i)
	for range b[i:] {
		parts = append(parts, "..")
	}
	parts = append(parts, t[i:]...)
	if len(parts) == 0 {
		return "."
	}
	return strings.Join(parts, "/")
}

func segments(p string) []string {
	clean := path.Clean("/" + p)
	if clean == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(clean, "/"), "/")
}
