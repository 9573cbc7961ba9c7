// Package pathmap maps content source paths to output HTML paths and public URLs.
//
// All functions are pure string transforms over slash-separated paths. Callers
// may pass paths with either separator; they are normalized before derivation.
package pathmap

import (
	"path"
	"slices"
	"strings"
)

var (
	markdownExtensions = []string{".md", ".markdown", ".mdown", ".mkdn", ".mkd"}
	htmlExtensions     = []string{".html", ".htm"}
	assetExtensions    = []string{
		// Images
		".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".bmp", ".ico",
		// Documents
		".pdf",
		// Video
		".mp4", ".webm", ".ogv",
		// Styles, scripts and fonts
		".css", ".js", ".woff", ".woff2", ".ttf", ".eot",
		// Other
		".csv", ".json", ".yaml", ".yml", ".xml", ".txt",
	}
)

// Normalize converts backslashes to forward slashes and strips any drive
// letter, leading "./" and leading "/" so the result is a clean relative path.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0]) {
		p = p[2:]
	}
	p = strings.TrimLeft(p, "/")
	if p == "" {
		return ""
	}
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return p
}

// ToHTMLPath returns the output file path for a markdown source path.
//
//	index.md             -> index.html
//	api-guide.md         -> api-guide/index.html
//	api-guide/index.md   -> api-guide/index.html
//	api-guide/testing.md -> api-guide/testing/index.html
func ToHTMLPath(source string) string {
	p := Normalize(source)
	dir, base := path.Split(p)
	if IsIndexFile(base) {
		return path.Join(dir, "index.html")
	}
	name := strings.TrimSuffix(base, path.Ext(base))
	return path.Join(dir, name, "index.html")
}

// ToURLPath returns the site-root URL for a markdown source path. The result
// always ends in "/"; the homepage yields exactly "/".
func ToURLPath(source string) string {
	dir := path.Dir(ToHTMLPath(source))
	if dir == "." {
		return "/"
	}
	return "/" + dir + "/"
}

// IsMarkdownFile reports whether p has a recognized markdown extension.
func IsMarkdownFile(p string) bool {
	return hasExtension(p, markdownExtensions)
}

// IsHTMLFile reports whether p has a recognized HTML extension.
func IsHTMLFile(p string) bool {
	return hasExtension(p, htmlExtensions)
}

// IsAsset reports whether p is a static file copied verbatim into the site.
func IsAsset(p string) bool {
	return hasExtension(p, assetExtensions)
}

// IsIndexFile reports whether the final segment of p is index.<markdown-ext>.
func IsIndexFile(p string) bool {
	base := path.Base(Normalize(p))
	if !IsMarkdownFile(base) {
		return false
	}
	return strings.EqualFold(strings.TrimSuffix(base, path.Ext(base)), "index")
}

// Depth counts the non-empty "/"-delimited segments of a URL path.
func Depth(urlPath string) int {
	n := 0
	for _, seg := range strings.Split(urlPath, "/") {
		if seg != "" {
			n++
		}
	}
	return n
}

func hasExtension(p string, exts []string) bool {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(p, `\`, "/")))
	if ext == "" {
		return false
	}
	return slices.Contains(exts, ext)
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
