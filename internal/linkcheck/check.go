package linkcheck

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// Broken is a link whose target is missing from the site.
type Broken struct {
	Page   string // site-relative HTML path of the page holding the link
	URL    string
	Tag    string
	Target string // site-relative path that was looked up
}

// Check scans the given pages (site-relative HTML paths) under siteDir and
// reports internal links whose target does not exist. External links,
// fragments and non-file schemes are skipped.
func Check(ctx context.Context, siteDir string, pages []string) ([]Broken, error) {
	var broken []Broken
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return broken, err
		}

		// #nosec G304 -- page comes from the set of files this build wrote.
		f, err := os.Open(filepath.Join(siteDir, filepath.FromSlash(page)))
		if err != nil {
			return broken, errors.WrapError(err, errors.CategoryFileSystem, "open rendered page").
				WithContext("page", page).
				Build()
		}
		links, err := ExtractLinksFromReader(f)
		_ = f.Close()
		if err != nil {
			return broken, err
		}

		for _, l := range links {
			target, ok := localTarget(page, l.URL)
			if !ok || exists(siteDir, target) {
				continue
			}
			broken = append(broken, Broken{Page: page, URL: l.URL, Tag: l.Tag, Target: target})
		}
	}
	return broken, nil
}

// localTarget maps a link on page to a site-relative file path. It returns
// false for links that do not point into the site.
func localTarget(page, link string) (string, bool) {
	if strings.HasPrefix(link, "#") {
		return "", false
	}
	u, err := url.Parse(link)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}

	var target string
	if strings.HasPrefix(u.Path, "/") {
		target = path.Clean(u.Path)
	} else {
		target = path.Join("/", path.Dir(page), u.Path)
	}
	target = strings.TrimPrefix(target, "/")
	if strings.HasSuffix(u.Path, "/") || target == "" {
		target = path.Join(target, "index.html")
	}
	return target, true
}

func exists(siteDir, target string) bool {
	info, err := os.Stat(filepath.Join(siteDir, filepath.FromSlash(target)))
	if err != nil {
		return false
	}
	if info.IsDir() {
		_, err = os.Stat(filepath.Join(siteDir, filepath.FromSlash(target), "index.html"))
		return err == nil
	}
	return true
}
