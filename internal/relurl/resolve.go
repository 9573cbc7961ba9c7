package relurl

import (
	"net/url"
	"path"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/pathmap"
)

// ResolvePageLink returns the relative URL from the current page to target,
// a site-root URL such as "/guide/config/". Query and fragment are kept.
//
//	current "/"                     target "/"       -> "./"
//	current "/api-guide/testing/"   target "/"       -> "../../"
//	current "/guide/styling/"       target "/guide/config/#x" -> "../config/#x"
func (s *Scope) ResolvePageLink(target string) (string, error) {
	u, err := parseReference(target)
	if err != nil {
		return "", err
	}
	if isExternal(u) {
		return target, nil
	}
	if !strings.HasPrefix(u.Path, "/") {
		return "", errors.InvalidReferenceError("page link target must be a site-root URL").
			WithContext(errors.ContextReference, target).Build()
	}

	rel := relPath(u.Path, s.url.BasePath())
	if strings.HasSuffix(u.Path, "/") && !strings.HasSuffix(rel, "/") {
		rel += "/"
	}
	return rel + suffixOf(u), nil
}

// ResolveMediaURL rewrites an author-declared media reference for the current
// page:
//
//   - references with a scheme or host ("https://...", "//cdn/...") are returned unchanged;
//   - "/img.png" is resolved from the site root;
//   - anything else is resolved from the current page's directory and gets a
//     "./" prefix unless it already has one.
//
// Pages that are not index files publish one directory below their source
// file, so relative references from them gain an extra "../".
func (s *Scope) ResolveMediaURL(declared string) (string, error) {
	u, err := parseReference(declared)
	if err != nil {
		return "", err
	}
	if isExternal(u) {
		return declared, nil
	}

	ref := declared
	base := s.url.BasePath()
	if strings.HasPrefix(ref, "/") {
		base = "/"
		ref = ref[1:]
	}

	relBase := s.url.MakeRelative(base)
	var out string
	if relBase == "." && strings.HasPrefix(ref, "./") {
		out = ref
	} else {
		out = relBase + "/" + ref
	}

	if !s.file.IsIndex() && s.url.BasePath() != "/" && strings.HasPrefix(out, "./") {
		out = "." + out
	}
	return out, nil
}

// ResolveMediaURLs resolves a list of references, dropping duplicates while
// keeping first-seen order.
func (s *Scope) ResolveMediaURLs(declared []string) ([]string, error) {
	seen := make(map[string]struct{}, len(declared))
	out := make([]string, 0, len(declared))
	for _, ref := range declared {
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		resolved, err := s.ResolveMediaURL(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

// ResolveLink rewrites a link found in the current page's markdown. Links to
// markdown sources are looked up in tree (relative to the current file, or to
// the docs root when they start with "/") and become page links; other local
// links are treated as media references. Pure fragments stay as they are.
func (s *Scope) ResolveLink(dest string, tree *nav.Tree) (string, error) {
	u, err := parseReference(dest)
	if err != nil {
		return "", err
	}
	if isExternal(u) || u.Path == "" {
		return dest, nil
	}
	if !pathmap.IsMarkdownFile(u.Path) {
		return s.ResolveMediaURL(dest)
	}

	source := u.Path
	if !strings.HasPrefix(source, "/") {
		source = path.Join(s.file.Dir(), source)
	}
	page, err := tree.Lookup(source)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryNotFound, "link target is not a page in the navigation").
			WithContext(errors.ContextReference, dest).
			WithContext("page", s.file.Get()).
			Build()
	}

	rel, err := s.ResolvePageLink(page.URL)
	if err != nil {
		return "", err
	}
	return rel + suffixOf(u), nil
}

func parseReference(ref string) (*url.URL, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, errors.InvalidReferenceError("empty reference").
			WithContext(errors.ContextReference, ref).Build()
	}
	u, err := url.Parse(ref)
	if err != nil {
		return nil, errors.InvalidReferenceError("malformed reference").
			WithCause(err).
			WithContext(errors.ContextReference, ref).Build()
	}
	return u, nil
}

func isExternal(u *url.URL) bool {
	return u.Scheme != "" || u.Host != ""
}

func suffixOf(u *url.URL) string {
	var b strings.Builder
	if u.RawQuery != "" || u.ForceQuery {
		b.WriteString("?")
		b.WriteString(u.RawQuery)
	}
	if u.Fragment != "" {
		b.WriteString("#")
		b.WriteString(u.EscapedFragment())
	}
	return b.String()
}
