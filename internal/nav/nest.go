package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docnav/internal/pathmap"
)

// NestPaths groups a sorted list of source paths into navigation entries.
//
// Consecutive paths sharing the same first directory become one section whose
// title is inferred from that directory. Paths without a directory are always
// top-level pages. Grouping is a single level: "a/b/c.md" lands in section "A".
func NestPaths(paths []string) []Entry {
	nested := make([]Entry, 0, len(paths))

	var (
		groupDir string
		group    []Entry
	)
	flush := func() {
		if len(group) > 0 {
			nested = append(nested, Entry{Title: SectionTitle(groupDir), Children: group})
		}
		groupDir, group = "", nil
	}

	for _, raw := range paths {
		p := pathmap.Normalize(raw)
		dir, _, nestedPath := strings.Cut(p, "/")
		if !nestedPath {
			flush()
			nested = append(nested, Entry{Path: p})
			continue
		}
		if dir != groupDir {
			flush()
			groupDir = dir
		}
		group = append(group, Entry{Path: p})
	}
	flush()

	return nested
}

// SectionTitle infers a section title from a directory name:
// "user-guide" becomes "User Guide".
func SectionTitle(dir string) string {
	return titleize(path.Base(pathmap.Normalize(dir)))
}

// PageTitle infers a page title from its source path. The homepage is "Home";
// other index pages take the title of their directory.
func PageTitle(source string) string {
	p := pathmap.Normalize(source)
	if pathmap.IsIndexFile(p) {
		dir := path.Dir(p)
		if dir == "." {
			return "Home"
		}
		return SectionTitle(dir)
	}
	base := path.Base(p)
	return titleize(strings.TrimSuffix(base, path.Ext(base)))
}

func titleize(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	// Casers are stateful; one per call keeps concurrent tree builds safe.
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}
