package site

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/pathmap"
)

// ErrNoPages is returned when the docs directory holds no Markdown files.
var ErrNoPages = stderrors.New("no markdown files found in docs directory")

// Files is the content of a docs directory, split by role. All paths are
// normalized and relative to the docs directory. Pages are in document
// order (see sortPages); assets and ignored files are sorted.
type Files struct {
	Pages  []string // Markdown sources
	Assets []string // copied verbatim
	// Ignored holds files that are neither Markdown nor a known asset type.
	Ignored []string
}

// Discover walks docsDir. Entries whose name starts with a dot are skipped,
// directories included.
func Discover(docsDir string) (*Files, error) {
	files := &Files{}
	err := filepath.WalkDir(docsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != docsDir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(docsDir, p)
		if err != nil {
			return err
		}
		rel = pathmap.Normalize(rel)
		switch {
		case pathmap.IsMarkdownFile(rel):
			files.Pages = append(files.Pages, rel)
		case pathmap.IsAsset(rel), pathmap.IsHTMLFile(rel):
			files.Assets = append(files.Assets, rel)
		default:
			files.Ignored = append(files.Ignored, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to scan docs directory").
			WithContext("path", docsDir).
			Build()
	}

	sortPages(files.Pages)
	sort.Strings(files.Assets)
	sort.Strings(files.Ignored)
	return files, nil
}

// sortPages orders sources the way a reader walks the tree: within each
// directory its files come before its subdirectories, and an index file comes
// before its siblings. Each directory's pages stay contiguous.
func sortPages(pages []string) {
	sort.SliceStable(pages, func(i, j int) bool { return pageLess(pages[i], pages[j]) })
}

func pageLess(a, b string) bool {
	as, bs := strings.Split(a, "/"), strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		aFile, bFile := i == len(as)-1, i == len(bs)-1
		switch {
		case aFile != bFile:
			return aFile
		case aFile && pathmap.IsIndexFile(as[i]) != pathmap.IsIndexFile(bs[i]):
			return pathmap.IsIndexFile(as[i])
		default:
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}
