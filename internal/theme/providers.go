package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed themes
var builtinFS embed.FS

// Builtin is the provider of the themes shipped with the binary.
type Builtin struct{}

func (Builtin) Name() string { return "builtin" }

func (Builtin) Themes() (map[string]fs.FS, error) {
	return subdirs(builtinFS, "themes")
}

// DirProvider exposes every subdirectory of Root as a theme.
type DirProvider struct {
	Root string
}

func (d DirProvider) Name() string { return "dir:" + d.Root }

func (d DirProvider) Themes() (map[string]fs.FS, error) {
	if d.Root == "" {
		return map[string]fs.FS{}, nil
	}
	info, err := os.Stat(d.Root)
	if err != nil {
		return nil, fmt.Errorf("theme directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("theme directory %s is not a directory", d.Root)
	}
	return subdirs(os.DirFS(filepath.Clean(d.Root)), ".")
}

func subdirs(fsys fs.FS, dir string) (map[string]fs.FS, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	out := make(map[string]fs.FS, len(entries))
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		sub, err := fs.Sub(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out[e.Name()] = sub
	}
	return out, nil
}
