// Package fileutil materializes site output files.
package fileutil

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const dirPerm = 0o750

// CopyFile copies src to dst. When dst ends in a separator or names an
// existing directory, src's base name is appended. Missing parent directories
// are created. The copy keeps src's permission bits but is always writable by
// its owner, so a read-only source never yields a read-only output.
func CopyFile(src, dst string) error {
	dst = destination(src, dst)

	// #nosec G304 -- src comes from the docs or theme tree being built.
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	return writeFrom(in, dst, info.Mode().Perm())
}

// CopyFromFS copies name out of fsys into dst, following the same
// destination rules as CopyFile.
func CopyFromFS(fsys fs.FS, name, dst string) error {
	dst = destination(name, dst)

	in, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	perm := fs.FileMode(0o644)
	if info, err := in.Stat(); err == nil && info.Mode().Perm() != 0 {
		perm = info.Mode().Perm()
	}
	return writeFrom(in, dst, perm)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	// #nosec G306 -- site output is meant to be served.
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// CleanDirectory removes everything inside dir except entries whose name
// starts with a dot. dir itself is kept; a missing dir is not an error.
func CleanDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read directory: %w", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("remove %s: %w", e.Name(), err)
		}
	}
	return nil
}

func destination(src, dst string) string {
	if strings.HasSuffix(dst, "/") || strings.HasSuffix(dst, string(filepath.Separator)) {
		return filepath.Join(dst, filepath.Base(src))
	}
	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		return filepath.Join(dst, filepath.Base(src))
	}
	return dst
}

func writeFrom(r io.Reader, dst string, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	perm |= 0o200
	// #nosec G304 -- dst is computed under the site directory.
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}
	// An existing destination keeps its old mode through OpenFile.
	if err := os.Chmod(dst, perm); err != nil {
		return fmt.Errorf("chmod destination: %w", err)
	}
	return nil
}
