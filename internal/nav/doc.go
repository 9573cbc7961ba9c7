// Package nav builds the ordered navigation tree of a documentation site.
//
// A tree is built either from a flat, sorted list of source paths (grouped one
// level deep by their first directory) or from an author-declared nested list,
// which is trusted verbatim. Once built, a Tree is read-only and safe to share
// between goroutines.
package nav
