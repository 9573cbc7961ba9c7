package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNestPaths(t *testing.T) {
	result := NestPaths([]string{
		"index.md",
		"user-guide/configuration.md",
		"user-guide/styling-your-docs.md",
		"user-guide/writing-your-docs.md",
		"about/contributing.md",
		"about/license.md",
		"about/release-notes.md",
	})

	require.Equal(t, []Entry{
		{Path: "index.md"},
		{Title: "User Guide", Children: []Entry{
			{Path: "user-guide/configuration.md"},
			{Path: "user-guide/styling-your-docs.md"},
			{Path: "user-guide/writing-your-docs.md"},
		}},
		{Title: "About", Children: []Entry{
			{Path: "about/contributing.md"},
			{Path: "about/license.md"},
			{Path: "about/release-notes.md"},
		}},
	}, result)
}

func TestNestPaths_EdgeCases(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, NestPaths(nil))
	})

	t.Run("lone file in a directory is still a section", func(t *testing.T) {
		require.Equal(t, []Entry{
			{Title: "Guide", Children: []Entry{{Path: "guide/only.md"}}},
		}, NestPaths([]string{"guide/only.md"}))
	})

	t.Run("backslash separators are normalized", func(t *testing.T) {
		require.Equal(t, []Entry{
			{Title: "Guide", Children: []Entry{{Path: "guide/a.md"}, {Path: "guide/b.md"}}},
		}, NestPaths([]string{`guide\a.md`, `guide\b.md`}))
	})

	t.Run("grouping is one level deep", func(t *testing.T) {
		require.Equal(t, []Entry{
			{Title: "Api", Children: []Entry{{Path: "api/index.md"}, {Path: "api/v1/users.md"}}},
		}, NestPaths([]string{"api/index.md", "api/v1/users.md"}))
	})

	t.Run("top-level file splits runs", func(t *testing.T) {
		result := NestPaths([]string{"a/x.md", "b.md", "a/y.md"})
		require.Len(t, result, 3)
		require.Equal(t, "A", result[0].Title)
		require.Equal(t, "b.md", result[1].Path)
		require.Equal(t, "A", result[2].Title)
	})
}

func TestTitles(t *testing.T) {
	require.Equal(t, "User Guide", SectionTitle("user-guide"))
	require.Equal(t, "Release Notes", SectionTitle("docs/release_notes"))
	require.Equal(t, "Home", PageTitle("index.md"))
	require.Equal(t, "Api Guide", PageTitle("api-guide/index.md"))
	require.Equal(t, "Styling Your Docs", PageTitle("user-guide/styling-your-docs.md"))
}
