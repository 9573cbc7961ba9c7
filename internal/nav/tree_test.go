package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func sourcesOf(pages []*Page) []string {
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		out = append(out, p.Source)
	}
	return out
}

func TestFromPaths_Grouping(t *testing.T) {
	tree, err := FromPaths([]string{"index.md", "guide/config.md", "guide/styling.md", "about/license.md"})
	require.NoError(t, err)

	nodes := tree.Nodes()
	require.Len(t, nodes, 3)

	home, ok := nodes[0].(*Page)
	require.True(t, ok)
	assert.Equal(t, "index.md", home.Source)
	assert.True(t, home.IsHomepage())

	guide, ok := nodes[1].(*Section)
	require.True(t, ok)
	assert.Equal(t, "Guide", guide.Title)
	require.Len(t, guide.Children, 2)
	assert.Equal(t, "Config", guide.Children[0].NodeTitle())
	assert.Equal(t, "Styling", guide.Children[1].NodeTitle())

	about, ok := nodes[2].(*Section)
	require.True(t, ok)
	assert.Equal(t, "About", about.Title)
	require.Len(t, about.Children, 1)

	assert.Equal(t, []string{"index.md", "guide/config.md", "guide/styling.md", "about/license.md"}, sourcesOf(tree.Pages()))
}

func TestFromDeclared_TrustsStructure(t *testing.T) {
	tree, err := FromDeclared([]Entry{
		{Title: "Home", Path: "index.md"},
		{Title: "About", Path: "about.md"},
		{Title: "Sub", Children: []Entry{
			{Title: "Sub Home", Path: "/subpage/index.md"},
			{Title: "Sub About", Path: `subpage\about.md`},
		}},
	})
	require.NoError(t, err)

	pages := tree.Pages()
	require.Len(t, pages, 4)
	assert.Equal(t, []string{"index.md", "about.md", "subpage/index.md", "subpage/about.md"}, sourcesOf(pages))
	assert.Equal(t, "Sub Home", pages[2].Title)
	assert.Equal(t, "/subpage/", pages[2].URL)
	assert.Equal(t, "subpage/about/index.html", pages[3].HTMLPath)
	require.NotNil(t, pages[3].Parent)
	assert.Equal(t, "Sub", pages[3].Parent.Title)
}

func TestTree_LookupRoundTrip(t *testing.T) {
	tree, err := FromPaths([]string{"index.md", "api-guide.md", "api-guide/index.md", "api-guide/testing.md"})
	require.NoError(t, err)

	for _, p := range tree.Pages() {
		got, err := tree.Lookup(p.Source)
		require.NoError(t, err)
		assert.Same(t, p, got)
		assert.Equal(t, p.URL, got.URL)
		assert.Equal(t, p.HTMLPath, got.HTMLPath)
	}

	got, err := tree.Lookup(`api-guide\testing.md`)
	require.NoError(t, err)
	assert.Equal(t, "/api-guide/testing/", got.URL)
}

func TestTree_LookupMissing(t *testing.T) {
	tree, err := FromPaths([]string{"index.md"})
	require.NoError(t, err)

	_, err = tree.Lookup("missing.md")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestTree_PreviousNext(t *testing.T) {
	tree, err := FromPaths([]string{"index.md", "guide/a.md", "guide/b.md", "z.md"})
	require.NoError(t, err)

	pages := tree.Pages()
	require.Len(t, pages, 4)
	assert.Nil(t, pages[0].Previous)
	assert.Same(t, pages[1], pages[0].Next)
	assert.Same(t, pages[1], pages[2].Previous)
	assert.Same(t, pages[3], pages[2].Next)
	assert.Nil(t, pages[3].Next)
}

func TestTree_AncestorsAndWalk(t *testing.T) {
	tree, err := FromDeclared([]Entry{
		{Path: "index.md"},
		{Title: "Outer", Children: []Entry{
			{Title: "Inner", Children: []Entry{{Path: "outer/inner/page.md"}}},
		}},
	})
	require.NoError(t, err)

	page, err := tree.Lookup("outer/inner/page.md")
	require.NoError(t, err)
	ancestors := page.Ancestors()
	require.Len(t, ancestors, 2)
	assert.Equal(t, "Outer", ancestors[0].Title)
	assert.Equal(t, "Inner", ancestors[1].Title)

	var visited []string
	var depths []int
	require.NoError(t, tree.Walk(func(n Node, depth int) error {
		visited = append(visited, n.NodeTitle())
		depths = append(depths, depth)
		return nil
	}))
	assert.Equal(t, []string{"Home", "Outer", "Inner", "Page"}, visited)
	assert.Equal(t, []int{0, 0, 1, 2}, depths)
}

func TestTree_DeterministicOrder(t *testing.T) {
	input := []string{"index.md", "b/one.md", "b/two.md", "c.md"}
	first, err := FromPaths(input)
	require.NoError(t, err)
	second, err := FromPaths(input)
	require.NoError(t, err)
	assert.Equal(t, sourcesOf(first.Pages()), sourcesOf(second.Pages()))
}

func TestFromDeclared_InvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty path", []Entry{{Title: "Nothing"}}},
		{"not markdown", []Entry{{Path: "image.png"}}},
		{"duplicate", []Entry{{Path: "a.md"}, {Title: "Again", Path: "./a.md"}}},
		{"path and children", []Entry{{Path: "a.md", Children: []Entry{{Path: "b.md"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromDeclared(tt.entries)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidReference(err))
		})
	}
}

func TestEntry_YAML(t *testing.T) {
	src := `
- index.md
- About: about.md
- User Guide:
    - guide/config.md
    - Styling: guide/styling.md
`
	var entries []Entry
	require.NoError(t, yaml.Unmarshal([]byte(src), &entries))
	require.Equal(t, []Entry{
		{Path: "index.md"},
		{Title: "About", Path: "about.md"},
		{Title: "User Guide", Children: []Entry{
			{Path: "guide/config.md"},
			{Title: "Styling", Path: "guide/styling.md"},
		}},
	}, entries)

	tree, err := FromDeclared(entries)
	require.NoError(t, err)
	out, err := yaml.Marshal(tree.Entries())
	require.NoError(t, err)

	var again []Entry
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, tree.Entries(), again)
}

func TestEntry_YAMLRejectsMalformed(t *testing.T) {
	var entries []Entry
	err := yaml.Unmarshal([]byte("- {A: a.md, B: b.md}\n"), &entries)
	require.Error(t, err)
}

func TestWithTitles_OverridesInferredOnly(t *testing.T) {
	titles := map[string]string{
		"index.md":        "Welcome",
		"about.md":        "About Us",
		"guide/config.md": "",
	}
	lookup := func(source string) string { return titles[source] }

	tree, err := FromDeclared([]Entry{
		{Path: "index.md"},
		{Title: "About", Path: "about.md"},
		{Title: "Guide", Children: []Entry{{Path: "guide/config.md"}}},
	}, WithTitles(lookup))
	require.NoError(t, err)

	pages := tree.Pages()
	assert.Equal(t, "Welcome", pages[0].Title)
	assert.Equal(t, "About", pages[1].Title, "declared titles win")
	assert.Equal(t, "Config", pages[2].Title, "empty lookup falls back to inference")

	inferred, err := FromPaths([]string{"index.md"}, WithTitles(lookup))
	require.NoError(t, err)
	assert.Equal(t, "Welcome", inferred.Pages()[0].Title)
}
