package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Link
	}{
		{
			name: "document order across kinds",
			src:  "# Guide\n\nRead [the *config* page](config.md#opts), see ![Logo](img/logo.png)\nor <https://example.com/x>.\n",
			want: []Link{
				{Kind: LinkKindInline, Destination: "config.md#opts", Text: "the config page"},
				{Kind: LinkKindImage, Destination: "img/logo.png", Text: "Logo"},
				{Kind: LinkKindAuto, Destination: "https://example.com/x", Text: "https://example.com/x"},
			},
		},
		{
			name: "reference links report their definition",
			src:  "See [API][ref] and [again][ref].\n\n[ref]: api.md\n",
			want: []Link{
				{Kind: LinkKindInline, Destination: "api.md", Text: "API"},
				{Kind: LinkKindInline, Destination: "api.md", Text: "again"},
			},
		},
		{
			name: "code is not inspected",
			src:  "Inline `[x](inline.md)`\n\n```\n[y](fenced.md)\n```\n\n    [z](indented.md)\n\n[ok](real.md)\n",
			want: []Link{{Kind: LinkKindInline, Destination: "real.md", Text: "ok"}},
		},
		{
			name: "no links",
			src:  "Just text.\n",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links, err := ExtractLinks([]byte(tt.src), Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, links)
		})
	}
}

func TestExtractLinks_GFMAutolinks(t *testing.T) {
	src := []byte("Visit https://example.com/docs today.\n")

	plain, err := ExtractLinks(src, Options{})
	require.NoError(t, err)
	assert.Empty(t, plain)

	gfm, err := ExtractLinks(src, Options{GFM: true})
	require.NoError(t, err)
	require.Len(t, gfm, 1)
	assert.Equal(t, LinkKindAuto, gfm[0].Kind)
	assert.Equal(t, "https://example.com/docs", gfm[0].Destination)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Getting Started", Title([]byte("Intro\n\n## Sub\n\n# Getting *Started*\n\n# Later\n"), Options{}))
	assert.Equal(t, "Setext", Title([]byte("Setext\n======\n"), Options{}))
	assert.Empty(t, Title([]byte("## Only level two\n"), Options{}))
}
