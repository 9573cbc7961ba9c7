package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontMatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	raw, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, raw)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontMatter(t *testing.T) {
	raw, body, had, err := Split([]byte("---\nkey: value\n---\n# Title\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("key: value\n"), raw)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_EmptyBlock(t *testing.T) {
	raw, body, had, err := Split([]byte("---\n---\nbody\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, raw)
	require.Equal(t, []byte("body\n"), body)
}

func TestSplit_ClosingDelimiterAtEOF(t *testing.T) {
	raw, body, had, err := Split([]byte("---\ntitle: x\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: x\n"), raw)
	require.Empty(t, body)
}

func TestSplit_MissingClosingDelimiter(t *testing.T) {
	_, _, had, err := Split([]byte("---\nkey: value\n# Title\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
	require.False(t, had)
}

func TestSplit_CRLF(t *testing.T) {
	raw, body, had, err := Split([]byte("---\r\nkey: value\r\n---\r\n# Title\r\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("key: value\r\n"), raw)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestParse_DecodesKnownFields(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: Install Guide\ntemplate: wide.html\ntags: [a, b]\n---\nBody\n"))
	require.NoError(t, err)
	require.True(t, doc.HasFrontMatter)
	require.Equal(t, "Install Guide", doc.Meta.Title)
	require.Equal(t, "wide.html", doc.Meta.Template)
	require.Equal(t, []any{"a", "b"}, doc.Meta.Fields["tags"])
	require.Equal(t, "Install Guide", doc.Meta.Fields["title"])
	require.Equal(t, []byte("Body\n"), doc.Body)
}

func TestParse_NoFrontMatter(t *testing.T) {
	doc, err := Parse([]byte("# Plain\n"))
	require.NoError(t, err)
	require.False(t, doc.HasFrontMatter)
	require.Empty(t, doc.Meta.Title)
	require.NotNil(t, doc.Meta.Fields)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("---\ntitle: [unclosed\n---\nBody\n"))
	require.Error(t, err)
}
