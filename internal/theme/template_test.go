package theme

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/markdown"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
}

func TestBuiltinDefaultTheme_RendersPage(t *testing.T) {
	fsys, err := NewRegistry(Builtin{}).Open("default")
	require.NoError(t, err)

	th, err := Load("default", fsys)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = th.Execute(&buf, "", &PageData{
		SiteName: "Docs",
		Title:    "Install",
		Content:  template.HTML("<p>hello</p>"),
		TOC:      []markdown.Heading{{Level: 2, Text: "Steps", ID: "steps"}},
		Nav: []NavItem{
			{Title: "Home", URL: "../"},
			{Title: "Guide", Children: []NavItem{{Title: "Install", URL: "./", Active: true}}},
		},
		Homepage:    "../",
		PreviousURL: "../",
		BaseURL:     "..",
		ExtraCSS:    []string{"../extra.css"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>Install - Docs</title>")
	assert.Contains(t, out, "<p>hello</p>")
	assert.Contains(t, out, `href="../css/theme.css"`)
	assert.Contains(t, out, `href="../extra.css"`)
	assert.Contains(t, out, `<li class="active"><a href="./">Install</a></li>`)
	assert.Contains(t, out, `<span>Guide</span>`)
	assert.Contains(t, out, `href="#steps"`)
	assert.Contains(t, out, `rel="prev" href="../"`)
	assert.NotContains(t, out, `rel="next"`)
}

func TestBuiltinDefaultTheme_StaticFiles(t *testing.T) {
	fsys, err := NewRegistry(Builtin{}).Open("default")
	require.NoError(t, err)
	th, err := Load("default", fsys)
	require.NoError(t, err)

	files, err := th.StaticFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"css/theme.css"}, files)
}

func TestLoad_RequiresMainTemplate(t *testing.T) {
	_, err := Load("broken", fstest.MapFS{"page.html": {Data: []byte("x")}})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryTheme))
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load("broken", fstest.MapFS{"main.html": {Data: []byte("{{ .Title ")}})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryTheme))
}

func TestExecute_NamedTemplate(t *testing.T) {
	th, err := Load("custom", fstest.MapFS{
		"main.html":    {Data: []byte("main:{{ .Title }}")},
		"landing.html": {Data: []byte("landing:{{ .Title }}")},
		".hidden.css":  {Data: []byte("x")},
		"img/logo.png": {Data: []byte("png")},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, th.Execute(&buf, "landing.html", &PageData{Title: "Welcome"}))
	assert.Equal(t, "landing:Welcome", buf.String())

	err = th.Execute(&buf, "missing.html", &PageData{})
	require.Error(t, err)

	files, err := th.StaticFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"img/logo.png"}, files)
}
