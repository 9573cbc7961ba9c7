// Package frontmatter separates YAML front matter from a Markdown page and
// decodes the fields docnav understands.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document opened a front matter
// block but never closed it.
var ErrMissingClosingDelimiter = errors.New("front matter start delimiter found but closing delimiter is missing")

// Meta holds page metadata. Title and Template are decoded explicitly; every
// key, including those two, is also kept in Fields for templates.
type Meta struct {
	Title    string         `yaml:"title"`
	Template string         `yaml:"template"`
	Fields   map[string]any `yaml:"-"`
}

// Document is a page split into metadata and Markdown body.
type Document struct {
	Meta Meta
	Body []byte
	// HasFrontMatter reports whether a `---` block was present.
	HasFrontMatter bool
}

// Split separates `---` delimited YAML front matter from the body. When the
// content does not start with a delimiter, had is false and body is content.
func Split(content []byte) (raw []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// A closing delimiter at EOF without a trailing newline is accepted.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(content, tail) && len(content)-len(tail) >= start {
			return content[start : len(content)-len(tail)+len(nl)], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	return content[start:end], content[start+idx+len(closeSeq):], true, nil
}

// Parse splits content and decodes its front matter.
func Parse(content []byte) (*Document, error) {
	raw, body, had, err := Split(content)
	if err != nil {
		return nil, err
	}

	doc := &Document{Body: body, HasFrontMatter: had, Meta: Meta{Fields: map[string]any{}}}
	if len(bytes.TrimSpace(raw)) == 0 {
		return doc, nil
	}

	if err := yaml.Unmarshal(raw, &doc.Meta.Fields); err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	if doc.Meta.Fields == nil {
		doc.Meta.Fields = map[string]any{}
	}
	if err := yaml.Unmarshal(raw, &doc.Meta); err != nil {
		return nil, fmt.Errorf("decode front matter: %w", err)
	}
	return doc, nil
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
