package markdown

import (
	"bytes"
	"fmt"
	"strings"

	gmast "github.com/yuin/goldmark/ast"
)

// LinkRewriter rewrites the destinations of one page's links and images.
// Returning an error aborts rendering.
type LinkRewriter interface {
	RewriteLink(dest string) (string, error)
	RewriteImage(dest string) (string, error)
}

// Result is a rendered page body.
type Result struct {
	HTML     []byte
	Headings []Heading
}

// Render converts a Markdown body to HTML. Link and image destinations are
// passed through rw (when non-nil) before rendering; autolinks are left alone.
func Render(body []byte, opts Options, rw LinkRewriter) (*Result, error) {
	md, root := parse(body, opts)

	res := &Result{}
	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.Link:
			if rw == nil {
				break
			}
			dest, err := rw.RewriteLink(string(node.Destination))
			if err != nil {
				return gmast.WalkStop, err
			}
			node.Destination = []byte(dest)
		case *gmast.Image:
			if rw == nil {
				break
			}
			dest, err := rw.RewriteImage(string(node.Destination))
			if err != nil {
				return gmast.WalkStop, err
			}
			node.Destination = []byte(dest)
		case *gmast.Heading:
			h := Heading{Level: node.Level, Text: plainText(node, body)}
			if id, ok := node.AttributeString("id"); ok {
				if b, ok := id.([]byte); ok {
					h.ID = string(b)
				}
			}
			res.Headings = append(res.Headings, h)
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, body, root); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	res.HTML = buf.Bytes()
	return res, nil
}

func plainText(n gmast.Node, source []byte) string {
	var b strings.Builder
	var collect func(gmast.Node)
	collect = func(n gmast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *gmast.Text:
				b.Write(t.Segment.Value(source))
				if t.SoftLineBreak() {
					b.WriteByte(' ')
				}
			case *gmast.String:
				b.Write(t.Value)
			default:
				collect(c)
			}
		}
	}
	collect(n)
	return strings.TrimSpace(b.String())
}
