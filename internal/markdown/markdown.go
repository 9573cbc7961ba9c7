package markdown

import (
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

func newMarkdown(opts Options) goldmark.Markdown {
	var gopts []goldmark.Option
	if opts.GFM {
		gopts = append(gopts, goldmark.WithExtensions(extension.GFM))
	}
	gopts = append(gopts, goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	return goldmark.New(gopts...)
}

func parse(body []byte, opts Options) (goldmark.Markdown, gmast.Node) {
	md := newMarkdown(opts)
	return md, md.Parser().Parse(text.NewReader(body), parser.WithContext(parser.NewContext()))
}

// ExtractLinks lists the links, images and autolinks of a Markdown body
// (front matter already removed) in document order. Code spans and blocks
// are not inspected.
func ExtractLinks(body []byte, opts Options) ([]Link, error) {
	_, root := parse(body, opts)

	var links []Link
	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.AutoLink:
			url := string(node.URL(body))
			links = append(links, Link{Kind: LinkKindAuto, Destination: url, Text: url})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination), Text: plainText(node, body)})
		case *gmast.Link:
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination), Text: plainText(node, body)})
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Title returns the text of the first level-1 heading, or "".
func Title(body []byte, opts Options) string {
	_, root := parse(body, opts)

	var title string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if h, ok := n.(*gmast.Heading); ok && entering && h.Level == 1 {
			title = plainText(h, body)
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return title
}
