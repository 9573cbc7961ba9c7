package markdown

// Options controls how Markdown is parsed.
type Options struct {
	// GFM enables GitHub Flavored Markdown (tables, strikethrough, autolinks, task lists).
	GFM bool
}

// LinkKind tells how a reference was written.
type LinkKind string

const (
	LinkKindInline LinkKind = "inline"
	LinkKindImage  LinkKind = "image"
	LinkKindAuto   LinkKind = "auto"
)

// Link is one reference found in a page body. Reference-style links are
// reported at their point of use with the destination of their definition.
type Link struct {
	Kind        LinkKind
	Destination string
	Text        string
}

// Heading is one entry of a page outline.
type Heading struct {
	Level int
	Text  string
	ID    string
}
