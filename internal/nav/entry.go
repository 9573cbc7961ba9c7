package nav

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Entry is one item of a declared (or inferred) navigation list. An entry with
// a Path is a page; an entry with Children is a section.
type Entry struct {
	Title    string
	Path     string
	Children []Entry
}

// IsSection reports whether e groups other entries.
func (e Entry) IsSection() bool { return e.Path == "" && e.Children != nil }

// UnmarshalYAML accepts the three forms used in nav configuration:
//
//	- index.md                 # page, title inferred
//	- About: about.md          # page with explicit title
//	- Guide:                   # section
//	    - guide/config.md
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*e = Entry{Path: value.Value}
		return nil
	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: nav entry must have exactly one title", value.Line)
		}
		key, val := value.Content[0], value.Content[1]
		switch val.Kind {
		case yaml.ScalarNode:
			*e = Entry{Title: key.Value, Path: val.Value}
			return nil
		case yaml.SequenceNode:
			children := make([]Entry, 0, len(val.Content))
			if err := val.Decode(&children); err != nil {
				return err
			}
			*e = Entry{Title: key.Value, Children: children}
			return nil
		default:
			return fmt.Errorf("line %d: nav entry %q must map to a path or a list", val.Line, key.Value)
		}
	default:
		return fmt.Errorf("line %d: unsupported nav entry", value.Line)
	}
}

// MarshalYAML writes e back in the form UnmarshalYAML reads.
func (e Entry) MarshalYAML() (any, error) {
	if e.IsSection() {
		return map[string][]Entry{e.Title: e.Children}, nil
	}
	if e.Title == "" {
		return e.Path, nil
	}
	return map[string]string{e.Title: e.Path}, nil
}
