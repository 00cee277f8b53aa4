// Package core holds the note archive domain: records, keys, text scanners
// and the conversion pipelines.
package core

import "fmt"

// Kind tells how a Zettel is interpreted and rendered.
type Kind string

const (
	KindNote    Kind = "note"
	KindSection Kind = "section"
)

// IndexCardLabel replaces a section's body once its notes have been extracted.
const IndexCardLabel = "Index card"

// Zettel is one note or one section header of the archive.
// It is identified by Key, which is unique within a Library.
type Zettel struct {
	Key       string `json:"key" yaml:"key"`
	Parent    string `json:"parent" yaml:"parent"`
	Title     string `json:"title" yaml:"title"`
	Body      string `json:"body" yaml:"body"`
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`
	Keyword   string `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Kind      Kind   `json:"kind" yaml:"kind"`
}

// NewNote returns an empty note keyed by key under parent.
func NewNote(key, parent string) *Zettel {
	return &Zettel{Key: key, Parent: parent, Kind: KindNote}
}

// IsEmpty reports whether the Zettel has neither a title nor a body.
func (z *Zettel) IsEmpty() bool {
	return z.Title == "" && z.Body == ""
}

// Render formats the Zettel as one block of the text archive.
// Sections render their heading line only, notes add their content fields.
func (z *Zettel) Render() (string, error) {
	head := fmt.Sprintf("[index] %s [parent] %s [title] %s", z.Key, z.Parent, z.Title)
	switch z.Kind {
	case KindSection:
		return head, nil
	case KindNote:
		return fmt.Sprintf("%s\n[note] %s\n[reference] %s\n[keyword] %s",
			head, z.Body, z.Reference, z.Keyword), nil
	}
	return "", fmt.Errorf("%w: %q (key %s)", ErrUnknownKind, z.Kind, z.Key)
}
