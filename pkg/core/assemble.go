package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultExplicitKeyMinLen is the shortest index content used verbatim as a
// key. Shorter contents, such as card numbers, get a generated key.
const DefaultExplicitKeyMinLen = 10

// Assembler builds Zettels from (marker, content) pairs and stores them in a
// Library. It keeps track of the record currently open for field updates.
type Assembler struct {
	lib       *Library
	keys      *KeyGenerator
	minKeyLen int
	// colonTitles lets "[title] A: B" fill the body of a record without one.
	colonTitles bool

	parent  string
	current *Zettel
}

// NewAssembler returns an Assembler writing to lib. Index contents of at
// least minKeyLen characters become keys verbatim.
func NewAssembler(lib *Library, keys *KeyGenerator, minKeyLen int) *Assembler {
	return &Assembler{lib: lib, keys: keys, minKeyLen: minKeyLen}
}

// SplitColonTitles makes a title with a colon fill the title and body of a
// record that has no body yet. Text archives write "[title] Hello: World" for
// a titled note; table titles are kept whole.
func (a *Assembler) SplitColonTitles(enabled bool) {
	a.colonTitles = enabled
}

// Section stores a section record titled after header with body as its
// content, under parent. A nil Zettel and nil error mean the section was
// empty and has been skipped.
func (a *Assembler) Section(header, body, parent string) (*Zettel, error) {
	key := a.keys.Next()
	if a.lib.Has(key) {
		return nil, fmt.Errorf("storing section %q: %w: %s", header, ErrDuplicateKey, key)
	}
	if header == "" && body == "" {
		return nil, nil
	}

	z := &Zettel{
		Key:    key,
		Parent: parent,
		Title:  Clean(header, true),
		Body:   body,
		Kind:   KindSection,
	}
	if err := a.lib.Add(z); err != nil {
		return nil, err
	}
	return z, nil
}

// Begin closes the open record. Notes opened afterwards are parented to parent.
func (a *Assembler) Begin(parent string) {
	a.parent = parent
	a.current = nil
}

// Current returns the open record, or nil.
func (a *Assembler) Current() *Zettel {
	return a.current
}

// Field applies one marker to the open record. An index marker opens a new
// record. Errors are not fatal: the caller reports them and moves on.
func (a *Assembler) Field(marker, content string) error {
	if marker == "" {
		if content != "" && a.current == nil {
			return fmt.Errorf("%w: text %q outside any record", ErrNoOpenRecord, content)
		}
		return nil
	}

	field := ParseField(marker)
	if field == FieldIndex {
		return a.open(content)
	}
	if a.current == nil {
		return fmt.Errorf("%w: field %s %q", ErrNoOpenRecord, marker, content)
	}
	return a.apply(a.current, field, marker, content)
}

func (a *Assembler) open(content string) error {
	key := content
	if content == "" || utf8.RuneCountInString(content) < a.minKeyLen {
		key = a.keys.Next()
	}

	z := NewNote(key, a.parent)
	a.current = z
	if err := a.lib.Add(z); err != nil {
		// Fields that follow land on the detached record.
		return fmt.Errorf("assigning index: %w", err)
	}
	return nil
}

func (a *Assembler) apply(z *Zettel, field Field, marker, content string) error {
	switch field {
	case FieldTitle:
		if a.colonTitles && z.Body == "" && strings.Contains(content, ":") {
			z.Title, z.Body = splitTitle(content)
		} else {
			z.Title = Clean(content, true)
		}

	case FieldBody:
		lower := strings.ToLower(content)
		switch {
		case strings.Contains(lower, "index card"), strings.Contains(lower, "section header"):
			z.Body = Clean(content, true)
			z.Kind = KindSection
		case !strings.Contains(content, ":"):
			z.Body = Clean(content, true)
		case z.Title == "":
			z.Title, z.Body = splitTitle(content)
		default:
			// Title set before a colon body: the body is dropped.
			return fmt.Errorf("%w: %s %q on record %s titled %q",
				ErrUnknownField, marker, content, z.Key, z.Title)
		}

	case FieldReference:
		z.Reference = content

	case FieldKeyword:
		z.Keyword = content

	case FieldParent:
		if content != "" {
			z.Parent = content
		}

	default:
		return fmt.Errorf("%w: %s %q", ErrUnknownField, marker, content)
	}
	return nil
}

// splitTitle cuts "Title: body" at the first colon.
func splitTitle(content string) (title, body string) {
	title, body, _ = strings.Cut(content, ":")
	return Clean(title, true), Clean(body, true)
}
