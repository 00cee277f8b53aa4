package core

import (
	"log/slog"
	"strings"
	"time"
)

// TableColumns is the column order of exported tables.
var TableColumns = []string{"key", "parent", "title", "body", "reference", "keyword"}

// newlines folds CRLF and lone CR line endings into LF.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Cell is one named value of a table row.
type Cell struct {
	Name    string
	Content string
}

// Row is one table row, cells in column order.
type Row []Cell

// Config configures a Converter.
type Config struct {
	// Now seeds the key generator. Zero means time.Now.
	Now time.Time
	// ExplicitKeyMinLen is the shortest index content kept verbatim as a key.
	// Zero means DefaultExplicitKeyMinLen.
	ExplicitKeyMinLen int
	// Diagnostics logs previews of the text being split.
	Diagnostics bool
	Logger      *slog.Logger
}

// Converter runs one conversion pass between the text and table forms of an
// archive. It owns the key generator of the pass and is not safe for
// concurrent use.
type Converter struct {
	keys      *KeyGenerator
	minKeyLen int
	diag      bool
	logger    *slog.Logger

	issues []error
	last   *Library
}

// NewConverter creates a Converter. The first generated key is reserved as
// the root every section hangs from.
func NewConverter(cfg Config) *Converter {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now().UTC()
	}
	if cfg.ExplicitKeyMinLen <= 0 {
		cfg.ExplicitKeyMinLen = DefaultExplicitKeyMinLen
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	keys := NewKeyGenerator(cfg.Now)
	keys.Next() // the seed is the root key
	return &Converter{
		keys:      keys,
		minKeyLen: cfg.ExplicitKeyMinLen,
		diag:      cfg.Diagnostics,
		logger:    cfg.Logger,
	}
}

// Root returns the key of the synthetic root. It also stamps output files.
func (c *Converter) Root() string {
	return c.keys.Root()
}

// Issues returns the problems reported since the last import started.
func (c *Converter) Issues() []error {
	out := make([]error, len(c.issues))
	copy(out, c.issues)
	return out
}

// ImportText splits text into sections and their notes. Line endings are
// normalised to LF first.
// Every section is stored with an index card body and its notes point to it.
func (c *Converter) ImportText(text string) *Library {
	c.issues = nil
	lib := NewLibrary()
	asm := NewAssembler(lib, c.keys, c.minKeyLen)
	asm.SplitColonTitles(true)
	text = newlines.Replace(text)

	if c.diag {
		c.logger.Debug("importing text", "preview", preview(text, 500))
	}

	for seg := range SplitSections(text) {
		section, err := asm.Section(seg.Marker, seg.Content, c.Root())
		if err != nil {
			c.report(err)
			continue
		}
		if section == nil {
			c.logger.Debug("section omitted", "header", seg.Marker, "body", seg.Content)
			continue
		}
		if c.diag {
			c.logger.Debug("section", "key", section.Key, "title", section.Title, "preview", preview(section.Body, 100))
		}

		body := section.Body
		section.Body = IndexCardLabel

		// The field splitter drops the last character; the newline
		// stripped by the section cleaner is put back for it.
		asm.Begin(section.Key)
		for field := range SplitFields(body + "\n") {
			if err := asm.Field(field.Marker, field.Content); err != nil {
				c.report(err)
			}
		}
	}

	c.last = lib
	return lib
}

// ImportTable stores one record per row. The index cell is applied first; a
// row without one gets a generated key. Records default to the root parent.
func (c *Converter) ImportTable(rows []Row) *Library {
	c.issues = nil
	lib := NewLibrary()
	asm := NewAssembler(lib, c.keys, c.minKeyLen)

	for i, row := range rows {
		asm.Begin(c.Root())

		index := -1
		for j, cell := range row {
			if ParseField(cell.Name) == FieldIndex {
				index = j
				break
			}
		}

		var err error
		if index >= 0 {
			err = asm.Field(row[index].Name, row[index].Content)
		} else {
			err = asm.Field(FieldIndex.String(), "")
		}
		if err != nil {
			c.report(err)
		}

		for j, cell := range row {
			if j == index {
				continue
			}
			if err := asm.Field(cell.Name, cell.Content); err != nil {
				c.report(err)
			}
		}

		if c.diag {
			if z := asm.Current(); z != nil {
				c.logger.Debug("row imported", "row", i+1, "key", z.Key, "title", z.Title)
			}
		}
	}

	c.last = lib
	return lib
}

// ExportText renders every record as a block followed by a blank line.
// Records that cannot be rendered are reported and left out.
func (c *Converter) ExportText(lib *Library) string {
	var out []byte
	for _, z := range lib.All() {
		block, err := z.Render()
		if err != nil {
			c.report(err)
			continue
		}
		out = append(out, block...)
		out = append(out, "\n\n"...)
	}
	return string(out)
}

// ExportTable returns one row per record in TableColumns order.
func (c *Converter) ExportTable(lib *Library) [][]string {
	rows := make([][]string, 0, lib.Len())
	for key, z := range lib.All() {
		rows = append(rows, []string{key, z.Parent, z.Title, z.Body, z.Reference, z.Keyword})
	}
	return rows
}

// PruneEmpty removes records without title and body.
func (c *Converter) PruneEmpty(lib *Library) *Library {
	if n := lib.PruneEmpty(); n > 0 {
		c.logger.Debug("pruned empty records", "count", n)
	}
	return lib
}

func (c *Converter) report(err error) {
	c.issues = append(c.issues, err)
	c.logger.Error("conversion issue", "error", err)
}

func preview(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n])
}
