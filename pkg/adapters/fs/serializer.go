package fs

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/zkconv/pkg/core"
)

// Serializer defines how to read and write a specific file format.
type Serializer interface {
	// Parse reads an archive from r into a Library built by c.
	Parse(r io.Reader, c *core.Converter) (*core.Library, error)
	// Serialize renders lib in the file format.
	Serialize(lib *core.Library, c *core.Converter) ([]byte, error)
}

// DefaultSerializers returns the serializers for the text and table forms.
func DefaultSerializers(header bool) map[string]Serializer {
	return map[string]Serializer{
		".txt": NewTextSerializer(),
		".csv": NewCSVSerializer(header),
	}
}

// --- Text Serializer ---

// TextSerializer reads free text with headings and bracketed markers and
// writes one block per record.
type TextSerializer struct{}

// NewTextSerializer creates a new text serializer.
func NewTextSerializer() *TextSerializer {
	return &TextSerializer{}
}

func (s *TextSerializer) Parse(r io.Reader, c *core.Converter) (*core.Library, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return c.ImportText(string(data)), nil
}

func (s *TextSerializer) Serialize(lib *core.Library, c *core.Converter) ([]byte, error) {
	return []byte(c.ExportText(lib)), nil
}

// --- CSV Serializer ---

// CSVSerializer reads comma separated rows under a header row and writes
// semicolon separated rows in core.TableColumns order.
type CSVSerializer struct {
	// ReadComma separates fields of parsed tables.
	ReadComma rune
	// WriteComma separates fields of written tables.
	WriteComma rune
	// Header writes core.TableColumns as the first row.
	Header bool
}

// NewCSVSerializer creates a CSV serializer reading ',' and writing ';'.
func NewCSVSerializer(header bool) *CSVSerializer {
	return &CSVSerializer{ReadComma: ',', WriteComma: core.Delimiter, Header: header}
}

func (s *CSVSerializer) Parse(r io.Reader, c *core.Converter) (*core.Library, error) {
	reader := csv.NewReader(r)
	reader.Comma = s.ReadComma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return core.NewLibrary(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}

	var rows []core.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row %d: %w", len(rows)+1, err)
		}

		row := make(core.Row, 0, len(headers))
		for i, h := range headers {
			if i >= len(record) {
				break
			}
			row = append(row, core.Cell{Name: strings.TrimSpace(h), Content: record[i]})
		}
		rows = append(rows, row)
	}

	return c.ImportTable(rows), nil
}

func (s *CSVSerializer) Serialize(lib *core.Library, c *core.Converter) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = s.WriteComma

	if s.Header {
		if err := w.Write(core.TableColumns); err != nil {
			return nil, err
		}
	}
	if err := w.WriteAll(c.ExportTable(lib)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
