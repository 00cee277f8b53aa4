package fs_test

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/zkconv/pkg/adapters/fs"
	"github.com/aretw0/zkconv/pkg/core"
)

func newConverter() *core.Converter {
	return core.NewConverter(core.Config{
		Now:    time.Date(2020, 8, 17, 0, 0, 0, 0, time.UTC),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestCSVSerializer_Parse(t *testing.T) {
	input := "\ufeffIndex,Title,Zettel,Reference,Keyword\n" +
		"43900.000001,Focused mode,\"attention; on one thing\",\"Oakley, 2014\",modes\n" +
		",,chunking: compact units\n"

	c := newConverter()
	lib, err := fs.NewCSVSerializer(false).Parse(strings.NewReader(input), c)
	require.NoError(t, err)
	require.Equal(t, 2, lib.Len())

	first, ok := lib.Get("43900.000001")
	require.True(t, ok)
	assert.Equal(t, "Focused mode", first.Title)
	assert.Equal(t, "Attention, on one thing", first.Body)
	assert.Equal(t, "Oakley, 2014", first.Reference)
	assert.Equal(t, "modes", first.Keyword)

	second, _ := lib.Get(lib.Keys()[1])
	assert.Equal(t, "Chunking", second.Title)
	assert.Equal(t, "Compact units", second.Body)
}

func TestCSVSerializer_ParseEmpty(t *testing.T) {
	lib, err := fs.NewCSVSerializer(false).Parse(strings.NewReader(""), newConverter())
	require.NoError(t, err)
	assert.Equal(t, 0, lib.Len())
}

func TestCSVSerializer_ParseBareQuote(t *testing.T) {
	input := "index,title,zettel\n43900.000001,Quotes,she said \"hi\" twice\n43900.000002,Next,still read\n"

	lib, err := fs.NewCSVSerializer(false).Parse(strings.NewReader(input), newConverter())
	require.NoError(t, err)
	require.Equal(t, 2, lib.Len())

	first, _ := lib.Get("43900.000001")
	assert.Equal(t, `She said "hi" twice`, first.Body)
	second, _ := lib.Get("43900.000002")
	assert.Equal(t, "Still read", second.Body)
}

func TestCSVSerializer_ParseReadError(t *testing.T) {
	_, err := fs.NewCSVSerializer(false).Parse(iotest.ErrReader(errors.New("disk gone")), newConverter())
	assert.ErrorContains(t, err, "disk gone")
}

func TestCSVSerializer_Serialize(t *testing.T) {
	lib := core.NewLibrary()
	require.NoError(t, lib.Add(&core.Zettel{Key: "1.000000", Parent: "0.000000", Title: "Part", Body: core.IndexCardLabel, Kind: core.KindSection}))
	require.NoError(t, lib.Add(&core.Zettel{Key: "1.000020", Parent: "1.000000", Title: "T", Body: "B", Reference: "a;b", Kind: core.KindNote}))

	t.Run("Without Header", func(t *testing.T) {
		data, err := fs.NewCSVSerializer(false).Serialize(lib, newConverter())
		require.NoError(t, err)
		assert.Equal(t, "1.000000;0.000000;Part;Index card;;\n1.000020;1.000000;T;B;\"a;b\";\n", string(data))
	})

	t.Run("With Header", func(t *testing.T) {
		data, err := fs.NewCSVSerializer(true).Serialize(lib, newConverter())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "key;parent;title;body;reference;keyword\n"))
	})
}

func TestCSVSerializer_RoundTripWithHeader(t *testing.T) {
	c := newConverter()
	lib := c.ImportTable([]core.Row{{
		{Name: "index", Content: "43900.000001"},
		{Name: "parent", Content: "43900.000000"},
		{Name: "title", Content: "Focused mode"},
		{Name: "zettel", Content: "Attention on one thing"},
		{Name: "reference", Content: "Oakley, 2014"},
		{Name: "keyword", Content: "modes"},
	}})

	writer := fs.NewCSVSerializer(true)
	data, err := writer.Serialize(lib, c)
	require.NoError(t, err)

	reader := &fs.CSVSerializer{ReadComma: ';', WriteComma: ';'}
	back, err := reader.Parse(strings.NewReader(string(data)), newConverter())
	require.NoError(t, err)

	z, ok := back.Get("43900.000001")
	require.True(t, ok)
	assert.Equal(t, core.Zettel{
		Key:       "43900.000001",
		Parent:    "43900.000000",
		Title:     "Focused mode",
		Body:      "Attention on one thing",
		Reference: "Oakley, 2014",
		Keyword:   "modes",
		Kind:      core.KindNote,
	}, *z)
}

func TestTextSerializer_CRLF(t *testing.T) {
	input := "\r\nPart One\r\n\r\n[index] 43900.000001 [zettel] body\r\n"

	lib, err := fs.NewTextSerializer().Parse(strings.NewReader(input), newConverter())
	require.NoError(t, err)
	require.Equal(t, 2, lib.Len())

	section, _ := lib.Get(lib.Keys()[0])
	assert.Equal(t, "Part One", section.Title)
	note, _ := lib.Get("43900.000001")
	assert.Equal(t, section.Key, note.Parent)
}

func TestTextSerializer(t *testing.T) {
	c := newConverter()
	s := fs.NewTextSerializer()

	lib, err := s.Parse(strings.NewReader("\nChunking\n\n[index] 43900.000001 [zettel] compact units\n"), c)
	require.NoError(t, err)
	require.Equal(t, 2, lib.Len())

	data, err := s.Serialize(lib, c)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[title] Chunking\n\n")
	assert.Contains(t, string(data), "[index] 43900.000001 [parent] ")
	assert.Contains(t, string(data), "[note] Compact units\n")
}
