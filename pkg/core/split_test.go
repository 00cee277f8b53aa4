package core

import (
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// joinSpans concatenates the raw marker and content text of every span.
func joinSpans(text string, spans []span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(text[sp.markerStart:sp.markerEnd])
		b.WriteString(text[sp.contentStart:sp.contentEnd])
	}
	return b.String()
}

func TestScan_ReconstructsInputMinusLastCharacter(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"no headings at all\n",
		"\nHeading One\n\nfirst body\n\nHeading Two\n\nsecond body\n",
		"preamble\nHeading, With Comma\n\n[index] 1 [title] t\n",
		"\nÜberschrift\n\ncontenu é",
		"[index] 1 [title] a [zettel] b [keyword] c.",
	}
	patterns := map[string]*regexp.Regexp{
		"sections": sectionPattern,
		"fields":   fieldPattern,
	}

	for _, input := range inputs {
		for name, re := range patterns {
			spans := slices.Collect(scan(input, re))
			require.NotEmpty(t, spans, "%s: %q", name, input)

			// Off by one on purpose: the tail never includes the final character.
			want := input
			if r := []rune(input); len(r) > 0 {
				want = string(r[:len(r)-1])
			}
			assert.Equal(t, want, joinSpans(input, spans), "%s: %q", name, input)
		}
	}
}

func TestScan_FinalBoundaryAtEndKeepsEverything(t *testing.T) {
	input := "body\nTrailing Heading\n\n"
	spans := slices.Collect(scan(input, sectionPattern))

	require.Len(t, spans, 2)
	assert.Equal(t, input, joinSpans(input, spans))
}

func TestSplitSections(t *testing.T) {
	input := "intro text\nFirst Part\n\nalpha\nbeta.\n\nSecond Part\n\ngamma;delta\n"

	got := slices.Collect(SplitSections(input))

	assert.Equal(t, []Segment{
		{Marker: "", Content: "intro text"},
		{Marker: "First Part", Content: "alpha beta."},
		{Marker: "Second Part", Content: "gamma,delta"},
	}, got)
}

func TestSplitSections_NoBoundary(t *testing.T) {
	got := slices.Collect(SplitSections("just one\nblock of text!"))

	assert.Equal(t, []Segment{{Marker: "", Content: "just one block of text"}}, got)
}

func TestSplitSections_HeadingRules(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		headers []string
	}{
		{name: "Single Letter Too Short", input: "a\nX\n\nbody\n", headers: []string{""}},
		{name: "Punctuation Not A Heading", input: "a\nWhat?\n\nbody\n", headers: []string{""}},
		{name: "Needs Blank Line", input: "a\nHeading\nbody\n", headers: []string{""}},
		{name: "Commas Allowed", input: "a\nOne, two\n\nbody\n", headers: []string{"", "One, two"}},
		{name: "Digits Allowed", input: "a\nPart 2\n\nbody\n", headers: []string{"", "Part 2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers []string
			for seg := range SplitSections(tt.input) {
				headers = append(headers, seg.Marker)
			}
			assert.Equal(t, tt.headers, headers)
		})
	}
}

func TestSplitFields(t *testing.T) {
	input := "stray [index] 42 [title] A title\n[zettel] Some  body [reference] Book, p. 3 [keyword] k1\n"

	got := slices.Collect(SplitFields(input))

	assert.Equal(t, []Segment{
		{Marker: "", Content: "stray"},
		{Marker: "[index]", Content: "42"},
		{Marker: "[title]", Content: "A title"},
		{Marker: "[zettel]", Content: "Some body"},
		{Marker: "[reference]", Content: "Book, p. 3"},
		{Marker: "[keyword]", Content: "k1"},
	}, got)
}

func TestSplitFields_IgnoresLongOrSpacedBrackets(t *testing.T) {
	input := "[index] 1 [not a marker] [averyveryverylongtag] x\n"

	got := slices.Collect(SplitFields(input))

	require.Len(t, got, 2)
	assert.Equal(t, "[index]", got[1].Marker)
	assert.Equal(t, "1 [not a marker] [averyveryverylongtag] x", got[1].Content)
}

func TestSplitFields_StopsEarly(t *testing.T) {
	n := 0
	for range SplitFields("[a] 1 [b] 2 [c] 3\n") {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
