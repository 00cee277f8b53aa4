package core

import (
	"iter"
	"regexp"
	"unicode/utf8"
)

var (
	// A short bare line (word characters, spaces, commas) followed by a blank line.
	sectionPattern = regexp.MustCompile(`\n[\p{L}\p{N}_ ,]{2,100}\n\n`)

	// A bracketed tag such as [index] or [title].
	fieldPattern = regexp.MustCompile(`\[[\p{L}\p{N}_]{1,10}\]`)
)

// Segment is one (marker, content) pair produced by a splitter. Both parts are
// cleaned. The marker of the leading segment is always empty.
type Segment struct {
	Marker  string
	Content string
}

// SplitSections cuts text at section headings: short lines preceded by a
// newline and followed by a blank line. The header of each segment is the
// heading that opened it.
func SplitSections(text string) iter.Seq[Segment] {
	return split(text, sectionPattern)
}

// SplitFields cuts text at bracketed field markers. The marker of each
// segment keeps its brackets, e.g. "[title]".
func SplitFields(text string) iter.Seq[Segment] {
	return split(text, fieldPattern)
}

func split(text string, pattern *regexp.Regexp) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for sp := range scan(text, pattern) {
			seg := Segment{
				Marker:  Clean(text[sp.markerStart:sp.markerEnd], false),
				Content: Clean(text[sp.contentStart:sp.contentEnd], false),
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// span locates one marker and the content that follows it, in byte offsets.
type span struct {
	markerStart, markerEnd   int
	contentStart, contentEnd int
}

// scan walks the matches of pattern in text with two pointers: the end of the
// previous match and the start of the next one. Spans are contiguous and
// cover text from the first byte up to, but excluding, the last character.
// When the final match reaches the end of text nothing is dropped.
func scan(text string, pattern *regexp.Regexp) iter.Seq[span] {
	return func(yield func(span) bool) {
		var markerStart, markerEnd int
		for {
			loc := pattern.FindStringIndex(text[markerEnd:])
			if loc == nil {
				break
			}
			start, end := markerEnd+loc[0], markerEnd+loc[1]
			if !yield(span{markerStart, markerEnd, markerEnd, start}) {
				return
			}
			markerStart, markerEnd = start, end
		}

		_, last := utf8.DecodeLastRuneInString(text)
		tail := max(markerEnd, len(text)-last)
		yield(span{markerStart, markerEnd, markerEnd, tail})
	}
}
