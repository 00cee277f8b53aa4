package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiter is the column separator of exported tables. Clean never lets it
// through in texts longer than one character.
const Delimiter = ';'

// Clean collapses whitespace runs into single spaces, trims the ends and
// replaces the table delimiter with a comma. When capitalize is set the first
// character is upper-cased. Texts of at most one character are returned as
// they are.
func Clean(text string, capitalize bool) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= 1 {
		return text
	}

	text = strings.ReplaceAll(text, string(Delimiter), ",")
	if !capitalize {
		return text
	}

	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:]
}
