package core

import "strings"

// Field is the canonical name of a marker.
type Field int

const (
	FieldUnknown Field = iota
	FieldIndex
	FieldTitle
	FieldBody
	FieldReference
	FieldKeyword
	FieldParent
)

var fieldNames = map[Field]string{
	FieldUnknown:   "unknown",
	FieldIndex:     "index",
	FieldTitle:     "title",
	FieldBody:      "zettel",
	FieldReference: "reference",
	FieldKeyword:   "keyword",
	FieldParent:    "parent",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fieldNames[FieldUnknown]
}

// ParseField maps a marker such as "[Title]" or a table column name to its
// Field. Matching is by case-insensitive containment and the order below
// decides between overlapping names.
func ParseField(marker string) Field {
	name := strings.ToLower(strings.Trim(strings.TrimSpace(marker), "[]"))
	switch {
	case name == "":
		return FieldUnknown
	case strings.Contains(name, "index"), name == "key", name == "id":
		return FieldIndex
	case strings.Contains(name, "title"):
		return FieldTitle
	case strings.Contains(name, "zettel"), strings.Contains(name, "body"), strings.Contains(name, "note"):
		return FieldBody
	case strings.Contains(name, "reference"):
		return FieldReference
	case strings.Contains(name, "keyword"):
		return FieldKeyword
	case strings.Contains(name, "parent"):
		return FieldParent
	}
	return FieldUnknown
}
