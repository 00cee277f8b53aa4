package core

import (
	"github.com/aretw0/introspection"
)

// ConverterState exposes the outcome of the last import for diagnostics.
type ConverterState struct {
	Root     string   `json:"root"`
	Records  int      `json:"records"`
	Sections int      `json:"sections"`
	Notes    int      `json:"notes"`
	Issues   int      `json:"issues"`
	Orphans  []string `json:"orphans,omitempty"`
}

// State implements introspection.Introspectable.
func (c *Converter) State() any {
	state := ConverterState{
		Root:   c.Root(),
		Issues: len(c.issues),
	}
	if c.last != nil {
		state.Records = c.last.Len()
		state.Sections = c.last.Count(KindSection)
		state.Notes = c.last.Count(KindNote)
		state.Orphans = c.last.Orphans(c.Root())
	}
	return state
}

// ComponentType implements introspection.Component.
func (c *Converter) ComponentType() string {
	return "converter"
}

var _ introspection.Introspectable = (*Converter)(nil)
var _ introspection.Component = (*Converter)(nil)
