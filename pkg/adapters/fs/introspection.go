package fs

import (
	"slices"

	"github.com/aretw0/introspection"
)

// ArchiveState exposes internal state for observability.
type ArchiveState struct {
	Serializers []string `json:"serializers"`
	LastRead    string   `json:"last_read,omitempty"`
	LastWritten string   `json:"last_written,omitempty"`
}

// State implements introspection.Introspectable.
func (a *Archive) State() any {
	serializers := make([]string, 0, len(a.serializers))
	for ext := range a.serializers {
		serializers = append(serializers, ext)
	}
	slices.Sort(serializers)

	return ArchiveState{
		Serializers: serializers,
		LastRead:    a.lastRead,
		LastWritten: a.lastWritten,
	}
}

// ComponentType implements introspection.Component.
func (a *Archive) ComponentType() string {
	return "archive"
}

var _ introspection.Introspectable = (*Archive)(nil)
var _ introspection.Component = (*Archive)(nil)
