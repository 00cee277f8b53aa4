package platform

import (
	"github.com/aretw0/introspection"
)

// JobState exposes the state of the converter and the archive of a job.
type JobState struct {
	Converter any `json:"converter"`
	Archive   any `json:"archive"`
}

// State implements introspection.Introspectable.
func (j *Job) State() any {
	return JobState{
		Converter: j.converter.State(),
		Archive:   j.archive.State(),
	}
}

// ComponentType implements introspection.Component.
func (j *Job) ComponentType() string {
	return "job"
}

var _ introspection.Introspectable = (*Job)(nil)
var _ introspection.Component = (*Job)(nil)
