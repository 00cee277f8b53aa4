package zkconv

import (
	"log/slog"
	"time"

	"github.com/aretw0/zkconv/internal/platform"
	"github.com/aretw0/zkconv/pkg/adapters/fs"
	"github.com/aretw0/zkconv/pkg/core"
)

// --- Types ---

// Zettel is a public alias for one record of the archive.
type Zettel = core.Zettel

// Library is a public alias for the ordered set of records of one pass.
type Library = core.Library

// Job is a public alias for a single conversion pass.
type Job = platform.Job

// Result is a public alias for the summary of a conversion.
type Result = platform.Result

// --- Configuration ---

// Option defines a functional option for configuring a conversion.
type Option = platform.Option

// WithLogger sets the logger for the conversion.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock fixes the moment keys are generated from.
func WithClock(now time.Time) Option {
	return platform.WithClock(now)
}

// WithExplicitKeyMinLen sets the shortest index content used verbatim as a key.
func WithExplicitKeyMinLen(n int) Option {
	return platform.WithExplicitKeyMinLen(n)
}

// WithDiagnostics logs input previews and the final state at debug level.
func WithDiagnostics(enabled bool) Option {
	return platform.WithDiagnostics(enabled)
}

// WithPruneEmpty drops records without title and body before export.
func WithPruneEmpty(enabled bool) Option {
	return platform.WithPruneEmpty(enabled)
}

// WithHeader writes a header row in exported tables.
func WithHeader(enabled bool) Option {
	return platform.WithHeader(enabled)
}

// WithSource requires the input to carry the given extension.
func WithSource(ext string) Option {
	return platform.WithSource(ext)
}

// WithTarget sets the export extension.
func WithTarget(ext string) Option {
	return platform.WithTarget(ext)
}

// WithOutputStem sets the path the export name is derived from.
func WithOutputStem(stem string) Option {
	return platform.WithOutputStem(stem)
}

// WithSerializer registers a serializer for an extension.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// --- Factory ---

// New creates a conversion job.
func New(opts ...Option) *Job {
	return platform.New(opts...)
}

// --- Operations ---

// Convert imports the file matched by input and exports it in the other
// format next to it.
func Convert(input string, opts ...Option) (Result, error) {
	return platform.New(opts...).Convert(input)
}

// Load imports the file matched by input without exporting it.
func Load(input string, opts ...Option) (*Library, error) {
	_, lib, _, err := platform.New(opts...).Load(input)
	return lib, err
}
