package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/zkconv/pkg/adapters/fs"
)

// options holds the internal configuration of a conversion job.
type options struct {
	logger      *slog.Logger
	now         time.Time
	minKeyLen   int
	diagnostics bool
	prune       bool
	header      bool
	source      string
	target      string
	outputStem  string
	serializers map[string]fs.Serializer
}

// Option defines a functional option for configuring a conversion job.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		prune:       true,
		serializers: make(map[string]fs.Serializer),
	}
}

// WithLogger sets the logger for the job.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock fixes the moment the key generator is seeded with.
// Useful for reproducible keys and file names in tests.
func WithClock(now time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithExplicitKeyMinLen sets the shortest index content kept verbatim as a
// key. Zero keeps the default (10).
func WithExplicitKeyMinLen(n int) Option {
	return func(o *options) {
		o.minKeyLen = n
	}
}

// WithDiagnostics logs input previews and the job state at debug level.
func WithDiagnostics(enabled bool) Option {
	return func(o *options) {
		o.diagnostics = enabled
	}
}

// WithPruneEmpty drops records without title and body before export.
// Enabled by default.
func WithPruneEmpty(enabled bool) Option {
	return func(o *options) {
		o.prune = enabled
	}
}

// WithHeader writes a header row in exported tables.
func WithHeader(enabled bool) Option {
	return func(o *options) {
		o.header = enabled
	}
}

// WithSource requires the input to carry ext (".txt" or ".csv"). A file with
// another extension is refused with core.ErrWrongExtension.
func WithSource(ext string) Option {
	return func(o *options) {
		o.source = ext
	}
}

// WithTarget sets the export extension (".txt" or ".csv").
// By default a text input is exported as a table and a table as text.
func WithTarget(ext string) Option {
	return func(o *options) {
		o.target = ext
	}
}

// WithOutputStem sets the path the export name is derived from.
// Defaults to the input path without its extension.
func WithOutputStem(stem string) Option {
	return func(o *options) {
		o.outputStem = stem
	}
}

// WithSerializer registers a serializer for an extension, replacing the
// default one if any.
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}
