package platform

import (
	"log/slog"
	"strings"

	"github.com/aretw0/zkconv/pkg/adapters/fs"
	"github.com/aretw0/zkconv/pkg/core"
)

// Job wires one Converter to the filesystem archive for a single pass.
type Job struct {
	converter *core.Converter
	archive   *fs.Archive
	opts      *options
	logger    *slog.Logger
}

// New creates a conversion job.
//
//	job := platform.New(platform.WithPruneEmpty(true))
//	res, err := job.Convert("notes.txt")
func New(opts ...Option) *Job {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	serializers := fs.DefaultSerializers(o.header)
	for ext, s := range o.serializers {
		serializers[strings.ToLower(ext)] = s
	}

	return &Job{
		converter: core.NewConverter(core.Config{
			Now:               o.now,
			ExplicitKeyMinLen: o.minKeyLen,
			Diagnostics:       o.diagnostics,
			Logger:            logger,
		}),
		archive: fs.NewArchive(fs.Config{
			Serializers: serializers,
			Logger:      logger,
		}),
		opts:   o,
		logger: logger,
	}
}

// Converter returns the converter owned by the job.
func (j *Job) Converter() *core.Converter {
	return j.converter
}

// Archive returns the filesystem adapter used by the job.
func (j *Job) Archive() *fs.Archive {
	return j.archive
}
