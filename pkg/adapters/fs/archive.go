package fs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/zkconv/pkg/core"
)

// Config holds the configuration for the filesystem archive adapter.
type Config struct {
	// Serializers maps lower-case extensions (".txt") to their format.
	// Nil means DefaultSerializers(Header).
	Serializers map[string]Serializer
	// Header writes a header row in exported tables.
	Header bool
	// Perm is the mode of exported files. Zero means 0644.
	Perm   os.FileMode
	Logger *slog.Logger
}

// Archive reads and writes note archives on the local filesystem.
// Every call opens and releases its file before returning.
type Archive struct {
	serializers map[string]Serializer
	perm        os.FileMode
	logger      *slog.Logger

	lastRead    string
	lastWritten string
}

// NewArchive creates a filesystem Archive.
func NewArchive(cfg Config) *Archive {
	if cfg.Serializers == nil {
		cfg.Serializers = DefaultSerializers(cfg.Header)
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0o644
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Archive{
		serializers: cfg.Serializers,
		perm:        cfg.Perm,
		logger:      cfg.Logger,
	}
}

// SplitPath separates path into its stem and lower-case extension.
func SplitPath(path string) (stem, ext string) {
	ext = filepath.Ext(path)
	return strings.TrimSuffix(path, ext), strings.ToLower(ext)
}

// OutputPath names an export: the stem, an underscore, the stamp and ext.
func OutputPath(stem, stamp, ext string) string {
	return stem + "_" + stamp + ext
}

// Supports reports whether ext has a serializer.
func (a *Archive) Supports(ext string) bool {
	_, ok := a.serializers[strings.ToLower(ext)]
	return ok
}

// Read parses path, which must carry extension ext. On a wrong extension an
// empty Library is returned with an error wrapping core.ErrWrongExtension.
func (a *Archive) Read(path, ext string, c *core.Converter) (*core.Library, error) {
	_, got := SplitPath(path)
	if got != strings.ToLower(ext) {
		return core.NewLibrary(), fmt.Errorf("%w: importing %s expects %s", core.ErrWrongExtension, path, ext)
	}
	return a.Open(path, c)
}

// Open parses path with the serializer registered for its extension.
func (a *Archive) Open(path string, c *core.Converter) (*core.Library, error) {
	_, ext := SplitPath(path)
	s, ok := a.serializers[ext]
	if !ok {
		return core.NewLibrary(), fmt.Errorf("%w: %q", core.ErrWrongExtension, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lib, err := s.Parse(f, c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	a.lastRead = path
	a.logger.Debug("archive read", "path", path, "records", lib.Len())
	return lib, nil
}

// Write exports lib next to stem as "<stem>_<root key><ext>" and returns the
// path written.
func (a *Archive) Write(stem, ext string, lib *core.Library, c *core.Converter) (string, error) {
	ext = strings.ToLower(ext)
	s, ok := a.serializers[ext]
	if !ok {
		return "", fmt.Errorf("%w: exporting to %q", core.ErrWrongExtension, ext)
	}

	data, err := s.Serialize(lib, c)
	if err != nil {
		return "", fmt.Errorf("failed to serialize %s: %w", ext, err)
	}

	out := OutputPath(stem, c.Root(), ext)
	if err := writeFileAtomic(out, data, a.perm); err != nil {
		return "", err
	}

	a.lastWritten = out
	a.logger.Debug("archive written", "path", out, "records", lib.Len(), "bytes", len(data))
	return out, nil
}
