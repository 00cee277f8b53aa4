package fs

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrNoMatch is returned when an input pattern matches no file.
	ErrNoMatch = errors.New("no file matches")
	// ErrAmbiguousMatch is returned when an input pattern matches several files.
	ErrAmbiguousMatch = errors.New("pattern matches more than one file")
)

// Resolve turns an input argument into the path of exactly one regular file.
// The argument may be a plain path or a doublestar glob such as
// "notes/**/zettelkasten*.txt".
func Resolve(pattern string) (string, error) {
	if info, err := os.Stat(pattern); err == nil {
		if info.IsDir() {
			return "", fmt.Errorf("%s is a directory", pattern)
		}
		return pattern, nil
	}

	if !doublestar.ValidatePathPattern(pattern) {
		return "", fmt.Errorf("invalid pattern %q", pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return "", fmt.Errorf("failed to glob %q: %w", pattern, err)
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoMatch, pattern)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %s (%d matches)", ErrAmbiguousMatch, pattern, len(matches))
	}
}
