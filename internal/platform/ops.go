package platform

import (
	"fmt"
	"strings"

	"github.com/aretw0/zkconv/pkg/adapters/fs"
	"github.com/aretw0/zkconv/pkg/core"
)

// Result summarises a conversion.
type Result struct {
	Input   string
	Output  string
	Records int
	Pruned  int
	Issues  []error
}

// Load resolves input to one file and imports it according to its extension.
// Empty records are pruned unless disabled.
func (j *Job) Load(input string) (string, *core.Library, int, error) {
	path, err := fs.Resolve(input)
	if err != nil {
		return "", nil, 0, err
	}

	var lib *core.Library
	if j.opts.source != "" {
		lib, err = j.archive.Read(path, NormalizeExt(j.opts.source), j.converter)
	} else {
		lib, err = j.archive.Open(path, j.converter)
	}
	if err != nil {
		return path, lib, 0, err
	}

	pruned := 0
	if j.opts.prune {
		before := lib.Len()
		j.converter.PruneEmpty(lib)
		pruned = before - lib.Len()
	}
	return path, lib, pruned, nil
}

// Convert imports input and exports it in the target format next to it.
// An unsupported target is refused before the input is read.
func (j *Job) Convert(input string) (Result, error) {
	if j.opts.target != "" && !j.archive.Supports(NormalizeExt(j.opts.target)) {
		return Result{Input: input}, fmt.Errorf("%w: no serializer for target %q", core.ErrWrongExtension, j.opts.target)
	}

	path, lib, pruned, err := j.Load(input)
	if err != nil {
		return Result{Input: path}, err
	}

	stem, ext := fs.SplitPath(path)
	target := j.opts.target
	if target == "" {
		target = Opposite(ext)
	}
	target = NormalizeExt(target)
	if j.opts.outputStem != "" {
		stem = j.opts.outputStem
	}

	out, err := j.archive.Write(stem, target, lib, j.converter)
	if err != nil {
		return Result{Input: path}, fmt.Errorf("failed to export %s: %w", path, err)
	}

	res := Result{
		Input:   path,
		Output:  out,
		Records: lib.Len(),
		Pruned:  pruned,
		Issues:  j.converter.Issues(),
	}

	j.logger.Info("converted", "input", path, "output", out, "records", res.Records, "pruned", pruned, "issues", len(res.Issues))
	if j.opts.diagnostics {
		j.logger.Debug("job state", "state", j.State())
	}
	return res, nil
}

// Opposite returns the export extension paired with an input extension.
func Opposite(ext string) string {
	switch NormalizeExt(ext) {
	case ".txt":
		return ".csv"
	case ".csv":
		return ".txt"
	}
	return ext
}

// NormalizeExt accepts "csv", ".csv" or ".CSV" and returns ".csv".
func NormalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.ToLower(ext)
}
