package pathlib

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joshyorko/transitive-sbom/common"
)

const (
	globMeta = `*?[{`
)

// IsPattern tells if given path contains glob syntax.
func IsPattern(path string) bool {
	return strings.ContainsAny(path, globMeta)
}

// Glob resolves a literal path or a glob pattern ("**" included) into sorted
// absolute paths of regular files. An existing file is always taken
// literally, even when its name contains glob syntax. Literal paths which
// do not exist resolve to nothing.
func Glob(pattern string) ([]string, error) {
	fullpath, err := Abs(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", pattern, err)
	}
	if IsFile(fullpath) {
		return []string{fullpath}, nil
	}
	if !IsPattern(pattern) {
		common.Debug("No file at %q.", fullpath)
		return []string{}, nil
	}
	rooted := filepath.FromSlash(pattern)
	if !filepath.IsAbs(rooted) {
		absolute, err := Abs(rooted)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %q: %w", pattern, err)
		}
		rooted = absolute
	}
	matches, err := doublestar.FilepathGlob(rooted, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
	}
	result := make([]string, 0, len(matches))
	for _, match := range matches {
		fullpath, err := Abs(match)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %q: %w", match, err)
		}
		result = append(result, fullpath)
	}
	sort.Strings(result)
	common.Trace("Pattern %q matched %d files.", pattern, len(result))
	return result, nil
}
