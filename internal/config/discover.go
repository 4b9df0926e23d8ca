package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// shouldSkipDirectory reports hidden directories and common build and
// dependency directories.
func shouldSkipDirectory(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return slices.Contains([]string{"node_modules", "dist", "build"}, name)
}

// matchesAnyPattern reports whether relPath matches one of patterns.
func matchesAnyPattern(relPath string, patterns []string) bool {
	// doublestar.Match expects forward slashes
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
	}
	return false
}

// Discover walks root and returns the stylesheets matching Include and
// not matching Exclude, in walk order.
func (c *Config) Discover(root string) ([]string, error) {
	for _, pattern := range append(slices.Clone(c.Include), c.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, &PatternError{Pattern: pattern}
		}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped
		}
		if d.IsDir() {
			if path != root && shouldSkipDirectory(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if matchesAnyPattern(rel, c.Include) && !matchesAnyPattern(rel, c.Exclude) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// PatternError reports a malformed glob.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q", e.Pattern)
}
