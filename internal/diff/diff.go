// Package diff parses unified diff text into changed file lists and
// filters dependency-lock files out of both lists and diff bodies.
package diff

import (
	"path/filepath"
	"strings"
)

// Lock files are matched by base name. The npm family is matched
// case-insensitively since those files show up with odd casing on
// case-insensitive filesystems.
var lockFileNames = map[string]bool{
	"package-lock.json":   true,
	"npm-shrinkwrap.json": true,
	"yarn.lock":           true,
	"pnpm-lock.yaml":      true,
	"bun.lockb":           true,
	"composer.lock":       true,
	"gemfile.lock":        true,
	"cargo.lock":          true,
	"go.sum":              true,
	"poetry.lock":         true,
	"pipfile.lock":        true,
}

// IsLockFile reports whether path refers to a dependency-lock file
func IsLockFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	return lockFileNames[base]
}

// ChangedFiles extracts the post-change paths from a unified diff.
// Lock files are excluded; malformed header lines are skipped.
func ChangedFiles(diffText string) []string {
	var files []string
	for _, line := range strings.Split(diffText, "\n") {
		if !strings.HasPrefix(line, "diff --git ") {
			continue
		}
		path, ok := headerPath(line)
		if !ok {
			continue
		}
		if IsLockFile(path) {
			continue
		}
		files = append(files, path)
	}
	return files
}

// StripLockFiles re-emits the diff with entire per-file sections removed
// when their path is a lock file. Section boundaries and line ordering
// are preserved exactly.
func StripLockFiles(diffText string) string {
	lines := strings.Split(diffText, "\n")
	var kept []string
	skipping := false

	for _, line := range lines {
		if strings.HasPrefix(line, "diff --git ") {
			path, ok := headerPath(line)
			skipping = ok && IsLockFile(path)
		}
		if !skipping {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}

// headerPath extracts the b/ path from a "diff --git a/x b/x" header line
func headerPath(line string) (string, bool) {
	rest := strings.TrimPrefix(line, "diff --git ")
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return "", false
	}
	bPath := fields[len(fields)-1]
	if !strings.HasPrefix(bPath, "b/") {
		return "", false
	}
	path := strings.TrimPrefix(bPath, "b/")
	if path == "" {
		return "", false
	}
	return path, true
}
