package smartctx

import (
	"os"
	"path/filepath"
	"sort"
)

// DefaultExcludedDirs are directory names skipped by the walker.
// Passed as data so callers can widen or narrow the set.
var DefaultExcludedDirs = []string{
	"node_modules",
	".git",
	".hg",
	".svn",
	"dist",
	"build",
	"out",
	"coverage",
	"vendor",
	".next",
	".cache",
}

// Walker produces candidate source file paths under a root directory,
// depth first, with excluded directories pruned. Directory entries are
// sorted so the visit order is deterministic.
type Walker struct {
	root     string
	excluded map[string]bool
	exts     map[string]bool
}

// NewWalker creates a walker rooted at root. excludedDirs are directory
// base names to prune; exts are the file extensions to yield (with dot).
func NewWalker(root string, excludedDirs []string, exts []string) *Walker {
	excluded := make(map[string]bool, len(excludedDirs))
	for _, d := range excludedDirs {
		excluded[d] = true
	}
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}
	return &Walker{root: root, excluded: excluded, exts: extSet}
}

// Walk visits candidate files in deterministic order, calling fn for each.
// fn returning false stops the walk early. Unreadable directories are
// skipped, never fatal.
func (w *Walker) Walk(fn func(path string) bool) {
	w.walkDir(w.root, fn)
}

func (w *Walker) walkDir(dir string, fn func(path string) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return true
	}
	// os.ReadDir sorts by filename already; sort again so the ordering
	// contract does not depend on that implementation detail.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if w.excluded[entry.Name()] {
				continue
			}
			if !w.walkDir(path, fn) {
				return false
			}
			continue
		}
		if len(w.exts) > 0 && !w.exts[filepath.Ext(entry.Name())] {
			continue
		}
		if !fn(path) {
			return false
		}
	}
	return true
}
