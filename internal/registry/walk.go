package registry

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/klauern/plugindex/internal/util"
)

// Files returns a lazy, depth-first sequence of markdown file paths under
// root. Directory entries are visited in lexical order, symlinked
// directories are followed with cycle detection, and unreadable entries
// are skipped. The sequence is restartable: each iteration re-walks the
// tree from scratch.
func Files(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]bool)
		walk(root, visited, yield)
	}
}

// walk recurses depth-first from path, yielding markdown files. Returns
// false once the consumer stops the iteration.
func walk(path string, visited map[string]bool, yield func(string) bool) bool {
	// Resolve symlinks for cycle detection
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return true // skip paths we can't resolve
	}
	if visited[realPath] {
		return true
	}
	visited[realPath] = true

	info, err := os.Stat(path)
	if err != nil {
		return true // skip paths we can't stat
	}

	if !info.IsDir() {
		if util.IsMarkdown(path) {
			return yield(path)
		}
		return true
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return true // skip directories we can't read
	}

	for _, entry := range entries {
		if !walk(filepath.Join(path, entry.Name()), visited, yield) {
			return false
		}
	}

	return true
}
