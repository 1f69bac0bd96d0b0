package smartctx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalker_DeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.tsx", "")
	writeFile(t, root, "a.tsx", "")
	writeFile(t, root, "sub/c.tsx", "")

	var visited []string
	walker := NewWalker(root, DefaultExcludedDirs, []string{".tsx"})
	walker.Walk(func(path string) bool {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		visited = append(visited, rel)
		return true
	})

	assert.Equal(t, []string{"a.tsx", "b.tsx", filepath.Join("sub", "c.tsx")}, visited)
}

func TestWalker_ExcludesDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/app.tsx", "")
	writeFile(t, root, "node_modules/lib/index.js", "")
	writeFile(t, root, ".git/hooks/pre-commit.js", "")
	writeFile(t, root, "dist/bundle.js", "")

	var visited []string
	walker := NewWalker(root, DefaultExcludedDirs, []string{".tsx", ".js"})
	walker.Walk(func(path string) bool {
		visited = append(visited, path)
		return true
	})

	require.Len(t, visited, 1)
	assert.Equal(t, filepath.Join(root, "src/app.tsx"), visited[0])
}

func TestWalker_ExtensionFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.tsx", "")
	writeFile(t, root, "readme.md", "")
	writeFile(t, root, "style.css", "")

	var visited []string
	walker := NewWalker(root, nil, []string{".tsx"})
	walker.Walk(func(path string) bool {
		visited = append(visited, path)
		return true
	})

	require.Len(t, visited, 1)
	assert.Equal(t, filepath.Join(root, "app.tsx"), visited[0])
}

func TestWalker_EarlyStop(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.tsx", "")
	writeFile(t, root, "b.tsx", "")
	writeFile(t, root, "c.tsx", "")

	var visited []string
	walker := NewWalker(root, nil, []string{".tsx"})
	walker.Walk(func(path string) bool {
		visited = append(visited, path)
		return len(visited) < 2
	})

	assert.Len(t, visited, 2)
}

func TestWalker_Restartable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.tsx", "")
	writeFile(t, root, "b.tsx", "")

	walker := NewWalker(root, nil, []string{".tsx"})

	count := func() int {
		n := 0
		walker.Walk(func(string) bool { n++; return true })
		return n
	}

	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())
}

func TestWalker_UnreadableRoot(t *testing.T) {
	walker := NewWalker("/nonexistent/dir", nil, nil)
	called := false
	walker.Walk(func(string) bool { called = true; return true })
	assert.False(t, called)
}
