package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates a temporary git repository for testing
func setupTestRepo(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	cmd := exec.Command("git", "init")
	cmd.Dir = tmpDir
	require.NoError(t, cmd.Run())

	cmd = exec.Command("git", "config", "user.email", "test@example.com")
	cmd.Dir = tmpDir
	require.NoError(t, cmd.Run())

	cmd = exec.Command("git", "config", "user.name", "Test User")
	cmd.Dir = tmpDir
	require.NoError(t, cmd.Run())

	return tmpDir
}

// createAndStageFile creates a file and stages it
func createAndStageFile(t *testing.T, repoDir, filename, content string) {
	t.Helper()

	filePath := filepath.Join(repoDir, filename)
	err := os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(t, err)

	cmd := exec.Command("git", "add", filename)
	cmd.Dir = repoDir
	require.NoError(t, cmd.Run())
}

func TestNewExecutor(t *testing.T) {
	executor := NewExecutor("/tmp/test")
	assert.NotNil(t, executor)
}

func TestExecutor_IsRepository(t *testing.T) {
	ctx := context.Background()

	repoDir := setupTestRepo(t)
	assert.True(t, NewExecutor(repoDir).IsRepository(ctx))

	plainDir := t.TempDir()
	assert.False(t, NewExecutor(plainDir).IsRepository(ctx))
}

func TestExecutor_DiffCached(t *testing.T) {
	repoDir := setupTestRepo(t)
	executor := NewExecutor(repoDir)
	ctx := context.Background()

	t.Run("empty staging area", func(t *testing.T) {
		diff, err := executor.DiffCached(ctx)
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("staged file appears in diff", func(t *testing.T) {
		createAndStageFile(t, repoDir, "app.js", "console.log('hi');\n")

		diff, err := executor.DiffCached(ctx)
		require.NoError(t, err)
		assert.Contains(t, diff, "app.js")
		assert.Contains(t, diff, "console.log")
	})
}

func TestExecutor_StageAll(t *testing.T) {
	repoDir := setupTestRepo(t)
	executor := NewExecutor(repoDir)
	ctx := context.Background()

	err := os.WriteFile(filepath.Join(repoDir, "new.js"), []byte("x\n"), 0644)
	require.NoError(t, err)

	require.NoError(t, executor.StageAll(ctx))

	diff, err := executor.DiffCached(ctx)
	require.NoError(t, err)
	assert.Contains(t, diff, "new.js")
}

func TestExecutor_CurrentBranch(t *testing.T) {
	repoDir := setupTestRepo(t)
	executor := NewExecutor(repoDir)
	ctx := context.Background()

	createAndStageFile(t, repoDir, "a.txt", "a\n")
	require.NoError(t, executor.Commit(ctx, "initial commit", "", false))

	cmd := exec.Command("git", "checkout", "-b", "feature/AB-123-login")
	cmd.Dir = repoDir
	require.NoError(t, cmd.Run())

	branch, err := executor.CurrentBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "feature/AB-123-login", branch)
}

func TestExecutor_Commit(t *testing.T) {
	repoDir := setupTestRepo(t)
	executor := NewExecutor(repoDir)
	ctx := context.Background()

	t.Run("message and description become subject and body", func(t *testing.T) {
		createAndStageFile(t, repoDir, "b.txt", "b\n")
		require.NoError(t, executor.Commit(ctx, "feat: add b", "Adds the b file for testing.", false))

		cmd := exec.Command("git", "log", "-1", "--format=%B")
		cmd.Dir = repoDir
		out, err := cmd.Output()
		require.NoError(t, err)

		body := string(out)
		assert.True(t, strings.HasPrefix(body, "feat: add b\n"))
		assert.Contains(t, body, "Adds the b file for testing.")
	})

	t.Run("nothing staged fails", func(t *testing.T) {
		err := executor.Commit(ctx, "empty", "", false)
		require.Error(t, err)
	})
}
