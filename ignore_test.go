package tailship

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")

	result, err := Reconcile(path, []string{"node_modules/", "dist/"})
	require.NoError(t, err)
	assert.Equal(t, ReconcileCreated, result)
	assert.Equal(t, "\nnode_modules/\ndist/\n", readFile(t, path))
}

func TestReconcile_Unchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	content := "# deps\nnode_modules/\ndist/\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := Reconcile(path, []string{"node_modules/", "dist/"})
	require.NoError(t, err)
	assert.Equal(t, ReconcileUnchanged, result)
	assert.Equal(t, content, readFile(t, path), "file must be byte-identical")
}

// One missing line triggers a re-append of the whole block, duplicating the
// lines that were already there. The duplication is intentional behavior.
func TestReconcile_MissingLineAppendsWholeBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".shopifyignore")
	require.NoError(t, os.WriteFile(path, []byte("node_modules/\n"), 0o644))

	result, err := Reconcile(path, []string{"node_modules/", "package.json"})
	require.NoError(t, err)
	assert.Equal(t, ReconcileUpdated, result)

	content := readFile(t, path)
	assert.Equal(t, 2, strings.Count(content, "node_modules/"), "already-present line is duplicated")
	assert.Equal(t, 1, strings.Count(content, "package.json"))

	// A second reconcile now finds everything and stays quiet
	result, err = Reconcile(path, []string{"node_modules/", "package.json"})
	require.NoError(t, err)
	assert.Equal(t, ReconcileUnchanged, result)
	assert.Equal(t, content, readFile(t, path))
}

func TestReconcile_SubstringMatchSuffices(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	// Entry present with different surrounding formatting still counts
	require.NoError(t, os.WriteFile(path, []byte("  node_modules/ # npm deps\n"), 0o644))

	result, err := Reconcile(path, []string{"node_modules/"})
	require.NoError(t, err)
	assert.Equal(t, ReconcileUnchanged, result)
}
