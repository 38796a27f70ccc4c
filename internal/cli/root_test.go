package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kabitools/kabidiff/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_CompareEndToEnd(t *testing.T) {
	dirA := writeTree(t, map[string]string{
		"a.symtypes": "s#foo struct foo { int a ; }\n" +
			"vfs_read ssize_t vfs_read ( s#foo )\n" +
			"old_only void old_only ( )\n",
	})
	dirB := writeTree(t, map[string]string{
		"a.symtypes": "s#foo struct foo { long a ; }\n" +
			"vfs_read ssize_t vfs_read ( s#foo )\n" +
			"new_only void new_only ( )\n",
	})

	out, err := execute(t, "compare", dirA, dirB, "--output", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "`old_only` present in A but not in B")
	assert.Contains(t, out, "`new_only` present in B but not in A")
	assert.Contains(t, out, "## s#foo")
	assert.Contains(t, out, "-\tint a;")
	assert.Contains(t, out, "+\tlong a;")
}

func TestRootCmd_CompareIdenticalTrees(t *testing.T) {
	tree := map[string]string{
		"a.symtypes": "fn void fn ( int )\n",
	}
	dirA := writeTree(t, tree)
	dirB := writeTree(t, tree)

	out, err := execute(t, "compare", dirA, dirB, "--output", "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "**Changed Types:** 0")
}

func TestRootCmd_CompareMissingDir(t *testing.T) {
	dirA := writeTree(t, map[string]string{"a.symtypes": "fn void fn ( )\n"})

	_, err := execute(t, "compare", dirA, filepath.Join(dirA, "missing"))
	require.Error(t, err)
}

func TestRootCmd_Print(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.symtypes": "s#foo struct foo { int a ; }\n" +
			"vfs_read ssize_t vfs_read ( s#foo )\n",
	})

	out, err := execute(t, "print", "vfs_read", "--dir", dir, "--output", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Found type")
	assert.Contains(t, out, "s#foo struct foo { int a ; }")
	assert.Contains(t, out, "vfs_read ssize_t vfs_read ( s#foo )")
}

func TestRootCmd_PrintUnknownType(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.symtypes": "fn void fn ( )\n"})

	out, err := execute(t, "print", "nope", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Type nope not found")
}

func TestRootCmd_ListJSON(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.symtypes": "s#foo struct foo { }\nfn void fn ( s#foo )\n",
	})

	out, err := execute(t, "list", "--dir", dir, "--output", "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"declarations": 2`)
	assert.Contains(t, out, `"exports": 1`)
	assert.Contains(t, out, `"total_types": 2`)
}

func TestRootCmd_SuffixFlag(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.symref":   "fn void fn ( )\n",
		"b.symtypes": "ignored void ignored ( )\n",
	})

	out, err := execute(t, "list", "--dir", dir, "--suffix", ".symref", "--output", "json")
	require.NoError(t, err)

	assert.Contains(t, out, "a.symref")
	assert.NotContains(t, out, "b.symtypes")
}

func TestRootCmd_Version(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "kabidiff v")
}
