package corpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kabitools/kabidiff/internal/corpus"
	"github.com/kabitools/kabidiff/internal/testutil"
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

func TestLoad_BasicTree(t *testing.T) {
	root := writeTree(t, map[string]string{
		"drivers/a.symtypes": "s#foo struct foo { int a ; }\n" +
			"bar int bar ( s#foo )\n",
		"drivers/b.symtypes": "s#foo struct foo { int a ; int b ; }\n" +
			"baz void baz ( s#foo )\n",
		"README": "not a symtypes file\n",
	})

	c, err := corpus.Load(root, ".symtypes", testutil.NewTestLogger(t))
	require.NoError(t, err)

	assert.Len(t, c.Files, 2)
	assert.Len(t, c.Exports, 2, "bar and baz are exports, s#foo is not")
	assert.Contains(t, c.Exports, "bar")
	assert.Contains(t, c.Exports, "baz")

	// The two files declare structurally different variants of s#foo.
	assert.Len(t, c.Types.Variants("s#foo"), 2)
}

func TestLoad_SharedVariantInterned(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.symtypes": "s#foo struct foo { int a ; }\nfn1 void fn1 ( s#foo )\n",
		"b.symtypes": "s#foo struct foo { int a ; }\nfn2 void fn2 ( s#foo )\n",
	})

	c, err := corpus.Load(root, ".symtypes", nil)
	require.NoError(t, err)

	require.Len(t, c.Types.Variants("s#foo"), 1, "identical declarations intern to one variant")
	for _, f := range c.Files {
		assert.Equal(t, 0, f.Records["s#foo"])
	}
}

func TestLoad_BlankAndNameOnlyLines(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.symtypes": "\n\nE#SOME_CONSTANT\nexported void exported ( )\n",
	})

	c, err := corpus.Load(root, ".symtypes", nil)
	require.NoError(t, err)

	require.Len(t, c.Files, 1)
	// Name-only line is a zero-token declaration, blank lines are skipped.
	assert.Len(t, c.Files[0].Records, 2)
	variants := c.Types.Variants("E#SOME_CONSTANT")
	require.Len(t, variants, 1)
	assert.Empty(t, variants[0])
}

func TestLoad_DuplicateExportLastFileWins(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.symtypes": "dup void dup ( int )\n",
		"z.symtypes": "dup void dup ( long )\n",
	})

	c, err := corpus.Load(root, ".symtypes", nil)
	require.NoError(t, err)

	require.Contains(t, c.Exports, "dup")
	owner := c.Files[c.Exports["dup"]]
	assert.Equal(t, filepath.Join(root, "z.symtypes"), owner.Path)
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := corpus.Load(filepath.Join(t.TempDir(), "nope"), ".symtypes", nil)
	require.Error(t, err)

	var loadErr *corpus.LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestCorpus_TypeTokens(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.symtypes": "s#foo struct foo { int a ; }\nfn void fn ( s#foo )\n",
	})

	c, err := corpus.Load(root, ".symtypes", nil)
	require.NoError(t, err)
	file := c.Files[0]

	tokens, err := c.TypeTokens(file, "fn")
	require.NoError(t, err)
	assert.Equal(t, corpus.Tokens{
		corpus.Atom("void"), corpus.Atom("fn"), corpus.Atom("("),
		corpus.TypeRef("s#foo"), corpus.Atom(")"),
	}, tokens)

	_, err = c.TypeTokens(file, "s#unknown")
	var consistencyErr *corpus.ConsistencyError
	require.ErrorAs(t, err, &consistencyErr)
}

func TestCorpus_ExpandType(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.symtypes": "s#inner struct inner { int x ; }\n" +
			"s#outer struct outer { s#inner i ; s#inner j ; }\n" +
			"fn void fn ( s#outer )\n",
	})

	c, err := corpus.Load(root, ".symtypes", nil)
	require.NoError(t, err)

	lines, err := c.ExpandType(c.Files[0], "fn")
	require.NoError(t, err)

	// Depth-first: referenced types come before their referrer, and
	// s#inner appears only once even though it is referenced twice.
	assert.Equal(t, []string{
		"s#inner struct inner { int x ; }",
		"s#outer struct outer { s#inner i ; s#inner j ; }",
		"fn void fn ( s#outer )",
	}, lines)
}

func TestCorpus_ExpandType_Cyclic(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.symtypes": "s#node struct node { s#node * next ; }\n" +
			"fn void fn ( s#node )\n",
	})

	c, err := corpus.Load(root, ".symtypes", nil)
	require.NoError(t, err)

	lines, err := c.ExpandType(c.Files[0], "fn")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"s#node struct node { s#node * next ; }",
		"fn void fn ( s#node )",
	}, lines)
}

func TestCorpus_FilesWithType(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.symtypes": "s#foo struct foo { }\nfn1 void fn1 ( s#foo )\n",
		"b.symtypes": "fn2 void fn2 ( int )\n",
	})

	c, err := corpus.Load(root, ".symtypes", nil)
	require.NoError(t, err)

	files := c.FilesWithType("s#foo")
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(root, "a.symtypes"), files[0].Path)
	assert.Empty(t, c.FilesWithType("s#missing"))
}
