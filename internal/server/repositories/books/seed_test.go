package books

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSeedFile_YAML(t *testing.T) {
	path := writeFile(t, "books.yaml", `
books:
  - isbn: "111"
    title: Go in Action
    author: William Kennedy
    reviews:
      carol: solid
  - isbn: "222"
    title: The Go Programming Language
    author: Alan Donovan
`)

	got, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "111", got[0].ISBN)
	assert.Equal(t, "solid", got[0].Reviews["carol"])
	assert.Equal(t, "Alan Donovan", got[1].Author)
}

func TestLoadSeedFile_JSON(t *testing.T) {
	path := writeFile(t, "books.json", `{"books":[{"isbn":"333","title":"T","author":"A","reviews":{}}]}`)

	got, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "333", got[0].ISBN)
}

func TestLoadSeedFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeedFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadSeedFile(writeFile(t, "bad.yaml", "books: [\n"))
		assert.Error(t, err)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := LoadSeedFile(writeFile(t, "b.yaml", "books:\n  - isbn: \"1\"\n    author: A\n"))
		assert.ErrorContains(t, err, "title is required")
	})

	t.Run("missing isbn", func(t *testing.T) {
		_, err := LoadSeedFile(writeFile(t, "b.yaml", "books:\n  - title: T\n    author: A\n"))
		assert.ErrorContains(t, err, "isbn is required")
	})
}
