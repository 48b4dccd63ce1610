package assets

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStore(t *testing.T) {
	t.Run("stores file and returns absolute URL", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewLocalStore(dir, "http://localhost:3000")
		assert.NoError(t, err)

		url, err := store.Store(context.Background(), strings.NewReader("png bytes"), "a.png")
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "http://localhost:3000/uploads/"))

		name := strings.TrimPrefix(url, "http://localhost:3000/uploads/")
		assert.Regexp(t, regexp.MustCompile(`^\d+-a\.png$`), name)

		data, err := os.ReadFile(filepath.Join(dir, name))
		assert.NoError(t, err)
		assert.Equal(t, "png bytes", string(data))
	})

	t.Run("trailing slash on base URL is normalized", func(t *testing.T) {
		store, err := NewLocalStore(t.TempDir(), "http://localhost:3000/")
		assert.NoError(t, err)

		url, err := store.Store(context.Background(), strings.NewReader("x"), "b.png")
		assert.NoError(t, err)
		assert.NotContains(t, url, "//uploads")
		assert.Contains(t, url, "http://localhost:3000/uploads/")
	})

	t.Run("directory components in the client filename are stripped", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewLocalStore(dir, "http://localhost:3000")
		assert.NoError(t, err)

		url, err := store.Store(context.Background(), strings.NewReader("x"), "../../evil.png")
		assert.NoError(t, err)
		assert.NotContains(t, url, "..")

		entries, err := os.ReadDir(dir)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Regexp(t, regexp.MustCompile(`^\d+-evil\.png$`), entries[0].Name())
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewLocalStore(dir, "http://localhost:3000")
		assert.NoError(t, err)

		_, err = store.Store(context.Background(), strings.NewReader("x"), "c.png")
		assert.NoError(t, err)

		leftovers, err := filepath.Glob(filepath.Join(dir, ".upload-*"))
		assert.NoError(t, err)
		assert.Empty(t, leftovers)
	})

	t.Run("creates the upload directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")
		_, err := NewLocalStore(dir, "http://localhost:3000")
		assert.NoError(t, err)

		info, err := os.Stat(dir)
		assert.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
