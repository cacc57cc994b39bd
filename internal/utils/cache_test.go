package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetSet(t *testing.T) {
	cache := NewCache[string, int]()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Set("answer", 42)
	value, ok := cache.Get("answer")
	require.True(t, ok)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, cache.Size())

	cache.Delete("answer")
	_, ok = cache.Get("answer")
	assert.False(t, ok)
}

func TestCacheClear(t *testing.T) {
	cache := NewCache[string, string]()
	cache.Set("a", "1")
	cache.Set("b", "2")

	cache.Clear()
	assert.Equal(t, 0, cache.Size())
}

func TestCacheFileValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracked.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	cache := NewCache[string, string]()
	require.NoError(t, cache.SetWithFileInfo(path, "cached", path))

	value, ok := cache.GetWithFileValidation(path, path)
	require.True(t, ok)
	assert.Equal(t, "cached", value)

	// Rewrite with different size, the entry must invalidate
	require.NoError(t, os.WriteFile(path, []byte("version two"), 0o644))
	require.NoError(t, os.Chtimes(path, time.Now(), time.Now().Add(time.Second)))

	_, ok = cache.GetWithFileValidation(path, path)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Size())
}
