package cache_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hbjs97/dotx/internal/cache"
	"github.com/hbjs97/dotx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsEmpty(t *testing.T) {
	t.Parallel()
	c, err := cache.Load(filepath.Join(t.TempDir(), "cache.json"))

	require.NoError(t, err)
	assert.Empty(t, c.Entries)
	assert.Equal(t, 1, c.Version)
}

func TestLoad_CorruptFileReturnsEmpty(t *testing.T) {
	path := testutil.TempCacheFile(t, "{corrupt json")

	c, err := cache.Load(path)

	require.NoError(t, err)
	assert.Empty(t, c.Entries)
}

func TestLookup_Hit(t *testing.T) {
	t.Parallel()
	c := cache.New()
	c.Set("/cfg", "hash1", []string{".zshrc", ".gitconfig"})

	files, ok := c.Lookup("/cfg", "hash1", time.Hour)

	require.True(t, ok)
	assert.Equal(t, []string{".zshrc", ".gitconfig"}, files)
}

func TestLookup_MissOnUnknownKey(t *testing.T) {
	t.Parallel()
	c := cache.New()

	_, ok := c.Lookup("/cfg", "hash1", time.Hour)

	assert.False(t, ok)
}

func TestLookup_MissOnConfigHashChange(t *testing.T) {
	t.Parallel()
	c := cache.New()
	c.Set("/cfg", "hash1", []string{".zshrc"})

	_, ok := c.Lookup("/cfg", "hash2", time.Hour)

	assert.False(t, ok)
}

func TestLookup_MissOnExpiredTTL(t *testing.T) {
	t.Parallel()
	c := cache.New()
	c.Entries["/cfg"] = cache.Entry{
		Files:      []string{".zshrc"},
		ResolvedAt: time.Now().Add(-10 * time.Minute).Format(time.RFC3339),
		ConfigHash: "hash1",
	}

	_, ok := c.Lookup("/cfg", "hash1", 5*time.Minute)

	assert.False(t, ok)
}

func TestLookup_MissOnBadTimestamp(t *testing.T) {
	t.Parallel()
	c := cache.New()
	c.Entries["/cfg"] = cache.Entry{Files: []string{".zshrc"}, ResolvedAt: "not-a-time", ConfigHash: "hash1"}

	_, ok := c.Lookup("/cfg", "hash1", time.Hour)

	assert.False(t, ok)
}

func TestInvalidate(t *testing.T) {
	t.Parallel()
	c := cache.New()
	c.Set("/cfg", "hash1", []string{".zshrc"})

	c.Invalidate("/cfg")

	_, ok := c.Lookup("/cfg", "hash1", time.Hour)
	assert.False(t, ok)
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "cache.json")

	c := cache.New()
	c.Set("/cfg", "hash1", []string{".zshrc"})
	require.NoError(t, c.Save(path))

	loaded, err := cache.Load(path)
	require.NoError(t, err)

	files, ok := loaded.Lookup("/cfg", "hash1", time.Hour)
	require.True(t, ok)
	assert.Equal(t, []string{".zshrc"}, files)
}
