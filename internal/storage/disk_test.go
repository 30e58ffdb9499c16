package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureBuckets(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	store := NewStore(root)

	buckets := []string{"images", "videos", "audios", "documents", "others"}
	require.NoError(t, store.EnsureBuckets(buckets))

	for _, bucket := range buckets {
		info, err := os.Stat(filepath.Join(root, bucket))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}

	// idempotent on restart
	require.NoError(t, store.EnsureBuckets(buckets))
}

func TestSaveAndRemove(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.EnsureBuckets([]string{"images"}))

	payload := []byte("fake png bytes")
	require.NoError(t, store.Save("images", "cat-123.png", bytes.NewReader(payload)))

	got, err := os.ReadFile(filepath.Join(store.Root(), "images", "cat-123.png"))
	require.NoError(t, err)
	require.Equal(t, payload, got)

	require.NoError(t, store.Remove("images", "cat-123.png"))
	_, err = os.Stat(filepath.Join(store.Root(), "images", "cat-123.png"))
	require.True(t, os.IsNotExist(err))
}

func TestRemoveMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.EnsureBuckets([]string{"others"}))

	require.Error(t, store.Remove("others", "never-written.bin"))
}
