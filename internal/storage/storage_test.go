package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := b.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.False(t, ok, "unwritten key must load as absent")

	require.NoError(t, b.Save(ctx, KeyCart, []byte(`[{"id":"1"}]`)))
	got, ok, err := b.Load(ctx, KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	// Saves replace the whole snapshot.
	require.NoError(t, b.Save(ctx, KeyCart, []byte(`[]`)))
	got, _, err = b.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, b.Delete(ctx, KeyCart))
	_, ok, err = b.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, b.Delete(ctx, KeyCart))
}

func TestMemoryBackend(t *testing.T) {
	testBackend(t, NewMemory())
}

func TestFileBackend(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)
	testBackend(t, f)
}

func TestFileBackendWritesOneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, KeyProducts, []byte(`[]`)))
	require.NoError(t, f.Save(ctx, KeySettings, []byte(`{}`)))

	for _, key := range []string{KeyProducts, KeySettings} {
		_, err := os.Stat(filepath.Join(dir, key+".json"))
		assert.NoError(t, err)
	}
	// No temp files left behind.
	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMemoryLoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Save(ctx, KeyCart, []byte("abc")))

	got, _, err := m.Load(ctx, KeyCart)
	require.NoError(t, err)
	got[0] = 'x'

	again, _, err := m.Load(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
