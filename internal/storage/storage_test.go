package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbershop-booking-api/internal/storage"
)

func open(t *testing.T) *storage.Store {
	t.Helper()
	kv, err := storage.Open(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestPutGet(t *testing.T) {
	kv := open(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "k", []byte(`{"a":1}`)))

	v, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), v)
}

func TestGetMissingKey(t *testing.T) {
	kv := open(t)

	v, ok, err := kv.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestPutOverwrites(t *testing.T) {
	kv := open(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "k", []byte("old")))
	require.NoError(t, kv.Put(ctx, "k", []byte("new")))

	v, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), v)
}

func TestDelete(t *testing.T) {
	kv := open(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, "k", []byte("v")))
	require.NoError(t, kv.Delete(ctx, "k"))

	_, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting an absent key is fine
	require.NoError(t, kv.Delete(ctx, "k"))
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	kv, err := storage.Open(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, "k", []byte("persisted")))
	require.NoError(t, kv.Close())

	kv, err = storage.Open(path)
	require.NoError(t, err)
	defer kv.Close()

	v, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("persisted"), v)
}
