package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "cart_u1", `[{"productId":1,"quantity":2}]`))
	v, ok, err := store.Get(ctx, "cart_u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"productId":1,"quantity":2}]`, v)

	require.NoError(t, store.Set(ctx, "cart_u1", "[]"))
	v, _, err = store.Get(ctx, "cart_u1")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	require.NoError(t, store.Delete(ctx, "cart_u1"))
	_, ok, err = store.Get(ctx, "cart_u1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete(ctx, "cart_u1"))
}

func TestMemStore(t *testing.T) {
	testStore(t, NewMemStore())
}

func TestBoltStore(t *testing.T) {
	store, err := OpenBolt(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	testStore(t, store)
}

func TestBoltStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "userData_u1", `{"name":"Ada"}`))
	require.NoError(t, store.Close())

	reopened, err := OpenBolt(path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	v, ok, err := reopened.Get(ctx, "userData_u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Ada"}`, v)
}

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "cart_u1", CartKey("u1"))
	assert.Equal(t, "userData_u1", UserDataKey("u1"))
	assert.Equal(t, "orderHistory_u1", OrderHistoryKey("u1"))
}
