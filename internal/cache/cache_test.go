package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestClient_SetGetDelete(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.Equal(t, []byte("v"), c.Get(ctx, "k"))
	assert.True(t, c.Exists(ctx, "k"))

	mr.FastForward(2 * time.Minute)
	assert.Nil(t, c.Get(ctx, "k"))
	assert.False(t, c.Exists(ctx, "k"))

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))
	require.NoError(t, c.Delete(ctx, "k"))
	assert.Nil(t, c.Get(ctx, "k"))
}

func TestClient_FailsSafeWhenUnavailable(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()
	mr.Close()

	assert.Nil(t, c.Get(ctx, "k"))
	assert.False(t, c.Exists(ctx, "k"))
	assert.Error(t, c.Ping(ctx))
}

func TestClient_NilIsDisabled(t *testing.T) {
	c := New("", "", 0)
	ctx := context.Background()

	assert.Nil(t, c)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	assert.Nil(t, c.Get(ctx, "k"))
	assert.False(t, c.Exists(ctx, "k"))
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}
