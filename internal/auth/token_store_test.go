package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookenu/internal/cache"
)

func TestTokenStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewTokenStore(cache.New(mr.Addr(), "", 0))
	ctx := context.Background()

	assert.False(t, store.IsTokenRevoked(ctx, "jti-1"))
	require.NoError(t, store.RevokeToken(ctx, "jti-1", time.Minute))
	assert.True(t, store.IsTokenRevoked(ctx, "jti-1"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, store.IsTokenRevoked(ctx, "jti-1"), "marker expires with the token")

	require.NoError(t, store.RevokeUser(ctx, "user-1", time.Hour))
	assert.True(t, store.IsUserRevoked(ctx, "user-1"))
	assert.False(t, store.IsUserRevoked(ctx, "user-2"))
}

func TestTokenStore_NonPositiveTTLIsNoop(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewTokenStore(cache.New(mr.Addr(), "", 0))
	ctx := context.Background()

	require.NoError(t, store.RevokeToken(ctx, "jti-1", 0))
	assert.False(t, store.IsTokenRevoked(ctx, "jti-1"))
	assert.Empty(t, mr.Keys())
}
