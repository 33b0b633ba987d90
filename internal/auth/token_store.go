package auth

import (
	"context"
	"time"

	"cookenu/internal/cache"
)

const (
	revokedTokenKeyPrefix = "revoked:token:"
	revokedUserKeyPrefix  = "revoked:user:"
)

// TokenStoreInterface defines the interface for token revocation.
type TokenStoreInterface interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) bool
	RevokeUser(ctx context.Context, userID string, ttl time.Duration) error
	IsUserRevoked(ctx context.Context, userID string) bool
}

// TokenStore keeps revocation markers in Redis. Markers expire together with
// the tokens they cancel. When Redis is unreachable nothing reads as revoked.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// RevokeToken cancels a single token (logout).
func (s *TokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, revokedTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsTokenRevoked checks a token id against the revocation list.
func (s *TokenStore) IsTokenRevoked(ctx context.Context, tokenID string) bool {
	return s.cache.Exists(ctx, revokedTokenKeyPrefix+tokenID)
}

// RevokeUser cancels every token of a user, e.g. after deletion.
func (s *TokenStore) RevokeUser(ctx context.Context, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, revokedUserKeyPrefix+userID, []byte("1"), ttl)
}

// IsUserRevoked reports whether the user's tokens were cancelled.
func (s *TokenStore) IsUserRevoked(ctx context.Context, userID string) bool {
	return s.cache.Exists(ctx, revokedUserKeyPrefix+userID)
}
