package auth

import (
	"context"
	"strings"

	apperrors "cookenu/internal/errors"
)

// Authenticator verifies a presented token and checks it was not revoked.
type Authenticator struct {
	tokens *JWTService
	store  TokenStoreInterface
}

// NewAuthenticator creates an authenticator; store may be nil to skip revocation checks.
func NewAuthenticator(tokens *JWTService, store TokenStoreInterface) *Authenticator {
	return &Authenticator{tokens: tokens, store: store}
}

// Authenticate accepts either a bare token or "Bearer <token>".
func (a *Authenticator) Authenticate(ctx context.Context, header string) (*Claims, error) {
	raw := strings.TrimSpace(header)
	if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
		raw = strings.TrimSpace(raw[7:])
	}

	claims, err := a.tokens.Verify(raw)
	if err != nil {
		return nil, err
	}
	if a.store != nil {
		if a.store.IsTokenRevoked(ctx, claims.RegisteredClaims.ID) || a.store.IsUserRevoked(ctx, claims.UserID) {
			return nil, apperrors.ErrInvalidToken
		}
	}
	return claims, nil
}
