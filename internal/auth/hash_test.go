package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "cookenu/internal/errors"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", first)
	assert.NotEqual(t, first, second, "each hash gets its own salt")
	assert.True(t, h.Compare("secret1", first))
	assert.True(t, h.Compare("secret1", second))
	assert.False(t, h.Compare("secret2", first))
	assert.False(t, h.Compare("secret1", "not-a-hash"))
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, apperrors.ErrPasswordTooLong)

	_, err = h.Hash(strings.Repeat("a", 72))
	assert.NoError(t, err)
}
