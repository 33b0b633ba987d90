package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        ErrPasswordTooShort,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "PASSWORD_TOO_SHORT",
			wantMsg:    "Password must be 6 or more characters",
		},
		{
			name:       "missing named parameter",
			err:        MissingParameter("userToFollowId"),
			wantStatus: http.StatusNotFound,
			wantCode:   "MISSING_PARAMETERS",
			wantMsg:    "Missing parameters: userToFollowId",
		},
		{
			name:       "wrapped domain error",
			err:        fmt.Errorf("sign up: %w", ErrEmailAlreadyRegistered),
			wantStatus: http.StatusConflict,
			wantCode:   "EMAIL_ALREADY_REGISTERED",
			wantMsg:    "E-mail already registered",
		},
		{
			name:       "profile lookup reports conflict",
			err:        ErrProfileNotFound,
			wantStatus: http.StatusConflict,
			wantCode:   "PROFILE_NOT_FOUND",
			wantMsg:    "User not found",
		},
		{
			name:       "storage detail is hidden",
			err:        NewStorageError("insert user", errors.New("dial tcp 10.0.0.3:3306: connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "STORAGE_ERROR",
			wantMsg:    "internal server error",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMsg, httpErr.ToErrorResponse().Message)
		})
	}
}

func TestError_IsMatchesDerivedErrors(t *testing.T) {
	derived := ErrNotRecipeCreator.WithMessage("Only the creator can delete the recipe")

	assert.True(t, errors.Is(derived, ErrNotRecipeCreator))
	assert.False(t, errors.Is(derived, ErrAccessDenied))
	assert.Equal(t, "Only the creator can update the recipe", ErrNotRecipeCreator.Message)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindAuth, KindOf(ErrInvalidToken))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("x: %w", ErrRecipeNotFound)))
	assert.Equal(t, KindStorage, KindOf(NewStorageError("op", errors.New("down"))))
	assert.Equal(t, Kind(""), KindOf(errors.New("other")))
	assert.Nil(t, NewStorageError("op", nil))
}
