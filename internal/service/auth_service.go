package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"cookenu/internal/auth"
	apperrors "cookenu/internal/errors"
	"cookenu/internal/idgen"
	"cookenu/internal/model"
	"cookenu/internal/repository"
)

const (
	// MinPasswordLength is the shortest accepted password, in characters.
	MinPasswordLength = 6
	// MaxPasswordBytes is the longest password bcrypt hashes.
	MaxPasswordBytes = 72
)

// SignUpInput carries the fields of a new account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// AuthService handles authentication operations.
type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (accessToken string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (accessToken string, user *model.User, err error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     auth.Hasher
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	ids        idgen.Generator
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher auth.Hasher,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	ids idgen.Generator,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		tokenStore: tokenStore,
		ids:        ids,
	}
}

// SignUp creates a user with a hashed password and returns a token for it.
func (s *authService) SignUp(ctx context.Context, in SignUpInput) (string, *model.User, error) {
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return "", nil, apperrors.ErrPasswordTooShort
	}
	if len(in.Password) > MaxPasswordBytes {
		return "", nil, apperrors.ErrPasswordTooLong
	}
	if !in.Role.Valid() {
		return "", nil, apperrors.ErrInvalidRole
	}

	existing, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return "", nil, apperrors.ErrEmailAlreadyRegistered
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", nil, err
	}

	user := &model.User{
		ID:       s.ids.NewID(),
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
		Role:     in.Role,
	}
	// the unique index still catches a concurrent sign-up with the same email
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.jwtService.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies credentials and issues a token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "", nil, apperrors.ErrPasswordTooShort
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", nil, apperrors.ErrEmailNotRegistered
	}
	// no stored hash can match a password bcrypt refuses to hash
	if len(password) > MaxPasswordBytes || !s.hasher.Compare(password, user.Password) {
		return "", nil, apperrors.ErrInvalidPassword
	}

	token, err := s.jwtService.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if s.tokenStore == nil {
		return nil
	}
	return s.tokenStore.RevokeToken(ctx, claims.RegisteredClaims.ID, s.jwtService.RemainingTTL(claims))
}
