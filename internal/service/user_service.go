package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"cookenu/internal/auth"
	apperrors "cookenu/internal/errors"
	"cookenu/internal/model"
	"cookenu/internal/repository"
)

// UserService exposes profile, follow-graph and admin operations.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	Follow(ctx context.Context, followerID, targetID string) error
	Unfollow(ctx context.Context, followerID, targetID string) error
	Feed(ctx context.Context, userID string) ([]model.FeedRecipe, error)
	DeleteUser(ctx context.Context, callerRole model.Role, id string) error
}

type userService struct {
	repo       repository.UserRepository
	tokenStore auth.TokenStoreInterface
	tokenTTL   time.Duration
	log        *zap.Logger
}

// NewUserService builds a UserService. Tokens of deleted users are revoked in
// tokenStore for tokenTTL; tokenStore and log may be nil.
func NewUserService(repo repository.UserRepository, tokenStore auth.TokenStoreInterface, tokenTTL time.Duration, log *zap.Logger) UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &userService{repo: repo, tokenStore: tokenStore, tokenTTL: tokenTTL, log: log}
}

// GetProfile returns the caller's own user.
func (s *userService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	return s.GetUser(ctx, userID)
}

// GetUser returns any user by id.
func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrProfileNotFound
	}
	return user, nil
}

func (s *userService) Follow(ctx context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return apperrors.ErrCannotFollowSelf
	}
	if err := s.requireUser(ctx, targetID); err != nil {
		return err
	}
	return s.repo.InsertFollow(ctx, followerID, targetID)
}

// Unfollow succeeds whether or not the edge existed.
func (s *userService) Unfollow(ctx context.Context, followerID, targetID string) error {
	if err := s.requireUser(ctx, targetID); err != nil {
		return err
	}
	return s.repo.DeleteFollow(ctx, followerID, targetID)
}

func (s *userService) Feed(ctx context.Context, userID string) ([]model.FeedRecipe, error) {
	feed, err := s.repo.SelectFeed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	if feed == nil {
		feed = []model.FeedRecipe{}
	}
	return feed, nil
}

// DeleteUser removes a user and everything they own. Admin only.
func (s *userService) DeleteUser(ctx context.Context, callerRole model.Role, id string) error {
	if callerRole != model.RoleAdmin {
		return apperrors.ErrAdminOnly
	}
	if err := s.requireUser(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.tokenStore != nil {
		// a cache outage must not fail a completed delete
		if err := s.tokenStore.RevokeUser(ctx, id, s.tokenTTL); err != nil {
			s.log.Warn("revoke tokens of deleted user; they stay valid until expiry",
				zap.String("user_id", id),
				zap.Duration("token_ttl", s.tokenTTL),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *userService) requireUser(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}
	return nil
}
