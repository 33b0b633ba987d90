package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "cookenu/internal/errors"
	"cookenu/internal/model"
)

// UserRepository defines persistence operations for users and the follow graph.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	InsertFollow(ctx context.Context, followerID, followingID string) error
	DeleteFollow(ctx context.Context, followerID, followingID string) error
	SelectFeed(ctx context.Context, userID string) ([]model.FeedRecipe, error)
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the full row. A taken email is reported as a conflict.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrEmailAlreadyRegistered
	}
	return apperrors.NewStorageError("insert user", err)
}

// FindByID returns nil, nil when no user has the id.
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, "find user by id", "id = ?", id)
}

// FindByEmail returns nil, nil when no user has the email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, "find user by email", "email = ?", email)
}

func (r *userRepository) findOne(ctx context.Context, op, query string, arg string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where(query, arg).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError(op, err)
	}
	return &user, nil
}

// InsertFollow records the edge; following twice keeps a single edge.
func (r *userRepository) InsertFollow(ctx context.Context, followerID, followingID string) error {
	edge := &model.Follower{FollowerID: followerID, FollowingID: followingID}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
	return apperrors.NewStorageError("insert follow", err)
}

// DeleteFollow removes the edge; a missing edge is not an error.
func (r *userRepository) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follower{}).Error
	return apperrors.NewStorageError("delete follow", err)
}

// SelectFeed returns the recipes of everyone userID follows with the author's
// name, newest first; ties break on recipe id.
func (r *userRepository) SelectFeed(ctx context.Context, userID string) ([]model.FeedRecipe, error) {
	quote := r.db.Statement.Quote

	feed := make([]model.FeedRecipe, 0)
	err := r.db.WithContext(ctx).
		Table(quote("follower")+" AS f").
		Select("r.id, r.creator_id, r.title, r.description, r.created_at, u.name AS user_name").
		Joins("JOIN "+quote("user")+" AS u ON u.id = f.following_id").
		Joins("JOIN "+quote("recipe")+" AS r ON r.creator_id = f.following_id").
		Where("f.follower_id = ?", userID).
		Order("r.created_at DESC, r.id ASC").
		Scan(&feed).Error
	if err != nil {
		return nil, apperrors.NewStorageError("select feed", err)
	}
	return feed, nil
}

// Delete removes the user's follow edges in both directions, their recipes,
// then the user row, atomically.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("follower_id = ? OR following_id = ?", id, id).Delete(&model.Follower{}).Error; err != nil {
			return err
		}
		if err := tx.Where("creator_id = ?", id).Delete(&model.Recipe{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.User{}).Error
	})
	return apperrors.NewStorageError("delete user", err)
}
