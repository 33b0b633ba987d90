package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "cookenu/internal/errors"
	"cookenu/internal/model"
)

// RecipeRepository defines recipe persistence operations.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	FindByID(ctx context.Context, id string) (*model.Recipe, error)
	FindByCreatorID(ctx context.Context, creatorID string) (*model.Recipe, error)
	Update(ctx context.Context, creatorID string, recipe *model.Recipe) error
	Delete(ctx context.Context, id string) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	return apperrors.NewStorageError("insert recipe", r.db.WithContext(ctx).Create(recipe).Error)
}

// FindByID returns nil, nil when the recipe does not exist.
func (r *recipeRepository) FindByID(ctx context.Context, id string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError("find recipe", err)
	}
	return &recipe, nil
}

// FindByCreatorID returns only the creator's oldest recipe, or nil, nil.
func (r *recipeRepository) FindByCreatorID(ctx context.Context, creatorID string) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at ASC, id ASC").
		Take(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError("find recipe by creator", err)
	}
	return &recipe, nil
}

// Update changes title and description of the row matching both the recipe id
// and creatorID. When nothing matches the call succeeds without effect;
// ownership is enforced by the caller.
func (r *recipeRepository) Update(ctx context.Context, creatorID string, recipe *model.Recipe) error {
	err := r.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("id = ? AND creator_id = ?", recipe.ID, creatorID).
		Updates(map[string]interface{}{
			"title":       recipe.Title,
			"description": recipe.Description,
		}).Error
	return apperrors.NewStorageError("update recipe", err)
}

func (r *recipeRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Recipe{}).Error
	return apperrors.NewStorageError("delete recipe", err)
}
