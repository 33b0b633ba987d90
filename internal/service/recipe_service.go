package service

import (
	"context"
	"time"

	apperrors "cookenu/internal/errors"
	"cookenu/internal/idgen"
	"cookenu/internal/model"
	"cookenu/internal/repository"
)

// RecipeService exposes recipe operations with ownership rules.
type RecipeService interface {
	Create(ctx context.Context, creatorID, title, description string) (*model.Recipe, error)
	Get(ctx context.Context, id string) (*model.Recipe, error)
	Edit(ctx context.Context, callerID, id, title, description string) (*model.Recipe, error)
	Delete(ctx context.Context, callerID string, callerRole model.Role, id string) error
}

type recipeService struct {
	recipeRepo repository.RecipeRepository
	userRepo   repository.UserRepository
	ids        idgen.Generator
	now        func() time.Time
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(recipeRepo repository.RecipeRepository, userRepo repository.UserRepository, ids idgen.Generator) RecipeService {
	return &recipeService{
		recipeRepo: recipeRepo,
		userRepo:   userRepo,
		ids:        ids,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a recipe for an existing creator. A token whose user no longer
// exists is treated as invalid.
func (s *recipeService) Create(ctx context.Context, creatorID, title, description string) (*model.Recipe, error) {
	creator, err := s.userRepo.FindByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, apperrors.ErrInvalidToken
	}

	recipe := &model.Recipe{
		ID:          s.ids.NewID(),
		CreatorID:   creatorID,
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
	}
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) Get(ctx context.Context, id string) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, apperrors.ErrRecipeNotFound
	}
	return recipe, nil
}

// Edit replaces title and description. Only the creator may edit.
func (s *recipeService) Edit(ctx context.Context, callerID, id, title, description string) (*model.Recipe, error) {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.CreatorID != callerID {
		return nil, apperrors.ErrNotRecipeCreator
	}

	recipe.Title = title
	recipe.Description = description
	if err := s.recipeRepo.Update(ctx, callerID, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete lets the creator delete their recipe, and admins delete any recipe.
func (s *recipeService) Delete(ctx context.Context, callerID string, callerRole model.Role, id string) error {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if recipe.CreatorID != callerID {
		switch callerRole {
		case model.RoleAdmin:
		case model.RoleNormal:
			return apperrors.ErrNotRecipeCreator.WithMessage("Only the creator can delete the recipe")
		default:
			return apperrors.ErrAccessDenied
		}
	}

	return s.recipeRepo.Delete(ctx, recipe.ID)
}
