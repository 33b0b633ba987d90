package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cookenu/internal/service"
)

// RecipeHandler serves recipe endpoints.
type RecipeHandler struct {
	svc service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(svc service.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

// RecipeRequest is the body of recipe create and edit.
type RecipeRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// CreateRecipe godoc
// @Summary Publish a recipe
// @Tags recipes
// @Accept json
// @Security ApiKeyAuth
// @Param request body RecipeRequest true "Recipe"
// @Success 201
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe [post]
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	var req RecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := h.svc.Create(c.Request().Context(), claims.UserID, req.Title, req.Description); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// GetRecipe godoc
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Recipe ID"
// @Success 200 {object} model.PublicRecipe
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id} [get]
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	recipe, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipe.ToPublic())
}

// EditRecipe godoc
// @Summary Replace title and description
// @Tags recipes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Recipe ID"
// @Param request body RecipeRequest true "Recipe"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id} [put]
func (h *RecipeHandler) EditRecipe(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req RecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := h.svc.Edit(c.Request().Context(), claims.UserID, id, req.Title, req.Description); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Recipe updated"})
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Tags recipes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Recipe ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), claims.UserID, claims.Role, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Recipe deleted"})
}
