package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cookenu/internal/model"
	"cookenu/internal/service"
)

// UserHandler serves profile, follow and feed endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// FollowRequest names the user to follow.
type FollowRequest struct {
	UserToFollowID string `json:"userToFollowId" validate:"required"`
}

// UnfollowRequest names the user to stop following.
type UnfollowRequest struct {
	UserToUnfollowID string `json:"userToUnfollowId" validate:"required"`
}

// GetProfile godoc
// @Summary Own profile
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.PublicUser
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.ToPublic())
}

// GetAnotherProfile godoc
// @Summary Profile of any user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.PublicUser
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /user/{id} [get]
func (h *UserHandler) GetAnotherProfile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.ToPublic())
}

// Follow godoc
// @Summary Follow a user
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body FollowRequest true "User to follow"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /user/follow [post]
func (h *UserHandler) Follow(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	var req FollowRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.svc.Follow(c.Request().Context(), claims.UserID, req.UserToFollowID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Followed successfully"})
}

// Unfollow godoc
// @Summary Stop following a user
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body UnfollowRequest true "User to unfollow"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/unfollow [post]
func (h *UserHandler) Unfollow(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	var req UnfollowRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.svc.Unfollow(c.Request().Context(), claims.UserID, req.UserToUnfollowID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Unfollowed successfully"})
}

// Feed godoc
// @Summary Recipes of followed users, newest first
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.FeedItem
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/feed [get]
func (h *UserHandler) Feed(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	feed, err := h.svc.Feed(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	items := make([]model.FeedItem, 0, len(feed))
	for i := range feed {
		items = append(items, feed[i].ToItem())
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteUser godoc
// @Summary Delete a user with their recipes and follow edges
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteUser(c.Request().Context(), claims.Role, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "User deleted"})
}
