package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cookenu/internal/cache"
	"cookenu/internal/db"
)

// HealthHandler reports whether the service can reach its backing stores.
type HealthHandler struct {
	db    *gorm.DB
	cache *cache.Client
}

// NewHealthHandler creates a new health handler; cacheClient may be nil.
func NewHealthHandler(gormDB *gorm.DB, cacheClient *cache.Client) *HealthHandler {
	return &HealthHandler{db: gormDB, cache: cacheClient}
}

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}

// Healthz godoc
// @Summary Liveness and database reachability
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c echo.Context) error {
	ctx := c.Request().Context()

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			// revocation checks fail open, so a cache outage is reported but not fatal
			cacheStatus = "unavailable"
		}
	}

	if err := db.Ping(ctx, h.db); err != nil {
		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Cache: cacheStatus})
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Cache: cacheStatus})
}
