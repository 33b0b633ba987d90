package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cookenu/docs"
	"cookenu/internal/auth"
	"cookenu/internal/cache"
	"cookenu/internal/config"
	"cookenu/internal/db"
	"cookenu/internal/handler"
	"cookenu/internal/idgen"
	"cookenu/internal/logger"
	"cookenu/internal/repository"
	"cookenu/internal/router"
	"cookenu/internal/service"
)

// @title Cookenu API
// @version 1.0
// @description Recipe sharing API: accounts, recipes, follows and a feed, with JWT authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description JWT issued by /signup or /login, raw or prefixed with "Bearer ".
func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if !cfg.IsProduction() && cfg.Auth.JWTSecret == "change-me" {
		log.Warn("JWT_KEY not set, using the development default")
	}

	gormDB, err := db.Open(cfg.DB, logger.GormLevel(cfg.LogLevel))
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	defer func() { _ = db.Close(gormDB) }()

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warn("redis unreachable, token revocation disabled until it recovers", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	tokenStore := auth.NewTokenStore(cacheClient)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	ids := idgen.New()

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService, tokenStore, ids)
	userService := service.NewUserService(userRepo, tokenStore, jwtService.Expiry(), log)
	recipeService := service.NewRecipeService(recipeRepo, userRepo, ids)

	e := echo.New()
	router.Register(
		e,
		cfg,
		log,
		auth.NewAuthenticator(jwtService, tokenStore),
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewRecipeHandler(recipeService),
		handler.NewHealthHandler(gormDB, cacheClient),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	} else {
		docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	}
	log.Info("swagger documentation available", zap.String("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"))

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server starting", zap.String("addr", addr), zap.String("db_driver", cfg.DB.Driver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
