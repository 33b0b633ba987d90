package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"cookenu/internal/auth"
	"cookenu/internal/cache"
	"cookenu/internal/config"
	"cookenu/internal/db"
	apperrors "cookenu/internal/errors"
	"cookenu/internal/idgen"
	"cookenu/internal/logger"
	"cookenu/internal/model"
	"cookenu/internal/repository"
	"cookenu/internal/service"
)

// Fixture is the seed file layout. Follows and recipes reference users by email.
type Fixture struct {
	Users   []FixtureUser   `json:"users"`
	Follows []FixtureFollow `json:"follows"`
	Recipes []FixtureRecipe `json:"recipes"`
}

type FixtureUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type FixtureFollow struct {
	Follower  string `json:"follower"`
	Following string `json:"following"`
}

type FixtureRecipe struct {
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stats counts what a seed run changed.
type Stats struct {
	UsersCreated int
	UsersSkipped int
	Follows      int
	Recipes      int
}

type seeder struct {
	log     *zap.Logger
	users   repository.UserRepository
	auth    service.AuthService
	social  service.UserService
	recipes service.RecipeService
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	source, err := fixtureSource(os.Args[1:], os.Getenv("SEED_SOURCE"))
	if err != nil {
		log.Fatal("resolve fixture", zap.Error(err))
	}

	gormDB, err := db.Open(cfg.DB, logger.GormLevel(cfg.LogLevel))
	if err != nil {
		log.Fatal("connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close(gormDB) }()

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("run migrations", zap.Error(err))
	}

	log.Info("loading fixture", zap.String("source", source))
	fixture, err := loadFixture(source)
	if err != nil {
		log.Fatal("load fixture", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()

	userRepo := repository.NewUserRepository(gormDB)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	tokenStore := auth.NewTokenStore(cacheClient)
	ids := idgen.New()

	s := &seeder{
		log:     log,
		users:   userRepo,
		auth:    service.NewAuthService(userRepo, auth.NewBcryptHasher(cfg.Auth.BcryptCost), jwtService, tokenStore, ids),
		social:  service.NewUserService(userRepo, tokenStore, jwtService.Expiry(), log),
		recipes: service.NewRecipeService(repository.NewRecipeRepository(gormDB), userRepo, ids),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	stats, err := s.run(ctx, fixture)
	if err != nil {
		log.Fatal("seed", zap.Error(err))
	}
	log.Info("seed completed",
		zap.Int("users_created", stats.UsersCreated),
		zap.Int("users_skipped", stats.UsersSkipped),
		zap.Int("follows", stats.Follows),
		zap.Int("recipes", stats.Recipes),
	)
}

// fixtureSource picks the fixture from the first argument, then SEED_SOURCE.
// There is no default; cmd/seed/sample.json is an example to pass explicitly.
func fixtureSource(args []string, env string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if env != "" {
		return env, nil
	}
	return "", errors.New("no fixture given: pass a file path or URL as the first argument or set SEED_SOURCE")
}

// loadFixture reads the fixture from a local path or an http(s) URL.
func loadFixture(source string) (*Fixture, error) {
	var r io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("fetch fixture: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch fixture: status code %d", resp.StatusCode)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open fixture: %w", err)
		}
		r = f
	}
	defer r.Close()

	var fixture Fixture
	if err := json.NewDecoder(r).Decode(&fixture); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fixture, nil
}

// run is safe to repeat: existing users are kept and follows are idempotent.
// Recipes are always added.
func (s *seeder) run(ctx context.Context, fixture *Fixture) (Stats, error) {
	var stats Stats
	byEmail := make(map[string]string, len(fixture.Users))

	for _, u := range fixture.Users {
		_, user, err := s.auth.SignUp(ctx, service.SignUpInput{
			Name:     u.Name,
			Email:    u.Email,
			Password: u.Password,
			Role:     model.Role(u.Role),
		})
		switch {
		case err == nil:
			stats.UsersCreated++
			byEmail[u.Email] = user.ID
		case errors.Is(err, apperrors.ErrEmailAlreadyRegistered):
			existing, findErr := s.users.FindByEmail(ctx, u.Email)
			if findErr != nil {
				return stats, fmt.Errorf("look up existing user %s: %w", u.Email, findErr)
			}
			if existing == nil {
				return stats, fmt.Errorf("user %s vanished during seeding", u.Email)
			}
			stats.UsersSkipped++
			byEmail[u.Email] = existing.ID
		default:
			return stats, fmt.Errorf("create user %s: %w", u.Email, err)
		}
	}

	for _, f := range fixture.Follows {
		follower, ok1 := byEmail[f.Follower]
		following, ok2 := byEmail[f.Following]
		if !ok1 || !ok2 {
			s.log.Warn("skipping follow with unknown user", zap.String("follower", f.Follower), zap.String("following", f.Following))
			continue
		}
		if err := s.social.Follow(ctx, follower, following); err != nil {
			return stats, fmt.Errorf("follow %s -> %s: %w", f.Follower, f.Following, err)
		}
		stats.Follows++
	}

	for _, r := range fixture.Recipes {
		author, ok := byEmail[r.Author]
		if !ok {
			s.log.Warn("skipping recipe with unknown author", zap.String("author", r.Author), zap.String("title", r.Title))
			continue
		}
		if _, err := s.recipes.Create(ctx, author, r.Title, r.Description); err != nil {
			return stats, fmt.Errorf("create recipe %q: %w", r.Title, err)
		}
		stats.Recipes++
	}

	return stats, nil
}
