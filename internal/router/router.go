package router

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"cookenu/internal/auth"
	"cookenu/internal/config"
	apperrors "cookenu/internal/errors"
	"cookenu/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *zap.Logger,
	authenticator *auth.Authenticator,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	recipeHandler *handler.RecipeHandler,
	healthHandler *handler.HealthHandler,
) {
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler(log)

	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: cfg.RequestTimeout,
	}))

	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/signup", authHandler.SignUp)
	e.POST("/login", authHandler.Login)

	// Secured routes. Attached per prefix: a group-level Use on "" would
	// put every unknown path behind the token check.
	requireToken := TokenMiddleware(authenticator)
	e.POST("/logout", authHandler.Logout, requireToken)

	user := e.Group("/user", requireToken)
	user.POST("/follow", userHandler.Follow)
	user.POST("/unfollow", userHandler.Unfollow)
	user.GET("/feed", userHandler.Feed)
	user.GET("/profile", userHandler.GetProfile)
	user.GET("/:id", userHandler.GetAnotherProfile)
	user.DELETE("/:id", userHandler.DeleteUser)

	recipe := e.Group("/recipe", requireToken)
	recipe.POST("", recipeHandler.CreateRecipe)
	recipe.GET("/:id", recipeHandler.GetRecipe)
	recipe.PUT("/:id", recipeHandler.EditRecipe)
	recipe.DELETE("/:id", recipeHandler.DeleteRecipe)
}

// TokenMiddleware reads the Authorization header, raw or with a Bearer
// prefix, and stores the verified claims under handler.ClaimsContextKey.
func TokenMiddleware(authenticator *auth.Authenticator) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  handler.ClaimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authenticator.Authenticate(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization)) == "" {
				return apperrors.ErrMissingToken
			}
			return apperrors.ErrInvalidToken
		},
	})
}

// ErrorHandler renders every error as an ErrorResponse with its mapped status.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *apperrors.HTTPError
		var echoErr *echo.HTTPError
		if apperrors.KindOf(err) == "" && errors.As(err, &echoErr) {
			// routing misses, method mismatches, timeouts
			httpErr = apperrors.NewHTTPError(echoErr.Code, http.StatusText(echoErr.Code), statusCode(echoErr.Code))
		} else {
			httpErr = apperrors.MapErrorToHTTP(err)
		}

		if httpErr.StatusCode >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Error(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(httpErr.StatusCode)
		} else {
			writeErr = c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		if writeErr != nil {
			log.Warn("write error response", zap.Error(writeErr))
		}
	}
}

func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		HandleError:  true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports fields by their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
