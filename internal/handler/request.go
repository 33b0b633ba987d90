package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"cookenu/internal/auth"
	apperrors "cookenu/internal/errors"
)

// ClaimsContextKey is where the token middleware stores the verified claims.
const ClaimsContextKey = "user"

// MessageResponse is the body of endpoints that only acknowledge an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// bindAndValidate decodes the body into req and runs its validate tags.
// A decode failure means a field had the wrong JSON type.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrInvalidParameterType
	}
	if err := c.Validate(req); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.ErrInvalidParameterType
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	switch len(missing) {
	case 0:
		return apperrors.ErrInvalidParameterType
	case 1:
		return apperrors.MissingParameter(missing[0])
	default:
		return apperrors.ErrMissingParameters
	}
}

func claimsFrom(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(ClaimsContextKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", apperrors.MissingParameter("id")
	}
	return id, nil
}
