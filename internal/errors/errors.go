package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain error independently of its transport status.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindStorage    Kind = "storage"
)

// Error is a domain error with the HTTP status it is reported with.
type Error struct {
	Kind       Kind
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches errors by code so that derived errors (see WithMessage) still
// satisfy errors.Is against the sentinel they came from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithMessage returns a copy of e carrying a more specific message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

func newError(kind Kind, status int, code, msg string) *Error {
	return &Error{Kind: kind, StatusCode: status, Code: code, Message: msg}
}

var (
	// ErrMissingParameters is returned when a required input is absent.
	ErrMissingParameters = newError(KindValidation, http.StatusNotFound, "MISSING_PARAMETERS", "Missing parameters")
	// ErrInvalidParameterType is returned when an input has the wrong JSON type.
	ErrInvalidParameterType = newError(KindValidation, http.StatusUnprocessableEntity, "INVALID_PARAMETER_TYPE", "Check the type of parameters")
	// ErrPasswordTooShort is returned when a password has fewer than six characters.
	ErrPasswordTooShort = newError(KindValidation, http.StatusUnprocessableEntity, "PASSWORD_TOO_SHORT", "Password must be 6 or more characters")
	// ErrPasswordTooLong is returned when a password exceeds what bcrypt can hash.
	ErrPasswordTooLong = newError(KindValidation, http.StatusUnprocessableEntity, "PASSWORD_TOO_LONG", "Password must be at most 72 bytes")
	// ErrInvalidRole is returned when a sign-up role is neither NORMAL nor ADMIN.
	ErrInvalidRole = newError(KindValidation, http.StatusUnprocessableEntity, "INVALID_ROLE", "Role must be NORMAL or ADMIN")
	// ErrCannotFollowSelf is returned when a user tries to follow themselves.
	ErrCannotFollowSelf = newError(KindValidation, http.StatusUnprocessableEntity, "CANNOT_FOLLOW_SELF", "Cannot follow yourself")

	// ErrMissingToken is returned when the Authorization header is absent.
	ErrMissingToken = newError(KindAuth, http.StatusNotFound, "MISSING_TOKEN", "Missing parameters: token")
	// ErrInvalidToken is returned for malformed, expired, tampered or revoked tokens.
	ErrInvalidToken = newError(KindAuth, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	// ErrInvalidPassword is returned when login credentials do not match.
	ErrInvalidPassword = newError(KindAuth, http.StatusUnauthorized, "INVALID_PASSWORD", "Invalid Password")
	// ErrAdminOnly is returned when a non-admin calls an admin operation.
	ErrAdminOnly = newError(KindAuth, http.StatusUnauthorized, "ADMIN_ONLY", "Only admins can delete users")
	// ErrNotRecipeCreator is returned when someone other than the creator edits or deletes a recipe.
	ErrNotRecipeCreator = newError(KindAuth, http.StatusUnauthorized, "NOT_RECIPE_CREATOR", "Only the creator can update the recipe")
	// ErrAccessDenied is returned when a token carries an unrecognized role.
	ErrAccessDenied = newError(KindAuth, http.StatusUnauthorized, "ACCESS_DENIED", "Access denied")

	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = newError(KindNotFound, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	// ErrProfileNotFound is returned by profile lookups; reported as 409.
	ErrProfileNotFound = newError(KindNotFound, http.StatusConflict, "PROFILE_NOT_FOUND", "User not found")
	// ErrRecipeNotFound is returned when a recipe does not exist.
	ErrRecipeNotFound = newError(KindNotFound, http.StatusNotFound, "RECIPE_NOT_FOUND", "Recipe not found")

	// ErrEmailAlreadyRegistered is returned on sign-up with a taken email.
	ErrEmailAlreadyRegistered = newError(KindConflict, http.StatusConflict, "EMAIL_ALREADY_REGISTERED", "E-mail already registered")
	// ErrEmailNotRegistered is returned on login with an unknown email.
	ErrEmailNotRegistered = newError(KindConflict, http.StatusConflict, "EMAIL_NOT_REGISTERED", "E-mail not registered")
)

// MissingParameter reports a single missing named input.
func MissingParameter(name string) *Error {
	return ErrMissingParameters.WithMessage("Missing parameters: " + name)
}

// StorageError wraps a database or connectivity failure. Its detail is logged
// but never rendered to clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err for operation op; nil stays nil.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// KindOf returns the taxonomy kind of err, or "" for unclassified errors.
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return KindStorage
	}
	return ""
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return NewHTTPError(domainErr.StatusCode, domainErr.Message, domainErr.Code)
	}
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "STORAGE_ERROR")
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
