package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no caller identity is present.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the caller exists but lacks the admin role.
	ErrForbidden = errors.New("admin role required")
	// ErrUnauthorized is returned when the target resource does not exist
	// or is not owned by the caller. The two cases are deliberately not
	// distinguished so existence of other admins' resources never leaks.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNameRequired is returned when a required name field is empty.
	ErrNameRequired = errors.New("name is required")
	// ErrStoreRequired is returned when a store id is missing.
	ErrStoreRequired = errors.New("store id is required")
	// ErrCategoryRequired is returned when a category id is missing.
	ErrCategoryRequired = errors.New("category id is required")
	// ErrSubcategoryRequired is returned when a subcategory id is missing.
	ErrSubcategoryRequired = errors.New("subcategory id is required")
	// ErrPriceInvalid is returned when a price is missing or negative.
	ErrPriceInvalid = errors.New("price must be a non-negative amount")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
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
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Ownership failures
// surface as 404 so a caller cannot probe for resources it does not own.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrStoreRequired),
		errors.Is(err, ErrCategoryRequired),
		errors.Is(err, ErrSubcategoryRequired),
		errors.Is(err, ErrPriceInvalid):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
