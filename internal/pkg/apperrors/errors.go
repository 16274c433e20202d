package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Catalog errors
var (
	ErrDistrictNotFound = errors.New("district not found")
	ErrImageNotFound    = errors.New("gallery image not found")
	ErrCatalogInvalid   = errors.New("catalog is invalid")
)

// View state errors
var (
	ErrUnknownView         = errors.New("unknown view")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnknownCategory     = errors.New("unknown service record category")
)

// Translation errors
var (
	ErrMissingKey = errors.New("missing translation key")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionInvalid  = errors.New("invalid session token")
	ErrSessionExpired  = errors.New("session token expired")
	ErrSessionClosed   = errors.New("session manager closed")
	ErrSessionLimit    = errors.New("session limit reached")
)

// NewDistrictNotFoundError reports a district id that is not in the catalog
func NewDistrictNotFoundError(id string) *CustomError {
	return NewCustomError(ErrDistrictNotFound, fmt.Sprintf("district %q not found", id)).
		WithStatusMsg(fmt.Sprintf("District %q does not exist", id))
}

// NewImageNotFoundError reports a gallery image id that is not in the catalog
func NewImageNotFoundError(id string) *CustomError {
	return NewCustomError(ErrImageNotFound, fmt.Sprintf("gallery image %q not found", id)).
		WithStatusMsg(fmt.Sprintf("Image %q is not part of the gallery", id))
}

// NewSessionLimitError reports that no more view roots can be mounted
func NewSessionLimitError(limit int) *CustomError {
	return NewCustomError(ErrSessionLimit, fmt.Sprintf("%d sessions already mounted", limit)).
		WithStatusMsg("Too many visitors right now, please try again shortly").
		WithDetails(map[string]interface{}{"limit": limit})
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
	Details   map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}
