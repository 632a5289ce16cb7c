package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error on caller-supplied data
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidInputError represents malformed input rejected before any lookup,
// such as non-numeric path ids, unparseable JSON bodies or postal codes
// that are not 8 digits
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// UpstreamError wraps a failure reported by the database, the storage
// provider or the postal-code provider. The provider text is preserved
// for diagnostics.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents a failed admin credential or token check
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrStateNotFound        = &NotFoundError{Entity: "state"}
	ErrCityNotFound         = &NotFoundError{Entity: "city"}
	ErrNeighborhoodNotFound = &NotFoundError{Entity: "neighborhood"}
	ErrPropertyNotFound     = &NotFoundError{Entity: "property"}
	ErrAmenityNotFound      = &NotFoundError{Entity: "amenity"}
	ErrLeadNotFound         = &NotFoundError{Entity: "lead"}
	ErrCEPNotFound          = &NotFoundError{Entity: "postal code"}
)

// Input and Authentication Errors
var (
	ErrInvalidCEP          = &InvalidInputError{Message: "postal code must have 8 digits"}
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid credentials"}
	ErrMissingToken        = &AuthenticationError{Message: "missing or malformed authorization header"}
	ErrInvalidToken        = &AuthenticationError{Message: "invalid or expired token"}
	ErrNeighborhoodMissing = &ValidationError{Field: "neighborhood", Message: "a neighborhood id or name with city is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidInput checks if an error is an InvalidInputError
func IsInvalidInput(err error) bool {
	var invalidErr *InvalidInputError
	return errors.As(err, &invalidErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(message string) error {
	return &InvalidInputError{Message: message}
}

// NewUpstreamError wraps a provider failure
func NewUpstreamError(provider string, err error) error {
	return &UpstreamError{Provider: provider, Err: err}
}
