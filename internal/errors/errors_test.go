package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorIs(t *testing.T) {
	err := fmt.Errorf("lookup failed: %w", ErrCityNotFound)

	assert.True(t, errors.Is(err, ErrCityNotFound))
	assert.False(t, errors.Is(err, ErrStateNotFound))
	assert.True(t, IsNotFound(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("email", "must be a valid email address")

	assert.True(t, IsValidation(err))
	assert.Equal(t, "validation error: email - must be a valid email address", err.Error())

	bare := &ValidationError{Message: "name is required"}
	assert.Equal(t, "validation error: name is required", bare.Error())
}

func TestUpstreamErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUpstreamError("postgres", cause)

	assert.True(t, IsUpstream(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "postgres")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestInvalidInput(t *testing.T) {
	assert.True(t, IsInvalidInput(ErrInvalidCEP))
	assert.False(t, IsInvalidInput(ErrCEPNotFound))

	err := NewInvalidInputError("id must be a positive integer")
	assert.True(t, IsInvalidInput(err))
	assert.Equal(t, "id must be a positive integer", err.Error())
}

func TestAuthentication(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.False(t, IsAuthentication(ErrPropertyNotFound))
}

func TestHelpersRejectUnrelatedErrors(t *testing.T) {
	plain := errors.New("something else")

	assert.False(t, IsNotFound(plain))
	assert.False(t, IsValidation(plain))
	assert.False(t, IsUpstream(plain))
}
