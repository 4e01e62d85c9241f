package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ValidationError, "invalid input", "field required")
	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "field required", err.Detail)
	assert.Equal(t, 400, err.HTTPStatus)
}

func TestWrap(t *testing.T) {
	originalErr := fmt.Errorf("original error")
	wrappedErr := Wrap(originalErr, DatabaseError, "database operation failed")

	assert.Equal(t, DatabaseError, wrappedErr.Type)
	assert.Equal(t, "database operation failed", wrappedErr.Message)
	assert.Equal(t, originalErr.Error(), wrappedErr.Detail)
	assert.Equal(t, 500, wrappedErr.HTTPStatus)
	assert.Equal(t, originalErr, wrappedErr.Raw)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, DatabaseError, "no-op"))
}

func TestNotFound(t *testing.T) {
	err := NotFound("Trip", 123)
	assert.Equal(t, NotFoundError, err.Type)
	assert.Equal(t, "Trip not found", err.Message)
	assert.Equal(t, "ID: 123", err.Detail)
	assert.Equal(t, 404, err.HTTPStatus)
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed("Invalid payload", "text is required")
	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, "Invalid payload", err.Message)
	assert.Equal(t, "text is required", err.Detail)
	assert.Equal(t, 400, err.HTTPStatus)
}

func TestNewDatabaseError(t *testing.T) {
	originalErr := fmt.Errorf("connection failed")
	err := NewDatabaseError(originalErr)
	assert.Equal(t, DatabaseError, err.Type)
	assert.Equal(t, "Database operation failed", err.Message)
	assert.Equal(t, 500, err.HTTPStatus)
	assert.Equal(t, originalErr, err.Raw)
}

func TestTripNotFound(t *testing.T) {
	err := TripNotFound("abc-123")
	assert.Equal(t, TripNotFoundError, err.Type)
	assert.Equal(t, "Trip ID: abc-123", err.Detail)
	assert.Equal(t, 404, err.HTTPStatus)
}

func TestRateLimitExceeded(t *testing.T) {
	err := RateLimitExceeded("Too many requests", 30)
	assert.Equal(t, RateLimitError, err.Type)
	assert.Equal(t, "Retry after 30 seconds", err.Detail)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestExternalServiceFailed(t *testing.T) {
	originalErr := fmt.Errorf("timeout")
	err := ExternalServiceFailed("OpenAI", originalErr)
	assert.Equal(t, ExternalServiceError, err.Type)
	assert.Equal(t, "OpenAI request failed", err.Message)
	assert.Equal(t, 502, err.HTTPStatus)
	assert.Equal(t, originalErr, err.Raw)
}

func TestErrorString(t *testing.T) {
	err := New(ValidationError, "invalid input", "field required")
	assert.Equal(t, "VALIDATION_ERROR: invalid input (field required)", err.Error())

	err = New(ServerError, "boom", "")
	assert.Equal(t, "SERVER_ERROR: boom", err.Error())
}
