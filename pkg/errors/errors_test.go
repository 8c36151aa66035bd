package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("module", "com.example.mod")
	assert.Equal(t, "module com.example.mod not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsNotFound(err))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "endpoints", Message: "must not be empty"}
	assert.Contains(t, err.Error(), "endpoints")
	assert.True(t, IsValidationError(err))
}

func TestAPIError(t *testing.T) {
	err := &APIError{Endpoint: "https://example.org/", StatusCode: 503, Message: "unavailable"}
	assert.Contains(t, err.Error(), "status 503")
	assert.True(t, IsRegistryUnavailable(err))

	clientErr := &APIError{Endpoint: "https://example.org/", StatusCode: 404, Message: "missing"}
	assert.False(t, IsRegistryUnavailable(clientErr))
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, WrapParse("json", "modules.json", nil))
	assert.NoError(t, WrapIO("write", "/tmp/repo.json", nil))
	assert.NoError(t, WrapAPI("https://example.org/", 500, nil))

	inner := errors.New("unexpected end of JSON input")
	err := WrapParse("json", "modules.json", inner)
	require.Error(t, err)
	assert.True(t, errors.Is(err, inner))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "json", parseErr.Format)
}
