package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("login: %w", NewUnauthorizedError("Invalid credentials", true))

	var httpErr *HTTPError
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.True(t, errors.Is(err, &HTTPError{}))
}

func TestBadRequestCustomCode(t *testing.T) {
	code := "DIA_SEM_AULA_OUT_OF_RANGE"
	err := NewBadRequestError("date outside term", true, &code, nil, nil)

	assert.Equal(t, code, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

func TestWithMessageCopies(t *testing.T) {
	base := NewConflictError("A Professor with this Email already exists", true, nil)
	copied := base.WithMessage("duplicate")

	assert.Equal(t, "duplicate", copied.Message)
	assert.Equal(t, "A Professor with this Email already exists", base.Message)
	assert.Equal(t, "CONFLICT", copied.Code)
}

func TestNewTooManyRequestsError(t *testing.T) {
	err := NewTooManyRequestsError("Too many login attempts")
	assert.Equal(t, http.StatusTooManyRequests, err.Status)
	assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
}
