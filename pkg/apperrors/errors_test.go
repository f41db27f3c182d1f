package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorString(t *testing.T) {
	t.Parallel()

	appErr := New(CodeNotFound, "users", "User not found", http.StatusNotFound)
	assert.Equal(t, "[users:NOT_FOUND] User not found", appErr.Error())

	wrapped := Wrap(errors.New("sql: no rows"), CodeDatabaseError, "users", "Lookup failed", http.StatusInternalServerError)
	assert.Contains(t, wrapped.Error(), "sql: no rows")
}

func TestAppError_As(t *testing.T) {
	t.Parallel()

	var appErr *AppError
	err := error(NewDuplicateRequestError())

	require.True(t, As(err, &appErr))
	assert.Equal(t, CodeConflict, appErr.Code)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
}

func TestAppError_MarshalHidesInternals(t *testing.T) {
	t.Parallel()

	appErr := Wrap(errors.New("dial tcp: refused"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "dial tcp")
	assert.NotContains(t, string(data), "500")
	assert.Contains(t, string(data), "INTERNAL_ERROR")
}

func TestValidationError_CarriesDetails(t *testing.T) {
	t.Parallel()

	appErr := ValidationError(map[string]string{"email": "Must be a valid email address"})
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	data, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Must be a valid email address")
}
