package validator

import (
	"net/http"
	"testing"

	domainerrors "scout/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&loginPayload{Email: "hiring@acme.com", Password: "Password123!"})

	require.NoError(t, err)
}

func TestValidate_TagViolationSurfacesValidationFailed(t *testing.T) {
	v := New()

	err := v.Validate(&loginPayload{Password: "Password123!"})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Email")
}
