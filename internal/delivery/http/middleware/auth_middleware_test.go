package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockSvc "scout/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc *mockSvc.MockTokenService, authHeader string) (echo.Context, *httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/recruiter", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(tokenSvc)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := m.Authenticate(next)(c)

	return c, rec, err
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	_, rec, err := runAuthenticate(t, tokenSvc, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	_, rec, err := runAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("bad-token").Return(uuid.Nil, errors.New("invalid token"))

	_, rec, err := runAuthenticate(t, tokenSvc, "Bearer bad-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidTokenSetsRecruiterID(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	recruiterID := uuid.New()
	tokenSvc.EXPECT().Validate("good-token").Return(recruiterID, nil)

	c, rec, err := runAuthenticate(t, tokenSvc, "Bearer good-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	got, ok := RecruiterID(c)
	require.True(t, ok)
	assert.Equal(t, recruiterID, got)
}
