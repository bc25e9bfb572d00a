package middleware

import (
	"strings"

	"scout/internal/delivery/http/response"
	"scout/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyRecruiterID is where Authenticate stores the session owner's ID.
const ContextKeyRecruiterID = "recruiterID"

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the Authorization header and
// stashes the recruiter ID on the request context. Every failure is a 401
// with the same business code; callers learn nothing about why.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		recruiterID, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(ContextKeyRecruiterID, recruiterID)

		return next(c)
	}
}

// RecruiterID extracts the authenticated recruiter's ID set by Authenticate.
func RecruiterID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyRecruiterID).(uuid.UUID)

	return id, ok
}
