// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"scout/config"
	"scout/internal/domain/service"
)

const defaultAccessTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService builds a token service around an explicit secret and TTL.
// The secret is handed over at construction rather than read from ambient
// state, so tests can inject their own.
func NewJWTService(secret string, ttl time.Duration) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		ttl = defaultAccessTokenTTL
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// NewJWTServiceFromConfig adapts the application config into NewJWTService.
func NewJWTServiceFromConfig(cfg *config.Config) (service.TokenService, error) {
	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return NewJWTService(cfg.SecretKey.Access, ttl)
}

// Generate creates a signed session token carrying the recruiter identity.
func (s *jwtService) Generate(recruiterID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": recruiterID.String(), // Subject (who the token is for)
		"iat": now.Unix(),           // Issued At
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate verifies the signature and expiry and returns the embedded
// recruiter identity. Every failure mode collapses into ErrInvalidToken so
// callers cannot distinguish a forged token from a stale one.
func (s *jwtService) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return uuid.Nil, service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, service.ErrInvalidToken
	}

	// A token is accepted only while its expiry is strictly in the future.
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil || !s.now().Before(exp.Time) {
		return uuid.Nil, service.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	recruiterID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, service.ErrInvalidToken
	}

	return recruiterID, nil
}
