package service

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Validate for any token that cannot be
// accepted: bad signature, malformed payload or an expiry in the past.
// Callers are not told which, on purpose.
var ErrInvalidToken = errors.New("invalid token")

// TokenService defines the interface for issuing and validating session
// bearer tokens. A token is a signed capability carrying a recruiter identity
// and an expiry; there is no revocation store.
type TokenService interface {
	// Generate creates a signed session token for the given recruiter.
	Generate(recruiterID uuid.UUID) (string, error)

	// Validate checks signature and expiry and returns the embedded recruiter
	// identity, or ErrInvalidToken.
	Validate(token string) (uuid.UUID, error)
}
