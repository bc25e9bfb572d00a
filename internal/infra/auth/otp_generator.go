// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"scout/internal/domain/service"
)

const otpDigits = 6

var otpMax = big.NewInt(1_000_000)

// otpGenerator draws 6-digit verification codes from crypto/rand. The code is
// a security credential, so math/rand is not acceptable here.
type otpGenerator struct{}

// NewOTPGenerator is the constructor for otpGenerator.
func NewOTPGenerator() service.OTPGenerator {
	return &otpGenerator{}
}

// Generate returns a numeric string of exactly 6 characters, left-padded with
// zeros. Every value in [000000, 999999] is equally likely.
func (g *otpGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", errors.Wrap(err, "failed to draw random otp")
	}

	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
