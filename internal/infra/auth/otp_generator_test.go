package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGenerator_FormatIsStable(t *testing.T) {
	generator := NewOTPGenerator()
	pattern := regexp.MustCompile(`^[0-9]{6}$`)

	// Every generated code is exactly six digits, including zero-padded ones.
	for range 1000 {
		code, err := generator.Generate()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestOTPGenerator_CodesVary(t *testing.T) {
	generator := NewOTPGenerator()

	seen := make(map[string]struct{}, 100)
	for range 100 {
		code, err := generator.Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}

	// 100 draws from a million-value space should not collapse to a handful.
	assert.Greater(t, len(seen), 90)
}
