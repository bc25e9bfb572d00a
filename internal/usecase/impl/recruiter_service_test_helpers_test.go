package impl

import (
	"io"
	"log/slog"
	"time"

	"scout/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     12,
			AccessTokenTTL: 24 * time.Hour,
		},
		OTP: &config.OTPConfig{
			TTL: time.Minute,
		},
	}
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
