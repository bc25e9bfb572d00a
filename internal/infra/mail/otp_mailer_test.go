package mail

import (
	"context"
	"testing"

	"scout/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPMailer_RequiresConfiguration(t *testing.T) {
	_, err := NewSMTPMailer(&config.Config{})
	assert.Error(t, err)

	cfg := &config.Config{}
	cfg.SMTP = &config.SMTPConfig{Host: "localhost"}
	_, err = NewSMTPMailer(cfg)
	assert.Error(t, err)
}

func TestSendOTPEmail_HonorsCancelledContext(t *testing.T) {
	cfg := &config.Config{}
	cfg.SMTP = &config.SMTPConfig{Host: "localhost", Port: "1025", From: "no-reply@scout.local"}
	mailer, err := NewSMTPMailer(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = mailer.SendOTPEmail(ctx, "a@x.com", "123456", "1 min")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildOTPMessage(t *testing.T) {
	message := string(buildOTPMessage("no-reply@scout.local", "a@x.com", "042137", "1 min"))

	assert.Contains(t, message, "To: a@x.com\r\n")
	assert.Contains(t, message, "From: no-reply@scout.local\r\n")
	assert.Contains(t, message, "042137")
	assert.Contains(t, message, "valid for 1 min")
}
