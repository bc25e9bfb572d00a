// Package mail implements the outbound email delivery collaborator over SMTP.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"

	"scout/config"
	"scout/internal/domain/service"
)

// smtpMailer delivers verification codes through a plain SMTP relay.
type smtpMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration must be provided")
	}
	if cfg.SMTP.Host == "" || cfg.SMTP.Port == "" || cfg.SMTP.From == "" {
		return nil, errors.New("smtp host, port and from address must be provided")
	}

	return &smtpMailer{
		host:     strings.TrimSpace(cfg.SMTP.Host),
		port:     strings.TrimSpace(cfg.SMTP.Port),
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     strings.TrimSpace(cfg.SMTP.From),
	}, nil
}

// SendOTPEmail delivers the verification code. The caller runs this inside
// the same transaction that stores the code, so a delivery error here rolls
// the pending challenge back.
func (m *smtpMailer) SendOTPEmail(ctx context.Context, address, code, validity string) error {
	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	default:
	}

	message := buildOTPMessage(m.from, address, code, validity)

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{address}, message); err != nil {
		return errors.Wrap(err, "failed to send otp email")
	}

	return nil
}

func buildOTPMessage(from, to, code, validity string) []byte {
	subject := "Your verification code"
	body := fmt.Sprintf(
		"Your email verification code is %s. It is valid for %s.\r\n\r\nIf you did not request this, ignore this email.",
		code, validity,
	)

	var message strings.Builder
	message.WriteString(fmt.Sprintf("From: %s\r\n", from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	message.WriteString(body)
	message.WriteString("\r\n")

	return []byte(message.String())
}
