package service

import "context"

// Mailer is the outbound email delivery collaborator. The account service
// treats a delivery failure as a reason to abort the operation that triggered
// the send, so implementations must return an error rather than swallow one.
type Mailer interface {
	// SendOTPEmail delivers a verification code to the given address together
	// with a human-readable validity window such as "1 min".
	SendOTPEmail(ctx context.Context, address, code, validity string) error
}
