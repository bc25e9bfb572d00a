// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recruiter is the account-holding entity of the platform. It carries the
// login credential, the email-verification challenge state and the free-form
// company profile a recruiter fills in after signing up.
type Recruiter struct {
	ID             uuid.UUID  // The unique identifier, assigned by the store at creation.
	Email          string     // Login identifier; stored lower-cased, unique across recruiters.
	Name           string     // The recruiter's display name.
	PasswordHash   string     // bcrypt hash of the password. Never serialized to responses.
	EmailVerified  bool       // Becomes true only through a successful OTP verification.
	EmailOTP       *string    // The most recently issued, unconsumed challenge code. Nil when none is pending.
	EmailOTPExpiry *time.Time // The instant after which EmailOTP is no longer acceptable.

	Phone          string
	Designation    string
	CompanyName    string
	CompanyLogo    string
	Website        string
	Industry       string
	MinCompanySize *int
	MaxCompanySize *int
	Country        string
	State          string
	City           string
	Zip            string
	Address        string

	Verified  bool // Administrative verification flag, managed outside this subsystem.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OTPOutcome is the result of checking a presented code against the pending challenge.
type OTPOutcome int

const (
	// OTPAccepted means the code matched and the challenge was still live.
	OTPAccepted OTPOutcome = iota
	// OTPExpired means the challenge's expiry has passed. Expiry is checked
	// before the code itself, so a correct-but-stale code still reports expired.
	OTPExpired
	// OTPMismatch means the presented code does not equal the pending one.
	OTPMismatch
)

// IssueEmailOTP records a fresh challenge code, superseding any pending one.
func (r *Recruiter) IssueEmailOTP(code string, expiry time.Time) {
	r.EmailOTP = &code
	r.EmailOTPExpiry = &expiry
}

// ValidateEmailOTP checks a presented code against the pending challenge at
// the given instant. A challenge whose expiry is at or before now is expired
// regardless of the code. A recruiter with no pending challenge reports expired
// as well, since there is nothing left to match against.
func (r *Recruiter) ValidateEmailOTP(presented string, now time.Time) OTPOutcome {
	if r.EmailOTP == nil || r.EmailOTPExpiry == nil {
		return OTPExpired
	}
	if !now.Before(*r.EmailOTPExpiry) {
		return OTPExpired
	}
	if *r.EmailOTP != presented {
		return OTPMismatch
	}

	return OTPAccepted
}

// ConsumeEmailOTP marks the email as verified and clears the challenge so a
// spent code cannot linger in the store.
func (r *Recruiter) ConsumeEmailOTP() {
	r.EmailVerified = true
	r.EmailOTP = nil
	r.EmailOTPExpiry = nil
}
