// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"scout/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new recruiter account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string

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
}

// LoginInput defines the data required for a recruiter to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries a partial profile update. Nil fields are left
// untouched; non-nil fields overwrite the stored value, including with an
// empty string. A non-nil Password is hashed and replaces the stored
// credential hash.
type UpdateProfileInput struct {
	Name           *string
	Password       *string
	Phone          *string
	Designation    *string
	CompanyName    *string
	CompanyLogo    *string
	Website        *string
	Industry       *string
	MinCompanySize *int
	MaxCompanySize *int
	Country        *string
	State          *string
	City           *string
	Zip            *string
	Address        *string
}

// SendOTPInput identifies the account that should receive a verification code.
type SendOTPInput struct {
	Email string
}

// VerifyOTPInput carries a presented verification code.
type VerifyOTPInput struct {
	Email string
	OTP   string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created recruiter.
type RegisterOutput struct {
	Recruiter *entity.Recruiter
}

// LoginOutput returns the authenticated recruiter and a fresh session token.
type LoginOutput struct {
	AccessToken string
	Recruiter   *entity.Recruiter
}

// ProfileOutput returns the recruiter owning the current session.
type ProfileOutput struct {
	Recruiter *entity.Recruiter
}

// VerifyOTPOutput returns the verified recruiter and a fresh session token.
type VerifyOTPOutput struct {
	AccessToken string
	Recruiter   *entity.Recruiter
}

// RecruiterUsecase defines the interface for recruiter-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type RecruiterUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, recruiterID uuid.UUID) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, recruiterID uuid.UUID, input UpdateProfileInput) (*ProfileOutput, error)
	SendOTP(ctx context.Context, input SendOTPInput) error
	VerifyOTP(ctx context.Context, input VerifyOTPInput) (*VerifyOTPOutput, error)
}
