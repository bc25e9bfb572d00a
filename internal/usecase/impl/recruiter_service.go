// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"scout/config"
	deliverycontext "scout/internal/delivery/context"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/domain/service"
	"scout/internal/usecase"
)

const defaultOTPTTL = time.Minute

// recruiterService implements the RecruiterUsecase interface.
type recruiterService struct {
	txManager     repository.TransactionManager
	recruiterRepo repository.RecruiterRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	otpGenerator  service.OTPGenerator
	mailer        service.Mailer
	otpTTL        time.Duration
	logger        *slog.Logger

	now func() time.Time
}

// RecruiterServiceParams holds dependencies for recruiterService, injected by Fx.
type RecruiterServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	RecruiterRepo repository.RecruiterRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	OTPGenerator  service.OTPGenerator
	Mailer        service.Mailer
	Config        *config.Config
	Logger        *slog.Logger
}

// NewRecruiterService is the constructor for recruiterService. It receives all dependencies as interfaces.
func NewRecruiterService(params RecruiterServiceParams) usecase.RecruiterUsecase {
	otpTTL := defaultOTPTTL
	if params.Config != nil && params.Config.OTP != nil && params.Config.OTP.TTL > 0 {
		otpTTL = params.Config.OTP.TTL
	}

	return &recruiterService{
		txManager:     params.TxManager,
		recruiterRepo: params.RecruiterRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		otpGenerator:  params.OTPGenerator,
		mailer:        params.Mailer,
		otpTTL:        otpTTL,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recruiterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail lower-cases and trims an address. Every operation keyed by
// email goes through this, so lookups and storage agree on case.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new recruiter account with a hashed password.
func (srv *recruiterService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting recruiter registration", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	recruiter := &entity.Recruiter{
		Email:          email,
		Name:           input.Name,
		PasswordHash:   hash,
		Phone:          input.Phone,
		Designation:    input.Designation,
		CompanyName:    input.CompanyName,
		CompanyLogo:    input.CompanyLogo,
		Website:        input.Website,
		Industry:       input.Industry,
		MinCompanySize: input.MinCompanySize,
		MaxCompanySize: input.MaxCompanySize,
		Country:        input.Country,
		State:          input.State,
		City:           input.City,
		Zip:            input.Zip,
		Address:        input.Address,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RecruiterRepo().Create(ctx, recruiter)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register recruiter", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Recruiter registered", slog.Any("recruiterID", recruiter.ID))

	return &usecase.RegisterOutput{Recruiter: recruiter}, nil
}

// Login verifies credentials and issues a fresh session token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (srv *recruiterService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	recruiter, err := srv.recruiterRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterNotFound) {
			srv.log(ctx).Info("Login attempt for unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up recruiter for login")
	}

	if !srv.hasher.Check(input.Password, recruiter.PasswordHash) {
		srv.log(ctx).Info("Login attempt with wrong password", slog.Any("recruiterID", recruiter.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Generate(recruiter.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Recruiter logged in", slog.Any("recruiterID", recruiter.ID))

	return &usecase.LoginOutput{AccessToken: token, Recruiter: recruiter}, nil
}

// GetProfile fetches the recruiter owning the current session.
func (srv *recruiterService) GetProfile(ctx context.Context, recruiterID uuid.UUID) (*usecase.ProfileOutput, error) {
	recruiter, err := srv.recruiterRepo.FindByID(ctx, recruiterID)
	if err != nil {
		if errors.Is(err, repository.ErrRecruiterNotFound) {
			return nil, domainerrors.ErrRecruiterNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch recruiter profile")
	}

	return &usecase.ProfileOutput{Recruiter: recruiter}, nil
}

// UpdateProfile applies a partial profile update. Nil input fields keep the
// stored value; the whole read-modify-write runs in one transaction. A
// provided password is hashed and replaces the stored credential hash.
func (srv *recruiterService) UpdateProfile(ctx context.Context, recruiterID uuid.UUID, input usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	var passwordHash string
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}
		passwordHash = hash
	}

	var updated *entity.Recruiter
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recruiterRepo := repoFactory.RecruiterRepo()

		recruiter, err := recruiterRepo.FindByID(ctx, recruiterID)
		if err != nil {
			if errors.Is(err, repository.ErrRecruiterNotFound) {
				return domainerrors.ErrRecruiterNotFound
			}

			return errors.Wrap(err, "failed to fetch recruiter for update")
		}

		applyProfileUpdate(recruiter, input)

		if input.Password != nil {
			recruiter.PasswordHash = passwordHash
		}

		if err := recruiterRepo.Update(ctx, recruiter); err != nil {
			return err
		}

		updated = recruiter

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update recruiter profile", slog.Any("recruiterID", recruiterID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Recruiter profile updated", slog.Any("recruiterID", recruiterID))

	return &usecase.ProfileOutput{Recruiter: updated}, nil
}

// SendOTP stores a fresh verification code and emails it to the recruiter.
// The delivery call runs inside the same transaction that stores the code,
// so a mailer failure rolls the pending challenge back.
func (srv *recruiterService) SendOTP(ctx context.Context, input usecase.SendOTPInput) error {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Issuing email verification code", slog.String("email", email))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recruiterRepo := repoFactory.RecruiterRepo()

		recruiter, err := recruiterRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrRecruiterNotFound) {
				return domainerrors.ErrRecruiterNotFound
			}

			return errors.Wrap(err, "failed to fetch recruiter for otp")
		}

		code, err := srv.otpGenerator.Generate()
		if err != nil {
			return errors.Wrap(err, "failed to generate otp")
		}

		// A repeated request simply overwrites the previous challenge.
		recruiter.IssueEmailOTP(code, srv.now().Add(srv.otpTTL))

		if err := recruiterRepo.Update(ctx, recruiter); err != nil {
			return err
		}

		if err := srv.mailer.SendOTPEmail(ctx, recruiter.Email, code, humanizeValidity(srv.otpTTL)); err != nil {
			return domainerrors.ErrOTPDeliveryFailed.WrapMessage(err.Error())
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue verification code", slog.String("email", email), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Verification code issued", slog.String("email", email))

	return nil
}

// VerifyOTP checks a presented code against the stored challenge. On success
// the challenge is consumed, the email is marked verified and a fresh session
// token is issued.
func (srv *recruiterService) VerifyOTP(ctx context.Context, input usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error) {
	email := normalizeEmail(input.Email)

	var verified *entity.Recruiter
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recruiterRepo := repoFactory.RecruiterRepo()

		recruiter, err := recruiterRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrRecruiterNotFound) {
				return domainerrors.ErrRecruiterNotFound
			}

			return errors.Wrap(err, "failed to fetch recruiter for otp verification")
		}

		switch recruiter.ValidateEmailOTP(input.OTP, srv.now()) {
		case entity.OTPExpired:
			return domainerrors.ErrOTPExpired
		case entity.OTPMismatch:
			return domainerrors.ErrOTPMismatch
		case entity.OTPAccepted:
		}

		recruiter.ConsumeEmailOTP()

		if err := recruiterRepo.Update(ctx, recruiter); err != nil {
			return err
		}

		verified = recruiter

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Verification code rejected", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Generate(verified.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Email verified", slog.Any("recruiterID", verified.ID))

	return &usecase.VerifyOTPOutput{AccessToken: token, Recruiter: verified}, nil
}

// applyProfileUpdate copies the non-nil input fields onto the entity.
func applyProfileUpdate(recruiter *entity.Recruiter, input usecase.UpdateProfileInput) {
	if input.Name != nil {
		recruiter.Name = *input.Name
	}
	if input.Phone != nil {
		recruiter.Phone = *input.Phone
	}
	if input.Designation != nil {
		recruiter.Designation = *input.Designation
	}
	if input.CompanyName != nil {
		recruiter.CompanyName = *input.CompanyName
	}
	if input.CompanyLogo != nil {
		recruiter.CompanyLogo = *input.CompanyLogo
	}
	if input.Website != nil {
		recruiter.Website = *input.Website
	}
	if input.Industry != nil {
		recruiter.Industry = *input.Industry
	}
	if input.MinCompanySize != nil {
		recruiter.MinCompanySize = input.MinCompanySize
	}
	if input.MaxCompanySize != nil {
		recruiter.MaxCompanySize = input.MaxCompanySize
	}
	if input.Country != nil {
		recruiter.Country = *input.Country
	}
	if input.State != nil {
		recruiter.State = *input.State
	}
	if input.City != nil {
		recruiter.City = *input.City
	}
	if input.Zip != nil {
		recruiter.Zip = *input.Zip
	}
	if input.Address != nil {
		recruiter.Address = *input.Address
	}
}

// humanizeValidity renders a TTL the way the email copy expects ("1 min").
func humanizeValidity(ttl time.Duration) string {
	if ttl < time.Minute {
		return fmt.Sprintf("%d sec", int(ttl.Seconds()))
	}

	return fmt.Sprintf("%d min", int(ttl.Minutes()))
}
