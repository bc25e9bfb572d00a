// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"scout/internal/delivery/http/middleware"
	"scout/internal/delivery/http/response"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecruiterHandler holds dependencies for recruiter-related handlers.
type RecruiterHandler struct {
	uc     usecase.RecruiterUsecase
	logger *slog.Logger
}

// NewRecruiterHandler is the constructor for RecruiterHandler, injected by Fx.
func NewRecruiterHandler(uc usecase.RecruiterUsecase, logger *slog.Logger) *RecruiterHandler {
	return &RecruiterHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request DTOs ---

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`

	Phone          string `json:"phone"`
	Designation    string `json:"designation"`
	CompanyName    string `json:"company_name"`
	CompanyLogo    string `json:"company_logo"`
	Website        string `json:"website"`
	Industry       string `json:"industry"`
	MinCompanySize *int   `json:"min_company_size"`
	MaxCompanySize *int   `json:"max_company_size"`
	Country        string `json:"country"`
	State          string `json:"state"`
	City           string `json:"city"`
	Zip            string `json:"zip"`
	Address        string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name           *string `json:"name"`
	Password       *string `json:"password"`
	Phone          *string `json:"phone"`
	Designation    *string `json:"designation"`
	CompanyName    *string `json:"company_name"`
	CompanyLogo    *string `json:"company_logo"`
	Website        *string `json:"website"`
	Industry       *string `json:"industry"`
	MinCompanySize *int    `json:"min_company_size"`
	MaxCompanySize *int    `json:"max_company_size"`
	Country        *string `json:"country"`
	State          *string `json:"state"`
	City           *string `json:"city"`
	Zip            *string `json:"zip"`
	Address        *string `json:"address"`
}

type sendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// --- Response DTO ---

// recruiterProfileResponse is the public projection of a recruiter account.
// Credential material and the pending OTP challenge never leave the server.
type recruiterProfileResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	EmailVerified bool      `json:"email_verified"`

	Phone          string `json:"phone"`
	Designation    string `json:"designation"`
	CompanyName    string `json:"company_name"`
	CompanyLogo    string `json:"company_logo"`
	Website        string `json:"website"`
	Industry       string `json:"industry"`
	MinCompanySize *int   `json:"min_company_size"`
	MaxCompanySize *int   `json:"max_company_size"`
	Country        string `json:"country"`
	State          string `json:"state"`
	City           string `json:"city"`
	Zip            string `json:"zip"`
	Address        string `json:"address"`

	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toProfileResponse(recruiter *entity.Recruiter) *recruiterProfileResponse {
	return &recruiterProfileResponse{
		ID:             recruiter.ID,
		Email:          recruiter.Email,
		Name:           recruiter.Name,
		EmailVerified:  recruiter.EmailVerified,
		Phone:          recruiter.Phone,
		Designation:    recruiter.Designation,
		CompanyName:    recruiter.CompanyName,
		CompanyLogo:    recruiter.CompanyLogo,
		Website:        recruiter.Website,
		Industry:       recruiter.Industry,
		MinCompanySize: recruiter.MinCompanySize,
		MaxCompanySize: recruiter.MaxCompanySize,
		Country:        recruiter.Country,
		State:          recruiter.State,
		City:           recruiter.City,
		Zip:            recruiter.Zip,
		Address:        recruiter.Address,
		Verified:       recruiter.Verified,
		CreatedAt:      recruiter.CreatedAt,
		UpdatedAt:      recruiter.UpdatedAt,
	}
}

// setBearerToken exposes the fresh session token on the response header.
func setBearerToken(c echo.Context, token string) {
	c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+token)
}

// Register handles the recruiter registration request.
func (h *RecruiterHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:          input.Email,
		Password:       input.Password,
		Name:           input.Name,
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
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProfileResponse(output.Recruiter), "Recruiter registered successfully")
}

// Login handles the recruiter login request. The session token travels on the
// Authorization response header, not in the body.
func (h *RecruiterHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setBearerToken(c, output.AccessToken)

	return response.Success(c, http.StatusOK, toProfileResponse(output.Recruiter), "Login successful")
}

// GetProfile returns the profile of the session owner.
func (h *RecruiterHandler) GetProfile(c echo.Context) error {
	recruiterID, ok := middleware.RecruiterID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	output, err := h.uc.GetProfile(c.Request().Context(), recruiterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(output.Recruiter), "")
}

// VerifyToken confirms the presented session token is valid. Reaching this
// handler means the auth middleware already accepted it, so the response is
// simply the owner's profile.
func (h *RecruiterHandler) VerifyToken(c echo.Context) error {
	return h.GetProfile(c)
}

// UpdateProfile applies a partial profile update. The body is decoded
// strictly: unknown fields are rejected rather than silently dropped.
func (h *RecruiterHandler) UpdateProfile(c echo.Context) error {
	recruiterID, ok := middleware.RecruiterID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var input updateProfileRequest
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid profile update input")
	}

	output, err := h.uc.UpdateProfile(c.Request().Context(), recruiterID, usecase.UpdateProfileInput{
		Name:           input.Name,
		Password:       input.Password,
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
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(output.Recruiter), "Profile updated successfully")
}

// SendOTP issues a fresh email verification code.
func (h *RecruiterHandler) SendOTP(c echo.Context) error {
	var input sendOTPRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SendOTP(c.Request().Context(), usecase.SendOTPInput{Email: input.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "otp sent"}, "Verification code sent")
}

// VerifyOTP checks a presented verification code and, on success, issues a
// fresh session token on the Authorization response header.
func (h *RecruiterHandler) VerifyOTP(c echo.Context) error {
	var input verifyOTPRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.VerifyOTP(c.Request().Context(), usecase.VerifyOTPInput{
		Email: input.Email,
		OTP:   input.OTP,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setBearerToken(c, output.AccessToken)

	return response.Success(c, http.StatusOK, toProfileResponse(output.Recruiter), "Email verified successfully")
}
