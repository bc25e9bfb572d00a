package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scout/internal/delivery/http/middleware"
	"scout/internal/delivery/http/validator"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	mockUC "scout/internal/mocks/usecase"
	"scout/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*RecruiterHandler, *mockUC.MockRecruiterUsecase) {
	uc := mockUC.NewMockRecruiterUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRecruiterHandler(uc, logger), uc
}

func newEchoContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRecruiterHandler_Register_Created(t *testing.T) {
	h, uc := newTestHandler(t)

	recruiter := &entity.Recruiter{
		ID:           uuid.New(),
		Email:        "hiring@acme.com",
		Name:         "Avery Recruiter",
		PasswordHash: "never-leaves-the-server",
	}

	uc.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("usecase.RegisterInput")).
		Return(&usecase.RegisterOutput{Recruiter: recruiter}, nil)

	c, rec := newEchoContext(http.MethodPost, "/recruiter",
		`{"email":"hiring@acme.com","password":"Password123!","name":"Avery Recruiter"}`)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "hiring@acme.com")
	assert.NotContains(t, rec.Body.String(), "never-leaves-the-server")
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestRecruiterHandler_Register_MissingEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	c, _ := newEchoContext(http.MethodPost, "/recruiter", `{"password":"Password123!"}`)

	err := h.Register(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestRecruiterHandler_Login_SetsAuthorizationHeader(t *testing.T) {
	h, uc := newTestHandler(t)

	recruiter := &entity.Recruiter{ID: uuid.New(), Email: "hiring@acme.com"}
	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "hiring@acme.com", Password: "Password123!"}).
		Return(&usecase.LoginOutput{AccessToken: "signed.jwt.token", Recruiter: recruiter}, nil)

	c, rec := newEchoContext(http.MethodPost, "/recruiter/login",
		`{"email":"hiring@acme.com","password":"Password123!"}`)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get(echo.HeaderAuthorization))
}

func TestRecruiterHandler_GetProfile_RequiresContextID(t *testing.T) {
	h, _ := newTestHandler(t)

	c, _ := newEchoContext(http.MethodGet, "/recruiter", "")

	err := h.GetProfile(c)

	require.Error(t, err)
}

func TestRecruiterHandler_GetProfile_Success(t *testing.T) {
	h, uc := newTestHandler(t)

	recruiterID := uuid.New()
	recruiter := &entity.Recruiter{ID: recruiterID, Email: "hiring@acme.com"}
	uc.EXPECT().
		GetProfile(mock.Anything, recruiterID).
		Return(&usecase.ProfileOutput{Recruiter: recruiter}, nil)

	c, rec := newEchoContext(http.MethodGet, "/recruiter", "")
	c.Set(middleware.ContextKeyRecruiterID, recruiterID)

	require.NoError(t, h.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), recruiterID.String())
}

func TestRecruiterHandler_UpdateProfile_RejectsUnknownFields(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := newEchoContext(http.MethodPut, "/recruiter", `{"name":"New Name","hacker_field":true}`)
	c.Set(middleware.ContextKeyRecruiterID, uuid.New())

	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestRecruiterHandler_UpdateProfile_Success(t *testing.T) {
	h, uc := newTestHandler(t)

	recruiterID := uuid.New()
	updated := &entity.Recruiter{ID: recruiterID, Email: "hiring@acme.com", Name: "New Name"}
	uc.EXPECT().
		UpdateProfile(mock.Anything, recruiterID, mock.AnythingOfType("usecase.UpdateProfileInput")).
		Return(&usecase.ProfileOutput{Recruiter: updated}, nil)

	c, rec := newEchoContext(http.MethodPut, "/recruiter", `{"name":"New Name"}`)
	c.Set(middleware.ContextKeyRecruiterID, recruiterID)

	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "New Name")
}

func TestRecruiterHandler_UpdateProfile_ChangesPassword(t *testing.T) {
	h, uc := newTestHandler(t)

	recruiterID := uuid.New()
	updated := &entity.Recruiter{ID: recruiterID, Email: "hiring@acme.com", PasswordHash: "new_hash"}
	uc.EXPECT().
		UpdateProfile(mock.Anything, recruiterID, mock.MatchedBy(func(input usecase.UpdateProfileInput) bool {
			return input.Password != nil && *input.Password == "new-secret-9"
		})).
		Return(&usecase.ProfileOutput{Recruiter: updated}, nil)

	c, rec := newEchoContext(http.MethodPut, "/recruiter", `{"password":"new-secret-9"}`)
	c.Set(middleware.ContextKeyRecruiterID, recruiterID)

	require.NoError(t, h.UpdateProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "new-secret-9")
	assert.NotContains(t, rec.Body.String(), "new_hash")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRecruiterHandler_SendOTP_Success(t *testing.T) {
	h, uc := newTestHandler(t)

	uc.EXPECT().
		SendOTP(mock.Anything, usecase.SendOTPInput{Email: "hiring@acme.com"}).
		Return(nil)

	c, rec := newEchoContext(http.MethodPost, "/recruiter/send-otp", `{"email":"hiring@acme.com"}`)

	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "otp sent")
}

func TestRecruiterHandler_VerifyOTP_SetsAuthorizationHeader(t *testing.T) {
	h, uc := newTestHandler(t)

	recruiter := &entity.Recruiter{ID: uuid.New(), Email: "hiring@acme.com", EmailVerified: true}
	uc.EXPECT().
		VerifyOTP(mock.Anything, usecase.VerifyOTPInput{Email: "hiring@acme.com", OTP: "042137"}).
		Return(&usecase.VerifyOTPOutput{AccessToken: "fresh.jwt.token", Recruiter: recruiter}, nil)

	c, rec := newEchoContext(http.MethodPost, "/recruiter/verify-otp",
		`{"email":"hiring@acme.com","otp":"042137"}`)

	require.NoError(t, h.VerifyOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer fresh.jwt.token", rec.Header().Get(echo.HeaderAuthorization))
	assert.Contains(t, rec.Body.String(), "email_verified")
}

func TestRecruiterHandler_VerifyOTP_RejectsShortCode(t *testing.T) {
	h, _ := newTestHandler(t)

	c, _ := newEchoContext(http.MethodPost, "/recruiter/verify-otp",
		`{"email":"hiring@acme.com","otp":"123"}`)

	err := h.VerifyOTP(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
