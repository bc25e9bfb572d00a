package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "scout/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, logger *slog.Logger, incomingID string) (context.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/recruiter", nil)
	if incomingID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, incomingID)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen context.Context
	next := func(c echo.Context) error {
		seen = c.Request().Context()

		return c.NoContent(http.StatusOK)
	}

	m := NewRequestIDMiddleware(logger)
	require.NoError(t, m.Process(next)(c))

	return seen, rec
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, rec := runRequestID(t, logger, "req-abc-123")

	assert.Equal(t, "req-abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-abc-123", deliverycontext.GetRequestID(ctx))
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, rec := runRequestID(t, logger, "")

	generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, deliverycontext.GetRequestID(ctx))
}

func TestRequestID_ContextCarriesScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, _ := runRequestID(t, logger, "req-abc-123")

	deliverycontext.GetLoggerOrDefault(ctx, fallback).Info("handled")

	assert.Contains(t, buf.String(), `"request_id":"req-abc-123"`)
	assert.Contains(t, buf.String(), "handled")
}
