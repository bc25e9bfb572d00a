// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scout/internal/delivery/http/middleware"
	"scout/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RecruiterHandler *handler.RecruiterHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	recruiterHandler *handler.RecruiterHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		recruiterHandler: params.RecruiterHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	recruiterGroup := e.Group("/recruiter")
	{
		// Public endpoints
		recruiterGroup.POST("", r.recruiterHandler.Register)
		recruiterGroup.POST("/login", r.recruiterHandler.Login)
		recruiterGroup.POST("/send-otp", r.recruiterHandler.SendOTP)
		recruiterGroup.POST("/verify-otp", r.recruiterHandler.VerifyOTP)

		// Session-guarded endpoints
		recruiterGroup.GET("", r.recruiterHandler.GetProfile, r.authMiddleware.Authenticate)
		recruiterGroup.PUT("", r.recruiterHandler.UpdateProfile, r.authMiddleware.Authenticate)
		recruiterGroup.GET("/verify-token", r.recruiterHandler.VerifyToken, r.authMiddleware.Authenticate)
	}
}
