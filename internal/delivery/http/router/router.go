// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clinic/internal/delivery/http/middleware"
	"clinic/internal/delivery/http/router/handler"
	"clinic/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	AppointmentHandler *handler.AppointmentHandler
	PaymentHandler     *handler.PaymentHandler
	FeedbackHandler    *handler.FeedbackHandler
	ReportHandler      *handler.ReportHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	manager := entity.RoleManager.String()
	staff := entity.RoleStaff.String()
	customer := entity.RoleCustomer.String()

	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
	}

	userGroup := e.Group("/users")
	userGroup.Use(auth.Authenticate)
	{
		userGroup.POST("", r.params.UserHandler.Register, auth.RequireRole(manager))
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.GET("/:id", r.params.UserHandler.Get)
		userGroup.PUT("/:id", r.params.UserHandler.UpdateProfile)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete, auth.RequireRole(manager))
	}

	appointmentGroup := e.Group("/appointments")
	appointmentGroup.Use(auth.Authenticate)
	{
		appointmentGroup.POST("", r.params.AppointmentHandler.Book, auth.RequireRole(staff, customer))
		appointmentGroup.GET("", r.params.AppointmentHandler.List)
		appointmentGroup.GET("/:id", r.params.AppointmentHandler.Get)
		appointmentGroup.PATCH("/:id/status", r.params.AppointmentHandler.UpdateStatus, auth.RequireRole(manager, staff))
		appointmentGroup.PUT("/:id", r.params.AppointmentHandler.UpdateDetails, auth.RequireRole(manager, staff))
	}

	paymentGroup := e.Group("/payments")
	paymentGroup.Use(auth.Authenticate)
	{
		paymentGroup.POST("", r.params.PaymentHandler.Record, auth.RequireRole(manager, staff))
		paymentGroup.GET("", r.params.PaymentHandler.List)
	}

	feedbackGroup := e.Group("/feedback")
	feedbackGroup.Use(auth.Authenticate)
	{
		feedbackGroup.POST("", r.params.FeedbackHandler.Submit, auth.RequireRole(customer))
		feedbackGroup.GET("", r.params.FeedbackHandler.ListAll)
		feedbackGroup.GET("/doctor/:id", r.params.FeedbackHandler.ListForDoctor)
		feedbackGroup.GET("/customer/:id", r.params.FeedbackHandler.ListForCustomer)
	}

	reportGroup := e.Group("/reports")
	reportGroup.Use(auth.Authenticate)
	reportGroup.Use(auth.RequireRole(manager))
	{
		reportGroup.POST("", r.params.ReportHandler.Generate)
		reportGroup.GET("", r.params.ReportHandler.List)
	}
}
