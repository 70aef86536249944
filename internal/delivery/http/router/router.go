// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskman/internal/delivery/http/middleware"
	"taskman/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	TaskHandler    *handler.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	taskHandler    *handler.TaskHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		taskHandler:    params.TaskHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Public signup route
	userGroup := e.Group("/users")
	{
		userGroup.POST("/signup", r.userHandler.Signup)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.userHandler.Login)
		authGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	// Task routes all require authentication
	taskGroup := e.Group("/tasks")
	taskGroup.Use(r.authMiddleware.Authenticate)
	{
		taskGroup.POST("", r.taskHandler.Create)
		taskGroup.GET("", r.taskHandler.List)
		taskGroup.GET("/:id", r.taskHandler.Get)
		taskGroup.PUT("/:id", r.taskHandler.Update)
		taskGroup.PATCH("/:id", r.taskHandler.Update)
		taskGroup.DELETE("/:id", r.taskHandler.Delete)
	}
}
