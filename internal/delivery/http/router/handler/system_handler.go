package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Root is a simple landing endpoint describing the service.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Task Management API",
		"status":  "running",
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
