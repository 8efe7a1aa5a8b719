package handlers

import (
	"net/http"
	"time"

	"matchfilter/internal/models"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Version   string    `json:"version" example:"1.0.0"`                  // Application version
}

// HealthHandler handles basic health check requests
// @Summary Health check
// @Description Returns service liveness and version
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		response := HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Version:   version,
		}

		return c.JSON(http.StatusOK, response)
	}
}

// RootHandler handles requests to the root endpoint
// @Summary Service info
// @Description Returns service name, version and status
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/ [get]
func RootHandler(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Match Filter API",
			"version": version,
			"status":  "running",
		})
	}
}

// bad request helper shared by the message/config handlers
func validationErrorResponse(c echo.Context, summary string, fields []models.FieldError) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:  summary,
		Fields: fields,
	})
}
