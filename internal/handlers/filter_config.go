package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"matchfilter/internal/engine"
	"matchfilter/internal/models"

	"github.com/labstack/echo/v4"
)

// GetFilterConfigHandler returns the current filter configuration
// @Summary Get filter configuration
// @Description Returns the thresholds, weights and red-flag patterns currently in effect
// @Tags config
// @Produce json
// @Success 200 {object} models.FilterConfig
// @Router /api/messages/filter/config [get]
func GetFilterConfigHandler(store *engine.ConfigStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, store.Get())
	}
}

// UpdateFilterConfigHandler replaces the filter configuration
// @Summary Update filter configuration
// @Description Validates and atomically replaces the full filter configuration; on failure the previous configuration stays in effect
// @Tags config
// @Accept json
// @Produce json
// @Param config body models.FilterConfig true "New filter configuration"
// @Success 200 {object} models.FilterConfig
// @Failure 400 {object} models.ErrorResponse
// @Router /api/messages/filter/config [post]
func UpdateFilterConfigHandler(store *engine.ConfigStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var cfg models.FilterConfig
		if err := c.Bind(&cfg); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if err := store.Replace(cfg); err != nil {
			var verr *engine.ValidationError
			if errors.As(err, &verr) {
				return validationErrorResponse(c, "Invalid filter configuration", verr.Fields)
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to update filter configuration: %v", err),
			})
		}

		return c.JSON(http.StatusOK, store.Get())
	}
}
