package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"matchfilter/internal/engine"
	"matchfilter/internal/models"

	"github.com/labstack/echo/v4"
)

// FilterHandler classifies a single conversation
// @Summary Filter a conversation
// @Description Scores a conversation and classifies the contact as timewaster or engaged
// @Tags messages
// @Accept json
// @Produce json
// @Param conversation body models.Conversation true "Conversation to filter"
// @Success 200 {object} models.FilterResult
// @Failure 400 {object} models.ErrorResponse
// @Router /api/messages/filter [post]
func FilterHandler(svc *engine.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var conv models.Conversation
		if err := c.Bind(&conv); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		result, err := svc.Filter(c.Request().Context(), conv)
		if err != nil {
			var verr *engine.ValidationError
			if errors.As(err, &verr) {
				return validationErrorResponse(c, "Invalid conversation", verr.Fields)
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to filter conversation: %v", err),
			})
		}

		return c.JSON(http.StatusOK, result)
	}
}

// AnalyzeHandler produces the descriptive report for a conversation
// @Summary Analyze a conversation
// @Description Returns message statistics, sentiment distribution, topics and flow score
// @Tags messages
// @Accept json
// @Produce json
// @Param conversation body models.Conversation true "Conversation to analyze"
// @Success 200 {object} models.AnalysisResult
// @Failure 400 {object} models.ErrorResponse
// @Router /api/messages/analyze [post]
func AnalyzeHandler(svc *engine.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var conv models.Conversation
		if err := c.Bind(&conv); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		result, err := svc.Analyze(c.Request().Context(), conv)
		if err != nil {
			var verr *engine.ValidationError
			if errors.As(err, &verr) {
				return validationErrorResponse(c, "Invalid conversation", verr.Fields)
			}
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to analyze conversation: %v", err),
			})
		}

		return c.JSON(http.StatusOK, result)
	}
}

// FilterAllHandler classifies a batch of conversations
// @Summary Filter all conversations
// @Description Scores every supplied conversation independently; one failing conversation does not remove the others' results
// @Tags messages
// @Accept json
// @Produce json
// @Param conversations body models.FilterAllRequest true "Conversations keyed by contact name"
// @Success 200 {object} models.FilterAllResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/messages/filter/all [post]
func FilterAllHandler(svc *engine.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.FilterAllRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		entries := svc.FilterAll(c.Request().Context(), req.Conversations)

		response := models.FilterAllResponse{
			Results: make(map[string]models.FilterResult, len(entries)),
		}
		for key, entry := range entries {
			if entry.Err != nil {
				if response.Errors == nil {
					response.Errors = make(map[string]string)
				}
				response.Errors[key] = entry.Err.Error()
				continue
			}
			response.Results[key] = *entry.Result
		}

		return c.JSON(http.StatusOK, response)
	}
}
