package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"serviceia/internal/api/middleware"
	"serviceia/internal/models"
	"serviceia/internal/service"
)

// Error codes returned in the error envelope
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeProviderError  = "PROVIDER_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

func respondError(c *gin.Context, statusCode int, code string, message string, details interface{}) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error: &models.ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			RequestID: c.GetString(middleware.RequestIDKey),
		},
	})
}

// respondServiceError maps service errors onto HTTP statuses
func respondServiceError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, message, err.Error())
	case service.IsProviderError(err):
		respondError(c, http.StatusBadGateway, CodeProviderError, message, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, CodeInternalError, message, err.Error())
	}
}
