package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serviceia/internal/models"
)

// ServiceName is reported by the health endpoints
const ServiceName = "ai-service"

// HealthHandler handles health check requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles health check requests
// @Summary Health check
// @Description Check if the AI service is running
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Service: ServiceName,
	})
}
