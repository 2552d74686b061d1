package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"serviceia/internal/models"
	"serviceia/internal/service"
)

// RAGHandler handles knowledge base query requests
type RAGHandler struct {
	ragService *service.RAGService
}

// NewRAGHandler creates a new RAG handler
func NewRAGHandler(ragService *service.RAGService) *RAGHandler {
	return &RAGHandler{
		ragService: ragService,
	}
}

// Query handles RAG query requests
// @Summary Query the knowledge base
// @Description Answer a question from the firm's knowledge base and list the passages used
// @Tags rag
// @Accept json
// @Produce json
// @Param request body models.RAGQueryRequest true "RAG query"
// @Success 200 {object} models.RAGQueryResponse
// @Failure 400 {object} models.APIResponse
// @Failure 502 {object} models.APIResponse
// @Router /api/v1/rag/query [post]
func (h *RAGHandler) Query(c *gin.Context) {
	var req models.RAGQueryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request format", err.Error())
		return
	}

	resp, err := h.ragService.Query(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, "Failed to answer query", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
