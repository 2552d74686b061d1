package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"serviceia/internal/models"
	"serviceia/internal/service"
)

// AnalysisHandler handles call analysis API requests
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// CallSummary handles call summary requests
// @Summary Summarize a call
// @Description Generate a structured summary of a call transcript (facts, practice area, urgency, lead score, emergency flag, contact data)
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body models.CallSummaryRequest true "Call summary request"
// @Success 200 {object} models.CallSummaryResponse
// @Failure 400 {object} models.APIResponse
// @Failure 502 {object} models.APIResponse
// @Router /api/v1/analysis/call-summary [post]
func (h *AnalysisHandler) CallSummary(c *gin.Context) {
	var req models.CallSummaryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request format", err.Error())
		return
	}

	resp, err := h.analysisService.CallSummary(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, "Failed to summarize call", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LeadScore handles lead scoring requests
// @Summary Score a lead
// @Description Estimate how promising an inquiry is, on a 0-100 scale, with the factors behind the score
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body models.LeadScoreRequest true "Lead score request"
// @Success 200 {object} models.LeadScoreResponse
// @Failure 400 {object} models.APIResponse
// @Failure 502 {object} models.APIResponse
// @Router /api/v1/analysis/lead-score [post]
func (h *AnalysisHandler) LeadScore(c *gin.Context) {
	var req models.LeadScoreRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request format", err.Error())
		return
	}

	resp, err := h.analysisService.LeadScore(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, "Failed to score lead", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// EmergencyDetect handles emergency detection requests
// @Summary Detect an emergency
// @Description Flag text describing violence or immediate danger using keyword matching. Set diagnostics=true to list matched keywords.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body models.EmergencyDetectRequest true "Text to classify"
// @Param diagnostics query bool false "Include matched keywords"
// @Success 200 {object} models.EmergencyDiagnosticsResponse "matched_keywords only with diagnostics=true"
// @Failure 400 {object} models.APIResponse
// @Router /api/v1/analysis/emergency-detect [post]
func (h *AnalysisHandler) EmergencyDetect(c *gin.Context) {
	var req models.EmergencyDetectRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request format", err.Error())
		return
	}

	result := h.analysisService.DetectEmergency(*req.Text)

	resp := models.EmergencyDetectResponse{
		IsEmergency: result.IsEmergency,
		Confidence:  result.Confidence,
	}
	if result.EmergencyType != "" {
		emergencyType := result.EmergencyType
		resp.EmergencyType = &emergencyType
	}
	if diagnostics, _ := strconv.ParseBool(c.Query("diagnostics")); diagnostics {
		matched := result.MatchedKeywords
		if matched == nil {
			matched = []string{}
		}
		c.JSON(http.StatusOK, models.EmergencyDiagnosticsResponse{
			EmergencyDetectResponse: resp,
			MatchedKeywords:         matched,
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
