package service

import (
	"context"
	"fmt"
	"strings"

	"serviceia/internal/emergency"
	"serviceia/internal/metrics"
	"serviceia/internal/models"
	"serviceia/internal/prompts"
	"serviceia/internal/util"
)

// AnalysisService handles call summaries, lead scoring and emergency detection
type AnalysisService struct {
	generator Generator
	detector  *emergency.Detector
	metrics   *metrics.Collector
	logger    *util.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(generator Generator, detector *emergency.Detector, collector *metrics.Collector) *AnalysisService {
	return &AnalysisService{
		generator: generator,
		detector:  detector,
		metrics:   collector,
		logger:    util.NewLogger("AnalysisService"),
	}
}

// CallSummary generates a structured summary of a call transcript.
// A keyword hit in the transcript always marks the call as an emergency,
// whatever the provider concluded.
func (as *AnalysisService) CallSummary(ctx context.Context, req *models.CallSummaryRequest) (*models.CallSummaryResponse, error) {
	as.logger.Start("Call Summary")
	defer as.logger.End("Call Summary")

	if strings.TrimSpace(req.Transcript) == "" {
		return nil, invalidRequest("transcript cannot be empty")
	}

	content, err := as.generate(ctx, GenerationRequest{
		Task:         TaskCallSummary,
		SystemPrompt: prompts.CallSummarySystemPrompt(),
		UserPrompt:   prompts.CallSummaryUserPrompt(req.Transcript, practiceAreaOrDefault(req.PracticeArea)),
	})
	if err != nil {
		return nil, err
	}

	out, err := util.ParseCallSummary(content)
	if err != nil {
		as.logger.Error("Unparseable call summary", err)
		return nil, &ProviderError{Op: string(TaskCallSummary), Err: err}
	}

	resp := &models.CallSummaryResponse{
		Summary:       out.Summary,
		KeyFacts:      out.KeyFacts,
		PracticeArea:  out.PracticeArea,
		UrgencyLevel:  out.UrgencyLevel,
		LeadScore:     out.LeadScore,
		IsEmergency:   out.IsEmergency,
		EmergencyType: out.EmergencyType,
		ExtractedData: out.ExtractedData,
	}
	if resp.PracticeArea == nil {
		resp.PracticeArea = req.PracticeArea
	}

	detection := as.DetectEmergency(req.Transcript)
	if detection.IsEmergency {
		as.logger.KeyValue("Call", req.CallID, "Matched keywords", detection.MatchedKeywords)
		resp.IsEmergency = true
		if resp.EmergencyType == nil {
			emergencyType := detection.EmergencyType
			resp.EmergencyType = &emergencyType
		}
		resp.UrgencyLevel = util.MaxUrgency(resp.UrgencyLevel, util.UrgencyHigh)
	}

	as.logger.Info("call %s summarized (tenant=%s, urgency=%s, lead_score=%d, emergency=%t)",
		req.CallID, req.TenantID, resp.UrgencyLevel, resp.LeadScore, resp.IsEmergency)
	return resp, nil
}

// LeadScore estimates how promising an inquiry is on a 0-100 scale
func (as *AnalysisService) LeadScore(ctx context.Context, req *models.LeadScoreRequest) (*models.LeadScoreResponse, error) {
	as.logger.Start("Lead Score")
	defer as.logger.End("Lead Score")

	if strings.TrimSpace(req.Transcript) == "" {
		return nil, invalidRequest("transcript cannot be empty")
	}

	content, err := as.generate(ctx, GenerationRequest{
		Task:         TaskLeadScore,
		SystemPrompt: prompts.LeadScoreSystemPrompt(),
		UserPrompt:   prompts.LeadScoreUserPrompt(req.Transcript, practiceAreaOrDefault(req.PracticeArea)),
	})
	if err != nil {
		return nil, err
	}

	out, err := util.ParseLeadScore(content)
	if err != nil {
		as.logger.Error("Unparseable lead score", err)
		return nil, &ProviderError{Op: string(TaskLeadScore), Err: err}
	}

	as.logger.KeyValue("Tenant", req.TenantID, "Score", out.Score, "Factors", len(out.Factors))
	return &models.LeadScoreResponse{
		Score:   out.Score,
		Factors: out.Factors,
	}, nil
}

// DetectEmergency classifies text with the keyword detector
func (as *AnalysisService) DetectEmergency(text string) emergency.Result {
	result := as.detector.Detect(text)
	as.metrics.RecordDetection(result.IsEmergency)
	return result
}

func (as *AnalysisService) generate(ctx context.Context, req GenerationRequest) (string, error) {
	content, err := as.generator.Generate(ctx, req)
	as.metrics.RecordProviderRequest(string(req.Task), err)
	if err != nil {
		if IsProviderError(err) {
			return "", err
		}
		return "", &ProviderError{Op: string(req.Task), Err: fmt.Errorf("generation failed: %w", err)}
	}
	return content, nil
}

func practiceAreaOrDefault(area *string) string {
	if area == nil || strings.TrimSpace(*area) == "" {
		return util.PracticeAreaUnspecified
	}
	return *area
}
