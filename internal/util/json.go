package util

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CallSummaryOutput represents the JSON structure returned by the provider for a call summary
type CallSummaryOutput struct {
	Summary       string         `json:"summary"`
	KeyFacts      []string       `json:"key_facts"`
	PracticeArea  *string        `json:"practice_area"`
	UrgencyLevel  string         `json:"urgency_level"`
	LeadScore     int            `json:"lead_score"`
	IsEmergency   bool           `json:"is_emergency"`
	EmergencyType *string        `json:"emergency_type"`
	ExtractedData map[string]any `json:"extracted_data"`
}

// LeadScoreOutput represents the JSON structure returned by the provider for lead scoring
type LeadScoreOutput struct {
	Score   int      `json:"score"`
	Factors []string `json:"factors"`
}

// ParseCallSummary parses provider output into CallSummaryOutput
func ParseCallSummary(content string) (*CallSummaryOutput, error) {
	var response CallSummaryOutput
	if err := json.Unmarshal([]byte(ExtractJSON(content)), &response); err != nil {
		return nil, fmt.Errorf("failed to parse call summary response: %w", err)
	}

	// Validate
	response.Summary = strings.TrimSpace(response.Summary)
	if response.Summary == "" {
		return nil, fmt.Errorf("call summary response missing summary field")
	}

	response.UrgencyLevel = NormalizeUrgency(response.UrgencyLevel)
	response.LeadScore = ClampScore(response.LeadScore)

	if response.KeyFacts == nil {
		response.KeyFacts = []string{}
	}
	if response.ExtractedData == nil {
		response.ExtractedData = map[string]any{}
	}
	if response.PracticeArea != nil && strings.TrimSpace(*response.PracticeArea) == "" {
		response.PracticeArea = nil
	}
	if response.EmergencyType != nil && strings.TrimSpace(*response.EmergencyType) == "" {
		response.EmergencyType = nil
	}
	if !response.IsEmergency {
		response.EmergencyType = nil
	}

	return &response, nil
}

// ParseLeadScore parses provider output into LeadScoreOutput
func ParseLeadScore(content string) (*LeadScoreOutput, error) {
	var response LeadScoreOutput
	if err := json.Unmarshal([]byte(ExtractJSON(content)), &response); err != nil {
		return nil, fmt.Errorf("failed to parse lead score response: %w", err)
	}

	// Validate and clamp score
	response.Score = ClampScore(response.Score)
	if response.Factors == nil {
		response.Factors = []string{}
	}

	return &response, nil
}

// NormalizeUrgency maps free-form urgency labels onto the known levels, defaulting to NORMAL
func NormalizeUrgency(level string) string {
	level = strings.ToUpper(strings.TrimSpace(level))
	if _, ok := urgencyRank[level]; ok {
		return level
	}
	return UrgencyNormal
}

// ExtractJSON strips markdown code fences and any prose around the outermost JSON object
func ExtractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}
