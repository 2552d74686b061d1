package models

// ===== Call Analysis Models =====

// CallSummaryRequest represents a request to summarize a call transcript
type CallSummaryRequest struct {
	TenantID     string  `json:"tenant_id" binding:"required"`
	CallID       string  `json:"call_id" binding:"required"`
	Transcript   string  `json:"transcript" binding:"required"`
	PracticeArea *string `json:"practice_area,omitempty"`
}

// CallSummaryResponse represents the structured summary of a call
type CallSummaryResponse struct {
	Summary       string         `json:"summary"`
	KeyFacts      []string       `json:"key_facts"`
	PracticeArea  *string        `json:"practice_area"`
	UrgencyLevel  string         `json:"urgency_level"` // LOW, NORMAL, HIGH, CRITICAL
	LeadScore     int            `json:"lead_score"`
	IsEmergency   bool           `json:"is_emergency"`
	EmergencyType *string        `json:"emergency_type"`
	ExtractedData map[string]any `json:"extracted_data"`
}

// LeadScoreRequest represents a request to score a prospective client
type LeadScoreRequest struct {
	TenantID     string  `json:"tenant_id" binding:"required"`
	Transcript   string  `json:"transcript" binding:"required"`
	PracticeArea *string `json:"practice_area,omitempty"`
}

// LeadScoreResponse represents a lead score between 0 and 100
type LeadScoreResponse struct {
	Score   int      `json:"score"`
	Factors []string `json:"factors"`
}

// EmergencyDetectRequest represents a request to classify text as urgent.
// Text is a pointer so that an explicit empty string is accepted while a missing field is not.
type EmergencyDetectRequest struct {
	Text *string `json:"text" binding:"required"`
}

// EmergencyDetectResponse represents the emergency classification of a text
type EmergencyDetectResponse struct {
	IsEmergency   bool    `json:"is_emergency"`
	EmergencyType *string `json:"emergency_type"`
	Confidence    float64 `json:"confidence"`
}

// EmergencyDiagnosticsResponse adds the matched keywords, always present and
// empty when nothing matched
type EmergencyDiagnosticsResponse struct {
	EmergencyDetectResponse
	MatchedKeywords []string `json:"matched_keywords"`
}

// ===== RAG Models =====

// RAGQueryRequest represents a question against a firm's knowledge base
type RAGQueryRequest struct {
	TenantID   string `json:"tenant_id" binding:"required"`
	Query      string `json:"query" binding:"required"`
	MaxResults int    `json:"max_results,omitempty"`
}

// RAGQueryResponse represents a generated answer and the passages it used
type RAGQueryResponse struct {
	Answer  string      `json:"answer"`
	Sources []RAGSource `json:"sources"`
}

// RAGSource identifies a passage used to ground an answer
type RAGSource struct {
	DocumentID string  `json:"document_id"`
	Title      string  `json:"title"`
	Score      float32 `json:"score"`
}

// ===== RAG Server Models =====

// RAGKnowledgeSearchRequest represents a request to search a tenant's knowledge base
type RAGKnowledgeSearchRequest struct {
	TenantID string `json:"tenant_id"`
	Query    string `json:"query"`
	TopK     int    `json:"top_k"`
}

// RAGPassage represents a passage returned by the RAG server
type RAGPassage struct {
	DocumentID string  `json:"document_id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Score      float32 `json:"score"`
}

// ===== API Response Wrappers =====

// APIResponse represents the error envelope returned on failure
type APIResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// ErrorInfo represents error details in API response
type ErrorInfo struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Metadata represents response metadata
type Metadata struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

// HealthResponse represents the liveness payload
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
