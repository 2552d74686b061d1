package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"serviceia/internal/util"
)

// Task identifies what a generation request is for
type Task string

const (
	TaskCallSummary Task = "call_summary"
	TaskLeadScore   Task = "lead_score"
	TaskRAGAnswer   Task = "rag_answer"
)

// GenerationRequest is a single prompt sent to a text generation provider
type GenerationRequest struct {
	Task         Task
	SystemPrompt string
	UserPrompt   string
}

// Generator produces free-form text for a prompt.
// Callers parse and validate the returned text themselves.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// PlaceholderGenerator answers every task with the fixed payloads the service
// returned before a provider was wired in.
type PlaceholderGenerator struct{}

// NewPlaceholderGenerator creates a placeholder generator
func NewPlaceholderGenerator() *PlaceholderGenerator {
	return &PlaceholderGenerator{}
}

// Generate returns the placeholder payload for req.Task
func (g *PlaceholderGenerator) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	var payload interface{}

	switch req.Task {
	case TaskCallSummary:
		payload = util.CallSummaryOutput{
			Summary:       "Resume en cours de configuration.",
			KeyFacts:      []string{},
			UrgencyLevel:  util.UrgencyNormal,
			LeadScore:     util.DefaultLeadScore,
			ExtractedData: map[string]any{},
		}
	case TaskLeadScore:
		payload = util.LeadScoreOutput{Score: util.DefaultLeadScore, Factors: []string{}}
	case TaskRAGAnswer:
		return "Service RAG en cours de configuration.", nil
	default:
		return "", fmt.Errorf("placeholder generator: unknown task %q", req.Task)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FakeGenerator is a Generator for tests. It returns Response, or Err when set,
// and keeps every request it receives.
type FakeGenerator struct {
	Response string
	Err      error

	mu       sync.Mutex
	requests []GenerationRequest
}

// NewFakeGenerator creates a fake generator answering with response
func NewFakeGenerator(response string) *FakeGenerator {
	return &FakeGenerator{Response: response}
}

// Generate records req and returns the canned reply
func (f *FakeGenerator) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.Err != nil {
		return "", f.Err
	}
	return f.Response, nil
}

// Requests returns the requests received so far
func (f *FakeGenerator) Requests() []GenerationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]GenerationRequest, len(f.requests))
	copy(out, f.requests)
	return out
}
