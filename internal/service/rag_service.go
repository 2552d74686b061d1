package service

import (
	"context"
	"fmt"
	"strings"

	"serviceia/internal/metrics"
	"serviceia/internal/models"
	"serviceia/internal/prompts"
	"serviceia/internal/util"
)

// KnowledgeSearcher retrieves passages from a tenant's knowledge base
type KnowledgeSearcher interface {
	SearchKnowledge(ctx context.Context, tenantID, query string, limit int) ([]models.RAGPassage, error)
}

// RAGService answers questions grounded on a firm's knowledge base
type RAGService struct {
	searcher  KnowledgeSearcher
	generator Generator
	metrics   *metrics.Collector
	logger    *util.Logger
}

// NewRAGService creates a new RAG service
func NewRAGService(searcher KnowledgeSearcher, generator Generator, collector *metrics.Collector) *RAGService {
	return &RAGService{
		searcher:  searcher,
		generator: generator,
		metrics:   collector,
		logger:    util.NewLogger("RAGService"),
	}
}

// Query retrieves passages for the question and generates an answer citing them
func (rs *RAGService) Query(ctx context.Context, req *models.RAGQueryRequest) (*models.RAGQueryResponse, error) {
	rs.logger.Start("RAG Query")
	defer rs.logger.End("RAG Query")

	if strings.TrimSpace(req.Query) == "" {
		return nil, invalidRequest("query cannot be empty")
	}

	limit := clampResults(req.MaxResults)

	rs.logger.Section("Retrieving passages")
	passages, err := rs.searcher.SearchKnowledge(ctx, req.TenantID, req.Query, limit)
	if err != nil {
		rs.logger.Error("Knowledge search failed", err)
		return nil, &ProviderError{Op: "knowledge_search", Transient: true, Err: err}
	}
	rs.logger.KeyValue("Tenant", req.TenantID, "Passages", len(passages), "Limit", limit)

	sources := make([]models.RAGSource, 0, len(passages))
	for _, p := range passages {
		sources = append(sources, models.RAGSource{
			DocumentID: p.DocumentID,
			Title:      p.Title,
			Score:      p.Score,
		})
	}

	if len(passages) == 0 {
		return &models.RAGQueryResponse{
			Answer:  prompts.RAGNoResultsAnswer,
			Sources: sources,
		}, nil
	}

	rs.logger.Section("Generating answer")
	answer, err := rs.generator.Generate(ctx, GenerationRequest{
		Task:         TaskRAGAnswer,
		SystemPrompt: prompts.RAGAnswerSystemPrompt(),
		UserPrompt:   prompts.RAGAnswerUserPrompt(req.Query, passages),
	})
	rs.metrics.RecordProviderRequest(string(TaskRAGAnswer), err)
	if err != nil {
		if IsProviderError(err) {
			return nil, err
		}
		return nil, &ProviderError{Op: string(TaskRAGAnswer), Err: fmt.Errorf("generation failed: %w", err)}
	}

	rs.logger.Success("Answer generated")
	return &models.RAGQueryResponse{
		Answer:  strings.TrimSpace(answer),
		Sources: sources,
	}, nil
}

func clampResults(n int) int {
	if n <= 0 {
		return util.DefaultRAGResults
	}
	if n > util.MaxRAGResults {
		return util.MaxRAGResults
	}
	return n
}
