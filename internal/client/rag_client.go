package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"serviceia/internal/config"
	"serviceia/internal/models"
)

// RAGClient handles communication with RAG server
type RAGClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRAGClient creates a new RAG client
func NewRAGClient(cfg *config.Config) *RAGClient {
	return &RAGClient{
		baseURL: strings.TrimRight(cfg.RAGServerURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.RAGServerTimeout,
		},
	}
}

// SearchKnowledge retrieves the passages of a tenant's knowledge base closest to query
func (rc *RAGClient) SearchKnowledge(ctx context.Context, tenantID, query string, limit int) ([]models.RAGPassage, error) {
	url := fmt.Sprintf("%s/api/rag/knowledge/search", rc.baseURL)

	data, err := json.Marshal(models.RAGKnowledgeSearchRequest{
		TenantID: tenantID,
		Query:    query,
		TopK:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := rc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search knowledge: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search knowledge failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var apiResp struct {
		Success bool `json:"success"`
		Data    struct {
			Results []models.RAGPassage `json:"results"`
		} `json:"data"`
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if !apiResp.Success {
		if apiResp.Error != nil {
			return nil, fmt.Errorf("search failed: %s - %s", apiResp.Error.Code, apiResp.Error.Message)
		}
		return nil, fmt.Errorf("search failed: unknown error")
	}

	if len(apiResp.Data.Results) > limit && limit > 0 {
		return apiResp.Data.Results[:limit], nil
	}
	return apiResp.Data.Results, nil
}

// Health checks if RAG server is healthy
func (rc *RAGClient) Health(ctx context.Context) (bool, error) {
	url := fmt.Sprintf("%s/api/rag/health", rc.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := rc.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to check health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("rag server unhealthy: status %d", resp.StatusCode)
	}
	return true, nil
}
