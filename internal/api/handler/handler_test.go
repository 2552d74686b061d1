package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serviceia/internal/emergency"
	"serviceia/internal/metrics"
	"serviceia/internal/models"
	"serviceia/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSearcher struct {
	passages []models.RAGPassage
	err      error
}

func (s *stubSearcher) SearchKnowledge(ctx context.Context, tenantID, query string, limit int) ([]models.RAGPassage, error) {
	return s.passages, s.err
}

func newTestRouter(gen service.Generator, searcher service.KnowledgeSearcher) *gin.Engine {
	collector := metrics.NewCollector()
	analysisHandler := NewAnalysisHandler(service.NewAnalysisService(gen, emergency.NewDetector(emergency.DefaultVocabulary()), collector))
	ragHandler := NewRAGHandler(service.NewRAGService(searcher, gen, collector))
	healthHandler := NewHealthHandler()

	router := gin.New()
	router.GET("/health", healthHandler.Check)
	router.POST("/call-summary", analysisHandler.CallSummary)
	router.POST("/lead-score", analysisHandler.LeadScore)
	router.POST("/emergency-detect", analysisHandler.EmergencyDetect)
	router.POST("/rag", ragHandler.Query)
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Metadata.Timestamp)
	return resp
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter(service.NewPlaceholderGenerator(), &stubSearcher{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"ai-service"}`, rec.Body.String())
}

func TestEmergencyDetect(t *testing.T) {
	router := newTestRouter(service.NewPlaceholderGenerator(), &stubSearcher{})

	tests := []struct {
		name       string
		body       string
		emergency  bool
		confidence float64
	}{
		{"Two keywords", `{"text":"Mon mari m'a frappe et menace"}`, true, 0.6},
		{"Multi-word keyword", `{"text":"Mon fils est en GARDE A VUE depuis hier"}`, true, 0.3},
		{"No keyword", `{"text":"Je voudrais un rendez-vous pour un bail commercial"}`, false, 0.0},
		{"Empty text", `{"text":""}`, false, 0.0},
		{"Capped confidence", `{"text":"violence frappe battu menace danger"}`, true, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(router, "/emergency-detect", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var raw map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

			assert.Equal(t, tt.emergency, raw["is_emergency"])
			assert.InDelta(t, tt.confidence, raw["confidence"], 1e-9)
			assert.NotContains(t, raw, "matched_keywords")
			if tt.emergency {
				assert.Equal(t, emergency.TypeKeywordsDetected, raw["emergency_type"])
			} else {
				assert.Contains(t, raw, "emergency_type")
				assert.Nil(t, raw["emergency_type"])
			}
		})
	}
}

func TestEmergencyDetect_Diagnostics(t *testing.T) {
	router := newTestRouter(service.NewPlaceholderGenerator(), &stubSearcher{})

	rec := post(router, "/emergency-detect?diagnostics=true", `{"text":"Il m'a frappe, j'ai peur, c'est une urgence"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.EmergencyDiagnosticsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"frappe", "urgence"}, resp.MatchedKeywords)
	assert.True(t, resp.IsEmergency)

	rec = post(router, "/emergency-detect?diagnostics=true", `{"text":"Je voudrais un rendez-vous"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"is_emergency":false,"emergency_type":null,"confidence":0,"matched_keywords":[]}`, rec.Body.String())
}

func TestEmergencyDetect_InvalidBody(t *testing.T) {
	router := newTestRouter(service.NewPlaceholderGenerator(), &stubSearcher{})

	for _, body := range []string{`{}`, `{"text":42}`, `not json`} {
		rec := post(router, "/emergency-detect", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, CodeInvalidRequest, decodeError(t, rec).Error.Code)
	}
}

func TestCallSummary(t *testing.T) {
	gen := service.NewFakeGenerator(`{"summary":"Appel concernant un licenciement.","key_facts":["Licencie la semaine derniere"],"practice_area":"droit du travail","urgency_level":"NORMAL","lead_score":65,"is_emergency":false,"emergency_type":null,"extracted_data":{}}`)
	router := newTestRouter(gen, &stubSearcher{})

	t.Run("Success", func(t *testing.T) {
		rec := post(router, "/call-summary", `{"tenant_id":"t1","call_id":"c1","transcript":"J'ai ete licencie la semaine derniere."}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.CallSummaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Appel concernant un licenciement.", resp.Summary)
		assert.Equal(t, 65, resp.LeadScore)
		assert.False(t, resp.IsEmergency)
	})

	t.Run("Keyword hit escalates", func(t *testing.T) {
		rec := post(router, "/call-summary", `{"tenant_id":"t1","call_id":"c2","transcript":"Mon patron m'a menace apres mon licenciement."}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.CallSummaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.IsEmergency)
		assert.Equal(t, "HIGH", resp.UrgencyLevel)
	})

	t.Run("Missing transcript", func(t *testing.T) {
		rec := post(router, "/call-summary", `{"tenant_id":"t1","call_id":"c3"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeInvalidRequest, decodeError(t, rec).Error.Code)
	})

	t.Run("Blank transcript", func(t *testing.T) {
		rec := post(router, "/call-summary", `{"tenant_id":"t1","call_id":"c4","transcript":"   "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCallSummary_ProviderFailure(t *testing.T) {
	gen := service.NewFakeGenerator("")
	gen.Err = errors.New("upstream unavailable")
	router := newTestRouter(gen, &stubSearcher{})

	rec := post(router, "/call-summary", `{"tenant_id":"t1","call_id":"c1","transcript":"Bonjour"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, CodeProviderError, decodeError(t, rec).Error.Code)
}

func TestLeadScore(t *testing.T) {
	router := newTestRouter(service.NewPlaceholderGenerator(), &stubSearcher{})

	rec := post(router, "/lead-score", `{"tenant_id":"t1","transcript":"Je cherche un avocat pour un litige commercial."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"score":50,"factors":[]}`, rec.Body.String())
}

func TestRAGQuery(t *testing.T) {
	searcher := &stubSearcher{passages: []models.RAGPassage{
		{DocumentID: "doc-1", Title: "Bareme honoraires", Content: "Premier rendez-vous: 80 EUR.", Score: 0.9},
	}}
	gen := service.NewFakeGenerator("  Le premier rendez-vous coute 80 EUR [1].  ")
	router := newTestRouter(gen, searcher)

	t.Run("Answer with sources", func(t *testing.T) {
		rec := post(router, "/rag", `{"tenant_id":"t1","query":"Combien coute un rendez-vous ?"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.RAGQueryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Le premier rendez-vous coute 80 EUR [1].", resp.Answer)
		require.Len(t, resp.Sources, 1)
		assert.Equal(t, "doc-1", resp.Sources[0].DocumentID)
	})

	t.Run("Search failure", func(t *testing.T) {
		failing := newTestRouter(gen, &stubSearcher{err: errors.New("connection refused")})
		rec := post(failing, "/rag", `{"tenant_id":"t1","query":"Horaires ?"}`)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, CodeProviderError, decodeError(t, rec).Error.Code)
	})

	t.Run("Missing query", func(t *testing.T) {
		rec := post(router, "/rag", `{"tenant_id":"t1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
