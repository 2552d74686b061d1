// @title Service IA API
// @version 1.0
// @description Call analysis, emergency detection and knowledge base answers for law firm call centers
// @contact.name API Support
// @basePath /
// @schemes http https

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "serviceia/docs"
	"serviceia/internal/api"
	"serviceia/internal/api/middleware"
	"serviceia/internal/client"
	"serviceia/internal/config"
	"serviceia/internal/emergency"
	"serviceia/internal/metrics"
	"serviceia/internal/service"
	"serviceia/internal/util"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Fatalf("Invalid configuration: %v", cfgErr)
		}
		log.Fatalf("Failed to load configuration: %v", err)
	}
	util.SetLevel(cfg.LogLevel)

	log.Printf("Starting AI service on port %d (env=%s, provider=%s)", cfg.Port, cfg.Env, cfg.LLMProvider)

	// Emergency vocabulary
	emergencyCfg, err := emergency.LoadConfig(cfg.EmergencyVocabularyFile)
	if err != nil {
		log.Fatalf("Failed to load emergency vocabulary: %v", err)
	}
	detector := emergency.NewDetectorFromConfig(emergencyCfg)
	log.Printf("Emergency detector ready (%d terms, fold_diacritics=%t)", detector.Vocabulary().Len(), emergencyCfg.FoldDiacritics)

	// Text generation provider
	var generator service.Generator
	switch cfg.LLMProvider {
	case config.ProviderPlaceholder:
		log.Println("Warning: LLM_PROVIDER=placeholder, analysis endpoints return fixed values")
		generator = service.NewPlaceholderGenerator()
	default:
		generator = service.NewOpenAIService(cfg)
	}

	// Initialize RAG client
	ragClient := client.NewRAGClient(cfg)

	// Check RAG server health
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RAGServerTimeout)
	if healthy, err := ragClient.Health(ctx); !healthy || err != nil {
		log.Printf("Warning: RAG server health check failed: %v", err)
	} else {
		log.Println("RAG server is healthy")
	}
	cancel()

	// Initialize services
	collector := metrics.NewCollector()
	analysisService := service.NewAnalysisService(generator, detector, collector)
	ragService := service.NewRAGService(ragClient, generator, collector)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		defer limiter.Stop()
	}

	// Setup router
	router := api.Router(cfg, analysisService, ragService, collector, limiter)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("AI service running on %s", addr)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutting down AI service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}
