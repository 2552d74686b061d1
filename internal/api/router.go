package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"serviceia/internal/api/handler"
	"serviceia/internal/api/middleware"
	"serviceia/internal/config"
	"serviceia/internal/metrics"
	"serviceia/internal/service"
)

// Router sets up all API routes. limiter may be nil to disable rate limiting.
func Router(cfg *config.Config, analysisService *service.AnalysisService, ragService *service.RAGService, collector *metrics.Collector, limiter *middleware.RateLimiter) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Apply middlewares
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.MetricsMiddleware(collector))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	ragHandler := handler.NewRAGHandler(ragService)

	// Operational routes stay outside the rate limit
	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(collector.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.GET("/health", healthHandler.Check)

	if limiter != nil {
		v1.Use(limiter.Middleware())
	}

	// Analysis API routes
	analysis := v1.Group("/analysis")
	{
		analysis.POST("/call-summary", analysisHandler.CallSummary)
		analysis.POST("/lead-score", analysisHandler.LeadScore)
		analysis.POST("/emergency-detect", analysisHandler.EmergencyDetect)
	}

	// RAG API routes
	rag := v1.Group("/rag")
	{
		rag.POST("/query", ragHandler.Query)
	}

	return router
}
