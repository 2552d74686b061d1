package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider names accepted by LLM_PROVIDER
const (
	ProviderOpenAI      = "openai"
	ProviderPlaceholder = "placeholder"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        int
	Env         string // development, production
	CORSOrigins []string
	RateLimit   int // requests per minute per client IP, 0 disables

	// Kept for parity with the deployment settings; nothing reads it yet.
	DatabaseURL string

	// LLM provider
	LLMProvider    string
	LLMAPIKey      string
	LLMBaseURL     string
	LLMModel       string
	LLMTemperature float32
	LLMMaxTokens   int
	LLMTimeout     time.Duration
	LLMMaxRetries  int

	// RAG Server
	RAGServerURL     string
	RAGServerTimeout time.Duration

	// Emergency detection
	EmergencyVocabularyFile string

	// Logging
	LogLevel string
}

// ConfigurationError reports a setting that prevents the service from starting
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s %s", e.Key, e.Reason)
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                    getEnvAsInt("PORT", 8000),
		Env:                     getEnv("ENVIRONMENT", "development"),
		CORSOrigins:             getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		RateLimit:               getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		DatabaseURL:             getEnv("DATABASE_URL", ""),
		LLMProvider:             strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
		LLMAPIKey:               getEnv("LLM_API_KEY", getEnv("OPENAI_API_KEY", "")),
		LLMBaseURL:              getEnv("LLM_BASE_URL", ""),
		LLMModel:                getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMTemperature:          float32(getEnvAsFloat("LLM_TEMPERATURE", 0.2)),
		LLMMaxTokens:            getEnvAsInt("LLM_MAX_TOKENS", 1000),
		LLMTimeout:              time.Duration(getEnvAsInt("LLM_TIMEOUT_MS", 30000)) * time.Millisecond,
		LLMMaxRetries:           getEnvAsInt("LLM_MAX_RETRIES", 3),
		RAGServerURL:            getEnv("RAG_SERVER_URL", "http://localhost:8080"),
		RAGServerTimeout:        time.Duration(getEnvAsInt("RAG_SERVER_TIMEOUT", 5000)) * time.Millisecond,
		EmergencyVocabularyFile: getEnv("EMERGENCY_VOCABULARY_FILE", ""),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings that must hold before the service starts
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderOpenAI:
		if c.LLMAPIKey == "" {
			return &ConfigurationError{Key: "LLM_API_KEY", Reason: "is required when LLM_PROVIDER=openai"}
		}
	case ProviderPlaceholder:
	default:
		return &ConfigurationError{Key: "LLM_PROVIDER", Reason: fmt.Sprintf("has unknown value %q", c.LLMProvider)}
	}

	if c.Port <= 0 || c.Port > 65535 {
		return &ConfigurationError{Key: "PORT", Reason: fmt.Sprintf("is out of range: %d", c.Port)}
	}
	if c.LLMMaxRetries < 0 {
		return &ConfigurationError{Key: "LLM_MAX_RETRIES", Reason: "must not be negative"}
	}

	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := getEnv(key, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseFloat(valStr, 64); err == nil {
		return val
	}
	return defaultVal
}

// getEnvAsList splits a comma-separated value, ignoring blank entries
func getEnvAsList(key string, defaultVal []string) []string {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultVal
	}

	var out []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
