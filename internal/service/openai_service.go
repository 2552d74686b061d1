package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sashabaranov/go-openai"

	"serviceia/internal/config"
	"serviceia/internal/util"
)

// chatCompleter is the slice of the go-openai client the service uses
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIService generates text through an OpenAI-compatible chat completion API
type OpenAIService struct {
	client      chatCompleter
	model       string
	temperature float32
	maxTokens   int
	maxRetries  int
	newBackOff  func() backoff.BackOff
	logger      *util.Logger
}

// NewOpenAIService creates a new OpenAI service instance
func NewOpenAIService(cfg *config.Config) *OpenAIService {
	clientCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		clientCfg.BaseURL = cfg.LLMBaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.LLMTimeout}

	return newOpenAIService(openai.NewClientWithConfig(clientCfg), cfg)
}

func newOpenAIService(client chatCompleter, cfg *config.Config) *OpenAIService {
	return &OpenAIService{
		client:      client,
		model:       cfg.LLMModel,
		temperature: cfg.LLMTemperature,
		maxTokens:   cfg.LLMMaxTokens,
		maxRetries:  cfg.LLMMaxRetries,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxElapsedTime = cfg.LLMTimeout
			return b
		},
		logger: util.NewLogger("OpenAIService"),
	}
}

// Generate sends the system and user prompts and returns the first choice.
// Rate limits, server errors, and network failures are retried with exponential backoff.
func (os *OpenAIService) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	os.logger.Start(string(req.Task))
	defer os.logger.End(string(req.Task))

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
	}

	var content string
	attempt := 0
	operation := func() error {
		attempt++
		var err error
		content, err = os.callOpenAI(ctx, messages)
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			return backoff.Permanent(err)
		}
		os.logger.Warn(fmt.Sprintf("transient failure on attempt %d", attempt), err)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(os.newBackOff(), uint64(os.maxRetries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		os.logger.Error("Failed to generate "+string(req.Task), err)
		return "", &ProviderError{Op: string(req.Task), Transient: isTransient(err), Err: err}
	}

	os.logger.KeyValue("Task", req.Task, "Attempts", attempt, "Length", len(content))
	return content, nil
}

// callOpenAI makes a call to OpenAI API with given messages
func (os *OpenAIService) callOpenAI(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := os.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       os.model,
		Messages:    messages,
		Temperature: os.temperature,
		MaxTokens:   os.maxTokens,
	})

	if err != nil {
		return "", fmt.Errorf("openai api call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response from openai")
	}
	return content, nil
}

// isTransient reports whether a failed call is worth retrying
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.HTTPStatusCode)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return retryableStatus(reqErr.HTTPStatusCode)
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
