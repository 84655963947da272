package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/models"
)

// OpenAIClient talks to any OpenAI-compatible chat endpoint (OpenAI itself,
// OpenRouter, local gateways) via the completions API.
type OpenAIClient struct {
	client    *openai.Client
	provider  string
	model     string
	maxTokens int
	skipStats bool
	pricing   map[string]config.ModelPricing
	logger    *slog.Logger
}

// NewOpenAIClient builds a client from provider config. The bound model and
// maxTokens act as defaults for requests that leave those fields empty.
func NewOpenAIClient(name string, cfg config.LLMProviderConfig, opts ClientOptions, logger *slog.Logger) (*OpenAIClient, error) {
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if cfg.APIKeyEnv != "" && apiKey == "" {
		return nil, fmt.Errorf("LLM provider %q: environment variable %s is not set", name, cfg.APIKeyEnv)
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	model := opts.Model
	if model == "" {
		model = cfg.Model
	}
	if model == "" {
		return nil, fmt.Errorf("LLM provider %q: no model configured", name)
	}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(clientCfg),
		provider:  name,
		model:     model,
		maxTokens: opts.MaxTokens,
		skipStats: opts.SkipStats,
		pricing:   cfg.Pricing,
		logger:    logger.With("component", "llm", "provider", name, "model", model),
	}, nil
}

// Chat implements Client.
func (c *OpenAIClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	apiReq := c.buildRequest(req)

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}
	return c.buildResponse(apiReq.Model, resp.Choices[0].Message.Content, string(resp.Choices[0].FinishReason), resp.Usage, time.Since(start))
}

// ChatWithTools implements ToolCapableClient. Tool call results are folded
// into the content; the planning and execution paths never use this.
func (c *OpenAIClient) ChatWithTools(ctx context.Context, req *ChatRequest, tools []ToolDefinition) (*ChatResponse, error) {
	apiReq := c.buildRequest(req)
	for _, t := range tools {
		apiReq.Tools = append(apiReq.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema,
			},
		})
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, fmt.Errorf("chat completion with tools failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}
	return c.buildResponse(apiReq.Model, resp.Choices[0].Message.Content, string(resp.Choices[0].FinishReason), resp.Usage, time.Since(start))
}

func (c *OpenAIClient) buildRequest(req *ChatRequest) openai.ChatCompletionRequest {
	model := req.Model
	if model == "" {
		model = c.model
	}
	apiReq := openai.ChatCompletionRequest{
		Model:    model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		apiReq.Messages = append(apiReq.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	if req.Temperature != nil {
		apiReq.Temperature = *req.Temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}
	if maxTokens > 0 {
		apiReq.MaxCompletionTokens = maxTokens
	}
	if req.Seed != nil {
		apiReq.Seed = req.Seed
	}
	return apiReq
}

func (c *OpenAIClient) buildResponse(model, content, finishReason string, u openai.Usage, elapsed time.Duration) (*ChatResponse, error) {
	usage := &models.TokenUsage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
	if usage.IsZero() {
		usage = nil
	}

	cost, err := CostUSD(c.pricing[model], usage)
	if err != nil {
		c.logger.Warn("Cost computation failed", "error", err)
		cost = ""
	}

	out := &ChatResponse{
		Content:      content,
		Usage:        usage,
		CostUsd:      cost,
		FinishReason: finishReason,
	}
	if !c.skipStats {
		out.GenerationStats = map[string]interface{}{
			"provider":      c.provider,
			"model":         model,
			"finish_reason": finishReason,
			"latency_ms":    elapsed.Milliseconds(),
		}
	}
	return out, nil
}
