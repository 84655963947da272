package llm

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/models"
	llmv1 "github.com/taskdag/taskdag/proto"
)

// GRPCClient implements Client against the LLM sidecar service. The sidecar
// streams deltas; Chat accumulates them into one response.
type GRPCClient struct {
	conn      *grpc.ClientConn
	client    llmv1.LLMServiceClient
	provider  string
	model     string
	maxTokens int
	skipStats bool
	pricing   map[string]config.ModelPricing
}

// NewGRPCClient connects to the sidecar at the configured address.
func NewGRPCClient(name string, cfg config.LLMProviderConfig, opts ClientOptions) (*GRPCClient, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("LLM provider %q: no sidecar address configured", name)
	}
	conn, err := grpc.NewClient(cfg.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM sidecar at %s: %w", cfg.Address, err)
	}
	model := opts.Model
	if model == "" {
		model = cfg.Model
	}
	return &GRPCClient{
		conn:      conn,
		client:    llmv1.NewLLMServiceClient(conn),
		provider:  name,
		model:     model,
		maxTokens: opts.MaxTokens,
		skipStats: opts.SkipStats,
		pricing:   cfg.Pricing,
	}, nil
}

// Chat implements Client.
func (c *GRPCClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	protoReq := &llmv1.GenerateRequest{
		Model:     model,
		MaxTokens: int32(maxTokens),
		Messages:  make([]*llmv1.Message, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		protoReq.Messages = append(protoReq.Messages, &llmv1.Message{Role: m.Role, Content: m.Content})
	}
	if req.Temperature != nil {
		protoReq.Temperature = req.Temperature
	}
	if req.Seed != nil {
		seed := int32(*req.Seed)
		protoReq.Seed = &seed
	}

	start := time.Now()
	stream, err := c.client.Generate(ctx, protoReq)
	if err != nil {
		return nil, fmt.Errorf("sidecar Generate call failed: %w", err)
	}

	var (
		content      strings.Builder
		usage        *models.TokenUsage
		finishReason string
		costFromSide string
	)
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sidecar stream failed: %w", err)
		}
		switch chunk := resp.Content.(type) {
		case *llmv1.GenerateResponse_Text:
			content.WriteString(chunk.Text.Content)
		case *llmv1.GenerateResponse_Usage:
			usage = &models.TokenUsage{
				PromptTokens:     int(chunk.Usage.PromptTokens),
				CompletionTokens: int(chunk.Usage.CompletionTokens),
				TotalTokens:      int(chunk.Usage.TotalTokens),
			}
		case *llmv1.GenerateResponse_Error:
			return nil, fmt.Errorf("sidecar reported error: %s", chunk.Error.Message)
		case *llmv1.GenerateResponse_Done:
			finishReason = chunk.Done.FinishReason
			costFromSide = chunk.Done.CostUsd
		}
	}

	cost := costFromSide
	if cost == "" {
		cost, err = CostUSD(c.pricing[model], usage)
		if err != nil {
			cost = ""
		}
	}

	out := &ChatResponse{
		Content:      content.String(),
		Usage:        usage,
		CostUsd:      cost,
		FinishReason: finishReason,
	}
	if !c.skipStats {
		out.GenerationStats = map[string]interface{}{
			"provider":      c.provider,
			"model":         model,
			"finish_reason": finishReason,
			"latency_ms":    time.Since(start).Milliseconds(),
		}
	}
	return out, nil
}

// Close releases the sidecar connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
