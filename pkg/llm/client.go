package llm

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/taskdag/taskdag/pkg/models"
)

// Message roles understood by every transport.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a single chat call. A zero Temperature pointer or zero
// MaxTokens falls back to the client's bound defaults.
type ChatRequest struct {
	Messages    []Message
	Model       string
	Temperature *float32
	MaxTokens   int
	Seed        *int
}

// ChatResponse is the transport-independent result of a chat call.
type ChatResponse struct {
	Content         string
	Usage           *models.TokenUsage
	CostUsd         string
	GenerationStats map[string]interface{}
	FinishReason    string
}

// Client is the narrow contract the planner and executor depend on.
// Implementations must honor context cancellation.
type Client interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// ToolDefinition describes a callable tool to the LLM and to the
// decomposer's {{tools}} prompt token.
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// ToolCapableClient is implemented by transports that support native tool
// calls. The planning and execution paths do not use it; it exists for
// richer callers.
type ToolCapableClient interface {
	Client
	ChatWithTools(ctx context.Context, req *ChatRequest, tools []ToolDefinition) (*ChatResponse, error)
}

// ToolCallSupport is the advisory result of ValidateToolCallSupport.
type ToolCallSupport struct {
	Supported bool
	Message   string
}

// ValidateToolCallSupport reports whether a model is expected to handle
// native tool calls. Purely advisory; the answer is heuristic.
func ValidateToolCallSupport(model string) ToolCallSupport {
	lower := strings.ToLower(model)
	for _, marker := range []string{"instruct", "-base", "embed"} {
		if strings.Contains(lower, marker) {
			return ToolCallSupport{
				Supported: false,
				Message:   "model " + model + " is not expected to support tool calls",
			}
		}
	}
	return ToolCallSupport{Supported: true}
}
