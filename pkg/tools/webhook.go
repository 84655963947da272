package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	webhookTimeout = 30 * time.Second
	webhookMaxBody = 100_000
)

// WebhookTool delivers a JSON payload to an HTTP endpoint.
type WebhookTool struct {
	client *resty.Client
}

// NewWebhookTool creates the webhook tool.
func NewWebhookTool() *WebhookTool {
	return &WebhookTool{client: resty.New().SetTimeout(webhookTimeout)}
}

func (t *WebhookTool) Definition() Definition {
	return Definition{
		Name:        "webhook",
		Description: "Call an HTTP endpoint with an optional JSON payload and return the response.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"url": {
					"type": "string",
					"description": "The endpoint URL"
				},
				"method": {
					"type": "string",
					"enum": ["GET", "POST", "PUT", "PATCH", "DELETE"],
					"description": "HTTP method (default: POST)"
				},
				"headers": {
					"type": "object",
					"additionalProperties": {"type": "string"},
					"description": "Optional request headers"
				},
				"payload": {
					"description": "Optional JSON payload sent as the request body"
				}
			},
			"required": ["url"],
			"additionalProperties": false
		}`),
	}
}

type webhookInput struct {
	URL     string            `json:"url"`
	Method  string            `json:"method,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Payload interface{}       `json:"payload,omitempty"`
}

func (t *WebhookTool) Execute(ctx context.Context, params map[string]interface{}, ec *ExecContext) (interface{}, error) {
	var in webhookInput
	if err := decodeParams(params, &in); err != nil {
		return nil, err
	}
	if in.URL == "" {
		return nil, errors.New("url is required")
	}
	method := strings.ToUpper(in.Method)
	if method == "" {
		method = "POST"
	}

	req := t.client.R().SetContext(ctx)
	if len(in.Headers) > 0 {
		req.SetHeaders(in.Headers)
	}
	if in.Payload != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(in.Payload)
	}

	resp, err := req.Execute(method, in.URL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("webhook request failed: %w", err)
	}

	body := resp.String()
	if len(body) > webhookMaxBody {
		body = body[:webhookMaxBody] + "\n... [content truncated]"
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("webhook returned status %d: %s", resp.StatusCode(), body)
	}

	return map[string]interface{}{
		"status_code": resp.StatusCode(),
		"body":        body,
	}, nil
}
