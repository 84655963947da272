package llm

import (
	"context"
	"fmt"
	"sync"
)

// ScriptedResponse is one canned reply, or an error returned in its place.
type ScriptedResponse struct {
	Response *ChatResponse
	Err      error
}

// ScriptedClient replays canned responses in call order. Tests drive the
// planner and executor with it instead of a live provider.
type ScriptedClient struct {
	mu        sync.Mutex
	responses []ScriptedResponse
	calls     []*ChatRequest
}

// NewScriptedClient creates a client that answers each Chat call with the
// next scripted response.
func NewScriptedClient(responses ...ScriptedResponse) *ScriptedClient {
	return &ScriptedClient{responses: responses}
}

// Script appends responses to the queue.
func (c *ScriptedClient) Script(responses ...ScriptedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses = append(c.responses, responses...)
}

// Chat pops the next scripted response. Exhausting the script is an error,
// never a silent success.
func (c *ScriptedClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, req)
	if len(c.responses) == 0 {
		return nil, fmt.Errorf("scripted client exhausted after %d calls", len(c.calls))
	}
	next := c.responses[0]
	c.responses = c.responses[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return next.Response, nil
}

// Calls returns the recorded requests in call order.
func (c *ScriptedClient) Calls() []*ChatRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*ChatRequest, len(c.calls))
	copy(out, c.calls)
	return out
}

// CallCount reports how many Chat calls were made.
func (c *ScriptedClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}
