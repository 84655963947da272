// Package e2e exercises the whole engine the way the server process
// wires it: planner, executor, stop coordinator, and event bus share one
// database, tool registry, and LLM factory. Only the LLM transport and
// the tools are replaced with scriptable test doubles.
package e2e

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/database"
	"github.com/taskdag/taskdag/pkg/events"
	"github.com/taskdag/taskdag/pkg/executor"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/planner"
	"github.com/taskdag/taskdag/pkg/services"
	"github.com/taskdag/taskdag/pkg/tools"
	testdb "github.com/taskdag/taskdag/test/database"
)

// stack is one fully wired engine instance over a test database.
type stack struct {
	client   *database.Client
	planner  *planner.Planner
	executor *executor.Executor
	bus      *events.Bus
	stops    *services.StopService
}

// factoryFunc adapts a plain function to the client factory contract the
// planner and executor share.
type factoryFunc func(opts llm.ClientOptions) (llm.Client, error)

func (f factoryFunc) Client(opts llm.ClientOptions) (llm.Client, error) { return f(opts) }

func newStack(t *testing.T, registry *tools.Registry, factory factoryFunc) *stack {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	require.NoError(t, services.NewAgentService(client.Client).Seed(ctx, config.BuiltinAgents()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := events.NewBus(logger)

	p := planner.New(
		services.NewDagService(client.Client),
		services.NewAgentService(client.Client),
		services.NewStopService(client.Client),
		registry,
		factory,
		logger,
	)

	cfg := config.DefaultExecutorConfig()
	cfg.ArtifactsDir = t.TempDir()
	exec := executor.New(cfg, client.Client, registry, factory, bus, nil, logger)
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = exec.Shutdown(shutdownCtx)
	})

	return &stack{
		client:   client,
		planner:  p,
		executor: exec,
		bus:      bus,
		stops:    services.NewStopService(client.Client),
	}
}

func newRegistry(t *testing.T, stubs ...*stubTool) *tools.Registry {
	t.Helper()
	registry := tools.NewRegistry()
	for _, s := range stubs {
		require.NoError(t, registry.Register(s))
	}
	return registry
}

// stubTool is a scriptable tool that records how often it ran.
type stubTool struct {
	name string
	run  func(ctx context.Context, params map[string]interface{}, ec *tools.ExecContext) (interface{}, error)

	mu    sync.Mutex
	calls int
}

func (s *stubTool) Definition() tools.Definition {
	return tools.Definition{Name: s.name, Description: "test tool"}
}

func (s *stubTool) Execute(ctx context.Context, params map[string]interface{}, ec *tools.ExecContext) (interface{}, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.run(ctx, params, ec)
}

func (s *stubTool) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// gatedTool blocks its first call until released, so tests can act while
// a wave is provably in flight.
func gatedTool(name string, result interface{}) (*stubTool, chan struct{}, chan struct{}) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	tool := &stubTool{name: name, run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
		once.Do(func() { close(entered) })
		<-release
		return result, nil
	}}
	return tool, entered, release
}

// okTool returns a fixed result immediately.
func okTool(name string, result interface{}) *stubTool {
	return &stubTool{name: name, run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
		return result, nil
	}}
}

// routedFactory answers the engine's three call sites by shape: the
// title call is the only one made with SkipStats, synthesis prompts
// carry the task results block, and everything else is a planning call.
func routedFactory(planning llm.Client, synthesis string) factoryFunc {
	title := llm.NewScriptedClient(
		titleResponse("Test Run"), titleResponse("Test Run"), titleResponse("Test Run"),
	)
	return func(opts llm.ClientOptions) (llm.Client, error) {
		if opts.SkipStats {
			return title, nil
		}
		return &routedClient{planning: planning, synthesis: synthesis}, nil
	}
}

type routedClient struct {
	planning  llm.Client
	synthesis string
}

func (c *routedClient) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	if len(req.Messages) > 1 && strings.Contains(req.Messages[1].Content, "Task results:") {
		return &llm.ChatResponse{
			Content: c.synthesis,
			Usage:   &models.TokenUsage{PromptTokens: 120, CompletionTokens: 80, TotalTokens: 200},
			CostUsd: "0.0010",
		}, nil
	}
	return c.planning.Chat(ctx, req)
}

// hookClient runs a callback after each completed call, so tests can
// change state between planning attempts.
type hookClient struct {
	inner llm.Client
	after func(call int)
	calls int
}

func (h *hookClient) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	resp, err := h.inner.Chat(ctx, req)
	h.calls++
	if h.after != nil {
		h.after(h.calls)
	}
	return resp, err
}

func planResponse(content string) llm.ScriptedResponse {
	return llm.ScriptedResponse{Response: &llm.ChatResponse{
		Content: content,
		Usage:   &models.TokenUsage{PromptTokens: 800, CompletionTokens: 400, TotalTokens: 1200},
		CostUsd: "0.0020",
	}}
}

func titleResponse(title string) llm.ScriptedResponse {
	return llm.ScriptedResponse{Response: &llm.ChatResponse{
		Content: title,
		Usage:   &models.TokenUsage{PromptTokens: 60, CompletionTokens: 15, TotalTokens: 75},
		CostUsd: "0.0015",
	}}
}

func fenced(s string) string { return "```json\n" + s + "\n```" }

func waitForStatus(t *testing.T, client *database.Client, executionID string, want ...dagexecution.Status) *ent.DagExecution {
	t.Helper()
	var row *ent.DagExecution
	require.Eventually(t, func() bool {
		r, err := client.DagExecution.Get(context.Background(), executionID)
		if err != nil {
			return false
		}
		for _, s := range want {
			if r.Status == s {
				row = r
				return true
			}
		}
		return false
	}, 15*time.Second, 20*time.Millisecond, "execution %s never reached %v", executionID, want)
	return row
}

// collectTypes drains a stream and returns the event types in order.
func collectTypes(stream <-chan events.Event) []events.EventType {
	var types []events.EventType
	for evt := range stream {
		types = append(types, evt.Type)
	}
	return types
}
