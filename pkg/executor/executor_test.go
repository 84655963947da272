package executor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent"
	entdag "github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/stoprequest"
	"github.com/taskdag/taskdag/ent/substep"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/database"
	"github.com/taskdag/taskdag/pkg/events"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/plan"
	"github.com/taskdag/taskdag/pkg/services"
	"github.com/taskdag/taskdag/pkg/tools"
	testdb "github.com/taskdag/taskdag/test/database"
)

// stubTool is a scriptable tool that records the params it was called
// with.
type stubTool struct {
	name string
	run  func(ctx context.Context, params map[string]interface{}, ec *tools.ExecContext) (interface{}, error)

	mu    sync.Mutex
	calls []map[string]interface{}
}

func (s *stubTool) Definition() tools.Definition {
	return tools.Definition{Name: s.name, Description: "test tool"}
}

func (s *stubTool) Execute(ctx context.Context, params map[string]interface{}, ec *tools.ExecContext) (interface{}, error) {
	s.mu.Lock()
	s.calls = append(s.calls, params)
	s.mu.Unlock()
	return s.run(ctx, params, ec)
}

func (s *stubTool) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubTool) call(i int) map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[i]
}

// funcClient answers chat calls through a callback and records requests.
// Tasks within a wave run concurrently, so a positional script would be
// order-dependent; answering by request content is not.
type funcClient struct {
	fn func(req *llm.ChatRequest) (*llm.ChatResponse, error)

	mu    sync.Mutex
	calls []*llm.ChatRequest
}

func (c *funcClient) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.calls = append(c.calls, req)
	c.mu.Unlock()
	return c.fn(req)
}

func (c *funcClient) requests() []*llm.ChatRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*llm.ChatRequest, len(c.calls))
	copy(out, c.calls)
	return out
}

// recordingFactory hands out one client for every option set and keeps
// the option sets for routing assertions.
type recordingFactory struct {
	client llm.Client

	mu   sync.Mutex
	opts []llm.ClientOptions
}

func (f *recordingFactory) Client(opts llm.ClientOptions) (llm.Client, error) {
	f.mu.Lock()
	f.opts = append(f.opts, opts)
	f.mu.Unlock()
	return f.client, nil
}

func (f *recordingFactory) options() []llm.ClientOptions {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]llm.ClientOptions, len(f.opts))
	copy(out, f.opts)
	return out
}

// synthesisOnly answers the synthesis call with fixed markdown.
func synthesisOnly(content string) *funcClient {
	return &funcClient{fn: func(req *llm.ChatRequest) (*llm.ChatResponse, error) {
		return &llm.ChatResponse{
			Content: content,
			Usage:   &models.TokenUsage{PromptTokens: 120, CompletionTokens: 80, TotalTokens: 200},
			CostUsd: "0.0010",
		}, nil
	}}
}

func newTestExecutor(t *testing.T, client *database.Client, registry *tools.Registry, factory ClientFactory) (*Executor, *events.Bus) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := events.NewBus(logger)
	cfg := config.DefaultExecutorConfig()
	cfg.ArtifactsDir = t.TempDir()
	exec := New(cfg, client.Client, registry, factory, bus, nil, logger)
	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = exec.Shutdown(shutdownCtx)
	})
	return exec, bus
}

func newRegistry(t *testing.T, stubs ...*stubTool) *tools.Registry {
	t.Helper()
	registry := tools.NewRegistry()
	for _, s := range stubs {
		require.NoError(t, registry.Register(s))
	}
	return registry
}

func toolTask(id, toolName string, params map[string]interface{}, deps ...string) plan.SubTask {
	if len(deps) == 0 {
		deps = []string{"none"}
	}
	return plan.SubTask{
		ID:           id,
		Description:  "Task " + id,
		ActionType:   models.ActionTypeTool,
		ToolOrPrompt: plan.ToolOrPrompt{Name: toolName, Params: params},
		Dependencies: deps,
	}
}

func inferenceTask(id, persona string, deps ...string) plan.SubTask {
	if len(deps) == 0 {
		deps = []string{"none"}
	}
	return plan.SubTask{
		ID:           id,
		Description:  "Task " + id,
		ActionType:   models.ActionTypeInference,
		ToolOrPrompt: plan.ToolOrPrompt{Name: persona},
		Dependencies: deps,
	}
}

func seedDag(t *testing.T, client *database.Client, goal string, tasks ...plan.SubTask) string {
	t.Helper()
	p := &plan.Plan{
		OriginalRequest: goal,
		Intent:          plan.Intent{Primary: goal},
		SynthesisPlan:   "Combine the task results into one answer.",
		Validation:      plan.Validation{Coverage: models.CoverageHigh},
		SubTasks:        tasks,
	}
	m, err := p.ToMap()
	require.NoError(t, err)
	row, err := client.Dag.Create().
		SetID("dag_" + strings.ReplaceAll(t.Name(), "/", "_") + fmt.Sprintf("_%d", time.Now().UnixNano())).
		SetStatus(entdag.StatusSuccess).
		SetResult(m).
		SetAgentName(config.BuiltinPlannerAgentName).
		Save(context.Background())
	require.NoError(t, err)
	return row.ID
}

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

func stepByTask(t *testing.T, client *database.Client, executionID, taskID string) *ent.SubStep {
	t.Helper()
	step, err := client.SubStep.Query().
		Where(substep.ExecutionIDEQ(executionID), substep.TaskIDEQ(taskID)).
		Only(context.Background())
	require.NoError(t, err)
	return step
}

func TestExecutor_Execute(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("two wave plan runs to completion", func(t *testing.T) {
		fetch := &stubTool{name: "fetchStub", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			return map[string]interface{}{"content": "42 users signed up"}, nil
		}}
		report := &stubTool{name: "reportStub", run: func(_ context.Context, params map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			return "report about: " + params["text"].(string), nil
		}}
		exec, _ := newTestExecutor(t, client, newRegistry(t, fetch, report), &recordingFactory{client: synthesisOnly("# Weekly report")})

		dagID := seedDag(t, client, "Report on signups",
			toolTask("001", "fetchStub", nil),
			toolTask("002", "reportStub", map[string]interface{}{"text": "<Result from Task 001>"}, "001"),
		)
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)
		assert.Equal(t, dagexecution.StatusPending, created.Status, "Execute returns before the run starts")
		assert.Equal(t, 2, created.TotalTasks)

		row := waitForStatus(t, client, created.ID, dagexecution.StatusCompleted)
		assert.Equal(t, 2, row.CompletedTasks)
		assert.Zero(t, row.FailedTasks)
		require.NotNil(t, row.FinalResult)
		assert.Equal(t, "# Weekly report", *row.FinalResult)
		assert.Equal(t, "# Weekly report", row.SynthesisResult["content"])
		require.NotNil(t, row.StartedAt)
		require.NotNil(t, row.CompletedAt)
		require.NotNil(t, row.DurationMs)

		usage := models.UsageFromMap(row.TotalUsage)
		require.NotNil(t, usage)
		assert.Equal(t, 200, usage.TotalTokens, "only the synthesis call consumed tokens")
		require.NotNil(t, row.TotalCostUsd)
		assert.Equal(t, "0.0010", *row.TotalCostUsd)

		require.Equal(t, 1, report.callCount())
		assert.Equal(t, `{"content":"42 users signed up"}`, report.call(0)["text"],
			"the placeholder resolved to the stringified upstream result")

		second := stepByTask(t, client, created.ID, "002")
		assert.Equal(t, substep.StatusCompleted, second.Status)
		var secondResult string
		require.NoError(t, json.Unmarshal(second.Result, &secondResult))
		assert.Contains(t, secondResult, "42 users signed up", "the placeholder resolved to the upstream result")

		synth := stepByTask(t, client, created.ID, models.SynthesisTaskID)
		assert.Equal(t, substep.StatusCompleted, synth.Status)
		assert.Equal(t, []string{"001", "002"}, synth.Dependencies)
	})

	t.Run("inference task routes through the persona", func(t *testing.T) {
		agents := services.NewAgentService(client.Client)
		_, err := agents.CreateAgent(ctx, models.CreateAgentRequest{
			Name:           "summarizer",
			PromptTemplate: "You summarize text plainly. Today is {{currentDate}}. Keep it under one paragraph and do not speculate beyond the input you are given.",
			Provider:       "openrouter",
			Model:          "best/summarizer-v2",
			Activate:       true,
		})
		require.NoError(t, err)

		longResult := strings.Repeat("x", depSnippetLimit+500)
		fetch := &stubTool{name: "fetchStub2", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			return longResult, nil
		}}
		chat := &funcClient{fn: func(req *llm.ChatRequest) (*llm.ChatResponse, error) {
			if strings.Contains(req.Messages[0].Content, "You summarize text") {
				return &llm.ChatResponse{
					Content: "A short summary.",
					Usage:   &models.TokenUsage{PromptTokens: 900, CompletionTokens: 100, TotalTokens: 1000},
					CostUsd: "0.0030",
				}, nil
			}
			return &llm.ChatResponse{Content: "# Done", CostUsd: "0.0005"}, nil
		}}
		factory := &recordingFactory{client: chat}
		exec, _ := newTestExecutor(t, client, newRegistry(t, fetch), factory)

		dagID := seedDag(t, client, "Summarize the page",
			toolTask("001", "fetchStub2", nil),
			inferenceTask("002", "summarizer", "001"),
		)
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)
		row := waitForStatus(t, client, created.ID, dagexecution.StatusCompleted)

		// Persona provider and model reached the factory.
		var sawPersona bool
		for _, opts := range factory.options() {
			if opts.Provider == "openrouter" && opts.Model == "best/summarizer-v2" {
				sawPersona = true
			}
		}
		assert.True(t, sawPersona, "the agent's provider/model select the client")

		var inferenceReq *llm.ChatRequest
		for _, req := range chat.requests() {
			if strings.Contains(req.Messages[0].Content, "You summarize text") {
				inferenceReq = req
			}
		}
		require.NotNil(t, inferenceReq)
		assert.Contains(t, inferenceReq.Messages[0].Content, time.Now().Format("2006-01-02"))
		assert.NotContains(t, inferenceReq.Messages[0].Content, "{{currentDate}}")

		user := inferenceReq.Messages[1].Content
		assert.Contains(t, user, "Overall goal: Summarize the page")
		assert.Contains(t, user, "Task: Task 002")
		assert.Contains(t, user, "Result from task 001")
		assert.Contains(t, user, strings.Repeat("x", depSnippetLimit)+"…")
		assert.NotContains(t, user, strings.Repeat("x", depSnippetLimit+1), "dependency snippets are capped")

		step := stepByTask(t, client, created.ID, "002")
		usage := models.UsageFromMap(step.Usage)
		require.NotNil(t, usage)
		assert.Equal(t, 1000, usage.TotalTokens)
		require.NotNil(t, step.CostUsd)
		assert.Equal(t, "0.0030", *step.CostUsd)

		total := models.UsageFromMap(row.TotalUsage)
		require.NotNil(t, total)
		assert.Equal(t, 1000, total.TotalTokens, "synthesis reported no usage here")
		require.NotNil(t, row.TotalCostUsd)
		assert.Equal(t, "0.0035", *row.TotalCostUsd, "decimal sum across sub-steps and synthesis")
	})

	t.Run("task failure suspends after the wave settles", func(t *testing.T) {
		ok := &stubTool{name: "okStub", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			return "fine", nil
		}}
		boom := &stubTool{name: "boomStub", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			return nil, errors.New("upstream returned 503")
		}}
		exec, _ := newTestExecutor(t, client, newRegistry(t, ok, boom), &recordingFactory{client: synthesisOnly("unused")})

		dagID := seedDag(t, client, "Mixed outcome",
			toolTask("001", "okStub", nil),
			toolTask("002", "boomStub", nil),
		)
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)

		row := waitForStatus(t, client, created.ID, dagexecution.StatusSuspended)
		require.NotNil(t, row.SuspendedReason)
		assert.Contains(t, *row.SuspendedReason, "task 002 failed")
		assert.Contains(t, *row.SuspendedReason, "upstream returned 503")
		require.NotNil(t, row.SuspendedAt)
		assert.Equal(t, 1, row.CompletedTasks, "the sibling's success is kept")
		assert.Equal(t, 1, row.FailedTasks)

		failed := stepByTask(t, client, created.ID, "002")
		assert.Equal(t, substep.StatusFailed, failed.Status)
		require.NotNil(t, failed.Error)
		assert.Equal(t, "upstream returned 503", *failed.Error)

		_, err = client.SubStep.Query().
			Where(substep.ExecutionIDEQ(created.ID), substep.TaskIDEQ(models.SynthesisTaskID)).
			Only(ctx)
		assert.True(t, ent.IsNotFound(err), "no synthesis on a suspended run")
	})

	t.Run("unknown tool fails its task", func(t *testing.T) {
		exec, _ := newTestExecutor(t, client, newRegistry(t), &recordingFactory{client: synthesisOnly("unused")})

		dagID := seedDag(t, client, "Ghost tool", toolTask("001", "ghostTool", nil))
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)

		row := waitForStatus(t, client, created.ID, dagexecution.StatusSuspended)
		require.NotNil(t, row.SuspendedReason)
		assert.Contains(t, *row.SuspendedReason, `unknown tool "ghostTool"`)
	})

	t.Run("a dependency cycle suspends as a deadlock", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		var once sync.Once
		gated := &stubTool{name: "gatedStub5", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			once.Do(func() { close(entered) })
			<-release
			return "done", nil
		}}
		exec, bus := newTestExecutor(t, client, newRegistry(t, gated), &recordingFactory{client: synthesisOnly("unused")})

		// 002 and 003 wait on each other; reference validation only checks
		// that the ids exist, so the cycle surfaces in the wave loop.
		dagID := seedDag(t, client, "Cyclic plan",
			toolTask("001", "gatedStub5", nil),
			toolTask("002", "neverStub", nil, "003"),
			toolTask("003", "neverStub", nil, "002"),
		)
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)

		<-entered
		streamCtx, cancelStream := context.WithTimeout(ctx, 15*time.Second)
		defer cancelStream()
		stream := bus.Stream(streamCtx, created.ID)
		close(release)

		var last events.Event
		for evt := range stream {
			last = evt
		}
		assert.Equal(t, events.EventTypeExecutionSuspended, last.Type)
		assert.Contains(t, last.Data["reason"], "dependency deadlock")

		row := waitForStatus(t, client, created.ID, dagexecution.StatusSuspended)
		require.NotNil(t, row.SuspendedReason)
		assert.Contains(t, *row.SuspendedReason, "dependency deadlock")
		assert.Equal(t, 1, row.CompletedTasks, "the wave before the deadlock settles normally")
	})

	t.Run("zero task plan completes on synthesis alone", func(t *testing.T) {
		chat := synthesisOnly("Nothing to do.")
		exec, _ := newTestExecutor(t, client, newRegistry(t), &recordingFactory{client: chat})

		dagID := seedDag(t, client, "Empty plan")
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)

		row := waitForStatus(t, client, created.ID, dagexecution.StatusCompleted)
		assert.Zero(t, row.CompletedTasks)
		require.NotNil(t, row.FinalResult)
		assert.Equal(t, "Nothing to do.", *row.FinalResult)

		reqs := chat.requests()
		require.Len(t, reqs, 1)
		assert.Contains(t, reqs[0].Messages[1].Content, "Task results:")
	})

	t.Run("unbatched writes persist per task", func(t *testing.T) {
		echo := &stubTool{name: "echoStub", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			return "echoed", nil
		}}
		exec, _ := newTestExecutor(t, client, newRegistry(t, echo), &recordingFactory{client: synthesisOnly("done")})

		dagID := seedDag(t, client, "Unbatched run", toolTask("001", "echoStub", nil))
		batch := false
		created, err := exec.Execute(ctx, dagID, &ExecutionConfig{BatchDBUpdates: &batch})
		require.NoError(t, err)

		waitForStatus(t, client, created.ID, dagexecution.StatusCompleted)
		step := stepByTask(t, client, created.ID, "001")
		assert.Equal(t, substep.StatusCompleted, step.Status)
		require.NotNil(t, step.StartedAt)
	})

	t.Run("refuses an unplanned dag", func(t *testing.T) {
		exec, _ := newTestExecutor(t, client, newRegistry(t), &recordingFactory{client: synthesisOnly("unused")})

		pendingDag, err := client.Dag.Create().
			SetID("dag_exec_pending_refusal").
			SetStatus(entdag.StatusPending).
			SetResult(map[string]interface{}{"clarification_needed": true}).
			SetAgentName(config.BuiltinPlannerAgentName).
			Save(ctx)
		require.NoError(t, err)

		_, err = exec.Execute(ctx, pendingDag.ID, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidInput)

		_, err = exec.Execute(ctx, "dag_does_not_exist", nil)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestExecutor_StopAndAbort(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("stop request parks the run at the wave boundary", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		var once sync.Once
		gated := &stubTool{name: "gatedStub", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			once.Do(func() { close(entered) })
			<-release
			return "slow result", nil
		}}
		after := &stubTool{name: "afterStub", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			return "should not run", nil
		}}
		exec, _ := newTestExecutor(t, client, newRegistry(t, gated, after), &recordingFactory{client: synthesisOnly("unused")})

		dagID := seedDag(t, client, "Stoppable run",
			toolTask("001", "gatedStub", nil),
			toolTask("002", "afterStub", nil, "001"),
		)
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)

		<-entered
		stops := services.NewStopService(client.Client)
		_, err = stops.RequestStopForExecution(ctx, created.ID)
		require.NoError(t, err)
		close(release)

		row := waitForStatus(t, client, created.ID, dagexecution.StatusPending)
		assert.Nil(t, row.CompletedAt, "a stopped run is not terminal")

		first := stepByTask(t, client, created.ID, "001")
		assert.Equal(t, substep.StatusCompleted, first.Status, "the in-flight wave finished before the stop")
		second := stepByTask(t, client, created.ID, "002")
		assert.Equal(t, substep.StatusPending, second.Status)
		assert.Zero(t, after.callCount())

		stopRow, err := client.StopRequest.Query().
			Where(stoprequest.ExecutionIDEQ(created.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, stoprequest.StatusHandled, stopRow.Status)
	})

	t.Run("abort rolls a running task back to pending", func(t *testing.T) {
		entered := make(chan struct{})
		var once sync.Once
		hang := &stubTool{name: "hangStub", run: func(taskCtx context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			once.Do(func() { close(entered) })
			<-taskCtx.Done()
			return nil, taskCtx.Err()
		}}
		exec, _ := newTestExecutor(t, client, newRegistry(t, hang), &recordingFactory{client: synthesisOnly("unused")})

		abortCtx, abort := context.WithCancel(ctx)
		defer abort()

		dagID := seedDag(t, client, "Abortable run", toolTask("001", "hangStub", nil))
		created, err := exec.Execute(ctx, dagID, &ExecutionConfig{Abort: abortCtx})
		require.NoError(t, err)

		<-entered
		waitForStatus(t, client, created.ID, dagexecution.StatusRunning)
		abort()

		row := waitForStatus(t, client, created.ID, dagexecution.StatusPending)
		assert.Nil(t, row.CompletedAt)

		step := stepByTask(t, client, created.ID, "001")
		assert.Equal(t, substep.StatusPending, step.Status)
		assert.Nil(t, step.StartedAt, "rollback clears the start time")
	})

	t.Run("cancel run behaves like an abort", func(t *testing.T) {
		entered := make(chan struct{})
		var once sync.Once
		hang := &stubTool{name: "hangStub2", run: func(taskCtx context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			once.Do(func() { close(entered) })
			<-taskCtx.Done()
			return nil, taskCtx.Err()
		}}
		exec, _ := newTestExecutor(t, client, newRegistry(t, hang), &recordingFactory{client: synthesisOnly("unused")})

		dagID := seedDag(t, client, "Cancelable run", toolTask("001", "hangStub2", nil))
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)

		<-entered
		assert.Contains(t, exec.ActiveRuns(), created.ID)
		assert.True(t, exec.CancelRun(created.ID))

		waitForStatus(t, client, created.ID, dagexecution.StatusPending)
		assert.False(t, exec.CancelRun("exec_not_here"))
	})
}

func TestExecutor_Resume(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("resume skips terminated tasks and feeds failed results downstream", func(t *testing.T) {
		var failFirst = true
		var mu sync.Mutex
		flaky := &stubTool{name: "flakyStub", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			mu.Lock()
			defer mu.Unlock()
			if failFirst {
				return nil, errors.New("rate limited, try later")
			}
			return "should not rerun", nil
		}}
		downstream := &stubTool{name: "downstreamStub", run: func(_ context.Context, params map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			return params["input"], nil
		}}
		exec, _ := newTestExecutor(t, client, newRegistry(t, flaky, downstream), &recordingFactory{client: synthesisOnly("# Partial report")})

		dagID := seedDag(t, client, "Recoverable run",
			toolTask("001", "flakyStub", nil),
			toolTask("002", "downstreamStub", map[string]interface{}{"input": "<Result from Task 001>"}, "001"),
		)
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)
		waitForStatus(t, client, created.ID, dagexecution.StatusSuspended)
		require.Equal(t, 1, flaky.callCount())

		mu.Lock()
		failFirst = false
		mu.Unlock()

		resumed, err := exec.Resume(ctx, created.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resumed.ID)

		row := waitForStatus(t, client, created.ID, dagexecution.StatusPartial)
		assert.Equal(t, 1, row.RetryCount)
		assert.Nil(t, row.SuspendedReason, "resume clears the suspension marker")
		assert.Equal(t, 1, row.CompletedTasks)
		assert.Equal(t, 1, row.FailedTasks)

		assert.Equal(t, 1, flaky.callCount(), "a failed task is not re-executed on resume")
		require.Equal(t, 1, downstream.callCount())
		assert.Equal(t, "rate limited, try later", downstream.call(0)["input"],
			"a failed dependency resolves to its recorded error text")

		require.NotNil(t, row.FinalResult)
		assert.Equal(t, "# Partial report", *row.FinalResult)
	})

	t.Run("resuming a stopped run finishes the remaining tasks", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		var once sync.Once
		gated := &stubTool{name: "gatedStub2", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			once.Do(func() { close(entered) })
			<-release
			return "first", nil
		}}
		tail := &stubTool{name: "tailStub", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			return "second", nil
		}}
		exec, _ := newTestExecutor(t, client, newRegistry(t, gated, tail), &recordingFactory{client: synthesisOnly("# Resumed")})

		dagID := seedDag(t, client, "Stop then resume",
			toolTask("001", "gatedStub2", nil),
			toolTask("002", "tailStub", nil, "001"),
		)
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)

		<-entered
		stops := services.NewStopService(client.Client)
		_, err = stops.RequestStopForExecution(ctx, created.ID)
		require.NoError(t, err)
		close(release)
		waitForStatus(t, client, created.ID, dagexecution.StatusPending)

		_, err = exec.Resume(ctx, created.ID, nil)
		require.NoError(t, err)

		row := waitForStatus(t, client, created.ID, dagexecution.StatusCompleted)
		assert.Equal(t, 2, row.CompletedTasks)
		assert.Equal(t, 1, gated.callCount(), "the completed first task is not re-executed")
		assert.Equal(t, 1, tail.callCount())
	})

	t.Run("refuses non resumable states", func(t *testing.T) {
		echo := &stubTool{name: "echoStub2", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			return "ok", nil
		}}
		exec, _ := newTestExecutor(t, client, newRegistry(t, echo), &recordingFactory{client: synthesisOnly("done")})

		dagID := seedDag(t, client, "Completed run", toolTask("001", "echoStub2", nil))
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)
		waitForStatus(t, client, created.ID, dagexecution.StatusCompleted)

		_, err = exec.Resume(ctx, created.ID, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidInput)

		_, err = exec.Resume(ctx, "exec_ghost", nil)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("refuses an execution without a dag", func(t *testing.T) {
		exec, _ := newTestExecutor(t, client, newRegistry(t), &recordingFactory{client: synthesisOnly("unused")})

		orphan, err := services.NewExecutionService(client.Client).CreateExecution(ctx, models.CreateExecutionRequest{
			OriginalRequest: "ad-hoc run with no plan row",
		})
		require.NoError(t, err)

		_, err = exec.Resume(ctx, orphan.ID, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})
}

func TestBuildInferencePromptCapsSnippetsOnRuneBoundaries(t *testing.T) {
	// Three-byte runes put the byte cap in the middle of a rune.
	runes := depSnippetLimit / 3
	wide := strings.Repeat("漢", runes+10)
	deps := []tools.Dependency{{TaskID: "001", Result: wide}}

	prompt := buildInferencePrompt("Translate the page", plan.SubTask{Description: "Task 002"}, deps)

	require.True(t, utf8.ValidString(prompt), "truncation must not split a rune")
	assert.Contains(t, prompt, strings.Repeat("漢", runes)+"…")
	assert.NotContains(t, prompt, strings.Repeat("漢", runes+1), "dependency snippets are capped")
}

func TestExecutor_Events(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("events arrive in wave order and end with one terminal", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		var once sync.Once
		gated := &stubTool{name: "gatedStub3", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			once.Do(func() { close(entered) })
			<-release
			return "first", nil
		}}
		tail := &stubTool{name: "tailStub2", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			return "second", nil
		}}
		exec, bus := newTestExecutor(t, client, newRegistry(t, gated, tail), &recordingFactory{client: synthesisOnly("# End")})

		dagID := seedDag(t, client, "Observed run",
			toolTask("001", "gatedStub3", nil),
			toolTask("002", "tailStub2", nil, "001"),
		)
		created, err := exec.Execute(ctx, dagID, nil)
		require.NoError(t, err)

		// Subscribe while the first task is gated, then let the run finish.
		<-entered
		streamCtx, cancelStream := context.WithTimeout(ctx, 15*time.Second)
		defer cancelStream()
		stream := bus.Stream(streamCtx, created.ID)
		close(release)

		var types []events.EventType
		for evt := range stream {
			types = append(types, evt.Type)
		}
		require.NotEmpty(t, types)

		// The subscription started mid-wave; everything from the first
		// task's completion onward must arrive in order.
		want := []events.EventType{
			events.EventTypeTaskCompleted,
			events.EventTypeWaveCompleted,
			events.EventTypeWaveStarted,
			events.EventTypeTaskStarted,
			events.EventTypeTaskCompleted,
			events.EventTypeWaveCompleted,
			events.EventTypeSynthesisStarted,
			events.EventTypeSynthesisCompleted,
			events.EventTypeExecutionCompleted,
		}
		assert.Equal(t, want, types)

		// The stream after the terminal event is closed immediately.
		drained := bus.Stream(ctx, created.ID)
		_, open := <-drained
		assert.False(t, open)
	})

	t.Run("skip events publishes nothing", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})
		var once sync.Once
		gated := &stubTool{name: "gatedStub4", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
			once.Do(func() { close(entered) })
			<-release
			return "quiet", nil
		}}
		exec, bus := newTestExecutor(t, client, newRegistry(t, gated), &recordingFactory{client: synthesisOnly("quiet end")})

		dagID := seedDag(t, client, "Silent run", toolTask("001", "gatedStub4", nil))
		created, err := exec.Execute(ctx, dagID, &ExecutionConfig{SkipEvents: true})
		require.NoError(t, err)

		<-entered
		ch, cancel := bus.Subscribe(created.ID)
		defer cancel()
		close(release)
		waitForStatus(t, client, created.ID, dagexecution.StatusCompleted)

		select {
		case evt := <-ch:
			t.Fatalf("unexpected event %s", evt.Type)
		case <-time.After(100 * time.Millisecond):
		}
	})
}
