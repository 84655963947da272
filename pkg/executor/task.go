package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/pkg/events"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/plan"
	"github.com/taskdag/taskdag/pkg/tools"
)

// depSnippetLimit caps how much of one dependency result reaches an
// inference prompt.
const depSnippetLimit = 2000

// taskOutcome is the collected result of one task goroutine.
type taskOutcome struct {
	taskID     string
	value      interface{}
	raw        json.RawMessage
	durationMs int64
	usage      *models.TokenUsage
	costUsd    string
	stats      map[string]interface{}
	err        error
	aborted    bool
}

func (o taskOutcome) completion() models.SubStepCompletion {
	return models.SubStepCompletion{
		TaskID:          o.taskID,
		Result:          o.raw,
		DurationMs:      o.durationMs,
		Usage:           o.usage,
		CostUsd:         o.costUsd,
		GenerationStats: o.stats,
	}
}

// runWave fans out every ready task concurrently and collects outcomes
// in launch order.
func (e *Executor) runWave(ctx context.Context, in runInput, ready []plan.SubTask, results map[string]interface{}, agents map[string]*ent.Agent) []taskOutcome {
	outcomes := make([]taskOutcome, len(ready))
	var wg sync.WaitGroup
	for i, task := range ready {
		wg.Add(1)
		go func(i int, task plan.SubTask) {
			defer wg.Done()
			outcomes[i] = e.executeTask(ctx, in, task, results, agents)
		}(i, task)
	}
	wg.Wait()
	return outcomes
}

// executeTask runs one task to a persisted outcome. Failures are written
// immediately in both batching modes; successes are written here only
// when batching is off.
func (e *Executor) executeTask(ctx context.Context, in runInput, task plan.SubTask, results map[string]interface{}, agents map[string]*ent.Agent) taskOutcome {
	logger := e.logger.With("execution_id", in.executionID, "task_id", task.ID)
	e.emit(in, events.TaskStarted(in.executionID, task.ID))

	if !in.batch {
		if err := e.substeps.MarkSubStepRunning(ctx, in.executionID, task.ID); err != nil {
			logger.Warn("Failed to mark sub-step running", "error", err)
		}
	}

	deps := dependenciesOf(task, results)
	start := time.Now()

	var (
		value interface{}
		usage *models.TokenUsage
		cost  string
		stats map[string]interface{}
		err   error
	)
	if task.ActionType == models.ActionTypeInference {
		value, usage, cost, stats, err = e.runInference(ctx, in, task, deps, agents)
	} else {
		value, err = e.runTool(ctx, in, task, deps)
	}

	out := taskOutcome{
		taskID:     task.ID,
		durationMs: time.Since(start).Milliseconds(),
		usage:      usage,
		costUsd:    cost,
		stats:      stats,
	}
	if err != nil {
		if ctx.Err() != nil {
			out.aborted = true
			logger.Info("Task aborted", "error", err)
			return out
		}
		out.err = err
		msg := e.maskText(err.Error())
		logger.Error("Task failed", "error", err, "duration_ms", out.durationMs)
		if perr := e.substeps.FailSubStep(context.Background(), in.executionID, models.SubStepFailure{
			TaskID:     task.ID,
			Error:      msg,
			DurationMs: out.durationMs,
			Usage:      usage,
			CostUsd:    cost,
		}); perr != nil {
			logger.Error("Failed to persist task failure", "error", perr)
		}
		e.emit(in, events.TaskFailed(in.executionID, task.ID, msg))
		return out
	}

	raw, merr := json.Marshal(value)
	if merr != nil {
		out.err = fmt.Errorf("task result is not serializable: %w", merr)
		logger.Error("Task failed", "error", out.err)
		if perr := e.substeps.FailSubStep(context.Background(), in.executionID, models.SubStepFailure{
			TaskID:     task.ID,
			Error:      out.err.Error(),
			DurationMs: out.durationMs,
			Usage:      usage,
			CostUsd:    cost,
		}); perr != nil {
			logger.Error("Failed to persist task failure", "error", perr)
		}
		e.emit(in, events.TaskFailed(in.executionID, task.ID, out.err.Error()))
		return out
	}
	if e.masker != nil {
		raw = e.masker.MaskRaw(raw)
	}
	out.raw = raw
	out.value = decodeResult(raw)

	if !in.batch {
		if perr := e.substeps.CompleteSubStep(context.Background(), in.executionID, out.completion()); perr != nil {
			logger.Error("Failed to persist task result", "error", perr)
		}
	}
	e.emit(in, events.TaskCompleted(in.executionID, task.ID, out.durationMs))
	logger.Info("Task completed", "duration_ms", out.durationMs)
	return out
}

// runTool dispatches a tool task through the registry: dependency
// resolution into params, schema validation, then execution.
func (e *Executor) runTool(ctx context.Context, in runInput, task plan.SubTask, deps []tools.Dependency) (interface{}, error) {
	name := task.ToolOrPrompt.Name
	tool, ok := e.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}

	params := e.registry.Resolve(name, task.ToolOrPrompt.Params, deps)
	if err := e.registry.ValidateInput(name, params); err != nil {
		return nil, err
	}

	stepID := ""
	if step, err := e.substeps.GetSubStep(ctx, in.executionID, task.ID); err == nil {
		stepID = step.ID
	}

	ec := &tools.ExecContext{
		Logger:       e.logger.With("execution_id", in.executionID, "task_id", task.ID),
		Store:        e.store,
		ExecutionID:  in.executionID,
		SubStepID:    stepID,
		ArtifactsDir: in.artifactsDir,
		Emitter:      &busEmitter{executor: e, in: in, taskID: task.ID},
	}
	return tool.Execute(ctx, params, ec)
}

// runInference performs the single chat call of an inference task using
// the named persona's provider and model.
func (e *Executor) runInference(ctx context.Context, in runInput, task plan.SubTask, deps []tools.Dependency, agents map[string]*ent.Agent) (string, *models.TokenUsage, string, map[string]interface{}, error) {
	name := task.ToolOrPrompt.Name

	var agent *ent.Agent
	if name != "" && name != tools.InferenceName {
		agent = agents[name]
		if agent == nil {
			// The prefetch may have raced an activation.
			fetched, err := e.agents.GetActiveAgent(ctx, name)
			if err != nil {
				return "", nil, "", nil, fmt.Errorf("no active agent %q: %w", name, err)
			}
			agent = fetched
		}
	}

	messages := make([]llm.Message, 0, 2)
	opts := llm.ClientOptions{}
	if agent != nil {
		system := strings.ReplaceAll(agent.PromptTemplate, "{{currentDate}}", time.Now().Format("2006-01-02"))
		messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: system})
		opts.Provider = agent.Provider
		opts.Model = agent.Model
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: buildInferencePrompt(in.originalRequest, task, deps)})

	client, err := e.clients.Client(opts)
	if err != nil {
		return "", nil, "", nil, err
	}
	resp, err := client.Chat(ctx, &llm.ChatRequest{Messages: messages})
	if err != nil {
		return "", nil, "", nil, err
	}
	return e.maskText(resp.Content), resp.Usage, resp.CostUsd, resp.GenerationStats, nil
}

// buildInferencePrompt assembles the user turn of an inference call:
// overall goal, the task itself, then each dependency result capped at
// depSnippetLimit characters.
func buildInferencePrompt(originalRequest string, task plan.SubTask, deps []tools.Dependency) string {
	var b strings.Builder
	b.WriteString("You are executing one task of a larger plan.\n")
	if originalRequest != "" {
		b.WriteString("Overall goal: ")
		b.WriteString(originalRequest)
		b.WriteString("\n")
	}
	b.WriteString("\nTask: ")
	b.WriteString(task.Description)
	b.WriteString("\n")
	for _, dep := range deps {
		snippet := tools.StringifyResult(dep.Result)
		if len(snippet) > depSnippetLimit {
			snippet = truncateRunes(snippet, depSnippetLimit) + "…"
		}
		fmt.Fprintf(&b, "\nResult from task %s:\n%s\n", dep.TaskID, snippet)
	}
	return b.String()
}

// truncateRunes cuts s at the byte limit without splitting a rune.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// dependenciesOf pairs a task's declared dependency ids with their
// collected results, in declared order.
func dependenciesOf(task plan.SubTask, results map[string]interface{}) []tools.Dependency {
	ids := task.RealDependencies()
	deps := make([]tools.Dependency, 0, len(ids))
	for _, id := range ids {
		deps = append(deps, tools.Dependency{TaskID: id, Result: results[id]})
	}
	return deps
}

// busEmitter forwards tool progress to the event bus as task.progress.
type busEmitter struct {
	executor *Executor
	in       runInput
	taskID   string
}

func (em *busEmitter) Progress(message string) {
	em.executor.emit(em.in, events.TaskProgress(em.in.executionID, em.taskID, message))
}

func (em *busEmitter) Completed(message string) {
	em.executor.emit(em.in, events.TaskProgress(em.in.executionID, em.taskID, message))
}
