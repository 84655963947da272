package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taskdag/taskdag/pkg/events"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/plan"
	"github.com/taskdag/taskdag/pkg/tools"
)

// synthesisPersona is the system prompt of the final synthesis call.
const synthesisPersona = `You are a results synthesizer. You receive the outcome of every task of an executed plan and produce the final answer for the person who made the original request.

Write clean markdown. Follow the synthesis plan when one is given. Report only what the task results support; name any task whose result is missing or is an error instead of papering over it.`

// synthesisDescription labels the persisted synthesis sub-step.
const synthesisDescription = "Synthesize task results into the final answer"

// runSynthesis performs the final chat call over every task result and
// persists it as the reserved synthesis sub-step. On a re-entered run
// whose synthesis already happened, the stored row is reused instead of
// paying for a second call.
func (e *Executor) runSynthesis(ctx context.Context, in runInput, results map[string]interface{}, logger *slog.Logger) (string, map[string]interface{}, error) {
	if existing, err := e.substeps.GetSubStep(ctx, in.executionID, models.SynthesisTaskID); err == nil {
		logger.Info("Reusing persisted synthesis result")
		content := decodeSynthesisContent(existing.Result)
		return content, map[string]interface{}{"content": content}, nil
	}

	e.emit(in, events.SynthesisStarted(in.executionID))

	client, err := e.clients.Client(llm.ClientOptions{
		Provider: e.cfg.SynthesisProvider,
		Model:    e.cfg.SynthesisModel,
	})
	if err != nil {
		return "", nil, err
	}

	start := time.Now()
	resp, err := client.Chat(ctx, &llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: synthesisPersona},
			{Role: llm.RoleUser, Content: buildSynthesisPrompt(in.plan, results)},
		},
	})
	if err != nil {
		return "", nil, fmt.Errorf("synthesis call failed: %w", err)
	}
	durationMs := time.Since(start).Milliseconds()

	content := e.maskText(resp.Content)
	raw, err := json.Marshal(content)
	if err != nil {
		return "", nil, fmt.Errorf("failed to encode synthesis result: %w", err)
	}

	taskIDs := make([]string, len(in.plan.SubTasks))
	for i, t := range in.plan.SubTasks {
		taskIDs[i] = t.ID
	}
	if _, err := e.substeps.CreateSynthesisStep(ctx, in.executionID, models.SynthesisRecord{
		Description:     synthesisDescription,
		Dependencies:    taskIDs,
		Result:          raw,
		DurationMs:      durationMs,
		Usage:           resp.Usage,
		CostUsd:         resp.CostUsd,
		GenerationStats: resp.GenerationStats,
	}); err != nil {
		return "", nil, err
	}

	e.emit(in, events.SynthesisCompleted(in.executionID))
	logger.Info("Synthesis completed", "duration_ms", durationMs, "cost_usd", resp.CostUsd)

	if err := validateSynthesis(content); err != nil {
		logger.Warn("Synthesis validation flagged output", "error", err)
	}
	return content, map[string]interface{}{"content": content}, nil
}

// buildSynthesisPrompt renders the user turn of the synthesis call: the
// original request, the decomposer's synthesis plan, then every task
// result in plan order. Failed tasks contribute their error text.
func buildSynthesisPrompt(p *plan.Plan, results map[string]interface{}) string {
	var b strings.Builder
	if p.OriginalRequest != "" {
		b.WriteString("Original request: ")
		b.WriteString(p.OriginalRequest)
		b.WriteString("\n")
	}
	if p.SynthesisPlan != "" {
		b.WriteString("Synthesis plan: ")
		b.WriteString(p.SynthesisPlan)
		b.WriteString("\n")
	}
	b.WriteString("\nTask results:\n")
	for _, t := range p.SubTasks {
		fmt.Fprintf(&b, "\n## Task %s: %s\n%s\n", t.ID, t.Description, tools.StringifyResult(results[t.ID]))
	}
	return b.String()
}

// validateSynthesis is the post-synthesis quality gate. It accepts
// everything; failures would be advisory either way.
func validateSynthesis(string) error { return nil }

// decodeSynthesisContent unwraps a stored synthesis result back to the
// markdown string it was persisted as.
func decodeSynthesisContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}
