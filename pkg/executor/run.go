package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/pkg/events"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/plan"
	"github.com/taskdag/taskdag/pkg/services"
	"github.com/taskdag/taskdag/pkg/tools"
)

// run is the goroutine body of one execution. Any error the wave loop
// cannot absorb suspends the run; a stop or abort parks it back in
// pending through the stop path.
func (e *Executor) run(ctx context.Context, in runInput) {
	logger := e.logger.With("execution_id", in.executionID)
	logger.Info("Execution starting",
		"total_tasks", len(in.plan.SubTasks),
		"resumed", in.resumed,
		"batched_writes", in.batch)

	stopped, err := e.drive(ctx, in, logger)
	if err != nil {
		logger.Error("Execution suspended", "error", err)
		// The run context may already be cancelled; services write with
		// background contexts internally.
		if serr := e.executions.SuspendExecution(context.Background(), in.executionID, err.Error()); serr != nil {
			logger.Error("Failed to persist suspension", "error", serr)
		}
		e.emit(in, events.ExecutionSuspended(in.executionID, err.Error()))
		return
	}
	if stopped {
		logger.Info("Execution stopped by request")
	}
}

// drive owns the wave loop. It returns (true, nil) when the run was
// halted by a stop or abort and an error when the run must suspend.
func (e *Executor) drive(ctx context.Context, in runInput, logger *slog.Logger) (bool, error) {
	if !in.resumed {
		if err := e.executions.MarkExecutionStarted(ctx, in.executionID); err != nil {
			return false, err
		}
	}
	e.emit(in, events.ExecutionStarted(in.executionID, len(in.plan.SubTasks)))

	agents := e.prefetchAgents(ctx, in.plan)

	executed := make(map[string]struct{})
	results := make(map[string]interface{})
	completedCount, failedCount := 0, 0

	steps, err := e.substeps.ListSubSteps(ctx, in.executionID)
	if err != nil {
		return false, err
	}
	for _, step := range steps {
		if step.TaskID == models.SynthesisTaskID {
			continue
		}
		switch models.SubStepStatus(step.Status) {
		case models.SubStepStatusCompleted:
			executed[step.TaskID] = struct{}{}
			results[step.TaskID] = decodeResult(step.Result)
			completedCount++
		case models.SubStepStatusFailed:
			// A failed dependency resolves to its recorded error text.
			executed[step.TaskID] = struct{}{}
			if step.Error != nil {
				results[step.TaskID] = *step.Error
			}
			failedCount++
		}
	}

	total := len(in.plan.SubTasks)
	wave := 0
	for len(executed) < total {
		stopped, err := e.stopRequested(ctx, in)
		if err != nil {
			return false, err
		}
		if stopped {
			return true, e.handleStop(in, logger)
		}

		ready := readyTasks(in.plan, executed)
		if len(ready) == 0 {
			return false, fmt.Errorf("dependency deadlock: %d of %d tasks can never become ready",
				total-len(executed), total)
		}

		wave++
		ids := make([]string, len(ready))
		for i, t := range ready {
			ids[i] = t.ID
		}
		logger.Info("Wave starting", "wave", wave, "task_ids", ids)
		e.emit(in, events.WaveStarted(in.executionID, wave, ids))

		if in.batch {
			if err := e.substeps.MarkSubStepsRunning(ctx, in.executionID, ids); err != nil {
				return false, err
			}
		}

		outcomes := e.runWave(ctx, in, ready, results, agents)

		var completions []models.SubStepCompletion
		var taskFailure error
		aborted := false
		for _, o := range outcomes {
			switch {
			case o.aborted:
				aborted = true
			case o.err != nil:
				executed[o.taskID] = struct{}{}
				results[o.taskID] = o.err.Error()
				failedCount++
				if taskFailure == nil {
					taskFailure = fmt.Errorf("task %s failed: %w", o.taskID, o.err)
				}
			default:
				executed[o.taskID] = struct{}{}
				results[o.taskID] = o.value
				completedCount++
				if in.batch {
					completions = append(completions, o.completion())
				}
			}
		}
		if in.batch && len(completions) > 0 {
			if err := e.substeps.CompleteSubSteps(ctx, in.executionID, completions); err != nil {
				return false, err
			}
		}

		if aborted {
			return true, e.handleStop(in, logger)
		}

		e.emit(in, events.WaveCompleted(in.executionID, wave))
		logger.Info("Wave completed", "wave", wave,
			"completed", completedCount, "failed", failedCount)
		if err := e.executions.UpdateExecutionCounters(ctx, in.executionID, completedCount, failedCount, 0); err != nil {
			logger.Warn("Failed to update execution counters", "error", err)
		}

		if taskFailure != nil {
			return false, taskFailure
		}

		stopped, err = e.stopRequested(ctx, in)
		if err != nil {
			return false, err
		}
		if stopped {
			return true, e.handleStop(in, logger)
		}
	}

	final, synthesisResult, err := e.runSynthesis(ctx, in, results, logger)
	if err != nil {
		return false, err
	}
	return false, e.finalize(ctx, in, final, synthesisResult, logger)
}

// finalize derives the terminal status from the persisted sub-steps and
// writes the settled row, then emits exactly one terminal event.
func (e *Executor) finalize(ctx context.Context, in runInput, final string, synthesisResult map[string]interface{}, logger *slog.Logger) error {
	agg, err := e.executions.AggregateSubSteps(ctx, in.executionID)
	if err != nil {
		return err
	}
	status := services.DeriveExecutionStatus(agg.Total, agg.Completed, agg.Failed, agg.Running, agg.Waiting)

	usage := agg.TotalUsage
	if _, err := e.executions.FinalizeExecution(ctx, in.executionID, models.FinalizeExecutionRequest{
		Status:          status,
		FinalResult:     &final,
		SynthesisResult: synthesisResult,
		CompletedTasks:  agg.Completed,
		FailedTasks:     agg.Failed,
		WaitingTasks:    agg.Waiting,
		TotalUsage:      &usage,
		TotalCostUsd:    agg.TotalCostUsd,
	}); err != nil {
		return err
	}

	if status == models.ExecutionStatusFailed {
		e.emit(in, events.ExecutionFailed(in.executionID, "all tasks failed"))
	} else {
		e.emit(in, events.ExecutionCompleted(in.executionID, string(status)))
	}
	logger.Info("Execution finished", "status", status,
		"completed", agg.Completed, "failed", agg.Failed,
		"total_cost_usd", agg.TotalCostUsd)
	return nil
}

// stopRequested probes the abort signal and the stop coordinator,
// execution-keyed first, then dag-keyed.
func (e *Executor) stopRequested(ctx context.Context, in runInput) (bool, error) {
	if ctx.Err() != nil {
		return true, nil
	}
	stopped, err := e.stops.HasActiveStopForExecution(ctx, in.executionID)
	if err != nil {
		return false, err
	}
	if stopped {
		return true, nil
	}
	if in.dagID != nil {
		stopped, err = e.stops.HasActiveStopForDag(ctx, *in.dagID)
		if err != nil {
			return false, err
		}
	}
	return stopped, nil
}

// handleStop parks the run back in pending. Running sub-steps roll back
// to pending with a cleared start time; completed and failed rows keep
// their outcomes. Runs without an open stop request (process abort) take
// the same path; marking zero requests handled is a no-op.
func (e *Executor) handleStop(in runInput, logger *slog.Logger) error {
	bg := context.Background()
	reset, err := e.substeps.ResetActiveSubSteps(bg, in.executionID)
	if err != nil {
		return err
	}
	if err := e.executions.MarkExecutionStopped(bg, in.executionID); err != nil {
		return err
	}
	if err := e.stops.MarkHandledForExecution(bg, in.executionID); err != nil {
		logger.Warn("Failed to mark execution stop request handled", "error", err)
	}
	if in.dagID != nil {
		if err := e.stops.MarkHandledForDag(bg, *in.dagID); err != nil {
			logger.Warn("Failed to mark dag stop request handled", "error", err)
		}
	}
	logger.Info("Execution parked as pending", "reset_tasks", reset)
	e.emit(in, events.ExecutionStopped(in.executionID))
	return nil
}

// prefetchAgents loads every inference persona the plan names in one
// parallel pass. A missing persona is not fatal here; the owning task
// retries the lookup and fails alone.
func (e *Executor) prefetchAgents(ctx context.Context, p *plan.Plan) map[string]*ent.Agent {
	names := make(map[string]struct{})
	for _, t := range p.SubTasks {
		if t.ActionType != models.ActionTypeInference {
			continue
		}
		if name := t.ToolOrPrompt.Name; name != "" && name != tools.InferenceName {
			names[name] = struct{}{}
		}
	}

	out := make(map[string]*ent.Agent, len(names))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			agent, err := e.agents.GetActiveAgent(ctx, name)
			if err != nil {
				e.logger.Warn("No active agent for inference persona", "agent", name, "error", err)
				return
			}
			mu.Lock()
			out[name] = agent
			mu.Unlock()
		}(name)
	}
	wg.Wait()
	return out
}

// readyTasks returns the unexecuted tasks whose dependencies have all
// terminated, in plan order.
func readyTasks(p *plan.Plan, executed map[string]struct{}) []plan.SubTask {
	var ready []plan.SubTask
	for _, t := range p.SubTasks {
		if _, done := executed[t.ID]; done {
			continue
		}
		blocked := false
		for _, dep := range t.RealDependencies() {
			if _, done := executed[dep]; !done {
				blocked = true
				break
			}
		}
		if !blocked {
			ready = append(ready, t)
		}
	}
	return ready
}

// decodeResult turns a persisted sub-step result back into the generic
// value downstream tasks resolve against.
func decodeResult(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

// emit publishes unless this run opted out of events.
func (e *Executor) emit(in runInput, evt events.Event) {
	if in.skipEvents || e.bus == nil {
		return
	}
	e.bus.Publish(evt)
}
