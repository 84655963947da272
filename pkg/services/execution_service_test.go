package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/substep"
	"github.com/taskdag/taskdag/pkg/models"
	testdb "github.com/taskdag/taskdag/test/database"
)

func twoTaskRequest() models.CreateExecutionRequest {
	return models.CreateExecutionRequest{
		OriginalRequest: "fetch the page and summarize it",
		PrimaryIntent:   "research",
		Tasks: []models.SubStepSeed{
			{
				TaskID:           "001",
				Description:      "Fetch the page",
				ActionType:       models.ActionTypeTool,
				ToolOrPromptName: "fetchURLs",
				ToolOrPromptParams: map[string]interface{}{
					"urls": []interface{}{"https://example.com"},
				},
				Dependencies: []string{"none"},
			},
			{
				TaskID:           "002",
				Description:      "Summarize the page",
				Thought:          "Needs the fetched content first",
				ActionType:       models.ActionTypeInference,
				ToolOrPromptName: "summarizer",
				Dependencies:     []string{"001"},
			},
		},
	}
}

func TestExecutionService_CreateExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	dagService := NewDagService(client.Client)
	ctx := context.Background()

	t.Run("creates the execution with one pending sub-step per task", func(t *testing.T) {
		execution, err := service.CreateExecution(ctx, twoTaskRequest())
		require.NoError(t, err)
		require.NotNil(t, execution)

		assert.Equal(t, dagexecution.StatusPending, execution.Status)
		assert.Equal(t, 2, execution.TotalTasks)
		assert.Nil(t, execution.DagID)
		assert.Nil(t, execution.StartedAt)

		loaded, err := service.GetExecutionWithSubSteps(ctx, execution.ID)
		require.NoError(t, err)
		steps := loaded.Edges.SubSteps
		require.Len(t, steps, 2)
		assert.Equal(t, "001", steps[0].TaskID)
		assert.Equal(t, "002", steps[1].TaskID)
		assert.Equal(t, substep.StatusPending, steps[0].Status)
		assert.Equal(t, substep.ActionTypeTool, steps[0].ActionType)
		assert.Equal(t, substep.ActionTypeInference, steps[1].ActionType)
		assert.Equal(t, []string{"001"}, steps[1].Dependencies)
		assert.Equal(t, "Needs the fetched content first", steps[1].Thought)
	})

	t.Run("links the execution to its dag", func(t *testing.T) {
		_, err := dagService.CreateDag(ctx, models.CreateDagRequest{
			ID: "dag_exec_link", Status: models.DagStatusSuccess, AgentName: "a",
		})
		require.NoError(t, err)

		req := twoTaskRequest()
		req.DagID = strPtr("dag_exec_link")
		execution, err := service.CreateExecution(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, execution.DagID)
		assert.Equal(t, "dag_exec_link", *execution.DagID)
	})

	t.Run("returns ErrNotFound for an unknown dag", func(t *testing.T) {
		req := twoTaskRequest()
		req.DagID = strPtr("dag_exec_ghost")
		_, err := service.CreateExecution(ctx, req)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects duplicate task ids", func(t *testing.T) {
		req := twoTaskRequest()
		req.Tasks[1].TaskID = "001"
		_, err := service.CreateExecution(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.CreateExecutionRequest)
		}{
			{name: "missing original_request", mutate: func(r *models.CreateExecutionRequest) { r.OriginalRequest = "" }},
			{name: "missing task_id", mutate: func(r *models.CreateExecutionRequest) { r.Tasks[0].TaskID = "" }},
			{name: "bad action_type", mutate: func(r *models.CreateExecutionRequest) { r.Tasks[0].ActionType = "magic" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := twoTaskRequest()
				tt.mutate(&req)
				_, err := service.CreateExecution(ctx, req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestExecutionService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	execution, err := service.CreateExecution(ctx, twoTaskRequest())
	require.NoError(t, err)

	t.Run("start moves to running and stamps started_at once", func(t *testing.T) {
		require.NoError(t, service.MarkExecutionStarted(ctx, execution.ID))

		loaded, err := service.GetExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, dagexecution.StatusRunning, loaded.Status)
		require.NotNil(t, loaded.StartedAt)
		firstStart := *loaded.StartedAt

		require.NoError(t, service.MarkExecutionStarted(ctx, execution.ID))
		loaded, err = service.GetExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, firstStart.Unix(), loaded.StartedAt.Unix(), "started_at must survive a restart")
	})

	t.Run("counters update", func(t *testing.T) {
		require.NoError(t, service.UpdateExecutionCounters(ctx, execution.ID, 1, 0, 0))

		loaded, err := service.GetExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.CompletedTasks)
	})

	t.Run("suspension records the reason and leaves completed_at empty", func(t *testing.T) {
		require.NoError(t, service.SuspendExecution(ctx, execution.ID, "tool crashed: shell exited 127"))

		loaded, err := service.GetExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, dagexecution.StatusSuspended, loaded.Status)
		require.NotNil(t, loaded.SuspendedReason)
		assert.Contains(t, *loaded.SuspendedReason, "exited 127")
		assert.NotNil(t, loaded.SuspendedAt)
		assert.Nil(t, loaded.CompletedAt, "a suspended run is resumable, not finished")
	})

	t.Run("resume clears suspension and counts the retry", func(t *testing.T) {
		require.NoError(t, service.MarkExecutionResumed(ctx, execution.ID))

		loaded, err := service.GetExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, dagexecution.StatusRunning, loaded.Status)
		assert.Equal(t, 1, loaded.RetryCount)
		assert.NotNil(t, loaded.LastRetryAt)
		assert.Nil(t, loaded.SuspendedReason)
		assert.Nil(t, loaded.SuspendedAt)
	})

	t.Run("stop parks the run back in pending", func(t *testing.T) {
		require.NoError(t, service.MarkExecutionStopped(ctx, execution.ID))

		loaded, err := service.GetExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, dagexecution.StatusPending, loaded.Status)
	})

	t.Run("missing executions surface ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, service.MarkExecutionStarted(ctx, "exec_ghost"), ErrNotFound)
		assert.ErrorIs(t, service.SuspendExecution(ctx, "exec_ghost", "x"), ErrNotFound)
		assert.ErrorIs(t, service.UpdateExecutionCounters(ctx, "exec_ghost", 0, 0, 0), ErrNotFound)
	})
}

func TestExecutionService_FinalizeExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	execution, err := service.CreateExecution(ctx, twoTaskRequest())
	require.NoError(t, err)
	require.NoError(t, service.MarkExecutionStarted(ctx, execution.ID))

	final := "# Summary\n\nBoth tasks completed."
	updated, err := service.FinalizeExecution(ctx, execution.ID, models.FinalizeExecutionRequest{
		Status:          models.ExecutionStatusCompleted,
		FinalResult:     &final,
		SynthesisResult: map[string]interface{}{"result": final, "duration_ms": float64(40)},
		CompletedTasks:  2,
		TotalUsage:      &models.TokenUsage{PromptTokens: 500, CompletionTokens: 100, TotalTokens: 600},
		TotalCostUsd:    "0.0031",
	})
	require.NoError(t, err)

	assert.Equal(t, dagexecution.StatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	require.NotNil(t, updated.DurationMs)
	assert.GreaterOrEqual(t, *updated.DurationMs, int64(0))
	assert.Equal(t, 2, updated.CompletedTasks)
	require.NotNil(t, updated.FinalResult)
	assert.Equal(t, final, *updated.FinalResult)
	require.NotNil(t, updated.TotalCostUsd)
	assert.Equal(t, "0.0031", *updated.TotalCostUsd)
	assert.EqualValues(t, 600, updated.TotalUsage["total_tokens"])
}

func TestExecutionService_AggregateSubSteps(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	subSteps := NewSubStepService(client.Client)
	ctx := context.Background()

	req := twoTaskRequest()
	req.Tasks = append(req.Tasks, models.SubStepSeed{
		TaskID:           "003",
		Description:      "Email the summary",
		ActionType:       models.ActionTypeTool,
		ToolOrPromptName: "sendEmail",
		Dependencies:     []string{"002"},
	})
	execution, err := service.CreateExecution(ctx, req)
	require.NoError(t, err)

	require.NoError(t, subSteps.CompleteSubSteps(ctx, execution.ID, []models.SubStepCompletion{
		{
			TaskID:     "001",
			Result:     json.RawMessage(`{"results":[{"url":"https://example.com","content":"hello"}]}`),
			DurationMs: 120,
		},
		{
			TaskID:     "002",
			Result:     json.RawMessage(`"the page says hello"`),
			DurationMs: 900,
			Usage:      &models.TokenUsage{PromptTokens: 400, CompletionTokens: 80, TotalTokens: 480},
			CostUsd:    "0.0020",
		},
	}))
	require.NoError(t, subSteps.FailSubStep(ctx, execution.ID, models.SubStepFailure{
		TaskID: "003", Error: "smtp: connection refused", DurationMs: 50,
	}))
	_, err = subSteps.CreateSynthesisStep(ctx, execution.ID, models.SynthesisRecord{
		Description:  "Aggregate all sub-step results",
		Dependencies: []string{"001", "002", "003"},
		Result:       json.RawMessage(`{"result":"partial success"}`),
		DurationMs:   300,
		Usage:        &models.TokenUsage{PromptTokens: 200, CompletionTokens: 40, TotalTokens: 240},
		CostUsd:      "0.0015",
	})
	require.NoError(t, err)

	agg, err := service.AggregateSubSteps(ctx, execution.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, agg.Total, "the synthesis row is not a plan task")
	assert.Equal(t, 2, agg.Completed)
	assert.Equal(t, 1, agg.Failed)
	assert.Equal(t, 0, agg.Pending)
	assert.Equal(t, 720, agg.TotalUsage.TotalTokens, "usage folds in the synthesis row")
	assert.Equal(t, "0.0035", agg.TotalCostUsd)
}

func TestExecutionService_DeleteExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	stopService := NewStopService(client.Client)
	ctx := context.Background()

	t.Run("refuses a running execution", func(t *testing.T) {
		execution, err := service.CreateExecution(ctx, twoTaskRequest())
		require.NoError(t, err)
		require.NoError(t, service.MarkExecutionStarted(ctx, execution.ID))

		err = service.DeleteExecution(ctx, execution.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "stop it first")
	})

	t.Run("deletes a settled execution with its sub-steps and stop rows", func(t *testing.T) {
		execution, err := service.CreateExecution(ctx, twoTaskRequest())
		require.NoError(t, err)
		_, err = stopService.RequestStopForExecution(ctx, execution.ID)
		require.NoError(t, err)

		require.NoError(t, service.DeleteExecution(ctx, execution.ID))

		_, err = service.GetExecution(ctx, execution.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		orphans, err := client.SubStep.Query().
			Where(substep.ExecutionIDEQ(execution.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, orphans, "sub-steps cascade with the execution")

		active, err := stopService.HasActiveStopForExecution(ctx, execution.ID)
		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("returns ErrNotFound for missing execution", func(t *testing.T) {
		assert.ErrorIs(t, service.DeleteExecution(ctx, "exec_ghost"), ErrNotFound)
	})
}

func TestExecutionService_DeleteTerminalBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewExecutionService(client.Client)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	cutoff := time.Now().Add(-24 * time.Hour)

	mk := func(t *testing.T, status dagexecution.Status, stamp func(*ent.DagExecutionUpdateOne)) string {
		t.Helper()
		execution, err := service.CreateExecution(ctx, twoTaskRequest())
		require.NoError(t, err)
		update := client.DagExecution.UpdateOneID(execution.ID).SetStatus(status)
		if stamp != nil {
			stamp(update)
		}
		require.NoError(t, update.Exec(ctx))
		return execution.ID
	}

	oldCompleted := mk(t, dagexecution.StatusCompleted, func(u *ent.DagExecutionUpdateOne) { u.SetCompletedAt(old) })
	oldSuspended := mk(t, dagexecution.StatusSuspended, func(u *ent.DagExecutionUpdateOne) { u.SetSuspendedAt(old) })
	freshCompleted := mk(t, dagexecution.StatusCompleted, func(u *ent.DagExecutionUpdateOne) { u.SetCompletedAt(time.Now()) })
	running := mk(t, dagexecution.StatusRunning, nil)

	deleted, err := service.DeleteTerminalBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	for _, id := range []string{oldCompleted, oldSuspended} {
		_, err := service.GetExecution(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	}
	for _, id := range []string{freshCompleted, running} {
		_, err := service.GetExecution(ctx, id)
		assert.NoError(t, err)
	}
}

func TestDeriveExecutionStatus(t *testing.T) {
	tests := []struct {
		name                                      string
		total, completed, failed, running, waiting int
		want                                      models.ExecutionStatus
	}{
		{name: "untouched plan is pending", total: 3, want: models.ExecutionStatusPending},
		{name: "any waiting task wins", total: 3, completed: 2, failed: 1, waiting: 1, want: models.ExecutionStatusWaiting},
		{name: "all completed", total: 3, completed: 3, want: models.ExecutionStatusCompleted},
		{name: "all failed", total: 3, failed: 3, want: models.ExecutionStatusFailed},
		{name: "mixed terminal outcome is partial", total: 3, completed: 2, failed: 1, want: models.ExecutionStatusPartial},
		{name: "failure with work left keeps running", total: 3, completed: 1, failed: 1, want: models.ExecutionStatusRunning},
		{name: "active tasks keep running", total: 3, running: 2, want: models.ExecutionStatusRunning},
		{name: "progress without activity still counts as running", total: 3, completed: 1, want: models.ExecutionStatusRunning},
		{name: "empty plan completes immediately", total: 0, want: models.ExecutionStatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveExecutionStatus(tt.total, tt.completed, tt.failed, tt.running, tt.waiting)
			assert.Equal(t, tt.want, got)
		})
	}
}
