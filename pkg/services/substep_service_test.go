package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent/substep"
	"github.com/taskdag/taskdag/pkg/models"
	testdb "github.com/taskdag/taskdag/test/database"
)

func TestSubStepService_MarkSubStepsRunning(t *testing.T) {
	client := testdb.NewTestClient(t)
	executions := NewExecutionService(client.Client)
	service := NewSubStepService(client.Client)
	ctx := context.Background()

	execution, err := executions.CreateExecution(ctx, twoTaskRequest())
	require.NoError(t, err)

	t.Run("flips a wave to running in one statement", func(t *testing.T) {
		require.NoError(t, service.MarkSubStepsRunning(ctx, execution.ID, []string{"001", "002"}))

		steps, err := service.ListSubSteps(ctx, execution.ID)
		require.NoError(t, err)
		for _, step := range steps {
			assert.Equal(t, substep.StatusRunning, step.Status)
			assert.NotNil(t, step.StartedAt, "running steps carry a start time")
		}
	})

	t.Run("an empty wave is a no-op", func(t *testing.T) {
		assert.NoError(t, service.MarkSubStepsRunning(ctx, execution.ID, nil))
	})
}

func TestSubStepService_CompleteSubSteps(t *testing.T) {
	client := testdb.NewTestClient(t)
	executions := NewExecutionService(client.Client)
	service := NewSubStepService(client.Client)
	ctx := context.Background()

	t.Run("persists a wave of results atomically", func(t *testing.T) {
		execution, err := executions.CreateExecution(ctx, twoTaskRequest())
		require.NoError(t, err)

		err = service.CompleteSubSteps(ctx, execution.ID, []models.SubStepCompletion{
			{
				TaskID:     "001",
				Result:     json.RawMessage(`{"status_code":200}`),
				DurationMs: 85,
			},
			{
				TaskID:     "002",
				Result:     json.RawMessage(`"summary text"`),
				DurationMs: 1200,
				Usage:      &models.TokenUsage{PromptTokens: 300, CompletionTokens: 50, TotalTokens: 350},
				CostUsd:    "0.0012",
				GenerationStats: map[string]interface{}{
					"model": "gpt-4o",
				},
			},
		})
		require.NoError(t, err)

		first, err := service.GetSubStep(ctx, execution.ID, "001")
		require.NoError(t, err)
		assert.Equal(t, substep.StatusCompleted, first.Status)
		assert.JSONEq(t, `{"status_code":200}`, string(first.Result))
		require.NotNil(t, first.DurationMs)
		assert.EqualValues(t, 85, *first.DurationMs)
		assert.NotNil(t, first.CompletedAt)
		assert.Nil(t, first.CostUsd)

		second, err := service.GetSubStep(ctx, execution.ID, "002")
		require.NoError(t, err)
		assert.EqualValues(t, 350, second.Usage["total_tokens"])
		require.NotNil(t, second.CostUsd)
		assert.Equal(t, "0.0012", *second.CostUsd)
		assert.Equal(t, "gpt-4o", second.GenerationStats["model"])
	})

	t.Run("an unknown task rolls the whole batch back", func(t *testing.T) {
		execution, err := executions.CreateExecution(ctx, twoTaskRequest())
		require.NoError(t, err)

		err = service.CompleteSubSteps(ctx, execution.ID, []models.SubStepCompletion{
			{TaskID: "001", Result: json.RawMessage(`1`), DurationMs: 5},
			{TaskID: "099", Result: json.RawMessage(`2`), DurationMs: 5},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "099")

		first, err := service.GetSubStep(ctx, execution.ID, "001")
		require.NoError(t, err)
		assert.Equal(t, substep.StatusPending, first.Status, "the good update must not survive the rollback")
	})
}

func TestSubStepService_FailSubStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	executions := NewExecutionService(client.Client)
	service := NewSubStepService(client.Client)
	ctx := context.Background()

	execution, err := executions.CreateExecution(ctx, twoTaskRequest())
	require.NoError(t, err)

	t.Run("records the error with partial usage", func(t *testing.T) {
		err := service.FailSubStep(ctx, execution.ID, models.SubStepFailure{
			TaskID:     "002",
			Error:      "inference failed: context deadline exceeded",
			DurationMs: 30000,
			Usage:      &models.TokenUsage{PromptTokens: 500, TotalTokens: 500},
			CostUsd:    "0.0005",
		})
		require.NoError(t, err)

		step, err := service.GetSubStep(ctx, execution.ID, "002")
		require.NoError(t, err)
		assert.Equal(t, substep.StatusFailed, step.Status)
		require.NotNil(t, step.Error)
		assert.Contains(t, *step.Error, "deadline exceeded")
		assert.NotNil(t, step.CompletedAt)
		assert.EqualValues(t, 500, step.Usage["prompt_tokens"])
	})

	t.Run("returns ErrNotFound for an unknown task", func(t *testing.T) {
		err := service.FailSubStep(ctx, execution.ID, models.SubStepFailure{
			TaskID: "042", Error: "boom",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSubStepService_ResetSubSteps(t *testing.T) {
	client := testdb.NewTestClient(t)
	executions := NewExecutionService(client.Client)
	service := NewSubStepService(client.Client)
	ctx := context.Background()

	req := twoTaskRequest()
	req.Tasks = append(req.Tasks, models.SubStepSeed{
		TaskID:           "003",
		Description:      "Post the summary",
		ActionType:       models.ActionTypeTool,
		ToolOrPromptName: "webhook",
		Dependencies:     []string{"002"},
	})
	execution, err := executions.CreateExecution(ctx, req)
	require.NoError(t, err)

	// 001 finished, 002 is mid-flight, 003 never started.
	require.NoError(t, service.CompleteSubSteps(ctx, execution.ID, []models.SubStepCompletion{
		{TaskID: "001", Result: json.RawMessage(`"done"`), DurationMs: 10},
	}))
	require.NoError(t, service.MarkSubStepRunning(ctx, execution.ID, "002"))

	t.Run("named reset only touches active rows", func(t *testing.T) {
		count, err := service.ResetSubSteps(ctx, execution.ID, []string{"001", "002", "003"})
		require.NoError(t, err)
		assert.Equal(t, 1, count, "only the running row qualifies")

		reset, err := service.GetSubStep(ctx, execution.ID, "002")
		require.NoError(t, err)
		assert.Equal(t, substep.StatusPending, reset.Status)
		assert.Nil(t, reset.StartedAt, "a reset row loses its start time")

		done, err := service.GetSubStep(ctx, execution.ID, "001")
		require.NoError(t, err)
		assert.Equal(t, substep.StatusCompleted, done.Status, "terminated rows keep their outcome")
	})

	t.Run("active reset sweeps running and waiting rows", func(t *testing.T) {
		require.NoError(t, service.MarkSubStepsRunning(ctx, execution.ID, []string{"002", "003"}))

		count, err := service.ResetActiveSubSteps(ctx, execution.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		steps, err := service.ListSubSteps(ctx, execution.ID)
		require.NoError(t, err)
		for _, step := range steps {
			if step.TaskID == "001" {
				continue
			}
			assert.Equal(t, substep.StatusPending, step.Status)
		}
	})
}

func TestSubStepService_CreateSynthesisStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	executions := NewExecutionService(client.Client)
	service := NewSubStepService(client.Client)
	ctx := context.Background()

	execution, err := executions.CreateExecution(ctx, twoTaskRequest())
	require.NoError(t, err)

	t.Run("inserts the row already completed", func(t *testing.T) {
		record := models.SynthesisRecord{
			Description:  "Aggregate all sub-step results",
			Dependencies: []string{"001", "002"},
			Result:       json.RawMessage(`{"result":"# Done"}`),
			DurationMs:   450,
			Usage:        &models.TokenUsage{PromptTokens: 700, CompletionTokens: 120, TotalTokens: 820},
			CostUsd:      "0.0028",
		}
		step, err := service.CreateSynthesisStep(ctx, execution.ID, record)
		require.NoError(t, err)

		assert.Equal(t, models.SynthesisTaskID, step.TaskID)
		assert.Equal(t, substep.StatusCompleted, step.Status)
		assert.Equal(t, substep.ActionTypeInference, step.ActionType)
		assert.Equal(t, "synthesis", step.ToolOrPromptName)
		require.NotNil(t, step.StartedAt)
		require.NotNil(t, step.CompletedAt)
		elapsed := step.CompletedAt.Sub(*step.StartedAt)
		assert.Equal(t, 450*time.Millisecond, elapsed, "started_at is backdated by the duration")
	})

	t.Run("a second synthesis row is refused", func(t *testing.T) {
		_, err := service.CreateSynthesisStep(ctx, execution.ID, models.SynthesisRecord{
			Description: "Aggregate all sub-step results",
			DurationMs:  1,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestSubStepService_GetSubStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	executions := NewExecutionService(client.Client)
	service := NewSubStepService(client.Client)
	ctx := context.Background()

	execution, err := executions.CreateExecution(ctx, twoTaskRequest())
	require.NoError(t, err)

	t.Run("addresses a row by execution and task", func(t *testing.T) {
		step, err := service.GetSubStep(ctx, execution.ID, "001")
		require.NoError(t, err)
		assert.Equal(t, "Fetch the page", step.Description)
	})

	t.Run("returns ErrNotFound for an unknown task", func(t *testing.T) {
		_, err := service.GetSubStep(ctx, execution.ID, "404")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lists rows in task order", func(t *testing.T) {
		steps, err := service.ListSubSteps(ctx, execution.ID)
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, "001", steps[0].TaskID)
		assert.Equal(t, "002", steps[1].TaskID)
	})
}
