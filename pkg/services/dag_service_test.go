package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/pkg/models"
	testdb "github.com/taskdag/taskdag/test/database"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestDagService_CreateDag(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDagService(client.Client)
	ctx := context.Background()

	t.Run("persists a successful planning outcome", func(t *testing.T) {
		req := models.CreateDagRequest{
			ID:        "dag_create_full",
			Status:    models.DagStatusSuccess,
			AgentName: "decomposer",
			Title:     strPtr("Weekly report pipeline"),
			Result: map[string]interface{}{
				"original_request": "compile the weekly report",
				"sub_tasks":        []interface{}{},
			},
			Params: map[string]interface{}{
				"user_request": "compile the weekly report",
			},
			CronSchedule:         strPtr("0 9 * * 1"),
			ScheduleActive:       true,
			Timezone:             "Europe/Berlin",
			PlanningTotalUsage:   &models.TokenUsage{PromptTokens: 900, CompletionTokens: 300, TotalTokens: 1200},
			PlanningTotalCostUsd: "0.0042",
			PlanningAttempts: []models.PlanningAttempt{
				{Reason: models.AttemptReasonInitial, Usage: &models.TokenUsage{TotalTokens: 1000}, CostUsd: "0.0035"},
				{Reason: models.AttemptReasonTitleMaster, Usage: &models.TokenUsage{TotalTokens: 200}, CostUsd: "0.0007"},
			},
		}

		created, err := service.CreateDag(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, created)

		stored, err := service.GetDag(ctx, "dag_create_full")
		require.NoError(t, err)
		assert.Equal(t, dag.StatusSuccess, stored.Status)
		assert.Equal(t, "decomposer", stored.AgentName)
		require.NotNil(t, stored.DagTitle)
		assert.Equal(t, "Weekly report pipeline", *stored.DagTitle)
		require.NotNil(t, stored.CronSchedule)
		assert.Equal(t, "0 9 * * 1", *stored.CronSchedule)
		assert.True(t, stored.ScheduleActive)
		assert.Equal(t, "Europe/Berlin", stored.Timezone)
		require.NotNil(t, stored.PlanningTotalCostUsd)
		assert.Equal(t, "0.0042", *stored.PlanningTotalCostUsd)
		assert.Len(t, stored.PlanningAttempts, 2)
		assert.EqualValues(t, 1200, stored.PlanningTotalUsage["total_tokens"])
	})

	t.Run("persists a rejected plan under validation_error", func(t *testing.T) {
		created, err := service.CreateDag(ctx, models.CreateDagRequest{
			ID:        "dag_create_rejected",
			Status:    models.DagStatusValidationError,
			AgentName: "decomposer",
			Result:    map[string]interface{}{"raw_response": "not json at all"},
		})
		require.NoError(t, err)
		assert.Equal(t, dag.StatusValidationError, created.Status)
		assert.Nil(t, created.DagTitle)
		assert.Equal(t, "UTC", created.Timezone)
	})

	t.Run("rejects a duplicate id", func(t *testing.T) {
		_, err := service.CreateDag(ctx, models.CreateDagRequest{
			ID:        "dag_create_full",
			Status:    models.DagStatusSuccess,
			AgentName: "decomposer",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateDagRequest
		}{
			{name: "missing id", req: models.CreateDagRequest{Status: models.DagStatusSuccess, AgentName: "a"}},
			{name: "missing agent_name", req: models.CreateDagRequest{ID: "dag_x", Status: models.DagStatusSuccess}},
			{name: "missing status", req: models.CreateDagRequest{ID: "dag_x", AgentName: "a"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateDag(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestDagService_ListDags(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDagService(client.Client)
	ctx := context.Background()

	seed := []models.CreateDagRequest{
		{ID: "dag_list_1", Status: models.DagStatusSuccess, AgentName: "decomposer"},
		{ID: "dag_list_2", Status: models.DagStatusSuccess, AgentName: "researcher"},
		{ID: "dag_list_3", Status: models.DagStatusPending, AgentName: "decomposer"},
	}
	for _, req := range seed {
		_, err := service.CreateDag(ctx, req)
		require.NoError(t, err)
	}

	t.Run("lists everything with defaults", func(t *testing.T) {
		resp, err := service.ListDags(ctx, models.DagFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Dags, 3)
		assert.Equal(t, 20, resp.Limit)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.ListDags(ctx, models.DagFilters{Status: "pending"})
		require.NoError(t, err)
		require.Len(t, resp.Dags, 1)
		assert.Equal(t, "dag_list_3", resp.Dags[0].ID)
	})

	t.Run("filters by agent name", func(t *testing.T) {
		resp, err := service.ListDags(ctx, models.DagFilters{AgentName: "decomposer"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("paginates with a stable total count", func(t *testing.T) {
		resp, err := service.ListDags(ctx, models.DagFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Dags, 1)
	})
}

func TestDagService_UpdateDag(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDagService(client.Client)
	ctx := context.Background()

	_, err := service.CreateDag(ctx, models.CreateDagRequest{
		ID:        "dag_update",
		Status:    models.DagStatusSuccess,
		AgentName: "decomposer",
		Title:     strPtr("Before"),
	})
	require.NoError(t, err)

	t.Run("sets title and schedule", func(t *testing.T) {
		updated, err := service.UpdateDag(ctx, "dag_update", models.UpdateDagRequest{
			Title:          strPtr("After"),
			CronSchedule:   strPtr("*/5 * * * *"),
			ScheduleActive: boolPtr(true),
			Timezone:       strPtr("America/New_York"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.DagTitle)
		assert.Equal(t, "After", *updated.DagTitle)
		require.NotNil(t, updated.CronSchedule)
		assert.Equal(t, "*/5 * * * *", *updated.CronSchedule)
		assert.True(t, updated.ScheduleActive)
		assert.Equal(t, "America/New_York", updated.Timezone)
	})

	t.Run("empty title clears it", func(t *testing.T) {
		updated, err := service.UpdateDag(ctx, "dag_update", models.UpdateDagRequest{
			Title: strPtr(""),
		})
		require.NoError(t, err)
		assert.Nil(t, updated.DagTitle)
	})

	t.Run("clearing the schedule deactivates it", func(t *testing.T) {
		updated, err := service.UpdateDag(ctx, "dag_update", models.UpdateDagRequest{
			ClearCronSchedule: true,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.CronSchedule)
		assert.False(t, updated.ScheduleActive)
	})

	t.Run("rejects activating a cleared schedule", func(t *testing.T) {
		_, err := service.UpdateDag(ctx, "dag_update", models.UpdateDagRequest{
			ClearCronSchedule: true,
			ScheduleActive:    boolPtr(true),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects an empty timezone", func(t *testing.T) {
		_, err := service.UpdateDag(ctx, "dag_update", models.UpdateDagRequest{
			Timezone: strPtr(""),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing dag", func(t *testing.T) {
		_, err := service.UpdateDag(ctx, "dag_missing", models.UpdateDagRequest{Title: strPtr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDagService_ScheduledDags(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDagService(client.Client)
	ctx := context.Background()

	for _, req := range []models.CreateDagRequest{
		{ID: "dag_sched_active", Status: models.DagStatusSuccess, AgentName: "a", CronSchedule: strPtr("0 * * * *"), ScheduleActive: true},
		{ID: "dag_sched_paused", Status: models.DagStatusSuccess, AgentName: "a", CronSchedule: strPtr("30 2 * * *")},
		{ID: "dag_sched_none", Status: models.DagStatusSuccess, AgentName: "a"},
	} {
		_, err := service.CreateDag(ctx, req)
		require.NoError(t, err)
	}

	t.Run("lists every dag carrying a schedule", func(t *testing.T) {
		dags, err := service.ListScheduledDags(ctx, false)
		require.NoError(t, err)
		assert.Len(t, dags, 2)
	})

	t.Run("active filter drops paused schedules", func(t *testing.T) {
		dags, err := service.ListScheduledDags(ctx, true)
		require.NoError(t, err)
		require.Len(t, dags, 1)
		assert.Equal(t, "dag_sched_active", dags[0].ID)
	})

	t.Run("stamps the last trigger time", func(t *testing.T) {
		at := time.Now().Truncate(time.Second)
		require.NoError(t, service.MarkScheduleRun(ctx, "dag_sched_active", at))

		stored, err := service.GetDag(ctx, "dag_sched_active")
		require.NoError(t, err)
		require.NotNil(t, stored.LastRunAt)
		assert.WithinDuration(t, at, *stored.LastRunAt, time.Second)
	})
}

func TestDagService_SafeDeleteDag(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDagService(client.Client)
	executionService := NewExecutionService(client.Client)
	stopService := NewStopService(client.Client)
	ctx := context.Background()

	t.Run("refuses while executions reference the dag", func(t *testing.T) {
		_, err := service.CreateDag(ctx, models.CreateDagRequest{
			ID: "dag_del_busy", Status: models.DagStatusSuccess, AgentName: "a",
		})
		require.NoError(t, err)

		dagID := "dag_del_busy"
		_, err = executionService.CreateExecution(ctx, models.CreateExecutionRequest{
			DagID:           &dagID,
			OriginalRequest: "run it",
		})
		require.NoError(t, err)

		err = service.SafeDeleteDag(ctx, dagID)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "executions")

		_, err = service.GetDag(ctx, dagID)
		assert.NoError(t, err, "refused delete must leave the dag in place")
	})

	t.Run("deletes the dag and its stop requests", func(t *testing.T) {
		_, err := service.CreateDag(ctx, models.CreateDagRequest{
			ID: "dag_del_free", Status: models.DagStatusSuccess, AgentName: "a",
		})
		require.NoError(t, err)
		_, err = stopService.RequestStopForDag(ctx, "dag_del_free")
		require.NoError(t, err)

		require.NoError(t, service.SafeDeleteDag(ctx, "dag_del_free"))

		_, err = service.GetDag(ctx, "dag_del_free")
		assert.ErrorIs(t, err, ErrNotFound)

		active, err := stopService.HasActiveStopForDag(ctx, "dag_del_free")
		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("returns ErrNotFound for missing dag", func(t *testing.T) {
		err := service.SafeDeleteDag(ctx, "dag_del_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDagService_DeleteDag(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDagService(client.Client)
	stopService := NewStopService(client.Client)
	ctx := context.Background()

	t.Run("leaves handled stop requests observable", func(t *testing.T) {
		_, err := service.CreateDag(ctx, models.CreateDagRequest{
			ID: "dag_discard", Status: models.DagStatusSuccess, AgentName: "a",
		})
		require.NoError(t, err)
		_, err = stopService.RequestStopForDag(ctx, "dag_discard")
		require.NoError(t, err)
		require.NoError(t, stopService.MarkHandledForDag(ctx, "dag_discard"))

		require.NoError(t, service.DeleteDag(ctx, "dag_discard"))

		_, err = service.GetDag(ctx, "dag_discard")
		assert.ErrorIs(t, err, ErrNotFound)

		count, err := client.StopRequest.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "the handled stop row stays behind")
	})

	t.Run("tolerates a missing dag", func(t *testing.T) {
		assert.NoError(t, service.DeleteDag(ctx, "dag_never_existed"))
	})
}

func TestDagService_TransferOutcome(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewDagService(client.Client)
	ctx := context.Background()

	_, err := service.CreateDag(ctx, models.CreateDagRequest{
		ID:        "dag_original",
		Status:    models.DagStatusPending,
		AgentName: "decomposer",
		Result: map[string]interface{}{
			"clarification_needed": true,
			"clarifying_question":  "Which quarter?",
		},
	})
	require.NoError(t, err)

	_, err = service.CreateDag(ctx, models.CreateDagRequest{
		ID:                   "dag_scratch",
		Status:               models.DagStatusSuccess,
		AgentName:            "decomposer",
		Title:                strPtr("Q3 report"),
		Result:               map[string]interface{}{"sub_tasks": []interface{}{}},
		PlanningTotalCostUsd: "0.0100",
	})
	require.NoError(t, err)

	t.Run("moves the outcome onto the original id", func(t *testing.T) {
		updated, err := service.TransferOutcome(ctx, "dag_scratch", "dag_original")
		require.NoError(t, err)

		assert.Equal(t, "dag_original", updated.ID, "the caller-visible id never changes")
		assert.Equal(t, dag.StatusSuccess, updated.Status)
		require.NotNil(t, updated.DagTitle)
		assert.Equal(t, "Q3 report", *updated.DagTitle)
		require.NotNil(t, updated.PlanningTotalCostUsd)
		assert.Equal(t, "0.0100", *updated.PlanningTotalCostUsd)
		assert.Contains(t, updated.Result, "sub_tasks")
		assert.NotContains(t, updated.Result, "clarification_needed")

		_, err = service.GetDag(ctx, "dag_scratch")
		assert.ErrorIs(t, err, ErrNotFound, "the scratch row is consumed")
	})

	t.Run("returns ErrNotFound for a missing scratch row", func(t *testing.T) {
		_, err := service.TransferOutcome(ctx, "dag_gone", "dag_original")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
