package planner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/services"
	testdb "github.com/taskdag/taskdag/test/database"
)

func strPtr(s string) *string { return &s }

func TestValidateCronExpr(t *testing.T) {
	valid := []string{
		"0 9 * * 1",
		"*/5 * * * *",
		"0 0 1 * *",
		"@daily",
	}
	for _, expr := range valid {
		assert.NoError(t, ValidateCronExpr(expr), expr)
	}

	invalid := []string{
		"",
		"   ",
		"61 * * * *",
		"once a day",
		"* * * *",
	}
	for _, expr := range invalid {
		assert.Error(t, ValidateCronExpr(expr), expr)
	}
}

func TestDescribeCron(t *testing.T) {
	desc, err := DescribeCron("0 9 * * 1")
	require.NoError(t, err)
	assert.Contains(t, desc, "Monday")

	desc, err = DescribeCron("30 8 * * 1-5")
	require.NoError(t, err)
	assert.Contains(t, desc, "Monday through Friday")

	_, err = DescribeCron("total nonsense")
	assert.Error(t, err)
}

func TestPlanner_ListScheduled(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	dags := services.NewDagService(client.Client)
	p := newTestPlanner(t, client, &fakeFactory{planning: llm.NewScriptedClient(), title: llm.NewScriptedClient()})

	_, err := dags.CreateDag(ctx, models.CreateDagRequest{
		ID:             "dag_sched_weekly",
		Status:         models.DagStatusSuccess,
		AgentName:      "task-decomposer",
		Title:          strPtr("Weekly Digest"),
		CronSchedule:   strPtr("0 9 * * 1"),
		ScheduleActive: true,
		Timezone:       "Europe/Berlin",
	})
	require.NoError(t, err)

	_, err = dags.CreateDag(ctx, models.CreateDagRequest{
		ID:           "dag_sched_paused",
		Status:       models.DagStatusSuccess,
		AgentName:    "task-decomposer",
		CronSchedule: strPtr("*/10 * * * *"),
	})
	require.NoError(t, err)

	_, err = dags.CreateDag(ctx, models.CreateDagRequest{
		ID:        "dag_unscheduled",
		Status:    models.DagStatusSuccess,
		AgentName: "task-decomposer",
	})
	require.NoError(t, err)

	list, err := p.ListScheduled(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	byID := make(map[string]models.ScheduledDagInfo, len(list))
	for _, info := range list {
		byID[info.ID] = info
	}

	weekly, ok := byID["dag_sched_weekly"]
	require.True(t, ok)
	assert.Equal(t, "Weekly Digest", weekly.Title)
	assert.Equal(t, "0 9 * * 1", weekly.CronSchedule)
	assert.Contains(t, weekly.HumanReadableCron, "Monday")
	assert.True(t, weekly.Active)
	assert.Equal(t, "Europe/Berlin", weekly.Timezone)
	assert.Nil(t, weekly.LastRunAt)

	paused, ok := byID["dag_sched_paused"]
	require.True(t, ok)
	assert.False(t, paused.Active)
	assert.NotEmpty(t, paused.HumanReadableCron)
}

func TestPlanner_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	dags := services.NewDagService(client.Client)
	p := newTestPlanner(t, client, &fakeFactory{planning: llm.NewScriptedClient(), title: llm.NewScriptedClient()})

	_, err := dags.CreateDag(ctx, models.CreateDagRequest{
		ID:           "dag_update_sched",
		Status:       models.DagStatusSuccess,
		AgentName:    "task-decomposer",
		CronSchedule: strPtr("0 9 * * 1"),
	})
	require.NoError(t, err)

	t.Run("rejects an invalid cron and leaves the row alone", func(t *testing.T) {
		_, err := p.Update(ctx, "dag_update_sched", models.UpdateDagRequest{
			CronSchedule: strPtr("every full moon"),
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))

		row, err := client.Dag.Get(ctx, "dag_update_sched")
		require.NoError(t, err)
		assert.Equal(t, "0 9 * * 1", *row.CronSchedule)
	})

	t.Run("rejects an unknown timezone", func(t *testing.T) {
		_, err := p.Update(ctx, "dag_update_sched", models.UpdateDagRequest{
			Timezone: strPtr("Atlantis/Sunken_City"),
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("stores a valid cron", func(t *testing.T) {
		updated, err := p.Update(ctx, "dag_update_sched", models.UpdateDagRequest{
			CronSchedule: strPtr("30 7 * * 2"),
		})
		require.NoError(t, err)
		assert.Equal(t, "30 7 * * 2", *updated.CronSchedule)
	})
}
