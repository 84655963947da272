package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent"
	entdag "github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/database"
	"github.com/taskdag/taskdag/pkg/executor"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/services"
	testdb "github.com/taskdag/taskdag/test/database"
)

type fakeStarter struct {
	mu     sync.Mutex
	dagIDs []string
	err    error
}

func (f *fakeStarter) Execute(_ context.Context, dagID string, _ *executor.ExecutionConfig) (*ent.DagExecution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.dagIDs = append(f.dagIDs, dagID)
	return &ent.DagExecution{ID: "exec_scheduled_" + dagID}, nil
}

func (f *fakeStarter) started() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.dagIDs))
	copy(out, f.dagIDs)
	return out
}

func newTestScheduler(t *testing.T, client *database.Client, starter ExecutionStarter) (*Scheduler, *services.SystemWarningsService) {
	t.Helper()
	warnings := services.NewSystemWarningsService()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(config.DefaultSchedulerConfig(), services.NewDagService(client.Client), starter, warnings, logger)
	return s, warnings
}

func seedScheduledDag(t *testing.T, client *database.Client, id, cronExpr string, active bool) {
	t.Helper()
	_, err := client.Dag.Create().
		SetID(id).
		SetStatus(entdag.StatusSuccess).
		SetResult(map[string]interface{}{}).
		SetAgentName("task-decomposer").
		SetCronSchedule(cronExpr).
		SetScheduleActive(active).
		Save(context.Background())
	require.NoError(t, err)
}

func TestScheduler_Reload(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("registers active schedules and skips inactive ones", func(t *testing.T) {
		seedScheduledDag(t, client, "dag_sched_active", "0 9 * * 1", true)
		seedScheduledDag(t, client, "dag_sched_inactive", "0 9 * * 2", false)

		s, _ := newTestScheduler(t, client, &fakeStarter{})
		require.NoError(t, s.reload(ctx))

		assert.ElementsMatch(t, []string{"dag_sched_active"}, s.Entries())
	})

	t.Run("deactivation removes the entry on the next reload", func(t *testing.T) {
		seedScheduledDag(t, client, "dag_sched_toggle", "30 6 * * *", true)

		s, _ := newTestScheduler(t, client, &fakeStarter{})
		require.NoError(t, s.reload(ctx))
		assert.Contains(t, s.Entries(), "dag_sched_toggle")

		active := false
		_, err := services.NewDagService(client.Client).UpdateDag(ctx, "dag_sched_toggle",
			models.UpdateDagRequest{ScheduleActive: &active})
		require.NoError(t, err)

		require.NoError(t, s.reload(ctx))
		assert.NotContains(t, s.Entries(), "dag_sched_toggle")
	})

	t.Run("unparseable cron raises a warning that clears on repair", func(t *testing.T) {
		seedScheduledDag(t, client, "dag_sched_broken", "every monday", true)

		s, warnings := newTestScheduler(t, client, &fakeStarter{})
		require.NoError(t, s.reload(ctx))

		assert.NotContains(t, s.Entries(), "dag_sched_broken")
		found := findWarning(warnings, services.WarningCategorySchedule, "dag_sched_broken")
		require.NotNil(t, found)
		assert.Contains(t, found.Message, "does not parse")

		fixed := "0 8 * * 1"
		_, err := services.NewDagService(client.Client).UpdateDag(ctx, "dag_sched_broken",
			models.UpdateDagRequest{CronSchedule: &fixed})
		require.NoError(t, err)

		require.NoError(t, s.reload(ctx))
		assert.Contains(t, s.Entries(), "dag_sched_broken")
		assert.Nil(t, findWarning(warnings, services.WarningCategorySchedule, "dag_sched_broken"))
	})

	t.Run("timezone prefixes the cron entry", func(t *testing.T) {
		row := &ent.Dag{Timezone: "Europe/Berlin"}
		spec := "0 9 * * *"
		row.CronSchedule = &spec
		assert.Equal(t, "CRON_TZ=Europe/Berlin 0 9 * * *", specFor(row))

		row.Timezone = "UTC"
		assert.Equal(t, "0 9 * * *", specFor(row))

		daily := "@daily"
		row.CronSchedule = &daily
		row.Timezone = "Europe/Berlin"
		assert.Equal(t, "@daily", specFor(row), "descriptors carry no timezone slot")
	})
}

func TestScheduler_Fire(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("starts the execution and stamps last_run_at", func(t *testing.T) {
		seedScheduledDag(t, client, "dag_sched_fire", "0 7 * * *", true)

		starter := &fakeStarter{}
		s, _ := newTestScheduler(t, client, starter)
		s.fire("dag_sched_fire")

		assert.Equal(t, []string{"dag_sched_fire"}, starter.started())

		row, err := client.Dag.Get(ctx, "dag_sched_fire")
		require.NoError(t, err)
		require.NotNil(t, row.LastRunAt)
		assert.WithinDuration(t, time.Now(), *row.LastRunAt, 5*time.Second)
	})

	t.Run("a failed start leaves last_run_at alone", func(t *testing.T) {
		seedScheduledDag(t, client, "dag_sched_failfire", "0 7 * * *", true)

		starter := &fakeStarter{err: errors.New("dag is not executable")}
		s, _ := newTestScheduler(t, client, starter)
		s.fire("dag_sched_failfire")

		row, err := client.Dag.Get(ctx, "dag_sched_failfire")
		require.NoError(t, err)
		assert.Nil(t, row.LastRunAt)
	})
}

func findWarning(s *services.SystemWarningsService, category, source string) *services.SystemWarning {
	for _, w := range s.GetWarnings() {
		if w.Category == category && w.Source == source {
			return w
		}
	}
	return nil
}
