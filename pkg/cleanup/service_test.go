package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/stoprequest"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/database"
	"github.com/taskdag/taskdag/pkg/services"
	testdb "github.com/taskdag/taskdag/test/database"
)

func newTestService(client *database.Client) (*Service, *services.SystemWarningsService) {
	warnings := services.NewSystemWarningsService()
	svc := NewService(
		config.DefaultRetentionConfig(),
		services.NewExecutionService(client.Client),
		services.NewStopService(client.Client),
		warnings,
	)
	return svc, warnings
}

func seedExecution(t *testing.T, client *database.Client, status dagexecution.Status, completedAt, suspendedAt *time.Time) *ent.DagExecution {
	t.Helper()
	create := client.DagExecution.Create().
		SetID("exec_" + uuid.New().String()).
		SetOriginalRequest("retention test subject").
		SetStatus(status)
	if completedAt != nil {
		create.SetCompletedAt(*completedAt)
	}
	if suspendedAt != nil {
		create.SetSuspendedAt(*suspendedAt)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestService_Sweep(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := time.Now().Add(-120 * 24 * time.Hour)
	recent := time.Now().Add(-time.Hour)

	expired := seedExecution(t, client, dagexecution.StatusCompleted, &old, nil)
	fresh := seedExecution(t, client, dagexecution.StatusCompleted, &recent, nil)
	suspendedOld := seedExecution(t, client, dagexecution.StatusSuspended, nil, &old)
	running := seedExecution(t, client, dagexecution.StatusRunning, nil, nil)

	oldStop, err := client.StopRequest.Create().
		SetID("stop_" + uuid.New().String()).
		SetExecutionID(fresh.ID).
		SetStatus(stoprequest.StatusHandled).
		SetHandledAt(old).
		Save(ctx)
	require.NoError(t, err)
	openStop, err := services.NewStopService(client.Client).RequestStopForExecution(ctx, running.ID)
	require.NoError(t, err)

	svc, warnings := newTestService(client)
	svc.Sweep(ctx)

	_, err = client.DagExecution.Get(ctx, expired.ID)
	assert.True(t, ent.IsNotFound(err), "settled executions past the cutoff are deleted")
	_, err = client.DagExecution.Get(ctx, suspendedOld.ID)
	assert.True(t, ent.IsNotFound(err), "suspended executions age by suspension time")

	_, err = client.DagExecution.Get(ctx, fresh.ID)
	assert.NoError(t, err, "recent executions survive")
	_, err = client.DagExecution.Get(ctx, running.ID)
	assert.NoError(t, err, "active executions are never touched")

	_, err = client.StopRequest.Get(ctx, oldStop.ID)
	assert.True(t, ent.IsNotFound(err), "old handled stop requests are pruned")
	_, err = client.StopRequest.Get(ctx, openStop.ID)
	assert.NoError(t, err, "open stop requests survive")

	assert.Empty(t, warnings.GetWarnings(), "a clean sweep raises no warnings")
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)

	svc, _ := newTestService(client)
	svc.Start(context.Background())
	svc.Stop()

	disabled := NewService(
		config.RetentionConfig{Enabled: false},
		services.NewExecutionService(client.Client),
		services.NewStopService(client.Client),
		nil,
	)
	disabled.Start(context.Background())
	disabled.Stop()
}
