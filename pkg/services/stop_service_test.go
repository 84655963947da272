package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent/stoprequest"
	testdb "github.com/taskdag/taskdag/test/database"
)

func TestStopService_RequestStopForDag(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStopService(client.Client)
	ctx := context.Background()

	t.Run("opens a requested row", func(t *testing.T) {
		request, err := service.RequestStopForDag(ctx, "dag_stop_1")
		require.NoError(t, err)
		require.NotNil(t, request)

		assert.Equal(t, stoprequest.StatusRequested, request.Status)
		require.NotNil(t, request.DagID)
		assert.Equal(t, "dag_stop_1", *request.DagID)
		assert.Nil(t, request.ExecutionID)
		assert.Nil(t, request.HandledAt)
	})

	t.Run("repeated requests converge on the same row", func(t *testing.T) {
		first, err := service.RequestStopForDag(ctx, "dag_stop_2")
		require.NoError(t, err)
		second, err := service.RequestStopForDag(ctx, "dag_stop_2")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)

		count, err := client.StopRequest.Query().
			Where(stoprequest.DagIDEQ("dag_stop_2")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("a handled request does not block a new one", func(t *testing.T) {
		first, err := service.RequestStopForDag(ctx, "dag_stop_3")
		require.NoError(t, err)
		require.NoError(t, service.MarkHandledForDag(ctx, "dag_stop_3"))

		second, err := service.RequestStopForDag(ctx, "dag_stop_3")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)

		count, err := client.StopRequest.Query().
			Where(stoprequest.DagIDEQ("dag_stop_3")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count, "the handled row stays for the record")
	})

	t.Run("validates the key", func(t *testing.T) {
		_, err := service.RequestStopForDag(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestStopService_RequestStopForExecution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStopService(client.Client)
	ctx := context.Background()

	t.Run("keys independently of dag requests", func(t *testing.T) {
		_, err := service.RequestStopForExecution(ctx, "exec_stop_1")
		require.NoError(t, err)

		active, err := service.HasActiveStopForExecution(ctx, "exec_stop_1")
		require.NoError(t, err)
		assert.True(t, active)

		dagActive, err := service.HasActiveStopForDag(ctx, "exec_stop_1")
		require.NoError(t, err)
		assert.False(t, dagActive, "an execution stop never matches the dag key")
	})

	t.Run("repeated requests converge on the same row", func(t *testing.T) {
		first, err := service.RequestStopForExecution(ctx, "exec_stop_2")
		require.NoError(t, err)
		second, err := service.RequestStopForExecution(ctx, "exec_stop_2")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("validates the key", func(t *testing.T) {
		_, err := service.RequestStopForExecution(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestStopService_MarkHandled(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStopService(client.Client)
	ctx := context.Background()

	t.Run("closes the open request and stamps handled_at", func(t *testing.T) {
		request, err := service.RequestStopForExecution(ctx, "exec_handle_1")
		require.NoError(t, err)

		require.NoError(t, service.MarkHandledForExecution(ctx, "exec_handle_1"))

		stored, err := client.StopRequest.Get(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, stoprequest.StatusHandled, stored.Status)
		assert.NotNil(t, stored.HandledAt)

		active, err := service.HasActiveStopForExecution(ctx, "exec_handle_1")
		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("closing zero rows is fine", func(t *testing.T) {
		assert.NoError(t, service.MarkHandledForDag(ctx, "dag_never_stopped"))
		assert.NoError(t, service.MarkHandledForExecution(ctx, "exec_never_stopped"))
	})
}

func TestStopService_DeleteHandledBefore(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStopService(client.Client)
	ctx := context.Background()

	oldHandled, err := service.RequestStopForDag(ctx, "dag_prune_old")
	require.NoError(t, err)
	require.NoError(t, service.MarkHandledForDag(ctx, "dag_prune_old"))
	err = client.StopRequest.UpdateOneID(oldHandled.ID).
		SetHandledAt(time.Now().Add(-72 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	freshHandled, err := service.RequestStopForDag(ctx, "dag_prune_fresh")
	require.NoError(t, err)
	require.NoError(t, service.MarkHandledForDag(ctx, "dag_prune_fresh"))

	open, err := service.RequestStopForDag(ctx, "dag_prune_open")
	require.NoError(t, err)

	deleted, err := service.DeleteHandledBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = client.StopRequest.Get(ctx, oldHandled.ID)
	assert.Error(t, err, "the aged handled row is pruned")
	_, err = client.StopRequest.Get(ctx, freshHandled.ID)
	assert.NoError(t, err)
	_, err = client.StopRequest.Get(ctx, open.ID)
	assert.NoError(t, err, "open requests are never pruned")
}
