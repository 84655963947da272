package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/substep"
	"github.com/taskdag/taskdag/pkg/database"
	"github.com/taskdag/taskdag/pkg/executor"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/services"
	testdb "github.com/taskdag/taskdag/test/database"
)

func seedExecutionRow(t *testing.T, client *database.Client, id string, status dagexecution.Status) *ent.DagExecution {
	t.Helper()
	row, err := client.DagExecution.Create().
		SetID(id).
		SetOriginalRequest("count the signups").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestExecuteAndResumeHandlers(t *testing.T) {
	client := testdb.NewTestClient(t)

	t.Run("execute hands off to the runner and returns 202", func(t *testing.T) {
		runner := &stubRunner{
			executeFn: func(_ context.Context, dagID string, cfg *executor.ExecutionConfig) (*ent.DagExecution, error) {
				assert.Equal(t, "dag_run", dagID)
				assert.Nil(t, cfg)
				return &ent.DagExecution{ID: "exec_run", Status: dagexecution.StatusPending}, nil
			},
		}
		_, router := newTestServer(t, client, &stubPlanner{}, runner)

		var row ent.DagExecution
		w := doJSON(t, router, http.MethodPost, "/api/v1/dags/dag_run/execute", nil, &row)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "exec_run", row.ID)
	})

	t.Run("executing an unplanned dag returns 400", func(t *testing.T) {
		runner := &stubRunner{
			executeFn: func(_ context.Context, dagID string, _ *executor.ExecutionConfig) (*ent.DagExecution, error) {
				return nil, fmt.Errorf("%w: dag %s is pending, not executable", services.ErrInvalidInput, dagID)
			},
		}
		_, router := newTestServer(t, client, &stubPlanner{}, runner)

		var body ErrorResponse
		w := doJSON(t, router, http.MethodPost, "/api/v1/dags/dag_unplanned/execute", nil, &body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, body.Error, "not executable")
	})

	t.Run("resume hands off to the runner", func(t *testing.T) {
		runner := &stubRunner{
			resumeFn: func(_ context.Context, executionID string, _ *executor.ExecutionConfig) (*ent.DagExecution, error) {
				return &ent.DagExecution{ID: executionID, Status: dagexecution.StatusRunning}, nil
			},
		}
		_, router := newTestServer(t, client, &stubPlanner{}, runner)

		var row ent.DagExecution
		w := doJSON(t, router, http.MethodPost, "/api/v1/executions/exec_sus/resume", nil, &row)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "exec_sus", row.ID)
	})

	t.Run("resuming a completed execution returns 400", func(t *testing.T) {
		runner := &stubRunner{
			resumeFn: func(_ context.Context, _ string, _ *executor.ExecutionConfig) (*ent.DagExecution, error) {
				return nil, fmt.Errorf("%w: cannot resume a completed execution", services.ErrInvalidInput)
			},
		}
		_, router := newTestServer(t, client, &stubPlanner{}, runner)

		w := doJSON(t, router, http.MethodPost, "/api/v1/executions/exec_done/resume", nil, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExecutionReadEndpoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seedExecutionRow(t, client, "exec_read", dagexecution.StatusCompleted)
	_, err := client.SubStep.Create().
		SetID("substep_read_001").
		SetExecutionID("exec_read").
		SetTaskID("001").
		SetDescription("count signups").
		SetActionType(substep.ActionTypeTool).
		SetToolOrPromptName("dbQuery").
		SetStatus(substep.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{})

	t.Run("get returns the row", func(t *testing.T) {
		var row ent.DagExecution
		w := doJSON(t, router, http.MethodGet, "/api/v1/executions/exec_read", nil, &row)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "exec_read", row.ID)
	})

	t.Run("get unknown id returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/executions/exec_ghost", nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("steps includes the sub-steps edge", func(t *testing.T) {
		var body struct {
			ID    string `json:"id"`
			Edges struct {
				SubSteps []struct {
					TaskID string `json:"task_id"`
				} `json:"sub_steps"`
			} `json:"edges"`
		}
		w := doJSON(t, router, http.MethodGet, "/api/v1/executions/exec_read/steps", nil, &body)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, body.Edges.SubSteps, 1)
		assert.Equal(t, "001", body.Edges.SubSteps[0].TaskID)
	})

	t.Run("list filters by status", func(t *testing.T) {
		var body models.ExecutionListResponse
		w := doJSON(t, router, http.MethodGet, "/api/v1/executions?status=completed", nil, &body)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 1, body.TotalCount)
		assert.Equal(t, "exec_read", body.Executions[0].ID)
	})
}

func TestDeleteExecutionHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{})

	t.Run("a settled execution deletes with 204", func(t *testing.T) {
		seedExecutionRow(t, client, "exec_del", dagexecution.StatusFailed)
		w := doJSON(t, router, http.MethodDelete, "/api/v1/executions/exec_del", nil, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		_, err := client.DagExecution.Get(context.Background(), "exec_del")
		assert.True(t, ent.IsNotFound(err))
	})

	t.Run("a running execution is refused with 400", func(t *testing.T) {
		seedExecutionRow(t, client, "exec_busy", dagexecution.StatusRunning)
		var body ErrorResponse
		w := doJSON(t, router, http.MethodDelete, "/api/v1/executions/exec_busy", nil, &body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, body.Error, "stop it first")
	})
}

func TestStopExecutionHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{})

	t.Run("stop opens a request against a live execution", func(t *testing.T) {
		seedExecutionRow(t, client, "exec_stop", dagexecution.StatusRunning)

		var first StopResponse
		w := doJSON(t, router, http.MethodPost, "/api/v1/executions/exec_stop/stop", nil, &first)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "requested", first.Status)

		var second StopResponse
		w = doJSON(t, router, http.MethodPost, "/api/v1/executions/exec_stop/stop", nil, &second)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, first.StopRequestID, second.StopRequestID)
	})

	t.Run("stopping an unknown execution returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/executions/exec_ghost/stop", nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
