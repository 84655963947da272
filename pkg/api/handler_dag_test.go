package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent"
	entdag "github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/pkg/database"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/services"
	testdb "github.com/taskdag/taskdag/test/database"
)

func seedDagRow(t *testing.T, client *database.Client, id string, status entdag.Status) *ent.Dag {
	t.Helper()
	row, err := client.Dag.Create().
		SetID(id).
		SetStatus(status).
		SetResult(map[string]interface{}{}).
		SetAgentName("task-decomposer").
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestCreateDagHandler(t *testing.T) {
	client := testdb.NewTestClient(t)

	t.Run("a validated plan returns 201", func(t *testing.T) {
		var seen models.PlanningRequest
		planner := &stubPlanner{
			createFn: func(_ context.Context, req models.PlanningRequest) (*models.PlanningResult, error) {
				seen = req
				return &models.PlanningResult{Status: models.PlanningStatusSuccess, DagID: "dag_new"}, nil
			},
		}
		_, router := newTestServer(t, client, planner, &stubRunner{})

		var result models.PlanningResult
		w := doJSON(t, router, http.MethodPost, "/api/v1/dags",
			PlanGoalRequest{GoalText: "summarize last week's signups"}, &result)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "dag_new", result.DagID)
		assert.Equal(t, "task-decomposer", seen.AgentName, "agent name defaults to the builtin decomposer")
	})

	t.Run("a clarification question returns 200", func(t *testing.T) {
		planner := &stubPlanner{
			createFn: func(_ context.Context, _ models.PlanningRequest) (*models.PlanningResult, error) {
				return &models.PlanningResult{
					Status:             models.PlanningStatusClarificationRequired,
					DagID:              "dag_pending",
					ClarificationQuery: "which week exactly?",
				}, nil
			},
		}
		_, router := newTestServer(t, client, planner, &stubRunner{})

		var result models.PlanningResult
		w := doJSON(t, router, http.MethodPost, "/api/v1/dags",
			PlanGoalRequest{GoalText: "summarize signups"}, &result)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "which week exactly?", result.ClarificationQuery)
	})

	t.Run("a rejected plan returns 422", func(t *testing.T) {
		planner := &stubPlanner{
			createFn: func(_ context.Context, _ models.PlanningRequest) (*models.PlanningResult, error) {
				return &models.PlanningResult{Status: models.PlanningStatusValidationError, DagID: "dag_bad"}, nil
			},
		}
		_, router := newTestServer(t, client, planner, &stubRunner{})

		w := doJSON(t, router, http.MethodPost, "/api/v1/dags",
			PlanGoalRequest{GoalText: "do something"}, nil)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("a stop-aborted round returns 409", func(t *testing.T) {
		planner := &stubPlanner{
			createFn: func(_ context.Context, _ models.PlanningRequest) (*models.PlanningResult, error) {
				return &models.PlanningResult{Status: models.PlanningStatusFailed, Error: "planning stopped by request"}, nil
			},
		}
		_, router := newTestServer(t, client, planner, &stubRunner{})

		w := doJSON(t, router, http.MethodPost, "/api/v1/dags",
			PlanGoalRequest{GoalText: "do something"}, nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing goal text returns 400 without reaching the planner", func(t *testing.T) {
		planner := &stubPlanner{
			createFn: func(_ context.Context, _ models.PlanningRequest) (*models.PlanningResult, error) {
				t.Fatal("planner should not be called")
				return nil, nil
			},
		}
		_, router := newTestServer(t, client, planner, &stubRunner{})

		w := doJSON(t, router, http.MethodPost, "/api/v1/dags", map[string]string{}, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid cron surfaces as 422", func(t *testing.T) {
		planner := &stubPlanner{
			createFn: func(_ context.Context, _ models.PlanningRequest) (*models.PlanningResult, error) {
				return nil, services.NewValidationError("cron_schedule", "invalid cron expression")
			},
		}
		_, router := newTestServer(t, client, planner, &stubRunner{})

		var body ErrorResponse
		w := doJSON(t, router, http.MethodPost, "/api/v1/dags",
			PlanGoalRequest{GoalText: "weekly report", CronSchedule: "every monday"}, &body)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, body.Error, "cron_schedule")
	})
}

func TestClarifyDagHandler(t *testing.T) {
	client := testdb.NewTestClient(t)

	t.Run("the answer re-enters planning under the same dag id", func(t *testing.T) {
		planner := &stubPlanner{
			clarifyFn: func(_ context.Context, dagID, answer string) (*models.PlanningResult, error) {
				assert.Equal(t, "dag_clar", dagID)
				assert.Equal(t, "the calendar week", answer)
				return &models.PlanningResult{Status: models.PlanningStatusSuccess, DagID: dagID}, nil
			},
		}
		_, router := newTestServer(t, client, planner, &stubRunner{})

		var result models.PlanningResult
		w := doJSON(t, router, http.MethodPost, "/api/v1/dags/dag_clar/clarify",
			ClarifyRequest{Answer: "the calendar week"}, &result)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "dag_clar", result.DagID)
	})

	t.Run("a second clarification is rejected", func(t *testing.T) {
		planner := &stubPlanner{
			clarifyFn: func(_ context.Context, _, _ string) (*models.PlanningResult, error) {
				return nil, fmt.Errorf("%w: dag is not awaiting clarification", services.ErrInvalidInput)
			},
		}
		_, router := newTestServer(t, client, planner, &stubRunner{})

		w := doJSON(t, router, http.MethodPost, "/api/v1/dags/dag_clar/clarify",
			ClarifyRequest{Answer: "again"}, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDagReadEndpoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedDagRow(t, client, "dag_read_1", entdag.StatusSuccess)
	seedDagRow(t, client, "dag_read_2", entdag.StatusValidationError)

	_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{})

	t.Run("get returns the row", func(t *testing.T) {
		var row ent.Dag
		w := doJSON(t, router, http.MethodGet, "/api/v1/dags/dag_read_1", nil, &row)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "dag_read_1", row.ID)
	})

	t.Run("get unknown id returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/dags/dag_ghost", nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list filters by status", func(t *testing.T) {
		var body models.DagListResponse
		w := doJSON(t, router, http.MethodGet, "/api/v1/dags?status=validation_error", nil, &body)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 1, body.TotalCount)
		assert.Equal(t, "dag_read_2", body.Dags[0].ID)
	})
}

func TestStopDagHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{})

	t.Run("stop is accepted for a dag id still being planned", func(t *testing.T) {
		var first StopResponse
		w := doJSON(t, router, http.MethodPost, "/api/v1/dags/dag_unpersisted/stop", nil, &first)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "requested", first.Status)

		var second StopResponse
		w = doJSON(t, router, http.MethodPost, "/api/v1/dags/dag_unpersisted/stop", nil, &second)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, first.StopRequestID, second.StopRequestID,
			"a re-request converges on the open stop request")
	})
}
