package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/database"
	"github.com/taskdag/taskdag/pkg/events"
	"github.com/taskdag/taskdag/pkg/executor"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/services"
	testdb "github.com/taskdag/taskdag/test/database"
)

// stubPlanner scripts the planning surface per test.
type stubPlanner struct {
	createFn    func(ctx context.Context, req models.PlanningRequest) (*models.PlanningResult, error)
	clarifyFn   func(ctx context.Context, dagID, answer string) (*models.PlanningResult, error)
	scheduledFn func(ctx context.Context) ([]models.ScheduledDagInfo, error)
	updateFn    func(ctx context.Context, dagID string, req models.UpdateDagRequest) (*ent.Dag, error)
	deleteFn    func(ctx context.Context, dagID string) error
}

func (p *stubPlanner) CreateFromGoal(ctx context.Context, req models.PlanningRequest) (*models.PlanningResult, error) {
	return p.createFn(ctx, req)
}

func (p *stubPlanner) ResumeFromClarification(ctx context.Context, dagID, answer string) (*models.PlanningResult, error) {
	return p.clarifyFn(ctx, dagID, answer)
}

func (p *stubPlanner) ListScheduled(ctx context.Context) ([]models.ScheduledDagInfo, error) {
	if p.scheduledFn == nil {
		return []models.ScheduledDagInfo{}, nil
	}
	return p.scheduledFn(ctx)
}

func (p *stubPlanner) Update(ctx context.Context, dagID string, req models.UpdateDagRequest) (*ent.Dag, error) {
	return p.updateFn(ctx, dagID, req)
}

func (p *stubPlanner) SafeDelete(ctx context.Context, dagID string) error {
	return p.deleteFn(ctx, dagID)
}

// stubRunner scripts the execution surface per test.
type stubRunner struct {
	executeFn func(ctx context.Context, dagID string, cfg *executor.ExecutionConfig) (*ent.DagExecution, error)
	resumeFn  func(ctx context.Context, executionID string, cfg *executor.ExecutionConfig) (*ent.DagExecution, error)
}

func (r *stubRunner) Execute(ctx context.Context, dagID string, cfg *executor.ExecutionConfig) (*ent.DagExecution, error) {
	return r.executeFn(ctx, dagID, cfg)
}

func (r *stubRunner) Resume(ctx context.Context, executionID string, cfg *executor.ExecutionConfig) (*ent.DagExecution, error) {
	return r.resumeFn(ctx, executionID, cfg)
}

type serverOption func(*Server)

func withAuthToken(token string) serverOption {
	return func(s *Server) { s.cfg.AuthToken = token }
}

func withWarnings(w *services.SystemWarningsService) serverOption {
	return func(s *Server) { s.warnings = w }
}

func withBus(bus *events.Bus) serverOption {
	return func(s *Server) { s.bus = bus }
}

// newTestServer builds a Server over the test database with stubbed
// planner and runner, returning its router for httptest traffic.
func newTestServer(t *testing.T, client *database.Client, planner GoalPlanner, runner Runner, opts ...serverOption) (*Server, *gin.Engine) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewServer(config.DefaultServerConfig(), client, planner, runner, nil, nil, logger)
	for _, opt := range opts {
		opt(s)
	}
	return s, s.Router()
}

// doJSON performs one request against the router and decodes the body
// into out when out is non-nil.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if out != nil && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out),
			"response body should be JSON: %s", w.Body.String())
	}
	return w
}

func TestServerRouting(t *testing.T) {
	client := testdb.NewTestClient(t)

	t.Run("unknown routes return 404", func(t *testing.T) {
		_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{})
		w := doJSON(t, router, http.MethodGet, "/api/v1/nope", nil, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("scheduled listing does not collide with the id route", func(t *testing.T) {
		planner := &stubPlanner{
			scheduledFn: func(context.Context) ([]models.ScheduledDagInfo, error) {
				return []models.ScheduledDagInfo{{ID: "dag_sched", CronSchedule: "0 9 * * 1", Active: true}}, nil
			},
		}
		_, router := newTestServer(t, client, planner, &stubRunner{})

		var body struct {
			Dags []models.ScheduledDagInfo `json:"dags"`
		}
		w := doJSON(t, router, http.MethodGet, "/api/v1/dags/scheduled", nil, &body)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, body.Dags, 1)
		require.Equal(t, "dag_sched", body.Dags[0].ID)
	})
}
