// Package api exposes the REST and WebSocket surface of the service.
//
// Routes live under /api/v1 and map one-to-one onto the planner, executor
// and store services; the handlers hold no domain logic of their own.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/database"
	"github.com/taskdag/taskdag/pkg/events"
	"github.com/taskdag/taskdag/pkg/executor"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/services"
)

// GoalPlanner is the planning surface the handlers call.
// *planner.Planner satisfies it.
type GoalPlanner interface {
	CreateFromGoal(ctx context.Context, req models.PlanningRequest) (*models.PlanningResult, error)
	ResumeFromClarification(ctx context.Context, dagID, userAnswer string) (*models.PlanningResult, error)
	ListScheduled(ctx context.Context) ([]models.ScheduledDagInfo, error)
	Update(ctx context.Context, dagID string, req models.UpdateDagRequest) (*ent.Dag, error)
	SafeDelete(ctx context.Context, dagID string) error
}

// Runner starts and resumes execution runs. *executor.Executor satisfies it.
type Runner interface {
	Execute(ctx context.Context, dagID string, cfg *executor.ExecutionConfig) (*ent.DagExecution, error)
	Resume(ctx context.Context, executionID string, cfg *executor.ExecutionConfig) (*ent.DagExecution, error)
}

// Server wires the HTTP routes to the domain services.
type Server struct {
	cfg        config.ServerConfig
	dbClient   *database.Client
	planner    GoalPlanner
	runner     Runner
	dags       *services.DagService
	executions *services.ExecutionService
	stops      *services.StopService
	agents     *services.AgentService
	warnings   *services.SystemWarningsService
	bus        *events.Bus
	logger     *slog.Logger

	httpServer *http.Server
}

// NewServer creates the API server. The warnings service and event bus
// are optional; their endpoints degrade gracefully when absent.
func NewServer(
	cfg config.ServerConfig,
	dbClient *database.Client,
	goalPlanner GoalPlanner,
	runner Runner,
	warnings *services.SystemWarningsService,
	bus *events.Bus,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:        cfg,
		dbClient:   dbClient,
		planner:    goalPlanner,
		runner:     runner,
		dags:       services.NewDagService(dbClient.Client),
		executions: services.NewExecutionService(dbClient.Client),
		stops:      services.NewStopService(dbClient.Client),
		agents:     services.NewAgentService(dbClient.Client),
		warnings:   warnings,
		bus:        bus,
		logger:     logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), securityHeaders())

	// Health stays unauthenticated so orchestrator probes work without
	// the API token.
	r.GET("/healthz", s.healthzHandler)

	v1 := r.Group("/api/v1")
	if s.cfg.AuthToken != "" {
		v1.Use(bearerAuth(s.cfg.AuthToken))
	}

	v1.GET("/version", s.versionHandler)
	v1.GET("/system/warnings", s.systemWarningsHandler)

	v1.POST("/dags", s.createDagHandler)
	v1.GET("/dags", s.listDagsHandler)
	v1.GET("/dags/scheduled", s.scheduledDagsHandler)
	v1.GET("/dags/:id", s.getDagHandler)
	v1.PATCH("/dags/:id", s.updateDagHandler)
	v1.DELETE("/dags/:id", s.deleteDagHandler)
	v1.POST("/dags/:id/clarify", s.clarifyDagHandler)
	v1.POST("/dags/:id/execute", s.executeDagHandler)
	v1.POST("/dags/:id/stop", s.stopDagHandler)

	v1.GET("/executions", s.listExecutionsHandler)
	v1.GET("/executions/:id", s.getExecutionHandler)
	v1.GET("/executions/:id/steps", s.getExecutionStepsHandler)
	v1.GET("/executions/:id/events", s.executionEventsHandler)
	v1.DELETE("/executions/:id", s.deleteExecutionHandler)
	v1.POST("/executions/:id/resume", s.resumeExecutionHandler)
	v1.POST("/executions/:id/stop", s.stopExecutionHandler)

	v1.GET("/agents", s.listAgentsHandler)
	v1.POST("/agents", s.createAgentHandler)
	v1.GET("/agents/:id", s.getAgentHandler)
	v1.PATCH("/agents/:id", s.updateAgentHandler)
	v1.POST("/agents/:id/activate", s.activateAgentHandler)
	v1.DELETE("/agents/:id", s.deleteAgentHandler)

	return r
}

// Start serves HTTP on addr, blocking until the listener closes.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
