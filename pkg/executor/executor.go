// Package executor runs validated plans as concurrent dependency waves,
// persisting per-task sub-steps and publishing progress on the event bus.
package executor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/events"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/masking"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/plan"
	"github.com/taskdag/taskdag/pkg/services"
	"github.com/taskdag/taskdag/pkg/tools"
)

// ClientFactory resolves LLM clients per call. *llm.Factory satisfies it.
type ClientFactory interface {
	Client(opts llm.ClientOptions) (llm.Client, error)
}

// ExecutionConfig tunes one run. A nil config means defaults: events on,
// batching per system configuration, no external abort signal.
type ExecutionConfig struct {
	// SkipEvents suppresses event publication for this run.
	SkipEvents bool
	// BatchDBUpdates overrides the configured batching mode. Nil keeps
	// the system default.
	BatchDBUpdates *bool
	// Abort, when set, cancels in-flight tasks on Done. The run then
	// finalizes through the stop path rather than suspension.
	Abort context.Context
}

// Executor owns execution runs: it creates the rows, drives the wave
// loop in a background goroutine per run, and keeps a cancel registry
// so stops and shutdown can reach in-flight work.
type Executor struct {
	cfg        config.ExecutorConfig
	store      *ent.Client
	executions *services.ExecutionService
	substeps   *services.SubStepService
	dags       *services.DagService
	agents     *services.AgentService
	stops      *services.StopService
	registry   *tools.Registry
	clients    ClientFactory
	bus        *events.Bus
	masker     *masking.Service
	logger     *slog.Logger

	mu   sync.Mutex
	runs map[string]context.CancelFunc
	wg   sync.WaitGroup
}

// New creates an executor over the given store and tool registry.
func New(
	cfg config.ExecutorConfig,
	store *ent.Client,
	registry *tools.Registry,
	clients ClientFactory,
	bus *events.Bus,
	masker *masking.Service,
	logger *slog.Logger,
) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		cfg:        cfg,
		store:      store,
		executions: services.NewExecutionService(store),
		substeps:   services.NewSubStepService(store),
		dags:       services.NewDagService(store),
		agents:     services.NewAgentService(store),
		stops:      services.NewStopService(store),
		registry:   registry,
		clients:    clients,
		bus:        bus,
		masker:     masker,
		logger:     logger,
		runs:       make(map[string]context.CancelFunc),
	}
}

// maskText applies the configured masking patterns, if any.
func (e *Executor) maskText(s string) string {
	if e.masker == nil {
		return s
	}
	return e.masker.Mask(s)
}

// runInput carries the resolved parameters of one run through the loop.
type runInput struct {
	executionID     string
	dagID           *string
	originalRequest string
	plan            *plan.Plan
	artifactsDir    string
	skipEvents      bool
	batch           bool
	resumed         bool
	abort           context.Context
}

// Execute starts a run for a planned DAG and returns the pending
// execution row without waiting for the run to finish. The DAG must be a
// successfully planned one that is not awaiting clarification.
func (e *Executor) Execute(ctx context.Context, dagID string, cfg *ExecutionConfig) (*ent.DagExecution, error) {
	row, err := e.dags.GetDag(ctx, dagID)
	if err != nil {
		return nil, err
	}
	if row.Status != dag.StatusSuccess {
		return nil, fmt.Errorf("%w: dag %s is %s, not executable", services.ErrInvalidInput, dagID, row.Status)
	}

	p, err := e.loadPlan(row)
	if err != nil {
		return nil, err
	}
	if p.ClarificationNeeded {
		return nil, fmt.Errorf("%w: dag %s is awaiting clarification", services.ErrInvalidInput, dagID)
	}

	seeds := make([]models.SubStepSeed, len(p.SubTasks))
	for i, t := range p.SubTasks {
		seeds[i] = models.SubStepSeed{
			TaskID:             t.ID,
			Description:        t.Description,
			Thought:            t.Thought,
			ActionType:         t.ActionType,
			ToolOrPromptName:   t.ToolOrPrompt.Name,
			ToolOrPromptParams: t.ToolOrPrompt.Params,
			Dependencies:       t.RealDependencies(),
		}
	}
	execution, err := e.executions.CreateExecution(ctx, models.CreateExecutionRequest{
		DagID:           &dagID,
		OriginalRequest: p.OriginalRequest,
		PrimaryIntent:   p.Intent.Primary,
		Tasks:           seeds,
	})
	if err != nil {
		return nil, err
	}

	in, err := e.buildInput(execution.ID, &dagID, p, cfg, false)
	if err != nil {
		return nil, err
	}
	e.launch(in)
	return execution, nil
}

// Resume re-enters the wave loop for a pending, suspended or failed
// execution. Terminated sub-steps keep their outcomes; only the still
// unexecuted part of the plan runs again.
func (e *Executor) Resume(ctx context.Context, executionID string, cfg *ExecutionConfig) (*ent.DagExecution, error) {
	execution, err := e.executions.GetExecution(ctx, executionID)
	if err != nil {
		return nil, err
	}
	switch models.ExecutionStatus(execution.Status) {
	case models.ExecutionStatusPending, models.ExecutionStatusSuspended, models.ExecutionStatusFailed:
	default:
		return nil, fmt.Errorf("%w: cannot resume a %s execution", services.ErrInvalidInput, execution.Status)
	}
	if execution.DagID == nil {
		return nil, fmt.Errorf("%w: execution %s has no dag to resume from", services.ErrInvalidInput, executionID)
	}

	row, err := e.dags.GetDag(ctx, *execution.DagID)
	if err != nil {
		return nil, err
	}
	p, err := e.loadPlan(row)
	if err != nil {
		return nil, err
	}

	if _, err := e.substeps.ResetActiveSubSteps(ctx, executionID); err != nil {
		return nil, err
	}
	if err := e.executions.MarkExecutionResumed(ctx, executionID); err != nil {
		return nil, err
	}
	if e.bus != nil {
		e.bus.Reopen(executionID)
	}

	in, err := e.buildInput(executionID, execution.DagID, p, cfg, true)
	if err != nil {
		return nil, err
	}
	e.launch(in)
	return e.executions.GetExecution(ctx, executionID)
}

// loadPlan decodes, runtime-substitutes and re-validates a stored plan.
func (e *Executor) loadPlan(row *ent.Dag) (*plan.Plan, error) {
	p, err := plan.FromMap(row.Result)
	if err != nil {
		return nil, fmt.Errorf("dag %s carries an unreadable plan: %w", row.ID, err)
	}
	p, err = plan.SubstituteRuntimeTokens(p, time.Now())
	if err != nil {
		return nil, err
	}
	doc, err := p.ToMap()
	if err != nil {
		return nil, err
	}
	if err := plan.ValidateDocument(doc); err != nil {
		return nil, fmt.Errorf("dag %s failed plan re-validation: %w", row.ID, err)
	}
	if err := p.ValidateReferences(); err != nil {
		return nil, fmt.Errorf("dag %s failed plan re-validation: %w", row.ID, err)
	}
	return p, nil
}

func (e *Executor) buildInput(executionID string, dagID *string, p *plan.Plan, cfg *ExecutionConfig, resumed bool) (runInput, error) {
	in := runInput{
		executionID:     executionID,
		dagID:           dagID,
		originalRequest: p.OriginalRequest,
		plan:            p,
		batch:           e.cfg.BatchDBUpdates,
		resumed:         resumed,
	}
	if cfg != nil {
		in.skipEvents = cfg.SkipEvents
		if cfg.BatchDBUpdates != nil {
			in.batch = *cfg.BatchDBUpdates
		}
		in.abort = cfg.Abort
	}
	if e.cfg.ArtifactsDir != "" {
		in.artifactsDir = filepath.Join(e.cfg.ArtifactsDir, executionID)
		if err := os.MkdirAll(in.artifactsDir, 0o755); err != nil {
			return runInput{}, fmt.Errorf("failed to create artifacts directory: %w", err)
		}
	}
	return in, nil
}

// launch registers the run and drives it in a background goroutine. The
// run context descends from the process, not the caller: an HTTP request
// ending must not kill the run. The optional abort context feeds in as a
// cancellation signal only.
func (e *Executor) launch(in runInput) {
	runCtx, cancel := context.WithCancel(context.Background())

	e.mu.Lock()
	e.runs[in.executionID] = cancel
	e.mu.Unlock()

	if in.abort != nil {
		abort := in.abort
		go func() {
			select {
			case <-abort.Done():
				cancel()
			case <-runCtx.Done():
			}
		}()
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer cancel()
		defer func() {
			e.mu.Lock()
			delete(e.runs, in.executionID)
			e.mu.Unlock()
		}()
		e.run(runCtx, in)
	}()
}

// CancelRun cancels an in-flight run's context. Returns false when the
// execution is not running in this process.
func (e *Executor) CancelRun(executionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	cancel, ok := e.runs[executionID]
	if ok {
		cancel()
	}
	return ok
}

// ActiveRuns returns the execution ids currently running in this process.
func (e *Executor) ActiveRuns() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]string, 0, len(e.runs))
	for id := range e.runs {
		ids = append(ids, id)
	}
	return ids
}

// Shutdown cancels every in-flight run and waits for them to settle, or
// for ctx to expire. Cancelled runs finalize through the stop path, so a
// restart can resume them.
func (e *Executor) Shutdown(ctx context.Context) error {
	active := e.ActiveRuns()
	if len(active) > 0 {
		e.logger.Info("Cancelling active executions for shutdown", "count", len(active))
	}
	for _, id := range active {
		e.CancelRun(id)
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown wait interrupted: %w", ctx.Err())
	}
}
