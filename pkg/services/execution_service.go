package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/stoprequest"
	"github.com/taskdag/taskdag/ent/substep"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
)

// ExecutionService manages execution rows and their aggregate view
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// CreateExecution inserts the execution row plus one pending sub-step per
// plan task in a single transaction.
func (s *ExecutionService) CreateExecution(ctx context.Context, req models.CreateExecutionRequest) (*ent.DagExecution, error) {
	if req.OriginalRequest == "" {
		return nil, NewValidationError("original_request", "required")
	}
	for _, task := range req.Tasks {
		if task.TaskID == "" {
			return nil, NewValidationError("task_id", "required")
		}
		if task.ActionType != models.ActionTypeTool && task.ActionType != models.ActionTypeInference {
			return nil, NewValidationError("action_type", "must be 'tool' or 'inference'")
		}
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.DagExecution.Create().
		SetID("exec_" + uuid.New().String()).
		SetOriginalRequest(req.OriginalRequest).
		SetStatus(dagexecution.StatusPending).
		SetTotalTasks(len(req.Tasks))
	if req.DagID != nil {
		builder.SetDagID(*req.DagID)
	}
	if req.PrimaryIntent != "" {
		builder.SetPrimaryIntent(req.PrimaryIntent)
	}

	execution, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: referenced dag does not exist", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}

	if len(req.Tasks) > 0 {
		builders := make([]*ent.SubStepCreate, len(req.Tasks))
		for i, task := range req.Tasks {
			b := tx.SubStep.Create().
				SetID("substep_" + uuid.New().String()).
				SetExecutionID(execution.ID).
				SetTaskID(task.TaskID).
				SetDescription(task.Description).
				SetActionType(substep.ActionType(task.ActionType)).
				SetToolOrPromptName(task.ToolOrPromptName).
				SetStatus(substep.StatusPending)
			if task.Thought != "" {
				b.SetThought(task.Thought)
			}
			if task.ToolOrPromptParams != nil {
				b.SetToolOrPromptParams(task.ToolOrPromptParams)
			}
			if len(task.Dependencies) > 0 {
				b.SetDependencies(task.Dependencies)
			}
			builders[i] = b
		}
		if _, err := tx.SubStep.CreateBulk(builders...).Save(writeCtx); err != nil {
			if ent.IsConstraintError(err) {
				return nil, fmt.Errorf("%w: duplicate task id in plan", ErrAlreadyExists)
			}
			return nil, fmt.Errorf("failed to create sub-steps: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit execution: %w", err)
	}
	return execution, nil
}

// GetExecution retrieves an execution by id.
func (s *ExecutionService) GetExecution(ctx context.Context, executionID string) (*ent.DagExecution, error) {
	execution, err := s.client.DagExecution.Get(ctx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return execution, nil
}

// GetExecutionWithSubSteps retrieves an execution with its sub-steps loaded
// in task-id order.
func (s *ExecutionService) GetExecutionWithSubSteps(ctx context.Context, executionID string) (*ent.DagExecution, error) {
	execution, err := s.client.DagExecution.Query().
		Where(dagexecution.IDEQ(executionID)).
		WithSubSteps(func(q *ent.SubStepQuery) {
			q.Order(ent.Asc(substep.FieldTaskID))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return execution, nil
}

// ListExecutions lists executions with filtering and pagination, newest
// first.
func (s *ExecutionService) ListExecutions(ctx context.Context, filters models.ExecutionFilters) (*models.ExecutionListResponse, error) {
	query := s.client.DagExecution.Query()
	if filters.DagID != "" {
		query = query.Where(dagexecution.DagIDEQ(filters.DagID))
	}
	if filters.Status != "" {
		query = query.Where(dagexecution.StatusEQ(dagexecution.Status(filters.Status)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count executions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	executions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(dagexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}

	return &models.ExecutionListResponse{
		Executions: executions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// DeleteExecution removes an execution; its sub-steps cascade with it.
// Runs still in running or waiting state are refused.
func (s *ExecutionService) DeleteExecution(ctx context.Context, executionID string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	execution, err := tx.DagExecution.Get(writeCtx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get execution: %w", err)
	}
	if execution.Status == dagexecution.StatusRunning || execution.Status == dagexecution.StatusWaiting {
		return fmt.Errorf("%w: execution is %s; stop it first", ErrInvalidInput, execution.Status)
	}

	if _, err := tx.StopRequest.Delete().
		Where(stoprequest.ExecutionIDEQ(executionID)).
		Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to delete stop requests: %w", err)
	}
	if err := tx.DagExecution.DeleteOneID(executionID).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to delete execution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// MarkExecutionStarted moves a run into running at loop entry.
func (s *ExecutionService) MarkExecutionStarted(ctx context.Context, executionID string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	execution, err := s.client.DagExecution.Get(writeCtx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get execution: %w", err)
	}

	update := s.client.DagExecution.UpdateOneID(executionID).
		SetStatus(dagexecution.StatusRunning)
	if execution.StartedAt == nil {
		update.SetStartedAt(time.Now())
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to mark execution started: %w", err)
	}
	return nil
}

// MarkExecutionResumed re-enters running and counts the retry.
func (s *ExecutionService) MarkExecutionResumed(ctx context.Context, executionID string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	execution, err := s.client.DagExecution.Get(writeCtx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get execution: %w", err)
	}

	update := s.client.DagExecution.UpdateOneID(executionID).
		SetStatus(dagexecution.StatusRunning).
		AddRetryCount(1).
		SetLastRetryAt(time.Now()).
		ClearSuspendedReason().
		ClearSuspendedAt()
	if execution.StartedAt == nil {
		update.SetStartedAt(time.Now())
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to mark execution resumed: %w", err)
	}
	return nil
}

// UpdateExecutionCounters refreshes the per-status task counters.
func (s *ExecutionService) UpdateExecutionCounters(ctx context.Context, executionID string, completed, failed, waiting int) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.DagExecution.UpdateOneID(executionID).
		SetCompletedTasks(completed).
		SetFailedTasks(failed).
		SetWaitingTasks(waiting).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update counters: %w", err)
	}
	return nil
}

// SuspendExecution parks a run that hit an unrecoverable error.
func (s *ExecutionService) SuspendExecution(ctx context.Context, executionID, reason string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.DagExecution.UpdateOneID(executionID).
		SetStatus(dagexecution.StatusSuspended).
		SetSuspendedReason(reason).
		SetSuspendedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to suspend execution: %w", err)
	}
	return nil
}

// MarkExecutionStopped returns a run to pending after a cooperative stop.
func (s *ExecutionService) MarkExecutionStopped(ctx context.Context, executionID string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.DagExecution.UpdateOneID(executionID).
		SetStatus(dagexecution.StatusPending).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark execution stopped: %w", err)
	}
	return nil
}

// FinalizeExecution writes the terminal fields of a settled run.
func (s *ExecutionService) FinalizeExecution(ctx context.Context, executionID string, req models.FinalizeExecutionRequest) (*ent.DagExecution, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	execution, err := s.client.DagExecution.Get(writeCtx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}

	now := time.Now()
	update := s.client.DagExecution.UpdateOneID(executionID).
		SetStatus(dagexecution.Status(req.Status)).
		SetCompletedAt(now).
		SetCompletedTasks(req.CompletedTasks).
		SetFailedTasks(req.FailedTasks).
		SetWaitingTasks(req.WaitingTasks)
	if execution.StartedAt != nil {
		update.SetDurationMs(now.Sub(*execution.StartedAt).Milliseconds())
	}
	if req.FinalResult != nil {
		update.SetFinalResult(*req.FinalResult)
	}
	if req.SynthesisResult != nil {
		update.SetSynthesisResult(req.SynthesisResult)
	}
	if !req.TotalUsage.IsZero() {
		update.SetTotalUsage(req.TotalUsage.ToMap())
	}
	if req.TotalCostUsd != "" {
		update.SetTotalCostUsd(req.TotalCostUsd)
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize execution: %w", err)
	}
	return updated, nil
}

// AggregateSubSteps computes the counter and cost view of an execution's
// sub-steps in one read.
func (s *ExecutionService) AggregateSubSteps(ctx context.Context, executionID string) (*models.ExecutionAggregate, error) {
	steps, err := s.client.SubStep.Query().
		Where(
			substep.ExecutionIDEQ(executionID),
			substep.StatusNEQ(substep.StatusDeleted),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sub-steps: %w", err)
	}

	agg := &models.ExecutionAggregate{}
	costs := make([]string, 0, len(steps))
	for _, step := range steps {
		if step.Usage != nil {
			agg.TotalUsage.Add(models.UsageFromMap(step.Usage))
		}
		if step.CostUsd != nil && *step.CostUsd != "" {
			costs = append(costs, *step.CostUsd)
		}
		if step.TaskID == models.SynthesisTaskID {
			continue
		}
		agg.Total++
		switch step.Status {
		case substep.StatusCompleted:
			agg.Completed++
		case substep.StatusFailed:
			agg.Failed++
		case substep.StatusRunning:
			agg.Running++
		case substep.StatusWaiting:
			agg.Waiting++
		case substep.StatusPending:
			agg.Pending++
		}
	}
	totalCost, err := llm.SumCostUSD(costs)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sub-step costs: %w", err)
	}
	agg.TotalCostUsd = totalCost
	return agg, nil
}

// DeleteTerminalBefore removes settled executions older than the cutoff,
// returning the number deleted. Completed, failed and partial rows age by
// completion time, suspended rows by suspension time.
func (s *ExecutionService) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int, error) {
	// Use background context with timeout for bulk delete
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.DagExecution.Delete().
		Where(
			dagexecution.Or(
				dagexecution.And(
					dagexecution.StatusIn(
						dagexecution.StatusCompleted,
						dagexecution.StatusFailed,
						dagexecution.StatusPartial,
					),
					dagexecution.CompletedAtLT(cutoff),
				),
				dagexecution.And(
					dagexecution.StatusEQ(dagexecution.StatusSuspended),
					dagexecution.SuspendedAtLT(cutoff),
				),
			),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old executions: %w", err)
	}
	return count, nil
}

// DeriveExecutionStatus computes the execution status implied by sub-step
// counts. Stop (pending) and suspension are the only states written
// outside this derivation.
func DeriveExecutionStatus(total, completed, failed, running, waiting int) models.ExecutionStatus {
	switch {
	case waiting > 0:
		return models.ExecutionStatusWaiting
	case failed > 0 && completed+failed == total:
		if failed == total {
			return models.ExecutionStatusFailed
		}
		return models.ExecutionStatusPartial
	case completed == total:
		return models.ExecutionStatusCompleted
	case running > 0 || completed > 0:
		return models.ExecutionStatusRunning
	default:
		return models.ExecutionStatusPending
	}
}
