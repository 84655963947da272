package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/ent/substep"
	"github.com/taskdag/taskdag/pkg/models"
)

// SubStepService manages the per-task rows of an execution
type SubStepService struct {
	client *ent.Client
}

// NewSubStepService creates a new SubStepService
func NewSubStepService(client *ent.Client) *SubStepService {
	return &SubStepService{client: client}
}

// ListSubSteps returns every sub-step of an execution ordered by task id.
func (s *SubStepService) ListSubSteps(ctx context.Context, executionID string) ([]*ent.SubStep, error) {
	steps, err := s.client.SubStep.Query().
		Where(substep.ExecutionIDEQ(executionID)).
		Order(ent.Asc(substep.FieldTaskID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub-steps: %w", err)
	}
	return steps, nil
}

// GetSubStep retrieves one task row of an execution.
func (s *SubStepService) GetSubStep(ctx context.Context, executionID, taskID string) (*ent.SubStep, error) {
	step, err := s.client.SubStep.Query().
		Where(
			substep.ExecutionIDEQ(executionID),
			substep.TaskIDEQ(taskID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sub-step: %w", err)
	}
	return step, nil
}

// MarkSubStepsRunning flips the given tasks to running in one statement.
func (s *SubStepService) MarkSubStepsRunning(ctx context.Context, executionID string, taskIDs []string) error {
	if len(taskIDs) == 0 {
		return nil
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.SubStep.Update().
		Where(
			substep.ExecutionIDEQ(executionID),
			substep.TaskIDIn(taskIDs...),
		).
		SetStatus(substep.StatusRunning).
		SetStartedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark sub-steps running: %w", err)
	}
	return nil
}

// MarkSubStepRunning flips a single task to running (unbatched writes).
func (s *SubStepService) MarkSubStepRunning(ctx context.Context, executionID, taskID string) error {
	return s.MarkSubStepsRunning(ctx, executionID, []string{taskID})
}

// CompleteSubSteps persists a wave's successful results in one transaction.
func (s *SubStepService) CompleteSubSteps(ctx context.Context, executionID string, completions []models.SubStepCompletion) error {
	if len(completions) == 0 {
		return nil
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, completion := range completions {
		if err := completeSubStep(writeCtx, tx.SubStep, executionID, completion); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sub-step results: %w", err)
	}
	return nil
}

// CompleteSubStep persists one successful result outside a batch.
func (s *SubStepService) CompleteSubStep(ctx context.Context, executionID string, completion models.SubStepCompletion) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return completeSubStep(writeCtx, s.client.SubStep, executionID, completion)
}

func completeSubStep(ctx context.Context, client *ent.SubStepClient, executionID string, c models.SubStepCompletion) error {
	update := client.Update().
		Where(
			substep.ExecutionIDEQ(executionID),
			substep.TaskIDEQ(c.TaskID),
		).
		SetStatus(substep.StatusCompleted).
		SetCompletedAt(time.Now()).
		SetDurationMs(c.DurationMs)
	if c.Result != nil {
		update.SetResult(c.Result)
	}
	if !c.Usage.IsZero() {
		update.SetUsage(c.Usage.ToMap())
	}
	if c.CostUsd != "" {
		update.SetCostUsd(c.CostUsd)
	}
	if c.GenerationStats != nil {
		update.SetGenerationStats(c.GenerationStats)
	}

	count, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete sub-step %s: %w", c.TaskID, err)
	}
	if count == 0 {
		return fmt.Errorf("%w: sub-step %s", ErrNotFound, c.TaskID)
	}
	return nil
}

// FailSubStep records a task failure immediately.
func (s *SubStepService) FailSubStep(ctx context.Context, executionID string, failure models.SubStepFailure) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.SubStep.Update().
		Where(
			substep.ExecutionIDEQ(executionID),
			substep.TaskIDEQ(failure.TaskID),
		).
		SetStatus(substep.StatusFailed).
		SetCompletedAt(time.Now()).
		SetDurationMs(failure.DurationMs).
		SetError(failure.Error)
	if !failure.Usage.IsZero() {
		update.SetUsage(failure.Usage.ToMap())
	}
	if failure.CostUsd != "" {
		update.SetCostUsd(failure.CostUsd)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to fail sub-step %s: %w", failure.TaskID, err)
	}
	if count == 0 {
		return fmt.Errorf("%w: sub-step %s", ErrNotFound, failure.TaskID)
	}
	return nil
}

// ResetSubSteps returns the named tasks to pending with a cleared start
// time. Completed and failed rows are left alone even when named.
func (s *SubStepService) ResetSubSteps(ctx context.Context, executionID string, taskIDs []string) (int, error) {
	if len(taskIDs) == 0 {
		return 0, nil
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.SubStep.Update().
		Where(
			substep.ExecutionIDEQ(executionID),
			substep.TaskIDIn(taskIDs...),
			substep.StatusIn(substep.StatusRunning, substep.StatusWaiting),
		).
		SetStatus(substep.StatusPending).
		ClearStartedAt().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset sub-steps: %w", err)
	}
	return count, nil
}

// ResetActiveSubSteps returns every running or waiting task to pending.
// Stop handling and resume both funnel through here.
func (s *SubStepService) ResetActiveSubSteps(ctx context.Context, executionID string) (int, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.SubStep.Update().
		Where(
			substep.ExecutionIDEQ(executionID),
			substep.StatusIn(substep.StatusRunning, substep.StatusWaiting),
		).
		SetStatus(substep.StatusPending).
		ClearStartedAt().
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset active sub-steps: %w", err)
	}
	return count, nil
}

// CreateSynthesisStep inserts the synthesis row directly in the completed
// state, backdating started_at by the recorded duration.
func (s *SubStepService) CreateSynthesisStep(ctx context.Context, executionID string, record models.SynthesisRecord) (*ent.SubStep, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	builder := s.client.SubStep.Create().
		SetID("substep_" + uuid.New().String()).
		SetExecutionID(executionID).
		SetTaskID(models.SynthesisTaskID).
		SetDescription(record.Description).
		SetActionType(substep.ActionTypeInference).
		SetToolOrPromptName("synthesis").
		SetStatus(substep.StatusCompleted).
		SetStartedAt(now.Add(-time.Duration(record.DurationMs)*time.Millisecond)).
		SetCompletedAt(now).
		SetDurationMs(record.DurationMs)
	if len(record.Dependencies) > 0 {
		builder.SetDependencies(record.Dependencies)
	}
	if record.Result != nil {
		builder.SetResult(record.Result)
	}
	if !record.Usage.IsZero() {
		builder.SetUsage(record.Usage.ToMap())
	}
	if record.CostUsd != "" {
		builder.SetCostUsd(record.CostUsd)
	}
	if record.GenerationStats != nil {
		builder.SetGenerationStats(record.GenerationStats)
	}

	step, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create synthesis step: %w", err)
	}
	return step, nil
}
