package services

import (
	"context"
	"fmt"
	"time"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/stoprequest"
	"github.com/taskdag/taskdag/pkg/models"
)

// DagService manages persisted plan rows
type DagService struct {
	client *ent.Client
}

// NewDagService creates a new DagService
func NewDagService(client *ent.Client) *DagService {
	return &DagService{client: client}
}

// CreateDag inserts a fully built DAG row.
func (s *DagService) CreateDag(ctx context.Context, req models.CreateDagRequest) (*ent.Dag, error) {
	if req.ID == "" {
		return nil, NewValidationError("id", "required")
	}
	if req.AgentName == "" {
		return nil, NewValidationError("agent_name", "required")
	}
	if req.Status == "" {
		return nil, NewValidationError("status", "required")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Dag.Create().
		SetID(req.ID).
		SetStatus(dag.Status(req.Status)).
		SetAgentName(req.AgentName).
		SetScheduleActive(req.ScheduleActive)
	if req.Result != nil {
		builder.SetResult(req.Result)
	}
	if req.Params != nil {
		builder.SetParams(req.Params)
	}
	if req.Title != nil {
		builder.SetDagTitle(*req.Title)
	}
	if req.CronSchedule != nil {
		builder.SetCronSchedule(*req.CronSchedule)
	}
	if req.Timezone != "" {
		builder.SetTimezone(req.Timezone)
	}
	if req.PlanningTotalUsage != nil {
		builder.SetPlanningTotalUsage(req.PlanningTotalUsage.ToMap())
	}
	if req.PlanningTotalCostUsd != "" {
		builder.SetPlanningTotalCostUsd(req.PlanningTotalCostUsd)
	}
	if len(req.PlanningAttempts) > 0 {
		builder.SetPlanningAttempts(models.AttemptsToMaps(req.PlanningAttempts))
	}

	created, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create dag: %w", err)
	}
	return created, nil
}

// GetDag retrieves a DAG by id.
func (s *DagService) GetDag(ctx context.Context, dagID string) (*ent.Dag, error) {
	d, err := s.client.Dag.Get(ctx, dagID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get dag: %w", err)
	}
	return d, nil
}

// ListDags lists DAGs with filtering and pagination, newest first.
func (s *DagService) ListDags(ctx context.Context, filters models.DagFilters) (*models.DagListResponse, error) {
	query := s.client.Dag.Query()
	if filters.Status != "" {
		query = query.Where(dag.StatusEQ(dag.Status(filters.Status)))
	}
	if filters.AgentName != "" {
		query = query.Where(dag.AgentNameEQ(filters.AgentName))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count dags: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	dags, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(dag.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dags: %w", err)
	}

	return &models.DagListResponse{
		Dags:       dags,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateDag edits the title and schedule fields of a DAG. Cron syntax is
// the caller's concern; clearing the schedule deactivates it.
func (s *DagService) UpdateDag(ctx context.Context, dagID string, req models.UpdateDagRequest) (*ent.Dag, error) {
	if req.ClearCronSchedule && req.ScheduleActive != nil && *req.ScheduleActive {
		return nil, NewValidationError("schedule_active", "cannot activate a cleared schedule")
	}
	if req.Timezone != nil && *req.Timezone == "" {
		return nil, NewValidationError("timezone", "must not be empty")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Dag.UpdateOneID(dagID)
	if req.Title != nil {
		if *req.Title == "" {
			update.ClearDagTitle()
		} else {
			update.SetDagTitle(*req.Title)
		}
	}
	if req.ClearCronSchedule {
		update.ClearCronSchedule()
		update.SetScheduleActive(false)
	} else {
		if req.CronSchedule != nil {
			update.SetCronSchedule(*req.CronSchedule)
		}
		if req.ScheduleActive != nil {
			update.SetScheduleActive(*req.ScheduleActive)
		}
	}
	if req.Timezone != nil {
		update.SetTimezone(*req.Timezone)
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update dag: %w", err)
	}
	return updated, nil
}

// ListScheduledDags returns DAGs carrying a cron schedule, newest first.
func (s *DagService) ListScheduledDags(ctx context.Context, activeOnly bool) ([]*ent.Dag, error) {
	query := s.client.Dag.Query().Where(dag.CronScheduleNotNil())
	if activeOnly {
		query = query.Where(dag.ScheduleActive(true))
	}

	dags, err := query.Order(ent.Desc(dag.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled dags: %w", err)
	}
	return dags, nil
}

// MarkScheduleRun stamps the last scheduled trigger time.
func (s *DagService) MarkScheduleRun(ctx context.Context, dagID string, at time.Time) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Dag.UpdateOneID(dagID).
		SetLastRunAt(at).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to stamp last run: %w", err)
	}
	return nil
}

// SafeDeleteDag deletes a DAG only when no execution references it. Stop
// requests keyed on the DAG go with it.
func (s *DagService) SafeDeleteDag(ctx context.Context, dagID string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.Dag.Query().Where(dag.IDEQ(dagID)).Exist(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to query dag: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	refs, err := tx.DagExecution.Query().
		Where(dagexecution.DagIDEQ(dagID)).
		Count(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to count executions: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: dag has %d executions; delete them first", ErrInvalidInput, refs)
	}

	if _, err := tx.StopRequest.Delete().
		Where(stoprequest.DagIDEQ(dagID)).
		Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to delete stop requests: %w", err)
	}
	if err := tx.Dag.DeleteOneID(dagID).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to delete dag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// DeleteDag removes a DAG row unconditionally, tolerating a missing row.
// The planner uses it to discard a partially created row on stop; stop
// request rows are left alone so their handled state stays observable.
func (s *DagService) DeleteDag(ctx context.Context, dagID string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Dag.DeleteOneID(dagID).Exec(writeCtx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete dag: %w", err)
	}
	return nil
}

// TransferOutcome copies the planning outcome of a scratch row onto the
// destination row and deletes the scratch row in one transaction. The
// clarification resume path uses it so callers keep the original DAG id.
func (s *DagService) TransferOutcome(ctx context.Context, scratchID, dagID string) (*ent.Dag, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	scratch, err := tx.Dag.Get(writeCtx, scratchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get scratch dag: %w", err)
	}

	update := tx.Dag.UpdateOneID(dagID).
		SetStatus(scratch.Status).
		SetAgentName(scratch.AgentName).
		SetScheduleActive(scratch.ScheduleActive).
		SetTimezone(scratch.Timezone)
	if scratch.Result != nil {
		update.SetResult(scratch.Result)
	}
	if scratch.Params != nil {
		update.SetParams(scratch.Params)
	}
	if scratch.DagTitle != nil {
		update.SetDagTitle(*scratch.DagTitle)
	} else {
		update.ClearDagTitle()
	}
	if scratch.CronSchedule != nil {
		update.SetCronSchedule(*scratch.CronSchedule)
	} else {
		update.ClearCronSchedule()
	}
	if scratch.PlanningTotalUsage != nil {
		update.SetPlanningTotalUsage(scratch.PlanningTotalUsage)
	}
	if scratch.PlanningTotalCostUsd != nil {
		update.SetPlanningTotalCostUsd(*scratch.PlanningTotalCostUsd)
	} else {
		update.ClearPlanningTotalCostUsd()
	}
	if scratch.PlanningAttempts != nil {
		update.SetPlanningAttempts(scratch.PlanningAttempts)
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to adopt planning outcome: %w", err)
	}

	if err := tx.Dag.DeleteOneID(scratchID).Exec(writeCtx); err != nil {
		return nil, fmt.Errorf("failed to delete scratch dag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit outcome transfer: %w", err)
	}
	return updated, nil
}
