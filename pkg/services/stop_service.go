package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/ent/predicate"
	"github.com/taskdag/taskdag/ent/stoprequest"
)

// StopService manages cooperative stop requests keyed by dag or execution.
// A partial unique index keeps at most one open request per key, so
// concurrent stop calls converge on a single row.
type StopService struct {
	client *ent.Client
}

// NewStopService creates a new StopService
func NewStopService(client *ent.Client) *StopService {
	return &StopService{client: client}
}

// RequestStopForDag opens a stop request against a dag, returning the
// existing open request when one is already pending.
func (s *StopService) RequestStopForDag(ctx context.Context, dagID string) (*ent.StopRequest, error) {
	if dagID == "" {
		return nil, NewValidationError("dag_id", "is required")
	}
	return s.request(ctx, stoprequest.DagIDEQ(dagID), func(c *ent.StopRequestCreate) {
		c.SetDagID(dagID)
	})
}

// RequestStopForExecution opens a stop request against an execution,
// returning the existing open request when one is already pending.
func (s *StopService) RequestStopForExecution(ctx context.Context, executionID string) (*ent.StopRequest, error) {
	if executionID == "" {
		return nil, NewValidationError("execution_id", "is required")
	}
	return s.request(ctx, stoprequest.ExecutionIDEQ(executionID), func(c *ent.StopRequestCreate) {
		c.SetExecutionID(executionID)
	})
}

func (s *StopService) request(ctx context.Context, key predicate.StopRequest, setKey func(*ent.StopRequestCreate)) (*ent.StopRequest, error) {
	existing, err := s.openRequest(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	create := s.client.StopRequest.Create().
		SetID("stop_" + uuid.New().String()).
		SetStatus(stoprequest.StatusRequested)
	setKey(create)

	request, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race; the winner's row is the open request.
			winner, qerr := s.openRequest(ctx, key)
			if qerr != nil {
				return nil, qerr
			}
			if winner != nil {
				return winner, nil
			}
		}
		return nil, fmt.Errorf("failed to create stop request: %w", err)
	}
	return request, nil
}

func (s *StopService) openRequest(ctx context.Context, key predicate.StopRequest) (*ent.StopRequest, error) {
	request, err := s.client.StopRequest.Query().
		Where(key, stoprequest.StatusEQ(stoprequest.StatusRequested)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query stop request: %w", err)
	}
	return request, nil
}

// HasActiveStopForDag reports whether an open stop request targets the dag.
func (s *StopService) HasActiveStopForDag(ctx context.Context, dagID string) (bool, error) {
	active, err := s.client.StopRequest.Query().
		Where(
			stoprequest.DagIDEQ(dagID),
			stoprequest.StatusEQ(stoprequest.StatusRequested),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check stop request: %w", err)
	}
	return active, nil
}

// HasActiveStopForExecution reports whether an open stop request targets
// the execution.
func (s *StopService) HasActiveStopForExecution(ctx context.Context, executionID string) (bool, error) {
	active, err := s.client.StopRequest.Query().
		Where(
			stoprequest.ExecutionIDEQ(executionID),
			stoprequest.StatusEQ(stoprequest.StatusRequested),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check stop request: %w", err)
	}
	return active, nil
}

// MarkHandledForDag closes every open stop request targeting the dag.
// Closing zero rows is not an error.
func (s *StopService) MarkHandledForDag(ctx context.Context, dagID string) error {
	return s.markHandled(stoprequest.DagIDEQ(dagID))
}

// MarkHandledForExecution closes every open stop request targeting the
// execution. Closing zero rows is not an error.
func (s *StopService) MarkHandledForExecution(ctx context.Context, executionID string) error {
	return s.markHandled(stoprequest.ExecutionIDEQ(executionID))
}

func (s *StopService) markHandled(key predicate.StopRequest) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.StopRequest.Update().
		Where(key, stoprequest.StatusEQ(stoprequest.StatusRequested)).
		SetStatus(stoprequest.StatusHandled).
		SetHandledAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to mark stop request handled: %w", err)
	}
	return nil
}

// DeleteHandledBefore prunes handled stop requests older than the cutoff.
func (s *StopService) DeleteHandledBefore(ctx context.Context, cutoff time.Time) (int, error) {
	// Use background context with timeout for cleanup write
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.StopRequest.Delete().
		Where(
			stoprequest.StatusEQ(stoprequest.StatusHandled),
			stoprequest.HandledAtLT(cutoff),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete handled stop requests: %w", err)
	}
	return count, nil
}
