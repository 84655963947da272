// Package cleanup enforces data retention on settled executions.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/services"
)

// Service periodically prunes old rows:
//   - Terminal executions past the retention age (sub-steps cascade)
//   - Handled stop requests past the same cutoff
//
// Deletes are idempotent and safe to run from multiple replicas.
type Service struct {
	config     config.RetentionConfig
	executions *services.ExecutionService
	stops      *services.StopService
	warnings   *services.SystemWarningsService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg config.RetentionConfig,
	executions *services.ExecutionService,
	stops *services.StopService,
	warnings *services.SystemWarningsService,
) *Service {
	return &Service{
		config:     cfg,
		executions: executions,
		stops:      stops,
		warnings:   warnings,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if !s.config.Enabled {
		slog.Info("Cleanup service disabled by configuration")
		return
	}
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"execution_age", s.config.ExecutionAge,
		"interval", s.config.CheckInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one retention pass. A failing delete raises a cleanup
// warning that clears on the next successful pass.
func (s *Service) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.ExecutionAge)
	s.deleteOldExecutions(ctx, cutoff)
	s.deleteHandledStops(ctx, cutoff)
}

func (s *Service) deleteOldExecutions(ctx context.Context, cutoff time.Time) {
	count, err := s.executions.DeleteTerminalBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: execution delete failed", "error", err)
		if s.warnings != nil {
			s.warnings.AddWarning(services.WarningCategoryCleanup,
				"retention sweep failed", err.Error(), "executions")
		}
		return
	}
	if s.warnings != nil {
		s.warnings.ClearBySource(services.WarningCategoryCleanup, "executions")
	}
	if count > 0 {
		slog.Info("Retention: deleted settled executions", "count", count)
	}
}

func (s *Service) deleteHandledStops(ctx context.Context, cutoff time.Time) {
	count, err := s.stops.DeleteHandledBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: stop request delete failed", "error", err)
		if s.warnings != nil {
			s.warnings.AddWarning(services.WarningCategoryCleanup,
				"retention sweep failed", err.Error(), "stop_requests")
		}
		return
	}
	if s.warnings != nil {
		s.warnings.ClearBySource(services.WarningCategoryCleanup, "stop_requests")
	}
	if count > 0 {
		slog.Info("Retention: deleted handled stop requests", "count", count)
	}
}
