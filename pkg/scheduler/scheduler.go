// Package scheduler triggers executions for DAGs carrying an active
// cron schedule. Schedules live on the DAG rows; a reload loop keeps
// the in-process cron table in sync with the store.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/executor"
	"github.com/taskdag/taskdag/pkg/services"
)

// ExecutionStarter starts a run for a planned DAG. *executor.Executor
// satisfies it.
type ExecutionStarter interface {
	Execute(ctx context.Context, dagID string, cfg *executor.ExecutionConfig) (*ent.DagExecution, error)
}

// cronParser matches the expressions the planner accepts: five fields
// plus @descriptors. CRON_TZ= prefixes are handled by the parser.
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

type entry struct {
	id   cron.EntryID
	spec string
}

// Scheduler owns the cron table. Reload diffing keeps fire times stable:
// an unchanged schedule keeps its cron entry across reloads instead of
// being rescheduled from now.
type Scheduler struct {
	cfg      config.SchedulerConfig
	dags     *services.DagService
	starter  ExecutionStarter
	warnings *services.SystemWarningsService
	logger   *slog.Logger

	cron *cron.Cron

	mu      sync.Mutex
	entries map[string]entry

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a scheduler over the given store and execution starter.
func New(cfg config.SchedulerConfig, dags *services.DagService, starter ExecutionStarter, warnings *services.SystemWarningsService, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cfg:      cfg,
		dags:     dags,
		starter:  starter,
		warnings: warnings,
		logger:   logger,
		cron:     cron.New(cron.WithParser(cronParser), cron.WithLocation(time.UTC)),
		entries:  make(map[string]entry),
		stopCh:   make(chan struct{}),
	}
}

// Start loads the current schedules and begins the reload loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.logger.Info("Scheduler disabled by configuration")
		return nil
	}
	if err := s.reload(ctx); err != nil {
		return err
	}
	s.cron.Start()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.cfg.ReloadInterval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				if err := s.reload(context.Background()); err != nil {
					s.logger.Warn("Schedule reload failed", "error", err)
				}
			}
		}
	}()

	s.logger.Info("Scheduler started", "reload_interval", s.cfg.ReloadInterval)
	return nil
}

// Stop halts the reload loop and waits for in-flight cron callbacks.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.logger.Info("Scheduler stopped")
}

// reload diffs the stored active schedules against the cron table. A
// cron expression that stops parsing raises a schedule warning and is
// skipped; the warning clears once the expression parses again.
func (s *Scheduler) reload(ctx context.Context) error {
	rows, err := s.dags.ListScheduledDags(ctx, true)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	desired := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.CronSchedule == nil || *row.CronSchedule == "" {
			continue
		}
		desired[row.ID] = specFor(row)
	}

	for dagID, cur := range s.entries {
		if spec, keep := desired[dagID]; !keep || spec != cur.spec {
			s.cron.Remove(cur.id)
			delete(s.entries, dagID)
			if !keep {
				s.logger.Info("Schedule removed", "dag_id", dagID)
			}
		}
	}

	for dagID, spec := range desired {
		if _, exists := s.entries[dagID]; exists {
			continue
		}
		id := dagID
		entryID, err := s.cron.AddFunc(spec, func() { s.fire(id) })
		if err != nil {
			s.logger.Warn("Stored cron expression does not parse",
				"dag_id", dagID, "spec", spec, "error", err)
			if s.warnings != nil {
				s.warnings.AddWarning(services.WarningCategorySchedule,
					"stored cron expression does not parse", err.Error(), dagID)
			}
			continue
		}
		if s.warnings != nil {
			s.warnings.ClearBySource(services.WarningCategorySchedule, dagID)
		}
		s.entries[dagID] = entry{id: entryID, spec: spec}
		s.logger.Info("Schedule registered", "dag_id", dagID, "spec", spec)
	}
	return nil
}

// specFor prefixes the stored expression with the DAG's timezone.
// Descriptor forms (@daily) have no timezone slot and stay as-is.
func specFor(row *ent.Dag) string {
	spec := *row.CronSchedule
	if row.Timezone != "" && row.Timezone != "UTC" && spec[0] != '@' {
		return "CRON_TZ=" + row.Timezone + " " + spec
	}
	return spec
}

// fire starts one scheduled run. Failures are logged, not retried; the
// next fire time comes around on its own.
func (s *Scheduler) fire(dagID string) {
	logger := s.logger.With("dag_id", dagID)
	execution, err := s.starter.Execute(context.Background(), dagID, nil)
	if err != nil {
		logger.Warn("Scheduled execution failed to start", "error", err)
		return
	}
	if err := s.dags.MarkScheduleRun(context.Background(), dagID, time.Now()); err != nil {
		logger.Warn("Failed to record schedule run", "error", err)
	}
	logger.Info("Scheduled execution started", "execution_id", execution.ID)
}

// Entries returns the dag ids currently registered in the cron table.
func (s *Scheduler) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	return ids
}
