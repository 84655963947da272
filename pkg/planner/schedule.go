package planner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	lnquycron "github.com/lnquy/cron"
	"github.com/robfig/cron/v3"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/services"
)

// cronParser accepts the standard five-field syntax plus named descriptors
// like @daily, matching what the schedule runner can execute.
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateCronExpr checks a cron expression without scheduling anything.
func ValidateCronExpr(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return fmt.Errorf("cron expression is empty")
	}
	if _, err := cronParser.Parse(expr); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

var (
	descriptorOnce sync.Once
	descriptor     *lnquycron.ExpressionDescriptor
	descriptorErr  error
)

// DescribeCron renders a cron expression as an English phrase. Descriptor
// forms like @daily are valid schedules but have no rendering.
func DescribeCron(expr string) (string, error) {
	descriptorOnce.Do(func() {
		descriptor, descriptorErr = lnquycron.NewDescriptor()
	})
	if descriptorErr != nil {
		return "", descriptorErr
	}
	return descriptor.ToDescription(expr, lnquycron.Locale_en)
}

// ListScheduled returns every DAG carrying a schedule, decorated with a
// readable description of the cron expression.
func (p *Planner) ListScheduled(ctx context.Context) ([]models.ScheduledDagInfo, error) {
	rows, err := p.dags.ListScheduledDags(ctx, false)
	if err != nil {
		return nil, err
	}
	out := make([]models.ScheduledDagInfo, 0, len(rows))
	for _, row := range rows {
		info := models.ScheduledDagInfo{
			ID:        row.ID,
			Active:    row.ScheduleActive,
			Timezone:  row.Timezone,
			LastRunAt: row.LastRunAt,
		}
		if row.DagTitle != nil {
			info.Title = *row.DagTitle
		}
		if row.CronSchedule != nil {
			info.CronSchedule = *row.CronSchedule
			if desc, err := DescribeCron(*row.CronSchedule); err == nil {
				info.HumanReadableCron = desc
			}
		}
		out = append(out, info)
	}
	return out, nil
}

// Update edits title and schedule fields. A new cron expression is
// validated before it reaches the store.
func (p *Planner) Update(ctx context.Context, dagID string, req models.UpdateDagRequest) (*ent.Dag, error) {
	if req.CronSchedule != nil && !req.ClearCronSchedule {
		if err := ValidateCronExpr(*req.CronSchedule); err != nil {
			return nil, services.NewValidationError("cron_schedule", err.Error())
		}
	}
	if req.Timezone != nil && *req.Timezone != "" {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, services.NewValidationError("timezone", fmt.Sprintf("unknown timezone %q", *req.Timezone))
		}
	}
	return p.dags.UpdateDag(ctx, dagID, req)
}

// SafeDelete removes a DAG unless executions still reference it.
func (p *Planner) SafeDelete(ctx context.Context, dagID string) error {
	return p.dags.SafeDeleteDag(ctx, dagID)
}
