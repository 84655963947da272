package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemWarningsService_AddAndGet(t *testing.T) {
	svc := NewSystemWarningsService()

	id := svc.AddWarning(WarningCategorySchedule, "Stored cron no longer parses", "expected 5 or 6 fields", "dag_weekly_report")
	assert.NotEmpty(t, id)

	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningCategorySchedule, warnings[0].Category)
	assert.Equal(t, "Stored cron no longer parses", warnings[0].Message)
	assert.Equal(t, "expected 5 or 6 fields", warnings[0].Details)
	assert.Equal(t, "dag_weekly_report", warnings[0].Source)
	assert.False(t, warnings[0].CreatedAt.IsZero())
}

func TestSystemWarningsService_ClearBySource(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategorySchedule, "Stored cron no longer parses", "", "dag_a")
	svc.AddWarning(WarningCategorySchedule, "Stored cron no longer parses", "", "dag_b")

	assert.Len(t, svc.GetWarnings(), 2)

	// Clear the first dag's warning
	cleared := svc.ClearBySource(WarningCategorySchedule, "dag_a")
	assert.True(t, cleared)
	assert.Len(t, svc.GetWarnings(), 1)
	assert.Equal(t, "dag_b", svc.GetWarnings()[0].Source)

	// Clear non-existent
	cleared = svc.ClearBySource(WarningCategorySchedule, "dag_gone")
	assert.False(t, cleared)
}

func TestSystemWarningsService_ReplacesDuplicate(t *testing.T) {
	svc := NewSystemWarningsService()

	svc.AddWarning(WarningCategoryCleanup, "First sweep failed", "err1", "executions")
	svc.AddWarning(WarningCategoryCleanup, "Second sweep failed", "err2", "executions")

	// Should have replaced the first warning, not added a second
	warnings := svc.GetWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Second sweep failed", warnings[0].Message)
	assert.Equal(t, "err2", warnings[0].Details)
}

func TestSystemWarningsService_Empty(t *testing.T) {
	svc := NewSystemWarningsService()
	assert.Empty(t, svc.GetWarnings())
}

func TestSystemWarningsService_ThreadSafety(t *testing.T) {
	svc := NewSystemWarningsService()
	var wg sync.WaitGroup

	// Concurrent adds
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.AddWarning("test", "msg", "", "")
		}()
	}

	// Concurrent reads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.GetWarnings()
		}()
	}

	wg.Wait()
	// Just ensure no panics — exact count doesn't matter for concurrency test
	assert.NotNil(t, svc.GetWarnings())
}
