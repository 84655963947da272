package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient text search over execution requests and results.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_dag_executions_original_request_gin
		ON dag_executions USING gin(to_tsvector('english', original_request))`)
	if err != nil {
		return fmt.Errorf("failed to create original_request GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_dag_executions_final_result_gin
		ON dag_executions USING gin(to_tsvector('english', COALESCE(final_result, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create final_result GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// plain Ent schema creation does not apply. These must match the
// constraints in 20260801000000_init_schema.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// One active version per agent name
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agent_name
		ON agents (name)
		WHERE active`)
	if err != nil {
		return fmt.Errorf("failed to create active agent index: %w", err)
	}

	// One open stop request per DAG
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS stoprequest_dag_id
		ON stop_requests (dag_id)
		WHERE status = 'requested' AND dag_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create dag stop request index: %w", err)
	}

	// One open stop request per execution
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS stoprequest_execution_id
		ON stop_requests (execution_id)
		WHERE status = 'requested' AND execution_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create execution stop request index: %w", err)
	}

	// Scheduler reload scans only active schedules
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS dag_schedule_active
		ON dags (schedule_active)
		WHERE schedule_active AND cron_schedule IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create schedule index: %w", err)
	}

	return nil
}
