package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/ent/stoprequest"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (CI_DATABASE_URL set) it connects to the external
// PostgreSQL service container; locally it starts a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")

	if connStr == "" {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	} else {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests instead of the SQL migration files
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	err = CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	exec1, err := client.DagExecution.Create().
		SetID("exec_fts_1").
		SetOriginalRequest("Summarize production incident reports from the error tracker").
		Save(ctx)
	require.NoError(t, err)

	exec2, err := client.DagExecution.Create().
		SetID("exec_fts_2").
		SetOriginalRequest("Collect weather forecasts for Berlin and email the digest").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT execution_id FROM dag_executions
		WHERE to_tsvector('english', original_request) @@ to_tsquery('english', $1)`,
		"production & incident",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var executionID string
		require.NoError(t, rows.Scan(&executionID))
		results = append(results, executionID)
	}
	require.NoError(t, rows.Err())

	require.Len(t, results, 1)
	assert.Equal(t, exec1.ID, results[0])

	rows2, err := client.DB().QueryContext(ctx,
		`SELECT execution_id FROM dag_executions
		WHERE to_tsvector('english', original_request) @@ to_tsquery('english', $1)`,
		"weather",
	)
	require.NoError(t, err)
	defer rows2.Close()

	results = results[:0]
	for rows2.Next() {
		var executionID string
		require.NoError(t, rows2.Scan(&executionID))
		results = append(results, executionID)
	}
	require.NoError(t, rows2.Err())

	require.Len(t, results, 1)
	assert.Equal(t, exec2.ID, results[0])
}

func TestStopRequestConstraints(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Exactly one target key must be set
	_, err := client.StopRequest.Create().
		SetID("stop_bad_1").
		Save(ctx)
	assert.Error(t, err, "stop request without a target must be rejected")

	_, err = client.StopRequest.Create().
		SetID("stop_ok_1").
		SetExecutionID("exec_x").
		Save(ctx)
	require.NoError(t, err)

	// Second open request for the same execution violates the partial
	// unique index
	_, err = client.StopRequest.Create().
		SetID("stop_dup_1").
		SetExecutionID("exec_x").
		Save(ctx)
	assert.Error(t, err, "second open stop request for same execution must be rejected")

	// A handled request does not block a new open one
	err = client.StopRequest.UpdateOneID("stop_ok_1").
		SetStatus(stoprequest.StatusHandled).
		SetHandledAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	_, err = client.StopRequest.Create().
		SetID("stop_ok_2").
		SetExecutionID("exec_x").
		Save(ctx)
	assert.NoError(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "taskdag", cfg.User)
				assert.Equal(t, "taskdag", cfg.Database)
				assert.Equal(t, 10, cfg.MaxOpenConns)
				assert.Equal(t, 5, cfg.MaxIdleConns)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, 50, cfg.MaxOpenConns)
				assert.Equal(t, 20, cfg.MaxIdleConns)
			},
		},
		{
			name:        "invalid DB_PORT",
			envVars:     map[string]string{"DB_PORT": "invalid"},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name:        "invalid DB_MAX_OPEN_CONNS",
			envVars:     map[string]string{"DB_MAX_OPEN_CONNS": "not_a_number"},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name:        "invalid DB_MAX_IDLE_CONNS",
			envVars:     map[string]string{"DB_MAX_IDLE_CONNS": "abc123"},
			wantErr:     true,
			errContains: "invalid DB_MAX_IDLE_CONNS",
		},
		{
			name: "idle exceeds open",
			envVars: map[string]string{
				"DB_MAX_OPEN_CONNS": "5",
				"DB_MAX_IDLE_CONNS": "10",
			},
			wantErr:     true,
			errContains: "must not exceed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				// t.Setenv registers cleanup; empty value plus unset below
				// gives each case a clean slate
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Host:         "localhost",
		Port:         5432,
		User:         "test",
		Password:     "test",
		Database:     "test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty host", func(c *Config) { c.Host = "" }},
		{"port out of range", func(c *Config) { c.Port = 0 }},
		{"empty database", func(c *Config) { c.Database = "" }},
		{"zero max open conns", func(c *Config) { c.MaxOpenConns = 0 }},
		{"negative idle conns", func(c *Config) { c.MaxIdleConns = -1 }},
		{"idle exceeds open", func(c *Config) { c.MaxOpenConns = 5; c.MaxIdleConns = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestHealthReportsMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should be under a second")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1_000_000), "values are milliseconds, not nanoseconds")
}
