// taskdag server — plans free-text goals into task DAGs, executes them
// in dependency waves, and serves the REST + WebSocket API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/taskdag/taskdag/pkg/api"
	"github.com/taskdag/taskdag/pkg/cleanup"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/database"
	"github.com/taskdag/taskdag/pkg/events"
	"github.com/taskdag/taskdag/pkg/executor"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/masking"
	"github.com/taskdag/taskdag/pkg/planner"
	"github.com/taskdag/taskdag/pkg/scheduler"
	"github.com/taskdag/taskdag/pkg/services"
	"github.com/taskdag/taskdag/pkg/tools"
	"github.com/taskdag/taskdag/pkg/version"
)

const shutdownTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func logLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env from the config directory before anything reads the
	// environment.
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	})))

	slog.Info("Starting taskdag",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"agents", stats.Agents,
		"llm_providers", stats.LLMProviders,
		"masking_patterns", stats.MaskingPatterns)

	// 2. Database (migrations and index creation run inside NewClient)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Seed agents (insert-if-missing; existing versions stay untouched)
	agentService := services.NewAgentService(dbClient.Client)
	if err := agentService.Seed(ctx, cfg.Agents); err != nil {
		slog.Error("Failed to seed agents", "error", err)
		os.Exit(1)
	}

	// 4. Shared infrastructure
	warningsService := services.NewSystemWarningsService()
	maskingService := masking.NewService(cfg.Masking)
	bus := events.NewBus(slog.Default())

	mailerCfg := tools.MailerConfigFromEnv()
	if mailerCfg.Host == "" {
		warningsService.AddWarning(services.WarningCategoryMailer,
			"sendEmail is not configured", "SMTP_HOST is unset; sendEmail calls will fail", "sendEmail")
	}
	registry, err := tools.NewBuiltinRegistry(tools.Options{Mailer: mailerCfg})
	if err != nil {
		slog.Error("Failed to build tool registry", "error", err)
		os.Exit(1)
	}

	llmFactory := llm.NewFactory(cfg.LLM, slog.Default())

	// 5. Planner and executor
	goalPlanner := planner.New(
		services.NewDagService(dbClient.Client),
		agentService,
		services.NewStopService(dbClient.Client),
		registry,
		llmFactory,
		slog.Default(),
	)
	runner := executor.New(
		cfg.Executor,
		dbClient.Client,
		registry,
		llmFactory,
		bus,
		maskingService,
		slog.Default(),
	)

	// 6. Background loops
	cronScheduler := scheduler.New(cfg.Scheduler,
		services.NewDagService(dbClient.Client), runner, warningsService, slog.Default())
	if err := cronScheduler.Start(ctx); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	retention := cleanup.NewService(cfg.Retention,
		services.NewExecutionService(dbClient.Client),
		services.NewStopService(dbClient.Client),
		warningsService)
	retention.Start(ctx)

	// 7. HTTP server
	httpServer := api.NewServer(cfg.Server, dbClient, goalPlanner, runner,
		warningsService, bus, slog.Default())

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("taskdag started")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop the loops, drain HTTP, then cancel
	// in-flight runs. Cancelled runs finalize through the stop path, so
	// their executions return to pending and resume after restart.
	cronScheduler.Stop()
	retention.Stop()

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	runCtx, runCancel := context.WithTimeout(ctx, shutdownTimeout)
	defer runCancel()
	if err := runner.Shutdown(runCtx); err != nil {
		slog.Warn("Executor shutdown timeout exceeded", "error", err)
	}

	slog.Info("Shutdown complete")
}
