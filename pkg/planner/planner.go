// Package planner turns free-text goals into validated, persisted DAG rows
// by driving the decomposition agent through a bounded retry loop.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/plan"
	"github.com/taskdag/taskdag/pkg/services"
	"github.com/taskdag/taskdag/pkg/tools"
)

const (
	// tokenTools is replaced with the JSON tool catalog when the system
	// prompt is built.
	tokenTools = "{{tools}}"

	defaultMaxAttempts = 3
	defaultMaxTokens   = 10000

	// minSystemPromptChars guards against a mangled agent template. A real
	// decomposer prompt is far longer.
	minSystemPromptChars = 100

	// maxResponseChars is the hard ceiling on one decomposer response.
	maxResponseChars = 100000
)

var defaultTemperature = float32(0.7)

// ClientFactory resolves LLM clients per call. *llm.Factory satisfies it.
type ClientFactory interface {
	Client(opts llm.ClientOptions) (llm.Client, error)
}

// Planner plans goals and owns the DAG rows that planning produces.
type Planner struct {
	dags     *services.DagService
	agents   *services.AgentService
	stops    *services.StopService
	registry *tools.Registry
	clients  ClientFactory
	logger   *slog.Logger

	maxAttempts int
}

// New creates a planner over the given stores and LLM client factory.
func New(
	dags *services.DagService,
	agents *services.AgentService,
	stops *services.StopService,
	registry *tools.Registry,
	clients ClientFactory,
	logger *slog.Logger,
) *Planner {
	return &Planner{
		dags:        dags,
		agents:      agents,
		stops:       stops,
		registry:    registry,
		clients:     clients,
		logger:      logger,
		maxAttempts: defaultMaxAttempts,
	}
}

// CreateFromGoal plans a goal end to end and persists the outcome. Every
// returned result except a stop abort carries the id of a DAG row: a
// validated plan (success), a question for the caller (clarification
// required), or the raw response of an unusable plan (validation error).
// Transport and configuration faults come back as errors instead.
func (p *Planner) CreateFromGoal(ctx context.Context, req models.PlanningRequest) (*models.PlanningResult, error) {
	if strings.TrimSpace(req.GoalText) == "" {
		return nil, services.NewValidationError("goal_text", "is required")
	}
	if req.AgentName == "" {
		req.AgentName = config.BuiltinPlannerAgentName
	}
	if req.CronSchedule != "" {
		if err := ValidateCronExpr(req.CronSchedule); err != nil {
			return nil, services.NewValidationError("cron_schedule", err.Error())
		}
	}
	if req.Timezone == "" {
		req.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return nil, services.NewValidationError("timezone", fmt.Sprintf("unknown timezone %q", req.Timezone))
	}
	if req.DagID == "" {
		req.DagID = "dag_" + uuid.New().String()
	}

	agent, err := p.agents.GetActiveAgent(ctx, req.AgentName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve agent %q: %w", req.AgentName, err)
	}

	systemPrompt, err := p.buildSystemPrompt(agent.PromptTemplate)
	if err != nil {
		return nil, err
	}

	provider := req.Provider
	if provider == "" {
		provider = agent.Provider
	}
	model := req.Model
	if model == "" {
		model = agent.Model
	}
	maxTokens := defaultMaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}
	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	client, err := p.clients.Client(llm.ClientOptions{Provider: provider, Model: model, MaxTokens: maxTokens})
	if err != nil {
		return nil, fmt.Errorf("failed to construct planning client: %w", err)
	}

	logger := p.logger.With("dag_id", req.DagID, "agent", req.AgentName)

	var (
		attempts   []models.PlanningAttempt
		reason     = models.AttemptReasonInitial
		userPrompt = req.GoalText
	)

	for attemptNo := 1; attemptNo <= p.maxAttempts; attemptNo++ {
		aborted, result, err := p.checkAbort(ctx, req.DagID, logger)
		if aborted || err != nil {
			return result, err
		}

		start := time.Now()
		resp, err := client.Chat(ctx, &llm.ChatRequest{
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: systemPrompt},
				{Role: llm.RoleUser, Content: userPrompt},
			},
			Temperature: &temperature,
			Seed:        req.Seed,
		})
		if err != nil {
			return nil, fmt.Errorf("planning call failed: %w", err)
		}
		attempt := models.PlanningAttempt{
			Reason:     reason,
			Usage:      resp.Usage,
			CostUsd:    resp.CostUsd,
			DurationMs: time.Since(start).Milliseconds(),
		}

		if len(resp.Content) > maxResponseChars {
			oversize := services.NewValidationError("response",
				fmt.Sprintf("planning response exceeds %d chars", maxResponseChars))
			if attemptNo == p.maxAttempts {
				// The final attempt keeps a diagnosable row, truncated to
				// the ceiling; earlier attempts fail outright.
				attempt.Error = oversize.Error()
				attempts = append(attempts, attempt)
				raw := strings.ToValidUTF8(resp.Content[:maxResponseChars], "")
				return p.persistValidationError(ctx, req, raw, oversize, attempts)
			}
			return nil, oversize
		}

		parsed, parseErr := plan.Parse(plan.ExtractJSONBlock(resp.Content))
		if parseErr != nil {
			attempt.Error = parseErr.Error()
			attempts = append(attempts, attempt)

			var schemaErr *plan.SchemaError
			if errors.As(parseErr, &schemaErr) {
				reason = models.AttemptReasonRetryValidation
			} else {
				reason = models.AttemptReasonRetryParseError
			}
			logger.Warn("Planning attempt produced an unusable plan",
				"attempt", attemptNo, "retry_reason", string(reason), "error", parseErr)

			if attemptNo == p.maxAttempts {
				return p.persistValidationError(ctx, req, resp.Content, parseErr, attempts)
			}
			continue
		}
		attempts = append(attempts, attempt)

		if parsed.ClarificationNeeded {
			return p.persistClarification(ctx, req, parsed, attempts, logger)
		}

		if parsed.Validation.Coverage != models.CoverageHigh && len(parsed.Validation.Gaps) > 0 {
			if attemptNo == p.maxAttempts {
				break
			}
			userPrompt = appendGaps(userPrompt, parsed.Validation.Gaps)
			reason = models.AttemptReasonRetryGaps
			logger.Info("Retrying plan with coverage gaps",
				"attempt", attemptNo,
				"coverage", string(parsed.Validation.Coverage),
				"gaps", len(parsed.Validation.Gaps))
			continue
		}

		// High coverage, or a lower coverage with nothing actionable left.
		return p.persistSuccess(ctx, req, parsed, attempts, logger)
	}

	return nil, services.NewValidationError("plan",
		fmt.Sprintf("coverage gaps remain after %d attempts", p.maxAttempts))
}

// checkAbort probes caller cancellation and the stop coordinator. An abort
// discards the partially created row so no unusable handle leaks out.
func (p *Planner) checkAbort(ctx context.Context, dagID string, logger *slog.Logger) (bool, *models.PlanningResult, error) {
	if err := ctx.Err(); err != nil {
		logger.Info("Planning aborted by caller", "error", err)
		return true, p.abandon(dagID, "planning aborted: "+err.Error(), false, logger), nil
	}
	stopped, err := p.stops.HasActiveStopForDag(ctx, dagID)
	if err != nil {
		return false, nil, fmt.Errorf("failed to probe stop request: %w", err)
	}
	if !stopped {
		return false, nil, nil
	}
	logger.Info("Planning stopped by request")
	return true, p.abandon(dagID, "stop requested during planning", true, logger), nil
}

func (p *Planner) abandon(dagID, msg string, markHandled bool, logger *slog.Logger) *models.PlanningResult {
	if err := p.dags.DeleteDag(context.Background(), dagID); err != nil {
		logger.Warn("Failed to discard abandoned dag row", "error", err)
	}
	if markHandled {
		if err := p.stops.MarkHandledForDag(context.Background(), dagID); err != nil {
			logger.Warn("Failed to mark stop request handled", "error", err)
		}
	}
	return &models.PlanningResult{Status: models.PlanningStatusFailed, Error: msg}
}

// buildSystemPrompt expands the agent template. {{tools}} becomes the JSON
// tool catalog and {{currentDate}} the local date, so the decomposer knows
// what it can schedule and when "today" is.
func (p *Planner) buildSystemPrompt(template string) (string, error) {
	catalog, err := p.registry.DefinitionsJSON()
	if err != nil {
		return "", fmt.Errorf("failed to render tool catalog: %w", err)
	}
	prompt := strings.ReplaceAll(template, tokenTools, catalog)
	prompt = strings.ReplaceAll(prompt, plan.TokenCurrentDate, time.Now().Format("2006-01-02"))
	if len(prompt) < minSystemPromptChars {
		return "", services.NewValidationError("prompt_template",
			fmt.Sprintf("expanded prompt is %d chars, need at least %d", len(prompt), minSystemPromptChars))
	}
	return prompt, nil
}

func appendGaps(prompt string, gaps []string) string {
	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString("\n\nYour previous plan left these gaps:\n")
	for i, gap := range gaps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, gap)
	}
	b.WriteString("Produce a revised plan that closes every gap.")
	return b.String()
}

func (p *Planner) persistSuccess(ctx context.Context, req models.PlanningRequest, parsed *plan.Plan, attempts []models.PlanningAttempt, logger *slog.Logger) (*models.PlanningResult, error) {
	// A stop that landed while the final call was in flight still wins.
	if aborted, result, err := p.checkAbort(ctx, req.DagID, logger); aborted || err != nil {
		return result, err
	}

	parsed.Renumber()
	parsed.OriginalRequest = req.GoalText

	titleCh := p.startTitleCall(ctx, req.GoalText)

	resultMap, err := parsed.ToMap()
	if err != nil {
		return nil, err
	}
	create := buildCreate(req, models.DagStatusSuccess, resultMap)
	if req.CronSchedule != "" {
		create.CronSchedule = &req.CronSchedule
		create.ScheduleActive = req.ScheduleActive
	}

	attempts = p.awaitTitle(titleCh, &create, attempts, logger)
	foldTotals(&create, attempts)

	row, err := p.dags.CreateDag(ctx, create)
	if err != nil {
		return nil, err
	}
	logger.Info("Plan persisted",
		"status", string(models.DagStatusSuccess),
		"tasks", len(parsed.SubTasks),
		"coverage", string(parsed.Validation.Coverage),
		"attempts", len(attempts))
	return &models.PlanningResult{
		Status:   models.PlanningStatusSuccess,
		DagID:    row.ID,
		Coverage: parsed.Validation.Coverage,
	}, nil
}

func (p *Planner) persistClarification(ctx context.Context, req models.PlanningRequest, parsed *plan.Plan, attempts []models.PlanningAttempt, logger *slog.Logger) (*models.PlanningResult, error) {
	if aborted, result, err := p.checkAbort(ctx, req.DagID, logger); aborted || err != nil {
		return result, err
	}

	titleCh := p.startTitleCall(ctx, req.GoalText)

	resultMap, err := parsed.ToMap()
	if err != nil {
		return nil, err
	}
	create := buildCreate(req, models.DagStatusPending, resultMap)

	attempts = p.awaitTitle(titleCh, &create, attempts, logger)
	foldTotals(&create, attempts)

	row, err := p.dags.CreateDag(ctx, create)
	if err != nil {
		return nil, err
	}
	logger.Info("Plan needs clarification", "query", parsed.ClarificationQuery)
	return &models.PlanningResult{
		Status:             models.PlanningStatusClarificationRequired,
		DagID:              row.ID,
		ClarificationQuery: parsed.ClarificationQuery,
	}, nil
}

// persistValidationError stores the raw response of the final attempt so
// the failure can be diagnosed without replaying the goal.
func (p *Planner) persistValidationError(ctx context.Context, req models.PlanningRequest, rawResponse string, cause error, attempts []models.PlanningAttempt) (*models.PlanningResult, error) {
	if aborted, result, err := p.checkAbort(ctx, req.DagID, p.logger); aborted || err != nil {
		return result, err
	}

	create := buildCreate(req, models.DagStatusValidationError, map[string]interface{}{
		"raw_response": rawResponse,
		"error":        cause.Error(),
	})
	foldTotals(&create, attempts)

	row, err := p.dags.CreateDag(ctx, create)
	if err != nil {
		return nil, err
	}
	p.logger.Warn("Plan rejected after final attempt", "dag_id", row.ID, "error", cause)
	return &models.PlanningResult{
		Status: models.PlanningStatusValidationError,
		DagID:  row.ID,
		Error:  cause.Error(),
	}, nil
}

// buildCreate assembles the row skeleton. Params keeps the full planning
// request so a clarification resume can replay it.
func buildCreate(req models.PlanningRequest, status models.DagStatus, result map[string]interface{}) models.CreateDagRequest {
	return models.CreateDagRequest{
		ID:        req.DagID,
		Status:    status,
		Result:    result,
		Params:    requestParams(req),
		AgentName: req.AgentName,
		Timezone:  req.Timezone,
	}
}

func requestParams(req models.PlanningRequest) map[string]interface{} {
	stored := req
	stored.DagID = ""
	raw, err := json.Marshal(stored)
	if err != nil {
		return map[string]interface{}{"goal_text": req.GoalText}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]interface{}{"goal_text": req.GoalText}
	}
	return m
}

// foldTotals sums usage and cost across every attempt, title call included.
func foldTotals(create *models.CreateDagRequest, attempts []models.PlanningAttempt) {
	if len(attempts) == 0 {
		return
	}
	total := &models.TokenUsage{}
	var costs []string
	for _, a := range attempts {
		total.Add(a.Usage)
		if a.CostUsd != "" {
			costs = append(costs, a.CostUsd)
		}
	}
	if !total.IsZero() {
		create.PlanningTotalUsage = total
	}
	if sum, err := llm.SumCostUSD(costs); err == nil && sum != "" {
		create.PlanningTotalCostUsd = sum
	}
	create.PlanningAttempts = attempts
}

// ResumeFromClarification replans a pending DAG with the caller's answer
// folded into the goal. The outcome lands on the original row so the caller
// keeps one stable id across the round trip.
func (p *Planner) ResumeFromClarification(ctx context.Context, dagID, userAnswer string) (*models.PlanningResult, error) {
	if strings.TrimSpace(userAnswer) == "" {
		return nil, services.NewValidationError("answer", "is required")
	}

	row, err := p.dags.GetDag(ctx, dagID)
	if err != nil {
		return nil, err
	}
	if row.Status != dag.StatusPending {
		return nil, fmt.Errorf("%w: dag %s is %s, only a pending dag awaits clarification",
			services.ErrInvalidInput, dagID, row.Status)
	}

	req, err := requestFromParams(row.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild planning request for dag %s: %w", dagID, err)
	}
	req.GoalText = req.GoalText + "\nUser clarification: " + userAnswer
	req.DagID = "dag_" + uuid.New().String()
	if req.AgentName == "" {
		req.AgentName = row.AgentName
	}

	result, err := p.CreateFromGoal(ctx, req)
	if err != nil {
		return nil, err
	}
	if result.Status == models.PlanningStatusFailed {
		// A stop abort leaves no scratch row to adopt.
		return result, nil
	}

	updated, err := p.dags.TransferOutcome(ctx, result.DagID, dagID)
	if err != nil {
		return nil, fmt.Errorf("failed to adopt replanned outcome: %w", err)
	}
	result.DagID = updated.ID
	return result, nil
}

// requestFromParams rebuilds the planning request stored on the row.
func requestFromParams(params map[string]interface{}) (models.PlanningRequest, error) {
	var req models.PlanningRequest
	raw, err := json.Marshal(params)
	if err != nil {
		return req, err
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, err
	}
	if req.GoalText == "" {
		return req, errors.New("stored params carry no goal text")
	}
	return req, nil
}
