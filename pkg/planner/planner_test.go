package planner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/stoprequest"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/database"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/plan"
	"github.com/taskdag/taskdag/pkg/services"
	"github.com/taskdag/taskdag/pkg/tools"
	testdb "github.com/taskdag/taskdag/test/database"
)

// fakeFactory routes the planning and title calls to separate scripted
// clients. The title call is the only one made with SkipStats.
type fakeFactory struct {
	planning llm.Client
	title    llm.Client
}

func (f *fakeFactory) Client(opts llm.ClientOptions) (llm.Client, error) {
	if opts.SkipStats {
		return f.title, nil
	}
	return f.planning, nil
}

// hookClient runs a callback after each completed call, so tests can inject
// state changes between planning attempts.
type hookClient struct {
	inner llm.Client
	after func(call int)
	calls int
}

func (h *hookClient) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	resp, err := h.inner.Chat(ctx, req)
	h.calls++
	if h.after != nil {
		h.after(h.calls)
	}
	return resp, err
}

func newTestPlanner(t *testing.T, client *database.Client, factory ClientFactory) *Planner {
	t.Helper()
	registry, err := tools.NewBuiltinRegistry(tools.Options{})
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(
		services.NewDagService(client.Client),
		services.NewAgentService(client.Client),
		services.NewStopService(client.Client),
		registry,
		factory,
		logger,
	)
}

func seedBuiltinAgents(t *testing.T, client *database.Client) {
	t.Helper()
	err := services.NewAgentService(client.Client).Seed(context.Background(), config.BuiltinAgents())
	require.NoError(t, err)
}

func fenced(s string) string { return "```json\n" + s + "\n```" }

const goodPlanJSON = `{
  "intent": {"primary": "summarize the weekly metrics"},
  "synthesis_plan": "Fold the summary into one report.",
  "validation": {"coverage": "high"},
  "sub_tasks": [
    {
      "id": "fetch_step",
      "description": "Fetch the metrics dashboard",
      "action_type": "tool",
      "tool_or_prompt": {"name": "fetchURLs", "params": {"urls": ["https://metrics.example.com/weekly"]}},
      "dependencies": ["none"]
    },
    {
      "id": "summarize_step",
      "description": "Summarize the fetched metrics",
      "action_type": "inference",
      "tool_or_prompt": {"name": "summarizer"},
      "dependencies": ["fetch_step"]
    }
  ]
}`

const clarificationPlanJSON = `{
  "intent": {"primary": "email the weekly report"},
  "validation": {"coverage": "low"},
  "clarification_needed": true,
  "clarification_query": "Which recipient should receive the report?",
  "sub_tasks": []
}`

// coveragePlanJSON builds a single-task plan with the given self-assessment.
func coveragePlanJSON(coverage string, gaps ...string) string {
	var quoted []string
	for _, g := range gaps {
		quoted = append(quoted, fmt.Sprintf("%q", g))
	}
	return fmt.Sprintf(`{
  "intent": {"primary": "collect the status page"},
  "validation": {"coverage": %q, "gaps": [%s]},
  "sub_tasks": [
    {
      "id": "t1",
      "description": "Fetch the status page",
      "action_type": "tool",
      "tool_or_prompt": {"name": "fetchURLs", "params": {"urls": ["https://status.example.com"]}},
      "dependencies": ["none"]
    }
  ]
}`, coverage, strings.Join(quoted, ", "))
}

func planResponse(content string, promptTokens, completionTokens int, cost string) llm.ScriptedResponse {
	return llm.ScriptedResponse{Response: &llm.ChatResponse{
		Content: content,
		Usage: &models.TokenUsage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		},
		CostUsd: cost,
	}}
}

func titleResponse(title string) llm.ScriptedResponse {
	return llm.ScriptedResponse{Response: &llm.ChatResponse{
		Content: title,
		Usage:   &models.TokenUsage{PromptTokens: 60, CompletionTokens: 15, TotalTokens: 75},
		CostUsd: "0.0015",
	}}
}

func TestPlanner_CreateFromGoal(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedBuiltinAgents(t, client)
	ctx := context.Background()

	t.Run("persists a high coverage plan", func(t *testing.T) {
		planning := llm.NewScriptedClient(planResponse(fenced(goodPlanJSON), 800, 400, "0.0020"))
		title := llm.NewScriptedClient(titleResponse(`"Weekly Metrics Digest"`))
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		goal := "Summarize this week's metrics and email me the digest"
		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: goal})
		require.NoError(t, err)

		assert.Equal(t, models.PlanningStatusSuccess, result.Status)
		assert.NotEmpty(t, result.DagID)
		assert.Equal(t, models.CoverageHigh, result.Coverage)

		row, err := client.Dag.Get(ctx, result.DagID)
		require.NoError(t, err)
		assert.Equal(t, dag.StatusSuccess, row.Status)
		assert.Equal(t, config.BuiltinPlannerAgentName, row.AgentName)
		require.NotNil(t, row.DagTitle)
		assert.Equal(t, "Weekly Metrics Digest", *row.DagTitle, "wrapping quotes are stripped")

		stored, err := plan.FromMap(row.Result)
		require.NoError(t, err)
		assert.Equal(t, goal, stored.OriginalRequest)
		require.Len(t, stored.SubTasks, 2)
		assert.Equal(t, "001", stored.SubTasks[0].ID)
		assert.Equal(t, "002", stored.SubTasks[1].ID)
		assert.Equal(t, []string{"001"}, stored.SubTasks[1].Dependencies,
			"dependency references follow the renumbering")

		assert.Equal(t, goal, row.Params["goal_text"])
		assert.Equal(t, config.BuiltinPlannerAgentName, row.Params["agent_name"])

		require.Len(t, row.PlanningAttempts, 2)
		assert.Equal(t, "initial", row.PlanningAttempts[0]["reason"])
		assert.Equal(t, "title_master", row.PlanningAttempts[1]["reason"])

		usage := models.UsageFromMap(row.PlanningTotalUsage)
		require.NotNil(t, usage)
		assert.Equal(t, 1275, usage.TotalTokens, "totals fold in the title call")
		require.NotNil(t, row.PlanningTotalCostUsd)
		assert.Equal(t, "0.0035", *row.PlanningTotalCostUsd)

		calls := planning.Calls()
		require.Len(t, calls, 1)
		require.Len(t, calls[0].Messages, 2)
		system := calls[0].Messages[0]
		assert.Equal(t, llm.RoleSystem, system.Role)
		assert.Contains(t, system.Content, `"fetchURLs"`, "tool catalog is substituted")
		assert.NotContains(t, system.Content, "{{tools}}")
		assert.Contains(t, system.Content, time.Now().Format("2006-01-02"))
		assert.Equal(t, goal, calls[0].Messages[1].Content)
		require.NotNil(t, calls[0].Temperature)
		assert.InDelta(t, 0.7, float64(*calls[0].Temperature), 0.001)
	})

	t.Run("registers the schedule on success", func(t *testing.T) {
		planning := llm.NewScriptedClient(planResponse(fenced(goodPlanJSON), 500, 250, "0.0010"))
		title := llm.NewScriptedClient(titleResponse("Morning Digest"))
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{
			GoalText:       "Collect the morning numbers",
			CronSchedule:   "0 9 * * 1",
			ScheduleActive: true,
			Timezone:       "Europe/Berlin",
		})
		require.NoError(t, err)

		row, err := client.Dag.Get(ctx, result.DagID)
		require.NoError(t, err)
		require.NotNil(t, row.CronSchedule)
		assert.Equal(t, "0 9 * * 1", *row.CronSchedule)
		assert.True(t, row.ScheduleActive)
		assert.Equal(t, "Europe/Berlin", row.Timezone)
	})

	t.Run("rejects an invalid cron before any llm call", func(t *testing.T) {
		planning := llm.NewScriptedClient()
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: llm.NewScriptedClient()})

		_, err := p.CreateFromGoal(ctx, models.PlanningRequest{
			GoalText:     "Anything",
			CronSchedule: "every monday at nine",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
		assert.Zero(t, planning.CallCount())
	})

	t.Run("rejects an unknown timezone", func(t *testing.T) {
		planning := llm.NewScriptedClient()
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: llm.NewScriptedClient()})

		_, err := p.CreateFromGoal(ctx, models.PlanningRequest{
			GoalText: "Anything",
			Timezone: "Mars/Olympus_Mons",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
		assert.Zero(t, planning.CallCount())
	})

	t.Run("retries a parse error and recovers", func(t *testing.T) {
		planning := llm.NewScriptedClient(
			planResponse("I think the plan should be... let me explain {", 300, 700, "0.0010"),
			planResponse(fenced(goodPlanJSON), 800, 400, "0.0020"),
		)
		title := llm.NewScriptedClient(titleResponse("Metrics Summary"))
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "Summarize the metrics"})
		require.NoError(t, err)
		assert.Equal(t, models.PlanningStatusSuccess, result.Status)

		row, err := client.Dag.Get(ctx, result.DagID)
		require.NoError(t, err)
		require.Len(t, row.PlanningAttempts, 3)
		assert.Equal(t, "initial", row.PlanningAttempts[0]["reason"])
		assert.NotEmpty(t, row.PlanningAttempts[0]["error"], "the failed attempt keeps its error")
		assert.Equal(t, "retry_parse_error", row.PlanningAttempts[1]["reason"])
		assert.Equal(t, "title_master", row.PlanningAttempts[2]["reason"])
	})

	t.Run("schema failure retries as retry_validation", func(t *testing.T) {
		planning := llm.NewScriptedClient(
			planResponse(fenced(`{"intent": {"primary": "x"}}`), 200, 100, ""),
			planResponse(fenced(goodPlanJSON), 800, 400, ""),
		)
		title := llm.NewScriptedClient(titleResponse("Metrics Summary"))
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "Summarize the metrics"})
		require.NoError(t, err)

		row, err := client.Dag.Get(ctx, result.DagID)
		require.NoError(t, err)
		require.Len(t, row.PlanningAttempts, 3)
		assert.Equal(t, "retry_validation", row.PlanningAttempts[1]["reason"])
	})

	t.Run("persists validation_error after exhausted attempts", func(t *testing.T) {
		planning := llm.NewScriptedClient(
			planResponse("not json at all", 100, 50, "0.0001"),
			planResponse("still { not json", 100, 50, "0.0001"),
			planResponse("final garbage }", 100, 50, "0.0001"),
		)
		title := llm.NewScriptedClient()
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "Summarize the metrics"})
		require.NoError(t, err, "a rejected plan is still a successful call")

		assert.Equal(t, models.PlanningStatusValidationError, result.Status)
		assert.NotEmpty(t, result.DagID)
		assert.NotEmpty(t, result.Error)

		row, err := client.Dag.Get(ctx, result.DagID)
		require.NoError(t, err)
		assert.Equal(t, dag.StatusValidationError, row.Status)
		assert.Equal(t, "final garbage }", row.Result["raw_response"],
			"the raw response is retained for debugging")
		assert.Nil(t, row.DagTitle, "rejected plans are not titled")
		require.Len(t, row.PlanningAttempts, 3)
		assert.Equal(t, "retry_parse_error", row.PlanningAttempts[2]["reason"])
		assert.Zero(t, title.CallCount())
	})

	t.Run("oversize response fails without a row before the last attempt", func(t *testing.T) {
		planning := llm.NewScriptedClient(
			planResponse(strings.Repeat("x", maxResponseChars+1), 100, 50, "0.0001"),
			planResponse(fenced(goodPlanJSON), 800, 400, "0.0020"),
		)
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: llm.NewScriptedClient()})

		_, err := p.CreateFromGoal(ctx, models.PlanningRequest{
			GoalText: "Summarize the metrics",
			DagID:    "dag_oversize_midway",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
		assert.Contains(t, err.Error(), "exceeds")
		assert.Equal(t, 1, planning.CallCount(), "an oversize response is not retried")

		exists, qerr := client.Dag.Query().Where(dag.IDEQ("dag_oversize_midway")).Exist(ctx)
		require.NoError(t, qerr)
		assert.False(t, exists)
	})

	t.Run("oversize response on the last attempt keeps a validation_error row", func(t *testing.T) {
		planning := llm.NewScriptedClient(
			planResponse("not json at all", 100, 50, "0.0001"),
			planResponse("still { not json", 100, 50, "0.0001"),
			planResponse(strings.Repeat("x", maxResponseChars+500), 100, 50, "0.0001"),
		)
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: llm.NewScriptedClient()})

		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "Summarize the metrics"})
		require.NoError(t, err, "a rejected plan is still a successful call")
		assert.Equal(t, models.PlanningStatusValidationError, result.Status)
		assert.Contains(t, result.Error, "exceeds")

		row, err := client.Dag.Get(ctx, result.DagID)
		require.NoError(t, err)
		assert.Equal(t, dag.StatusValidationError, row.Status)
		raw, ok := row.Result["raw_response"].(string)
		require.True(t, ok)
		assert.Len(t, raw, maxResponseChars, "the stored response is truncated to the ceiling")
		require.Len(t, row.PlanningAttempts, 3)
		assert.Contains(t, row.PlanningAttempts[2]["error"], "exceeds")
	})

	t.Run("clarification persists a pending row", func(t *testing.T) {
		planning := llm.NewScriptedClient(planResponse(fenced(clarificationPlanJSON), 400, 120, "0.0008"))
		title := llm.NewScriptedClient(titleResponse("Weekly Report Email"))
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "Email me the weekly report"})
		require.NoError(t, err)

		assert.Equal(t, models.PlanningStatusClarificationRequired, result.Status)
		assert.Equal(t, "Which recipient should receive the report?", result.ClarificationQuery)

		row, err := client.Dag.Get(ctx, result.DagID)
		require.NoError(t, err)
		assert.Equal(t, dag.StatusPending, row.Status)
		require.NotNil(t, row.DagTitle)
		assert.Equal(t, "Weekly Report Email", *row.DagTitle)
		assert.Equal(t, true, row.Result["clarification_needed"])
	})

	t.Run("appends coverage gaps to the retry prompt", func(t *testing.T) {
		planning := llm.NewScriptedClient(
			planResponse(fenced(coveragePlanJSON("medium", "No date range specified")), 500, 200, ""),
			planResponse(fenced(goodPlanJSON), 800, 400, ""),
		)
		title := llm.NewScriptedClient(titleResponse("Status Collection"))
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		goal := "Collect the status page details"
		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: goal})
		require.NoError(t, err)
		assert.Equal(t, models.PlanningStatusSuccess, result.Status)

		calls := planning.Calls()
		require.Len(t, calls, 2)
		retryPrompt := calls[1].Messages[1].Content
		assert.Contains(t, retryPrompt, goal)
		assert.Contains(t, retryPrompt, "1. No date range specified")

		row, err := client.Dag.Get(ctx, result.DagID)
		require.NoError(t, err)
		assert.Equal(t, "retry_gaps", row.PlanningAttempts[1]["reason"])
	})

	t.Run("accepts low coverage without gaps", func(t *testing.T) {
		planning := llm.NewScriptedClient(planResponse(fenced(coveragePlanJSON("low")), 500, 200, ""))
		title := llm.NewScriptedClient(titleResponse("Status Collection"))
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "Collect the status page"})
		require.NoError(t, err)
		assert.Equal(t, models.PlanningStatusSuccess, result.Status)
		assert.Equal(t, models.CoverageLow, result.Coverage,
			"coverage is surfaced so the caller can judge the plan")
		assert.Equal(t, 1, planning.CallCount(), "no gaps means nothing to retry on")
	})

	t.Run("gaps remaining on the final attempt raise a validation error", func(t *testing.T) {
		gappy := planResponse(fenced(coveragePlanJSON("medium", "Missing auth details")), 500, 200, "")
		planning := llm.NewScriptedClient(gappy, gappy, gappy)
		title := llm.NewScriptedClient()
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		_, err := p.CreateFromGoal(ctx, models.PlanningRequest{
			GoalText: "Collect the status page",
			DagID:    "dag_gaps_exhausted",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
		assert.Equal(t, 3, planning.CallCount())

		exists, qerr := client.Dag.Query().Where(dag.IDEQ("dag_gaps_exhausted")).Exist(ctx)
		require.NoError(t, qerr)
		assert.False(t, exists, "no row is persisted when every attempt left gaps")
	})

	t.Run("stop during planning discards the row and handles the stop", func(t *testing.T) {
		const dagID = "dag_stopped_mid_planning"
		stops := services.NewStopService(client.Client)

		planning := llm.NewScriptedClient(
			planResponse("garbled {", 300, 100, "0.0005"),
			planResponse(fenced(goodPlanJSON), 800, 400, "0.0020"),
		)
		hooked := &hookClient{inner: planning, after: func(call int) {
			if call == 1 {
				_, err := stops.RequestStopForDag(ctx, dagID)
				require.NoError(t, err)
			}
		}}
		p := newTestPlanner(t, client, &fakeFactory{planning: hooked, title: llm.NewScriptedClient()})

		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{
			GoalText: "Summarize the metrics",
			DagID:    dagID,
		})
		require.NoError(t, err)

		assert.Equal(t, models.PlanningStatusFailed, result.Status)
		assert.Empty(t, result.DagID)
		assert.Contains(t, result.Error, "stop")
		assert.Equal(t, 1, planning.CallCount(), "the second attempt never ran")

		exists, err := client.Dag.Query().Where(dag.IDEQ(dagID)).Exist(ctx)
		require.NoError(t, err)
		assert.False(t, exists)

		stopRow, err := client.StopRequest.Query().
			Where(stoprequest.DagIDEQ(dagID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, stoprequest.StatusHandled, stopRow.Status)
	})

	t.Run("stop landing during the final call skips persistence", func(t *testing.T) {
		const dagID = "dag_stopped_before_persist"
		stops := services.NewStopService(client.Client)

		// The plan comes back clean on the first call; the stop arrives
		// while that call is still in flight, so only the pre-persistence
		// probe can observe it.
		planning := llm.NewScriptedClient(planResponse(fenced(goodPlanJSON), 800, 400, "0.0020"))
		title := llm.NewScriptedClient(titleResponse("never used"))
		hooked := &hookClient{inner: planning, after: func(call int) {
			if call == 1 {
				_, err := stops.RequestStopForDag(ctx, dagID)
				require.NoError(t, err)
			}
		}}
		p := newTestPlanner(t, client, &fakeFactory{planning: hooked, title: title})

		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{
			GoalText: "Summarize the metrics",
			DagID:    dagID,
		})
		require.NoError(t, err)

		assert.Equal(t, models.PlanningStatusFailed, result.Status)
		assert.Empty(t, result.DagID)
		assert.Contains(t, result.Error, "stop")
		assert.Zero(t, title.CallCount(), "the title side-call never starts")

		exists, err := client.Dag.Query().Where(dag.IDEQ(dagID)).Exist(ctx)
		require.NoError(t, err)
		assert.False(t, exists, "the validated plan is discarded, not persisted")

		stopRow, err := client.StopRequest.Query().
			Where(stoprequest.DagIDEQ(dagID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, stoprequest.StatusHandled, stopRow.Status)
	})

	t.Run("aborted context fails without a row", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		planning := llm.NewScriptedClient()
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: llm.NewScriptedClient()})

		result, err := p.CreateFromGoal(cancelled, models.PlanningRequest{
			GoalText: "Summarize the metrics",
			DagID:    "dag_ctx_cancelled",
		})
		require.NoError(t, err)
		assert.Equal(t, models.PlanningStatusFailed, result.Status)
		assert.Zero(t, planning.CallCount())
	})

	t.Run("missing agent fails fast", func(t *testing.T) {
		planning := llm.NewScriptedClient()
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: llm.NewScriptedClient()})

		_, err := p.CreateFromGoal(ctx, models.PlanningRequest{
			GoalText:  "Summarize the metrics",
			AgentName: "ghost-agent",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Zero(t, planning.CallCount())
	})

	t.Run("rejects a template that expands too short", func(t *testing.T) {
		agents := services.NewAgentService(client.Client)
		_, err := agents.CreateAgent(ctx, models.CreateAgentRequest{
			Name:           "terse-decomposer",
			PromptTemplate: "Decompose goals.",
			Activate:       true,
		})
		require.NoError(t, err)

		planning := llm.NewScriptedClient()
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: llm.NewScriptedClient()})

		_, err = p.CreateFromGoal(ctx, models.PlanningRequest{
			GoalText:  "Summarize the metrics",
			AgentName: "terse-decomposer",
		})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
		assert.Zero(t, planning.CallCount())
	})

	t.Run("title failure leaves the title null", func(t *testing.T) {
		planning := llm.NewScriptedClient(planResponse(fenced(goodPlanJSON), 800, 400, "0.0020"))
		title := llm.NewScriptedClient(llm.ScriptedResponse{Err: errors.New("title provider down")})
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		result, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "Summarize the metrics"})
		require.NoError(t, err)
		assert.Equal(t, models.PlanningStatusSuccess, result.Status)

		row, err := client.Dag.Get(ctx, result.DagID)
		require.NoError(t, err)
		assert.Nil(t, row.DagTitle)
		require.Len(t, row.PlanningAttempts, 2)
		assert.Equal(t, "title_master", row.PlanningAttempts[1]["reason"])
		assert.Contains(t, row.PlanningAttempts[1]["error"], "title provider down")
	})

	t.Run("propagates a transport error", func(t *testing.T) {
		planning := llm.NewScriptedClient(llm.ScriptedResponse{Err: errors.New("connection refused")})
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: llm.NewScriptedClient()})

		_, err := p.CreateFromGoal(ctx, models.PlanningRequest{
			GoalText: "Summarize the metrics",
			DagID:    "dag_transport_error",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")

		exists, qerr := client.Dag.Query().Where(dag.IDEQ("dag_transport_error")).Exist(ctx)
		require.NoError(t, qerr)
		assert.False(t, exists)
	})

	t.Run("validates the goal", func(t *testing.T) {
		p := newTestPlanner(t, client, &fakeFactory{planning: llm.NewScriptedClient(), title: llm.NewScriptedClient()})
		_, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "   "})
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})
}

func TestPlanner_ResumeFromClarification(t *testing.T) {
	client := testdb.NewTestClient(t)
	seedBuiltinAgents(t, client)
	ctx := context.Background()

	t.Run("round trip keeps the original dag id", func(t *testing.T) {
		planning := llm.NewScriptedClient(planResponse(fenced(clarificationPlanJSON), 400, 120, "0.0008"))
		title := llm.NewScriptedClient(titleResponse("Weekly Report Email"), titleResponse("Weekly Report Email"))
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		first, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "Email me the weekly report"})
		require.NoError(t, err)
		require.Equal(t, models.PlanningStatusClarificationRequired, first.Status)
		originalID := first.DagID

		planning.Script(planResponse(fenced(goodPlanJSON), 800, 400, "0.0020"))

		resumed, err := p.ResumeFromClarification(ctx, originalID, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, models.PlanningStatusSuccess, resumed.Status)
		assert.Equal(t, originalID, resumed.DagID, "the caller keeps one stable id")

		row, err := client.Dag.Get(ctx, originalID)
		require.NoError(t, err)
		assert.Equal(t, dag.StatusSuccess, row.Status)

		stored, err := plan.FromMap(row.Result)
		require.NoError(t, err)
		assert.Contains(t, stored.OriginalRequest, "Email me the weekly report")
		assert.Contains(t, stored.OriginalRequest, "User clarification: ada@example.com")
		assert.NotEmpty(t, stored.SubTasks)

		calls := planning.Calls()
		require.Len(t, calls, 2)
		assert.Contains(t, calls[1].Messages[1].Content, "\nUser clarification: ada@example.com")

		count, err := client.Dag.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "the scratch row is consumed by the transfer")
	})

	t.Run("refuses a dag that is not pending", func(t *testing.T) {
		planning := llm.NewScriptedClient(planResponse(fenced(goodPlanJSON), 500, 250, ""))
		title := llm.NewScriptedClient(titleResponse("Digest"))
		p := newTestPlanner(t, client, &fakeFactory{planning: planning, title: title})

		created, err := p.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "Summarize the metrics"})
		require.NoError(t, err)

		_, err = p.ResumeFromClarification(ctx, created.DagID, "any answer")
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("rejects an empty answer", func(t *testing.T) {
		p := newTestPlanner(t, client, &fakeFactory{planning: llm.NewScriptedClient(), title: llm.NewScriptedClient()})
		_, err := p.ResumeFromClarification(ctx, "dag_whatever", "  ")
		require.Error(t, err)
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("unknown dag", func(t *testing.T) {
		p := newTestPlanner(t, client, &fakeFactory{planning: llm.NewScriptedClient(), title: llm.NewScriptedClient()})
		_, err := p.ResumeFromClarification(ctx, "dag_ghost", "answer")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
