package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entdag "github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/plan"
)

const askRecipientPlanJSON = `{
  "intent": {"primary": "email the weekly report"},
  "validation": {"coverage": "low"},
  "clarification_needed": true,
  "clarification_query": "Which recipient should receive the report?",
  "sub_tasks": []
}`

// The clarification round trip keeps one stable dag id from the first
// request through execution.
func TestClarificationRoundTripRunsUnderOneID(t *testing.T) {
	ctx := context.Background()

	collect := okTool("collectStub", "raw numbers")
	analyze := okTool("analyzeStub", "trend: up")
	format := okTool("formatStub", "| week | signups |")

	planning := llm.NewScriptedClient(planResponse(fenced(askRecipientPlanJSON)))
	st := newStack(t, newRegistry(t, collect, analyze, format), routedFactory(planning, "# Weekly report"))

	first, err := st.planner.CreateFromGoal(ctx, models.PlanningRequest{
		GoalText: "Email me the weekly report",
	})
	require.NoError(t, err)
	require.Equal(t, models.PlanningStatusClarificationRequired, first.Status)
	assert.Equal(t, "Which recipient should receive the report?", first.ClarificationQuery)
	originalID := first.DagID

	pending, err := st.client.Dag.Get(ctx, originalID)
	require.NoError(t, err)
	assert.Equal(t, entdag.StatusPending, pending.Status)

	// The answer triggers one fresh planning round.
	planning.Script(planResponse(fenced(fanOutPlanJSON)))

	resumed, err := st.planner.ResumeFromClarification(ctx, originalID, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.PlanningStatusSuccess, resumed.Status)
	assert.Equal(t, originalID, resumed.DagID, "the caller keeps one stable id")

	row, err := st.client.Dag.Get(ctx, originalID)
	require.NoError(t, err)
	assert.Equal(t, entdag.StatusSuccess, row.Status)

	stored, err := plan.FromMap(row.Result)
	require.NoError(t, err)
	assert.Contains(t, stored.OriginalRequest, "Email me the weekly report")
	assert.Contains(t, stored.OriginalRequest, "User clarification: ada@example.com")
	require.Len(t, stored.SubTasks, 3)

	count, err := st.client.Dag.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "the scratch row is consumed by the transfer")

	// The clarified plan is executable like any other.
	created, err := st.executor.Execute(ctx, originalID, nil)
	require.NoError(t, err)
	done := waitForStatus(t, st.client, created.ID, dagexecution.StatusCompleted)
	assert.Equal(t, 3, done.CompletedTasks)
	require.NotNil(t, done.FinalResult)
	assert.Equal(t, "# Weekly report", *done.FinalResult)
}
