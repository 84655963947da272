package e2e

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entdag "github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/substep"
	"github.com/taskdag/taskdag/pkg/events"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/plan"
	"github.com/taskdag/taskdag/pkg/tools"
)

// Three tool tasks: collect first, then analyze and format in parallel
// on its output.
const fanOutPlanJSON = `{
  "intent": {"primary": "report on signups"},
  "synthesis_plan": "Fold the analysis and the formatted table into one report.",
  "validation": {"coverage": "high"},
  "sub_tasks": [
    {
      "id": "collect",
      "description": "Collect the raw signup numbers",
      "action_type": "tool",
      "tool_or_prompt": {"name": "collectStub", "params": {}},
      "dependencies": ["none"]
    },
    {
      "id": "analyze",
      "description": "Analyze the signup trend",
      "action_type": "tool",
      "tool_or_prompt": {"name": "analyzeStub", "params": {}},
      "dependencies": ["collect"]
    },
    {
      "id": "format",
      "description": "Format the numbers as a table",
      "action_type": "tool",
      "tool_or_prompt": {"name": "formatStub", "params": {}},
      "dependencies": ["collect"]
    }
  ]
}`

func TestGoalPlansAndRunsToCompletion(t *testing.T) {
	ctx := context.Background()

	collect, entered, release := gatedTool("collectStub", "raw numbers")
	analyze := okTool("analyzeStub", "trend: up")
	format := okTool("formatStub", "| week | signups |")

	planning := llm.NewScriptedClient(planResponse(fenced(fanOutPlanJSON)))
	st := newStack(t, newRegistry(t, collect, analyze, format), routedFactory(planning, "# Signups report"))

	result, err := st.planner.CreateFromGoal(ctx, models.PlanningRequest{
		GoalText: "Report on this week's signups",
	})
	require.NoError(t, err)
	require.Equal(t, models.PlanningStatusSuccess, result.Status)

	dagRow, err := st.client.Dag.Get(ctx, result.DagID)
	require.NoError(t, err)
	assert.Equal(t, entdag.StatusSuccess, dagRow.Status)

	created, err := st.executor.Execute(ctx, result.DagID, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, created.TotalTasks)

	// Subscribe while the first wave is gated, then let the run finish.
	<-entered
	streamCtx, cancelStream := context.WithTimeout(ctx, 15*time.Second)
	defer cancelStream()
	stream := st.bus.Stream(streamCtx, created.ID)
	close(release)

	var got []events.Event
	for evt := range stream {
		got = append(got, evt)
	}
	require.GreaterOrEqual(t, len(got), 10)

	// The subscription started mid-wave; from the first task's completion
	// onward the order is fixed, except that the second wave's two tasks
	// run concurrently and may interleave their started/completed pairs.
	assert.Equal(t, events.EventTypeTaskCompleted, got[0].Type)
	assert.Equal(t, "001", got[0].Data["task_id"])
	assert.Equal(t, events.EventTypeWaveCompleted, got[1].Type)
	assert.Equal(t, events.EventTypeWaveStarted, got[2].Type)

	middle := got[3 : len(got)-4]
	started, completed := 0, 0
	for _, evt := range middle {
		switch evt.Type {
		case events.EventTypeTaskStarted:
			started++
		case events.EventTypeTaskCompleted:
			completed++
		default:
			t.Fatalf("unexpected %s inside the second wave", evt.Type)
		}
	}
	assert.Equal(t, 2, started)
	assert.Equal(t, 2, completed)

	tail := got[len(got)-4:]
	assert.Equal(t, events.EventTypeWaveCompleted, tail[0].Type)
	assert.Equal(t, events.EventTypeSynthesisStarted, tail[1].Type)
	assert.Equal(t, events.EventTypeSynthesisCompleted, tail[2].Type)
	assert.Equal(t, events.EventTypeExecutionCompleted, tail[3].Type)
	assert.Equal(t, "completed", tail[3].Data["status"])

	row := waitForStatus(t, st.client, created.ID, dagexecution.StatusCompleted)
	assert.Equal(t, 3, row.CompletedTasks)
	assert.Zero(t, row.FailedTasks)
	require.NotNil(t, row.FinalResult)
	assert.Equal(t, "# Signups report", *row.FinalResult)

	assert.Equal(t, 1, collect.callCount())
	assert.Equal(t, 1, analyze.callCount())
	assert.Equal(t, 1, format.callCount())
}

func TestFailingTaskSuspendsTheRun(t *testing.T) {
	ctx := context.Background()

	steady := okTool("steadyStub", "fine")
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	boom := &stubTool{name: "boomStub", run: func(_ context.Context, _ map[string]interface{}, _ *tools.ExecContext) (interface{}, error) {
		once.Do(func() { close(entered) })
		<-release
		return nil, errors.New("quota exceeded")
	}}

	const mixedPlanJSON = `{
  "intent": {"primary": "mixed outcome"},
  "validation": {"coverage": "high"},
  "sub_tasks": [
    {
      "id": "steady",
      "description": "The task that works",
      "action_type": "tool",
      "tool_or_prompt": {"name": "steadyStub", "params": {}},
      "dependencies": ["none"]
    },
    {
      "id": "boom",
      "description": "The task that does not",
      "action_type": "tool",
      "tool_or_prompt": {"name": "boomStub", "params": {}},
      "dependencies": ["none"]
    }
  ]
}`
	planning := llm.NewScriptedClient(planResponse(fenced(mixedPlanJSON)))
	st := newStack(t, newRegistry(t, steady, boom), routedFactory(planning, "unused"))

	result, err := st.planner.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "Mixed outcome"})
	require.NoError(t, err)
	require.Equal(t, models.PlanningStatusSuccess, result.Status)

	created, err := st.executor.Execute(ctx, result.DagID, nil)
	require.NoError(t, err)

	<-entered
	streamCtx, cancelStream := context.WithTimeout(ctx, 15*time.Second)
	defer cancelStream()
	stream := st.bus.Stream(streamCtx, created.ID)
	close(release)

	types := collectTypes(stream)
	require.NotEmpty(t, types)
	assert.Contains(t, types, events.EventTypeTaskFailed)
	assert.Equal(t, events.EventTypeExecutionSuspended, types[len(types)-1],
		"a task failure ends the stream with a suspension, not a completion")

	row := waitForStatus(t, st.client, created.ID, dagexecution.StatusSuspended)
	require.NotNil(t, row.SuspendedReason)
	assert.Contains(t, *row.SuspendedReason, "task 002 failed")
	assert.Contains(t, *row.SuspendedReason, "quota exceeded")
	assert.Equal(t, 1, row.CompletedTasks, "the sibling's success is kept")
	assert.Equal(t, 1, row.FailedTasks)

	failed, err := st.client.SubStep.Query().
		Where(substep.ExecutionIDEQ(created.ID), substep.TaskIDEQ("002")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, substep.StatusFailed, failed.Status)
	require.NotNil(t, failed.Error)
	assert.Equal(t, "quota exceeded", *failed.Error)
}

func TestPlanTaskIDsRenumberDeterministically(t *testing.T) {
	ctx := context.Background()

	// Free-form LLM ids, including a near-duplicate.
	const freeformPlanJSON = `{
  "intent": {"primary": "renumbering"},
  "validation": {"coverage": "high"},
  "sub_tasks": [
    {
      "id": "task_a",
      "description": "First",
      "action_type": "tool",
      "tool_or_prompt": {"name": "collectStub", "params": {}},
      "dependencies": ["none"]
    },
    {
      "id": "task_b",
      "description": "Second",
      "action_type": "tool",
      "tool_or_prompt": {"name": "collectStub", "params": {}},
      "dependencies": ["task_a"]
    },
    {
      "id": "task_a_2",
      "description": "Third",
      "action_type": "tool",
      "tool_or_prompt": {"name": "collectStub", "params": {}},
      "dependencies": ["none"]
    }
  ]
}`
	planning := llm.NewScriptedClient(planResponse(fenced(freeformPlanJSON)))
	st := newStack(t, newRegistry(t, okTool("collectStub", "ok")), routedFactory(planning, "unused"))

	result, err := st.planner.CreateFromGoal(ctx, models.PlanningRequest{GoalText: "Renumber me"})
	require.NoError(t, err)
	require.Equal(t, models.PlanningStatusSuccess, result.Status)

	row, err := st.client.Dag.Get(ctx, result.DagID)
	require.NoError(t, err)
	stored, err := plan.FromMap(row.Result)
	require.NoError(t, err)

	require.Len(t, stored.SubTasks, 3)
	assert.Equal(t, "001", stored.SubTasks[0].ID)
	assert.Equal(t, "002", stored.SubTasks[1].ID)
	assert.Equal(t, "003", stored.SubTasks[2].ID)
	assert.Equal(t, []string{"001"}, stored.SubTasks[1].Dependencies,
		"dependency references follow the renumbering")
	assert.Equal(t, []string{"none"}, stored.SubTasks[2].Dependencies)
}
