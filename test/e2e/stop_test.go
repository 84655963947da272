package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entdag "github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/stoprequest"
	"github.com/taskdag/taskdag/ent/substep"
	"github.com/taskdag/taskdag/pkg/events"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
)

// A stop can target a dag id that has no row yet: the planner pins the id
// before its first LLM call and probes for stops between attempts.
func TestStopDuringPlanningLeavesNoDag(t *testing.T) {
	ctx := context.Background()
	const dagID = "dag_e2e_stop_planning"

	// First attempt garbled so the planner retries; the stop lands between
	// the attempts.
	planning := llm.NewScriptedClient(
		planResponse("garbled {"),
		planResponse(fenced(fanOutPlanJSON)),
	)
	hooked := &hookClient{inner: planning}
	st := newStack(t, newRegistry(t, okTool("collectStub", "ok")), routedFactory(hooked, "unused"))
	hooked.after = func(call int) {
		if call == 1 {
			_, err := st.stops.RequestStopForDag(ctx, dagID)
			require.NoError(t, err)
		}
	}

	result, err := st.planner.CreateFromGoal(ctx, models.PlanningRequest{
		GoalText: "Report on this week's signups",
		DagID:    dagID,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PlanningStatusFailed, result.Status)
	assert.Empty(t, result.DagID)
	assert.Contains(t, result.Error, "stop")
	assert.Equal(t, 1, planning.CallCount(), "the second attempt never ran")

	exists, err := st.client.Dag.Query().Where(entdag.IDEQ(dagID)).Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "an abandoned plan leaves no row behind")

	stopRow, err := st.client.StopRequest.Query().
		Where(stoprequest.DagIDEQ(dagID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, stoprequest.StatusHandled, stopRow.Status)
}

func TestStopDuringRunParksTheExecution(t *testing.T) {
	ctx := context.Background()

	collect, entered, release := gatedTool("collectStub", "raw numbers")
	analyze := okTool("analyzeStub", "should not run")
	format := okTool("formatStub", "should not run")

	planning := llm.NewScriptedClient(planResponse(fenced(fanOutPlanJSON)))
	st := newStack(t, newRegistry(t, collect, analyze, format), routedFactory(planning, "unused"))

	result, err := st.planner.CreateFromGoal(ctx, models.PlanningRequest{
		GoalText: "Report on this week's signups",
	})
	require.NoError(t, err)
	require.Equal(t, models.PlanningStatusSuccess, result.Status)

	created, err := st.executor.Execute(ctx, result.DagID, nil)
	require.NoError(t, err)

	// Stop while the first wave is in flight, then let it settle.
	<-entered
	_, err = st.stops.RequestStopForExecution(ctx, created.ID)
	require.NoError(t, err)

	streamCtx, cancelStream := context.WithTimeout(ctx, 15*time.Second)
	defer cancelStream()
	stream := st.bus.Stream(streamCtx, created.ID)
	close(release)

	types := collectTypes(stream)
	require.NotEmpty(t, types)
	assert.Equal(t, events.EventTypeExecutionStopped, types[len(types)-1])

	row := waitForStatus(t, st.client, created.ID, dagexecution.StatusPending)
	assert.Nil(t, row.CompletedAt, "a stopped run is not terminal")

	// The in-flight wave finished; the dependent wave never started.
	steps, err := st.client.SubStep.Query().
		Where(substep.ExecutionIDEQ(created.ID)).
		All(ctx)
	require.NoError(t, err)
	byTask := make(map[string]substep.Status, len(steps))
	for _, s := range steps {
		byTask[s.TaskID] = s.Status
	}
	assert.Equal(t, substep.StatusCompleted, byTask["001"])
	assert.Equal(t, substep.StatusPending, byTask["002"])
	assert.Equal(t, substep.StatusPending, byTask["003"])
	assert.Zero(t, analyze.callCount())
	assert.Zero(t, format.callCount())

	stopRow, err := st.client.StopRequest.Query().
		Where(stoprequest.ExecutionIDEQ(created.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, stoprequest.StatusHandled, stopRow.Status)

	// The parked run picks up where it left off.
	_, err = st.executor.Resume(ctx, created.ID, nil)
	require.NoError(t, err)
	resumed := waitForStatus(t, st.client, created.ID, dagexecution.StatusCompleted)
	assert.Equal(t, 3, resumed.CompletedTasks)
	assert.Equal(t, 1, collect.callCount(), "the completed task is not re-executed")
}
