package plan

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/pkg/models"
)

func task(id string, deps ...string) SubTask {
	if len(deps) == 0 {
		deps = []string{"none"}
	}
	return SubTask{
		ID:           id,
		Description:  "task " + id,
		ActionType:   models.ActionTypeTool,
		ToolOrPrompt: ToolOrPrompt{Name: "shell"},
		Dependencies: deps,
	}
}

func TestRenumber(t *testing.T) {
	t.Run("rewrites ids and dependencies in first-occurrence order", func(t *testing.T) {
		p := &Plan{SubTasks: []SubTask{
			task("task_a"),
			task("task_b", "task_a"),
			task("task_a_2", "task_a", "task_b"),
		}}
		p.Renumber()

		assert.Equal(t, "001", p.SubTasks[0].ID)
		assert.Equal(t, "002", p.SubTasks[1].ID)
		assert.Equal(t, "003", p.SubTasks[2].ID)
		assert.Equal(t, []string{"001"}, p.SubTasks[1].Dependencies)
		assert.Equal(t, []string{"001", "002"}, p.SubTasks[2].Dependencies)
	})

	t.Run("preserves the none marker", func(t *testing.T) {
		p := &Plan{SubTasks: []SubTask{task("root")}}
		p.Renumber()
		assert.Equal(t, []string{"none"}, p.SubTasks[0].Dependencies)
	})

	t.Run("is idempotent", func(t *testing.T) {
		p := &Plan{SubTasks: []SubTask{
			task("x"),
			task("y", "x"),
		}}
		p.Renumber()
		first := append([]SubTask(nil), p.SubTasks...)
		p.Renumber()
		assert.Equal(t, first, p.SubTasks)
	})

	t.Run("empty plan is a no-op", func(t *testing.T) {
		p := &Plan{}
		p.Renumber()
		assert.Empty(t, p.SubTasks)
	})

	t.Run("ids form a contiguous zero-padded sequence", func(t *testing.T) {
		p := &Plan{SubTasks: []SubTask{
			task("alpha"),
			task("beta", "alpha"),
			task("gamma", "beta"),
			task("delta", "alpha", "gamma"),
		}}
		p.Renumber()

		seen := make(map[string]bool)
		for i, st := range p.SubTasks {
			assert.Equal(t, fmt.Sprintf("%03d", i+1), st.ID)
			seen[st.ID] = true
		}
		for _, st := range p.SubTasks {
			for _, dep := range st.RealDependencies() {
				assert.True(t, seen[dep], "dependency %q must reference a renumbered id", dep)
			}
		}
		require.NoError(t, p.ValidateReferences())
	})
}

func TestSubstituteRuntimeTokens(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	p := &Plan{
		Intent:     Intent{Primary: "reporting"},
		Validation: Validation{Coverage: models.CoverageHigh},
		SubTasks: []SubTask{
			{
				ID:          "001",
				Description: "Write the report for {{currentDate}}",
				ActionType:  models.ActionTypeTool,
				ToolOrPrompt: ToolOrPrompt{
					Name: "writeFile",
					Params: map[string]interface{}{
						"path":    "report-{{Today}}.md",
						"content": "as of {{currentDate}}",
					},
				},
				Dependencies: []string{"none"},
			},
		},
	}

	out, err := SubstituteRuntimeTokens(p, now)
	require.NoError(t, err)

	assert.Equal(t, "Write the report for 2026-03-14", out.SubTasks[0].Description)
	assert.Equal(t, "report-2026-03-14.md", out.SubTasks[0].ToolOrPrompt.Params["path"])
	assert.Equal(t, "as of 2026-03-14", out.SubTasks[0].ToolOrPrompt.Params["content"])

	// The input plan is untouched.
	assert.Contains(t, p.SubTasks[0].Description, "{{currentDate}}")
}
