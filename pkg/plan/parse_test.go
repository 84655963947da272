package plan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/pkg/models"
)

const validPlanJSON = `{
	"original_request": "summarize the weekly numbers",
	"intent": {"primary": "reporting", "sub_intents": ["fetch", "summarize"]},
	"entities": ["weekly numbers"],
	"synthesis_plan": "Combine all task outputs into one report.",
	"validation": {"coverage": "high", "gaps": [], "iteration_triggers": []},
	"clarification_needed": false,
	"sub_tasks": [
		{
			"id": "fetch_data",
			"description": "Fetch the raw numbers",
			"thought": "Need the data first",
			"action_type": "tool",
			"tool_or_prompt": {"name": "fetchURLs", "params": {"urls": ["https://example.com/report"]}},
			"expected_output": "raw numbers",
			"dependencies": ["none"]
		},
		{
			"id": "summarize",
			"description": "Summarize the numbers",
			"action_type": "inference",
			"tool_or_prompt": {"name": "inference"},
			"expected_output": "summary",
			"dependencies": ["fetch_data"]
		}
	]
}`

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "prefers json-labelled fence",
			content: "Here is the plan:\n```json\n{\"a\": 1}\n```\nDone.",
			want:    `{"a": 1}`,
		},
		{
			name:    "json fence wins over earlier unlabelled fence",
			content: "```\nnot this\n```\n```json\n{\"a\": 1}\n```",
			want:    `{"a": 1}`,
		},
		{
			name:    "falls back to any fence",
			content: "```\n{\"b\": 2}\n```",
			want:    `{"b": 2}`,
		},
		{
			name:    "falls back to fence with other language tag",
			content: "```javascript\n{\"c\": 3}\n```",
			want:    `{"c": 3}`,
		},
		{
			name:    "falls back to whole body",
			content: "  {\"d\": 4}  ",
			want:    `{"d": 4}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONBlock(tt.content))
		})
	}
}

func TestParseValidPlan(t *testing.T) {
	p, err := Parse(validPlanJSON)
	require.NoError(t, err)

	assert.Equal(t, "reporting", p.Intent.Primary)
	assert.Equal(t, models.CoverageHigh, p.Validation.Coverage)
	require.Len(t, p.SubTasks, 2)
	assert.Equal(t, "fetch_data", p.SubTasks[0].ID)
	assert.True(t, p.SubTasks[0].IsRoot())
	assert.Equal(t, models.ActionTypeTool, p.SubTasks[0].ActionType)
	assert.Equal(t, []string{"fetch_data"}, p.SubTasks[1].RealDependencies())
}

func TestParseErrorKinds(t *testing.T) {
	t.Run("malformed JSON is a ParseError", func(t *testing.T) {
		_, err := Parse(`{"intent": `)
		require.Error(t, err)
		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr), "expected ParseError, got %T", err)
	})

	t.Run("valid JSON with wrong shape is a SchemaError", func(t *testing.T) {
		_, err := Parse(`{"sub_tasks": []}`)
		require.Error(t, err)
		var schemaErr *SchemaError
		assert.True(t, errors.As(err, &schemaErr), "expected SchemaError, got %T", err)
	})

	t.Run("bad coverage value is a SchemaError", func(t *testing.T) {
		_, err := Parse(`{
			"intent": {"primary": "x"},
			"validation": {"coverage": "excellent"},
			"sub_tasks": []
		}`)
		var schemaErr *SchemaError
		assert.True(t, errors.As(err, &schemaErr))
	})

	t.Run("unknown dependency reference is a SchemaError", func(t *testing.T) {
		_, err := Parse(`{
			"intent": {"primary": "x"},
			"validation": {"coverage": "high"},
			"sub_tasks": [{
				"id": "a",
				"description": "d",
				"action_type": "tool",
				"tool_or_prompt": {"name": "shell"},
				"dependencies": ["ghost"]
			}]
		}`)
		require.Error(t, err)
		var schemaErr *SchemaError
		assert.True(t, errors.As(err, &schemaErr))
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("duplicate sub-task ids are rejected", func(t *testing.T) {
		_, err := Parse(`{
			"intent": {"primary": "x"},
			"validation": {"coverage": "high"},
			"sub_tasks": [
				{"id": "a", "description": "d1", "action_type": "tool", "tool_or_prompt": {"name": "shell"}, "dependencies": ["none"]},
				{"id": "a", "description": "d2", "action_type": "tool", "tool_or_prompt": {"name": "shell"}, "dependencies": ["none"]}
			]
		}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})
}

func TestParseClarificationPlan(t *testing.T) {
	// A clarification response carries no sub-tasks.
	p, err := Parse(`{
		"intent": {"primary": "email report"},
		"validation": {"coverage": "low"},
		"clarification_needed": true,
		"clarification_query": "Which recipient?",
		"sub_tasks": []
	}`)
	require.NoError(t, err)
	assert.True(t, p.ClarificationNeeded)
	assert.Equal(t, "Which recipient?", p.ClarificationQuery)
	assert.Empty(t, p.SubTasks)
}

func TestPlanRoundTripThroughStoredShape(t *testing.T) {
	p, err := Parse(validPlanJSON)
	require.NoError(t, err)
	p.Renumber()

	m, err := p.ToMap()
	require.NoError(t, err)

	back, err := FromMap(m)
	require.NoError(t, err)

	require.Len(t, back.SubTasks, 2)
	assert.Equal(t, "001", back.SubTasks[0].ID)
	assert.Equal(t, "002", back.SubTasks[1].ID)
	assert.Equal(t, []string{"001"}, back.SubTasks[1].Dependencies)
	assert.Equal(t, p.Intent, back.Intent)
	assert.Equal(t, p.Validation.Coverage, back.Validation.Coverage)
}
