package config

// Builtin agent names. The planner requires an active task-decomposer;
// the title-master is optional and only used for naming scheduled DAGs.
const (
	BuiltinPlannerAgentName = "task-decomposer"
	BuiltinTitleAgentName   = "title-master"
)

// builtinPlannerTemplate is the default task decomposition prompt.
// {{tools}} is replaced with the rendered tool catalog and
// {{currentDate}} with the current UTC date at planning time.
const builtinPlannerTemplate = `You are an expert task decomposition engine. Today's date is {{currentDate}}.

Given a natural language goal, produce a directed acyclic graph of sub-tasks
that together accomplish the goal. You have the following tools available:

{{tools}}

Respond with a single JSON object and nothing else:
{
  "intent": "<one sentence restating the user's primary intent>",
  "entities": ["<concrete entities referenced by the goal>"],
  "validation": {
    "coverage": "<high|medium|low>",
    "gaps": ["<aspects of the goal the plan does not cover>"]
  },
  "clarification_needed": <true when the goal is too ambiguous to plan>,
  "clarification_query": "<single question to ask the user, when needed>",
  "synthesis_plan": "<how the final answer should be assembled from task results>",
  "sub_tasks": [
    {
      "id": "<unique task id>",
      "description": "<imperative description of the work>",
      "thought": "<why this task is needed>",
      "action_type": "<tool|inference>",
      "tool_or_prompt": {
        "name": "<tool name, or a short label for inference tasks>",
        "params": { "<tool parameters, may reference earlier results>" : "" }
      },
      "expected_output": "<what a successful result looks like>",
      "dependencies": ["<ids of tasks that must finish first, or \"none\">"]
    }
  ]
}

Rules:
- Every tool task must name one of the tools listed above and supply its
  required parameters.
- Reference an earlier task's output inside a parameter value by writing
  <Result from Task N> where N is the dependency's task id.
- Dependencies must form a DAG. Use ["none"] for root tasks.
- Prefer the smallest plan that fully covers the goal. Report anything the
  plan cannot cover in validation.gaps rather than inventing tasks.
- When the goal is too vague to decompose, set clarification_needed to true
  and ask exactly one clarifying question.`

// builtinTitleTemplate is the default DAG title generation prompt.
const builtinTitleTemplate = `You generate short display titles for automation workflows. Today's date is {{currentDate}}.

Given the user's goal, reply with a title of at most 8 words that captures
what the workflow does. Use plain title case. Do not wrap the title in
quotes, do not add punctuation at the end, and do not explain your choice.
Reply with the title text only.`

// BuiltinAgents returns the agent definitions seeded at startup.
func BuiltinAgents() []AgentSeedConfig {
	return []AgentSeedConfig{
		{
			Name:           BuiltinPlannerAgentName,
			PromptTemplate: builtinPlannerTemplate,
			Activate:       true,
			Metadata:       map[string]interface{}{"builtin": true},
		},
		{
			Name:           BuiltinTitleAgentName,
			PromptTemplate: builtinTitleTemplate,
			Activate:       true,
			Metadata:       map[string]interface{}{"builtin": true},
		},
	}
}

// BuiltinMaskingPatterns returns the default masking patterns applied to
// tool and LLM output before persistence.
func BuiltinMaskingPatterns() []MaskingPattern {
	return []MaskingPattern{
		{
			Name:        "api_key",
			Pattern:     `(?i)(api[_-]?key|apikey)["':\s=]+[A-Za-z0-9_\-]{16,}`,
			Replacement: "***MASKED_API_KEY***",
		},
		{
			Name:        "bearer_token",
			Pattern:     `(?i)bearer\s+[A-Za-z0-9_\-\.=]{16,}`,
			Replacement: "***MASKED_TOKEN***",
		},
		{
			Name:        "password",
			Pattern:     `(?i)(password|passwd)["':\s=]+\S+`,
			Replacement: "***MASKED_PASSWORD***",
		},
		{
			Name:        "secret",
			Pattern:     `(?i)(secret|private[_-]?key)["':\s=]+\S+`,
			Replacement: "***MASKED_SECRET***",
		},
		{
			Name:        "aws_access_key",
			Pattern:     `AKIA[0-9A-Z]{16}`,
			Replacement: "***MASKED_AWS_KEY***",
		},
	}
}

// DefaultLLMConfig returns a provider registry used when no
// llm-providers.yaml is supplied.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		DefaultProvider: "openai",
		Providers: map[string]LLMProviderConfig{
			"openai": {
				Type:           LLMProviderTypeOpenAI,
				Model:          "gpt-4o-mini",
				APIKeyEnv:      "OPENAI_API_KEY",
				TimeoutSeconds: 60,
			},
		},
	}
}
