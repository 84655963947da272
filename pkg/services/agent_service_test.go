package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent/agent"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/models"
	testdb "github.com/taskdag/taskdag/test/database"
)

func TestAgentService_CreateAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("creates first version", func(t *testing.T) {
		created, err := service.CreateAgent(ctx, models.CreateAgentRequest{
			Name:           "decomposer",
			PromptTemplate: "Break the request into tasks. Tools: {{tools}}",
			Provider:       "openai",
			Model:          "gpt-4o",
			Activate:       true,
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "decomposer", created.Name)
		assert.Equal(t, 1, created.Version)
		assert.True(t, created.Active)
		assert.Equal(t, "openai", created.Provider)
		assert.Equal(t, "gpt-4o", created.Model)
	})

	t.Run("assigns the next version and moves activation", func(t *testing.T) {
		v2, err := service.CreateAgent(ctx, models.CreateAgentRequest{
			Name:           "decomposer",
			PromptTemplate: "Break the request into tasks, v2.",
			Activate:       true,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, v2.Version)
		assert.True(t, v2.Active)

		active, err := client.Agent.Query().
			Where(agent.NameEQ("decomposer"), agent.Active(true)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1, "only one version may be active per name")
		assert.Equal(t, 2, active[0].Version)
	})

	t.Run("inactive version leaves the active one alone", func(t *testing.T) {
		v3, err := service.CreateAgent(ctx, models.CreateAgentRequest{
			Name:           "decomposer",
			PromptTemplate: "Break the request into tasks, v3 draft.",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, v3.Version)
		assert.False(t, v3.Active)

		resolved, err := service.GetActiveAgent(ctx, "decomposer")
		require.NoError(t, err)
		assert.Equal(t, 2, resolved.Version)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateAgentRequest
		}{
			{name: "missing name", req: models.CreateAgentRequest{PromptTemplate: "x"}},
			{name: "missing prompt_template", req: models.CreateAgentRequest{Name: "x"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateAgent(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestAgentService_GetActiveAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("returns ErrNotFound when no version is active", func(t *testing.T) {
		_, err := service.GetActiveAgent(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("resolves the active version and survives activation changes", func(t *testing.T) {
		v1, err := service.CreateAgent(ctx, models.CreateAgentRequest{
			Name:           "title-master",
			PromptTemplate: "Write a short title.",
			Activate:       true,
		})
		require.NoError(t, err)

		// Prime the cache.
		resolved, err := service.GetActiveAgent(ctx, "title-master")
		require.NoError(t, err)
		assert.Equal(t, v1.ID, resolved.ID)

		v2, err := service.CreateAgent(ctx, models.CreateAgentRequest{
			Name:           "title-master",
			PromptTemplate: "Write a very short title.",
			Activate:       true,
		})
		require.NoError(t, err)

		// The new version must be visible immediately, not after TTL expiry.
		resolved, err = service.GetActiveAgent(ctx, "title-master")
		require.NoError(t, err)
		assert.Equal(t, v2.ID, resolved.ID)
		assert.Equal(t, 2, resolved.Version)
	})

	t.Run("validates name", func(t *testing.T) {
		_, err := service.GetActiveAgent(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAgentService_ActivateAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	v1, err := service.CreateAgent(ctx, models.CreateAgentRequest{
		Name:           "researcher",
		PromptTemplate: "Research the topic.",
		Activate:       true,
	})
	require.NoError(t, err)

	v2, err := service.CreateAgent(ctx, models.CreateAgentRequest{
		Name:           "researcher",
		PromptTemplate: "Research the topic thoroughly.",
	})
	require.NoError(t, err)
	require.False(t, v2.Active)

	t.Run("flips activation to the target version", func(t *testing.T) {
		activated, err := service.ActivateAgent(ctx, v2.ID)
		require.NoError(t, err)
		assert.True(t, activated.Active)

		former, err := client.Agent.Get(ctx, v1.ID)
		require.NoError(t, err)
		assert.False(t, former.Active, "previous active version should be flipped off")

		resolved, err := service.GetActiveAgent(ctx, "researcher")
		require.NoError(t, err)
		assert.Equal(t, v2.ID, resolved.ID)
	})

	t.Run("activating the active version is a no-op", func(t *testing.T) {
		again, err := service.ActivateAgent(ctx, v2.ID)
		require.NoError(t, err)
		assert.True(t, again.Active)
	})

	t.Run("returns ErrNotFound for missing version", func(t *testing.T) {
		_, err := service.ActivateAgent(ctx, "agent_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_UpdateAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	created, err := service.CreateAgent(ctx, models.CreateAgentRequest{
		Name:           "summarizer",
		PromptTemplate: "Summarize.",
		Activate:       true,
	})
	require.NoError(t, err)

	t.Run("edits fields in place", func(t *testing.T) {
		template := "Summarize in three sentences."
		model := "gpt-4o-mini"
		updated, err := service.UpdateAgent(ctx, created.ID, models.UpdateAgentRequest{
			PromptTemplate: &template,
			Model:          &model,
		})
		require.NoError(t, err)
		assert.Equal(t, template, updated.PromptTemplate)
		assert.Equal(t, model, updated.Model)
		assert.Equal(t, created.Version, updated.Version, "in-place edit must not bump the version")
	})

	t.Run("rejects empty prompt template", func(t *testing.T) {
		empty := ""
		_, err := service.UpdateAgent(ctx, created.ID, models.UpdateAgentRequest{
			PromptTemplate: &empty,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing version", func(t *testing.T) {
		_, err := service.UpdateAgent(ctx, "agent_missing", models.UpdateAgentRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_DeleteAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	v1, err := service.CreateAgent(ctx, models.CreateAgentRequest{
		Name:           "writer",
		PromptTemplate: "Write.",
		Activate:       true,
	})
	require.NoError(t, err)
	v2, err := service.CreateAgent(ctx, models.CreateAgentRequest{
		Name:           "writer",
		PromptTemplate: "Write well.",
	})
	require.NoError(t, err)

	t.Run("refuses the active version", func(t *testing.T) {
		err := service.DeleteAgent(ctx, v1.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "active")
	})

	t.Run("deletes an inactive version", func(t *testing.T) {
		require.NoError(t, service.DeleteAgent(ctx, v2.ID))

		_, err := service.GetAgent(ctx, v2.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns ErrNotFound for missing version", func(t *testing.T) {
		err := service.DeleteAgent(ctx, "agent_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_Seed(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	seeds := []config.AgentSeedConfig{
		{Name: "decomposer", PromptTemplate: "Decompose. {{tools}}", Activate: true},
		{Name: "title-master", PromptTemplate: "Title it."},
	}

	t.Run("first seeding activates every name", func(t *testing.T) {
		require.NoError(t, service.Seed(ctx, seeds))

		for _, name := range []string{"decomposer", "title-master"} {
			active, err := service.GetActiveAgent(ctx, name)
			require.NoError(t, err, "agent %s should resolve after seeding", name)
			assert.Equal(t, 1, active.Version)
		}
	})

	t.Run("re-seeding unchanged content inserts nothing", func(t *testing.T) {
		require.NoError(t, service.Seed(ctx, seeds))

		all, err := service.ListAgents(ctx, models.AgentFilters{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("changed template inserts the next version", func(t *testing.T) {
		changed := []config.AgentSeedConfig{
			{Name: "decomposer", PromptTemplate: "Decompose carefully. {{tools}}", Activate: true},
		}
		require.NoError(t, service.Seed(ctx, changed))

		versions, err := service.ListAgents(ctx, models.AgentFilters{Name: "decomposer"})
		require.NoError(t, err)
		require.Len(t, versions, 2)

		active, err := service.GetActiveAgent(ctx, "decomposer")
		require.NoError(t, err)
		assert.Equal(t, 2, active.Version)
	})

	t.Run("changed template without activate keeps the pinned version", func(t *testing.T) {
		changed := []config.AgentSeedConfig{
			{Name: "title-master", PromptTemplate: "Title it briefly."},
		}
		require.NoError(t, service.Seed(ctx, changed))

		versions, err := service.ListAgents(ctx, models.AgentFilters{Name: "title-master"})
		require.NoError(t, err)
		require.Len(t, versions, 2)

		active, err := service.GetActiveAgent(ctx, "title-master")
		require.NoError(t, err)
		assert.Equal(t, 1, active.Version, "v1 stays active until an operator or seed activates v2")
	})
}

func TestAgentService_ListAgents(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client)
	ctx := context.Background()

	for _, req := range []models.CreateAgentRequest{
		{Name: "alpha", PromptTemplate: "a1", Activate: true},
		{Name: "alpha", PromptTemplate: "a2"},
		{Name: "beta", PromptTemplate: "b1", Activate: true},
	} {
		_, err := service.CreateAgent(ctx, req)
		require.NoError(t, err)
	}

	t.Run("lists all versions grouped by name", func(t *testing.T) {
		all, err := service.ListAgents(ctx, models.AgentFilters{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "alpha", all[0].Name)
		assert.Equal(t, 2, all[0].Version, "newest version first within a name")
	})

	t.Run("filters by name", func(t *testing.T) {
		alphas, err := service.ListAgents(ctx, models.AgentFilters{Name: "alpha"})
		require.NoError(t, err)
		assert.Len(t, alphas, 2)
	})

	t.Run("filters to active versions", func(t *testing.T) {
		active, err := service.ListAgents(ctx, models.AgentFilters{ActiveOnly: true})
		require.NoError(t, err)
		require.Len(t, active, 2)
		for _, a := range active {
			assert.True(t, a.Active)
		}
	})
}
