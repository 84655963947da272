package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/taskdag/taskdag/ent"
	"github.com/taskdag/taskdag/ent/agent"
	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/models"
)

const (
	agentCacheSize = 50
	agentCacheTTL  = time.Minute
)

// AgentService manages versioned agent personas. Active-version lookups go
// through a small TTL cache; every write that can change which version is
// active drops the cached entry for that name.
type AgentService struct {
	client *ent.Client
	cache  *expirable.LRU[string, *ent.Agent]
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{
		client: client,
		cache:  expirable.NewLRU[string, *ent.Agent](agentCacheSize, nil, agentCacheTTL),
	}
}

// CreateAgent registers the next version for a name, optionally activating
// it in the same transaction.
func (s *AgentService) CreateAgent(ctx context.Context, req models.CreateAgentRequest) (*ent.Agent, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.PromptTemplate == "" {
		return nil, NewValidationError("prompt_template", "required")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	created, err := createAgentVersion(writeCtx, tx, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit agent: %w", err)
	}

	s.cache.Remove(req.Name)
	return created, nil
}

// createAgentVersion inserts the next version for req.Name inside tx,
// flipping the previous active version off first when req.Activate is set.
func createAgentVersion(ctx context.Context, tx *ent.Tx, req models.CreateAgentRequest) (*ent.Agent, error) {
	version := 1
	latest, err := tx.Agent.Query().
		Where(agent.NameEQ(req.Name)).
		Order(ent.Desc(agent.FieldVersion)).
		First(ctx)
	switch {
	case err == nil:
		version = latest.Version + 1
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to query latest agent version: %w", err)
	}

	if req.Activate {
		if err := deactivateAgentVersions(ctx, tx, req.Name); err != nil {
			return nil, err
		}
	}

	builder := tx.Agent.Create().
		SetID("agent_" + uuid.New().String()).
		SetName(req.Name).
		SetVersion(version).
		SetPromptTemplate(req.PromptTemplate).
		SetActive(req.Activate)
	if req.Provider != "" {
		builder.SetProvider(req.Provider)
	}
	if req.Model != "" {
		builder.SetModel(req.Model)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return created, nil
}

// deactivateAgentVersions flips every active version for a name off.
func deactivateAgentVersions(ctx context.Context, tx *ent.Tx, name string) error {
	_, err := tx.Agent.Update().
		Where(agent.NameEQ(name), agent.Active(true)).
		SetActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate previous agent version: %w", err)
	}
	return nil
}

// GetAgent retrieves an agent version by id.
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// GetActiveAgent resolves the active version for a name through the cache.
func (s *AgentService) GetActiveAgent(ctx context.Context, name string) (*ent.Agent, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if cached, ok := s.cache.Get(name); ok {
		return cached, nil
	}

	active, err := s.client.Agent.Query().
		Where(agent.NameEQ(name), agent.Active(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve active agent: %w", err)
	}

	s.cache.Add(name, active)
	return active, nil
}

// ListAgents lists agent versions, newest version first within a name.
func (s *AgentService) ListAgents(ctx context.Context, filters models.AgentFilters) ([]*ent.Agent, error) {
	query := s.client.Agent.Query()
	if filters.Name != "" {
		query = query.Where(agent.NameEQ(filters.Name))
	}
	if filters.ActiveOnly {
		query = query.Where(agent.Active(true))
	}

	agents, err := query.
		Order(ent.Asc(agent.FieldName), ent.Desc(agent.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

// UpdateAgent edits an agent version in place.
func (s *AgentService) UpdateAgent(ctx context.Context, agentID string, req models.UpdateAgentRequest) (*ent.Agent, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	current, err := s.client.Agent.Get(writeCtx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	update := s.client.Agent.UpdateOneID(agentID)
	if req.PromptTemplate != nil {
		if *req.PromptTemplate == "" {
			return nil, NewValidationError("prompt_template", "must not be empty")
		}
		update.SetPromptTemplate(*req.PromptTemplate)
	}
	if req.Provider != nil {
		update.SetProvider(*req.Provider)
	}
	if req.Model != nil {
		update.SetModel(*req.Model)
	}
	if req.Metadata != nil {
		update.SetMetadata(req.Metadata)
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}

	if current.Active {
		s.cache.Remove(current.Name)
	}
	return updated, nil
}

// ActivateAgent makes the version the active one for its name, flipping the
// previous active version off in the same transaction.
func (s *AgentService) ActivateAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	target, err := tx.Agent.Get(writeCtx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if target.Active {
		return target, nil
	}

	if err := deactivateAgentVersions(writeCtx, tx, target.Name); err != nil {
		return nil, err
	}

	updated, err := tx.Agent.UpdateOne(target).
		SetActive(true).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to activate agent: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit activation: %w", err)
	}

	s.cache.Remove(target.Name)
	return updated, nil
}

// DeleteAgent removes an inactive agent version. The active version is
// refused so a name never loses its resolvable persona by accident.
func (s *AgentService) DeleteAgent(ctx context.Context, agentID string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	target, err := s.client.Agent.Get(writeCtx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get agent: %w", err)
	}
	if target.Active {
		return fmt.Errorf("%w: agent %q version %d is active; activate another version first",
			ErrInvalidInput, target.Name, target.Version)
	}

	if err := s.client.Agent.DeleteOneID(agentID).Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// Seed applies the configured agent definitions at startup. A new version
// is inserted only when the template, provider or model differs from the
// latest stored version; an unchanged seed at most activates the latest
// version when the name has no active one.
func (s *AgentService) Seed(ctx context.Context, seeds []config.AgentSeedConfig) error {
	for _, seed := range seeds {
		if err := s.seedOne(ctx, seed); err != nil {
			return fmt.Errorf("failed to seed agent %q: %w", seed.Name, err)
		}
	}
	return nil
}

func (s *AgentService) seedOne(ctx context.Context, seed config.AgentSeedConfig) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	req := models.CreateAgentRequest{
		Name:           seed.Name,
		PromptTemplate: seed.PromptTemplate,
		Provider:       seed.Provider,
		Model:          seed.Model,
		Metadata:       seed.Metadata,
		Activate:       seed.Activate,
	}

	latest, err := tx.Agent.Query().
		Where(agent.NameEQ(seed.Name)).
		Order(ent.Desc(agent.FieldVersion)).
		First(writeCtx)
	switch {
	case ent.IsNotFound(err):
		// First sight of this name; the first version always activates.
		req.Activate = true
		if _, err := createAgentVersion(writeCtx, tx, req); err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("failed to query latest agent version: %w", err)
	case latest.PromptTemplate != seed.PromptTemplate ||
		latest.Provider != seed.Provider ||
		latest.Model != seed.Model:
		if _, err := createAgentVersion(writeCtx, tx, req); err != nil {
			return err
		}
	default:
		// Unchanged content. An operator may have pinned an older version
		// on purpose, so only activate when nothing is active at all.
		if seed.Activate {
			hasActive, err := tx.Agent.Query().
				Where(agent.NameEQ(seed.Name), agent.Active(true)).
				Exist(writeCtx)
			if err != nil {
				return fmt.Errorf("failed to query active agent version: %w", err)
			}
			if !hasActive {
				if _, err := tx.Agent.UpdateOne(latest).SetActive(true).Save(writeCtx); err != nil {
					return fmt.Errorf("failed to activate latest agent version: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	s.cache.Remove(seed.Name)
	return nil
}
