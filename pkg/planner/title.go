package planner

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/llm"
	"github.com/taskdag/taskdag/pkg/models"
	"github.com/taskdag/taskdag/pkg/plan"
)

// titleMaxTokens bounds the title side-call. Titles are a display nicety
// and the call must stay cheap.
const titleMaxTokens = 100

type titleOutcome struct {
	title   string
	attempt *models.PlanningAttempt
}

// startTitleCall launches the title-master side-call so it overlaps insert
// preparation. The channel always delivers exactly one outcome.
func (p *Planner) startTitleCall(ctx context.Context, goal string) <-chan titleOutcome {
	ch := make(chan titleOutcome, 1)
	go func() {
		ch <- p.generateTitle(ctx, goal)
	}()
	return ch
}

// awaitTitle folds the side-call outcome into the insert data. A failed
// title call leaves the title null and the row still goes in.
func (p *Planner) awaitTitle(ch <-chan titleOutcome, create *models.CreateDagRequest, attempts []models.PlanningAttempt, logger *slog.Logger) []models.PlanningAttempt {
	outcome := <-ch
	if outcome.attempt != nil {
		attempts = append(attempts, *outcome.attempt)
	}
	if outcome.title != "" {
		create.Title = &outcome.title
	} else {
		logger.Debug("No title attached to dag")
	}
	return attempts
}

// generateTitle asks the title-master agent for a short display title.
func (p *Planner) generateTitle(ctx context.Context, goal string) titleOutcome {
	agent, err := p.agents.GetActiveAgent(ctx, config.BuiltinTitleAgentName)
	if err != nil {
		p.logger.Warn("Title agent unavailable, leaving title empty", "error", err)
		return titleOutcome{}
	}
	client, err := p.clients.Client(llm.ClientOptions{
		Provider:  agent.Provider,
		Model:     agent.Model,
		MaxTokens: titleMaxTokens,
		SkipStats: true,
	})
	if err != nil {
		p.logger.Warn("Failed to construct title client, leaving title empty", "error", err)
		return titleOutcome{}
	}

	prompt := strings.ReplaceAll(agent.PromptTemplate, plan.TokenCurrentDate, time.Now().Format("2006-01-02"))

	start := time.Now()
	resp, err := client.Chat(ctx, &llm.ChatRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: prompt},
			{Role: llm.RoleUser, Content: goal},
		},
	})
	if err != nil {
		p.logger.Warn("Title call failed, leaving title empty", "error", err)
		return titleOutcome{attempt: &models.PlanningAttempt{
			Reason:     models.AttemptReasonTitleMaster,
			Error:      err.Error(),
			DurationMs: time.Since(start).Milliseconds(),
		}}
	}

	return titleOutcome{
		title: cleanTitle(resp.Content),
		attempt: &models.PlanningAttempt{
			Reason:     models.AttemptReasonTitleMaster,
			Usage:      resp.Usage,
			CostUsd:    resp.CostUsd,
			DurationMs: time.Since(start).Milliseconds(),
		},
	}
}

// cleanTitle strips the quoting and trailing prose models wrap titles in.
func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
