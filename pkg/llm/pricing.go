package llm

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taskdag/taskdag/pkg/config"
	"github.com/taskdag/taskdag/pkg/models"
)

var perMillion = decimal.NewFromInt(1_000_000)

// CostUSD computes the decimal cost string for one call from per-million
// token prices. Returns "" when no pricing is configured for the model so
// callers can tell "free" apart from "unknown".
func CostUSD(pricing config.ModelPricing, usage *models.TokenUsage) (string, error) {
	if usage == nil || (pricing.PromptPer1M == "" && pricing.CompletionPer1M == "") {
		return "", nil
	}
	total := decimal.Zero
	if pricing.PromptPer1M != "" {
		p, err := decimal.NewFromString(pricing.PromptPer1M)
		if err != nil {
			return "", fmt.Errorf("invalid prompt price %q: %w", pricing.PromptPer1M, err)
		}
		total = total.Add(p.Mul(decimal.NewFromInt(int64(usage.PromptTokens))).Div(perMillion))
	}
	if pricing.CompletionPer1M != "" {
		p, err := decimal.NewFromString(pricing.CompletionPer1M)
		if err != nil {
			return "", fmt.Errorf("invalid completion price %q: %w", pricing.CompletionPer1M, err)
		}
		total = total.Add(p.Mul(decimal.NewFromInt(int64(usage.CompletionTokens))).Div(perMillion))
	}
	return total.String(), nil
}

// SumCostUSD adds decimal cost strings, skipping empties. Returns "" when
// no input carried a cost so aggregates can stay null.
func SumCostUSD(costs []string) (string, error) {
	total := decimal.Zero
	seen := false
	for _, c := range costs {
		if c == "" {
			continue
		}
		d, err := decimal.NewFromString(c)
		if err != nil {
			return "", fmt.Errorf("invalid cost string %q: %w", c, err)
		}
		total = total.Add(d)
		seen = true
	}
	if !seen {
		return "", nil
	}
	return total.String(), nil
}
