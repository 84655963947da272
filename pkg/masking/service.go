// Package masking scrubs sensitive data from task results before they
// are persisted or published.
package masking

import (
	"encoding/json"
	"log/slog"
	"regexp"

	"github.com/taskdag/taskdag/pkg/config"
)

// CompiledPattern is a ready-to-apply masking rule.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// Service applies the configured masking patterns. Created once at
// startup; thread-safe and stateless aside from compiled patterns.
type Service struct {
	enabled  bool
	patterns []*CompiledPattern
}

// NewService compiles the configured patterns eagerly. Invalid patterns
// are logged and skipped so one bad rule cannot disable the rest.
func NewService(cfg config.MaskingConfig) *Service {
	s := &Service{enabled: cfg.Enabled}

	for _, p := range cfg.Patterns {
		compiled, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", p.Name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        p.Name,
			Regex:       compiled,
			Replacement: p.Replacement,
		})
	}

	slog.Info("Masking service initialized",
		"enabled", cfg.Enabled,
		"compiled_patterns", len(s.patterns))

	return s
}

// Enabled reports whether masking is active.
func (s *Service) Enabled() bool {
	return s.enabled && len(s.patterns) > 0
}

// Mask replaces every sensitive span in the text.
func (s *Service) Mask(text string) string {
	if !s.Enabled() || text == "" {
		return text
	}
	for _, p := range s.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// MaskRaw masks a raw JSON value while keeping it valid JSON. A pattern
// that swallows JSON syntax (quotes, commas) would otherwise corrupt
// the document; in that case the whole masked text is re-encoded as a
// JSON string so no secret survives.
func (s *Service) MaskRaw(raw json.RawMessage) json.RawMessage {
	if !s.Enabled() || len(raw) == 0 {
		return raw
	}

	masked := s.Mask(string(raw))
	if masked == string(raw) {
		return raw
	}
	if json.Valid([]byte(masked)) {
		return json.RawMessage(masked)
	}

	quoted, err := json.Marshal(masked)
	if err != nil {
		// Marshal of a string cannot fail; keep the compiler honest
		return raw
	}
	return quoted
}
