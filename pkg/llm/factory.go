package llm

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/taskdag/taskdag/pkg/config"
)

// ClientOptions selects and parameterizes a provider client. Options are
// part of the cache key because a constructed client binds them.
type ClientOptions struct {
	Provider  string // empty means the configured default
	Model     string // empty means the provider's default model
	MaxTokens int
	SkipStats bool
}

type cacheKey struct {
	provider  string
	model     string
	maxTokens int
	skipStats bool
}

// Factory constructs and caches provider clients process-wide. Construction
// is cheap but not free (HTTP transport, gRPC dial), and callers resolve
// clients per task.
type Factory struct {
	cfg    *config.LLMConfig
	logger *slog.Logger

	mu    sync.Mutex
	cache map[cacheKey]Client
}

// NewFactory creates a client factory over the configured providers.
func NewFactory(cfg *config.LLMConfig, logger *slog.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
		cache:  make(map[cacheKey]Client),
	}
}

// Client returns a cached or freshly constructed client for the options.
func (f *Factory) Client(opts ClientOptions) (Client, error) {
	provider := opts.Provider
	if provider == "" {
		provider = f.cfg.DefaultProvider
	}
	providerCfg, ok := f.cfg.Providers[provider]
	if !ok {
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
	model := opts.Model
	if model == "" {
		model = providerCfg.Model
	}

	key := cacheKey{provider: provider, model: model, maxTokens: opts.MaxTokens, skipStats: opts.SkipStats}

	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.cache[key]; ok {
		return c, nil
	}

	resolved := ClientOptions{Provider: provider, Model: model, MaxTokens: opts.MaxTokens, SkipStats: opts.SkipStats}
	var (
		client Client
		err    error
	)
	switch providerCfg.Type {
	case config.LLMProviderTypeOpenAI, config.LLMProviderTypeOpenRouter:
		client, err = NewOpenAIClient(provider, providerCfg, resolved, f.logger)
	case config.LLMProviderTypeGRPC:
		client, err = NewGRPCClient(provider, providerCfg, resolved)
	default:
		err = fmt.Errorf("unsupported LLM provider type %q", providerCfg.Type)
	}
	if err != nil {
		return nil, err
	}

	f.cache[key] = client
	f.logger.Debug("Constructed LLM client", "provider", provider, "model", model)
	return client, nil
}

// Default returns the default provider's client with default options.
func (f *Factory) Default() (Client, error) {
	return f.Client(ClientOptions{})
}
