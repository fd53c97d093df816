package llm

import (
	"context"
	"fmt"

	"github.com/edupath/pathfinder/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with
// retry and usage-logging middleware. events may be nil, in which case
// no usage log is kept.
func NewProvider(ctx context.Context, cfg Config, events *store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	if events != nil {
		base = WithLogging(base, events)
	}
	return WithRetry(base, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from PATHFINDER_* environment
// variables, falling back to probing the standard API key variables.
func NewProviderFromEnv(ctx context.Context, events *store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, events)
}
