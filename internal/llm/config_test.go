package llm

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Fatalf("default provider should be gemini, got %q", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Fatalf("unexpected retry attempts %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PATHFINDER_LLM_PROVIDER", "openai")
	t.Setenv("PATHFINDER_OPENAI_API_KEY", "sk-test")
	t.Setenv("PATHFINDER_OPENAI_BASE_URL", "https://openrouter.ai/api/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.OpenAI.BaseURL != "https://openrouter.ai/api/v1" {
		t.Fatalf("base url not applied: %q", cfg.OpenAI.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config should validate: %v", err)
	}
}

func TestValidateMissingKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("gemini without a key should not validate")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock needs no key: %v", err)
	}

	cfg.Provider = "watson"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown provider should not validate")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	t.Setenv("ANTHROPIC_API_KEY", "a")

	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("gemini should win discovery, got %+v, %v", cfg, ok)
	}
}
