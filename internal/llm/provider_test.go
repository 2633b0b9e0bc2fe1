package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`)},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	r1, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	r2, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if string(r1.Content) != `{"n":1}` || string(r2.Content) != `{"n":2}` {
		t.Errorf("responses out of order: %s, %s", r1.Content, r2.Content)
	}
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	req := Request{System: "be kind", MaxTokens: 64}
	if _, err := mock.Generate(context.Background(), req); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].System != "be kind" {
		t.Errorf("recorded system = %q", mock.Calls[0].System)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error without an API key")
	}

	cfg.Anthropic.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock needs no key: %v", err)
	}

	cfg.Provider = "nope"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MANASVEDA_LLM_PROVIDER", "gemini")
	t.Setenv("MANASVEDA_GEMINI_API_KEY", "secret")
	t.Setenv("MANASVEDA_GEMINI_MODEL", "gemini-pro")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "secret" || cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("gemini config = %+v", cfg.Gemini)
	}
	// Defaults survive for the rest.
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestDiscoverConfigOrder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	t.Setenv("ANTHROPIC_API_KEY", "a")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini first", cfg.Provider)
	}
}

func TestNewProviderUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "bogus"
	if _, err := NewProvider(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error")
	}
}
