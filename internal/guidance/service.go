package guidance

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BHARTIYAYASH/manasveda/internal/llm"
)

// Service generates wellness notes asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Note
	err     error
	ready   bool
}

// NewService creates a note generation service. A nil provider is
// allowed; RequestNote then resolves immediately with no note.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

// RequestNote starts async note generation. Only one note is in-flight
// at a time; new requests replace pending ones.
func (s *Service) RequestNote(ctx context.Context, input NoteInput) {
	go func() {
		note, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = note
		s.err = err
		s.ready = true
	}()
}

// ConsumeNote returns the pending result once generation has resolved.
// The second return is false while generation is still in flight; a
// resolved failure yields (nil, true). After consumption, the pending
// slot is cleared.
func (s *Service) ConsumeNote() (*Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	note := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return note, true
}

type noteOutput struct {
	Headline  string   `json:"headline"`
	Body      string   `json:"body"`
	Practices []string `json:"practices"`
}

func (s *Service) generate(ctx context.Context, input NoteInput) (*Note, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}

	ctx = llm.WithPurpose(ctx, "wellness-note")

	req := llm.Request{
		System: noteSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNoteUserMessage(input)},
		},
		Schema:      NoteSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("note generation: %w", err)
	}

	var out noteOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse note response: %w", err)
	}

	return &Note{
		Headline:  out.Headline,
		Body:      out.Body,
		Practices: out.Practices,
	}, nil
}
