package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func noteSchema() *Schema {
	return &Schema{
		Name:        "wellness-note",
		Description: "A short personal wellness note",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline": map[string]any{"type": "string"},
				"body":     map[string]any{"type": "string"},
				"practices": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required":             []any{"headline", "body"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Steady the breath","body":"Vata runs high today.","practices":["Anulom Vilom"]}`)
	if err := validateResponse(noteSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"headline":"Steady the breath"}`)
	err := validateResponse(noteSchema(), raw)
	if err == nil {
		t.Fatal("expected error")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_AdditionalProperty(t *testing.T) {
	raw := json.RawMessage(`{"headline":"h","body":"b","extra":true}`)
	err := validateResponse(noteSchema(), raw)
	if err == nil {
		t.Fatal("expected error for additional property")
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"headline":42,"body":"b"}`)
	err := validateResponse(noteSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	raw := json.RawMessage(`not json`)
	err := validateResponse(noteSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if string(inv.Content) != "not json" {
		t.Errorf("Content = %q, want the raw input", inv.Content)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema must not validate: %v", err)
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	raw := json.RawMessage(`{"headline":"h","body":"b"}`)
	if err := validateResponse(noteSchema(), raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load("wellness-note"); !ok {
		t.Error("expected compiled schema in cache")
	}
	if err := validateResponse(noteSchema(), raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
