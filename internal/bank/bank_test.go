package bank

import (
	"errors"
	"testing"
)

func TestSeedContentValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed content invalid: %v", err)
	}
}

func TestRoomsOrderStable(t *testing.T) {
	want := []string{"vichar", "agni", "sharir", "chanchal"}
	got := RoomIDs()
	if len(got) != len(want) {
		t.Fatalf("RoomIDs() returned %d rooms, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i] != id {
			t.Errorf("RoomIDs()[%d] = %q, want %q", i, got[i], id)
		}
	}
}

func TestGetRoom(t *testing.T) {
	r, err := GetRoom("agni")
	if err != nil {
		t.Fatalf("GetRoom(agni): %v", err)
	}
	if r.Name != "Fire Room" {
		t.Errorf("Name = %q, want %q", r.Name, "Fire Room")
	}
	if len(r.Questions) == 0 {
		t.Error("expected questions in room")
	}
}

func TestGetRoomNotFound(t *testing.T) {
	if _, err := GetRoom("nope"); err == nil {
		t.Error("expected error for unknown room")
	}
}

func TestEveryOptionHasWeights(t *testing.T) {
	for _, r := range Rooms() {
		for _, q := range r.Questions {
			for _, opt := range q.Options {
				w, err := OptionWeights(q.ID, opt)
				if err != nil {
					t.Errorf("OptionWeights(%q, %q): %v", q.ID, opt, err)
					continue
				}
				if w.Vata == 0 && w.Pitta == 0 && w.Kapha == 0 {
					t.Errorf("question %q option %q has an all-zero weight", q.ID, opt)
				}
			}
		}
	}
}

func TestOptionWeightsUnknown(t *testing.T) {
	_, err := OptionWeights("v1", "not a real option")
	var unknown *UnknownOptionError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownOptionError, got %v", err)
	}
	if unknown.QuestionID != "v1" {
		t.Errorf("QuestionID = %q, want v1", unknown.QuestionID)
	}

	_, err = OptionWeights("zz", "anything")
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownOptionError for unknown question, got %v", err)
	}
}

func TestRoomOfQuestion(t *testing.T) {
	roomID, ok := RoomOfQuestion("s2")
	if !ok {
		t.Fatal("expected s2 to resolve to a room")
	}
	if roomID != "sharir" {
		t.Errorf("RoomOfQuestion(s2) = %q, want sharir", roomID)
	}

	if _, ok := RoomOfQuestion("zz"); ok {
		t.Error("expected unknown question to not resolve")
	}
}

func TestQuestionCount(t *testing.T) {
	total := 0
	for _, r := range Rooms() {
		total += len(r.Questions)
	}
	if QuestionCount() != total {
		t.Errorf("QuestionCount() = %d, want %d", QuestionCount(), total)
	}
}
