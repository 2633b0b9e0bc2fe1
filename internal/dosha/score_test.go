package dosha

import (
	"errors"
	"math"
	"testing"

	"github.com/BHARTIYAYASH/manasveda/internal/bank"
	"github.com/BHARTIYAYASH/manasveda/internal/session"
)

// fixedLookup serves a hand-built weight table keyed by question ID,
// ignoring the option text.
func fixedLookup(table map[string]bank.Weights) WeightLookup {
	return func(questionID, option string) (bank.Weights, error) {
		w, ok := table[questionID]
		if !ok {
			return bank.Weights{}, &bank.UnknownOptionError{QuestionID: questionID, Option: option}
		}
		return w, nil
	}
}

func TestScoreEmptyIsNeutral(t *testing.T) {
	p, err := Score(nil)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if p != Neutral {
		t.Errorf("profile = %v, want the neutral split", p)
	}
}

func TestScoreSumsToHundred(t *testing.T) {
	lookup := fixedLookup(map[string]bank.Weights{
		"q1": {Vata: 2, Pitta: 1},
		"q2": {Pitta: 2, Kapha: 1},
		"q3": {Kapha: 2},
		"q4": {Vata: 1, Kapha: 1},
	})

	sequences := [][]session.Answer{
		{{QuestionID: "q1"}},
		{{QuestionID: "q1"}, {QuestionID: "q2"}},
		{{QuestionID: "q1"}, {QuestionID: "q2"}, {QuestionID: "q3"}, {QuestionID: "q4"}},
		{{QuestionID: "q3", Revisions: 2}, {QuestionID: "q4"}},
	}
	for i, answers := range sequences {
		p, err := scoreWith(lookup, answers)
		if err != nil {
			t.Fatalf("sequence %d: %v", i, err)
		}
		sum := p.Vata + p.Pitta + p.Kapha
		if math.Abs(sum-100) > 0.01 {
			t.Errorf("sequence %d: sum = %f, want 100", i, sum)
		}
	}
}

func TestScoreSingleAxis(t *testing.T) {
	lookup := fixedLookup(map[string]bank.Weights{
		"q1": {Vata: 2},
	})

	p, err := scoreWith(lookup, []session.Answer{{QuestionID: "q1"}})
	if err != nil {
		t.Fatalf("scoreWith: %v", err)
	}
	want := Profile{Vata: 100}
	if p != want {
		t.Errorf("profile = %v, want %v", p, want)
	}
}

func TestScoreRevisionDampingPreservesRatio(t *testing.T) {
	lookup := fixedLookup(map[string]bank.Weights{
		"q1": {Vata: 2},
	})

	// A revised answer contributes half the weight, but with a single
	// axis in play the normalized profile is unchanged.
	p, err := scoreWith(lookup, []session.Answer{{QuestionID: "q1", Revisions: 1}})
	if err != nil {
		t.Fatalf("scoreWith: %v", err)
	}
	if p != (Profile{Vata: 100}) {
		t.Errorf("profile = %v, want pure vata", p)
	}
}

func TestScoreRevisionDampingShiftsBalance(t *testing.T) {
	lookup := fixedLookup(map[string]bank.Weights{
		"q1": {Vata: 2},
		"q2": {Pitta: 2},
	})

	p, err := scoreWith(lookup, []session.Answer{
		{QuestionID: "q1", Revisions: 1},
		{QuestionID: "q2"},
	})
	if err != nil {
		t.Fatalf("scoreWith: %v", err)
	}
	// vata 1 vs pitta 2 after damping.
	if math.Abs(p.Vata-100.0/3) > 0.01 {
		t.Errorf("Vata = %f, want %f", p.Vata, 100.0/3)
	}
	if math.Abs(p.Pitta-200.0/3) > 0.01 {
		t.Errorf("Pitta = %f, want %f", p.Pitta, 200.0/3)
	}
}

func TestScoreClampsNegativeAxes(t *testing.T) {
	lookup := fixedLookup(map[string]bank.Weights{
		"q1": {Vata: -3, Pitta: 2},
	})

	p, err := scoreWith(lookup, []session.Answer{{QuestionID: "q1"}})
	if err != nil {
		t.Fatalf("scoreWith: %v", err)
	}
	if p.Vata != 0 {
		t.Errorf("Vata = %f, want 0", p.Vata)
	}
	if p.Pitta != 100 {
		t.Errorf("Pitta = %f, want 100", p.Pitta)
	}
}

func TestScoreAllZeroIsNeutral(t *testing.T) {
	lookup := fixedLookup(map[string]bank.Weights{
		"q1": {Vata: -1, Pitta: -1, Kapha: -1},
	})

	p, err := scoreWith(lookup, []session.Answer{{QuestionID: "q1"}})
	if err != nil {
		t.Fatalf("scoreWith: %v", err)
	}
	if p != Neutral {
		t.Errorf("profile = %v, want the neutral split", p)
	}
}

func TestScoreUnknownOption(t *testing.T) {
	lookup := fixedLookup(map[string]bank.Weights{})

	_, err := scoreWith(lookup, []session.Answer{{QuestionID: "ghost", Option: "x"}})
	var ue *bank.UnknownOptionError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *bank.UnknownOptionError", err)
	}
	if ue.QuestionID != "ghost" {
		t.Errorf("QuestionID = %q, want ghost", ue.QuestionID)
	}
}

func TestScoreAgainstSeededBank(t *testing.T) {
	// A full journey through the seeded catalog always scores cleanly.
	var answers []session.Answer
	for _, room := range bank.Rooms() {
		for _, q := range room.Questions {
			answers = append(answers, session.Answer{QuestionID: q.ID, Option: q.Options[0]})
		}
	}

	p, err := Score(answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	sum := p.Vata + p.Pitta + p.Kapha
	if math.Abs(sum-100) > 0.01 {
		t.Errorf("sum = %f, want 100", sum)
	}
}

func TestDominantTieOrder(t *testing.T) {
	cases := []struct {
		p    Profile
		want string
	}{
		{Profile{Vata: 40, Pitta: 40, Kapha: 20}, "vata"},
		{Profile{Vata: 20, Pitta: 40, Kapha: 40}, "pitta"},
		{Profile{Vata: 20, Pitta: 30, Kapha: 50}, "kapha"},
		{Neutral, "kapha"},
	}
	for _, tc := range cases {
		if got := tc.p.Dominant(); got != tc.want {
			t.Errorf("Dominant(%v) = %q, want %q", tc.p, got, tc.want)
		}
	}
}
