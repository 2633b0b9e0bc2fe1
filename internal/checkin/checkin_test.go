package checkin

import (
	"errors"
	"testing"

	"github.com/BHARTIYAYASH/manasveda/internal/recommend"
)

func TestValidateAcceptsBounds(t *testing.T) {
	d := DailyCheck{Mood: 1, Energy: 10, Stress: 5, Sleep: 7}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	cases := []DailyCheck{
		{Mood: 0, Energy: 5, Stress: 5, Sleep: 5},
		{Mood: 5, Energy: 11, Stress: 5, Sleep: 5},
		{Mood: 5, Energy: 5, Stress: -1, Sleep: 5},
		{Mood: 5, Energy: 5, Stress: 5, Sleep: 0},
	}
	for i, d := range cases {
		if err := d.Validate(); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("case %d: err = %v, want ErrOutOfRange", i, err)
		}
	}
}

func TestMetricsDerivation(t *testing.T) {
	d := DailyCheck{Mood: 6, Energy: 8, Stress: 7, Sleep: 4}
	m := d.Metrics()

	if m[recommend.MetricStress] != 70 {
		t.Errorf("stress = %f, want 70", m[recommend.MetricStress])
	}
	if m[recommend.MetricEngagement] != 70 {
		t.Errorf("engagement = %f, want 70", m[recommend.MetricEngagement])
	}
	if m[recommend.MetricConfusion] != 60 {
		t.Errorf("confusion = %f, want 60", m[recommend.MetricConfusion])
	}
	if m[recommend.MetricAnxiety] != 65 {
		t.Errorf("anxiety = %f, want 65", m[recommend.MetricAnxiety])
	}
}

func TestMetricsFeedRanking(t *testing.T) {
	// A stressed, sleepless report must surface calming practices first.
	d := DailyCheck{Mood: 3, Energy: 3, Stress: 9, Sleep: 3}
	ranked := recommend.Rank(recommend.Library(), d.Metrics(), recommend.CategoryAll)
	if len(ranked) == 0 {
		t.Fatal("expected ranked recommendations")
	}
	top := ranked[0]
	if recommend.Relevance(top, d.Metrics()) == 0 {
		t.Errorf("top entry %q has zero relevance", top.ID)
	}
}
