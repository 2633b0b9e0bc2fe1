package cohort

import (
	"math"
	"testing"

	"github.com/BHARTIYAYASH/manasveda/internal/recommend"
)

func TestAggregateAverages(t *testing.T) {
	members := []recommend.MetricVector{
		{recommend.MetricStress: 40, recommend.MetricEngagement: 80},
		{recommend.MetricStress: 60, recommend.MetricEngagement: 60},
	}
	got := Aggregate(members)

	if got[recommend.MetricStress] != 50 {
		t.Errorf("stress = %f, want 50", got[recommend.MetricStress])
	}
	if got[recommend.MetricEngagement] != 70 {
		t.Errorf("engagement = %f, want 70", got[recommend.MetricEngagement])
	}
}

func TestAggregateMissingMetricCountsAsZero(t *testing.T) {
	members := []recommend.MetricVector{
		{recommend.MetricAnxiety: 60},
		{},
		{},
	}
	got := Aggregate(members)
	if math.Abs(got[recommend.MetricAnxiety]-20) > 0.001 {
		t.Errorf("anxiety = %f, want 20", got[recommend.MetricAnxiety])
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(nil); len(got) != 0 {
		t.Errorf("Aggregate(nil) = %v, want empty", got)
	}
}

func TestRiskThresholds(t *testing.T) {
	cases := []struct {
		stress float64
		want   Risk
	}{
		{0, RiskLow},
		{49.9, RiskLow},
		{50, RiskMedium},
		{69.9, RiskMedium},
		{70, RiskHigh},
		{95, RiskHigh},
	}
	for _, tc := range cases {
		m := recommend.MetricVector{recommend.MetricStress: tc.stress}
		if got := RiskOf(m); got != tc.want {
			t.Errorf("RiskOf(stress=%f) = %q, want %q", tc.stress, got, tc.want)
		}
	}
}

func TestDistribute(t *testing.T) {
	members := []recommend.MetricVector{
		{recommend.MetricStress: 30},
		{recommend.MetricStress: 55},
		{recommend.MetricStress: 80},
		{recommend.MetricStress: 85},
	}
	d := Distribute(members)
	if d.Low != 1 || d.Medium != 1 || d.High != 2 {
		t.Errorf("distribution = %+v, want 1/1/2", d)
	}
}

func TestWellbeingBounds(t *testing.T) {
	calm := recommend.MetricVector{recommend.MetricEngagement: 90}
	if got := Wellbeing(calm); got != 90 {
		t.Errorf("calm wellbeing = %f, want 90", got)
	}

	strained := recommend.MetricVector{
		recommend.MetricStress:    100,
		recommend.MetricAnxiety:   100,
		recommend.MetricFear:      100,
		recommend.MetricConfusion: 100,
	}
	if got := Wellbeing(strained); got != 0 {
		t.Errorf("strained wellbeing = %f, want 0", got)
	}
}

func TestSummarize(t *testing.T) {
	members := []recommend.MetricVector{
		{recommend.MetricStress: 40},
		{recommend.MetricStress: 80},
	}
	b := Summarize("b1", "Batch One", members)

	if b.StudentCount != 2 {
		t.Errorf("StudentCount = %d, want 2", b.StudentCount)
	}
	if b.Averages[recommend.MetricStress] != 60 {
		t.Errorf("avg stress = %f, want 60", b.Averages[recommend.MetricStress])
	}
	if b.Risks.High != 1 || b.Risks.Low != 1 {
		t.Errorf("risks = %+v, want one low one high", b.Risks)
	}
}

func TestSeedBatchesShape(t *testing.T) {
	batches := SeedBatches()
	if len(batches) == 0 {
		t.Fatal("expected seed batches")
	}
	for _, b := range batches {
		if b.ID == "" || b.Name == "" || b.StudentCount == 0 {
			t.Errorf("batch %+v incomplete", b)
		}
		if len(b.Averages) == 0 {
			t.Errorf("batch %q has no averages", b.ID)
		}
	}
}
