package recommend

import (
	"testing"

	"github.com/BHARTIYAYASH/manasveda/internal/dosha"
)

func ids(rs []Recommendation) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestRankOrdersByObservedMetrics(t *testing.T) {
	library := []Recommendation{
		{ID: "R1", MetricWeights: map[string]float64{MetricStress: -30}},
		{ID: "R2", MetricWeights: map[string]float64{MetricAnxiety: -35}},
	}
	metrics := MetricVector{MetricStress: 50, MetricAnxiety: 10}

	got := Rank(library, metrics, CategoryAll)
	want := []string{"R2", "R1"}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
}

func TestRelevanceIgnoresAbsentAndZeroMetrics(t *testing.T) {
	r := Recommendation{MetricWeights: map[string]float64{
		MetricStress:  -30,
		MetricAnxiety: -25,
		MetricFear:    -10,
	}}
	metrics := MetricVector{
		MetricStress:  40, // counts: |−30|
		MetricAnxiety: 0,  // present but zero, does not count
		// fear absent
	}

	if got := Relevance(r, metrics); got != 30 {
		t.Errorf("Relevance = %f, want 30", got)
	}
}

func TestRankIsStableOnTies(t *testing.T) {
	library := []Recommendation{
		{ID: "first", MetricWeights: map[string]float64{MetricStress: -10}},
		{ID: "second", MetricWeights: map[string]float64{MetricStress: 10}},
		{ID: "third", MetricWeights: map[string]float64{MetricAnxiety: -10}},
	}
	metrics := MetricVector{MetricStress: 5}

	got := ids(Rank(library, metrics, CategoryAll))
	// first and second tie at 10, third scores 0.
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestRankEmptyMetricsKeepsLibraryOrder(t *testing.T) {
	got := Rank(Library(), MetricVector{}, CategoryAll)
	if len(got) != len(Library()) {
		t.Fatalf("len = %d, want %d", len(got), len(Library()))
	}
	for i, r := range Library() {
		if got[i].ID != r.ID {
			t.Errorf("position %d = %q, want %q", i, got[i].ID, r.ID)
		}
	}
}

func TestRankCategoryFilter(t *testing.T) {
	got := Rank(Library(), MetricVector{}, CategoryYoga)
	if len(got) == 0 {
		t.Fatal("expected yoga entries")
	}
	for _, r := range got {
		if r.Category != CategoryYoga {
			t.Errorf("entry %q has category %q", r.ID, r.Category)
		}
	}
}

func TestRankEmptyLibraryAndNoMatch(t *testing.T) {
	if got := Rank(nil, MetricVector{MetricStress: 10}, CategoryAll); len(got) != 0 {
		t.Errorf("empty library: len = %d, want 0", len(got))
	}

	library := []Recommendation{{ID: "R1", Category: CategoryDiet}}
	if got := Rank(library, MetricVector{}, CategoryYoga); len(got) != 0 {
		t.Errorf("no category match: len = %d, want 0", len(got))
	}
}

func TestRankDoesNotMutateLibrary(t *testing.T) {
	library := []Recommendation{
		{ID: "a", MetricWeights: map[string]float64{MetricStress: -5}},
		{ID: "b", MetricWeights: map[string]float64{MetricStress: -50}},
	}
	_ = Rank(library, MetricVector{MetricStress: 1}, CategoryAll)

	if library[0].ID != "a" || library[1].ID != "b" {
		t.Error("input library order must be preserved")
	}
}

func TestSeededLibraryShape(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Library() {
		if r.ID == "" || r.SanskritName == "" || r.EnglishName == "" {
			t.Errorf("entry %+v missing names", r)
		}
		if seen[r.ID] {
			t.Errorf("duplicate ID %q", r.ID)
		}
		seen[r.ID] = true
		if len(r.MetricWeights) == 0 {
			t.Errorf("entry %q has no metric weights", r.ID)
		}
		if len(r.Benefits) == 0 {
			t.Errorf("entry %q has no benefits", r.ID)
		}
	}
}

func TestProfileMetrics(t *testing.T) {
	m := ProfileMetrics(dosha.Profile{Vata: 60, Pitta: 25, Kapha: 15})
	if m[MetricAnxiety] <= 0 {
		t.Errorf("anxiety = %f, want > 0 for vata excess", m[MetricAnxiety])
	}
	if _, ok := m[MetricStress]; ok {
		t.Error("stress should be absent without pitta excess")
	}

	if got := ProfileMetrics(dosha.Neutral); len(got) != 0 {
		t.Errorf("neutral profile metrics = %v, want empty", got)
	}
}
