// Package recommend ranks a library of Ayurvedic interventions against
// an observed metric vector. The library is read-only process-wide
// data; ranking is pure and deterministic.
package recommend

import (
	"sort"

	"github.com/BHARTIYAYASH/manasveda/internal/dosha"
)

// Category groups interventions by practice type.
type Category string

const (
	CategoryYoga       Category = "yoga"
	CategoryMeditation Category = "meditation"
	CategoryDiet       Category = "diet"
	CategoryLifestyle  Category = "lifestyle"

	// CategoryAll disables category filtering.
	CategoryAll Category = ""
)

// Metric names shared by check-ins, cohort aggregates, and the library.
const (
	MetricStress     = "stress"
	MetricAnxiety    = "anxiety"
	MetricFear       = "fear"
	MetricConfusion  = "confusion"
	MetricEngagement = "engagement"
)

// MetricVector maps metric names to observed values, for one individual
// or one cohort aggregate. Read-only input to ranking.
type MetricVector map[string]float64

// DoshaEffect is the signed influence an intervention has on each
// constitution axis. Negative values pacify, positive aggravate.
type DoshaEffect struct {
	Vata  int
	Pitta int
	Kapha int
}

// Recommendation is an immutable library entry.
type Recommendation struct {
	ID                string
	Category          Category
	SanskritName      string
	EnglishName       string
	Description       string
	Benefits          []string
	Instructions      []string
	Contraindications []string

	// MetricWeights holds signed effect sizes per metric name.
	// Relevance uses magnitudes only.
	MetricWeights map[string]float64

	DoshaEffect DoshaEffect
}

// Relevance scores how applicable a recommendation is to the observed
// metrics: the sum of |effect size| over every metric the candidate
// targets that the observation actually exhibits (present and nonzero).
func Relevance(r Recommendation, metrics MetricVector) float64 {
	var sum float64
	for name, weight := range r.MetricWeights {
		if v, ok := metrics[name]; ok && v != 0 {
			if weight < 0 {
				weight = -weight
			}
			sum += weight
		}
	}
	return sum
}

// Rank filters the library by category (CategoryAll keeps everything)
// and orders it by descending relevance. Ties keep the library's
// declaration order. An empty library or a filter with no matches
// yields an empty slice, not an error.
func Rank(library []Recommendation, metrics MetricVector, category Category) []Recommendation {
	ranked := make([]Recommendation, 0, len(library))
	for _, r := range library {
		if category == CategoryAll || r.Category == category {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return Relevance(ranked[i], metrics) > Relevance(ranked[j], metrics)
	})
	return ranked
}

// ProfileMetrics projects a constitution profile onto the ranking
// metric space. Only shares meaningfully above the neutral third
// register, each feeding the imbalance metrics its axis classically
// aggravates. The half-point tolerance keeps the neutral default's
// rounding remainder from reading as an imbalance.
func ProfileMetrics(p dosha.Profile) MetricVector {
	const neutralShare = 100.0/3 + 0.5

	m := MetricVector{}
	if ex := p.Vata - neutralShare; ex > 0 {
		m[MetricAnxiety] = ex
		m[MetricFear] = ex / 2
	}
	if ex := p.Pitta - neutralShare; ex > 0 {
		m[MetricStress] = ex
	}
	if ex := p.Kapha - neutralShare; ex > 0 {
		m[MetricConfusion] = ex
		m[MetricEngagement] = -ex
	}
	return m
}
