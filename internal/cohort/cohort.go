// Package cohort aggregates individual metric vectors into batch-level
// views: averages, stress-risk classification, and a wellbeing score.
package cohort

import "github.com/BHARTIYAYASH/manasveda/internal/recommend"

// Risk classifies a stress level.
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Stress thresholds for risk classification, on the 0-100 metric scale.
const (
	mediumRiskStress = 50
	highRiskStress   = 70
)

// Distribution counts members per risk level.
type Distribution struct {
	Low    int
	Medium int
	High   int
}

// Batch is one cohort's aggregate state.
type Batch struct {
	ID           string
	Name         string
	StudentCount int
	Averages     recommend.MetricVector
	Risks        Distribution
}

// Aggregate averages the given metric vectors per metric name. Metrics
// absent from a member count as zero for that member, matching how the
// averages would read if every member reported every metric. An empty
// input yields an empty vector.
func Aggregate(members []recommend.MetricVector) recommend.MetricVector {
	if len(members) == 0 {
		return recommend.MetricVector{}
	}

	sums := recommend.MetricVector{}
	for _, m := range members {
		for name, v := range m {
			sums[name] += v
		}
	}
	for name := range sums {
		sums[name] /= float64(len(members))
	}
	return sums
}

// RiskOf classifies a member's stress level.
func RiskOf(m recommend.MetricVector) Risk {
	stress := m[recommend.MetricStress]
	switch {
	case stress >= highRiskStress:
		return RiskHigh
	case stress >= mediumRiskStress:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Distribute counts the members per risk level.
func Distribute(members []recommend.MetricVector) Distribution {
	var d Distribution
	for _, m := range members {
		switch RiskOf(m) {
		case RiskHigh:
			d.High++
		case RiskMedium:
			d.Medium++
		default:
			d.Low++
		}
	}
	return d
}

// Wellbeing condenses a metric vector into a single 0-100 score:
// engagement pulled down by the mean of the strain metrics.
func Wellbeing(m recommend.MetricVector) float64 {
	strain := (m[recommend.MetricStress] +
		m[recommend.MetricAnxiety] +
		m[recommend.MetricFear] +
		m[recommend.MetricConfusion]) / 4

	score := m[recommend.MetricEngagement] - strain/2
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Summarize builds a Batch from member vectors.
func Summarize(id, name string, members []recommend.MetricVector) Batch {
	return Batch{
		ID:           id,
		Name:         name,
		StudentCount: len(members),
		Averages:     Aggregate(members),
		Risks:        Distribute(members),
	}
}
