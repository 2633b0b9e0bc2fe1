package cohort

import "github.com/BHARTIYAYASH/manasveda/internal/recommend"

// SeedBatches returns the demonstration cohorts used by the stats
// command when no local history exists yet.
func SeedBatches() []Batch {
	return []Batch{
		{
			ID:           "jee-2025",
			Name:         "JEE Advanced 2025",
			StudentCount: 120,
			Averages: recommend.MetricVector{
				recommend.MetricStress:     65,
				recommend.MetricAnxiety:    58,
				recommend.MetricFear:       45,
				recommend.MetricConfusion:  52,
				recommend.MetricEngagement: 78,
			},
			Risks: Distribution{Low: 40, Medium: 50, High: 30},
		},
		{
			ID:           "neet-2025",
			Name:         "NEET 2025",
			StudentCount: 150,
			Averages: recommend.MetricVector{
				recommend.MetricStress:     70,
				recommend.MetricAnxiety:    62,
				recommend.MetricFear:       48,
				recommend.MetricConfusion:  55,
				recommend.MetricEngagement: 75,
			},
			Risks: Distribution{Low: 45, Medium: 65, High: 40},
		},
	}
}
