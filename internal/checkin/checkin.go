// Package checkin models the daily self-report: four 1-10 ratings plus
// optional notes, and the projection of a check-in onto the ranking
// metric space.
package checkin

import (
	"errors"
	"fmt"
	"time"

	"github.com/BHARTIYAYASH/manasveda/internal/recommend"
)

// Rating bounds for every check-in field.
const (
	RatingMin = 1
	RatingMax = 10
)

// ErrOutOfRange is the sentinel wrapped by every rating validation
// failure.
var ErrOutOfRange = errors.New("rating out of range")

// DailyCheck is one day's self-report.
type DailyCheck struct {
	Mood    int
	Energy  int
	Stress  int
	Sleep   int
	Notes   string
	TakenAt time.Time
}

// Fields returns the rating fields in form order.
func (d DailyCheck) Fields() []struct {
	Name  string
	Value int
} {
	return []struct {
		Name  string
		Value int
	}{
		{"mood", d.Mood},
		{"energy", d.Energy},
		{"stress", d.Stress},
		{"sleep", d.Sleep},
	}
}

// Validate checks every rating against the 1-10 bounds.
func (d DailyCheck) Validate() error {
	for _, f := range d.Fields() {
		if f.Value < RatingMin || f.Value > RatingMax {
			return fmt.Errorf("%s %d: %w (want %d-%d)", f.Name, f.Value, ErrOutOfRange, RatingMin, RatingMax)
		}
	}
	return nil
}

// Metrics projects the check-in onto the 0-100 metric space the
// ranking engine consumes. Stress scales directly, engagement blends
// mood and energy, and confusion rises as sleep quality falls.
func (d DailyCheck) Metrics() recommend.MetricVector {
	return recommend.MetricVector{
		recommend.MetricStress:     float64(d.Stress) * 10,
		recommend.MetricAnxiety:    float64(d.Stress+(RatingMax-d.Sleep)) * 5,
		recommend.MetricEngagement: float64(d.Mood+d.Energy) * 5,
		recommend.MetricConfusion:  float64(RatingMax-d.Sleep) * 10,
	}
}
