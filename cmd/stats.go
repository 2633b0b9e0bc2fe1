package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/BHARTIYAYASH/manasveda/internal/checkin"
	"github.com/BHARTIYAYASH/manasveda/internal/cohort"
	"github.com/BHARTIYAYASH/manasveda/internal/recommend"
	"github.com/BHARTIYAYASH/manasveda/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show wellness statistics and cohort comparison",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		sessions, err := repo.Sessions(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		checkins, err := repo.Checkins(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query check-ins: %w", err)
		}

		var completed, abandoned int
		for _, ev := range sessions {
			switch ev.Action {
			case store.SessionCompleted:
				completed++
			case store.SessionAbandoned:
				abandoned++
			}
		}

		var points int
		if snap, err := s.SnapshotRepo().Latest(ctx); err == nil && snap != nil {
			points = snap.Data.Points
		}

		fmt.Println("Your Practice")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("  Journeys completed:  %d\n", completed)
		fmt.Printf("  Journeys abandoned:  %d\n", abandoned)
		fmt.Printf("  Check-ins recorded:  %d\n", len(checkins))
		fmt.Printf("  Points:              %d\n", points)

		batches := cohort.SeedBatches()
		if vectors := recentCheckinVectors(checkins, 7); len(vectors) > 0 {
			you := cohort.Summarize("you", "You (recent check-ins)", vectors)
			batches = append([]cohort.Batch{you}, batches...)
		}

		fmt.Println()
		fmt.Println("Cohort Comparison")
		fmt.Println(strings.Repeat("─", 86))
		fmt.Printf("%-26s  %7s  %6s  %7s  %10s  %9s  %s\n",
			"Cohort", "Members", "Stress", "Anxiety", "Engagement", "Wellbeing", "Risk L/M/H")
		fmt.Println(strings.Repeat("─", 86))
		for _, b := range batches {
			avg := b.Averages
			fmt.Printf("%-26s  %7d  %6.0f  %7.0f  %10.0f  %9.0f  %d/%d/%d\n",
				b.Name, b.StudentCount,
				avg[recommend.MetricStress], avg[recommend.MetricAnxiety],
				avg[recommend.MetricEngagement], cohort.Wellbeing(avg),
				b.Risks.Low, b.Risks.Medium, b.Risks.High)
		}
		return nil
	},
}

// recentCheckinVectors projects up to n of the newest check-ins onto
// the metric space.
func recentCheckinVectors(checkins []store.CheckinEvent, n int) []recommend.MetricVector {
	if len(checkins) > n {
		checkins = checkins[:n]
	}
	vectors := make([]recommend.MetricVector, 0, len(checkins))
	for _, c := range checkins {
		check := checkin.DailyCheck{Mood: c.Mood, Energy: c.Energy, Stress: c.Stress, Sleep: c.Sleep}
		vectors = append(vectors, check.Metrics())
	}
	return vectors
}
