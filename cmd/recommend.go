package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/BHARTIYAYASH/manasveda/internal/checkin"
	"github.com/BHARTIYAYASH/manasveda/internal/recommend"
	"github.com/BHARTIYAYASH/manasveda/internal/store"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "List wellness practices ranked for you",
	Long: `Rank the practice library against your latest check-in, falling back
to your latest constitution snapshot, then to unranked library order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		limit, _ := cmd.Flags().GetInt("limit")

		cat := recommend.Category(category)
		if category != "" && !validCategory(cat) {
			return fmt.Errorf("unknown category %q: choose from %s",
				category, strings.Join(categoryNames(), ", "))
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		metrics, source := loadMetrics(ctx, s.EventRepo(), s.SnapshotRepo())

		ranked := recommend.Rank(recommend.Library(), metrics, cat)
		if limit > 0 && len(ranked) > limit {
			ranked = ranked[:limit]
		}

		fmt.Println(source)
		fmt.Println()
		fmt.Printf("%-4s  %-24s  %-20s  %-12s  %s\n",
			"#", "Practice", "Sanskrit", "Category", "Dosha Effect")
		fmt.Println(strings.Repeat("─", 84))
		for i, rec := range ranked {
			effect := fmt.Sprintf("V%+d P%+d K%+d",
				rec.DoshaEffect.Vata, rec.DoshaEffect.Pitta, rec.DoshaEffect.Kapha)
			fmt.Printf("%-4d  %-24s  %-20s  %-12s  %s\n",
				i+1, rec.EnglishName, rec.SanskritName, rec.Category, effect)
		}
		return nil
	},
}

// loadMetrics mirrors the recommendations screen: latest check-in
// first, then the latest constitution snapshot, then nothing.
func loadMetrics(ctx context.Context, events store.EventRepo, snaps store.SnapshotRepo) (recommend.MetricVector, string) {
	if latest, err := events.LatestCheckin(ctx); err == nil && latest != nil {
		check := checkin.DailyCheck{
			Mood:   latest.Mood,
			Energy: latest.Energy,
			Stress: latest.Stress,
			Sleep:  latest.Sleep,
		}
		return check.Metrics(), "Ranked by your latest check-in."
	}
	if snap, err := snaps.Latest(ctx); err == nil && snap != nil {
		return recommend.ProfileMetrics(snap.Data.Profile), "Ranked by your constitution."
	}
	return recommend.MetricVector{}, "No history yet; showing the library unranked."
}

func validCategory(cat recommend.Category) bool {
	for _, c := range recommend.Categories() {
		if c == cat {
			return true
		}
	}
	return false
}

func categoryNames() []string {
	cats := recommend.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

func init() {
	recommendCmd.Flags().StringP("category", "c", "", "Filter by category (e.g. meditation, yoga)")
	recommendCmd.Flags().IntP("limit", "n", 10, "Number of practices to show")
}
