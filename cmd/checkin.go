package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/BHARTIYAYASH/manasveda/internal/checkin"
	"github.com/BHARTIYAYASH/manasveda/internal/recommend"
	"github.com/BHARTIYAYASH/manasveda/internal/store"
	"github.com/spf13/cobra"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record a daily check-in without opening the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, _ := cmd.Flags().GetInt("mood")
		energy, _ := cmd.Flags().GetInt("energy")
		stress, _ := cmd.Flags().GetInt("stress")
		sleep, _ := cmd.Flags().GetInt("sleep")
		notes, _ := cmd.Flags().GetString("notes")

		check := checkin.DailyCheck{
			Mood:    mood,
			Energy:  energy,
			Stress:  stress,
			Sleep:   sleep,
			Notes:   notes,
			TakenAt: time.Now(),
		}
		if err := check.Validate(); err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		err = s.EventRepo().AppendCheckin(context.Background(), store.CheckinEventData{
			Mood:   check.Mood,
			Energy: check.Energy,
			Stress: check.Stress,
			Sleep:  check.Sleep,
			Notes:  check.Notes,
		})
		if err != nil {
			return fmt.Errorf("save check-in: %w", err)
		}

		fmt.Printf("Check-in saved: mood %d, energy %d, stress %d, sleep %d\n",
			check.Mood, check.Energy, check.Stress, check.Sleep)

		ranked := recommend.Rank(recommend.Library(), check.Metrics(), recommend.CategoryAll)
		if len(ranked) > 2 {
			ranked = ranked[:2]
		}
		if len(ranked) > 0 {
			fmt.Println("\nSuggested for today:")
			for _, p := range ranked {
				fmt.Printf("  %s (%s)\n", p.EnglishName, p.SanskritName)
			}
		}
		return nil
	},
}

func init() {
	checkinCmd.Flags().Int("mood", 0, "Mood rating, 1-10 (required)")
	checkinCmd.Flags().Int("energy", 0, "Energy rating, 1-10 (required)")
	checkinCmd.Flags().Int("stress", 0, "Stress rating, 1-10 (required)")
	checkinCmd.Flags().Int("sleep", 0, "Sleep quality rating, 1-10 (required)")
	checkinCmd.Flags().String("notes", "", "Optional free-form notes")
	_ = checkinCmd.MarkFlagRequired("mood")
	_ = checkinCmd.MarkFlagRequired("energy")
	_ = checkinCmd.MarkFlagRequired("stress")
	_ = checkinCmd.MarkFlagRequired("sleep")
}
