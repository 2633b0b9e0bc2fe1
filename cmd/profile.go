package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your latest dosha constitution",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		snap, err := s.SnapshotRepo().Latest(context.Background())
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap == nil {
			fmt.Println("No constitution yet. Run manasveda and complete a journey first.")
			return nil
		}

		p := snap.Data.Profile
		fmt.Printf("Constitution from %s\n\n", snap.Timestamp.Local().Format("Jan 02, 2006 15:04"))
		fmt.Printf("  vata   %5.1f%%  %s\n", p.Vata, bar(p.Vata))
		fmt.Printf("  pitta  %5.1f%%  %s\n", p.Pitta, bar(p.Pitta))
		fmt.Printf("  kapha  %5.1f%%  %s\n", p.Kapha, bar(p.Kapha))
		fmt.Printf("\nDominant dosha: %s\n", snap.Data.Dominant)
		fmt.Printf("Points earned:  %d\n", snap.Data.Points)
		return nil
	},
}

// bar renders a percentage as a fixed 30-cell text gauge.
func bar(pct float64) string {
	filled := int(pct * 30 / 100)
	if filled > 30 {
		filled = 30
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 30-filled)
}
