package cmd

import (
	"fmt"
	"os"

	"github.com/BHARTIYAYASH/manasveda/internal/app"
	"github.com/BHARTIYAYASH/manasveda/internal/guidance"
	"github.com/BHARTIYAYASH/manasveda/internal/llm"
	"github.com/BHARTIYAYASH/manasveda/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo: eventRepo,
		SnapRepo:  st.SnapshotRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI wellness notes will be unavailable.")
	} else if provider != nil {
		opts.NoteSvc = guidance.NewService(provider, guidance.DefaultConfig())
	}

	return app.Run(opts)
}
