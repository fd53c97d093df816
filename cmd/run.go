package cmd

import (
	"fmt"
	"os"

	"github.com/edupath/pathfinder/internal/app"
	"github.com/edupath/pathfinder/internal/llm"
	"github.com/edupath/pathfinder/internal/mentor"
	"github.com/edupath/pathfinder/internal/profile"
	"github.com/edupath/pathfinder/internal/session"
	"github.com/edupath/pathfinder/internal/store"
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

	manager := session.New(profile.NewStore(st.Blobs()))
	manager.Load(ctx)

	opts := app.Options{Manager: manager}

	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The mentor and AI suggestions will be unavailable.")
	} else {
		opts.Mentor = mentor.New(provider)
	}

	return app.Run(opts)
}
