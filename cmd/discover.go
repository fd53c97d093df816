package cmd

import (
	"fmt"
	"strings"

	"github.com/edupath/pathfinder/internal/llm"
	"github.com/edupath/pathfinder/internal/mentor"
	"github.com/edupath/pathfinder/internal/store"
	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Ask the AI mentor for best-fit career paths (one-shot)",
	Long: `Run career discovery from the command line without the TUI.

Requires an LLM provider configured via environment variables
(PATHFINDER_GEMINI_API_KEY, PATHFINDER_OPENAI_API_KEY, or
PATHFINDER_ANTHROPIC_API_KEY).`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().StringSlice("interests", []string{"Coding"}, "Comma-separated interests")
	discoverCmd.Flags().String("goals", "finding a good first role in tech", "Career goals, free text")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	interests, _ := cmd.Flags().GetStringSlice("interests")
	goals, _ := cmd.Flags().GetString("goals")

	ctx := cmd.Context()

	// Discovery still logs usage events, so open the store.
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	provider, err := llm.NewProviderFromEnv(ctx, s.Events())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	fmt.Printf("Interests: %s\nGoals:     %s\n\n", strings.Join(interests, ", "), goals)
	fmt.Println("Asking the mentor...")

	suggestions, err := mentor.New(provider).DiscoverCareer(ctx, interests, goals)
	if err != nil {
		return err
	}
	if len(suggestions) == 0 {
		fmt.Println("No suggestions returned.")
		return nil
	}

	fmt.Println()
	for i, sug := range suggestions {
		fmt.Printf("%d. %s (%.0f%% fit)\n", i+1, sug.Role, sug.FitScore)
		fmt.Printf("   %s\n", sug.Reason)
	}
	return nil
}
