package cmd

import (
	"github.com/edupath/pathfinder/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "AI career guide for students",
	Long:  "Pathfinder — terminal app that helps students pick a tech career, find courses, and plan their day with an AI mentor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHFINDER_DB env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHFINDER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
