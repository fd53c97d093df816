package cmd

import (
	"context"
	"fmt"

	"github.com/edupath/pathfinder/internal/profile"
	"github.com/edupath/pathfinder/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored profile",
	Long:  "Deletes the persisted user profile, returning the app to a signed-out state on next launch. Schedule tasks are session-only and need no reset.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		if err := s.Blobs().Delete(context.Background(), profile.StorageKey); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}

		fmt.Println("Profile cleared. Next launch starts signed out.")
		return nil
	},
}
