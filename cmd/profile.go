package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/edupath/pathfinder/internal/catalog"
	"github.com/edupath/pathfinder/internal/profile"
	"github.com/edupath/pathfinder/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the stored profile and enrollments",
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

		payload, ok, err := s.Blobs().Get(context.Background(), profile.StorageKey)
		if err != nil {
			return fmt.Errorf("read profile: %w", err)
		}
		if !ok {
			fmt.Println("No profile stored. Run pathfinder and sign in first.")
			return nil
		}

		p, err := profile.Decode(payload)
		if err != nil {
			return fmt.Errorf("decode profile: %w", err)
		}
		if p == nil {
			fmt.Println("Stored profile was written by a newer version; treat as absent.")
			return nil
		}

		fmt.Printf("Name:          %s\n", p.Name)
		fmt.Printf("Email:         %s\n", p.Email)
		fmt.Printf("Level:         %s\n", p.AcademicLevel)
		fmt.Printf("Interests:     %s\n", strings.Join(p.Interests, ", "))
		fmt.Printf("Career goal:   %s\n", p.CareerGoal)
		fmt.Printf("Pace:          %s\n", p.LearningPace)
		fmt.Printf("Daily hours:   %d\n", p.DailyAvailability)

		if len(p.CompletedCourses) == 0 {
			fmt.Println("Enrollments:   none")
			return nil
		}

		fmt.Println("Enrollments:")
		for _, id := range p.CompletedCourses {
			if c := catalog.CourseByID(id); c != nil {
				fmt.Printf("  - %s (%s)\n", c.Title, c.Provider)
			} else {
				fmt.Printf("  - %s\n", id)
			}
		}
		return nil
	},
}
