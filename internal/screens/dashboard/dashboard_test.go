package dashboard

import (
	"testing"

	"github.com/edupath/pathfinder/internal/catalog"
)

func TestRoadmapProgress(t *testing.T) {
	goal := catalog.RoleFrontend
	track := catalog.CoursesByCategory(goal)
	if len(track) == 0 {
		t.Fatal("frontend track should not be empty")
	}

	if got := roadmapProgress(goal, nil); got != 0 {
		t.Fatalf("no enrollments should be 0%%, got %d", got)
	}

	one := []string{track[0].ID}
	if got := roadmapProgress(goal, one); got != 100/len(track) {
		t.Fatalf("one of %d courses: got %d%%", len(track), got)
	}

	// Duplicates and off-goal courses do not inflate progress.
	padded := []string{track[0].ID, track[0].ID, "soft-1"}
	if got := roadmapProgress(goal, padded); got != 100/len(track) {
		t.Fatalf("duplicates should not count twice, got %d%%", got)
	}

	var all []string
	for _, c := range track {
		all = append(all, c.ID)
	}
	if got := roadmapProgress(goal, all); got != 100 {
		t.Fatalf("full track should be 100%%, got %d", got)
	}
}

func TestRoadmapProgressNotSure(t *testing.T) {
	if got := roadmapProgress(catalog.RoleNotSure, []string{"soft-1"}); got != 0 {
		t.Fatalf("no track means 0%%, got %d", got)
	}
}
