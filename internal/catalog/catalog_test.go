package catalog

import (
	"strings"
	"testing"
)

func TestDomainsHaveMarketStats(t *testing.T) {
	if len(Domains) != 15 {
		t.Fatalf("expected 15 domains, got %d", len(Domains))
	}
	for _, d := range Domains {
		if len(d.MarketStats) != 5 {
			t.Errorf("%s: expected 5 market stats, got %d", d.Role, len(d.MarketStats))
		}
		for _, s := range d.MarketStats {
			if s.Salary <= 0 || s.Demand <= 0 {
				t.Errorf("%s: non-positive stat for year %s", d.Role, s.Year)
			}
		}
	}
}

func TestRolesIncludeSentinel(t *testing.T) {
	if Roles[len(Roles)-1] != RoleNotSure {
		t.Fatalf("expected Not Sure as last role, got %q", Roles[len(Roles)-1])
	}
	if !ValidRole("Data Scientist") {
		t.Error("Data Scientist should be a valid role")
	}
	if ValidRole("Astronaut") {
		t.Error("Astronaut should not be a valid role")
	}
}

func TestCatalogSize(t *testing.T) {
	// 15 domains x 4 tracks + 3 soft-skill + 10 refreshed editions.
	if len(Courses) != 73 {
		t.Fatalf("expected 73 courses, got %d", len(Courses))
	}

	seen := make(map[string]bool)
	for _, c := range Courses {
		if seen[c.ID] {
			t.Errorf("duplicate course id %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestCourseID(t *testing.T) {
	if got := CourseID(RoleMLEngineer, 0); got != "machine-learning-engineer-0" {
		t.Errorf("unexpected course id %q", got)
	}
	if CourseByID("machine-learning-engineer-0") == nil {
		t.Error("generated id should resolve in the catalog")
	}
}

func TestCoursesByCategory(t *testing.T) {
	courses := CoursesByCategory(RoleFrontend)
	// 4 tracks + 1 refreshed edition from the extra block.
	if len(courses) < 4 {
		t.Fatalf("expected at least 4 frontend courses, got %d", len(courses))
	}
	for _, c := range courses {
		if c.Category != RoleFrontend {
			t.Errorf("course %s has category %s", c.ID, c.Category)
		}
	}
}

func TestSearchCourses(t *testing.T) {
	results := SearchCourses("clean code")
	if len(results) != 1 || results[0].ID != "soft-3" {
		t.Fatalf("expected exactly soft-3, got %v", results)
	}

	for _, c := range SearchCourses("google") {
		if c.Provider != ProviderGoogle {
			t.Errorf("course %s matched google but has provider %s", c.ID, c.Provider)
		}
	}

	if len(SearchCourses("  ")) != len(Courses) {
		t.Error("blank query should return the full catalog")
	}
}

func TestDomainByRole(t *testing.T) {
	d := DomainByRole(RoleBackend)
	if d == nil || d.Trend != TrendHigh {
		t.Fatalf("unexpected backend domain: %+v", d)
	}
	if DomainByRole(RoleNotSure) != nil {
		t.Error("Not Sure has no market card")
	}
	if !strings.HasPrefix(d.AvgSalary, "$") {
		t.Errorf("salary should be formatted, got %q", d.AvgSalary)
	}
}
