package catalog

import "strings"

// DomainByRole returns the market card for a role, or nil when the
// role has no card (including the "Not Sure" sentinel).
func DomainByRole(role CareerRole) *DomainStats {
	for i := range Domains {
		if Domains[i].Role == role {
			return &Domains[i]
		}
	}
	return nil
}

// CoursesByCategory filters the catalog to courses for one role.
func CoursesByCategory(role CareerRole) []RecommendedCourse {
	var out []RecommendedCourse
	for _, c := range Courses {
		if c.Category == role {
			out = append(out, c)
		}
	}
	return out
}

// SearchCourses filters the catalog by a case-insensitive substring
// match on title, provider, or category. An empty query returns the
// full catalog.
func SearchCourses(query string) []RecommendedCourse {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Courses
	}
	var out []RecommendedCourse
	for _, c := range Courses {
		if strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(string(c.Provider)), q) ||
			strings.Contains(strings.ToLower(string(c.Category)), q) {
			out = append(out, c)
		}
	}
	return out
}

// CourseByID returns the course with the given id, or nil.
func CourseByID(id string) *RecommendedCourse {
	for i := range Courses {
		if Courses[i].ID == id {
			return &Courses[i]
		}
	}
	return nil
}

// ValidRole reports whether s names a known career role.
func ValidRole(s string) bool {
	for _, r := range Roles {
		if string(r) == s {
			return true
		}
	}
	return false
}
