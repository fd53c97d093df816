package catalog

import (
	"fmt"
	"strings"
)

// generateStats builds the five-year demand/salary series for a domain
// from its current base salary.
func generateStats(baseSalary int) []MarketStat {
	return []MarketStat{
		{Year: "2021", Demand: 30, Salary: baseSalary * 85 / 100},
		{Year: "2022", Demand: 45, Salary: baseSalary * 92 / 100},
		{Year: "2023", Demand: 70, Salary: baseSalary},
		{Year: "2024", Demand: 85, Salary: baseSalary * 110 / 100},
		{Year: "2025", Demand: 95, Salary: baseSalary * 125 / 100},
	}
}

func domain(role CareerRole, baseSalary int, trend Trend, openings string, diff Difficulty, desc string) DomainStats {
	return DomainStats{
		Role:        role,
		AvgSalary:   fmt.Sprintf("$%d,000", baseSalary/1000),
		Trend:       trend,
		Openings:    openings,
		Difficulty:  diff,
		Description: desc,
		MarketStats: generateStats(baseSalary),
	}
}

// Domains is the fixed market-stat catalog, one entry per career domain.
var Domains = []DomainStats{
	domain(RoleFrontend, 112000, TrendSteady, "240k+", DifficultyBeginner,
		"Crafting responsive and interactive user interfaces using modern web technologies."),
	domain(RoleBackend, 128000, TrendHigh, "190k+", DifficultyIntermediate,
		"Building the server-side logic, databases, and APIs that power applications."),
	domain(RoleFullStack, 135000, TrendHigh, "310k+", DifficultyIntermediate,
		"Mastering both client and server-side development for complete end-to-end solutions."),
	domain(RoleMobile, 118000, TrendSteady, "115k+", DifficultyIntermediate,
		"Creating native and cross-platform applications for iOS and Android devices."),
	domain(RoleUIUX, 98000, TrendSteady, "85k+", DifficultyBeginner,
		"Designing intuitive user journeys and aesthetically pleasing interfaces."),
	domain(RoleDataScientist, 145000, TrendHigh, "140k+", DifficultyAdvanced,
		"Uncovering patterns in complex data to drive strategic business decisions."),
	domain(RoleDataEngineer, 138000, TrendRising, "95k+", DifficultyAdvanced,
		"Designing and building systems for collecting, storing, and analyzing data at scale."),
	domain(RoleMLEngineer, 162000, TrendHigh, "105k+", DifficultyAdvanced,
		"Developing autonomous AI systems and predictive models."),
	domain(RoleDevOps, 142000, TrendHigh, "155k+", DifficultyAdvanced,
		"Bridging the gap between development and operations through automation."),
	domain(RoleCloud, 165000, TrendRising, "80k+", DifficultyAdvanced,
		"Designing robust and scalable cloud infrastructure for modern enterprises."),
	domain(RoleSecurity, 122000, TrendHigh, "210k+", DifficultyIntermediate,
		"Protecting networks, devices, and data from unauthorized access or attack."),
	domain(RoleBlockchain, 155000, TrendRising, "40k+", DifficultyAdvanced,
		"Developing decentralized applications and smart contracts."),
	domain(RoleGameDev, 105000, TrendSteady, "65k+", DifficultyIntermediate,
		"Creating immersive digital experiences through game engines and interactive logic."),
	domain(RoleEmbedded, 115000, TrendSteady, "50k+", DifficultyAdvanced,
		"Designing specialized computer systems within larger mechanical or electrical systems."),
	domain(RoleQA, 102000, TrendSteady, "90k+", DifficultyBeginner,
		"Ensuring software quality through automated testing frameworks and bug tracking."),
}

// Roles lists every career role including the "Not Sure" sentinel,
// in catalog order.
var Roles = func() []CareerRole {
	out := make([]CareerRole, 0, len(Domains)+1)
	for _, d := range Domains {
		out = append(out, d.Role)
	}
	return append(out, RoleNotSure)
}()

var courseTracks = []string{
	"Level 1 Fundamentals",
	"Advanced Architectures",
	"Real-world Projects",
	"Professional Certification",
}

var courseDifficulties = []string{"Beginner", "Intermediate", "Advanced", "All Levels"}

var courseProviders = []Provider{
	ProviderGoogle, ProviderMeta, ProviderIBM, ProviderMicrosoft, ProviderUdemy, ProviderCoursera,
}

// CourseID derives the catalog identifier for a domain course from its
// role and track index, e.g. "machine-learning-engineer-0".
func CourseID(role CareerRole, track int) string {
	slug := strings.ReplaceAll(strings.ToLower(string(role)), " ", "-")
	return fmt.Sprintf("%s-%d", slug, track)
}

// generateCourses builds the per-domain course listings: four tracks
// per domain with rotating providers. Ratings and enrollment figures
// are deterministic functions of position so the catalog is stable
// across runs.
func generateCourses() []RecommendedCourse {
	var out []RecommendedCourse
	for dIdx, d := range Domains {
		for cIdx, track := range courseTracks {
			out = append(out, RecommendedCourse{
				ID:            CourseID(d.Role, cIdx),
				Title:         fmt.Sprintf("%s Masterclass: %s", d.Role, track),
				Provider:      courseProviders[(dIdx+cIdx)%len(courseProviders)],
				Difficulty:    courseDifficulties[cIdx],
				IsFree:        cIdx == 0,
				Duration:      fmt.Sprintf("%dh", 15+cIdx*10),
				Category:      d.Role,
				Rating:        4.5 + float64((dIdx*7+cIdx*3)%50)/100,
				EnrolledCount: fmt.Sprintf("%d.%dk", 10+(dIdx*13+cIdx*29)%100, (dIdx+cIdx)%10),
			})
		}
	}
	return out
}

// extraCourses pushes the catalog past the 50-course mark: a few
// cross-cutting soft-skill courses plus refreshed editions of the
// first ten domain courses.
func extraCourses(base []RecommendedCourse) []RecommendedCourse {
	out := []RecommendedCourse{
		{ID: "soft-1", Title: "Technical Leadership for Devs", Provider: ProviderIBM, Difficulty: "Advanced", Duration: "20h", Category: RoleFullStack, Rating: 4.9, EnrolledCount: "15k"},
		{ID: "soft-2", Title: "Agile Project Management", Provider: ProviderGoogle, Difficulty: "Beginner", IsFree: true, Duration: "12h", Category: RoleDevOps, Rating: 4.8, EnrolledCount: "80k"},
		{ID: "soft-3", Title: "Clean Code Principles", Provider: ProviderMicrosoft, Difficulty: "Intermediate", Duration: "18h", Category: RoleBackend, Rating: 4.9, EnrolledCount: "45k"},
	}
	for _, c := range base[:10] {
		c.ID = "ext-" + c.ID
		c.Title = "2025 Update: " + c.Title
		out = append(out, c)
	}
	return out
}

// Courses is the full fixed course catalog.
var Courses = func() []RecommendedCourse {
	base := generateCourses()
	return append(base, extraCourses(base)...)
}()
