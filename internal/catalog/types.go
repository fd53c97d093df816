package catalog

// CareerRole is the closed set of career domains the app covers.
// RoleNotSure is a sentinel for users who have not picked a goal yet.
type CareerRole string

const (
	RoleFrontend      CareerRole = "Frontend Developer"
	RoleBackend       CareerRole = "Backend Developer"
	RoleFullStack     CareerRole = "Full Stack Developer"
	RoleMobile        CareerRole = "Mobile App Developer"
	RoleUIUX          CareerRole = "UI/UX Designer"
	RoleDataScientist CareerRole = "Data Scientist"
	RoleDataEngineer  CareerRole = "Data Engineer"
	RoleMLEngineer    CareerRole = "Machine Learning Engineer"
	RoleDevOps        CareerRole = "DevOps Engineer"
	RoleCloud         CareerRole = "Cloud Architect"
	RoleSecurity      CareerRole = "Cybersecurity Analyst"
	RoleBlockchain    CareerRole = "Blockchain Developer"
	RoleGameDev       CareerRole = "Game Developer"
	RoleEmbedded      CareerRole = "Embedded Systems Engineer"
	RoleQA            CareerRole = "QA Automation Engineer"
	RoleNotSure       CareerRole = "Not Sure"
)

// Trend describes the hiring trajectory of a domain.
type Trend string

const (
	TrendHigh   Trend = "High"
	TrendSteady Trend = "Steady"
	TrendRising Trend = "Rising"
)

// Difficulty is the entry barrier of a domain or course.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// MarketStat is one year of demand/salary data for a domain.
type MarketStat struct {
	Year   string
	Demand int
	Salary int
}

// DomainStats is the market card for one career domain.
type DomainStats struct {
	Role        CareerRole
	AvgSalary   string
	Trend       Trend
	Openings    string
	Difficulty  Difficulty
	Description string
	MarketStats []MarketStat
}

// Provider is a course provider brand.
type Provider string

const (
	ProviderIBM       Provider = "IBM"
	ProviderCoursera  Provider = "Coursera"
	ProviderUdemy     Provider = "Udemy"
	ProviderGoogle    Provider = "Google"
	ProviderMeta      Provider = "Meta"
	ProviderMicrosoft Provider = "Microsoft"
)

// RecommendedCourse is one course listing in the catalog.
type RecommendedCourse struct {
	ID            string
	Title         string
	Provider      Provider
	Difficulty    string
	IsFree        bool
	Duration      string
	Category      CareerRole
	Rating        float64
	EnrolledCount string
}
