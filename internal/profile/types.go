package profile

import (
	"encoding/json"
	"fmt"

	"github.com/edupath/pathfinder/internal/catalog"
)

// LearningPace is how quickly the user wants to move through material.
type LearningPace string

const (
	PaceSlow     LearningPace = "Slow"
	PaceModerate LearningPace = "Moderate"
	PaceFast     LearningPace = "Fast"
)

// Paces lists all learning paces in display order.
func Paces() []LearningPace {
	return []LearningPace{PaceSlow, PaceModerate, PaceFast}
}

// UserProfile is the durable record describing one user's identity,
// goal, and progress. It is serialized wholesale as a single JSON blob;
// CompletedCourses is append-only and may contain duplicates when the
// same enrollment fires twice.
type UserProfile struct {
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	AcademicLevel     string             `json:"academicLevel"`
	Interests         []string           `json:"interests"`
	CareerGoal        catalog.CareerRole `json:"careerGoal"`
	LearningPace      LearningPace       `json:"learningPace"`
	DailyAvailability int                `json:"dailyAvailability"`
	Onboarded         bool               `json:"onboarded"`
	CompletedCourses  []string           `json:"completedCourses"`
}

// Default fabricates the mock-auth profile. Blank name or email fall
// back to placeholder identity, matching the sign-in form's behavior.
func Default(name, email string) UserProfile {
	if name == "" {
		name = "Explorer"
	}
	if email == "" {
		email = "user@example.com"
	}
	return UserProfile{
		Name:              name,
		Email:             email,
		AcademicLevel:     "Undergraduate",
		Interests:         []string{"Coding", "Design"},
		CareerGoal:        catalog.RoleFrontend,
		LearningPace:      PaceModerate,
		DailyAvailability: 4,
		Onboarded:         true,
		CompletedCourses:  []string{},
	}
}

// SchemaVersion is the current persisted-blob schema version. Blobs
// without a version field are read as pre-versioning (version 0) and
// accepted; blobs from a newer schema are treated as absent rather
// than half-parsed.
const SchemaVersion = 1

type persisted struct {
	Version int `json:"version"`
	UserProfile
}

// Encode serializes a profile to its durable blob form.
func Encode(p UserProfile) (string, error) {
	b, err := json.Marshal(persisted{Version: SchemaVersion, UserProfile: p})
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	return string(b), nil
}

// Decode parses a durable blob back into a profile. It returns
// (nil, nil) for blobs written by a newer schema version; callers
// treat that the same as an absent profile.
func Decode(payload string) (*UserProfile, error) {
	var pp persisted
	if err := json.Unmarshal([]byte(payload), &pp); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if pp.Version > SchemaVersion {
		return nil, nil
	}
	p := pp.UserProfile
	if p.CompletedCourses == nil {
		p.CompletedCourses = []string{}
	}
	return &p, nil
}
