package profile

import (
	"context"
	"fmt"

	"github.com/edupath/pathfinder/internal/catalog"
)

// StorageKey is the single durable key the serialized profile lives
// under. Absence of the key means an unauthenticated session.
const StorageKey = "pathfinder_profile"

// Blobs is the narrow durable key-value surface the store writes
// through to.
type Blobs interface {
	// Get returns the payload for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put atomically replaces the payload for key.
	Put(ctx context.Context, key, payload string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Store owns the authoritative in-memory UserProfile and mirrors every
// mutation to durable storage synchronously. When a write fails the
// in-memory state still advances; the failure is kept as a non-blocking
// warning and the next mutation retries the full blob.
type Store struct {
	blobs   Blobs
	current *UserProfile
	warning string
}

// NewStore creates a Store over the given durable blob storage.
func NewStore(blobs Blobs) *Store {
	return &Store{blobs: blobs}
}

// Load restores a persisted session. Any read or parse failure is
// treated as "no session"; Load never surfaces corruption to the user.
// It reports whether a profile was restored.
func (s *Store) Load(ctx context.Context) bool {
	payload, ok, err := s.blobs.Get(ctx, StorageKey)
	if err != nil || !ok {
		return false
	}
	p, err := Decode(payload)
	if err != nil || p == nil {
		return false
	}
	s.current = p
	return true
}

// Current returns the in-memory profile, or nil when logged out.
func (s *Store) Current() *UserProfile {
	return s.current
}

// LoggedIn reports whether a profile is active.
func (s *Store) LoggedIn() bool {
	return s.current != nil
}

// Login installs p as the session profile and persists it. Settings
// saves reuse this path: the stored blob is always a wholesale
// replacement, never a partial patch.
func (s *Store) Login(ctx context.Context, p UserProfile) {
	s.current = &p
	s.persist(ctx)
}

// Mutate applies updater to a copy of the current profile, installs
// the result, and writes it through. No-op when logged out.
func (s *Store) Mutate(ctx context.Context, updater func(*UserProfile)) {
	if s.current == nil {
		return
	}
	next := *s.current
	next.CompletedCourses = append([]string(nil), s.current.CompletedCourses...)
	next.Interests = append([]string(nil), s.current.Interests...)
	updater(&next)
	s.current = &next
	s.persist(ctx)
}

// Enroll appends courseID to the completed-course log. Append-only:
// enrolling twice records the id twice.
func (s *Store) Enroll(ctx context.Context, courseID string) {
	s.Mutate(ctx, func(p *UserProfile) {
		p.CompletedCourses = append(p.CompletedCourses, courseID)
	})
}

// SetGoal updates the career goal.
func (s *Store) SetGoal(ctx context.Context, role catalog.CareerRole) {
	s.Mutate(ctx, func(p *UserProfile) {
		p.CareerGoal = role
	})
}

// Logout clears the in-memory profile and removes the durable key.
func (s *Store) Logout(ctx context.Context) {
	s.current = nil
	if err := s.blobs.Delete(ctx, StorageKey); err != nil {
		s.warning = fmt.Sprintf("could not clear saved profile: %v", err)
	}
}

// TakeWarning returns and clears the pending storage warning, if any.
func (s *Store) TakeWarning() string {
	w := s.warning
	s.warning = ""
	return w
}

func (s *Store) persist(ctx context.Context) {
	payload, err := Encode(*s.current)
	if err == nil {
		err = s.blobs.Put(ctx, StorageKey, payload)
	}
	if err != nil {
		s.warning = fmt.Sprintf("profile not saved: %v", err)
		return
	}
	s.warning = ""
}
