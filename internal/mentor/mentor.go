// Package mentor implements the AI career-coach features: freeform
// chat, structured career discovery, and daily study tips. It sits on
// top of llm.Provider and owns all prompt construction, so callers
// never see provider details.
package mentor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/edupath/pathfinder/internal/llm"
)

// User-visible fallback replies. Chat never surfaces raw provider
// errors to the user.
const (
	ApologyUnavailable = "I'm having a bit of trouble connecting to my brain right now. Please check back in a second!"
	ApologyEmpty       = "I'm sorry, I couldn't process that. Can you try again?"
)

// maxHistoryTurns bounds how much conversation is replayed per request.
const maxHistoryTurns = 20

// Turn is a single chat exchange as shown to the user.
type Turn struct {
	Role    llm.Role
	Content string
}

// RoleSuggestion is one career path proposed by DiscoverCareer.
type RoleSuggestion struct {
	Role     string  `json:"role"`
	Reason   string  `json:"reason"`
	FitScore float64 `json:"fitScore"`
}

// Service exposes the mentor features over a single provider.
type Service struct {
	provider llm.Provider
}

// New creates a mentor Service backed by the given provider.
func New(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Chat sends a user message with the preceding conversation and
// returns the mentor's reply. Provider failures are swallowed and
// replaced with a fixed apology so the conversation can continue.
func (s *Service) Chat(ctx context.Context, careerGoal string, history []Turn, message string) string {
	ctx = llm.WithPurpose(ctx, "mentor-chat")

	goal := careerGoal
	if goal == "" {
		goal = "tech career"
	}

	msgs := make([]llm.Message, 0, len(history)+1)
	for _, t := range trimHistory(history) {
		msgs = append(msgs, llm.Message{Role: t.Role, Content: t.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: fmt.Sprintf("You are EduPath Mentor, a friendly and motivational AI career coach for students. "+
			"You help with %s roadmaps, time management, and learning doubts. "+
			"Always be encouraging and provide structured advice.", goal),
		Messages:    msgs,
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return ApologyUnavailable
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return ApologyEmpty
	}
	return reply
}

// DiscoverCareer asks for the top career paths matching the user's
// interests and goals. The reply is schema-validated JSON; entries
// missing a role or reason are dropped rather than shown half-empty.
func (s *Service) DiscoverCareer(ctx context.Context, interests []string, goals string) ([]RoleSuggestion, error) {
	ctx = llm.WithPurpose(ctx, "discover-career")

	prompt := fmt.Sprintf("Based on my interests: %s and my career goals: %s, "+
		"what are the top 3 best career paths for me from the tech industry? "+
		"Provide reasons for each.", strings.Join(interests, ", "), goals)

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      roleSuggestionsSchema(),
		MaxTokens:   1024,
		Temperature: 0.4,
	})
	if err != nil {
		return nil, fmt.Errorf("discover career: %w", err)
	}

	var payload struct {
		Roles []RoleSuggestion `json:"roles"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("discover career: decode: %w", err)
	}

	out := payload.Roles[:0]
	for _, r := range payload.Roles {
		if strings.TrimSpace(r.Role) == "" || strings.TrimSpace(r.Reason) == "" {
			continue
		}
		if r.FitScore < 0 {
			r.FitScore = 0
		}
		if r.FitScore > 100 {
			r.FitScore = 100
		}
		out = append(out, r)
	}
	return out, nil
}

// DailyTips returns a short motivational tips blurb for the user's
// current role and roadmap progress.
func (s *Service) DailyTips(ctx context.Context, role string, progress int) (string, error) {
	ctx = llm.WithPurpose(ctx, "daily-tips")

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	prompt := fmt.Sprintf("I am learning to be a %s and I am %d%% complete with my roadmap. "+
		"Give me 3 actionable tips for today to stay productive and learn effectively. "+
		"Keep it motivational.", role, progress)

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   768,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("daily tips: %w", err)
	}

	tips := strings.TrimSpace(resp.Text())
	if tips == "" {
		return "", &llm.ErrInvalidResponse{Err: fmt.Errorf("empty tips reply")}
	}
	return tips, nil
}

func trimHistory(history []Turn) []Turn {
	if len(history) <= maxHistoryTurns {
		return history
	}
	return history[len(history)-maxHistoryTurns:]
}

func roleSuggestionsSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "role-suggestions",
		Description: "Career paths ranked by fit for the user",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"roles": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"role":     map[string]any{"type": "string"},
							"reason":   map[string]any{"type": "string"},
							"fitScore": map[string]any{"type": "number"},
						},
						"required":             []any{"role", "reason", "fitScore"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"roles"},
			"additionalProperties": false,
		},
	}
}
