package mentor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/edupath/pathfinder/internal/llm"
)

func TestChatReturnsReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Start with small daily goals."`),
	})
	svc := New(mock)

	reply := svc.Chat(context.Background(), "Frontend Developer", nil, "How do I stay on track?")
	if reply != "Start with small daily goals." {
		t.Fatalf("unexpected reply %q", reply)
	}

	req := mock.Calls[0]
	if !strings.Contains(req.System, "Frontend Developer") {
		t.Fatalf("system prompt should mention the career goal: %q", req.System)
	}
	if len(req.Messages) != 1 || req.Messages[0].Content != "How do I stay on track?" {
		t.Fatalf("unexpected messages %+v", req.Messages)
	}
}

func TestChatIncludesHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"ok"`)})
	svc := New(mock)

	history := []Turn{
		{Role: llm.RoleUser, Content: "Hi"},
		{Role: llm.RoleAssistant, Content: "Hello! How can I help?"},
	}
	svc.Chat(context.Background(), "Data Scientist", history, "What next?")

	msgs := mock.Calls[0].Messages
	if len(msgs) != 3 {
		t.Fatalf("expected history + new message, got %d messages", len(msgs))
	}
	if msgs[1].Role != llm.RoleAssistant || msgs[2].Content != "What next?" {
		t.Fatalf("history out of order: %+v", msgs)
	}
}

func TestChatTrimsLongHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"ok"`)})
	svc := New(mock)

	history := make([]Turn, 50)
	for i := range history {
		history[i] = Turn{Role: llm.RoleUser, Content: "turn"}
	}
	svc.Chat(context.Background(), "", history, "latest")

	if got := len(mock.Calls[0].Messages); got != maxHistoryTurns+1 {
		t.Fatalf("expected %d messages after trim, got %d", maxHistoryTurns+1, got)
	}
}

func TestChatApologizesOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := New(mock)

	reply := svc.Chat(context.Background(), "", nil, "hello?")
	if reply != ApologyUnavailable {
		t.Fatalf("expected apology, got %q", reply)
	}
}

func TestChatApologizesOnEmptyReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"  "`)})
	svc := New(mock)

	reply := svc.Chat(context.Background(), "", nil, "hello?")
	if reply != ApologyEmpty {
		t.Fatalf("expected empty-reply apology, got %q", reply)
	}
}

func TestDiscoverCareer(t *testing.T) {
	payload := `{"roles":[
		{"role":"Frontend Developer","reason":"You enjoy design and coding.","fitScore":92},
		{"role":"UI/UX Designer","reason":"Strong design interest.","fitScore":85},
		{"role":"","reason":"missing role","fitScore":70}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	svc := New(mock)

	got, err := svc.DiscoverCareer(context.Background(), []string{"Coding", "Design"}, "build beautiful apps")
	if err != nil {
		t.Fatalf("DiscoverCareer failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("malformed entry should be dropped, got %d suggestions", len(got))
	}
	if got[0].Role != "Frontend Developer" || got[0].FitScore != 92 {
		t.Fatalf("unexpected first suggestion %+v", got[0])
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "role-suggestions" {
		t.Fatal("request should carry the role-suggestions schema")
	}
	if !strings.Contains(req.Messages[0].Content, "Coding, Design") {
		t.Fatalf("prompt should list interests: %q", req.Messages[0].Content)
	}
}

func TestDiscoverCareerClampsFitScore(t *testing.T) {
	payload := `{"roles":[{"role":"DevOps Engineer","reason":"Automation.","fitScore":180}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	svc := New(mock)

	got, err := svc.DiscoverCareer(context.Background(), []string{"Ops"}, "reliability")
	if err != nil {
		t.Fatalf("DiscoverCareer failed: %v", err)
	}
	if got[0].FitScore != 100 {
		t.Fatalf("fit score should clamp to 100, got %v", got[0].FitScore)
	}
}

func TestDiscoverCareerPropagatesError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := New(mock)

	if _, err := svc.DiscoverCareer(context.Background(), nil, ""); err == nil {
		t.Fatal("provider failure should surface to the caller")
	}
}

func TestDailyTips(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"1. Review yesterday. 2. Deep work. 3. Reflect."`),
	})
	svc := New(mock)

	tips, err := svc.DailyTips(context.Background(), "Backend Developer", 140)
	if err != nil {
		t.Fatalf("DailyTips failed: %v", err)
	}
	if !strings.Contains(tips, "Deep work") {
		t.Fatalf("unexpected tips %q", tips)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "100% complete") {
		t.Fatalf("progress should clamp to 100: %q", mock.Calls[0].Messages[0].Content)
	}
}

func TestDailyTipsEmptyReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`""`)})
	svc := New(mock)

	if _, err := svc.DailyTips(context.Background(), "Data Analyst", 10); err == nil {
		t.Fatal("empty tips should be an error")
	}
}
