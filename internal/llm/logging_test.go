package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/hoot/internal/store"
)

// recordingRepo captures LLM events. Other EventRepo methods are not used.
type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Text:  "Great job!",
		Usage: Usage{InputTokens: 12, OutputTokens: 3},
	})
	p := WithLogging(mock, "anthropic", repo)

	ctx := WithPurpose(context.Background(), "celebration")
	resp, err := p.Generate(ctx, Request{
		System:   "be kind",
		Messages: []Message{{Role: RoleUser, Content: "congratulate"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Great job!" {
		t.Errorf("text = %q", resp.Text)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "anthropic" || e.Model != "mock" || e.Purpose != "celebration" {
		t.Errorf("event = %+v", e)
	}
	if !e.Success || e.InputTokens != 12 || e.OutputTokens != 3 {
		t.Errorf("event = %+v", e)
	}
	if !strings.Contains(e.RequestBody, "[system]\nbe kind") || !strings.Contains(e.RequestBody, "[user]\ncongratulate") {
		t.Errorf("request body = %q", e.RequestBody)
	}
	if e.ResponseBody != "Great job!" {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, "openai", repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	e := repo.events[0]
	if e.Success || e.ErrorMessage != "boom" || e.Purpose != "unknown" {
		t.Errorf("event = %+v", e)
	}
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockText("ok"))
	p := WithLogging(mock, "gemini", repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, &recordingRepo{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID() = %q, want mock", p.ModelID())
	}
}

func TestNewProvider_MissingKey(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "openrouter"}, &recordingRepo{})
	if err == nil {
		t.Fatal("expected error for missing key")
	}
}

func TestLogging_RecordsStopReasonAndText(t *testing.T) {
	repo := &recordingRepo{}
	truncated := MockText("You hopped the dot")
	truncated.StopReason = StopMaxTokens
	p := WithLogging(NewMockProvider(truncated), "mock", repo)

	_, err := p.Generate(WithPurpose(context.Background(), "hint"), Request{
		Messages: []Message{{Role: RoleUser, Content: "hint please"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := repo.events[0]
	if e.StopReason != StopMaxTokens {
		t.Errorf("stop reason = %q", e.StopReason)
	}
	if e.ResponseBody != "You hopped the dot" {
		t.Errorf("response body = %q", e.ResponseBody)
	}
	if e.RequestBody != "[user]\nhint please\n" {
		t.Errorf("request body = %q", e.RequestBody)
	}
}

func TestNewProvider_WrapsMockWithLogging(t *testing.T) {
	repo := &recordingRepo{}
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	cfg.Retry = RetryConfig{MaxAttempts: 1}

	p, err := NewProvider(context.Background(), cfg, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected the empty mock to fail")
	}
	if len(repo.events) != 1 || repo.events[0].Provider != "mock" {
		t.Errorf("events = %+v", repo.events)
	}
}
