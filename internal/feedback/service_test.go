package feedback

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/hoot/internal/llm"
)

func text(s string) llm.MockResponse {
	return llm.MockText(s)
}

func TestService_ReturnsProviderText(t *testing.T) {
	mock := llm.NewMockProvider(text("  Detective Hoot found 3.9 clues in 5 rooms!  "))
	svc := NewService(mock, DefaultConfig())

	got := svc.Introduction(context.Background(), 3.9, 5)
	if got != "Detective Hoot found 3.9 clues in 5 rooms!" {
		t.Errorf("Introduction() = %q", got)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("CallCount() = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != systemPrompt {
		t.Errorf("System = %q, want the owl persona", req.System)
	}
	if !strings.Contains(req.Messages[0].Content, "3.9 x 5") {
		t.Errorf("prompt %q does not mention the problem", req.Messages[0].Content)
	}
}

func TestService_FallbackOnError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{RetryAfter: time.Second}},
		llm.MockResponse{Err: errors.New("boom")},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := NewService(mock, DefaultConfig())
	ctx := context.Background()

	if got := svc.Introduction(ctx, 2.5, 4); got != "Let's multiply 2.5 × 4 together!" {
		t.Errorf("Introduction() = %q", got)
	}
	if got := svc.Hint(ctx, "Counting Decimals", "2.5 x 4", "3"); got != FallbackHint {
		t.Errorf("Hint() = %q", got)
	}
	if got := svc.Celebration(ctx); got != FallbackCelebration {
		t.Errorf("Celebration() = %q", got)
	}
}

func TestService_FallbackOnEmptyText(t *testing.T) {
	mock := llm.NewMockProvider(text("   "))
	svc := NewService(mock, DefaultConfig())

	if got := svc.Hint(context.Background(), "Integer Multiplication", "39 x 5", "190"); got != FallbackHint {
		t.Errorf("Hint() = %q, want fallback", got)
	}
}

func TestService_NilProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	if got := svc.Introduction(context.Background(), 4, 6); got != "Let's multiply 4 × 6 together!" {
		t.Errorf("Introduction() = %q", got)
	}
}

func TestService_TrimsTruncatedText(t *testing.T) {
	truncated := text("Great sleuthing! You hopped the dot into place. Next time try")
	truncated.StopReason = llm.StopMaxTokens
	noSentence := text("Great sleuthing and")
	noSentence.StopReason = llm.StopMaxTokens
	mock := llm.NewMockProvider(truncated, noSentence)
	svc := NewService(mock, DefaultConfig())

	if got := svc.Celebration(context.Background()); got != "Great sleuthing! You hopped the dot into place." {
		t.Errorf("Celebration() = %q", got)
	}
	if got := svc.Celebration(context.Background()); got != FallbackCelebration {
		t.Errorf("Celebration() = %q, want fallback", got)
	}
}

// blockingProvider waits for the context to end.
type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestService_FallbackOnTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond
	svc := NewService(blockingProvider{}, cfg)

	start := time.Now()
	got := svc.Celebration(context.Background())
	if got != FallbackCelebration {
		t.Errorf("Celebration() = %q, want fallback", got)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timeout not applied, took %v", elapsed)
	}
}

// deadlineProvider records whether each call carried a deadline.
type deadlineProvider struct {
	bounded []bool
}

func (p *deadlineProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	_, ok := ctx.Deadline()
	p.bounded = append(p.bounded, ok)
	return &llm.Response{Text: "Hoot!"}, nil
}

func (p *deadlineProvider) ModelID() string { return "deadline" }

func TestService_NonPositiveTimeoutUsesDefault(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		cfg := DefaultConfig()
		cfg.Timeout = timeout
		p := &deadlineProvider{}
		svc := NewService(p, cfg)

		if svc.cfg.Timeout != DefaultConfig().Timeout {
			t.Errorf("timeout %v: cfg.Timeout = %v, want %v", timeout, svc.cfg.Timeout, DefaultConfig().Timeout)
		}
		svc.Celebration(context.Background())
		if len(p.bounded) != 1 || !p.bounded[0] {
			t.Errorf("timeout %v: call had no deadline", timeout)
		}
	}
}

// purposeProvider records the purpose label of each call.
type purposeProvider struct {
	purposes []string
}

func (p *purposeProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.purposes = append(p.purposes, llm.PurposeFrom(ctx))
	return &llm.Response{Text: "ok"}, nil
}

func (p *purposeProvider) ModelID() string { return "purpose" }

func TestService_TagsPurpose(t *testing.T) {
	p := &purposeProvider{}
	svc := NewService(p, DefaultConfig())
	ctx := context.Background()

	svc.Introduction(ctx, 1.5, 3)
	svc.Hint(ctx, "Counting Decimals", "1.5 x 3", "2")
	svc.Celebration(ctx)

	want := []string{PurposeIntro, PurposeHint, PurposeCelebration}
	if len(p.purposes) != len(want) {
		t.Fatalf("purposes = %v, want %v", p.purposes, want)
	}
	for i := range want {
		if p.purposes[i] != want[i] {
			t.Errorf("purposes[%d] = %q, want %q", i, p.purposes[i], want[i])
		}
	}
}

func TestHintPrompt(t *testing.T) {
	got := hintPrompt("Integer Multiplication", "39 x 5", "190")
	for _, want := range []string{`"Integer Multiplication"`, "39 x 5", "They answered: 190"} {
		if !strings.Contains(got, want) {
			t.Errorf("hint prompt missing %q:\n%s", want, got)
		}
	}
}
