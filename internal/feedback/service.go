package feedback

import (
	"context"
	"strings"

	"github.com/abhisek/hoot/internal/llm"
)

// Event purposes recorded by the LLM logging decorator.
const (
	PurposeIntro       = "intro"
	PurposeHint        = "hint"
	PurposeCelebration = "celebration"
)

// Service is a Channel backed by an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor text service. A nil provider makes every call
// return its fallback. A non-positive timeout is replaced by the default so
// every call stays bounded.
func NewService(provider llm.Provider, cfg Config) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Service{provider: provider, cfg: cfg}
}

func (s *Service) Introduction(ctx context.Context, decimal float64, integer int) string {
	return s.generate(ctx, PurposeIntro, introductionPrompt(decimal, integer), FallbackIntroduction(decimal, integer))
}

func (s *Service) Hint(ctx context.Context, step, problem, submitted string) string {
	return s.generate(ctx, PurposeHint, hintPrompt(step, problem, submitted), FallbackHint)
}

func (s *Service) Celebration(ctx context.Context) string {
	return s.generate(ctx, PurposeCelebration, celebrationPrompt, FallbackCelebration)
}

func (s *Service) generate(ctx context.Context, purpose, prompt, fallback string) string {
	if s.provider == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, purpose), s.cfg.Timeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil || ctx.Err() != nil {
		return fallback
	}

	text := strings.TrimSpace(resp.Text)
	if resp.StopReason == llm.StopMaxTokens {
		text = lastSentence(text)
	}
	if text == "" {
		return fallback
	}
	return text
}

// lastSentence cuts truncated text back to its last complete sentence. Text
// without a sentence end is dropped.
func lastSentence(text string) string {
	cut := strings.LastIndexAny(text, ".!?")
	if cut < 0 {
		return ""
	}
	return strings.TrimSpace(text[:cut+1])
}
