package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only; empty matches all
}

// CounterRepo stores named integer counters.
type CounterRepo interface {
	// Get returns the counter value, or 0 if it was never written.
	Get(ctx context.Context, name string) (int64, error)

	// Add adds delta to the counter and returns the new value.
	Add(ctx context.Context, name string, delta int64) (int64, error)

	// Set overwrites the counter value.
	Set(ctx context.Context, name string, value int64) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	StopReason   string
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int64 // sequence number
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM events by purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// SolveEventData captures one solved problem.
type SolveEventData struct {
	ProblemID string
	Decimal   float64
	Integer   int
	Product   string
	Mistakes  int
}

// SolveEvent is a stored solve event.
type SolveEvent struct {
	Sequence  int64
	Timestamp time.Time
	SolveEventData
}

// SolveStats summarizes all solve events.
type SolveStats struct {
	Solved        int
	FirstTry      int // solved with no mistakes
	TotalMistakes int
	LastSolved    time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendSolve records a solved problem.
	AppendSolve(ctx context.Context, data SolveEventData) error

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns the event with the given ID, or nil if none.
	GetLLMEvent(ctx context.Context, id int64) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates LLM events per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM events per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// QuerySolves returns solve events newest first.
	QuerySolves(ctx context.Context, opts QueryOpts) ([]SolveEvent, error)

	// SolveStats summarizes all solve events.
	SolveStats(ctx context.Context) (SolveStats, error)
}
