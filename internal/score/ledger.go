// Package score keeps the learner's running score.
package score

import (
	"context"
	"fmt"

	"github.com/abhisek/hoot/internal/store"
)

// Key is the counter name the score is stored under.
const Key = "score"

// Ledger is a durable, non-negative score.
type Ledger struct {
	counters store.CounterRepo
}

// NewLedger creates a Ledger over counters.
func NewLedger(counters store.CounterRepo) *Ledger {
	return &Ledger{counters: counters}
}

// Read returns the current score.
func (l *Ledger) Read(ctx context.Context) (int, error) {
	v, err := l.counters.Get(ctx, Key)
	if err != nil {
		return 0, fmt.Errorf("read score: %w", err)
	}
	return int(max(v, 0)), nil
}

// Increment adds one point and returns the new score.
func (l *Ledger) Increment(ctx context.Context) (int, error) {
	v, err := l.counters.Add(ctx, Key, 1)
	if err != nil {
		return 0, fmt.Errorf("increment score: %w", err)
	}
	return int(v), nil
}

// Reset sets the score to zero.
func (l *Ledger) Reset(ctx context.Context) error {
	if err := l.counters.Set(ctx, Key, 0); err != nil {
		return fmt.Errorf("reset score: %w", err)
	}
	return nil
}
