package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(MockText("Hoot!"))
	resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

	require.NoError(t, err)
	assert.Equal(t, "Hoot!", resp.Text)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(down(), MockText("Hoot!"))
	resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

	require.NoError(t, err)
	assert.Equal(t, "Hoot!", resp.Text)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(down(), down(), down(), MockText("never"))
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
	assert.Equal(t, 3, mock.CallCount())
}

func TestRetry_NotRetried(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unauthorized", &ErrUnauthorized{Err: errors.New("401")}},
		{"canceled", context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(MockResponse{Err: tt.err}, MockText("never"))
			_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, 1, mock.CallCount())
		})
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	invalid := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("filtered")}}
	mock := NewMockProvider(invalid, invalid, MockText("never"))
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

	assert.Error(t, err)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetry_StopsWhenContextEnds(t *testing.T) {
	mock := NewMockProvider(down(), down(), MockText("never"))
	cfg := fastRetry()
	cfg.InitialWait = time.Minute
	cfg.MaxWait = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_SingleAttemptWhenUnset(t *testing.T) {
	mock := NewMockProvider(down(), MockText("never"))
	_, err := WithRetry(mock, RetryConfig{}).Generate(context.Background(), Request{})

	assert.Error(t, err)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_Backoff(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{
		InitialWait: 100 * time.Millisecond,
		MaxWait:     time.Second,
		Multiplier:  2,
	}}

	assert.Equal(t, 300*time.Millisecond, r.backoff(0, &ErrRateLimit{RetryAfter: 300 * time.Millisecond}))
	assert.Equal(t, time.Second, r.backoff(0, &ErrRateLimit{RetryAfter: time.Hour}), "capped at MaxWait")

	wait := r.backoff(2, errors.New("x"))
	assert.GreaterOrEqual(t, wait, 320*time.Millisecond)
	assert.LessOrEqual(t, wait, 480*time.Millisecond)

	wait = r.backoff(10, errors.New("x"))
	assert.LessOrEqual(t, wait, 1200*time.Millisecond)
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	assert.Equal(t, "mock", WithRetry(NewMockProvider(), fastRetry()).ModelID())
}
