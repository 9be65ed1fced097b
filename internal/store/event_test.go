package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndQueryLLMEvents(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "intro", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true, StopReason: "max_tokens", RequestBody: "[user]\nhi", ResponseBody: "hello"},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "hint", InputTokens: 120, OutputTokens: 30, LatencyMs: 500, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "hint", LatencyMs: 100, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].ID, "newest first")
	assert.Equal(t, "rate limited", all[0].ErrorMessage)
	assert.False(t, all[0].Timestamp.IsZero())

	hints, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "hint", Limit: 1})
	require.NoError(t, err)
	require.Len(t, hints, 1)
	assert.Equal(t, "hint", hints[0].Purpose)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: 1})
	require.NoError(t, err)
	assert.Len(t, after, 2)

	got, err := repo.GetLLMEvent(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "[user]\nhi", got.RequestBody)
	assert.Equal(t, "hello", got.ResponseBody)
	assert.Equal(t, "max_tokens", got.StopReason)
	assert.True(t, got.Success)

	missing, err := repo.GetLLMEvent(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsage(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "a", Purpose: "hint", InputTokens: 10, OutputTokens: 1, LatencyMs: 100, Success: true}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "a", Purpose: "intro", InputTokens: 20, OutputTokens: 2, LatencyMs: 300, Success: true}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "b", Purpose: "hint", InputTokens: 30, OutputTokens: 3, LatencyMs: 200, Success: true}))

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, "hint", byPurpose[0].Purpose)
	assert.Equal(t, 2, byPurpose[0].Calls)
	assert.Equal(t, 40, byPurpose[0].InputTokens)
	assert.Equal(t, int64(150), byPurpose[0].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "a", byModel[0].Model)
	assert.Equal(t, 3, byModel[0].OutputTokens)
}

func TestSolveEvents(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	empty, err := repo.SolveStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, SolveStats{}, empty)

	solves := []SolveEventData{
		{ProblemID: "p1", Decimal: 3.9, Integer: 5, Product: "19.5", Mistakes: 0},
		{ProblemID: "p2", Decimal: 0.5, Integer: 3, Product: "1.5", Mistakes: 2},
		{ProblemID: "p3", Decimal: 4, Integer: 6, Product: "24", Mistakes: 0},
	}
	for _, s := range solves {
		require.NoError(t, repo.AppendSolve(ctx, s))
	}

	events, err := repo.QuerySolves(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "p3", events[0].ProblemID)
	assert.Equal(t, 0.5, events[1].Decimal)
	assert.Equal(t, "1.5", events[1].Product)

	st, err := repo.SolveStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Solved)
	assert.Equal(t, 2, st.FirstTry)
	assert.Equal(t, 2, st.TotalMistakes)
	assert.False(t, st.LastSolved.IsZero())
}

func TestEventsShareSequence(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "intro", Success: true}))
	require.NoError(t, repo.AppendSolve(ctx, SolveEventData{ProblemID: "p1", Decimal: 1.5, Integer: 2, Product: "3"}))

	solves, err := repo.QuerySolves(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, solves, 1)
	assert.Equal(t, int64(2), solves[0].Sequence)
}
