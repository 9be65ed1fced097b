package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

var solveEventColumns = []string{
	"sequence", "timestamp", "problem_id", "decimal_operand",
	"integer_operand", "product", "mistakes",
}

func (r *eventRepo) AppendSolve(ctx context.Context, data SolveEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).Insert(solveEventsTable).
		Columns(solveEventColumns...).
		Values(
			seqNum, time.Now().UTC(), data.ProblemID, data.Decimal,
			data.Integer, data.Product, data.Mistakes,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save solve event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySolves(ctx context.Context, opts QueryOpts) ([]SolveEvent, error) {
	s := entsql.Dialect(dialect.SQLite).
		Select(solveEventColumns...).
		From(entsql.Table(solveEventsTable))
	query, args := applyQueryOpts(s, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query solve events: %w", err)
	}
	defer rows.Close()

	var events []SolveEvent
	for rows.Next() {
		var e SolveEvent
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.ProblemID, &e.Decimal,
			&e.Integer, &e.Product, &e.Mistakes); err != nil {
			return nil, fmt.Errorf("scan solve event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) SolveStats(ctx context.Context) (SolveStats, error) {
	b := entsql.Dialect(dialect.SQLite)

	query, args := b.Select(
		entsql.Count("*"),
		fmt.Sprintf("COALESCE(%s, 0)", entsql.Sum("mistakes")),
	).From(entsql.Table(solveEventsTable)).Query()

	var st SolveStats
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&st.Solved, &st.TotalMistakes); err != nil {
		return SolveStats{}, fmt.Errorf("query solve totals: %w", err)
	}
	if st.Solved == 0 {
		return st, nil
	}

	query, args = b.Select(entsql.Count("*")).
		From(entsql.Table(solveEventsTable)).
		Where(entsql.EQ("mistakes", 0)).
		Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&st.FirstTry); err != nil {
		return SolveStats{}, fmt.Errorf("query first-try solves: %w", err)
	}

	query, args = b.Select("timestamp").
		From(entsql.Table(solveEventsTable)).
		OrderBy(entsql.Desc("sequence")).
		Limit(1).
		Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&st.LastSolved); err != nil {
		return SolveStats{}, fmt.Errorf("query last solve: %w", err)
	}
	return st, nil
}
