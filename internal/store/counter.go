package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// counterRepo implements CounterRepo on the counters table.
type counterRepo struct {
	db *sql.DB
}

func (r *counterRepo) Get(ctx context.Context, name string) (int64, error) {
	v, err := readCounter(ctx, r.db, name)
	if err != nil {
		return 0, fmt.Errorf("read counter %q: %w", name, err)
	}
	return v, nil
}

func (r *counterRepo) Add(ctx context.Context, name string, delta int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	b := entsql.Dialect(dialect.SQLite)
	now := time.Now().UTC()

	query, args := b.Insert(countersTable).
		Columns("name", "value", "updated_at").
		Values(name, 0, now).
		OnConflict(entsql.ConflictColumns("name"), entsql.DoNothing()).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("seed counter %q: %w", name, err)
	}

	query, args = b.Update(countersTable).
		Add("value", delta).
		Set("updated_at", now).
		Where(entsql.EQ("name", name)).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("add to counter %q: %w", name, err)
	}

	v, err := readCounter(ctx, tx, name)
	if err != nil {
		return 0, fmt.Errorf("read counter %q: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit counter %q: %w", name, err)
	}
	return v, nil
}

func (r *counterRepo) Set(ctx context.Context, name string, value int64) error {
	query, args := entsql.Dialect(dialect.SQLite).Insert(countersTable).
		Columns("name", "value", "updated_at").
		Values(name, value, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set counter %q: %w", name, err)
	}
	return nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func readCounter(ctx context.Context, q queryRower, name string) (int64, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table(countersTable)).
		Where(entsql.EQ("name", name)).
		Query()

	var v int64
	err := q.QueryRowContext(ctx, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return v, err
}
