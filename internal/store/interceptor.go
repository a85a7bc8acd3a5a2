package store

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// QueryInterceptor logs every statement before handing it to the wrapped
// *sql.DB or *sql.Tx.
type QueryInterceptor struct {
	q   querier
	log *zap.SugaredLogger
}

func NewQueryInterceptor(q querier) QueryInterceptor {
	return QueryInterceptor{q: q, log: zap.S().Named("store")}
}

func (i QueryInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := i.q.ExecContext(ctx, query, args...)
	i.trace("exec", query, args, start, err)
	return res, err
}

func (i QueryInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := i.q.QueryContext(ctx, query, args...)
	i.trace("query", query, args, start, err)
	return rows, err
}

func (i QueryInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := i.q.QueryRowContext(ctx, query, args...)
	i.trace("query_row", query, args, start, row.Err())
	return row
}

func (i QueryInterceptor) trace(op, query string, args []any, start time.Time, err error) {
	if err != nil {
		i.log.Debugw(op, "query", query, "args", args, "duration", time.Since(start), "error", err)
		return
	}
	i.log.Debugw(op, "query", query, "args", args, "duration", time.Since(start))
}
