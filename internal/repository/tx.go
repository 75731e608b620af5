package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type txKey struct{}

// TxManager opens a transaction and hands it to repositories through the context.
type TxManager struct {
	db *dbpg.DB
}

func NewTxManager(db *dbpg.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// executor runs statements on the transaction carried by ctx, or on the pool
// with retries when there is none. Statements inside a transaction are never
// retried: a failed statement aborts the whole transaction anyway.
type executor struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func newExecutor(db *dbpg.DB) executor {
	return executor{db: db, strategy: defaultStrategy()}
}

func (e executor) queryRow(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	if tx, ok := txFromContext(ctx); ok {
		return tx.QueryRowContext(ctx, query, args...), nil
	}
	return e.db.QueryRowWithRetry(ctx, e.strategy, query, args...)
}

func (e executor) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if tx, ok := txFromContext(ctx); ok {
		return tx.QueryContext(ctx, query, args...)
	}
	return e.db.QueryWithRetry(ctx, e.strategy, query, args...)
}

func (e executor) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx, ok := txFromContext(ctx); ok {
		return tx.ExecContext(ctx, query, args...)
	}
	return e.db.ExecWithRetry(ctx, e.strategy, query, args...)
}

// execOne fails with notFound when the statement touched no row.
func (e executor) execOne(ctx context.Context, notFound error, query string, args ...any) error {
	res, err := e.exec(ctx, query, args...)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}

	return nil
}
