package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type txKey struct{}

// WithReadOnlyTransaction executes fn inside a read-only snapshot. The
// context passed to fn carries the transaction for GetQuerier.
func WithReadOnlyTransaction(ctx context.Context, db *database.DB, fn func(txCtx context.Context) error) error {
	tx, err := db.BeginReadOnlyTx(ctx)
	if err != nil {
		return fmt.Errorf("begin read-only transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				slog.Error("rollback error during panic recovery", "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}

// Snapshotter runs a group of reads against one consistent view.
type Snapshotter interface {
	InSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

type snapshotter struct {
	db *database.DB
}

func NewSnapshotter(db *database.DB) Snapshotter {
	return &snapshotter{db: db}
}

func (s *snapshotter) InSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithReadOnlyTransaction(ctx, s.db, fn)
}
