// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Transaction interface for handling DB transactions.
type Transaction interface {
	Commit() error
	Rollback() error
}

// Transactor starts transactions that repositories pick up from the context.
type Transactor interface {
	Begin(ctx context.Context) (context.Context, Transaction, error)
}

type txKey struct{}

// GormTransactor begins GORM transactions and stores them in the returned context.
type GormTransactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// Begin starts a new database transaction. Repository calls made with the
// returned context run inside it until Commit or Rollback.
func (t *GormTransactor) Begin(ctx context.Context) (context.Context, Transaction, error) {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return ctx, nopTransaction{}, nil
	}

	tx := t.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", tx.Error)
	}
	return context.WithValue(ctx, txKey{}, tx), &gormTransaction{tx: tx}, nil
}

// gormTransaction is a wrapper for a GORM DB transaction.
type gormTransaction struct {
	tx   *gorm.DB
	done bool
}

// Commit finalizes the transaction.
func (t *gormTransaction) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.tx.Commit().Error
}

// Rollback reverts the transaction. It is a no-op once the transaction has
// been committed, so callers can defer it unconditionally.
func (t *gormTransaction) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	slog.Warn("Rolling back transaction")
	return t.tx.Rollback().Error
}

// nopTransaction is handed out for nested Begin calls; the outermost caller owns the real one.
type nopTransaction struct{}

func (nopTransaction) Commit() error   { return nil }
func (nopTransaction) Rollback() error { return nil }

// conn returns the transaction carried by ctx, or the base connection.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// isUniqueViolation reports whether err is a unique constraint failure.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
