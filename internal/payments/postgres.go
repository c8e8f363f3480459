package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountTreasury is the Postgres-backed Treasury. Collected value is parked
// on a dedicated custody row so the accounts table always sums to the total
// issued supply.
type AccountTreasury struct {
	pool    *pgxpool.Pool
	custody uuid.UUID
}

func NewAccountTreasury(pool *pgxpool.Pool, custody uuid.UUID) *AccountTreasury {
	return &AccountTreasury{pool: pool, custody: custody}
}

func (t *AccountTreasury) Collect(ctx context.Context, from uuid.UUID, amount uint64) error {
	return t.move(ctx, from, t.custody, amount)
}

func (t *AccountTreasury) Payout(ctx context.Context, to uuid.UUID, amount uint64) error {
	return t.move(ctx, t.custody, to, amount)
}

func (t *AccountTreasury) move(ctx context.Context, from, to uuid.UUID, amount uint64) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE accounts SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
	`, amount, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)`, from).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrUnknownAccount
		}
		return ErrInsufficientFunds
	}

	tag, err = tx.Exec(ctx, `UPDATE accounts SET balance = balance + $1 WHERE id = $2`, amount, to)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUnknownAccount
	}

	return tx.Commit(ctx)
}
