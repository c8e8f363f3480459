package payments

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Bank is an in-memory Treasury keeping plain balances per account. Used in
// tests and local demos; production wires AccountTreasury instead.
type Bank struct {
	mu       sync.Mutex
	balances map[uuid.UUID]uint64
}

func NewBank() *Bank {
	return &Bank{balances: make(map[uuid.UUID]uint64)}
}

// Open creates or tops up an account.
func (b *Bank) Open(account uuid.UUID, balance uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[account] += balance
}

func (b *Bank) Balance(account uuid.UUID) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[account]
}

func (b *Bank) Collect(ctx context.Context, from uuid.UUID, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	balance, ok := b.balances[from]
	if !ok {
		return ErrUnknownAccount
	}
	if balance < amount {
		return ErrInsufficientFunds
	}
	b.balances[from] = balance - amount
	return nil
}

func (b *Bank) Payout(ctx context.Context, to uuid.UUID, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.balances[to]; !ok {
		return ErrUnknownAccount
	}
	b.balances[to] += amount
	return nil
}
