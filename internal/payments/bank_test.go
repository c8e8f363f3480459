package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestBankCollectAndPayout(t *testing.T) {
	ctx := context.Background()
	bank := NewBank()

	alice := uuid.New()
	bob := uuid.New()
	bank.Open(alice, 100)
	bank.Open(bob, 0)

	if err := bank.Collect(ctx, alice, 30); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if got := bank.Balance(alice); got != 70 {
		t.Errorf("alice balance = %d, want 70", got)
	}

	if err := bank.Payout(ctx, bob, 30); err != nil {
		t.Fatalf("Payout: %v", err)
	}
	if got := bank.Balance(bob); got != 30 {
		t.Errorf("bob balance = %d, want 30", got)
	}
}

func TestBankCollectInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	bank := NewBank()

	alice := uuid.New()
	bank.Open(alice, 10)

	err := bank.Collect(ctx, alice, 11)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Collect = %v, want ErrInsufficientFunds", err)
	}
	if got := bank.Balance(alice); got != 10 {
		t.Errorf("failed collect changed balance: %d", got)
	}
}

func TestBankUnknownAccount(t *testing.T) {
	ctx := context.Background()
	bank := NewBank()

	if err := bank.Collect(ctx, uuid.New(), 1); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("Collect unknown = %v, want ErrUnknownAccount", err)
	}
	if err := bank.Payout(ctx, uuid.New(), 1); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("Payout unknown = %v, want ErrUnknownAccount", err)
	}
}

func TestBankOpenTopsUp(t *testing.T) {
	bank := NewBank()
	id := uuid.New()
	bank.Open(id, 5)
	bank.Open(id, 5)
	if got := bank.Balance(id); got != 10 {
		t.Errorf("balance = %d, want 10", got)
	}
}
