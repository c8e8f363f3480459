// Package payments moves value between party accounts and escrow custody.
// The escrow service only ever talks to the Treasury interface; any failure
// reported by it aborts the calling operation.
package payments

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnknownAccount    = errors.New("unknown account")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Treasury is the payment rail. Collect debits a party into custody at deal
// creation; Payout credits a party when custody is released. Implementations
// must not call back into the escrow service.
type Treasury interface {
	Collect(ctx context.Context, from uuid.UUID, amount uint64) error
	Payout(ctx context.Context, to uuid.UUID, amount uint64) error
}
