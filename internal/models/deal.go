package models

import (
	"time"

	"github.com/google/uuid"
)

// Deal statuses
const (
	DealStatusAwaitingConfirmation = "awaiting_confirmation"
	DealStatusConfirmed            = "confirmed"
	DealStatusCompleted            = "completed"
	DealStatusRefunded             = "refunded"
)

// Valid state transitions: from -> []to
var ValidDealTransitions = map[string][]string{
	DealStatusAwaitingConfirmation: {DealStatusConfirmed, DealStatusRefunded},
	DealStatusConfirmed:            {DealStatusCompleted},
	DealStatusCompleted:            {},
	DealStatusRefunded:             {},
}

func IsValidTransition(from, to string) bool {
	allowed, ok := ValidDealTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition exists from the status.
func IsTerminal(status string) bool {
	allowed, ok := ValidDealTransitions[status]
	return ok && len(allowed) == 0
}

// Deal is one escrow agreement between a buyer and a seller for a fixed
// amount. Buyer, seller and the original amount are immutable after creation;
// Amount is zeroed exactly once, at the moment custody is released.
type Deal struct {
	ID              uint64    `json:"id"`
	Buyer           uuid.UUID `json:"buyer"`
	Seller          uuid.UUID `json:"seller"`
	Amount          uint64    `json:"amount"`
	BuyerConfirmed  bool      `json:"buyer_confirmed"`
	SellerConfirmed bool      `json:"seller_confirmed"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsParty reports whether account is the deal's buyer or seller.
func (d *Deal) IsParty(account uuid.UUID) bool {
	return account == d.Buyer || account == d.Seller
}
