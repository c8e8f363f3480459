package events

import "context"

// Deal event types. Payloads carry the exact tuples the escrow service
// emits, nothing more.
const (
	EventDealCreated   = "deal_created"   // deal_id, buyer, seller, amount
	EventDealConfirmed = "deal_confirmed" // deal_id, party
	EventFundsReleased = "funds_released" // deal_id, amount
	EventDealRefunded  = "deal_refunded"  // deal_id, amount
)

// StreamDeals is the pub/sub channel all deal notifications go to.
const StreamDeals = "events:deal"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
