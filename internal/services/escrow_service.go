package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/escrow-desk/backend/internal/events"
	"github.com/escrow-desk/backend/internal/ledger"
	"github.com/escrow-desk/backend/internal/models"
	"github.com/escrow-desk/backend/internal/payments"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuditLogger records operations for the append-only audit trail. Failures
// are tolerated; audit is observability, not state.
type AuditLogger interface {
	Log(ctx context.Context, entry models.AuditLog) error
	ListByDeal(ctx context.Context, dealID uint64, limit, offset int) ([]models.AuditLog, error)
}

// EscrowService owns the deal lifecycle. All mutating operations are
// serialized by a single mutex, so each call either fully applies its state
// change and transfer or fully fails with no observable effect.
//
// Invariant: state commit strictly precedes the external transfer. The
// treasury is called only after the deal record has been advanced, so a
// re-entrant or retried attempt observes the new status and is rejected by
// the state guard. A payout failure rolls the record back before returning.
type EscrowService struct {
	mu        sync.Mutex
	store     *ledger.Store
	treasury  payments.Treasury
	audit     AuditLogger
	publisher events.Publisher
	log       *zap.Logger
}

func NewEscrowService(
	store *ledger.Store,
	treasury payments.Treasury,
	audit AuditLogger,
	publisher events.Publisher,
	log *zap.Logger,
) *EscrowService {
	return &EscrowService{
		store:     store,
		treasury:  treasury,
		audit:     audit,
		publisher: publisher,
		log:       log,
	}
}

// CreateDeal collects the deposit from the buyer into custody and records a
// new deal awaiting confirmation from both parties.
func (s *EscrowService) CreateDeal(ctx context.Context, buyer, seller uuid.UUID, amount uint64) (*models.Deal, error) {
	if amount == 0 {
		return nil, ErrInvalidDeposit
	}
	if seller == uuid.Nil || seller == buyer {
		return nil, ErrInvalidParty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.treasury.Collect(ctx, buyer, amount); err != nil {
		return nil, fmt.Errorf("collect deposit: %w", err)
	}

	deal := &models.Deal{
		Buyer:  buyer,
		Seller: seller,
		Amount: amount,
		Status: models.DealStatusAwaitingConfirmation,
	}
	id := s.store.Create(deal)

	s.record(ctx, &buyer, "deal_created", id, map[string]any{"seller": seller.String(), "amount": amount})
	s.emit(ctx, events.EventDealCreated, map[string]any{
		"deal_id": id,
		"buyer":   buyer.String(),
		"seller":  seller.String(),
		"amount":  amount,
	})

	s.log.Info("deal created",
		zap.Uint64("deal_id", id),
		zap.String("buyer", buyer.String()),
		zap.String("seller", seller.String()),
		zap.Uint64("amount", amount),
	)
	return deal, nil
}

// Confirm sets the caller's confirmation flag. When the second flag lands the
// deal moves to confirmed in the same atomic step; no observable state exists
// with both flags true and the status still awaiting.
func (s *EscrowService) Confirm(ctx context.Context, dealID uint64, caller uuid.UUID) (*models.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var after models.Deal
	err := s.store.Update(dealID, func(d *models.Deal) error {
		if !d.IsParty(caller) {
			return ErrUnauthorized
		}
		if d.Status != models.DealStatusAwaitingConfirmation {
			return ErrInvalidState
		}

		switch caller {
		case d.Buyer:
			if d.BuyerConfirmed {
				return ErrAlreadyConfirmed
			}
			d.BuyerConfirmed = true
		case d.Seller:
			if d.SellerConfirmed {
				return ErrAlreadyConfirmed
			}
			d.SellerConfirmed = true
		}

		if d.BuyerConfirmed && d.SellerConfirmed {
			if err := s.transition(d, models.DealStatusConfirmed); err != nil {
				return err
			}
		}
		after = *d
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, &caller, "deal_confirmed", dealID, map[string]any{"status": after.Status})
	s.emit(ctx, events.EventDealConfirmed, map[string]any{
		"deal_id": dealID,
		"party":   caller.String(),
	})

	s.log.Info("deal confirmed by party",
		zap.Uint64("deal_id", dealID),
		zap.String("party", caller.String()),
		zap.String("status", after.Status),
	)
	return &after, nil
}

// ReleaseFunds completes a confirmed deal and pays the custodied amount out
// to the seller. Only the buyer may release.
func (s *EscrowService) ReleaseFunds(ctx context.Context, dealID uint64, caller uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Get(dealID)
	if err != nil {
		return err
	}
	if caller != snap.Buyer {
		return ErrUnauthorized
	}
	if snap.Status != models.DealStatusConfirmed {
		return ErrInvalidState
	}

	amount := snap.Amount

	// Commit state first: a second attempt hits the status guard above.
	err = s.store.Update(dealID, func(d *models.Deal) error {
		if err := s.transition(d, models.DealStatusCompleted); err != nil {
			return err
		}
		d.Amount = 0
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.treasury.Payout(ctx, snap.Seller, amount); err != nil {
		s.rollback(dealID, models.DealStatusConfirmed, amount)
		s.log.Error("payout to seller failed",
			zap.Uint64("deal_id", dealID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s", ErrTransferFailed, err)
	}

	s.record(ctx, &caller, "funds_released", dealID, map[string]any{"amount": amount})
	s.emit(ctx, events.EventFundsReleased, map[string]any{
		"deal_id": dealID,
		"amount":  amount,
	})

	s.log.Info("funds released", zap.Uint64("deal_id", dealID), zap.Uint64("amount", amount))
	return nil
}

// Refund returns the custodied amount to the buyer. Available only while the
// deal still awaits confirmation; once both parties confirmed, refund is
// permanently closed.
func (s *EscrowService) Refund(ctx context.Context, dealID uint64, caller uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Get(dealID)
	if err != nil {
		return err
	}
	if caller != snap.Buyer {
		return ErrUnauthorized
	}
	if snap.Status != models.DealStatusAwaitingConfirmation {
		return ErrInvalidState
	}

	amount := snap.Amount

	err = s.store.Update(dealID, func(d *models.Deal) error {
		if err := s.transition(d, models.DealStatusRefunded); err != nil {
			return err
		}
		d.Amount = 0
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.treasury.Payout(ctx, snap.Buyer, amount); err != nil {
		s.rollback(dealID, models.DealStatusAwaitingConfirmation, amount)
		s.log.Error("refund payout failed",
			zap.Uint64("deal_id", dealID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s", ErrTransferFailed, err)
	}

	s.record(ctx, &caller, "deal_refunded", dealID, map[string]any{"amount": amount})
	s.emit(ctx, events.EventDealRefunded, map[string]any{
		"deal_id": dealID,
		"amount":  amount,
	})

	s.log.Info("deal refunded", zap.Uint64("deal_id", dealID), zap.Uint64("amount", amount))
	return nil
}

// GetDeal returns a read-only snapshot of the deal.
func (s *EscrowService) GetDeal(ctx context.Context, dealID uint64) (models.Deal, error) {
	return s.store.Get(dealID)
}

// DealCount returns the number of deals ever created, which is also the next
// id to be assigned.
func (s *EscrowService) DealCount(ctx context.Context) uint64 {
	return s.store.Count()
}

func (s *EscrowService) GetDealEvents(ctx context.Context, dealID uint64) ([]models.AuditLog, error) {
	if _, err := s.store.Get(dealID); err != nil {
		return nil, err
	}
	return s.audit.ListByDeal(ctx, dealID, 100, 0)
}

// --- helpers ---

func (s *EscrowService) transition(deal *models.Deal, to string) error {
	if !models.IsValidTransition(deal.Status, to) {
		return ErrInvalidState
	}
	deal.Status = to
	return nil
}

// rollback restores status and amount after a failed transfer so the call
// leaves no observable effect.
func (s *EscrowService) rollback(dealID uint64, status string, amount uint64) {
	_ = s.store.Update(dealID, func(d *models.Deal) error {
		d.Status = status
		d.Amount = amount
		return nil
	})
}

func (s *EscrowService) record(ctx context.Context, actor *uuid.UUID, action string, dealID uint64, meta map[string]any) {
	_ = s.audit.Log(ctx, models.AuditLog{
		ActorID:   actor,
		ActorType: "party",
		Action:    action,
		DealID:    &dealID,
		Meta:      meta,
	})
}

func (s *EscrowService) emit(ctx context.Context, eventType string, payload map[string]any) {
	_ = s.publisher.Publish(ctx, events.StreamDeals, events.Event{
		Type:    eventType,
		Payload: payload,
	})
}
