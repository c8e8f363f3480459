package ledger

import (
	"errors"
	"testing"

	"github.com/escrow-desk/backend/internal/models"
	"github.com/google/uuid"
)

func TestCreateAssignsDenseIDs(t *testing.T) {
	s := NewStore()

	for want := uint64(0); want < 5; want++ {
		d := &models.Deal{
			Buyer:  uuid.New(),
			Seller: uuid.New(),
			Amount: 100,
			Status: models.DealStatusAwaitingConfirmation,
		}
		got := s.Create(d)
		if got != want {
			t.Fatalf("Create assigned id %d, want %d", got, want)
		}
		if d.ID != want {
			t.Fatalf("Create did not write id back, got %d", d.ID)
		}
	}

	if s.Count() != 5 {
		t.Errorf("Count() = %d, want 5", s.Count())
	}
}

func TestGetReturnsSnapshot(t *testing.T) {
	s := NewStore()
	id := s.Create(&models.Deal{
		Buyer:  uuid.New(),
		Seller: uuid.New(),
		Amount: 42,
		Status: models.DealStatusAwaitingConfirmation,
	})

	snap, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Mutating the snapshot must not leak into the store.
	snap.Amount = 0
	snap.Status = models.DealStatusRefunded

	again, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.Amount != 42 || again.Status != models.DealStatusAwaitingConfirmation {
		t.Errorf("stored record was mutated through a snapshot: %+v", again)
	}
}

func TestGetUnknownID(t *testing.T) {
	s := NewStore()
	if _, err := s.Get(0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(0) on empty store = %v, want ErrNotFound", err)
	}
}

func TestUpdateAppliesOrLeavesUntouched(t *testing.T) {
	s := NewStore()
	id := s.Create(&models.Deal{
		Buyer:  uuid.New(),
		Seller: uuid.New(),
		Amount: 7,
		Status: models.DealStatusAwaitingConfirmation,
	})

	err := s.Update(id, func(d *models.Deal) error {
		d.BuyerConfirmed = true
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	d, _ := s.Get(id)
	if !d.BuyerConfirmed {
		t.Error("Update did not apply")
	}

	boom := errors.New("boom")
	err = s.Update(id, func(d *models.Deal) error {
		d.Amount = 0
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Update error = %v, want boom", err)
	}
	d, _ = s.Get(id)
	if d.Amount != 7 {
		t.Errorf("failed Update mutated the record, amount = %d", d.Amount)
	}

	if err := s.Update(99, func(d *models.Deal) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(99) = %v, want ErrNotFound", err)
	}
}
