package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestIsValidTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		// Happy path
		{DealStatusAwaitingConfirmation, DealStatusConfirmed, true},
		{DealStatusConfirmed, DealStatusCompleted, true},
		{DealStatusAwaitingConfirmation, DealStatusRefunded, true},

		// No way back
		{DealStatusConfirmed, DealStatusAwaitingConfirmation, false},
		{DealStatusCompleted, DealStatusConfirmed, false},
		{DealStatusRefunded, DealStatusAwaitingConfirmation, false},

		// Terminal states are mutually exclusive
		{DealStatusCompleted, DealStatusRefunded, false},
		{DealStatusRefunded, DealStatusCompleted, false},

		// Refund is unavailable once confirmed
		{DealStatusConfirmed, DealStatusRefunded, false},
		// Release is unavailable before confirmation
		{DealStatusAwaitingConfirmation, DealStatusCompleted, false},

		{"nonexistent", DealStatusConfirmed, false},
		{DealStatusAwaitingConfirmation, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllStatusesHaveTransitionEntry(t *testing.T) {
	allStatuses := []string{
		DealStatusAwaitingConfirmation, DealStatusConfirmed,
		DealStatusCompleted, DealStatusRefunded,
	}

	for _, status := range allStatuses {
		if _, ok := ValidDealTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidDealTransitions map", status)
		}
	}
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	terminal := []string{DealStatusCompleted, DealStatusRefunded}
	for _, status := range terminal {
		if !IsTerminal(status) {
			t.Errorf("status %q should be terminal", status)
		}
		if transitions := ValidDealTransitions[status]; len(transitions) != 0 {
			t.Errorf("terminal status %q should have no transitions, got %v", status, transitions)
		}
	}
	if IsTerminal(DealStatusAwaitingConfirmation) || IsTerminal(DealStatusConfirmed) {
		t.Error("non-terminal status reported as terminal")
	}
	if IsTerminal("nonexistent") {
		t.Error("unknown status reported as terminal")
	}
}

func TestIsParty(t *testing.T) {
	buyer := uuid.New()
	seller := uuid.New()
	d := Deal{Buyer: buyer, Seller: seller}

	if !d.IsParty(buyer) || !d.IsParty(seller) {
		t.Error("buyer and seller must both be parties")
	}
	if d.IsParty(uuid.New()) {
		t.Error("unrelated account must not be a party")
	}
}
