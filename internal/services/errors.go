package services

import (
	"errors"

	"github.com/escrow-desk/backend/internal/ledger"
)

// Escrow operation errors. Every precondition violation aborts the whole
// operation; the deal is left exactly as it was before the call.
var (
	ErrInvalidDeposit   = errors.New("deposit amount must be positive")
	ErrInvalidParty     = errors.New("seller must be a valid party distinct from the buyer")
	ErrUnauthorized     = errors.New("caller is not permitted to perform this operation")
	ErrInvalidState     = errors.New("deal status does not permit this operation")
	ErrAlreadyConfirmed = errors.New("party has already confirmed this deal")
	ErrTransferFailed   = errors.New("funds transfer failed")

	// ErrNotFound is the store's not-found, surfaced under one name at the
	// service boundary.
	ErrNotFound = ledger.ErrNotFound
)
