package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a party that can appear as buyer or seller on deals. Balance is
// in the smallest native unit.
type Account struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	APIKey      string    `json:"-"`
	Balance     uint64    `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
}
