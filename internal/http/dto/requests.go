package dto

type RegisterAccountRequest struct {
	DisplayName string `json:"display_name"`
	// Starting balance in the smallest native unit. Dev convenience; a real
	// deployment funds accounts through the payment rail.
	Balance uint64 `json:"balance,omitempty"`
}

type TokenRequest struct {
	AccountID string `json:"account_id"`
	APIKey    string `json:"api_key"`
}

type CreateDealRequest struct {
	SellerID string `json:"seller_id"`
	Amount   uint64 `json:"amount"`
}
