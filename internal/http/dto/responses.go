package dto

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type RegisterAccountResponse struct {
	AccountID string `json:"account_id"`
	APIKey    string `json:"api_key"`
}

type DealCountResponse struct {
	Count uint64 `json:"count"`
}
