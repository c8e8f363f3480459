package repositories

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/escrow-desk/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepo struct {
	pool *pgxpool.Pool
}

func NewAccountRepo(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create registers a party account with a fresh API key and an optional
// starting balance.
func (r *AccountRepo) Create(ctx context.Context, a *models.Account) error {
	a.APIKey = generateAPIKey(32)
	return r.pool.QueryRow(ctx, `
		INSERT INTO accounts (display_name, api_key, balance)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, a.DisplayName, a.APIKey, a.Balance).Scan(&a.ID, &a.CreatedAt)
}

func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var a models.Account
	err := r.pool.QueryRow(ctx, `
		SELECT id, display_name, api_key, balance, created_at
		FROM accounts WHERE id = $1
	`, id).Scan(&a.ID, &a.DisplayName, &a.APIKey, &a.Balance, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// VerifyAPIKey returns the account when the id/key pair matches.
func (r *AccountRepo) VerifyAPIKey(ctx context.Context, id uuid.UUID, apiKey string) (*models.Account, error) {
	var a models.Account
	err := r.pool.QueryRow(ctx, `
		SELECT id, display_name, api_key, balance, created_at
		FROM accounts WHERE id = $1 AND api_key = $2
	`, id, apiKey).Scan(&a.ID, &a.DisplayName, &a.APIKey, &a.Balance, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func generateAPIKey(bytes int) string {
	b := make([]byte, bytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
