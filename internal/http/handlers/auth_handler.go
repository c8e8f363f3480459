package handlers

import (
	"github.com/escrow-desk/backend/internal/auth"
	"github.com/escrow-desk/backend/internal/config"
	"github.com/escrow-desk/backend/internal/http/dto"
	"github.com/escrow-desk/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthHandler struct {
	accountRepo *repositories.AccountRepo
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthHandler(accountRepo *repositories.AccountRepo, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{accountRepo: accountRepo, cfg: cfg, log: log}
}

// Token exchanges an account id + API key for a bearer token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil || req.AccountID == "" || req.APIKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "account_id and api_key are required"})
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid account_id"})
	}

	account, err := h.accountRepo.VerifyAPIKey(c.Context(), accountID, req.APIKey)
	if err != nil {
		h.log.Debug("api key verification failed", zap.String("account_id", req.AccountID))
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, account.ID, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("token generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.TokenResponse{Token: token})
}
