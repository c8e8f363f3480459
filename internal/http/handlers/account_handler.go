package handlers

import (
	"github.com/escrow-desk/backend/internal/http/dto"
	"github.com/escrow-desk/backend/internal/middleware"
	"github.com/escrow-desk/backend/internal/models"
	"github.com/escrow-desk/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AccountHandler struct {
	accountRepo *repositories.AccountRepo
	log         *zap.Logger
}

func NewAccountHandler(accountRepo *repositories.AccountRepo, log *zap.Logger) *AccountHandler {
	return &AccountHandler{accountRepo: accountRepo, log: log}
}

func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterAccountRequest
	if err := c.BodyParser(&req); err != nil || req.DisplayName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "display_name is required"})
	}

	account := &models.Account{
		DisplayName: req.DisplayName,
		Balance:     req.Balance,
	}
	if err := h.accountRepo.Create(c.Context(), account); err != nil {
		h.log.Error("account create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	// API key is returned exactly once, at registration.
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterAccountResponse{
		AccountID: account.ID.String(),
		APIKey:    account.APIKey,
	})
}

func (h *AccountHandler) GetMe(c *fiber.Ctx) error {
	accountID := middleware.GetAccountID(c)

	account, err := h.accountRepo.GetByID(c.Context(), accountID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "account not found"})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: account})
}
