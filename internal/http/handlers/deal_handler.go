package handlers

import (
	"errors"
	"strconv"

	"github.com/escrow-desk/backend/internal/http/dto"
	"github.com/escrow-desk/backend/internal/middleware"
	"github.com/escrow-desk/backend/internal/payments"
	"github.com/escrow-desk/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DealHandler struct {
	escrow *services.EscrowService
	log    *zap.Logger
}

func NewDealHandler(escrow *services.EscrowService, log *zap.Logger) *DealHandler {
	return &DealHandler{escrow: escrow, log: log}
}

func (h *DealHandler) CreateDeal(c *fiber.Ctx) error {
	var req dto.CreateDealRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid seller_id"})
	}

	buyer := middleware.GetAccountID(c)
	deal, err := h.escrow.CreateDeal(c.Context(), buyer, sellerID, req.Amount)
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: deal})
}

func (h *DealHandler) GetDeal(c *fiber.Ctx) error {
	dealID, ok := parseDealID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid deal id"})
	}

	deal, err := h.escrow.GetDeal(c.Context(), dealID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: deal})
}

func (h *DealHandler) DealCount(c *fiber.Ctx) error {
	return c.JSON(dto.DealCountResponse{Count: h.escrow.DealCount(c.Context())})
}

func (h *DealHandler) ConfirmDeal(c *fiber.Ctx) error {
	dealID, ok := parseDealID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid deal id"})
	}

	caller := middleware.GetAccountID(c)
	deal, err := h.escrow.Confirm(c.Context(), dealID, caller)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: deal})
}

func (h *DealHandler) ReleaseFunds(c *fiber.Ctx) error {
	dealID, ok := parseDealID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid deal id"})
	}

	caller := middleware.GetAccountID(c)
	if err := h.escrow.ReleaseFunds(c.Context(), dealID, caller); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *DealHandler) RefundDeal(c *fiber.Ctx) error {
	dealID, ok := parseDealID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid deal id"})
	}

	caller := middleware.GetAccountID(c)
	if err := h.escrow.Refund(c.Context(), dealID, caller); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *DealHandler) GetDealEvents(c *fiber.Ctx) error {
	dealID, ok := parseDealID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid deal id"})
	}

	entries, err := h.escrow.GetDealEvents(c.Context(), dealID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}

func (h *DealHandler) fail(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		h.log.Error("deal operation failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		return c.Status(status).JSON(dto.ErrorResponse{Error: "internal error", RequestID: middleware.GetRequestID(c)})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error(), RequestID: middleware.GetRequestID(c)})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrInvalidState), errors.Is(err, services.ErrAlreadyConfirmed):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidDeposit), errors.Is(err, services.ErrInvalidParty):
		return fiber.StatusBadRequest
	case errors.Is(err, payments.ErrInsufficientFunds), errors.Is(err, payments.ErrUnknownAccount):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrTransferFailed):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func parseDealID(c *fiber.Ctx) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
