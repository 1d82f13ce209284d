package handler

import (
	"log/slog"
	"net/http"

	"custody/internal/delivery/http/middleware"
	"custody/internal/delivery/http/response"
	"custody/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TransferHandler holds dependencies for transfer-related handlers.
type TransferHandler struct {
	uc     usecase.TransferUsecase
	logger *slog.Logger
}

// NewTransferHandler is the constructor for TransferHandler, injected by Fx.
func NewTransferHandler(uc usecase.TransferUsecase, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		uc:     uc,
		logger: logger,
	}
}

type createTransferRequest struct {
	To      string `json:"to"`
	AssetID uint64 `json:"asset_id"`
	Amount  uint64 `json:"amount"`
}

// CreateTransfer handles the transfer request.
func (h *TransferHandler) CreateTransfer(c echo.Context) error {
	var req createTransferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transfer input")
	}

	intent, err := h.uc.CreateTransfer(c.Request().Context(), &usecase.CreateTransferInput{
		CallerAddress: middleware.CallerAddress(c),
		ToAddress:     req.To,
		AssetID:       req.AssetID,
		Amount:        req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, intent, "Transfer requested successfully")
}

// AcceptTransfer handles the recipient's acceptance of a pending transfer.
func (h *TransferHandler) AcceptTransfer(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid transfer id")
	}

	intent, err := h.uc.AcceptTransfer(c.Request().Context(), middleware.CallerAddress(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, intent, "Transfer accepted successfully")
}

// RejectTransfer handles the recipient's rejection of a pending transfer.
func (h *TransferHandler) RejectTransfer(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid transfer id")
	}

	intent, err := h.uc.RejectTransfer(c.Request().Context(), middleware.CallerAddress(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, intent, "Transfer rejected successfully")
}

// GetTransfer handles the transfer lookup request.
func (h *TransferHandler) GetTransfer(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid transfer id")
	}

	intent, err := h.uc.GetTransfer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, intent, "")
}

// ListOwnedTransfers handles the owned-transfers listing request.
func (h *TransferHandler) ListOwnedTransfers(c echo.Context) error {
	intents, err := h.uc.ListOwnedTransfers(c.Request().Context(), c.Param("address"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, intents, "")
}
