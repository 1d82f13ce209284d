// Package handler contains the HTTP handlers for the application.
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

// IdentityHandler holds dependencies for identity-related handlers.
type IdentityHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler, injected by Fx.
func NewIdentityHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		uc:     uc,
		logger: logger,
	}
}

type requestIdentityRequest struct {
	Role string `json:"role"`
}

// RequestIdentity handles the identity registration request.
func (h *IdentityHandler) RequestIdentity(c echo.Context) error {
	var req requestIdentityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid identity request input")
	}

	identity, err := h.uc.RequestIdentity(c.Request().Context(), &usecase.RequestIdentityInput{
		CallerAddress: middleware.CallerAddress(c),
		Role:          req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, identity, "Identity requested successfully")
}

type setIdentityStatusRequest struct {
	Address string `json:"address" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

// SetIdentityStatus handles the admin status decision request.
func (h *IdentityHandler) SetIdentityStatus(c echo.Context) error {
	var req setIdentityStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	identity, err := h.uc.SetIdentityStatus(c.Request().Context(), &usecase.SetIdentityStatusInput{
		CallerAddress: middleware.CallerAddress(c),
		TargetAddress: req.Address,
		Status:        req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity, "Identity status updated successfully")
}

// GetIdentity handles the identity lookup request.
func (h *IdentityHandler) GetIdentity(c echo.Context) error {
	identity, err := h.uc.GetIdentity(c.Request().Context(), c.Param("address"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity, "")
}

// CheckAdmin reports whether an address is the fixed admin authority.
func (h *IdentityHandler) CheckAdmin(c echo.Context) error {
	address := c.Param("address")

	return response.Success(c, http.StatusOK, map[string]any{
		"address":  address,
		"is_admin": h.uc.IsAdmin(address),
	}, "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
