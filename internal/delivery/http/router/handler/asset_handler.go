package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"custody/internal/delivery/http/middleware"
	"custody/internal/delivery/http/response"
	"custody/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssetHandler holds dependencies for asset-related handlers.
type AssetHandler struct {
	uc     usecase.AssetUsecase
	logger *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler, injected by Fx.
func NewAssetHandler(uc usecase.AssetUsecase, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		uc:     uc,
		logger: logger,
	}
}

type createAssetRequest struct {
	Name          string  `json:"name"`
	TotalSupply   uint64  `json:"total_supply"`
	Metadata      string  `json:"metadata"`
	ParentAssetID *uint64 `json:"parent_asset_id"`
}

// CreateAsset handles the asset issuance request.
func (h *AssetHandler) CreateAsset(c echo.Context) error {
	var req createAssetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid asset input")
	}

	asset, err := h.uc.CreateAsset(c.Request().Context(), &usecase.CreateAssetInput{
		CallerAddress: middleware.CallerAddress(c),
		Name:          req.Name,
		TotalSupply:   req.TotalSupply,
		Metadata:      req.Metadata,
		ParentAssetID: req.ParentAssetID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, asset, "Asset created successfully")
}

// GetAsset handles the asset lookup request.
func (h *AssetHandler) GetAsset(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid asset id")
	}

	asset, err := h.uc.GetAsset(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, asset, "")
}

// GetBalance handles the balance lookup request.
func (h *AssetHandler) GetBalance(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid asset id")
	}
	address := c.Param("address")

	balance, err := h.uc.GetBalance(c.Request().Context(), id, address)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"asset_id": id,
		"address":  address,
		"balance":  balance,
	}, "")
}

// ListOwnedAssets handles the owned-assets listing request.
func (h *AssetHandler) ListOwnedAssets(c echo.Context) error {
	holdings, err := h.uc.ListOwnedAssets(c.Request().Context(), c.Param("address"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, holdings, "")
}

// parseID parses a path parameter as a sequential ledger id.
func parseID(raw string) (uint64, error) {
	return strconv.ParseUint(raw, 10, 64)
}
