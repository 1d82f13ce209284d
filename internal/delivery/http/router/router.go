// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"custody/internal/delivery/http/middleware"
	"custody/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler  *handler.IdentityHandler
	AssetHandler     *handler.AssetHandler
	TransferHandler  *handler.TransferHandler
	CallerMiddleware *middleware.CallerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	identityHandler  *handler.IdentityHandler
	assetHandler     *handler.AssetHandler
	transferHandler  *handler.TransferHandler
	callerMiddleware *middleware.CallerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		identityHandler:  params.IdentityHandler,
		assetHandler:     params.AssetHandler,
		transferHandler:  params.TransferHandler,
		callerMiddleware: params.CallerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are open; writes require the caller address resolved by the
// caller middleware.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Identity registry routes
	identityGroup := e.Group("/identity")
	{
		identityGroup.POST("/request", r.identityHandler.RequestIdentity, r.callerMiddleware.RequireCaller)
		identityGroup.POST("/status", r.identityHandler.SetIdentityStatus, r.callerMiddleware.RequireCaller)
		identityGroup.GET("/admin/:address", r.identityHandler.CheckAdmin)
		identityGroup.GET("/:address", r.identityHandler.GetIdentity)
	}

	// Asset ledger routes
	assetGroup := e.Group("/asset")
	{
		assetGroup.POST("", r.assetHandler.CreateAsset, r.callerMiddleware.RequireCaller)
		assetGroup.GET("/:id", r.assetHandler.GetAsset)
		assetGroup.GET("/:id/balance/:address", r.assetHandler.GetBalance)
	}

	// Transfer handshake routes
	transferGroup := e.Group("/transfer")
	{
		transferGroup.POST("", r.transferHandler.CreateTransfer, r.callerMiddleware.RequireCaller)
		transferGroup.POST("/:id/accept", r.transferHandler.AcceptTransfer, r.callerMiddleware.RequireCaller)
		transferGroup.POST("/:id/reject", r.transferHandler.RejectTransfer, r.callerMiddleware.RequireCaller)
		transferGroup.GET("/:id", r.transferHandler.GetTransfer)
	}

	// Ownership index routes
	ownedGroup := e.Group("/owned")
	{
		ownedGroup.GET("/assets/:address", r.assetHandler.ListOwnedAssets)
		ownedGroup.GET("/transfers/:address", r.transferHandler.ListOwnedTransfers)
	}
}
