package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderXCallerAddress carries the caller's on-ledger address. The
	// identity bootstrap (wallet or session gateway) sets it upstream.
	HeaderXCallerAddress = "X-Caller-Address"

	// ContextKeyCallerAddress is the echo context key the address is stored under.
	ContextKeyCallerAddress = "callerAddress"
)

// CallerMiddleware resolves the caller's ledger address for each request.
type CallerMiddleware struct{}

// NewCallerMiddleware is the constructor for CallerMiddleware.
func NewCallerMiddleware() *CallerMiddleware {
	return &CallerMiddleware{}
}

// RequireCaller extracts the caller address header and stores it on the
// context. Requests without it are rejected before reaching the handler.
func (m *CallerMiddleware) RequireCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		address := c.Request().Header.Get(HeaderXCallerAddress)
		if address == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "X-Caller-Address header is missing"})
		}

		c.Set(ContextKeyCallerAddress, address)

		return next(c)
	}
}

// CallerAddress returns the address stored by RequireCaller, or empty if the
// middleware did not run.
func CallerAddress(c echo.Context) string {
	if address, ok := c.Get(ContextKeyCallerAddress).(string); ok {
		return address
	}

	return ""
}
