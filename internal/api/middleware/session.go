package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/reelspro/reels-api/internal/api/metrics"
	"github.com/reelspro/reels-api/internal/core/ports"
)

// Context keys set by Session for downstream handlers.
const (
	IdentityKey     = "identity"
	SessionTokenKey = "session_token"
)

// Session resolves the bearer session token into an Identity and stores it in
// the request context. It never rejects a request: a missing or invalid token
// resolves to Anonymous, and each gated operation decides for itself whether
// Anonymous is acceptable.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			identity := sessions.Resolve(c.Request().Context(), token)

			if identity.IsAnonymous() {
				metrics.SessionResolutionsTotal.WithLabelValues("anonymous").Inc()
			} else {
				metrics.SessionResolutionsTotal.WithLabelValues("authenticated").Inc()
			}

			c.Set(IdentityKey, identity)
			c.Set(SessionTokenKey, token)
			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header, returning "" when the header is absent or malformed.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
