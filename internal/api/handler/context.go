package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/reelspro/reels-api/internal/api/middleware"
	"github.com/reelspro/reels-api/internal/core/domain"
)

// currentIdentity returns the identity resolved by the session middleware.
// When the middleware did not run or found no valid session, the result is
// Anonymous; handlers of gated operations turn that into a 401.
func currentIdentity(c echo.Context) domain.Identity {
	identity, _ := c.Get(middleware.IdentityKey).(domain.Identity)
	return identity
}

// sessionToken returns the raw bearer token carried by the request, or "".
func sessionToken(c echo.Context) string {
	token, _ := c.Get(middleware.SessionTokenKey).(string)
	return token
}
