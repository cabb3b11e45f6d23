package handler

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"storeadmin/internal/auth"
)

// callerID extracts the authenticated user's id from the JWT placed in
// the context by the echo-jwt middleware. It returns "" when no token is
// present so the admin guard can fail with Unauthenticated.
func callerID(c echo.Context) string {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return ""
	}
	return claims.UserID
}
