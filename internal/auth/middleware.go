package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// contextKey is where the parsed token lives on the request context.
const contextKey = "user"

// Authenticate returns middleware that extracts and verifies a bearer token
// from the Authorization header. Requests without a valid, unexpired token are
// rejected with 401 before the handler runs.
func Authenticate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		ContextKey:  contextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &Claims{}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		},
	})
}

// AdminOnly requires that Authenticate already ran and that the caller holds
// the admin role. Composable with Authenticate; on its own it only rejects.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := CurrentClaims(c)
		if claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
		}
		if claims.Role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "Admins only")
		}
		return next(c)
	}
}

// CurrentClaims returns the authenticated identity attached to the request, or
// nil when no middleware populated it.
func CurrentClaims(c echo.Context) *Claims {
	token, ok := c.Get(contextKey).(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
