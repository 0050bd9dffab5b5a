package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/notices", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAdminOnly_NoIdentity(t *testing.T) {
	c := newContext(t)

	err := AdminOnly(okHandler)(c)

	var httpErr *echo.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAdminOnly_NonAdmin(t *testing.T) {
	c := newContext(t)
	c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: 2, Role: "user"}))

	err := AdminOnly(okHandler)(c)

	var httpErr *echo.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestAdminOnly_Admin(t *testing.T) {
	c := newContext(t)
	c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: 1, Role: "admin"}))

	err := AdminOnly(okHandler)(c)

	assert.NoError(t, err)
}

func TestCurrentClaims(t *testing.T) {
	c := newContext(t)
	assert.Nil(t, CurrentClaims(c))

	c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: 9, Role: "admin"}))
	claims := CurrentClaims(c)
	assert.NotNil(t, claims)
	assert.Equal(t, uint(9), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}
