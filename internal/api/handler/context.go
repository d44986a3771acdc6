package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/melodia/catalog-api/internal/api/middleware"
)

// ctxIdentity extracts the identity the Auth middleware injected and
// fast-fails before any service call: a missing subject means the token
// carried no usable identity even though it verified.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get(middleware.CtxRole).(string)
	return userID, role, nil
}
