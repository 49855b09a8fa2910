package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"jobboard/internal/model"
	"jobboard/internal/repository"
)

const (
	// AccessTokenCookie is the cookie holding the access token.
	AccessTokenCookie = "access_token"
	// RefreshTokenCookie is the cookie holding the refresh token.
	RefreshTokenCookie = "refresh_token"

	// ContextUserKey is where the resolved principal lives on the echo.Context.
	ContextUserKey = "currentUser"
)

// CurrentUser resolves the verified token subject to a User and stores it on
// the request context. It must run after the JWT middleware has parsed the
// token into c.Get("user"). The principal lives only for this request.
func CurrentUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*jwt.RegisteredClaims)
			if !ok || claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the principal set by CurrentUser.
func UserFromContext(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}
