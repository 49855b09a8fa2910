package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobboard/internal/auth"
	"jobboard/internal/errors"
	"jobboard/internal/service"
)

// AuthHandler handles login, token refresh and logout.
type AuthHandler struct {
	authService service.AuthService
	jwtService  *auth.JWTService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{authService: authService, jwtService: jwtService}
}

// LoginRequest represents the login form. The username field carries the
// user's email, OAuth2 password-flow style.
type LoginRequest struct {
	Username string `form:"username" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RefreshRequest represents a token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse represents an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login godoc
// @Summary Login user
// @Tags login
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "User email"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} map[string]string
// @Router /login/token [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	accessToken, refreshToken, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to login",
			Code:  "LOGIN_FAILED",
		})
	}

	h.setTokenCookie(c, auth.AccessTokenCookie, accessToken, h.jwtService.AccessTokenTTL())
	h.setTokenCookie(c, auth.RefreshTokenCookie, refreshToken, h.jwtService.RefreshTokenTTL())

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Tags login
// @Accept json
// @Produce json
// @Param request body RefreshRequest false "Refresh token; the refresh_token cookie is used when absent"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken, httpErr := h.refreshTokenFromRequest(c)
	if httpErr != nil {
		return httpErr
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		if err == service.ErrInvalidRefreshToken {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_REFRESH_TOKEN",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to refresh token",
			Code:  "REFRESH_FAILED",
		})
	}

	h.setTokenCookie(c, auth.AccessTokenCookie, accessToken, h.jwtService.AccessTokenTTL())

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}

// Logout godoc
// @Summary Logout user
// @Tags login
// @Accept json
// @Produce json
// @Param request body RefreshRequest false "Refresh token; the refresh_token cookie is used when absent"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /login/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	refreshToken, httpErr := h.refreshTokenFromRequest(c)
	if httpErr != nil {
		return httpErr
	}

	if err := h.authService.Logout(c.Request().Context(), refreshToken); err != nil {
		if err == service.ErrInvalidRefreshToken {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_REFRESH_TOKEN",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to logout",
			Code:  "LOGOUT_FAILED",
		})
	}

	h.clearTokenCookie(c, auth.AccessTokenCookie)
	h.clearTokenCookie(c, auth.RefreshTokenCookie)

	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// refreshTokenFromRequest reads the refresh token from the cookie, falling
// back to the JSON body.
func (h *AuthHandler) refreshTokenFromRequest(c echo.Context) (string, *echo.HTTPError) {
	if cookie, err := c.Cookie(auth.RefreshTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	var req RefreshRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "refresh token missing",
			Code:  "INVALID_REFRESH_TOKEN",
		})
	}
	return req.RefreshToken, nil
}

func (h *AuthHandler) setTokenCookie(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearTokenCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
