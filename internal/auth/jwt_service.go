package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token is malformed, badly signed or expired.
var ErrInvalidToken = errors.New("invalid token")

// JWTService issues and verifies signed tokens carrying the user email as subject.
type JWTService struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService creates a token service. The algorithm identifier must name an
// HMAC method (HS256, HS384, HS512).
func NewJWTService(secret, algorithm string, accessTTL, refreshTTL time.Duration) (*JWTService, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("algorithm %q is not a symmetric HMAC method", algorithm)
	}
	return &JWTService{
		secret:     []byte(secret),
		method:     method,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// AccessTokenTTL reports the configured access token lifetime.
func (s *JWTService) AccessTokenTTL() time.Duration { return s.accessTTL }

// RefreshTokenTTL reports the configured refresh token lifetime.
func (s *JWTService) RefreshTokenTTL() time.Duration { return s.refreshTTL }

// GenerateAccessToken signs a short-lived token for the given subject email.
// Expiry is always computed server-side at issuance.
func (s *JWTService) GenerateAccessToken(email string) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// GenerateRefreshToken signs a refresh token for the given subject email.
// The token ID (JTI) is returned separately for storage in Redis.
func (s *JWTService) GenerateRefreshToken(email string) (tokenID string, token string, err error) {
	tokenID = uuid.New().String()
	claims := &jwt.RegisteredClaims{
		ID:        tokenID,
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.refreshTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		NotBefore: jwt.NewNumericDate(time.Now()),
	}
	tokenObj := jwt.NewWithClaims(s.method, claims)
	token, err = tokenObj.SignedString(s.secret)
	return tokenID, token, err
}

// ValidateToken verifies signature and expiry and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
