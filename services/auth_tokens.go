package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenTTL is how long an issued session token remains valid
const SessionTokenTTL = 7 * 24 * time.Hour

// AuthTokensService issues and verifies the signed session tokens carried in
// the session cookie
type AuthTokensService struct {
	SigningSecret string
}

type sessionClaims struct {
	UserID uint64 `json:"uid"`
	jwt.RegisteredClaims
}

// CreateToken creates a signed session token embedding the user id
func (s *AuthTokensService) CreateToken(userID uint64, now time.Time) (string, error) {
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.SigningSecret))
}

// VerifyToken verifies a session token and returns the embedded user id.
// Expired, tampered, or otherwise malformed tokens all fail verification;
// callers treat any failure as "no session".
func (s *AuthTokensService) VerifyToken(raw string) (uint64, error) {
	token, err := jwt.ParseWithClaims(
		raw,
		&sessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(s.SigningSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, errors.New("invalid session token")
	}
	return claims.UserID, nil
}
