package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued bearer token stays valid. There is no
// revocation: logout is client-side deletion and a token issued before a
// password change keeps working until natural expiry.
const TokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims binds a user identity to the standard registered claims
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed HS256 token for the given user
func GenerateToken(userID int, secret []byte, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: strconv.Itoa(userID),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// GetUserIDFromToken verifies signature and expiry and returns the bound
// user ID. Any failure (bad signature, expired, malformed) comes back as
// ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secret []byte) (int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	id, err := strconv.Atoi(claims.UserID)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}
