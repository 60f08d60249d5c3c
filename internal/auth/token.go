package auth

import (
	"fmt"
	"time"

	"artmarket-app/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the validity window of issued bearer tokens. There is no
// refresh or revocation; a compromised token stays usable until expiry.
const TokenTTL = time.Hour

// Identity is the authenticated principal embedded in a bearer token.
type Identity struct {
	UserID   uint
	IsArtist bool
}

// IssueToken signs an HS256 JWT carrying the user id and role, expiring at
// issue time + ttl.
func IssueToken(secret []byte, userID uint, isArtist bool, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   userID,
		"is_artist": isArtist,
		"exp":       time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// ParseToken verifies signature and expiry and returns the embedded
// identity. Every failure mode maps to apperr.ErrUnauthorized.
func ParseToken(secret []byte, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("invalid or expired token: %w", apperr.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("invalid token claims: %w", apperr.ErrUnauthorized)
	}

	var id Identity
	if v, ok := claims["user_id"].(float64); ok {
		id.UserID = uint(v)
	}
	if id.UserID == 0 {
		return Identity{}, fmt.Errorf("invalid token claims: %w", apperr.ErrUnauthorized)
	}
	if v, ok := claims["is_artist"].(bool); ok {
		id.IsArtist = v
	}
	return id, nil
}
