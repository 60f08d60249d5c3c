package auth

import (
	"testing"
	"time"

	"artmarket-app/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken(testSecret, 42, true, TokenTTL)
	require.NoError(t, err)

	id, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	require.Equal(t, uint(42), id.UserID)
	require.True(t, id.IsArtist)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := IssueToken(testSecret, 42, false, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, 42, false, TokenTTL)
	require.NoError(t, err)

	_, err = ParseToken([]byte("another-secret"), token)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestParseTokenTampered(t *testing.T) {
	token, err := IssueToken(testSecret, 42, false, TokenTTL)
	require.NoError(t, err)

	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	_, err = ParseToken(testSecret, tampered)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestParseTokenMalformed(t *testing.T) {
	_, err := ParseToken(testSecret, "not.a.token")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = ParseToken(testSecret, "")
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestParseTokenRejectsUnsignedAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id":   float64(42),
		"is_artist": false,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestParseTokenMissingUserID(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"is_artist": true,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString(testSecret)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, signed)
	require.ErrorIs(t, err, apperr.ErrUnauthorized)
}
