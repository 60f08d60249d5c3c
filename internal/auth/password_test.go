package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.True(t, CheckPassword(hash, "correct horse battery staple"))
	require.False(t, CheckPassword(hash, "wrong password"))
	require.False(t, CheckPassword(hash, ""))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := HashPassword("pw")
	require.NoError(t, err)
	second, err := HashPassword("pw")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, CheckPassword(first, "pw"))
	require.True(t, CheckPassword(second, "pw"))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	require.False(t, CheckPassword("not-a-bcrypt-hash", "pw"))
}
