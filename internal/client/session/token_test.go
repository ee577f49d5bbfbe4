package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	got, ok := TokenExpiry(signed)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_OpaqueOrNoExp(t *testing.T) {
	_, ok := TokenExpiry("opaque-token")
	assert.False(t, ok)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "1"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, ok = TokenExpiry(noExp)
	assert.False(t, ok)
}
