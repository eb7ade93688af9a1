package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"campus-connect-client/model"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestWellFormed(t *testing.T) {
	t.Parallel()

	t.Run("three segments pass", func(t *testing.T) {
		require.True(t, WellFormed("aaa.bbb.ccc"))
	})

	t.Run("empty string fails", func(t *testing.T) {
		require.False(t, WellFormed(""))
	})

	t.Run("whitespace only fails", func(t *testing.T) {
		require.False(t, WellFormed("   "))
	})

	t.Run("two segments fail", func(t *testing.T) {
		require.False(t, WellFormed("aaa.bbb"))
	})

	t.Run("four segments fail", func(t *testing.T) {
		require.False(t, WellFormed("a.b.c.d"))
	})
}

func TestIsExpired(t *testing.T) {
	t.Parallel()

	t.Run("future exp is not expired", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
		require.False(t, IsExpired(tok))
	})

	t.Run("past exp is expired", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
		require.True(t, IsExpired(tok))
	})

	t.Run("missing exp never expires client-side", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"sub": "user-1"})
		require.False(t, IsExpired(tok))
	})

	t.Run("undecodable token fails closed", func(t *testing.T) {
		require.True(t, IsExpired("not.a.jwt"))
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("malformed token", func(t *testing.T) {
		require.ErrorIs(t, Check("garbage"), model.ErrTokenMalformed)
	})

	t.Run("expired token", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})
		require.ErrorIs(t, Check(tok), model.ErrTokenExpired)
	})

	t.Run("usable token", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
		require.NoError(t, Check(tok))
	})
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	t.Run("well formed and unexpired", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
		require.True(t, IsValid(tok))
	})

	t.Run("malformed token is invalid", func(t *testing.T) {
		require.False(t, IsValid("garbage"))
	})

	t.Run("expired token is invalid", func(t *testing.T) {
		tok := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})
		require.False(t, IsValid(tok))
	})
}
