package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding_backend/internal/platform/config"
)

func testGenerator() *generator {
	return &generator{
		accessSecret:  []byte("access-secret"),
		accessExpiry:  time.Minute,
		refreshSecret: []byte("refresh-secret"),
		refreshExpiry: time.Hour,
	}
}

func TestNewGenerator(t *testing.T) {
	g := NewGenerator(config.JWTConfig{
		AccessSecret:  "a",
		AccessExpiry:  time.Minute,
		RefreshSecret: "r",
		RefreshExpiry: time.Hour,
	})
	assert.NotNil(t, g)
}

func TestGenerator_AccessToken(t *testing.T) {
	g := testGenerator()

	tokenStr, err := g.GenerateAccessToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	// An access token must verify against the access secret, not the
	// refresh secret.
	email, err := verify(tokenStr, g.accessSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)

	_, err = verify(tokenStr, g.refreshSecret)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestGenerator_RefreshToken(t *testing.T) {
	g := testGenerator()

	t.Run("round trip", func(t *testing.T) {
		tokenStr, err := g.GenerateRefreshToken("bob@example.com")
		require.NoError(t, err)

		email, err := g.VerifyRefreshToken(tokenStr)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", email)
	})

	t.Run("signed with access secret", func(t *testing.T) {
		tokenStr, err := g.GenerateAccessToken("bob@example.com")
		require.NoError(t, err)

		_, err = g.VerifyRefreshToken(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := sign("bob@example.com", g.refreshSecret, -time.Minute)
		require.NoError(t, err)

		_, err = g.VerifyRefreshToken(expired)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := g.VerifyRefreshToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("missing email claim", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString(g.refreshSecret)
		require.NoError(t, err)

		_, err = g.VerifyRefreshToken(signed)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		// alg=none tokens must never pass.
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"employeeEmail": "bob@example.com",
			"exp":           time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = g.VerifyRefreshToken(signed)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}
