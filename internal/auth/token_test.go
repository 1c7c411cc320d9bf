package auth_test

import (
	"testing"
	"time"

	"github.com/dom/game-save-backend/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	tests := []struct {
		name   string
		userID uint
	}{
		{name: "small id", userID: 1},
		{name: "large id", userID: 4294967295},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokens.Issue(tt.userID)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			userID, err := tokens.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, userID)
		})
	}
}

func TestTokenService_Expired(t *testing.T) {
	// Negative TTL issues tokens that are already expired.
	tokens := auth.NewTokenService("test-secret", -time.Hour)

	token, err := tokens.Issue(42)
	require.NoError(t, err)

	_, err = tokens.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenService_InvalidTokens(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	otherSecret := auth.NewTokenService("other-secret", time.Hour)

	wrongSecretToken, err := otherSecret.Issue(42)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	nonNumericSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-number",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "wrong secret", token: wrongSecretToken},
		{name: "none signing method", token: noneToken},
		{name: "non-numeric subject", token: nonNumericSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Validate(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestTokenService_FreshTokensDiffer(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)

	// Tokens issued back to back differ via the jti nonce even though
	// subject and timestamps match.
	first, err := tokens.Issue(7)
	require.NoError(t, err)
	second, err := tokens.Issue(7)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	firstID, err := tokens.Validate(first)
	require.NoError(t, err)
	secondID, err := tokens.Validate(second)
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)
}
