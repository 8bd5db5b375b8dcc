package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	token, exp, err := m.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestGenerateTokenUsesHS256(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	token, _, err := m.GenerateToken("user-alg")
	require.NoError(t, err)

	parsed, _, err := new(jwt.Parser).ParseUnverified(token, &Claims{})
	require.NoError(t, err)
	assert.Equal(t, "HS256", parsed.Method.Alg())
}

func TestParseTokenFailuresAreOpaque(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	valid, _, err := m.GenerateToken("user-456")
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	other := NewJWTManager("some-other-secret", time.Hour)
	foreign, _, err := other.GenerateToken("user-456")
	require.NoError(t, err)

	expired := NewJWTManager(testSecret, -time.Hour)
	expiredToken, _, err := expired.GenerateToken("user-456")
	require.NoError(t, err)

	cases := []struct {
		name  string
		token string
	}{
		{"malformed", "not-a-token"},
		{"empty", ""},
		{"tampered signature", tampered},
		{"wrong secret", foreign},
		{"expired", expiredToken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := m.ParseToken(tc.token)
			assert.Nil(t, claims)
			// Every failure collapses into the same sentinel.
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParseTokenRejectsMissingIdentity(t *testing.T) {
	m := NewJWTManager(testSecret, time.Hour)

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tkn.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
