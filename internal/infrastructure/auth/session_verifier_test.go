package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func newVerifier(t *testing.T) *SessionVerifier {
	t.Helper()
	v, err := NewSessionVerifier(testSecret, 0, nil)
	require.NoError(t, err)
	return v
}

func TestNewSessionVerifier_RejectsEmptySecret(t *testing.T) {
	_, err := NewSessionVerifier("  ", time.Second, nil)
	require.Error(t, err)
}

func TestSessionVerifier_Valid(t *testing.T) {
	v := newVerifier(t)
	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"id":    "C1",
		"email": "client@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	id, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "C1", id.ClientID)
}

func TestSessionVerifier_ValidWithoutExpiry(t *testing.T) {
	v := newVerifier(t)
	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": "C2"})

	id, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "C2", id.ClientID)
}

func TestSessionVerifier_RejectsIdentically(t *testing.T) {
	v := newVerifier(t)

	cases := map[string]string{
		"missing":       "",
		"garbage":       "not-a-jwt",
		"expired":       sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": "C1", "exp": time.Now().Add(-time.Hour).Unix()}),
		"wrong secret":  sign(t, jwt.SigningMethodHS256, []byte("another-secret-that-is-32-chars-long!!"), jwt.MapClaims{"id": "C1"}),
		"wrong alg":     sign(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{"id": "C1"}),
		"missing id":    sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "C1"}),
		"blank id":      sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": "   "}),
		"not yet valid": sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": "C1", "nbf": time.Now().Add(time.Hour).Unix()}),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			id, err := v.Verify(token)
			assert.True(t, errors.Is(err, ErrUnauthenticated))
			assert.Equal(t, ErrUnauthenticated.Error(), err.Error())
			assert.Empty(t, id.ClientID)
		})
	}
}

func TestSessionVerifier_Leeway(t *testing.T) {
	v, err := NewSessionVerifier(testSecret, time.Minute, nil)
	require.NoError(t, err)
	token := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": "C1", "exp": time.Now().Add(-10 * time.Second).Unix()})

	id, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "C1", id.ClientID)
}
