package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ErrUnauthenticated is the only error Verify returns. Missing, expired and
// forged tokens are indistinguishable to callers.
var ErrUnauthenticated = errors.New("unauthenticated")

// ClientIdentity is what a valid session cookie proves.
type ClientIdentity struct {
	ClientID string
}

// sessionClaims is the payload of the client_token cookie. The issuer puts the
// client id under "id".
type sessionClaims struct {
	jwt.RegisteredClaims
	ClientID string `json:"id"`
}

// SessionVerifier validates HS256 session tokens with a shared secret.
type SessionVerifier struct {
	secret []byte
	leeway time.Duration
	logger *zap.Logger
}

// NewSessionVerifier refuses an empty secret; there is no fallback key.
func NewSessionVerifier(secret string, leeway time.Duration, logger *zap.Logger) (*SessionVerifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("session verifier: secret is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionVerifier{secret: []byte(secret), leeway: leeway, logger: logger}, nil
}

func (v *SessionVerifier) Verify(token string) (ClientIdentity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		v.logger.Debug("[auth][verifier] reject", zap.String("reason", "missing token"))
		return ClientIdentity{}, ErrUnauthenticated
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(v.leeway))
	if err != nil {
		v.logger.Debug("[auth][verifier] reject", zap.String("reason", "parse"), zap.Error(err))
		return ClientIdentity{}, ErrUnauthenticated
	}
	if !parsed.Valid {
		v.logger.Debug("[auth][verifier] reject", zap.String("reason", "invalid token"))
		return ClientIdentity{}, ErrUnauthenticated
	}

	clientID := strings.TrimSpace(claims.ClientID)
	if clientID == "" {
		v.logger.Debug("[auth][verifier] reject", zap.String("reason", "missing id claim"))
		return ClientIdentity{}, ErrUnauthenticated
	}

	return ClientIdentity{ClientID: clientID}, nil
}
