package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenCodec derives a credential token from a user id and resolves a token
// back to the user id it was issued for.
type TokenCodec interface {
	Issue(userID string) (string, error)
	Subject(token string) (string, error)
}

// StaticPrefix is the prefix of tokens issued by StaticCodec. The full token
// is the prefix concatenated with the user id, matching what the backend
// contract expects to see persisted.
const StaticPrefix = "mock-jwt-token-"

// StaticCodec issues the deterministic id-derived token used by the mock
// backend. The token is not cryptographically verifiable: it is proof of
// knowing a user id, not proof of authentication. Any deployment with real
// security requirements must use SignedCodec (or a server-side session)
// instead.
type StaticCodec struct{}

func (StaticCodec) Issue(userID string) (string, error) {
	return StaticPrefix + userID, nil
}

func (StaticCodec) Subject(token string) (string, error) {
	id, ok := strings.CutPrefix(token, StaticPrefix)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: malformed token", common.ErrSessionInvalid)
	}
	return id, nil
}

// signedClaims carries the standard claims plus the user id.
type signedClaims struct {
	jwt.RegisteredClaims
	UserID string
}

// SignedCodec issues HMAC-SHA256 signed JWTs carrying the user id. It is the
// verifiable alternative to StaticCodec, selected by configuring a signing
// secret.
type SignedCodec struct {
	Secret []byte
	TTL    time.Duration
}

func (c SignedCodec) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, signedClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.TTL)),
		},
		UserID: userID,
	})
	return token.SignedString(c.Secret)
}

func (c SignedCodec) Subject(token string) (string, error) {
	claims := &signedClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return c.Secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrSessionInvalid, err)
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", fmt.Errorf("%w: invalid token", common.ErrSessionInvalid)
	}
	return claims.UserID, nil
}
