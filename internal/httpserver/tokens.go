// internal/httpserver/tokens.go
//
// Session tokens: HS256 JWTs whose subject is the session ID. Creating a
// session returns its token; reading or changing the session requires it.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errBadToken = errors.New("invalid session token")

type tokenSigner struct {
	secret []byte
	ttl    time.Duration
}

func newTokenSigner(secret string, ttl time.Duration) tokenSigner {
	if secret == "" {
		secret = "dev_secret_change_me"
	}
	return tokenSigner{secret: []byte(secret), ttl: ttl}
}

// sign issues a token for sessionID.
func (t tokenSigner) sign(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:  sessionID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if t.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// verify returns the session ID carried by tok.
func (t tokenSigner) verify(tok string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", errBadToken
	}
	return claims.Subject, nil
}

// bearerToken extracts a bearer token from the Authorization header.
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
