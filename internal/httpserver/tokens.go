// internal/httpserver/tokens.go
//
// Game tokens. Creating a game returns an HS256 JWT naming the game ID;
// every per-game route requires it as a bearer token so only the player who
// started a game can play it.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errNoToken      = errors.New("missing token")
	errInvalidToken = errors.New("invalid token")
)

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// sign creates a token for gameID expiring after the configured TTL.
func (ti *tokenIssuer) sign(gameID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ti.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString(ti.secret)
	return ss, exp, err
}

// verify returns the game ID carried by a valid token.
func (ti *tokenIssuer) verify(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", errInvalidToken
	}
	gid, _ := claims["gid"].(string)
	if gid == "" {
		return "", errInvalidToken
	}
	return gid, nil
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// ctxGameKey is the context key type for the authorized game ID.
type ctxGameKey struct{}

// requireGameToken enforces a valid token for the {id} URL parameter.
// 401 when the token is missing or invalid, 403 when it names another game.
func (s *Server) requireGameToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearer(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, errNoToken.Error())
			return
		}
		gid, err := s.tokens.verify(tok)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		if gid != chi.URLParam(r, "id") {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		ctx := context.WithValue(r.Context(), ctxGameKey{}, gid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
