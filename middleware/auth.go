// Package middleware provides the HTTP middleware for the service: bearer
// token auth against a JWKS endpoint, and CORS headers for the mobile
// clients' web builds.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

const defaultLeeway = 30 * time.Second

type contextKey string

const userIDKey contextKey = "auth.user_id"

// UserIDFromContext returns the authenticated subject, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// WithUserID injects a subject into the context. Exported for tests and the
// auth-disabled development path.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Verifier validates bearer access tokens against the issuer's JWKS.
type Verifier struct {
	issuer   string
	audience string
	keyfunc  keyfunc.Keyfunc
	parser   *jwt.Parser
}

// NewVerifier builds a verifier; the JWKS URL is derived from the issuer.
func NewVerifier(issuer, audience string) (*Verifier, error) {
	issuer = normalizeIssuer(issuer)
	if issuer == "" {
		return nil, errors.New("issuer must be set")
	}
	if audience == "" {
		return nil, errors.New("audience must be set")
	}

	keyProvider, err := keyfunc.NewDefault([]string{issuer + ".well-known/jwks.json"})
	if err != nil {
		return nil, fmt.Errorf("failed to init JWKS keyfunc: %w", err)
	}

	parser := jwt.NewParser(
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithLeeway(defaultLeeway),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name, jwt.SigningMethodRS384.Name, jwt.SigningMethodRS512.Name}),
	)

	return &Verifier{issuer: issuer, audience: audience, keyfunc: keyProvider, parser: parser}, nil
}

// Verify parses and validates a token, returning the subject.
func (v *Verifier) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, v.keyfunc.Keyfunc)
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("token has no valid subject")
	}
	return claims.Subject, nil
}

func normalizeIssuer(issuer string) string {
	issuer = strings.TrimSpace(issuer)
	if issuer == "" {
		return ""
	}
	if !strings.HasSuffix(issuer, "/") {
		issuer += "/"
	}
	return issuer
}

// Auth enforces bearer token auth and injects the subject into the request
// context. With a nil verifier (auth disabled), requests run as "local-dev".
func Auth(verifier *Verifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				next(w, r.WithContext(WithUserID(r.Context(), "local-dev")))
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				log.Printf("auth failure: missing Authorization header path=%s", r.URL.Path)
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			token, ok := extractBearerToken(header)
			if !ok {
				log.Printf("auth failure: malformed Authorization header path=%s", r.URL.Path)
				http.Error(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}

			subject, err := verifier.Verify(token)
			if err != nil {
				log.Printf("auth failure: token invalid path=%s err=%v", r.URL.Path, err)
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next(w, r.WithContext(WithUserID(r.Context(), subject)))
		}
	}
}

func extractBearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
