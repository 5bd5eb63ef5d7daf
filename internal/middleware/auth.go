package middleware

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/haguru/bloglist/internal/apperrors"
	"github.com/haguru/bloglist/internal/auth"
	"github.com/haguru/bloglist/internal/interfaces"
)

const (
	// BearerPrefix is the required Authorization scheme prefix, matched
	// case-sensitively.
	BearerPrefix = "Bearer "

	AuthorizationHeader = "Authorization"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity is the authenticated user bound to a request.
type Identity struct {
	ID       string
	Username string
	Name     string
}

// IdentityFromContext extracts the authenticated identity from the request
// context. The second return value is false when the request did not pass
// RequireAuth.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// RequireAuth verifies the bearer token on each request and resolves it to a
// user identity, which is attached to the request context for downstream
// handlers. Each request carries its own identity binding, so concurrent
// requests never observe each other's identity. No store mutation happens
// here.
func RequireAuth(publicKey *ecdsa.PublicKey, userRepo interfaces.UserRepository, logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(AuthorizationHeader)
			if !strings.HasPrefix(header, BearerPrefix) {
				unauthorized(w, apperrors.ErrMissingToken)
				return
			}
			tokenString := header[len(BearerPrefix):]
			if tokenString == "" {
				unauthorized(w, apperrors.ErrMissingToken)
				return
			}

			claims, err := auth.VerifyToken(tokenString, publicKey)
			if err != nil {
				logger.Warn("Token verification failed", "error", err)
				unauthorized(w, apperrors.ErrInvalidToken)
				return
			}

			user, err := userRepo.GetUserByID(r.Context(), claims.UserID)
			if err != nil || user == nil {
				logger.Warn("Token names unknown user", "userid", claims.UserID)
				unauthorized(w, apperrors.ErrInvalidToken)
				return
			}

			identity := Identity{
				ID:       user.ID,
				Username: user.Username,
				Name:     user.Name,
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
