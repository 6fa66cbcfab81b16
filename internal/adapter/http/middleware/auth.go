package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/aryasulebhavi/digital-wallet-system/internal/infrastructure/auth"
)

// ContextKey is the type for context keys.
type ContextKey string

// ActorIDKey is the context key for the authenticated actor's ID.
const ActorIDKey ContextKey = "actor_id"

// ActorIDHeader names the header trusted when JWT auth is disabled.
const ActorIDHeader = "X-Actor-ID"

// ActorID extracts the authenticated actor's ID from the request context.
func ActorID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ActorIDKey).(string)
	return id, ok && id != ""
}

// Actor authenticates the request and stores the actor ID in the context.
// With a JWT manager configured it requires a Bearer token; without one it
// trusts the X-Actor-ID header, which is only suitable behind a gateway
// that already authenticated the caller.
func Actor(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var actorID string

			if jwtManager != nil {
				header := r.Header.Get("Authorization")
				parts := strings.SplitN(header, " ", 2)
				if len(parts) != 2 || parts[0] != "Bearer" {
					http.Error(w, "missing or malformed authorization header", http.StatusUnauthorized)
					return
				}

				claims, err := jwtManager.Verify(parts[1])
				if err != nil {
					http.Error(w, "invalid or expired token", http.StatusUnauthorized)
					return
				}
				actorID = claims.ActorID
			} else {
				actorID = r.Header.Get(ActorIDHeader)
			}

			if actorID == "" {
				http.Error(w, "actor identity required", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ActorIDKey, actorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
