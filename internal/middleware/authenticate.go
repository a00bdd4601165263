package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/travel-mate/backend/internal/auth"
	"github.com/pkordes/travel-mate/backend/internal/domain"
)

type identityKey struct{}

// Authenticate returns a middleware that requires an "Authorization: Bearer"
// header, verifies it with v and stores the resulting identity in the request
// context. Requests without a valid credential get 401 and never reach next.
func Authenticate(v auth.Verifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, r, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}
			id, err := v.Verify(r.Context(), token)
			if err != nil {
				log.DebugContext(r.Context(), "token rejected", "error", err)
				writeError(w, r, http.StatusUnauthorized, "unauthorized", "invalid bearer token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the caller identity stored by Authenticate. The zero
// Identity is returned for unauthenticated requests.
func IdentityFrom(ctx context.Context) domain.Identity {
	id, _ := ctx.Value(identityKey{}).(domain.Identity)
	return id
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
