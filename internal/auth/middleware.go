package auth

import (
	"context"
	"net/http"

	"github.com/redmonkez12/community-feed/internal/flash"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const (
	// IdentityContextKey holds the authenticated identity (normalized email)
	IdentityContextKey ContextKey = "identity"
)

// Middleware is the session gate for protected routes
type Middleware struct {
	tokenService TokenService
	resolver     IdentityResolver
}

func NewMiddleware(tokenService TokenService, resolver IdentityResolver) *Middleware {
	return &Middleware{tokenService: tokenService, resolver: resolver}
}

// RequireSession validates the request's session claim and resolves it to
// an identity before the protected handler runs.
//
// Every rejection looks the same to the caller: a redirect to /login with
// one generic notice. Missing cookie, malformed token, expired claim and a
// claim for a user that no longer exists are intentionally not
// distinguished.
func (m *Middleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := GetSessionFromCookie(r)
		if err != nil {
			m.reject(w, r)
			return
		}

		claims, err := m.tokenService.VerifyToken(token)
		if err != nil {
			m.reject(w, r)
			return
		}

		// A live claim is not enough; its identity must still resolve to
		// an existing record.
		if !m.resolver.Exists(claims.Email) {
			m.reject(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), IdentityContextKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) reject(w http.ResponseWriter, r *http.Request) {
	flash.Set(w, "Please log in first.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// GetIdentityFromContext extracts the authenticated identity from the
// request context
func GetIdentityFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(IdentityContextKey).(string)
	return email, ok
}
