package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shashiranjanraj/winkel/app/repositories"
	"github.com/shashiranjanraj/winkel/pkg/auth"
	"github.com/shashiranjanraj/winkel/pkg/response"
)

// userKey is the unexported context key for the authenticated user.
type userKey struct{}

// Auth is the per-request authorization guard: it resolves the acting
// identity from the bearer token and, where required, checks the admin
// role. Identity resolution always runs before any role check because
// RequireAdmin is only ever chained after Authenticate.
type Auth struct {
	tokens *auth.TokenManager
	users  *repositories.UserRepository
}

func NewAuth(tokens *auth.TokenManager, users *repositories.UserRepository) *Auth {
	return &Auth{tokens: tokens, users: users}
}

// Authenticate extracts the bearer token, verifies it, and loads the user
// it refers to into the request context. Every failure mode is a plain 401:
// missing header, bad signature, expired token, missing subject, and a
// token whose user has since been deleted.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := a.tokens.Parse(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		user, err := a.users.FindByID(userID)
		if err != nil {
			// A token naming a deleted user is unauthenticated, not an
			// internal error.
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin passes the request through only when the authenticated user
// carries the admin flag. Chain it after Authenticate.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := CurrentUser(r.Context())
		if user == nil {
			response.Unauthorized(w)
			return
		}
		if !user.IsAdmin {
			response.Forbidden(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the authenticated user stored by Authenticate, or nil.
func CurrentUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userKey{}).(*models.User); ok {
		return user
	}
	return nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
