package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/dom/game-save-backend/internal/domain"
	"github.com/dom/game-save-backend/internal/service"
)

type contextKey string

const (
	UserKey contextKey = "user"
)

// Auth resolves the bearer token to a user and stores it in the request
// context. Every failure is reported to the client as a bare 401; the
// distinction between missing, malformed, expired, and orphaned tokens is
// only logged.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.Auth] missing authorization header")
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("ERROR [middleware.Auth] invalid authorization header format")
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}

			user, err := authService.ResolveCaller(r.Context(), parts[1])
			if err != nil {
				log.Printf("ERROR [middleware.Auth] failed to resolve caller: %v", err)
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}
