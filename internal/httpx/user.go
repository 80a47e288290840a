package httpx

import (
	"context"
	"net/http"

	"invitely/internal/domains"

	"github.com/gorilla/mux"
)

const userContextKey contextKey = "user"

type UserLoader interface {
	GetUserByID(ctx context.Context, userID string) (domains.User, error)
}

// CurrentUser resolves the authenticated account behind the token subject so
// handlers and the access gate see a fresh premium flag. It must run after
// Protected or OptionalAuth; with OptionalAuth an anonymous request simply
// carries no user.
func CurrentUser(loader UserLoader) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sub, ok := UserIDFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			user, err := loader.GetUserByID(r.Context(), sub)
			if err != nil {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserFromContext(ctx context.Context) (domains.User, bool) {
	user, ok := ctx.Value(userContextKey).(domains.User)
	return user, ok
}
