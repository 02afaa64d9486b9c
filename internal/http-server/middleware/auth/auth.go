package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"eventix/internal/lib/api/response"
	"eventix/internal/lib/jwt"
	"eventix/internal/lib/logger/sl"
)

type ctxKey struct{}

// New verifies the bearer token and, when roles are given, requires the
// token's role to be one of them. A missing or malformed header is 401;
// a bad token or a wrong role is 403, so a caller can tell "no
// credential" from "bad credential" by status alone.
func New(log *slog.Logger, secret string, roles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			claims, err := jwt.Parse(parts[1], secret)
			if err != nil {
				log.Warn("failed to parse token", sl.Err(err))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("invalid token"))
				return
			}

			if len(roles) > 0 && !hasRole(claims.Role, roles) {
				log.Warn("role not allowed",
					slog.String("role", claims.Role),
					slog.Int("user_id", claims.UserID),
				)
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("permission denied"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		}

		return http.HandlerFunc(fn)
	}
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// WithClaims attaches verified claims to the context.
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// FromContext returns the claims put there by New. Handlers behind the
// middleware can assume ok is true.
func FromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*jwt.Claims)
	return claims, ok
}
