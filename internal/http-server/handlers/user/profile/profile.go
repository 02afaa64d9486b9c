package profile

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventix/internal/http-server/middleware/auth"
	"eventix/internal/lib/api/response"
)

type ProfileResponse struct {
	response.Response
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// New echoes the identity carried by the verified token. It holds no
// storage dependency: the token is the session.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.profile.New"

		log = log.With(slog.String("op", op))

		claims, ok := auth.FromContext(r.Context())
		if !ok {
			log.Error("no claims in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		log.Info("profile requested", slog.Int("user_id", claims.UserID))

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			ID:       claims.UserID,
			Email:    claims.Email,
			Role:     claims.Role,
		})
	}
}
