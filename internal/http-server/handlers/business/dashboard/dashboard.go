package dashboard

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventix/internal/http-server/middleware/auth"
	"eventix/internal/lib/api/response"
)

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.business.dashboard.New"

		log = log.With(slog.String("op", op))

		claims, ok := auth.FromContext(r.Context())
		if !ok {
			log.Error("no claims in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		log.Info("dashboard requested", slog.Int("user_id", claims.UserID))

		render.JSON(w, r, response.Response{
			Status:  response.StatusOK,
			Message: fmt.Sprintf("Welcome back, %s", claims.Email),
		})
	}
}
