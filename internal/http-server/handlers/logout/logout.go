// Package logout реализует HTTP-обработчик выхода из аккаунта.
// Сессия очищается целиком, включая корзину.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/greenharvest/agroshop/internal/session"
)

// Handler завершает авторизованную сессию.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := session.FromContext(r.Context())
	sess.Reset()
	sess.AddFlash(session.FlashInfo, "You have logged out successfully!")
	log.Info("user logged out")
	http.Redirect(w, r, "/login", http.StatusFound)
}
