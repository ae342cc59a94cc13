// Package cartremove реализует HTTP-обработчик удаления товара из корзины.
// Удаляются все позиции с данным идентификатором, не только первая.
package cartremove

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/greenharvest/agroshop/internal/lib/sl"
	"github.com/greenharvest/agroshop/internal/session"
)

// Handler удаляет позиции товара из корзины сессии.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid product id", sl.Err(err))
		http.Redirect(w, r, "/cart", http.StatusFound)
		return
	}

	sess := session.FromContext(r.Context())
	sess.RemoveItem(id)
	log.Info("product removed from cart", slog.Int("product_id", id))
	http.Redirect(w, r, "/cart", http.StatusFound)
}
