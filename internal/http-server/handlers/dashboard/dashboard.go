// Package dashboard реализует защищенную страницу покупателя
// с историей его заказов. Доступ ограничивается middleware mware.RequireAuth.
package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/greenharvest/agroshop/internal/lib/sl"
	"github.com/greenharvest/agroshop/internal/models"
	"github.com/greenharvest/agroshop/internal/session"
	"github.com/greenharvest/agroshop/internal/web"
)

// Content — данные страницы покупателя.
type Content struct {
	Orders []models.Order // История заказов, свежие первыми
}

// OrderRepository описывает чтение заказов покупателя.
type OrderRepository interface {
	ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error)
}

// Handler рендерит личный кабинет.
type Handler struct {
	log    *slog.Logger
	render *web.Renderer
	orders OrderRepository
}

// New создает новый Handler.
func New(log *slog.Logger, render *web.Renderer, orders OrderRepository) *Handler {
	return &Handler{
		log:    log,
		render: render,
		orders: orders,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := session.FromContext(r.Context())

	orders, err := h.orders.ListOrdersByEmail(r.Context(), sess.User.Email)
	if err != nil {
		log.Error("failed to list orders", sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render.HTML(w, http.StatusOK, "dashboard", web.PageData(sess, "Dashboard", Content{Orders: orders}))
}
