// Package cartview реализует HTTP-обработчик страницы корзины.
package cartview

import (
	"log/slog"
	"net/http"

	"github.com/greenharvest/agroshop/internal/models"
	"github.com/greenharvest/agroshop/internal/session"
	"github.com/greenharvest/agroshop/internal/web"
)

// Content — данные страницы корзины.
type Content struct {
	Items []models.Product // Позиции корзины в порядке добавления
	Total int64            // Сумма цен позиций
}

// Handler рендерит корзину с посчитанным итогом.
type Handler struct {
	log      *slog.Logger
	renderer *web.Renderer
}

// New создает новый Handler.
func New(log *slog.Logger, renderer *web.Renderer) *Handler {
	return &Handler{
		log:      log,
		renderer: renderer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	h.renderer.HTML(w, http.StatusOK, "cart", web.PageData(sess, "Your cart", Content{
		Items: sess.Items(),
		Total: sess.Total(),
	}))
}
