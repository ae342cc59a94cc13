// Package static реализует обработчик страниц без динамических данных:
// главная, "о нас" и подтверждение заказа. Уведомления и данные
// покупателя берутся из сессии.
package static

import (
	"log/slog"
	"net/http"

	"github.com/greenharvest/agroshop/internal/session"
	"github.com/greenharvest/agroshop/internal/web"
)

// Handler рендерит одну статическую страницу.
type Handler struct {
	log      *slog.Logger
	renderer *web.Renderer
	page     string
	title    string
}

// New создает обработчик страницы page с заголовком title.
func New(log *slog.Logger, renderer *web.Renderer, page, title string) *Handler {
	return &Handler{
		log:      log,
		renderer: renderer,
		page:     page,
		title:    title,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	h.renderer.HTML(w, http.StatusOK, h.page, web.PageData(sess, h.title, nil))
}
