// Package products реализует HTTP-обработчик витрины каталога.
package products

import (
	"log/slog"
	"net/http"

	"github.com/greenharvest/agroshop/internal/models"
	"github.com/greenharvest/agroshop/internal/session"
	"github.com/greenharvest/agroshop/internal/web"
)

// Catalog описывает доступ к списку товаров.
type Catalog interface {
	List() []models.Product
}

// Handler рендерит страницу каталога.
type Handler struct {
	log      *slog.Logger
	renderer *web.Renderer
	catalog  Catalog
}

// New создает новый Handler.
func New(log *slog.Logger, renderer *web.Renderer, catalog Catalog) *Handler {
	return &Handler{
		log:      log,
		renderer: renderer,
		catalog:  catalog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	h.renderer.HTML(w, http.StatusOK, "products", web.PageData(sess, "Products", h.catalog.List()))
}
