// Package buynow реализует быстрый путь покупки: корзина заменяется
// единственным выбранным товаром, запрос уводится сразу на оформление.
package buynow

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/greenharvest/agroshop/internal/lib/sl"
	"github.com/greenharvest/agroshop/internal/models"
	"github.com/greenharvest/agroshop/internal/session"
)

// Catalog описывает поиск товара по идентификатору.
type Catalog interface {
	Find(id int) (models.Product, bool)
}

// Handler заменяет корзину одним товаром и ведет на оформление.
type Handler struct {
	log     *slog.Logger
	catalog Catalog
}

// New создает новый Handler.
func New(log *slog.Logger, catalog Catalog) *Handler {
	return &Handler{
		log:     log,
		catalog: catalog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.buynow"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid product id", sl.Err(err))
		http.Redirect(w, r, "/products", http.StatusFound)
		return
	}

	p, ok := h.catalog.Find(id)
	if !ok {
		// Неизвестный товар: корзина не трогается.
		log.Info("unknown product id", slog.Int("product_id", id))
		http.Redirect(w, r, "/products", http.StatusFound)
		return
	}

	sess := session.FromContext(r.Context())
	sess.SetSingleItem(p)
	log.Info("buy now", slog.Int("product_id", id))
	http.Redirect(w, r, "/checkout", http.StatusFound)
}
