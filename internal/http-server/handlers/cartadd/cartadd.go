// Package cartadd реализует HTTP-обработчик добавления товара в корзину.
//
// Товар ищется в каталоге; найденный добавляется отдельной позицией
// в корзину сессии с уведомлением. Неизвестный идентификатор — no-op
// для корзины, запрос все равно уводится на страницу корзины.
package cartadd

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

// Handler добавляет товар в корзину сессии.
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
	const op = "handlers.cart.add"
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
	if p, ok := h.catalog.Find(id); ok {
		sess.AddItem(p)
		sess.AddFlash(session.FlashSuccess, p.Name+" added to cart!")
		log.Info("product added to cart", slog.Int("product_id", id))
	} else {
		log.Info("unknown product id", slog.Int("product_id", id))
	}

	http.Redirect(w, r, "/cart", http.StatusFound)
}
