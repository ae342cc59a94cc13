// Package checkout реализует HTTP-обработчики страницы оформления заказа.
//
// Show отдает форму с содержимым корзины; Submit прогоняет форму через
// сервис заказов и по результату ведет на подтверждение, обратно
// на форму или на каталог (если корзина пуста).
package checkout

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/greenharvest/agroshop/internal/http-server/forms"
	"github.com/greenharvest/agroshop/internal/lib/sl"
	"github.com/greenharvest/agroshop/internal/models"
	"github.com/greenharvest/agroshop/internal/services/order"
	"github.com/greenharvest/agroshop/internal/session"
	"github.com/greenharvest/agroshop/internal/web"
)

// Content — данные страницы оформления заказа.
type Content struct {
	Items []models.Product // Позиции корзины
	Total int64            // Сумма к оплате
}

// Service описывает бизнес-логику оформления заказа.
type Service interface {
	Checkout(ctx context.Context, sess *session.State, form order.Form) (int64, error)
}

// Handler управляет страницей оформления заказа.
type Handler struct {
	log      *slog.Logger
	renderer *web.Renderer
	service  Service
}

// New создает новый Handler.
func New(log *slog.Logger, renderer *web.Renderer, service Service) *Handler {
	return &Handler{
		log:      log,
		renderer: renderer,
		service:  service,
	}
}

// Show отдает форму оформления. Пустая корзина уводит на каталог.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	items := sess.Items()
	if len(items) == 0 {
		sess.AddFlash(session.FlashWarning, "Your cart is empty!")
		http.Redirect(w, r, "/products", http.StatusFound)
		return
	}

	h.renderer.HTML(w, http.StatusOK, "checkout", web.PageData(sess, "Checkout", Content{
		Items: items,
		Total: sess.Total(),
	}))
}

// Submit оформляет заказ из корзины сессии.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.checkout.submit"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := session.FromContext(r.Context())
	form := order.Form{
		Name:          r.FormValue("name"),
		Address:       r.FormValue("address"),
		Mobile:        r.FormValue("mobile"),
		PaymentMethod: r.FormValue("payment_method"),
	}

	id, err := h.service.Checkout(r.Context(), sess, form)
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		sess.AddFlash(session.FlashWarning, "Your cart is empty!")
		http.Redirect(w, r, "/products", http.StatusSeeOther)
	case err != nil:
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Info("checkout form rejected", sl.Err(err))
			sess.AddFlash(session.FlashDanger, forms.Message(validationErrs))
			http.Redirect(w, r, "/checkout", http.StatusSeeOther)
			return
		}
		log.Error("failed to place order", sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	default:
		log.Info("order placed", slog.Int64("order_id", id))
		http.Redirect(w, r, "/thank-you", http.StatusSeeOther)
	}
}
