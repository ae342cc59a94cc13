// Package order содержит бизнес-логику оформления заказа из корзины.
package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator"

	"github.com/greenharvest/agroshop/internal/models"
	"github.com/greenharvest/agroshop/internal/session"
)

// ErrEmptyCart — попытка оформить заказ с пустой корзиной.
var ErrEmptyCart = errors.New("cart is empty")

// Form содержит поля формы оформления заказа.
type Form struct {
	Name          string `validate:"required"`                   // Имя получателя
	Address       string `validate:"required"`                   // Адрес доставки
	Mobile        string `validate:"required"`                   // Контактный телефон
	PaymentMethod string `validate:"required,oneof=cod card upi"` // Способ оплаты
}

// OrderRepository описывает контракт хранилища заказов.
type OrderRepository interface {
	SaveOrder(ctx context.Context, order models.Order) (int64, error)
}

// Service отвечает за оформление заказов.
type Service struct {
	orders   OrderRepository
	validate *validator.Validate
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(orders OrderRepository, log *slog.Logger) *Service {
	return &Service{
		orders:   orders,
		validate: validator.New(),
		log:      log,
	}
}

// Checkout превращает корзину сессии в строку заказа:
// проверяет непустоту корзины и поля формы, считает итог,
// определяет покупателя (email сессии или Guest), сохраняет заказ
// и очищает корзину. Ошибка хранилища не ретраится и поднимается наверх,
// корзина при этом остается нетронутой.
func (s *Service) Checkout(ctx context.Context, sess *session.State, form Form) (int64, error) {
	const op = "order.Checkout"

	items := sess.Items()
	if len(items) == 0 {
		return 0, ErrEmptyCart
	}

	if err := s.validate.Struct(form); err != nil {
		return 0, err
	}

	userEmail := models.GuestEmail
	if sess.User != nil {
		userEmail = sess.User.Email
	}

	id, err := s.orders.SaveOrder(ctx, models.Order{
		UserEmail:     userEmail,
		Name:          form.Name,
		Address:       form.Address,
		Mobile:        form.Mobile,
		TotalAmount:   sess.Total(),
		PaymentMethod: form.PaymentMethod,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	sess.ClearCart()

	s.log.Info("order placed",
		slog.Int64("order_id", id),
		slog.String("user_email", userEmail),
		slog.Int("items", len(items)))
	return id, nil
}
