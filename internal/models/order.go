package models

import "time"

// GuestEmail — значение user_email для заказов неавторизованных покупателей.
const GuestEmail = "Guest"

// Order представляет оформленный заказ. Заказ неизменяем:
// после вставки нет ни обновления, ни удаления.
type Order struct {
	ID            int64     // Идентификатор заказа
	UserEmail     string    // Email покупателя или GuestEmail
	Name          string    // Имя получателя
	Address       string    // Адрес доставки
	Mobile        string    // Контактный телефон
	TotalAmount   int64     // Итоговая сумма, сумма цен позиций корзины
	PaymentMethod string    // Способ оплаты
	OrderDate     time.Time // Дата оформления, выставляется базой
}
