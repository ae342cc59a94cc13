package repository

import (
	"context"
	"fmt"

	"github.com/greenharvest/agroshop/internal/models"
)

// SaveOrder сохраняет оформленный заказ и возвращает его ID.
// total_amount приходит уже посчитанным: сумма цен позиций корзины
// вычисляется в процессе до вставки.
func (s *Storage) SaveOrder(ctx context.Context, order models.Order) (int64, error) {
	const op = "storage.SaveOrder"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int64
	query := `INSERT INTO orders (user_email, name, address, mobile, total_amount, payment_method)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		order.UserEmail, order.Name, order.Address, order.Mobile,
		order.TotalAmount, order.PaymentMethod).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListOrdersByEmail возвращает заказы покупателя, свежие первыми.
func (s *Storage) ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	const op = "storage.ListOrdersByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_email, name, address, mobile, total_amount, payment_method, order_date
			  FROM orders
			  WHERE user_email = $1
			  ORDER BY order_date DESC, id DESC`
	rows, err := s.DB.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Order
	for rows.Next() {
		var o models.Order
		if err = rows.Scan(&o.ID, &o.UserEmail, &o.Name, &o.Address, &o.Mobile,
			&o.TotalAmount, &o.PaymentMethod, &o.OrderDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
