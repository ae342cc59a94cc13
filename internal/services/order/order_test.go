package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenharvest/agroshop/internal/lib/sl"
	"github.com/greenharvest/agroshop/internal/models"
	"github.com/greenharvest/agroshop/internal/services/order"
	"github.com/greenharvest/agroshop/internal/session"
)

type mockOrders struct {
	SaveOrderFunc func(ctx context.Context, o models.Order) (int64, error)
}

func (m *mockOrders) SaveOrder(ctx context.Context, o models.Order) (int64, error) {
	return m.SaveOrderFunc(ctx, o)
}

var (
	urea = models.Product{ID: 1, Name: "Urea", Price: 1220}
	dap  = models.Product{ID: 2, Name: "DAP", Price: 1350}
)

func validForm() order.Form {
	return order.Form{
		Name:          "Ravi",
		Address:       "12 Field Road",
		Mobile:        "9876543210",
		PaymentMethod: "cod",
	}
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart never creates an order", func(t *testing.T) {
		orders := &mockOrders{
			SaveOrderFunc: func(ctx context.Context, o models.Order) (int64, error) {
				t.Fatal("SaveOrder should not be called")
				return 0, nil
			},
		}
		sess := &session.State{ID: "test"}

		_, err := order.New(orders, sl.NewDiscardLogger()).Checkout(ctx, sess, validForm())
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("guest checkout persists total and clears cart", func(t *testing.T) {
		var saved models.Order
		orders := &mockOrders{
			SaveOrderFunc: func(ctx context.Context, o models.Order) (int64, error) {
				saved = o
				return 5, nil
			},
		}
		sess := &session.State{ID: "test"}
		sess.AddItem(dap)

		id, err := order.New(orders, sl.NewDiscardLogger()).Checkout(ctx, sess, validForm())
		require.NoError(t, err)
		assert.Equal(t, int64(5), id)
		assert.Equal(t, models.GuestEmail, saved.UserEmail)
		assert.Equal(t, int64(1350), saved.TotalAmount)
		assert.Equal(t, "cod", saved.PaymentMethod)
		assert.Empty(t, sess.Items())
	})

	t.Run("total equals sum of entries in multiplicity", func(t *testing.T) {
		var saved models.Order
		orders := &mockOrders{
			SaveOrderFunc: func(ctx context.Context, o models.Order) (int64, error) {
				saved = o
				return 6, nil
			},
		}
		sess := &session.State{ID: "test"}
		sess.AddItem(urea)
		sess.AddItem(urea)
		sess.AddItem(dap)

		_, err := order.New(orders, sl.NewDiscardLogger()).Checkout(ctx, sess, validForm())
		require.NoError(t, err)
		assert.Equal(t, int64(3790), saved.TotalAmount)
	})

	t.Run("authenticated user attributed by email", func(t *testing.T) {
		var saved models.Order
		orders := &mockOrders{
			SaveOrderFunc: func(ctx context.Context, o models.Order) (int64, error) {
				saved = o
				return 7, nil
			},
		}
		sess := &session.State{ID: "test"}
		sess.AddItem(urea)
		sess.SetUser(session.AuthUser{ID: 3, Username: "farmer", Email: "farmer@example.com"})

		_, err := order.New(orders, sl.NewDiscardLogger()).Checkout(ctx, sess, validForm())
		require.NoError(t, err)
		assert.Equal(t, "farmer@example.com", saved.UserEmail)
	})

	t.Run("missing form field keeps cart intact", func(t *testing.T) {
		orders := &mockOrders{
			SaveOrderFunc: func(ctx context.Context, o models.Order) (int64, error) {
				t.Fatal("SaveOrder should not be called")
				return 0, nil
			},
		}
		sess := &session.State{ID: "test"}
		sess.AddItem(urea)

		form := validForm()
		form.Address = ""

		_, err := order.New(orders, sl.NewDiscardLogger()).Checkout(ctx, sess, form)
		require.Error(t, err)
		var validationErrs validator.ValidationErrors
		assert.True(t, errors.As(err, &validationErrs))
		assert.Len(t, sess.Items(), 1)
	})

	t.Run("unsupported payment method rejected", func(t *testing.T) {
		orders := &mockOrders{
			SaveOrderFunc: func(ctx context.Context, o models.Order) (int64, error) {
				t.Fatal("SaveOrder should not be called")
				return 0, nil
			},
		}
		sess := &session.State{ID: "test"}
		sess.AddItem(urea)

		form := validForm()
		form.PaymentMethod = "bitcoin"

		_, err := order.New(orders, sl.NewDiscardLogger()).Checkout(ctx, sess, form)
		require.Error(t, err)
	})

	t.Run("storage error keeps cart intact", func(t *testing.T) {
		orders := &mockOrders{
			SaveOrderFunc: func(ctx context.Context, o models.Order) (int64, error) {
				return 0, errors.New("db down")
			},
		}
		sess := &session.State{ID: "test"}
		sess.AddItem(urea)

		_, err := order.New(orders, sl.NewDiscardLogger()).Checkout(ctx, sess, validForm())
		require.Error(t, err)
		assert.Len(t, sess.Items(), 1)
	})
}
