package checkout_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenharvest/agroshop/internal/http-server/handlers/checkout"
	"github.com/greenharvest/agroshop/internal/lib/sl"
	"github.com/greenharvest/agroshop/internal/models"
	"github.com/greenharvest/agroshop/internal/services/order"
	"github.com/greenharvest/agroshop/internal/session"
	"github.com/greenharvest/agroshop/internal/web"
)

type mockService struct {
	CheckoutFunc func(ctx context.Context, sess *session.State, form order.Form) (int64, error)
}

func (m *mockService) Checkout(ctx context.Context, sess *session.State, form order.Form) (int64, error) {
	return m.CheckoutFunc(ctx, sess, form)
}

var dap = models.Product{ID: 2, Name: "DAP", Price: 1350}

func newRenderer(t *testing.T) *web.Renderer {
	t.Helper()
	r, err := web.New(sl.NewDiscardLogger())
	require.NoError(t, err)
	return r
}

func formBody(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}

func TestHandler_Show(t *testing.T) {
	t.Run("empty cart redirects to products", func(t *testing.T) {
		h := checkout.New(sl.NewDiscardLogger(), newRenderer(t), &mockService{})
		sess := &session.State{ID: "test"}

		req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
		req = req.WithContext(session.NewContext(req.Context(), sess))
		w := httptest.NewRecorder()
		h.Show(w, req)

		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/products", w.Header().Get("Location"))
		flashes := sess.PopFlashes()
		require.Len(t, flashes, 1)
		assert.Equal(t, session.FlashWarning, flashes[0].Level)
	})

	t.Run("non-empty cart renders form with total", func(t *testing.T) {
		h := checkout.New(sl.NewDiscardLogger(), newRenderer(t), &mockService{})
		sess := &session.State{ID: "test"}
		sess.AddItem(dap)

		req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
		req = req.WithContext(session.NewContext(req.Context(), sess))
		w := httptest.NewRecorder()
		h.Show(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "DAP")
		assert.Contains(t, w.Body.String(), "1350")
	})
}

func TestHandler_Submit(t *testing.T) {
	values := url.Values{
		"name":           {"Ravi"},
		"address":        {"12 Field Road"},
		"mobile":         {"9876543210"},
		"payment_method": {"cod"},
	}

	newRequest := func(sess *session.State) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/checkout", formBody(values))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req.WithContext(session.NewContext(req.Context(), sess))
	}

	t.Run("success redirects to thank-you", func(t *testing.T) {
		svc := &mockService{
			CheckoutFunc: func(ctx context.Context, sess *session.State, form order.Form) (int64, error) {
				require.Equal(t, "Ravi", form.Name)
				require.Equal(t, "cod", form.PaymentMethod)
				return 11, nil
			},
		}
		h := checkout.New(sl.NewDiscardLogger(), newRenderer(t), svc)
		sess := &session.State{ID: "test"}
		sess.AddItem(dap)

		w := httptest.NewRecorder()
		h.Submit(w, newRequest(sess))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/thank-you", w.Header().Get("Location"))
	})

	t.Run("empty cart redirects to products", func(t *testing.T) {
		svc := &mockService{
			CheckoutFunc: func(ctx context.Context, sess *session.State, form order.Form) (int64, error) {
				return 0, order.ErrEmptyCart
			},
		}
		h := checkout.New(sl.NewDiscardLogger(), newRenderer(t), svc)
		sess := &session.State{ID: "test"}

		w := httptest.NewRecorder()
		h.Submit(w, newRequest(sess))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/products", w.Header().Get("Location"))
	})

	t.Run("validation error returns to form with notice", func(t *testing.T) {
		validate := validator.New()
		validationErr := validate.Struct(order.Form{PaymentMethod: "cod"})
		require.Error(t, validationErr)

		svc := &mockService{
			CheckoutFunc: func(ctx context.Context, sess *session.State, form order.Form) (int64, error) {
				return 0, validationErr
			},
		}
		h := checkout.New(sl.NewDiscardLogger(), newRenderer(t), svc)
		sess := &session.State{ID: "test"}
		sess.AddItem(dap)

		w := httptest.NewRecorder()
		h.Submit(w, newRequest(sess))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/checkout", w.Header().Get("Location"))
		flashes := sess.PopFlashes()
		require.Len(t, flashes, 1)
		assert.Contains(t, flashes[0].Message, "required")
	})

	t.Run("storage error is a server failure", func(t *testing.T) {
		svc := &mockService{
			CheckoutFunc: func(ctx context.Context, sess *session.State, form order.Form) (int64, error) {
				return 0, context.DeadlineExceeded
			},
		}
		h := checkout.New(sl.NewDiscardLogger(), newRenderer(t), svc)
		sess := &session.State{ID: "test"}
		sess.AddItem(dap)

		w := httptest.NewRecorder()
		h.Submit(w, newRequest(sess))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
