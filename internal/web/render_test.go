package web_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenharvest/agroshop/internal/catalog"
	"github.com/greenharvest/agroshop/internal/lib/sl"
	"github.com/greenharvest/agroshop/internal/session"
	"github.com/greenharvest/agroshop/internal/web"
)

func TestNew(t *testing.T) {
	renderer, err := web.New(sl.NewDiscardLogger())
	require.NoError(t, err)
	require.NotNil(t, renderer)
}

func TestRenderer_HTML(t *testing.T) {
	renderer, err := web.New(sl.NewDiscardLogger())
	require.NoError(t, err)

	t.Run("products page lists catalog items with prices", func(t *testing.T) {
		w := httptest.NewRecorder()
		renderer.HTML(w, 200, "products", web.Data{
			Title:   "Products",
			Content: catalog.Default(),
		})

		require.Equal(t, 200, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Urea")
		assert.Contains(t, body, "DAP")
		assert.Contains(t, body, "₹1220")
	})

	t.Run("flashes appear in the layout", func(t *testing.T) {
		w := httptest.NewRecorder()
		renderer.HTML(w, 200, "index", web.Data{
			Title:   "Home",
			Flashes: []session.Flash{{Level: session.FlashSuccess, Message: "Login successful!"}},
		})

		assert.Contains(t, w.Body.String(), "Login successful!")
	})

	t.Run("unknown page is a server failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		renderer.HTML(w, 200, "no-such-page", web.Data{})
		assert.Equal(t, 500, w.Code)
	})
}

func TestPageData(t *testing.T) {
	sess := &session.State{ID: "test"}
	sess.SetUser(session.AuthUser{ID: 1, Username: "ravi", Email: "ravi@example.com"})
	sess.AddFlash(session.FlashInfo, "hello")

	d := web.PageData(sess, "Home", nil)
	require.NotNil(t, d.User)
	assert.Equal(t, "ravi", d.User.Username)
	require.Len(t, d.Flashes, 1)

	// Уведомления одноразовые: второй сбор данных их уже не видит.
	d = web.PageData(sess, "Home", nil)
	assert.Empty(t, d.Flashes)

	d = web.PageData(nil, "Home", nil)
	assert.Nil(t, d.User)
}
