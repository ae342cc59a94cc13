package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenharvest/agroshop/internal/lib/sessiontoken"
	"github.com/greenharvest/agroshop/internal/lib/sl"
	"github.com/greenharvest/agroshop/internal/session"
)

func newTestManager() *session.Manager {
	return session.NewManager(
		session.NewMemoryStore(),
		sessiontoken.New("test-secret", time.Hour),
		"test_session",
		time.Hour,
		sl.NewDiscardLogger(),
	)
}

func TestManager_IssuesCookieForNewVisitor(t *testing.T) {
	manager := newTestManager()

	handler := manager.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := session.FromContext(r.Context())
		require.NotNil(t, st)
		assert.Empty(t, st.Items())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "test_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestManager_PersistsCartBetweenRequests(t *testing.T) {
	manager := newTestManager()

	add := manager.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session.FromContext(r.Context()).AddItem(urea)
	}))
	read := manager.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := session.FromContext(r.Context())
		require.Len(t, st.Items(), 1)
		assert.Equal(t, "Urea", st.Items()[0].Name)
	}))

	w1 := httptest.NewRecorder()
	add.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/add", nil))
	cookies := w1.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	read.ServeHTTP(w2, req)

	// Вторая сессия не выпускается, cookie остается прежним
	assert.Empty(t, w2.Result().Cookies())
}

func TestManager_TamperedCookieStartsFreshSession(t *testing.T) {
	manager := newTestManager()

	handler := manager.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := session.FromContext(r.Context())
		require.NotNil(t, st)
		assert.Empty(t, st.Items())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "test_session", Value: "garbage-token"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	// Выдан новый cookie взамен испорченного
	require.Len(t, w.Result().Cookies(), 1)
}

func TestManager_NoSaveWithoutMutation(t *testing.T) {
	manager := newTestManager()

	noop := manager.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = session.FromContext(r.Context())
	}))

	w1 := httptest.NewRecorder()
	noop.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := w1.Result().Cookies()
	require.Len(t, cookies, 1)

	// Состояние не сохранялось, но повторный визит все равно работает
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	noop.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
}
