// Package mware содержит middleware HTTP-сервера магазина:
// защиту приватных страниц, ограничение частоты запросов и метрики.
package mware

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"github.com/greenharvest/agroshop/internal/session"
)

// RequireAuth пропускает запрос дальше только при наличии
// авторизованной сессии. Иначе — одноразовое уведомление
// и редирект на страницу входа.
func RequireAuth(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.FromContext(r.Context())
			if sess == nil || sess.User == nil {
				log.Info("unauthenticated access to protected page", slog.String("path", r.URL.Path))
				if sess != nil {
					sess.AddFlash(session.FlashDanger, "Please log in first!")
				}
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

var limiter = rate.NewLimiter(rate.Limit(5), 10)

// RateLimit ограничивает частоту запросов к маршрутам аутентификации.
func RateLimit(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Error("too many requests", slog.String("path", r.URL.Path))
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "agroshop_http_requests_total",
	Help: "Количество обработанных HTTP-запросов.",
}, []string{"method", "path"})

// Metrics считает обработанные HTTP-запросы по методу и пути.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestsTotal.WithLabelValues(r.Method, r.URL.Path).Inc()
		next.ServeHTTP(w, r)
	})
}
