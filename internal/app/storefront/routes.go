package storefront

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greenharvest/agroshop/internal/catalog"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/buynow"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/cartadd"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/cartremove"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/cartview"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/checkout"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/dashboard"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/health"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/login"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/logout"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/products"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/signup"
	"github.com/greenharvest/agroshop/internal/http-server/handlers/static"
	"github.com/greenharvest/agroshop/internal/http-server/mware"
	accountservice "github.com/greenharvest/agroshop/internal/services/account"
	orderservice "github.com/greenharvest/agroshop/internal/services/order"
	"github.com/greenharvest/agroshop/internal/session"
	"github.com/greenharvest/agroshop/internal/web"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, renderer *web.Renderer,
	shopCatalog *catalog.Catalog, sessions *session.Manager,
	accounts *accountservice.Service, orders *orderservice.Service,
	orderHistory dashboard.OrderRepository, db *sql.DB) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		mware.Metrics,
	)

	// Служебные конечные точки, сессия им не нужна
	r.Get("/healthz", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	r.Group(func(r chi.Router) {
		r.Use(sessions.Middleware())

		r.Get("/", static.New(logger, renderer, "index", "Home").ServeHTTP)
		r.Get("/about", static.New(logger, renderer, "about", "About us").ServeHTTP)
		r.Get("/thank-you", static.New(logger, renderer, "thank_you", "Thank you").ServeHTTP)

		r.Get("/products", products.New(logger, renderer, shopCatalog).ServeHTTP)
		r.Get("/add_to_cart/{id}", cartadd.New(logger, shopCatalog).ServeHTTP)
		r.Get("/buy_now/{id}", buynow.New(logger, shopCatalog).ServeHTTP)
		r.Get("/cart", cartview.New(logger, renderer).ServeHTTP)
		r.Get("/remove_from_cart/{id}", cartremove.New(logger).ServeHTTP)

		checkoutHandler := checkout.New(logger, renderer, orders)
		r.Get("/checkout", checkoutHandler.Show)
		r.Post("/checkout", checkoutHandler.Submit)

		signupHandler := signup.New(logger, renderer, accounts)
		loginHandler := login.New(logger, renderer, accounts)
		r.Get("/signup", signupHandler.Show)
		r.Get("/login", loginHandler.Show)
		r.Get("/logout", logout.New(logger).ServeHTTP)

		// Группа с ограничением частоты запросов для форм с паролями
		r.Group(func(r chi.Router) {
			r.Use(mware.RateLimit(logger))
			r.Post("/signup", signupHandler.Submit)
			r.Post("/login", loginHandler.Submit)
		})

		// Приватные страницы
		r.Group(func(r chi.Router) {
			r.Use(mware.RequireAuth(logger))
			r.Get("/dashboard", dashboard.New(logger, renderer, orderHistory).ServeHTTP)
		})
	})
}
