// Package storefront собирает приложение магазина: хранилище, сессии,
// сервисы, маршруты и HTTP-сервер с graceful shutdown.
package storefront

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/greenharvest/agroshop/internal/catalog"
	"github.com/greenharvest/agroshop/internal/config"
	"github.com/greenharvest/agroshop/internal/lib/sessiontoken"
	"github.com/greenharvest/agroshop/internal/migrations"
	accountservice "github.com/greenharvest/agroshop/internal/services/account"
	orderservice "github.com/greenharvest/agroshop/internal/services/order"
	"github.com/greenharvest/agroshop/internal/session"
	"github.com/greenharvest/agroshop/internal/storage/repository"
	"github.com/greenharvest/agroshop/internal/web"
)

// App — собранное приложение магазина.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New инициализирует все зависимости и возвращает готовое к запуску приложение.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	sessionStore, err := session.NewRedisStore(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}
	tokens := sessiontoken.New(cfg.SecretKey, cfg.Session.TTL)
	sessions := session.NewManager(sessionStore, tokens, cfg.CookieName, cfg.Session.TTL, logger)

	renderer, err := web.New(logger)
	if err != nil {
		return nil, err
	}

	shopCatalog := catalog.New(catalog.Default())
	accounts := accountservice.New(db, logger)
	orders := orderservice.New(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, renderer, shopCatalog, sessions, accounts, orders, db, db.DB)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
