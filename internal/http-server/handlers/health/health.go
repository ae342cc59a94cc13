// Package health реализует служебную конечную точку готовности.
package health

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/greenharvest/agroshop/internal/lib/sl"
)

// Handler отвечает на проверку готовности приложения.
type Handler struct {
	log *slog.Logger
	db  *sql.DB
}

// New создает новый Handler.
func New(log *slog.Logger, db *sql.DB) *Handler {
	return &Handler{
		log: log,
		db:  db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			h.log.Error("database is not ready", slog.String("op", op), sl.Err(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]any{"status": "unavailable"})
			return
		}
	}

	render.JSON(w, r, map[string]any{"status": "ok"})
}
