// Package login реализует HTTP-обработчики входа покупателя.
//
// Submit проверяет учетные данные через сервис аккаунтов и при успехе
// сохраняет авторизованного покупателя в сессии.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/greenharvest/agroshop/internal/http-server/forms"
	"github.com/greenharvest/agroshop/internal/lib/sl"
	"github.com/greenharvest/agroshop/internal/models"
	"github.com/greenharvest/agroshop/internal/services/account"
	"github.com/greenharvest/agroshop/internal/session"
	"github.com/greenharvest/agroshop/internal/web"
)

// Request — поля формы входа.
type Request struct {
	Email    string `validate:"required,email"` // Электронная почта
	Password string `validate:"required"`       // Пароль
}

// Service описывает бизнес-логику аутентификации.
type Service interface {
	Login(ctx context.Context, email, rawPassword string) (*models.User, error)
}

// Handler управляет страницей входа.
type Handler struct {
	log      *slog.Logger
	renderer *web.Renderer
	service  Service
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, renderer *web.Renderer, service Service) *Handler {
	return &Handler{
		log:      log,
		renderer: renderer,
		service:  service,
		validate: validator.New(),
	}
}

// Show отдает форму входа.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	h.renderer.HTML(w, http.StatusOK, "login", web.PageData(sess, "Log in", nil))
}

// Submit проверяет учетные данные и открывает авторизованную сессию.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := session.FromContext(r.Context())
	req := Request{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("login form rejected", sl.Err(err))
		sess.AddFlash(session.FlashDanger, forms.Message(err.(validator.ValidationErrors)))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, err := h.service.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, account.ErrInvalidCredentials):
		log.Info("invalid credentials", slog.String("email", req.Email))
		sess.AddFlash(session.FlashDanger, "Invalid email or password. Try again!")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case err != nil:
		log.Error("failed to log in", sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	default:
		sess.SetUser(session.AuthUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		})
		sess.AddFlash(session.FlashSuccess, "Login successful!")
		log.Info("user logged in", slog.String("email", user.Email))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}
