// Package signup реализует HTTP-обработчики регистрации покупателя.
//
// Show отдает форму; Submit валидирует поля, вызывает сервис аккаунтов
// и по результату ведет на вход либо обратно на форму с уведомлением.
package signup

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/greenharvest/agroshop/internal/http-server/forms"
	"github.com/greenharvest/agroshop/internal/lib/sl"
	"github.com/greenharvest/agroshop/internal/services/account"
	"github.com/greenharvest/agroshop/internal/session"
	"github.com/greenharvest/agroshop/internal/web"
)

// Request — поля формы регистрации.
type Request struct {
	Username        string `validate:"required"`       // Имя пользователя
	Email           string `validate:"required,email"` // Электронная почта
	Password        string `validate:"required"`       // Пароль
	ConfirmPassword string `validate:"required"`       // Подтверждение пароля
}

// Service описывает бизнес-логику регистрации.
type Service interface {
	Register(ctx context.Context, username, email, rawPassword, confirmPassword string) (int64, error)
}

// Handler управляет страницей регистрации.
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

// Show отдает форму регистрации.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	h.renderer.HTML(w, http.StatusOK, "signup", web.PageData(sess, "Sign up", nil))
}

// Submit регистрирует нового покупателя.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := session.FromContext(r.Context())
	req := Request{
		Username:        r.FormValue("username"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("signup form rejected", sl.Err(err))
		sess.AddFlash(session.FlashDanger, forms.Message(err.(validator.ValidationErrors)))
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	_, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
	switch {
	case errors.Is(err, account.ErrPasswordMismatch):
		sess.AddFlash(session.FlashDanger, "Passwords do not match!")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
	case errors.Is(err, account.ErrEmailTaken):
		sess.AddFlash(session.FlashDanger, "Email already exists! Please login.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case err != nil:
		log.Error("failed to register user", sl.Err(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	default:
		log.Info("user registered", slog.String("email", req.Email))
		sess.AddFlash(session.FlashSuccess, "Signup successful! Please log in.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
