package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/greenharvest/agroshop/internal/lib/sessiontoken"
	"github.com/greenharvest/agroshop/internal/lib/sl"
)

// ErrSessionNotFound возвращается хранилищем, если сессии с таким
// идентификатором нет или она истекла.
var ErrSessionNotFound = errors.New("session not found")

// Store описывает серверное хранилище состояний сессий.
type Store interface {
	// Load возвращает состояние сессии или ErrSessionNotFound.
	Load(ctx context.Context, id string) (*State, error)
	// Save сохраняет состояние с указанным временем жизни.
	Save(ctx context.Context, st *State, ttl time.Duration) error
	// Delete удаляет состояние сессии.
	Delete(ctx context.Context, id string) error
}

type ctxKey struct{}

// Manager привязывает серверные сессии к браузеру через cookie
// с подписанным токеном и сохраняет измененные состояния после ответа.
type Manager struct {
	store      Store
	tokens     *sessiontoken.Maker
	cookieName string
	ttl        time.Duration
	log        *slog.Logger
}

// NewManager создаёт менеджер сессий.
func NewManager(store Store, tokens *sessiontoken.Maker, cookieName string, ttl time.Duration, log *slog.Logger) *Manager {
	return &Manager{
		store:      store,
		tokens:     tokens,
		cookieName: cookieName,
		ttl:        ttl,
		log:        log,
	}
}

// Middleware возвращает middleware, которое до обработчика загружает
// (или создает) состояние сессии и кладет его в контекст запроса,
// а после обработчика сохраняет состояние, если были мутации.
func (m *Manager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st := m.resolve(w, r)

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), st)))

			if st.Dirty() {
				// Сохранение не привязано к контексту запроса:
				// обрыв соединения клиентом не должен терять корзину.
				if err := m.store.Save(context.Background(), st, m.ttl); err != nil {
					m.log.Error("failed to save session", slog.String("session_id", st.ID), sl.Err(err))
				}
			}
		})
	}
}

// resolve восстанавливает сессию по cookie или создает новую
// и сразу выставляет cookie с подписанным токеном.
func (m *Manager) resolve(w http.ResponseWriter, r *http.Request) *State {
	const op = "session.resolve"

	if c, err := r.Cookie(m.cookieName); err == nil {
		if id, err := m.tokens.Parse(c.Value); err == nil {
			st, err := m.store.Load(r.Context(), id)
			if err == nil {
				return st
			}
			if !errors.Is(err, ErrSessionNotFound) {
				m.log.Error("failed to load session", slog.String("op", op), sl.Err(err))
			}
		}
	}

	st := newState(uuid.NewString())
	token, err := m.tokens.Sign(st.ID)
	if err != nil {
		m.log.Error("failed to sign session token", slog.String("op", op), sl.Err(err))
		return st
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return st
}

// NewContext кладет состояние сессии в контекст.
func NewContext(ctx context.Context, st *State) context.Context {
	return context.WithValue(ctx, ctxKey{}, st)
}

// FromContext достает состояние сессии из контекста запроса.
// Возвращает nil, если middleware сессий не отработало.
func FromContext(ctx context.Context) *State {
	st, _ := ctx.Value(ctxKey{}).(*State)
	return st
}
