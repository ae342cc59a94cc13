// Package account содержит бизнес-логику регистрации и аутентификации покупателей.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/greenharvest/agroshop/internal/lib/password"
	"github.com/greenharvest/agroshop/internal/models"
	"github.com/greenharvest/agroshop/internal/storage/repository"
)

var (
	// ErrPasswordMismatch — пароль и подтверждение не совпадают.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrEmailTaken — пользователь с таким email уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Причина наружу не раскрывается.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// SaveUser сохраняет нового пользователя и возвращает его ID.
	SaveUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByEmail возвращает пользователя по email
	// или repository.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service отвечает за регистрацию и вход покупателей.
type Service struct {
	users UserRepository
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, log *slog.Logger) *Service {
	return &Service{
		users: users,
		log:   log,
	}
}

// Register создает нового покупателя с хэшированием пароля.
// Дубликат email отклоняется до вставки; гонка со вторым запросом
// все равно упрется в уникальный индекс хранилища.
func (s *Service) Register(ctx context.Context, username, email, rawPassword, confirmPassword string) (int64, error) {
	const op = "account.Register"

	if rawPassword != confirmPassword {
		return 0, ErrPasswordMismatch
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return 0, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.users.SaveUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Login проверяет пароль покупателя и возвращает его учетную запись.
// Отсутствие пользователя и неверный пароль неразличимы для вызывающего.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (*models.User, error) {
	const op = "account.Login"

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(u.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
