// Package sessiontoken реализует подпись и проверку токена сессии,
// который браузер хранит в cookie. Токен — это JWT (HS256), несущий
// только идентификатор серверной сессии; само состояние сессии
// клиенту не передается.
package sessiontoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims описывает полезную нагрузку токена сессии.
type Claims struct {
	SessionID            string `json:"sid"` // Идентификатор серверной сессии
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Maker подписывает и проверяет токены сессии секретным ключом.
// Ключ задается только снаружи через конфигурацию, значения по умолчанию нет.
type Maker struct {
	secretKey string        // Секретный ключ для подписи токенов
	ttl       time.Duration // Время жизни токена
}

// New создаёт Maker на основе секретного ключа и TTL.
func New(secretKey string, ttl time.Duration) *Maker {
	return &Maker{
		secretKey: secretKey,
		ttl:       ttl,
	}
}

// Sign выпускает подписанный токен для идентификатора сессии.
func (m *Maker) Sign(sessionID string) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// Parse проверяет подпись и срок действия токена,
// возвращает идентификатор сессии, если токен корректен.
func (m *Maker) Parse(tokenStr string) (string, error) {
	const op = "sessiontoken.Parse"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("%s: invalid token", op)
	}
	return claims.SessionID, nil
}
