// Package session реализует серверные сессии магазина: корзину,
// данные авторизованного покупателя и одноразовые уведомления.
// Состояние хранится на сервере (Redis или память), браузеру выдается
// только подписанный токен с идентификатором сессии.
//
// Все мутации состояния проходят через методы State, которые сами
// помечают сессию "грязной" — забыть сохранить изменение нельзя.
package session

import "github.com/greenharvest/agroshop/internal/models"

// Уровни одноразовых уведомлений.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash — одноразовое уведомление, показывается один раз и удаляется.
type Flash struct {
	Level   string `json:"level"`   // Уровень: success, danger, warning, info
	Message string `json:"message"` // Текст уведомления
}

// AuthUser — данные авторизованного покупателя, живут до logout.
type AuthUser struct {
	ID       int64  `json:"id"`       // Идентификатор пользователя
	Username string `json:"username"` // Имя пользователя
	Email    string `json:"email"`    // Электронная почта
}

// State — состояние одной сессии. Поля сериализуются в JSON
// при сохранении в хранилище; флаг dirty живет только в памяти запроса.
type State struct {
	ID      string           `json:"-"`                 // Идентификатор сессии
	Cart    []models.Product `json:"cart"`              // Позиции корзины, в порядке добавления
	User    *AuthUser        `json:"user,omitempty"`    // Авторизованный покупатель, nil для гостя
	Flashes []Flash          `json:"flashes,omitempty"` // Непоказанные уведомления

	dirty bool
}

func newState(id string) *State {
	return &State{ID: id}
}

// Dirty сообщает, были ли мутации с момента загрузки состояния.
func (s *State) Dirty() bool { return s.dirty }

// AddItem добавляет копию товара в конец корзины.
// Один и тот же товар может встречаться несколько раз — это отдельные позиции.
func (s *State) AddItem(p models.Product) {
	s.Cart = append(s.Cart, p)
	s.dirty = true
}

// SetSingleItem заменяет всю корзину единственным товаром.
// Используется быстрым путем "buy now".
func (s *State) SetSingleItem(p models.Product) {
	s.Cart = []models.Product{p}
	s.dirty = true
}

// RemoveItem удаляет из корзины все позиции с данным идентификатором товара,
// а не только первую.
func (s *State) RemoveItem(productID int) {
	filtered := s.Cart[:0]
	for _, p := range s.Cart {
		if p.ID != productID {
			filtered = append(filtered, p)
		}
	}
	s.Cart = filtered
	s.dirty = true
}

// Items возвращает позиции корзины в порядке добавления.
func (s *State) Items() []models.Product {
	out := make([]models.Product, len(s.Cart))
	copy(out, s.Cart)
	return out
}

// Total возвращает сумму цен всех позиций корзины.
func (s *State) Total() int64 {
	var total int64
	for _, p := range s.Cart {
		total += p.Price
	}
	return total
}

// ClearCart опустошает корзину. Вызывается после успешного оформления заказа.
func (s *State) ClearCart() {
	s.Cart = nil
	s.dirty = true
}

// SetUser сохраняет данные авторизованного покупателя после входа.
func (s *State) SetUser(u AuthUser) {
	s.User = &u
	s.dirty = true
}

// Reset полностью очищает сессию: корзину, покупателя и уведомления.
// Аналог выхода из аккаунта.
func (s *State) Reset() {
	s.Cart = nil
	s.User = nil
	s.Flashes = nil
	s.dirty = true
}

// AddFlash добавляет одноразовое уведомление.
func (s *State) AddFlash(level, message string) {
	s.Flashes = append(s.Flashes, Flash{Level: level, Message: message})
	s.dirty = true
}

// PopFlashes возвращает накопленные уведомления и удаляет их из сессии.
func (s *State) PopFlashes() []Flash {
	if len(s.Flashes) == 0 {
		return nil
	}
	out := s.Flashes
	s.Flashes = nil
	s.dirty = true
	return out
}

// clone возвращает независимую копию состояния со сброшенным флагом dirty.
func (s *State) clone() *State {
	cp := &State{ID: s.ID}
	if len(s.Cart) > 0 {
		cp.Cart = make([]models.Product, len(s.Cart))
		copy(cp.Cart, s.Cart)
	}
	if s.User != nil {
		u := *s.User
		cp.User = &u
	}
	if len(s.Flashes) > 0 {
		cp.Flashes = make([]Flash, len(s.Flashes))
		copy(cp.Flashes, s.Flashes)
	}
	return cp
}
