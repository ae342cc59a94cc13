package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore хранит сессии в памяти процесса. Используется в тестах
// и при локальном запуске без Redis. TTL не отслеживается.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

// NewMemoryStore создаёт пустое хранилище сессий в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*State)}
}

// Load возвращает независимую копию состояния или ErrSessionNotFound.
func (s *MemoryStore) Load(_ context.Context, id string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return st.clone(), nil
}

// Save сохраняет копию состояния.
func (s *MemoryStore) Save(_ context.Context, st *State, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[st.ID] = st.clone()
	return nil
}

// Delete удаляет состояние сессии.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
