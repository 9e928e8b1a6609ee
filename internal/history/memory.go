package history

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage реализует Storage в памяти. Используется в тестах.
type MemoryStorage struct {
	attempts []*Attempt
	mu       sync.Mutex
}

// NewMemoryStorage создаёт новый MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// SaveAttempt сохраняет прохождение.
func (s *MemoryStorage) SaveAttempt(_ context.Context, attempt *Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}

	s.attempts = append(s.attempts, attempt)

	return nil
}

// ListAttempts возвращает прохождения теста, новые первыми.
func (s *MemoryStorage) ListAttempts(_ context.Context, testName string) ([]*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempts := []*Attempt{}
	for i := len(s.attempts) - 1; i >= 0; i-- {
		if s.attempts[i].TestName == testName {
			attempts = append(attempts, s.attempts[i])
		}
	}

	return attempts, nil
}
