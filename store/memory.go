package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is a mutex-guarded in-memory [UserStore] for tests and local
// development. The email uniqueness check runs under the same lock as the
// insert, so it gives the same atomicity guarantee as the Redis store.
type Memory struct {
	mu      sync.RWMutex
	byID    map[string]UserRecord
	byEmail map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		byID:    make(map[string]UserRecord),
		byEmail: make(map[string]string),
	}
}

// Create inserts a new record, failing with [ErrDuplicateEmail] when the
// email is already taken.
func (m *Memory) Create(_ context.Context, input CreateUserInput) (UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[input.Email]; exists {
		return UserRecord{}, ErrDuplicateEmail
	}

	record := UserRecord{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		AvatarURL:    input.AvatarURL,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	m.byID[record.ID] = record
	m.byEmail[record.Email] = record.ID

	return record, nil
}

// FindByEmail looks a record up by its unique email key.
func (m *Memory) FindByEmail(_ context.Context, email string) (UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return UserRecord{}, ErrNotFound
	}

	return m.byID[id], nil
}

// FindByID looks a record up by its store-assigned id.
func (m *Memory) FindByID(_ context.Context, id string) (UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return UserRecord{}, ErrNotFound
	}

	return record, nil
}
