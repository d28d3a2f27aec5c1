package repository

import (
	"context"
	"sync"

	"jobtrack/internal/domain"
)

// UserRepository define el contrato de almacenamiento para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// MemoryUserRepository implementa UserRepository en memoria de proceso.
// Los datos se pierden al reiniciar el servidor.
type MemoryUserRepository struct {
	mu         sync.RWMutex
	byUsername map[string]domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byUsername: make(map[string]domain.User),
	}
}

// Create inserta el usuario. La unicidad del username (case-sensitive)
// se verifica bajo el mismo lock que la inserción.
func (r *MemoryUserRepository) Create(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byUsername[user.Username]; exists {
		return ErrDuplicate
	}
	r.byUsername[user.Username] = user
	return nil
}

func (r *MemoryUserRepository) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byUsername[username]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return user, nil
}
