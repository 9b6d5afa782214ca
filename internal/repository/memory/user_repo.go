// internal/repository/memory/user_repo.go
package memory

import (
	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/repository"
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// memoryUserRepository implements repository.UserRepository over a slice
// that keeps insertion order.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewMemoryUserRepository creates a user repository seeded with a copy of users.
func NewMemoryUserRepository(users []domain.User) repository.UserRepository {
	return &memoryUserRepository{
		users: append([]domain.User(nil), users...),
	}
}

// List returns every user in stored order.
func (r *memoryUserRepository) List(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.User{}, r.users...), nil
}

// Search returns users whose name contains term, ignoring case, in stored order.
func (r *memoryUserRepository) Search(ctx context.Context, term string) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := []domain.User{}
	for i := range r.users {
		if r.users[i].MatchesName(term) {
			found = append(found, r.users[i])
		}
	}
	return found, nil
}

// GetByID retrieves a user by id.
func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		user := r.users[i]
		return &user, nil
	}
	return nil, repository.ErrNotFound
}

// Create appends a new user and assigns it a fresh id.
func (r *memoryUserRepository) Create(ctx context.Context, user *domain.User) (string, error) {
	if user.Name == "" {
		return "", errors.New("user name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.NewString()
	r.users = append(r.users, *user)
	return user.ID, nil
}

// Update replaces the stored user with the same id, keeping its position.
func (r *memoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		return errors.New("user ID is required for update")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(user.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.users[i] = *user
	return nil
}

// Delete removes the user with id. Unknown ids are ignored.
// Workouts that reference the user are left in place.
func (r *memoryUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.users = append(r.users[:i], r.users[i+1:]...)
	}
	return nil
}

// indexOf must be called with the lock held.
func (r *memoryUserRepository) indexOf(id string) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}
