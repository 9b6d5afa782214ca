package service

import (
	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/repository" // Import repository package
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUserNotFound     = errors.New("user not found")
)

// --- Service Interface ---

// UserService is the user directory used by the admin panel.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	SearchUsers(ctx context.Context, term string) ([]domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	AddUser(ctx context.Context, name string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID, name string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// --- Service Implementation ---

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers returns every user in stored order.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// SearchUsers matches term against user names, case-insensitively.
// An empty term returns every user.
func (s *userService) SearchUsers(ctx context.Context, term string) ([]domain.User, error) {
	return s.userRepo.Search(ctx, term)
}

// GetUser retrieves a single user.
func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// AddUser creates a user with the trimmed name.
func (s *userService) AddUser(ctx context.Context, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: user name is required", ErrValidationFailed)
	}

	user := &domain.User{Name: name}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("INFO: Added user %s (%q)", user.ID, user.Name)
	return user, nil
}

// UpdateUser renames a user. The id and the user's position do not change.
func (s *userService) UpdateUser(ctx context.Context, userID, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: user name is required", ErrValidationFailed)
	}

	existing, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	existing.Name = name

	if err := s.userRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound // Deleted between the read and the write
		}
		return nil, err
	}
	log.Printf("INFO: Renamed user %s to %q", existing.ID, existing.Name)
	return existing, nil
}

// DeleteUser removes a user. Deleting an unknown user is not an error, and
// the user's workouts are kept.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	log.Printf("INFO: Deleted user %s", userID)
	return nil
}
