package repository

import (
	"alcyxob/fitlog/internal/domain" // Import our defined domain models
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrInvalidInput = RepositoryError("invalid input")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
// Users are kept in insertion order.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Search(ctx context.Context, term string) ([]domain.User, error) // Case-insensitive substring on name
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (string, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error // Absent ids are not an error
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	All(ctx context.Context) ([]domain.Workout, error)
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	FindByUserAndDate(ctx context.Context, userID, date string) (*domain.Workout, error)
	// AppendExercise adds ex to the workout for (userID, date), creating the
	// workout when none exists. It returns the workout after the change.
	AppendExercise(ctx context.Context, userID, date string, ex domain.Exercise) (*domain.Workout, error)
}
