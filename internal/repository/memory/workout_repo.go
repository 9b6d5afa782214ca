// internal/repository/memory/workout_repo.go
package memory

import (
	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/repository"
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type workoutKey struct {
	userID string
	date   string
}

// memoryWorkoutRepository implements repository.WorkoutRepository.
// byKey indexes workouts by (userID, date) and is kept in step with workouts.
type memoryWorkoutRepository struct {
	mu       sync.RWMutex
	workouts []domain.Workout
	byKey    map[workoutKey]int
}

// NewMemoryWorkoutRepository creates a workout repository seeded with a copy
// of workouts. When the seed holds several workouts for one (user, date)
// pair, lookups resolve to the first of them.
func NewMemoryWorkoutRepository(workouts []domain.Workout) repository.WorkoutRepository {
	r := &memoryWorkoutRepository{
		workouts: make([]domain.Workout, 0, len(workouts)),
		byKey:    make(map[workoutKey]int, len(workouts)),
	}
	for _, w := range workouts {
		r.workouts = append(r.workouts, w.Clone())
		key := workoutKey{userID: w.UserID, date: w.Date}
		if _, exists := r.byKey[key]; !exists {
			r.byKey[key] = len(r.workouts) - 1
		}
	}
	return r
}

// All returns a copy of every stored workout. Order carries no meaning.
func (r *memoryWorkoutRepository) All(ctx context.Context) ([]domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Workout, len(r.workouts))
	for i := range r.workouts {
		out[i] = r.workouts[i].Clone()
	}
	return out, nil
}

// GetByID retrieves a single workout by its id.
func (r *memoryWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.workouts {
		if r.workouts[i].ID == id {
			w := r.workouts[i].Clone()
			return &w, nil
		}
	}
	return nil, repository.ErrNotFound
}

// FindByUserAndDate returns the workout for the exact (userID, date) pair.
func (r *memoryWorkoutRepository) FindByUserAndDate(ctx context.Context, userID, date string) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byKey[workoutKey{userID: userID, date: date}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	w := r.workouts[i].Clone()
	return &w, nil
}

// AppendExercise appends ex to the (userID, date) workout or creates it.
// The find-or-create runs under one write lock, so a pair never gets two workouts.
func (r *memoryWorkoutRepository) AppendExercise(ctx context.Context, userID, date string, ex domain.Exercise) (*domain.Workout, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user is required", repository.ErrInvalidInput)
	}
	if !domain.IsDateKey(date) {
		return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", repository.ErrInvalidInput, date)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := workoutKey{userID: userID, date: date}
	if i, ok := r.byKey[key]; ok {
		r.workouts[i] = r.workouts[i].WithExercise(ex)
		w := r.workouts[i].Clone()
		return &w, nil
	}

	created := domain.Workout{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		Exercises: []domain.Exercise{ex},
	}
	r.workouts = append(r.workouts, created)
	r.byKey[key] = len(r.workouts) - 1

	w := created.Clone()
	return &w, nil
}
