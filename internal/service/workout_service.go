package service

import (
	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/query"
	"alcyxob/fitlog/internal/repository"
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

// WorkoutListing is one page of the admin workout list together with what
// the list header shows about the active filter.
type WorkoutListing struct {
	Filter     query.Filter
	FilterUser *domain.User      // nil when not filtering by user or the id dangles
	Page       query.Page
	UserNames  map[string]string // user id -> display name for the page's workouts
}

// ExerciseRow is one line of the flattened admin table: a single exercise
// together with the workout it belongs to.
type ExerciseRow struct {
	WorkoutID string
	Date      string
	UserID    string
	UserName  string
	Exercise  domain.Exercise
}

// Rows flattens the page into one row per exercise, in page order.
func (l *WorkoutListing) Rows() []ExerciseRow {
	rows := []ExerciseRow{}
	for _, w := range l.Page.Items {
		for _, ex := range w.Exercises {
			rows = append(rows, ExerciseRow{
				WorkoutID: w.ID,
				Date:      w.Date,
				UserID:    w.UserID,
				UserName:  l.UserNames[w.UserID],
				Exercise:  ex,
			})
		}
	}
	return rows
}

// --- Service Interface ---

// WorkoutService covers the admin side of workouts: adding exercises and
// browsing the filtered, paginated list.
type WorkoutService interface {
	AddExercise(ctx context.Context, userID string, date time.Time, exercise domain.Exercise) (*domain.Workout, error)
	// FindWorkout returns nil and no error when the user has no workout that day.
	FindWorkout(ctx context.Context, userID string, date time.Time) (*domain.Workout, error)
	GetWorkout(ctx context.Context, workoutID string) (*domain.Workout, error)
	AllWorkouts(ctx context.Context) ([]domain.Workout, error)
	ListWorkouts(ctx context.Context, filter query.Filter, page int) (*WorkoutListing, error)
}

// --- Service Implementation ---

// workoutService implements the WorkoutService interface.
type workoutService struct {
	userRepo    repository.UserRepository
	workoutRepo repository.WorkoutRepository
	pageSize    int
}

// NewWorkoutService creates a new instance of workoutService. A pageSize
// below 1 falls back to query.DefaultPageSize.
func NewWorkoutService(userRepo repository.UserRepository, workoutRepo repository.WorkoutRepository, pageSize int) WorkoutService {
	if pageSize < 1 {
		pageSize = query.DefaultPageSize
	}
	return &workoutService{
		userRepo:    userRepo,
		workoutRepo: workoutRepo,
		pageSize:    pageSize,
	}
}

// AddExercise appends an exercise to the user's workout for date, creating
// the workout if this is the first exercise of that day.
func (s *workoutService) AddExercise(ctx context.Context, userID string, date time.Time, exercise domain.Exercise) (*domain.Workout, error) {
	// 1. Validate Inputs
	if userID == "" {
		return nil, fmt.Errorf("%w: no user selected", ErrValidationFailed)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: no date selected", ErrValidationFailed)
	}
	if err := exercise.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	// 2. Find-or-create happens atomically in the repository
	workout, err := s.workoutRepo.AppendExercise(ctx, userID, domain.DateKey(date), exercise)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		return nil, err
	}

	log.Printf("INFO: Added exercise %q to workout %s (user %s, %s)", exercise.Name, workout.ID, userID, workout.Date)
	return workout, nil
}

// FindWorkout looks up the workout for (userID, date).
func (s *workoutService) FindWorkout(ctx context.Context, userID string, date time.Time) (*domain.Workout, error) {
	workout, err := s.workoutRepo.FindByUserAndDate(ctx, userID, domain.DateKey(date))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return workout, nil
}

// GetWorkout retrieves a workout by id.
func (s *workoutService) GetWorkout(ctx context.Context, workoutID string) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// AllWorkouts returns every workout, unordered.
func (s *workoutService) AllWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.All(ctx)
}

// ListWorkouts filters, sorts (newest first) and paginates the workouts.
// Pages outside the valid range come back empty.
func (s *workoutService) ListWorkouts(ctx context.Context, filter query.Filter, page int) (*WorkoutListing, error) {
	all, err := s.workoutRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	listing := &WorkoutListing{
		Filter:    filter,
		Page:      query.Paginate(query.Workouts(all, filter), page, s.pageSize),
		UserNames: make(map[string]string),
	}
	for _, w := range listing.Page.Items {
		if name, ok := names[w.UserID]; ok {
			listing.UserNames[w.UserID] = name
		}
	}
	if filter.UserID != nil {
		if name, ok := names[*filter.UserID]; ok {
			listing.FilterUser = &domain.User{ID: *filter.UserID, Name: name}
		}
	}
	return listing, nil
}
