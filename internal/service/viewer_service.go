package service

import (
	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/query"
	"alcyxob/fitlog/internal/repository"
	"alcyxob/fitlog/internal/session"
	"context"
	"errors"
	"fmt"
	"time"
)

// DayView is what a user sees on their own page: today's workout and the
// workouts before it, plus the exercises marked done in this session.
type DayView struct {
	User      domain.User
	Date      string // today's canonical key
	Today     *domain.Workout
	History   []domain.Workout
	Completed domain.CompletionSet
}

// IsDone reports whether the named exercise of today's workout was marked.
func (v *DayView) IsDone(exerciseName string) bool {
	if v.Today == nil {
		return false
	}
	return v.Completed.Done(domain.CompletionKey{WorkoutID: v.Today.ID, ExerciseName: exerciseName})
}

// ViewerService serves the per-user workout page.
type ViewerService interface {
	UserView(ctx context.Context, userID, sessionID string) (*DayView, error)
	CompleteExercise(ctx context.Context, sessionID, workoutID, exerciseName string) error
	EndSession(ctx context.Context, sessionID string)
}

// viewerService implements the ViewerService interface.
type viewerService struct {
	userRepo    repository.UserRepository
	workoutRepo repository.WorkoutRepository
	sessions    *session.Store
	now         func() time.Time
}

// NewViewerService creates a new instance of viewerService. now supplies
// the current time; its location decides which calendar day is "today".
func NewViewerService(
	userRepo repository.UserRepository,
	workoutRepo repository.WorkoutRepository,
	sessions *session.Store,
	now func() time.Time,
) ViewerService {
	if now == nil {
		now = time.Now
	}
	return &viewerService{
		userRepo:    userRepo,
		workoutRepo: workoutRepo,
		sessions:    sessions,
		now:         now,
	}
}

// UserView builds the today/history split for userID.
func (s *viewerService) UserView(ctx context.Context, userID, sessionID string) (*DayView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	all, err := s.workoutRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	split := query.SplitByDay(query.Workouts(all, query.Filter{}.ForUser(user.ID)), today)

	return &DayView{
		User:      *user,
		Date:      domain.DateKey(today),
		Today:     split.Today,
		History:   split.History,
		Completed: s.sessions.Completed(sessionID),
	}, nil
}

// CompleteExercise marks one exercise of a workout as done for the session.
func (s *viewerService) CompleteExercise(ctx context.Context, sessionID, workoutID, exerciseName string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: session is required", ErrValidationFailed)
	}

	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}

	found := false
	for _, ex := range workout.Exercises {
		if ex.Name == exerciseName {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: workout %s has no exercise %q", ErrValidationFailed, workoutID, exerciseName)
	}

	s.sessions.Mark(sessionID, domain.CompletionKey{WorkoutID: workout.ID, ExerciseName: exerciseName})
	return nil
}

// EndSession forgets every marker of the session.
func (s *viewerService) EndSession(ctx context.Context, sessionID string) {
	s.sessions.End(sessionID)
}
