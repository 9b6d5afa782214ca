package service

import (
	"testing"
	"time"

	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/repository"
	"alcyxob/fitlog/internal/repository/memory"
)

func fixedClock(t *testing.T, key string) func() time.Time {
	t.Helper()
	d, err := domain.ParseDateKey(key)
	if err != nil {
		t.Fatalf("bad clock date %q: %v", key, err)
	}
	noon := d.Add(12 * time.Hour)
	return func() time.Time { return noon }
}

func setupRepos(t *testing.T) (repository.UserRepository, repository.WorkoutRepository) {
	t.Helper()
	users := memory.NewMemoryUserRepository([]domain.User{
		{ID: "1", Name: "Ana"},
		{ID: "2", Name: "Anderson"},
		{ID: "3", Name: "Bruno"},
	})
	workouts := memory.NewMemoryWorkoutRepository([]domain.Workout{
		{ID: "w1", UserID: "1", Date: "2024-03-01", Exercises: []domain.Exercise{{Name: "Squat", Sets: 3, Reps: 10}}},
		{ID: "w2", UserID: "2", Date: "2024-03-01", Exercises: []domain.Exercise{{Name: "Row", Sets: 4, Reps: 8}}},
		{ID: "w3", UserID: "1", Date: "2024-03-02", Exercises: []domain.Exercise{{Name: "Bench", Sets: 5, Reps: 5}, {Name: "Dip", Sets: 3, Reps: 12}}},
		{ID: "w4", UserID: "1", Date: "2024-03-05", Exercises: []domain.Exercise{{Name: "Deadlift", Sets: 1, Reps: 5}}},
		{ID: "w5", UserID: "ghost", Date: "2024-02-20", Exercises: []domain.Exercise{{Name: "Plank"}}},
	})
	return users, workouts
}

func mustDate(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := domain.ParseDateKey(key)
	if err != nil {
		t.Fatalf("bad date %q: %v", key, err)
	}
	return d
}
