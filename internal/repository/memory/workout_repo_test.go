package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"alcyxob/fitlog/internal/domain"
	"alcyxob/fitlog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendExerciseCreatesThenExtends(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryWorkoutRepository(nil)

	first, err := repo.AppendExercise(ctx, "u1", "2024-03-01", domain.Exercise{Name: "Squat", Sets: 3, Reps: 10})
	require.NoError(t, err)
	require.Len(t, first.Exercises, 1)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	second, err := repo.AppendExercise(ctx, "u1", "2024-03-01", domain.Exercise{Name: "Lunge", Sets: 2, Reps: 12})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []domain.Exercise{
		{Name: "Squat", Sets: 3, Reps: 10},
		{Name: "Lunge", Sets: 2, Reps: 12},
	}, second.Exercises)

	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAppendExerciseDifferentDateCreatesNewWorkout(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryWorkoutRepository(nil)

	a, err := repo.AppendExercise(ctx, "u1", "2024-03-01", domain.Exercise{Name: "Squat"})
	require.NoError(t, err)
	b, err := repo.AppendExercise(ctx, "u1", "2024-03-02", domain.Exercise{Name: "Squat"})
	require.NoError(t, err)
	c, err := repo.AppendExercise(ctx, "u2", "2024-03-01", domain.Exercise{Name: "Squat"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestAppendExerciseRejectsMissingUserOrDate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryWorkoutRepository(nil)

	_, err := repo.AppendExercise(ctx, "", "2024-03-01", domain.Exercise{Name: "Squat"})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = repo.AppendExercise(ctx, "u1", "", domain.Exercise{Name: "Squat"})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)

	_, err = repo.AppendExercise(ctx, "u1", "03/01/2024", domain.Exercise{Name: "Squat"})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFindByUserAndDate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryWorkoutRepository([]domain.Workout{
		{ID: "1", UserID: "u1", Date: "2024-03-01", Exercises: []domain.Exercise{{Name: "Row"}}},
	})

	w, err := repo.FindByUserAndDate(ctx, "u1", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "1", w.ID)

	_, err = repo.FindByUserAndDate(ctx, "u1", "2024-03-02")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.FindByUserAndDate(ctx, "u2", "2024-03-01")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAppendExerciseDoesNotLeakIntoEarlierReads(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryWorkoutRepository([]domain.Workout{
		{ID: "1", UserID: "u1", Date: "2024-03-01", Exercises: []domain.Exercise{{Name: "Row"}}},
	})

	before, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)

	_, err = repo.AppendExercise(ctx, "u1", "2024-03-01", domain.Exercise{Name: "Curl"})
	require.NoError(t, err)

	assert.Len(t, before.Exercises, 1)
	after, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, after.Exercises, 2)
}

func TestAppendExerciseKeepsOneWorkoutPerUserAndDate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryWorkoutRepository(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("u%d", i%3)
			date := fmt.Sprintf("2024-03-0%d", 1+i%2)
			_, err := repo.AppendExercise(ctx, user, date, domain.Exercise{Name: fmt.Sprintf("ex%d", i)})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := repo.All(ctx)
	require.NoError(t, err)

	seen := map[string]bool{}
	total := 0
	for _, w := range all {
		key := w.UserID + "|" + w.Date
		assert.False(t, seen[key], "duplicate workout for %s", key)
		seen[key] = true
		total += len(w.Exercises)
	}
	assert.Len(t, all, 6)
	assert.Equal(t, 50, total)
}
