package session

import (
	"testing"

	"alcyxob/fitlog/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStoreMarkAndEnd(t *testing.T) {
	store := NewStore()
	squat := domain.CompletionKey{WorkoutID: "w1", ExerciseName: "Squat"}

	assert.Empty(t, store.Completed("s1"))

	store.Mark("s1", squat)
	assert.True(t, store.Completed("s1").Done(squat))
	assert.False(t, store.Completed("s2").Done(squat), "sessions are isolated")

	store.End("s1")
	assert.Empty(t, store.Completed("s1"))
}

func TestStoreCompletedIsSnapshot(t *testing.T) {
	store := NewStore()
	store.Mark("s1", domain.CompletionKey{WorkoutID: "w1", ExerciseName: "Row"})

	snap := store.Completed("s1")
	snap.Mark(domain.CompletionKey{WorkoutID: "w1", ExerciseName: "Curl"})

	assert.Len(t, store.Completed("s1"), 1)
}

func TestNewIDUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
