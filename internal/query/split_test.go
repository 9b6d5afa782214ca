package query

import (
	"testing"

	"alcyxob/fitlog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByDay(t *testing.T) {
	workouts := []domain.Workout{
		{ID: "future", UserID: "1", Date: "2024-03-10"},
		{ID: "today", UserID: "1", Date: "2024-03-05"},
		{ID: "yesterday", UserID: "1", Date: "2024-03-04"},
		{ID: "older", UserID: "1", Date: "2024-02-20"},
	}

	split := SplitByDay(workouts, day(t, "2024-03-05"))

	require.NotNil(t, split.Today)
	assert.Equal(t, "today", split.Today.ID)
	assert.Equal(t, []string{"yesterday", "older"}, ids(split.History))
}

func TestSplitByDayNoWorkoutToday(t *testing.T) {
	workouts := []domain.Workout{{ID: "old", Date: "2024-01-01"}}

	split := SplitByDay(workouts, day(t, "2024-03-05"))

	assert.Nil(t, split.Today)
	assert.Equal(t, []string{"old"}, ids(split.History))
}

func TestSplitByDayDuplicateTodayTakesFirst(t *testing.T) {
	workouts := []domain.Workout{
		{ID: "first", Date: "2024-03-05"},
		{ID: "second", Date: "2024-03-05"},
	}

	split := SplitByDay(workouts, day(t, "2024-03-05"))

	require.NotNil(t, split.Today)
	assert.Equal(t, "first", split.Today.ID)
	assert.Empty(t, split.History)
}

func TestSplitByDayEveryWorkoutInAtMostOneBucket(t *testing.T) {
	workouts := []domain.Workout{
		{ID: "a", Date: "2024-03-06"},
		{ID: "b", Date: "2024-03-05"},
		{ID: "c", Date: "2024-03-04"},
		{ID: "d", Date: "2023-12-31"},
	}
	today := day(t, "2024-03-05")
	split := SplitByDay(workouts, today)

	for _, w := range workouts {
		inToday := split.Today != nil && split.Today.ID == w.ID
		inHistory := false
		for _, h := range split.History {
			if h.ID == w.ID {
				inHistory = true
			}
		}
		key := domain.DateKey(today)
		switch {
		case w.Date == key:
			assert.True(t, inToday && !inHistory, w.ID)
		case w.Date < key:
			assert.True(t, inHistory && !inToday, w.ID)
		default:
			assert.False(t, inToday || inHistory, w.ID)
		}
	}
}
