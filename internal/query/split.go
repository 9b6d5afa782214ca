package query

import (
	"time"

	"alcyxob/fitlog/internal/domain"
)

// DaySplit separates one user's workouts into today's session and past ones.
type DaySplit struct {
	Today   *domain.Workout
	History []domain.Workout
}

// SplitByDay partitions a single user's workouts around today.
//
// Today is the first workout dated today in input order. History holds the
// workouts dated strictly before today; future workouts land in neither.
// Input order is preserved, so callers pass a date-descending slice.
func SplitByDay(userWorkouts []domain.Workout, today time.Time) DaySplit {
	todayKey := domain.DateKey(today)
	split := DaySplit{History: []domain.Workout{}}

	for i := range userWorkouts {
		w := userWorkouts[i]
		switch {
		case w.Date == todayKey:
			if split.Today == nil {
				split.Today = &w
			}
		case w.Date < todayKey:
			split.History = append(split.History, w)
		}
	}
	return split
}
