// Package query holds the read-side projections over workouts used by the
// admin list and the per-user view. Nothing here mutates its input.
package query

import (
	"slices"
	"strings"
	"time"

	"alcyxob/fitlog/internal/domain"
)

// Filter narrows a workout listing. A nil field applies no constraint.
type Filter struct {
	UserID *string
	Date   *time.Time
}

// ForUser returns a copy of f constrained to userID.
func (f Filter) ForUser(userID string) Filter {
	f.UserID = &userID
	return f
}

// OnDate returns a copy of f constrained to the calendar day of d.
func (f Filter) OnDate(d time.Time) Filter {
	f.Date = &d
	return f
}

// Matches reports whether w satisfies every constraint present in f.
func (f Filter) Matches(w *domain.Workout) bool {
	if f.UserID != nil && w.UserID != *f.UserID {
		return false
	}
	if f.Date != nil && w.Date != domain.DateKey(*f.Date) {
		return false
	}
	return true
}

// Workouts returns the workouts matching f, most recent date first.
// Workouts on the same date keep their relative input order.
func Workouts(all []domain.Workout, f Filter) []domain.Workout {
	out := make([]domain.Workout, 0, len(all))
	for i := range all {
		if f.Matches(&all[i]) {
			out = append(out, all[i])
		}
	}
	SortByDateDesc(out)
	return out
}

// SortByDateDesc orders workouts by date, newest first, in place. The sort is stable.
func SortByDateDesc(workouts []domain.Workout) {
	slices.SortStableFunc(workouts, func(a, b domain.Workout) int {
		// Canonical keys compare correctly as strings.
		return strings.Compare(b.Date, a.Date)
	})
}
