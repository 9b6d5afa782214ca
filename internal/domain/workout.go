package domain

import (
	"errors"
	"strings"
)

// Exercise is a single entry inside a Workout. It has no identity of its own.
type Exercise struct {
	Name string `json:"name" yaml:"name" bson:"name"`
	Sets int    `json:"sets" yaml:"sets" bson:"sets"`
	Reps int    `json:"reps" yaml:"reps" bson:"reps"`
}

// Validate checks the exercise fields and trims the name in place.
func (e *Exercise) Validate() error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return errors.New("exercise name is required")
	}
	if e.Sets < 0 || e.Reps < 0 {
		return errors.New("sets and reps cannot be negative")
	}
	return nil
}

// Workout groups the exercises a user does on one calendar day.
// There is at most one Workout per (UserID, Date) pair.
type Workout struct {
	ID        string     `json:"id" yaml:"id" bson:"id"`
	UserID    string     `json:"userId" yaml:"userId" bson:"userId"`
	Date      string     `json:"date" yaml:"date" bson:"date"` // canonical YYYY-MM-DD key
	Exercises []Exercise `json:"exercises" yaml:"exercises" bson:"exercises"`
}

// Clone returns a copy that shares no exercise storage with w.
func (w Workout) Clone() Workout {
	if w.Exercises != nil {
		w.Exercises = append([]Exercise(nil), w.Exercises...)
	}
	return w
}

// WithExercise returns a new Workout value with ex appended. The receiver is
// left untouched; the ID is kept.
func (w Workout) WithExercise(ex Exercise) Workout {
	next := w.Clone()
	next.Exercises = append(next.Exercises, ex)
	return next
}
