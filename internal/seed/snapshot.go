// Package seed loads the initial users and workouts snapshot the in-memory
// stores start from. Snapshots come from the bundled data files, from files
// on disk, from an object store, or from MongoDB (see repository/mongo).
package seed

import (
	"alcyxob/fitlog/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSnapshot wraps every problem Validate finds.
var ErrInvalidSnapshot = errors.New("invalid seed snapshot")

// Snapshot is an ordered set of users and workouts.
type Snapshot struct {
	Users    []domain.User
	Workouts []domain.Workout
}

// Source produces a snapshot.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Validate checks ids, dates and the one-workout-per-user-per-day rule.
// Workouts whose user does not exist are accepted.
func (s *Snapshot) Validate() error {
	userIDs := make(map[string]bool, len(s.Users))
	for i, u := range s.Users {
		if u.ID == "" {
			return fmt.Errorf("%w: user #%d has no id", ErrInvalidSnapshot, i)
		}
		if strings.TrimSpace(u.Name) == "" {
			return fmt.Errorf("%w: user %s has no name", ErrInvalidSnapshot, u.ID)
		}
		if userIDs[u.ID] {
			return fmt.Errorf("%w: duplicate user id %s", ErrInvalidSnapshot, u.ID)
		}
		userIDs[u.ID] = true
	}

	workoutIDs := make(map[string]bool, len(s.Workouts))
	days := make(map[string]string, len(s.Workouts))
	for i, w := range s.Workouts {
		if w.ID == "" {
			return fmt.Errorf("%w: workout #%d has no id", ErrInvalidSnapshot, i)
		}
		if workoutIDs[w.ID] {
			return fmt.Errorf("%w: duplicate workout id %s", ErrInvalidSnapshot, w.ID)
		}
		workoutIDs[w.ID] = true

		if w.UserID == "" {
			return fmt.Errorf("%w: workout %s has no user", ErrInvalidSnapshot, w.ID)
		}
		if !domain.IsDateKey(w.Date) {
			return fmt.Errorf("%w: workout %s has date %q, want YYYY-MM-DD", ErrInvalidSnapshot, w.ID, w.Date)
		}
		day := w.UserID + "|" + w.Date
		if other, ok := days[day]; ok {
			return fmt.Errorf("%w: workouts %s and %s share user %s and date %s", ErrInvalidSnapshot, other, w.ID, w.UserID, w.Date)
		}
		days[day] = w.ID

		for j := range w.Exercises {
			ex := w.Exercises[j]
			if err := ex.Validate(); err != nil {
				return fmt.Errorf("%w: workout %s exercise #%d: %v", ErrInvalidSnapshot, w.ID, j, err)
			}
		}
	}
	return nil
}

// decodeRecords decodes a JSON or YAML array depending on name's extension.
func decodeRecords(name string, data []byte, v any) error {
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// decodeSnapshot decodes the two record lists and validates the result.
func decodeSnapshot(usersName string, users []byte, workoutsName string, workouts []byte) (*Snapshot, error) {
	snap := &Snapshot{}
	if err := decodeRecords(usersName, users, &snap.Users); err != nil {
		return nil, err
	}
	if err := decodeRecords(workoutsName, workouts, &snap.Workouts); err != nil {
		return nil, err
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}
