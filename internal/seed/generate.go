package seed

import (
	"alcyxob/fitlog/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Supported output formats for WriteFiles.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var exerciseCatalog = []string{
	"Squat", "Deadlift", "Bench Press", "Overhead Press", "Barbell Row",
	"Pull Up", "Dip", "Lunge", "Leg Press", "Biceps Curl",
	"Triceps Extension", "Lateral Raise", "Plank", "Calf Raise", "Hip Thrust",
}

// GenerateOptions controls the size of a generated snapshot.
type GenerateOptions struct {
	Users int
	Days  int       // number of calendar days ending at Until
	Until time.Time // last day that may carry workouts
}

// Generate builds a random but valid snapshot. Users get ids "1".."N" so the
// default viewer always exists; each user trains on roughly half the days.
func Generate(opts GenerateOptions) (*Snapshot, error) {
	if opts.Users < 1 {
		return nil, errors.New("at least one user is required")
	}
	if opts.Days < 1 {
		return nil, errors.New("at least one day is required")
	}
	if opts.Until.IsZero() {
		opts.Until = time.Now()
	}

	snap := &Snapshot{Users: make([]domain.User, 0, opts.Users)}
	for i := 1; i <= opts.Users; i++ {
		snap.Users = append(snap.Users, domain.User{
			ID:   strconv.Itoa(i),
			Name: randomdata.FullName(randomdata.RandomGender),
		})
	}

	first := opts.Until.AddDate(0, 0, -(opts.Days - 1))
	for d := 0; d < opts.Days; d++ {
		date := domain.DateKey(first.AddDate(0, 0, d))
		for _, u := range snap.Users {
			if !randomdata.Boolean() {
				continue
			}
			snap.Workouts = append(snap.Workouts, domain.Workout{
				ID:        uuid.NewString(),
				UserID:    u.ID,
				Date:      date,
				Exercises: randomExercises(),
			})
		}
	}

	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

// randomExercises picks 1 to 4 distinct exercises from the catalog.
func randomExercises() []domain.Exercise {
	n := randomdata.Number(1, 5)
	picked := make(map[int]bool, n)
	out := make([]domain.Exercise, 0, n)
	for len(out) < n {
		idx := randomdata.Number(0, len(exerciseCatalog))
		if picked[idx] {
			continue
		}
		picked[idx] = true
		out = append(out, domain.Exercise{
			Name: exerciseCatalog[idx],
			Sets: randomdata.Number(2, 6),
			Reps: randomdata.Number(5, 16),
		})
	}
	return out
}

// WriteFiles writes users.<format> and workouts.<format> into dir and
// returns the two paths.
func WriteFiles(dir, format string, snap *Snapshot) (usersPath, workoutsPath string, err error) {
	var marshal func(any) ([]byte, error)
	switch format {
	case FormatJSON:
		marshal = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	case FormatYAML:
		marshal = yaml.Marshal
	default:
		return "", "", fmt.Errorf("unsupported format %q", format)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}

	usersPath = filepath.Join(dir, "users."+format)
	workoutsPath = filepath.Join(dir, "workouts."+format)
	if err := writeEncoded(usersPath, snap.Users, marshal); err != nil {
		return "", "", err
	}
	if err := writeEncoded(workoutsPath, snap.Workouts, marshal); err != nil {
		return "", "", err
	}
	return usersPath, workoutsPath, nil
}

func writeEncoded(path string, v any, marshal func(any) ([]byte, error)) error {
	data, err := marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, data, 0o644)
}
