package seed

import (
	"context"
	"embed"
	"fmt"
	"os"
)

//go:embed data/users.json data/workouts.json
var bundled embed.FS

// BundledSource serves the snapshot compiled into the binary.
type BundledSource struct{}

// Load decodes the bundled data files.
func (BundledSource) Load(ctx context.Context) (*Snapshot, error) {
	users, err := bundled.ReadFile("data/users.json")
	if err != nil {
		return nil, err
	}
	workouts, err := bundled.ReadFile("data/workouts.json")
	if err != nil {
		return nil, err
	}
	return decodeSnapshot("users.json", users, "workouts.json", workouts)
}

// FileSource reads users and workouts from two files on disk. Files ending
// in .yaml or .yml are decoded as YAML, everything else as JSON.
type FileSource struct {
	UsersPath    string
	WorkoutsPath string
}

// Load reads and decodes both files.
func (s FileSource) Load(ctx context.Context) (*Snapshot, error) {
	users, err := os.ReadFile(s.UsersPath)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	workouts, err := os.ReadFile(s.WorkoutsPath)
	if err != nil {
		return nil, fmt.Errorf("read workouts: %w", err)
	}
	return decodeSnapshot(s.UsersPath, users, s.WorkoutsPath, workouts)
}
