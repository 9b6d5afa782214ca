package seed

import (
	"context"
	"fmt"
)

// ObjectReader fetches whole objects by key from an object store.
type ObjectReader interface {
	ReadObject(ctx context.Context, key string) ([]byte, error)
}

// ObjectSource reads the snapshot from two objects, decoded like FileSource.
type ObjectSource struct {
	Reader      ObjectReader
	UsersKey    string
	WorkoutsKey string
}

// Load fetches and decodes both objects.
func (s ObjectSource) Load(ctx context.Context) (*Snapshot, error) {
	users, err := s.Reader.ReadObject(ctx, s.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", s.UsersKey, err)
	}
	workouts, err := s.Reader.ReadObject(ctx, s.WorkoutsKey)
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", s.WorkoutsKey, err)
	}
	return decodeSnapshot(s.UsersKey, users, s.WorkoutsKey, workouts)
}
