package storage

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned when the requested key does not exist in the bucket.
var ErrObjectNotFound = errors.New("object not found in storage")

// ObjectStorage defines the object store operations used for seed snapshots.
type ObjectStorage interface {
	// ReadObject returns the full contents of the object at key.
	ReadObject(ctx context.Context, key string) ([]byte, error)

	// WriteObject stores data at key, replacing any existing object.
	WriteObject(ctx context.Context, key string, data []byte, contentType string) error
}
