package object

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidKey is returned when a storage key escapes the store root.
var ErrInvalidKey = errors.New("invalid storage key")

// Object describes a stored blob.
type Object struct {
	Key         string
	Size        int64
	ContentType string
}

// ObjectStore defines the contract for saving and retrieving binary objects.
type ObjectStore interface {
	// Save stores r under namespace with a collision-free key derived from fileName.
	Save(ctx context.Context, namespace string, fileName string, r io.Reader) (Object, error)
	// Put writes r at an exact key, replacing any existing object.
	Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
