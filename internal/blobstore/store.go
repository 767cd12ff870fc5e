package blobstore

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/f4hy/blightedisland/internal/blobstore Store

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when the store root itself does not exist
var ErrNotFound = errors.New("blob root not found")

// ErrInvalidPath is returned for blob paths that are blank or escape the store root
var ErrInvalidPath = errors.New("invalid blob path")

// Store is a flat namespace of named byte blobs
type Store interface {
	// List returns the names of all blobs starting with prefix, sorted
	List(ctx context.Context, prefix string) ([]string, error)

	// ReadAll fetches the contents of the named blobs. Names that do not
	// exist are absent from the result.
	ReadAll(ctx context.Context, paths []string) (map[string][]byte, error)

	// Write creates or replaces a blob
	Write(ctx context.Context, path string, data []byte) error

	// Close releases the backend connection
	Close() error
}

func validatePath(path string) error {
	if strings.TrimSpace(path) == "" || strings.HasPrefix(path, "/") {
		return ErrInvalidPath
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return ErrInvalidPath
		}
	}
	return nil
}
