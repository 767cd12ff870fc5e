package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// tempPrefix marks in-flight writes, which List never reports
const tempPrefix = ".blob-"

// FileStore keeps each blob as a file below a root directory
type FileStore struct {
	root string
}

// NewFile creates a file-backed blob store rooted at dir
func NewFile(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("root directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create root %s: %w", dir, err)
	}
	return &FileStore{root: dir}, nil
}

// List walks the root for files whose slash path starts with prefix
func (s *FileStore) List(ctx context.Context, prefix string) ([]string, error) {
	if _, err := os.Stat(s.root); errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}

	var names []string
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), tempPrefix) {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list blobs: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

// ReadAll reads each named file, skipping ones that do not exist
func (s *FileStore) ReadAll(ctx context.Context, paths []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if validatePath(p) != nil {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(p)))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read blob %s: %w", p, err)
		}
		out[p] = data
	}
	return out, nil
}

// Write replaces the file through a rename so readers never see partial data
func (s *FileStore) Write(ctx context.Context, path string, data []byte) error {
	if err := validatePath(path); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create blob dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), tempPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write blob %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", path, err)
	}
	return nil
}

// Close is a no-op for the file store
func (s *FileStore) Close() error {
	return nil
}
