package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store writes uploaded files under a root directory, one subdirectory per
// classification bucket.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string { return s.root }

// EnsureBuckets creates the storage root and one directory per bucket.
func (s *Store) EnsureBuckets(buckets []string) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create storage root %s: %w", s.root, err)
	}
	for _, bucket := range buckets {
		dir := filepath.Join(s.root, bucket)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create bucket %s: %w", dir, err)
		}
	}
	return nil
}

// Save streams r to <root>/<bucket>/<name> and fsyncs before returning.
// The registry record referencing the file is only created after Save
// succeeds, so a partial write is removed rather than left behind.
func (s *Store) Save(bucket, name string, r io.Reader) error {
	path := filepath.Join(s.root, bucket, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("sync %s: %w", path, err)
	}
	return f.Close()
}

// Remove deletes a stored file. A file already missing on disk is an error:
// the registry said it was there.
func (s *Store) Remove(bucket, name string) error {
	path := filepath.Join(s.root, bucket, name)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
