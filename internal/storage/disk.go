// Package storage is the disk blob store. Files are keyed by generated
// names inside fixed namespaces ("photos", "avatars"); user-supplied
// filenames never reach the filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidKey = errors.New("storage: invalid blob key")

type DiskStore struct {
	root      string
	urlPrefix string
}

// NewDiskStore roots the store at root; publicly the contents are exposed
// under urlPrefix (e.g. "/storage/").
func NewDiskStore(root, urlPrefix string) *DiskStore {
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &DiskStore{root: root, urlPrefix: urlPrefix}
}

// Store writes src into the namespace under a fresh UUID key and returns the
// key. ext must include the leading dot and is taken from the validated
// upload, never from the raw client filename.
func (s *DiskStore) Store(src io.Reader, namespace, ext string) (string, error) {
	dir := filepath.Join(s.root, namespace)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("storage: create namespace dir: %w", err)
	}

	key := uuid.New().String() + strings.ToLower(ext)
	dst, err := os.Create(filepath.Join(dir, key))
	if err != nil {
		return "", fmt.Errorf("storage: create blob: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("storage: write blob: %w", err)
	}
	return key, nil
}

// Delete removes the blob and reports whether it existed. Errors other than
// not-exist are swallowed into false; callers treat deletion as best-effort.
func (s *DiskStore) Delete(namespace, key string) bool {
	p, err := s.Path(namespace, key)
	if err != nil {
		return false
	}
	if err := os.Remove(p); err != nil {
		return false
	}
	return true
}

func (s *DiskStore) Exists(namespace, key string) bool {
	p, err := s.Path(namespace, key)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// PublicURL maps a key to its public path once, at write time. Readers store
// the result instead of re-deriving it from the key's shape.
func (s *DiskStore) PublicURL(namespace, key string) string {
	return s.urlPrefix + path.Join(namespace, key)
}

// Path resolves the on-disk location for a key, rejecting anything that
// could escape the namespace directory.
func (s *DiskStore) Path(namespace, key string) (string, error) {
	if !validKey(key) || !validKey(namespace) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.root, namespace, key), nil
}

// validKey accepts only single path elements: no separators, no traversal.
func validKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	if strings.ContainsAny(key, `/\`) {
		return false
	}
	return filepath.Base(key) == key
}
