package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PhotoStore persists pet photos and hands back the public URL they are
// served under. Implementations own naming and cleanup.
type PhotoStore interface {
	Save(data []byte, contentType string) (string, error)
	Delete(photoURL string) error
}

// DiskPhotoStore writes photos to a local directory served as static files.
type DiskPhotoStore struct {
	dir     string
	baseURL string
}

// NewDiskPhotoStore creates the storage directory if needed.
func NewDiskPhotoStore(dir, baseURL string) (*DiskPhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating photo directory %s: %w", dir, err)
	}
	return &DiskPhotoStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the image under a fresh uuid name and returns its URL.
func (s *DiskPhotoStore) Save(data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("photo data is empty")
	}

	name := uuid.NewString() + extensionFor(contentType)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing photo %s: %w", name, err)
	}
	return s.baseURL + "/" + name, nil
}

// Delete removes the file a previously returned URL points at. Unknown URLs
// are ignored so stale references never block profile updates.
func (s *DiskPhotoStore) Delete(photoURL string) error {
	name := path.Base(photoURL)
	if name == "." || name == "/" || name == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing photo %s: %w", name, err)
	}
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
