package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrDisallowedType = errors.New("file type not allowed")

// Saver writes an uploaded image to durable storage and returns the
// path to reference from a database row.
type Saver interface {
	Save(filename string, r io.Reader) (string, error)
	Allowed(filename string) bool
}

// DiskSaver stores uploads under a fixed directory on local disk.
type DiskSaver struct {
	dir        string
	extensions map[string]struct{}
}

var _ Saver = (*DiskSaver)(nil)

func NewDiskSaver(dir string, allowedExtensions []string) (*DiskSaver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}

	extensions := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		extensions[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}

	return &DiskSaver{dir: dir, extensions: extensions}, nil
}

// Allowed checks the filename extension against the allowlist.
func (d *DiskSaver) Allowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	_, ok := d.extensions[ext]
	return ok
}

// Save writes the file under a random name, keeping the original
// extension. The write completes before the caller commits the row that
// references it.
func (d *DiskSaver) Save(filename string, r io.Reader) (string, error) {
	if !d.Allowed(filename) {
		return "", ErrDisallowedType
	}

	ext := strings.ToLower(filepath.Ext(filename))
	stored := filepath.Join(d.dir, uuid.New().String()+ext)

	f, err := os.Create(stored)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(stored)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	if err := f.Sync(); err != nil {
		os.Remove(stored)
		return "", fmt.Errorf("failed to flush upload: %w", err)
	}

	return stored, nil
}
