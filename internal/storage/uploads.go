// Package storage persists uploaded resume files before text extraction.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploads writes incoming files into a single directory. Stored names get
// a UUID prefix so two uploads with the same filename never collide.
type Uploads struct {
	dir string
}

// NewUploads creates the upload directory if needed.
func NewUploads(dir string) (*Uploads, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Uploads{dir: dir}, nil
}

// Save streams the upload to disk and returns the stored path. The
// original filename is sanitized so it can never escape the directory.
func (u *Uploads) Save(originalName string, r io.Reader) (string, error) {
	safe := sanitizeName(originalName)
	path := filepath.Join(u.dir, uuid.NewString()+"_"+safe)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	return path, nil
}

// sanitizeName strips directory components and path separators.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" || name == "." || name == ".." {
		name = "resume"
	}
	return name
}
