// Package uploads implements the filesystem store for user-submitted avatar
// images. Files are kept under generated high-entropy names; that entropy is
// the only access control on reads.
package uploads

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrBadExtension indicates an upload with a file extension outside the
// allowed image set. Only the extension is checked, never the content.
var ErrBadExtension = errors.New("uploads: file type not allowed")

// allowedExts is the accepted set of image extensions, compared lowercase.
var allowedExts = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// Store is a directory of uploaded files keyed by generated filename.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) the upload directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// ext returns the lowercase extension of a filename, without the dot.
func ext(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// Save validates the original filename's extension, writes the content under
// a freshly generated collision-free name and returns that name. The
// original filename is never reused.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	e := ext(originalName)
	if !allowedExts[e] {
		return "", ErrBadExtension
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + e

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return name, nil
}

// Path resolves a stored filename to its on-disk path. The name is reduced
// to its base component so lookups cannot escape the store directory.
// Returns os.ErrNotExist when no such file is stored.
func (s *Store) Path(filename string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}
