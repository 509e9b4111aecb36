// Package receipts stores expense receipt images on the local filesystem.
package receipts

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

// PublicPrefix is the path prefix clients use to fetch a stored receipt.
const PublicPrefix = "uploads/expenses/"

// ErrNotFound is returned by Open when no receipt has the requested name.
var ErrNotFound = errors.New("receipt not found")

// Store saves receipts under a single directory.
type Store struct {
	dir string
}

// NewStore constructs a Store rooted at dir. The directory is created on
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes r to a new file named {employeeID}_{uuid}_{name} and returns
// the public path of the stored receipt.
func (s *Store) Save(employeeID int64, name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := fmt.Sprintf("%d_%s_%s", employeeID, strings.ReplaceAll(uuid.New().String(), "-", ""), cleanName(name))
	f, err := os.OpenFile(filepath.Join(s.dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create receipt: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write receipt: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close receipt: %w", err)
	}
	return PublicPrefix + filename, nil
}

// Open returns the stored receipt called filename. Names that try to leave
// the upload directory are treated as missing.
func (s *Store) Open(filename string) (*os.File, error) {
	if !validName(filename) {
		return nil, ErrNotFound
	}
	f, err := os.Open(filepath.Join(s.dir, filename))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open receipt: %w", err)
	}
	return f, nil
}

// Delete removes the receipt at publicPath, as returned by Save. A receipt
// that is already gone is not an error.
func (s *Store) Delete(publicPath string) error {
	filename := strings.TrimPrefix(publicPath, PublicPrefix)
	if !validName(filename) {
		return ErrNotFound
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}

func validName(filename string) bool {
	return filename != "" && filename != "." && filename != ".." &&
		filename == path.Base(filename) && !strings.ContainsAny(filename, `/\`)
}

// cleanName keeps the base of an uploaded file name with spaces replaced.
func cleanName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		name = "receipt"
	}
	return strings.ReplaceAll(name, " ", "_")
}
