// Package disk implements the FileStore port on the local filesystem.
// Uploaded documents live flat in one directory under storage-assigned
// names; the database keeps the mapping back to orders.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
)

// Limit violations are distinct error kinds so the HTTP layer can produce
// targeted feedback for each one.
var (
	ErrUnsupportedFileType = errors.New("invalid file type, only PDF and Word documents are allowed")
	ErrFileTooLarge        = errors.New("file too large")
	ErrTooManyFiles        = errors.New("too many files")
)

// allowedMIMETypes is the ingestion allow-list: PDF plus both Word formats.
var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

const (
	// DefaultMaxFileSize is the per-file ceiling applied when the
	// configuration does not override it.
	DefaultMaxFileSize = 10 << 20 // 10 MiB

	// DefaultMaxFilesPerRequest bounds how many files one order may carry.
	DefaultMaxFilesPerRequest = 10
)

// Config carries the store location and ingestion limits.
type Config struct {
	Dir                string
	MaxFileSize        int64
	MaxFilesPerRequest int
}

// Store is a disk-backed FileStore.
type Store struct {
	dir         string
	maxFileSize int64
	maxFiles    int
}

// NewStore creates the upload directory if needed and returns a Store.
// Zero limit values fall back to the defaults.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Dir == "" {
		return nil, errs.NewValueIsRequiredError("upload directory")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	maxFiles := cfg.MaxFilesPerRequest
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFilesPerRequest
	}

	return &Store{dir: cfg.Dir, maxFileSize: maxSize, maxFiles: maxFiles}, nil
}

// MaxFilesPerRequest returns the per-request file-count ceiling,
// enforced by the ingestion boundary before any file is stored.
func (s *Store) MaxFilesPerRequest() int {
	return s.maxFiles
}

// Save writes one upload to disk under a generated storage name.
// The declared MIME type and size are checked before anything is written;
// the byte count is checked again while copying, in case the declared size
// lied, and a partial file is removed on any failure.
func (s *Store) Save(_ context.Context, upload ports.Upload) (order.StoredFile, error) {
	if !allowedMIMETypes[upload.MIMEType] {
		return order.StoredFile{}, ErrUnsupportedFileType
	}
	if upload.Size > s.maxFileSize {
		return order.StoredFile{}, ErrFileTooLarge
	}

	src, err := upload.Open()
	if err != nil {
		return order.StoredFile{}, fmt.Errorf("open upload %q: %w", upload.OriginalName, err)
	}
	defer src.Close()

	name := s.newStorageName(upload.OriginalName)
	path := filepath.Join(s.dir, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return order.StoredFile{}, fmt.Errorf("create %q: %w", name, err)
	}

	written, err := io.Copy(dst, io.LimitReader(src, s.maxFileSize+1))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return order.StoredFile{}, fmt.Errorf("write %q: %w", name, err)
	}
	if written > s.maxFileSize {
		_ = os.Remove(path)
		return order.StoredFile{}, ErrFileTooLarge
	}

	return order.StoredFile{
		Name:         name,
		OriginalName: upload.OriginalName,
		Size:         written,
		MIMEType:     upload.MIMEType,
		Path:         path,
		UploadDate:   time.Now(),
	}, nil
}

// Delete removes a stored file. Missing files are not an error, so delete
// retries and cleanup passes stay idempotent.
func (s *Store) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	return nil
}

// Exists reports whether the named file is on disk.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(name)))
	return err == nil
}

// Open returns a reader over the stored bytes.
func (s *Store) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundErrorWithCause("file", name, err)
		}
		return nil, fmt.Errorf("open %q: %w", name, err)
	}
	return f, nil
}

// ListOlderThan returns names of files last modified before now-age.
// The age cutoff keeps the sweep from racing an in-flight order creation,
// where files legitimately exist before their order record does.
func (s *Store) ListOlderThan(age time.Duration) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list upload directory: %w", err)
	}

	cutoff := time.Now().Add(-age)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// newStorageName builds "<unix-millis>-<uuid><ext>". The random component
// makes names unique even when uploads land in the same millisecond.
func (s *Store) newStorageName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
}
