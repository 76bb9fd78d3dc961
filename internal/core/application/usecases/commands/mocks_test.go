package commands_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context, orderID string, status order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) IsFileReferenced(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// fakeFileStore is a hand-rolled FileStore double. Save runs from multiple
// goroutines in the create path, so every method takes the lock.
type fakeFileStore struct {
	mu      sync.Mutex
	saved   []order.StoredFile
	deleted []string

	saveErrs  map[string]error // keyed by OriginalName
	deleteErr error
	stale     []string
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{saveErrs: map[string]error{}}
}

func (f *fakeFileStore) Save(_ context.Context, upload ports.Upload) (order.StoredFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.saveErrs[upload.OriginalName]; err != nil {
		return order.StoredFile{}, err
	}

	file := order.StoredFile{
		Name:         fmt.Sprintf("stored-%d-%s", len(f.saved), upload.OriginalName),
		OriginalName: upload.OriginalName,
		Size:         upload.Size,
		MIMEType:     upload.MIMEType,
		Path:         "uploads/" + upload.OriginalName,
		UploadDate:   time.Now(),
	}
	f.saved = append(f.saved, file)
	return file, nil
}

func (f *fakeFileStore) Delete(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, name)
	return nil
}

func (f *fakeFileStore) Exists(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, d := range f.deleted {
		if d == name {
			return false
		}
	}
	for _, s := range f.saved {
		if s.Name == name {
			return true
		}
	}
	return false
}

func (f *fakeFileStore) Open(_ string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (f *fakeFileStore) ListOlderThan(time.Duration) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stale, nil
}

func (f *fakeFileStore) savedNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.saved))
	for _, s := range f.saved {
		names = append(names, s.Name)
	}
	return names
}

func (f *fakeFileStore) deletedNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func textUpload(name string) ports.Upload {
	content := "%PDF-1.4 " + name
	return ports.Upload{
		OriginalName: name,
		MIMEType:     "application/pdf",
		Size:         int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}
