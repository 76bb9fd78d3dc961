package queries_test

import (
	"context"
	"io"
	"strings"
	"time"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
)

// fakeDownloadStore serves a fixed payload for any stored name. The download
// path only needs Open; the other FileStore methods are inert.
type fakeDownloadStore struct {
	content string
}

func newFakeDownloadStore() *fakeDownloadStore {
	return &fakeDownloadStore{content: "%PDF-1.4 test"}
}

func (f *fakeDownloadStore) Save(context.Context, ports.Upload) (order.StoredFile, error) {
	return order.StoredFile{}, nil
}

func (f *fakeDownloadStore) Delete(string) error {
	return nil
}

func (f *fakeDownloadStore) Exists(string) bool {
	return true
}

func (f *fakeDownloadStore) Open(string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(f.content)), nil
}

func (f *fakeDownloadStore) ListOlderThan(time.Duration) ([]string, error) {
	return nil, nil
}
