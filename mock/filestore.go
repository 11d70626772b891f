package mock

import (
	"context"

	"github.com/fwojciec/faqstrip"
)

var _ faqstrip.FileStore = (*FileStore)(nil)

// FileStore is a mock implementation of faqstrip.FileStore.
type FileStore struct {
	ListFilesFn func(ctx context.Context, dir string) ([]string, error)
	ReadFileFn  func(ctx context.Context, path string) (string, error)
	WriteFileFn func(ctx context.Context, path string, content string) error
}

func (s *FileStore) ListFiles(ctx context.Context, dir string) ([]string, error) {
	return s.ListFilesFn(ctx, dir)
}

func (s *FileStore) ReadFile(ctx context.Context, path string) (string, error) {
	return s.ReadFileFn(ctx, path)
}

func (s *FileStore) WriteFile(ctx context.Context, path string, content string) error {
	return s.WriteFileFn(ctx, path, content)
}
