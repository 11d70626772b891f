package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/faqstrip"
)

// Ensure LoggingFileStore implements faqstrip.FileStore.
var _ faqstrip.FileStore = (*LoggingFileStore)(nil)

// LoggingFileStore wraps a FileStore with debug logging.
type LoggingFileStore struct {
	next   faqstrip.FileStore
	logger *slog.Logger
}

// NewLoggingFileStore creates a new LoggingFileStore.
func NewLoggingFileStore(next faqstrip.FileStore, logger *slog.Logger) *LoggingFileStore {
	return &LoggingFileStore{next: next, logger: logger}
}

// ListFiles delegates to the wrapped store and logs the candidate count.
func (s *LoggingFileStore) ListFiles(ctx context.Context, dir string) (paths []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("list files",
			"dir", dir,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListFiles(ctx, dir)
}

// ReadFile delegates to the wrapped store and logs the size read.
func (s *LoggingFileStore) ReadFile(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("read file",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadFile(ctx, path)
}

// WriteFile delegates to the wrapped store and logs the size written.
func (s *LoggingFileStore) WriteFile(ctx context.Context, path string, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("write file",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteFile(ctx, path, content)
}
