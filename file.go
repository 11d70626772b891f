package faqstrip

import "context"

// FileStore reads and rewrites page source files.
type FileStore interface {
	// ListFiles returns the candidate files directly inside dir, sorted.
	// Returns ENOTFOUND if dir does not exist.
	ListFiles(ctx context.Context, dir string) ([]string, error)

	// ReadFile returns the file content as text.
	// Returns EINVALID if the content is not valid UTF-8.
	ReadFile(ctx context.Context, path string) (string, error)

	// WriteFile replaces the file content.
	// Returns ECONFLICT if the file changed since it was read.
	WriteFile(ctx context.Context, path string, content string) error
}
