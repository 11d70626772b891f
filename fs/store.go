// Package fs provides file-based storage for page sources.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/faqstrip"
)

// Defaults for candidate selection.
const (
	DefaultSuffix        = ".tsx"
	DefaultExcludeMarker = "["
)

// Ensure Store implements faqstrip.FileStore at compile time.
var _ faqstrip.FileStore = (*Store)(nil)

// Store reads page sources from disk and rewrites them in place.
// It remembers a hash of every file it reads and refuses to overwrite a
// file whose content changed on disk in the meantime.
type Store struct {
	suffix  string
	exclude string

	mu     sync.Mutex
	hashes map[string]uint64
}

// Option configures a Store.
type Option func(*Store)

// WithSuffix sets the file name suffix of candidate files.
// Defaults to DefaultSuffix (.tsx) if not specified.
func WithSuffix(suffix string) Option {
	return func(s *Store) {
		s.suffix = suffix
	}
}

// WithExcludeMarker skips candidate files whose name contains marker.
// Defaults to DefaultExcludeMarker ("[") which excludes dynamic route
// templates such as [slug].tsx. An empty marker excludes nothing.
func WithExcludeMarker(marker string) Option {
	return func(s *Store) {
		s.exclude = marker
	}
}

// NewStore creates a new Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		suffix:  DefaultSuffix,
		exclude: DefaultExcludeMarker,
		hashes:  make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListFiles returns matching files directly inside dir, sorted by path.
// Subdirectories are not searched.
func (s *Store) ListFiles(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, faqstrip.Errorf(faqstrip.ENOTFOUND, "directory %q not found", dir)
	} else if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, s.suffix) {
			continue
		}
		if s.exclude != "" && strings.Contains(name, s.exclude) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)

	return paths, nil
}

// ReadFile returns the content of path as text.
func (s *Store) ReadFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", faqstrip.Errorf(faqstrip.EINVALID, "%s is not valid UTF-8", filepath.Base(path))
	}

	s.remember(path, xxhash.Sum64(data))
	return string(data), nil
}

// WriteFile rewrites path in place. Fails if the file is not writable.
func (s *Store) WriteFile(ctx context.Context, path string, content string) error {
	if want, ok := s.recalled(path); ok {
		current, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if xxhash.Sum64(current) != want {
			return faqstrip.Errorf(faqstrip.ECONFLICT, "%s changed since it was read", filepath.Base(path))
		}
	}

	if err := writeInPlace(path, []byte(content)); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}

	s.remember(path, xxhash.Sum64String(content))
	return nil
}

func (s *Store) remember(path string, sum uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashes[path] = sum
}

func (s *Store) recalled(path string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum, ok := s.hashes[path]
	return sum, ok
}
