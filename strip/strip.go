// Package strip removes duplicated structured-data blocks from page sources.
package strip

import (
	"context"
	"path/filepath"

	"github.com/fwojciec/faqstrip"
)

// Stripper runs the read, detect, remove, write pipeline over a set of files.
// Files are processed one at a time in sorted order.
type Stripper struct {
	Files    faqstrip.FileStore
	Detector faqstrip.BlockDetector

	// DryRun reports what would change without writing.
	DryRun bool

	// OnFiles, if set, is called with the candidate list before processing.
	OnFiles func(paths []string)

	// OnResult, if set, is called after each file is processed.
	OnResult func(*faqstrip.FileResult)
}

// ProcessFile strips matching blocks from one file. The file is rewritten
// only if its content changed. Errors are returned in the result and as err.
func (s *Stripper) ProcessFile(ctx context.Context, path string) (*faqstrip.FileResult, error) {
	result := &faqstrip.FileResult{
		Path:   path,
		Name:   filepath.Base(path),
		Status: faqstrip.StatusUnchanged,
	}

	fail := func(err error) (*faqstrip.FileResult, error) {
		result.Status = faqstrip.StatusError
		result.Err = err
		return result, err
	}

	content, err := s.Files.ReadFile(ctx, path)
	if err != nil {
		return fail(err)
	}

	blocks := s.Detector.Detect(content)
	result.Blocks = len(blocks)
	if len(blocks) == 0 {
		return result, nil
	}

	stripped, changed := faqstrip.RemoveBlocks(content, blocks)
	if !changed {
		return result, nil
	}

	if s.DryRun {
		result.Status = faqstrip.StatusWouldFix
		return result, nil
	}

	if err := s.Files.WriteFile(ctx, path, stripped); err != nil {
		return fail(err)
	}
	result.Status = faqstrip.StatusFixed

	return result, nil
}

// Run processes every candidate file in dir. A failing file is recorded in
// the summary and does not stop the remaining files. The returned error is
// non-nil only if the candidates cannot be listed or ctx is cancelled;
// per-file failures are reported through Summary.Failed.
func (s *Stripper) Run(ctx context.Context, dir string) (*faqstrip.Summary, error) {
	paths, err := s.Files.ListFiles(ctx, dir)
	if err != nil {
		return nil, err
	}
	if s.OnFiles != nil {
		s.OnFiles(paths)
	}

	summary := &faqstrip.Summary{DryRun: s.DryRun}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, _ := s.ProcessFile(ctx, path)
		summary.Add(result)
		if s.OnResult != nil {
			s.OnResult(result)
		}
	}

	return summary, nil
}
