package faqstrip

// Status describes what happened to a single file.
type Status string

// Status values reported per file.
const (
	StatusFixed     Status = "fixed"
	StatusWouldFix  Status = "would-fix"
	StatusUnchanged Status = "unchanged"
	StatusError     Status = "error"
)

// FileResult is the outcome of processing one file.
type FileResult struct {
	Path   string `json:"path"`
	Name   string `json:"name"`
	Status Status `json:"status"`
	Blocks int    `json:"blocks"`
	Err    error  `json:"-"`
}

// Changed reports whether the file was (or in a dry run would be) rewritten.
func (r *FileResult) Changed() bool {
	return r.Status == StatusFixed || r.Status == StatusWouldFix
}

// Summary aggregates the results of a run.
type Summary struct {
	Results []*FileResult `json:"results"`

	// DryRun is set when no file was written.
	DryRun bool `json:"dryRun"`
}

// Add records a file result.
func (s *Summary) Add(r *FileResult) {
	s.Results = append(s.Results, r)
}

// Total returns the number of files processed.
func (s *Summary) Total() int {
	return len(s.Results)
}

// Fixed returns the number of files that were changed.
func (s *Summary) Fixed() int {
	var n int
	for _, r := range s.Results {
		if r.Changed() {
			n++
		}
	}
	return n
}

// Errors returns the results that failed, in processing order.
func (s *Summary) Errors() []*FileResult {
	var errs []*FileResult
	for _, r := range s.Results {
		if r.Status == StatusError {
			errs = append(errs, r)
		}
	}
	return errs
}

// Failed reports whether any file errored. Unchanged files are not failures.
func (s *Summary) Failed() bool {
	return len(s.Errors()) > 0
}
