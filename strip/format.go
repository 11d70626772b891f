package strip

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/faqstrip"
)

// FormatResult writes the status line for one file.
func FormatResult(w io.Writer, r *faqstrip.FileResult) {
	switch r.Status {
	case faqstrip.StatusFixed:
		fmt.Fprintf(w, "✓ Fixed: %s\n", r.Name)
	case faqstrip.StatusWouldFix:
		fmt.Fprintf(w, "✓ Would fix: %s (%s)\n", r.Name, pluralize(r.Blocks, "block"))
	case faqstrip.StatusError:
		fmt.Fprintf(w, "✗ Error processing %s: %s\n", r.Name, faqstrip.ErrorMessage(r.Err))
	default:
		fmt.Fprintf(w, "- No changes: %s\n", r.Name)
	}
}

// FormatSummary writes the fixed/total line followed by any errors.
// Dry runs report the files that would be fixed.
func FormatSummary(w io.Writer, s *faqstrip.Summary) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	if s.DryRun {
		fmt.Fprintf(w, "Summary: Would fix %d/%d files\n", s.Fixed(), s.Total())
	} else {
		fmt.Fprintf(w, "Summary: Fixed %d/%d files\n", s.Fixed(), s.Total())
	}

	errs := s.Errors()
	if len(errs) == 0 {
		return
	}
	fmt.Fprintf(w, "\nErrors encountered (%d):\n", len(errs))
	for _, r := range errs {
		fmt.Fprintf(w, "  - %s: %s\n", r.Name, faqstrip.ErrorMessage(r.Err))
	}
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
