package main

import (
	"fmt"

	"github.com/fwojciec/faqstrip"
	"github.com/fwojciec/faqstrip/strip"
)

// Run executes the fix command.
func (c *FixCmd) Run(deps *Dependencies) error {
	dir := deps.dir(c.Dir)

	s := &strip.Stripper{
		Files:    deps.Files,
		Detector: deps.Detector,
		DryRun:   c.DryRun,
		OnFiles: func(paths []string) {
			fmt.Fprintf(deps.Stdout, "Found %d static files\n", len(paths))
		},
		OnResult: func(r *faqstrip.FileResult) {
			strip.FormatResult(deps.Stdout, r)
		},
	}

	summary, err := s.Run(deps.Ctx, dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqstrip.ErrorMessage(err))
		return err
	}

	strip.FormatSummary(deps.Stdout, summary)
	deps.Logger.Info("run complete",
		"dir", dir,
		"total", summary.Total(),
		"fixed", summary.Fixed(),
		"errors", len(summary.Errors()),
		"dryRun", c.DryRun,
	)

	if summary.Failed() {
		return errFilesFailed
	}
	return nil
}
