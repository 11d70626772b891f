package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/faqstrip"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	DefaultDir string
	Files      faqstrip.FileStore
	Detector   faqstrip.BlockDetector
	Inspector  faqstrip.SchemaInspector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ext     string `short:"e" default:".tsx" help:"File suffix of page sources"`
	Exclude string `default:"[" help:"Skip files whose name contains this text (empty to keep all)"`
	Type    string `short:"t" default:"FAQPage" help:"Schema type to remove"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Fix   FixCmd   `cmd:"" help:"Remove duplicated schema blocks from page sources"`
	Check CheckCmd `cmd:"" help:"Report schema blocks without modifying files"`
}

// FixCmd is the "fix" subcommand.
type FixCmd struct {
	Dir    string `arg:"" optional:"" help:"Directory of page sources (default: $FAQSTRIP_DIR or src/pages/courses)"`
	DryRun bool   `short:"n" help:"Show what would change without writing"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Dir string `arg:"" optional:"" help:"Directory of page sources (default: $FAQSTRIP_DIR or src/pages/courses)"`
}

func (d *Dependencies) dir(arg string) string {
	if arg != "" {
		return arg
	}
	return d.DefaultDir
}
