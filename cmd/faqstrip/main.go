package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/faqstrip"
	"github.com/fwojciec/faqstrip/detect"
	"github.com/fwojciec/faqstrip/fs"
	"github.com/fwojciec/faqstrip/goquery"
	"github.com/fwojciec/faqstrip/html"
	"github.com/fwojciec/faqstrip/jsonld"
	fqslog "github.com/fwojciec/faqstrip/slog"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// errFilesFailed is returned when at least one file could not be processed.
// The per-file errors have already been reported by then.
var errFilesFailed = errors.New("one or more files failed")

// Main represents the program.
type Main struct {
	// Directory used when none is given on the command line.
	DefaultDir string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DefaultDir: defaultDir(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("faqstrip"),
		kong.Description("Remove duplicated FAQ structured data from static page sources"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'faqstrip --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.DefaultDir = m.DefaultDir
	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Files = fqslog.NewLoggingFileStore(
		fs.NewStore(fs.WithSuffix(cli.Ext), fs.WithExcludeMarker(cli.Exclude)),
		deps.Logger,
	)
	deps.Detector = fqslog.NewLoggingDetector(newDetector(cli.Ext, cli.Type), deps.Logger)
	deps.Inspector = newInspector(cli.Ext)

	return kongCtx.Run(deps)
}

// newDetector returns the detection chain for the page type. HTML pages are
// tokenized; everything else is matched as TSX text. Both fall back to the
// line scanner.
func newDetector(ext, marker string) faqstrip.BlockDetector {
	if isHTML(ext) {
		return detect.NewChain(html.NewScriptDetector(marker), detect.NewLineScanDetector(marker))
	}
	return detect.NewDefaultChain(marker)
}

// newInspector returns an inspector listing every structured-data object on
// a page, whatever its type.
func newInspector(ext string) faqstrip.SchemaInspector {
	if isHTML(ext) {
		return goquery.NewInspector()
	}
	return jsonld.NewBlockInspector(detect.NewChain(
		detect.NewAnyTypePatternDetector(),
		detect.NewLineScanDetector("@type"),
	))
}

func isHTML(ext string) bool {
	ext = strings.ToLower(ext)
	return strings.HasSuffix(ext, ".html") || strings.HasSuffix(ext, ".htm")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("run", uuid.NewString())
}

func defaultDir() string {
	if dir := os.Getenv("FAQSTRIP_DIR"); dir != "" {
		return dir
	}
	return "src/pages/courses"
}
