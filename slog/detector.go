// Package slog provides logging decorators for faqstrip interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/faqstrip"
)

// Ensure LoggingDetector implements faqstrip.BlockDetector.
var _ faqstrip.BlockDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a BlockDetector with debug logging.
type LoggingDetector struct {
	next   faqstrip.BlockDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next faqstrip.BlockDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the blocks found.
func (d *LoggingDetector) Detect(content string) []faqstrip.Block {
	begin := time.Now()
	blocks := d.next.Detect(content)

	sources := make([]string, 0, len(blocks))
	for _, b := range blocks {
		sources = append(sources, b.Source)
	}
	d.logger.Debug("block detection",
		"detector", d.next.Name(),
		"count", len(blocks),
		"sources", sources,
		"duration", time.Since(begin),
	)
	return blocks
}

// Name delegates to the wrapped detector.
func (d *LoggingDetector) Name() string {
	return d.next.Name()
}
