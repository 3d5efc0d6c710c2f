package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/orsextract"
)

// Ensure LoggingTextExtractor implements orsextract.TextExtractor.
var _ orsextract.TextExtractor = (*LoggingTextExtractor)(nil)

// LoggingTextExtractor wraps a TextExtractor with logging.
type LoggingTextExtractor struct {
	next   orsextract.TextExtractor
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor.
func NewLoggingTextExtractor(next orsextract.TextExtractor, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, logger: logger}
}

// ExtractText delegates to the wrapped extractor and logs the operation.
func (e *LoggingTextExtractor) ExtractText(html string) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract text",
			"bytes", len(html),
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractText(html)
}
