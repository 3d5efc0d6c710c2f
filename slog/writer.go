package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/orsextract"
)

// Ensure LoggingPageWriter implements orsextract.PageWriter.
var _ orsextract.PageWriter = (*LoggingPageWriter)(nil)

// LoggingPageWriter wraps a PageWriter with logging.
type LoggingPageWriter struct {
	next   orsextract.PageWriter
	logger *slog.Logger
}

// NewLoggingPageWriter creates a new LoggingPageWriter.
func NewLoggingPageWriter(next orsextract.PageWriter, logger *slog.Logger) *LoggingPageWriter {
	return &LoggingPageWriter{next: next, logger: logger}
}

// WritePage delegates to the wrapped writer and logs the operation.
func (w *LoggingPageWriter) WritePage(ctx context.Context, page *orsextract.Page) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write page",
			"page_id", page.PageID,
			"url", page.URL,
			"ors", page.ORS,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePage(ctx, page)
}

// Close delegates to the wrapped writer.
func (w *LoggingPageWriter) Close() error {
	return w.next.Close()
}
