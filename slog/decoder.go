// Package slog provides log/slog decorators for the extraction pipeline.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/orsextract"
)

// Ensure LoggingDecoder implements orsextract.Decoder.
var _ orsextract.Decoder = (*LoggingDecoder)(nil)

// LoggingDecoder wraps a Decoder with logging.
type LoggingDecoder struct {
	next   orsextract.Decoder
	logger *slog.Logger
}

// NewLoggingDecoder creates a new LoggingDecoder.
func NewLoggingDecoder(next orsextract.Decoder, logger *slog.Logger) *LoggingDecoder {
	return &LoggingDecoder{next: next, logger: logger}
}

// Decode delegates to the wrapped decoder and logs the operation.
func (d *LoggingDecoder) Decode(raw []byte) (text string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("decode",
			"bytes", len(raw),
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Decode(raw)
}
