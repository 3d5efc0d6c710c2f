package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/orsextract"
	"github.com/fwojciec/orsextract/charset"
	"github.com/fwojciec/orsextract/extract"
	"github.com/fwojciec/orsextract/fs"
	"github.com/fwojciec/orsextract/goquery"
	locslog "github.com/fwojciec/orsextract/slog"
	"github.com/fwojciec/orsextract/sqlite"
)

const (
	modeSequential = "sequential"
	modeConcurrent = "concurrent"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	sources, err := fs.ListSources(c.Dir, c.Prefix)
	if err != nil {
		return err
	}

	pipeline := &extract.Pipeline{
		Extractor: goquery.NewTextExtractor(),
		BaseURL:   c.BaseURL,
	}
	switch c.Mode {
	case modeConcurrent:
		pipeline.Decoder = charset.NewDetectingDecoder()
		pipeline.Lenient = true
	default:
		decoder, err := charset.NewFixedDecoder(c.Encoding)
		if err != nil {
			return fmt.Errorf("invalid --encoding: %s", orsextract.ErrorMessage(err))
		}
		pipeline.Decoder = decoder
	}

	out, err := fs.CreateWriter(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	var w orsextract.PageWriter = out
	if deps.DB != nil {
		dir, err := filepath.Abs(c.Dir)
		if err != nil {
			_ = out.Close()
			return err
		}
		index, err := sqlite.NewPageWriter(deps.Ctx, deps.DB, dir, c.BaseURL)
		if err != nil {
			_ = out.Close()
			return fmt.Errorf("failed to start run: %w", err)
		}
		w = orsextract.MultiPageWriter(out, index)
	}

	if deps.Logger != nil {
		pipeline.Decoder = locslog.NewLoggingDecoder(pipeline.Decoder, deps.Logger)
		pipeline.Extractor = locslog.NewLoggingTextExtractor(pipeline.Extractor, deps.Logger)
		w = locslog.NewLoggingPageWriter(w, deps.Logger)
	}

	progress := func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressProcessed:
			fmt.Fprintf(deps.Stdout, "Processed: %s\n", event.Source.Name)
		case extract.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "%s generated an exception: %s\n", event.Source.Name, errorText(event.Error))
		case extract.ProgressFallback:
			fmt.Fprintf(deps.Stderr, "Error processing %s: %s\n", event.Source.Path, errorText(event.Error))
		}
	}

	if c.Mode == modeConcurrent {
		_, err = extract.RunConcurrent(deps.Ctx, pipeline, sources, w, c.Workers, progress)
	} else {
		_, err = extract.RunSequential(deps.Ctx, pipeline, sources, w, progress)
	}
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Extraction complete. Output saved to %s\n", out.Path())
	return nil
}

// errorText returns the message of an application error, or the error
// string of any other error.
func errorText(err error) string {
	var e *orsextract.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
