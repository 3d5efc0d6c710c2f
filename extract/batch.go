package extract

import (
	"context"
	"fmt"
	"runtime"

	"github.com/fwojciec/orsextract"
	"golang.org/x/sync/errgroup"
)

// ProgressEvent reports the fate of one source during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Source    orsextract.Source
	PageID    int
	Completed int
	Total     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	// ProgressProcessed means a record was written for the source.
	ProgressProcessed ProgressType = iota
	// ProgressFailed means the source was skipped.
	ProgressFailed
	// ProgressFallback means the source's content could not be decoded or
	// parsed and was replaced by an empty string. A ProgressProcessed event
	// for the same source follows.
	ProgressFallback
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Result holds the outcome of a batch.
type Result struct {
	Processed int
	Failed    int
	Fallbacks int
}

// batch is the state shared by both drivers: the identifier counter, the
// output, and the tallies.
type batch struct {
	writer   orsextract.PageWriter
	progress ProgressFunc
	counter  *Counter
	total    int
	done     int
	result   Result
}

func newBatch(w orsextract.PageWriter, total int, progress ProgressFunc) *batch {
	return &batch{
		writer:   w,
		progress: progress,
		counter:  NewCounter(),
		total:    total,
	}
}

func (b *batch) emit(event ProgressEvent) {
	if b.progress == nil {
		return
	}
	event.Completed = b.done
	event.Total = b.total
	b.progress(event)
}

// record numbers and writes a successful outcome.
func (b *batch) record(ctx context.Context, out Outcome) error {
	b.done++
	if out.ContentErr != nil {
		b.result.Fallbacks++
		b.emit(ProgressEvent{Type: ProgressFallback, Source: out.Source, Error: out.ContentErr})
	}

	out.Page.PageID = b.counter.Next()
	if err := b.writer.WritePage(ctx, out.Page); err != nil {
		return fmt.Errorf("write %s: %w", out.Source.Name, err)
	}

	b.result.Processed++
	b.emit(ProgressEvent{Type: ProgressProcessed, Source: out.Source, PageID: out.Page.PageID})
	return nil
}

// skip counts a failed outcome.
func (b *batch) skip(out Outcome) {
	b.done++
	b.result.Failed++
	b.emit(ProgressEvent{Type: ProgressFailed, Source: out.Source, Error: out.Err})
}

// RunSequential processes sources one at a time, in the given order, and
// writes each record as soon as it is produced. Identifiers follow
// processing order. The first failing source aborts the batch; records
// written before it remain.
func RunSequential(
	ctx context.Context,
	p *Pipeline,
	sources []orsextract.Source,
	w orsextract.PageWriter,
	progress ProgressFunc,
) (*Result, error) {
	b := newBatch(w, len(sources), progress)

	for _, src := range sources {
		out := p.Process(ctx, src)
		if out.Err != nil {
			return &b.result, fmt.Errorf("%s: %w", src.Name, out.Err)
		}
		if err := b.record(ctx, out); err != nil {
			return &b.result, err
		}
	}

	return &b.result, nil
}

// RunConcurrent processes sources on a pool of workers goroutines
// (runtime.NumCPU() when workers <= 0). Identifiers are assigned and
// records written in completion order, so the identifier of a given source
// varies between runs; identifiers always form the contiguous range
// 1..Processed. A failing source is reported and skipped without affecting
// the others. Only a write fault or cancellation of ctx stops the batch.
func RunConcurrent(
	ctx context.Context,
	p *Pipeline,
	sources []orsextract.Source,
	w orsextract.PageWriter,
	workers int,
	progress ProgressFunc,
) (*Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	outcomes := make(chan Outcome, workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	go func() {
		for _, src := range sources {
			g.Go(func() error {
				outcomes <- p.safeProcess(gctx, src)
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	b := newBatch(w, len(sources), progress)
	var writeErr error
	for out := range outcomes {
		if writeErr != nil {
			// Drain so the submitting goroutine can finish.
			continue
		}
		if out.Err != nil {
			if ctx.Err() != nil {
				continue
			}
			b.skip(out)
			continue
		}
		if err := b.record(ctx, out); err != nil {
			writeErr = err
			cancel()
		}
	}

	if writeErr != nil {
		return &b.result, writeErr
	}
	return &b.result, ctx.Err()
}
