package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/orsextract"
)

var (
	_ orsextract.PageWriter = (*PageWriter)(nil)
	_ orsextract.PageWriter = (*PageRecorder)(nil)
)

// PageWriter is a mock implementation of orsextract.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *orsextract.Page) error
	CloseFn     func() error
}

func (w *PageWriter) WritePage(ctx context.Context, page *orsextract.Page) error {
	return w.WritePageFn(ctx, page)
}

func (w *PageWriter) Close() error {
	return w.CloseFn()
}

// PageRecorder is an orsextract.PageWriter that keeps copies of every page
// written to it. It is safe for concurrent use.
type PageRecorder struct {
	mu     sync.Mutex
	pages  []orsextract.Page
	closed bool
}

func (r *PageRecorder) WritePage(_ context.Context, page *orsextract.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages = append(r.pages, *page)
	return nil
}

func (r *PageRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Pages returns the recorded pages in write order.
func (r *PageRecorder) Pages() []orsextract.Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]orsextract.Page(nil), r.pages...)
}

// Closed reports whether Close was called.
func (r *PageRecorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
