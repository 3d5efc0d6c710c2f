package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/fwojciec/orsextract"
)

// FormatPage encodes a page as one JSON Lines record, newline included.
// Keys appear in the order url, page_id, content, ors, chapter, title,
// volume, separated by ", " and ": ". Non-ASCII text and HTML characters
// are written literally.
func FormatPage(page *orsextract.Page) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(`{"url": `)
	if err := writeString(&b, page.URL); err != nil {
		return nil, err
	}
	b.WriteString(`, "page_id": `)
	b.WriteString(strconv.Itoa(page.PageID))

	fields := []struct {
		key   string
		value string
	}{
		{"content", page.Content},
		{"ors", page.ORS},
		{"chapter", page.Chapter},
		{"title", page.Title},
		{"volume", page.Volume},
	}
	for _, f := range fields {
		b.WriteString(`, "` + f.key + `": `)
		if err := writeString(&b, f.value); err != nil {
			return nil, err
		}
	}

	b.WriteString("}\n")
	return b.Bytes(), nil
}

// writeString appends s as a JSON string literal without HTML escaping.
func writeString(b *bytes.Buffer, s string) error {
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	b.Truncate(b.Len() - 1)
	return nil
}

// Ensure Writer implements orsextract.PageWriter at compile time.
var _ orsextract.PageWriter = (*Writer)(nil)

// Writer writes pages as JSON Lines. Each record reaches the underlying
// writer in a single Write call, so records never interleave.
type Writer struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	path   string
	count  int
}

// NewWriter creates a Writer on top of w. If w is an io.Closer it is
// closed by Close.
func NewWriter(w io.Writer) *Writer {
	jw := &Writer{w: w}
	if c, ok := w.(io.Closer); ok {
		jw.closer = c
	}
	return jw
}

// CreateWriter creates or truncates the file at path and returns a Writer
// for it.
func CreateWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := NewWriter(f)
	w.path = path
	return w, nil
}

// Path returns the output file path, or "" when the Writer was not created
// by CreateWriter.
func (w *Writer) Path() string {
	return w.path
}

// Count returns the number of records written so far.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// WritePage appends one record for page.
func (w *Writer) WritePage(ctx context.Context, page *orsextract.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	line, err := FormatPage(page)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.w.Write(line); err != nil {
		return err
	}
	w.count++
	return nil
}

// Close closes the underlying writer if it is closable.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil
	return err
}
