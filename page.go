package orsextract

import (
	"context"
	"errors"
)

// Source is a statute page on disk.
type Source struct {
	// Name is the base filename, which encodes metadata tokens.
	Name string

	// Path is the file location as passed to the reader.
	Path string
}

// Page is one extracted record of the output corpus.
// Metadata fields are flattened into the record, not nested.
type Page struct {
	URL     string `json:"url"`
	PageID  int    `json:"page_id"`
	Content string `json:"content"`
	Metadata
}

// Validate returns an error if the page cannot be persisted.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.PageID < 1 {
		return Errorf(EINVALID, "page ID must be positive, got %d", p.PageID)
	}
	return nil
}

// PageWriter persists extracted pages. Implementations must be safe for
// concurrent use and must write each page atomically.
type PageWriter interface {
	WritePage(ctx context.Context, page *Page) error
	Close() error
}

// MultiPageWriter returns a PageWriter that writes each page to all of the
// given writers in order, stopping at the first error.
func MultiPageWriter(writers ...PageWriter) PageWriter {
	all := make([]PageWriter, 0, len(writers))
	for _, w := range writers {
		if mw, ok := w.(*multiPageWriter); ok {
			all = append(all, mw.writers...)
			continue
		}
		all = append(all, w)
	}
	return &multiPageWriter{writers: all}
}

type multiPageWriter struct {
	writers []PageWriter
}

func (m *multiPageWriter) WritePage(ctx context.Context, page *Page) error {
	for _, w := range m.writers {
		if err := w.WritePage(ctx, page); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every writer and returns the joined errors.
func (m *multiPageWriter) Close() error {
	var errs []error
	for _, w := range m.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
