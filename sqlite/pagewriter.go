package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/orsextract"
	"github.com/google/uuid"
)

// Ensure PageWriter implements orsextract.PageWriter at compile time.
var _ orsextract.PageWriter = (*PageWriter)(nil)

// Run describes one extraction batch recorded in the database.
type Run struct {
	ID        string
	SourceDir string
	BaseURL   string
	StartedAt time.Time
}

// PageWriter indexes the pages of a single run.
type PageWriter struct {
	db  *DB
	run *Run
}

// NewPageWriter registers a new run and returns a writer for its pages.
// The DB stays open after the writer is closed.
func NewPageWriter(ctx context.Context, db *DB, sourceDir, baseURL string) (*PageWriter, error) {
	run := &Run{
		ID:        uuid.New().String(),
		SourceDir: sourceDir,
		BaseURL:   baseURL,
		StartedAt: time.Now().UTC(),
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO runs (id, source_dir, base_url, started_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.SourceDir, run.BaseURL, run.StartedAt.Format(time.RFC3339)); err != nil {
		return nil, err
	}

	return &PageWriter{db: db, run: run}, nil
}

// Run returns the run this writer records into.
func (w *PageWriter) Run() *Run {
	return w.run
}

// WritePage inserts page under the writer's run.
func (w *PageWriter) WritePage(ctx context.Context, page *orsextract.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	_, err := w.db.ExecContext(ctx, `
		INSERT INTO pages (run_id, page_id, url, content, content_hash, ors, chapter, title, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, w.run.ID, page.PageID, page.URL, page.Content, hashContent(page.Content),
		page.ORS, page.Chapter, page.Title, page.Volume)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return orsextract.Errorf(orsextract.EINVALID, "page %d already recorded for run %s", page.PageID, w.run.ID)
	}
	return err
}

// Close is a no-op; the DB is owned by the caller.
func (w *PageWriter) Close() error {
	return nil
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}
