package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/orsextract"
	"github.com/fwojciec/orsextract/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPage(id int) *orsextract.Page {
	return &orsextract.Page{
		URL:     "https://oregon.public.law/statutes/ors_174.010.html",
		PageID:  id,
		Content: "General definitions",
		Metadata: orsextract.Metadata{
			ORS:     "174.010",
			Chapter: "174",
			Title:   "18",
			Volume:  orsextract.NotAvailable,
		},
	}
}

func TestNewPageWriter(t *testing.T) {
	t.Parallel()

	t.Run("registers a run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		w, err := sqlite.NewPageWriter(ctx, db, "./statutes", "https://oregon.public.law/")
		require.NoError(t, err)

		run := w.Run()
		assert.NotEmpty(t, run.ID)
		assert.False(t, run.StartedAt.IsZero())

		var sourceDir, baseURL string
		err = db.QueryRowContext(ctx, "SELECT source_dir, base_url FROM runs WHERE id = ?", run.ID).
			Scan(&sourceDir, &baseURL)
		require.NoError(t, err)
		assert.Equal(t, "./statutes", sourceDir)
		assert.Equal(t, "https://oregon.public.law/", baseURL)
	})

	t.Run("gives each run a distinct ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		a, err := sqlite.NewPageWriter(ctx, db, "", "")
		require.NoError(t, err)
		b, err := sqlite.NewPageWriter(ctx, db, "", "")
		require.NoError(t, err)

		assert.NotEqual(t, a.Run().ID, b.Run().ID)
	})
}

func TestPageWriter_WritePage(t *testing.T) {
	t.Parallel()

	t.Run("stores the page with a content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		w, err := sqlite.NewPageWriter(ctx, db, "", "")
		require.NoError(t, err)

		require.NoError(t, w.WritePage(ctx, testPage(1)))

		var url, ors, chapter, title, volume, hash string
		err = db.QueryRowContext(ctx, `
			SELECT url, ors, chapter, title, volume, content_hash
			FROM pages WHERE run_id = ? AND page_id = 1
		`, w.Run().ID).Scan(&url, &ors, &chapter, &title, &volume, &hash)
		require.NoError(t, err)
		assert.Equal(t, "https://oregon.public.law/statutes/ors_174.010.html", url)
		assert.Equal(t, "174.010", ors)
		assert.Equal(t, "174", chapter)
		assert.Equal(t, "18", title)
		assert.Equal(t, "N/A", volume)
		assert.Len(t, hash, 16)
	})

	t.Run("hashes identical content identically", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		w, err := sqlite.NewPageWriter(ctx, db, "", "")
		require.NoError(t, err)

		require.NoError(t, w.WritePage(ctx, testPage(1)))
		require.NoError(t, w.WritePage(ctx, testPage(2)))

		var distinct int
		err = db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT content_hash) FROM pages").Scan(&distinct)
		require.NoError(t, err)
		assert.Equal(t, 1, distinct)
	})

	t.Run("reads pages back in identifier order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		w, err := sqlite.NewPageWriter(ctx, db, "", "")
		require.NoError(t, err)

		for _, id := range []int{3, 1, 2} {
			require.NoError(t, w.WritePage(ctx, testPage(id)))
		}

		rows, err := db.QueryContext(ctx, `
			SELECT page_id, content FROM pages WHERE run_id = ? ORDER BY page_id
		`, w.Run().ID)
		require.NoError(t, err)
		defer rows.Close()

		var ids []int
		for rows.Next() {
			var id int
			var content string
			require.NoError(t, rows.Scan(&id, &content))
			assert.Equal(t, "General definitions", content)
			ids = append(ids, id)
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, []int{1, 2, 3}, ids)
	})

	t.Run("rejects duplicate page IDs within a run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		w, err := sqlite.NewPageWriter(ctx, db, "", "")
		require.NoError(t, err)
		require.NoError(t, w.WritePage(ctx, testPage(1)))

		err = w.WritePage(ctx, testPage(1))

		require.Error(t, err)
		assert.Equal(t, orsextract.EINVALID, orsextract.ErrorCode(err))
	})

	t.Run("allows the same page ID in different runs", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		first, err := sqlite.NewPageWriter(ctx, db, "", "")
		require.NoError(t, err)
		second, err := sqlite.NewPageWriter(ctx, db, "", "")
		require.NoError(t, err)

		require.NoError(t, first.WritePage(ctx, testPage(1)))
		require.NoError(t, second.WritePage(ctx, testPage(1)))
	})

	t.Run("rejects invalid pages", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		w, err := sqlite.NewPageWriter(ctx, db, "", "")
		require.NoError(t, err)

		err = w.WritePage(ctx, &orsextract.Page{})

		require.Error(t, err)
		assert.Equal(t, orsextract.EINVALID, orsextract.ErrorCode(err))
	})

	t.Run("close leaves the database usable", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()
		w, err := sqlite.NewPageWriter(ctx, db, "", "")
		require.NoError(t, err)

		require.NoError(t, w.Close())

		var n int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&n))
		assert.Equal(t, 1, n)
	})
}
