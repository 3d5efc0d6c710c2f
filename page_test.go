package orsextract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/orsextract"
	"github.com/fwojciec/orsextract/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete page", func(t *testing.T) {
		t.Parallel()

		page := &orsextract.Page{URL: "https://oregon.public.law/statutes/ors_1.010.html", PageID: 1}

		assert.NoError(t, page.Validate())
	})

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		page := &orsextract.Page{PageID: 1}

		err := page.Validate()
		require.Error(t, err)
		assert.Equal(t, orsextract.EINVALID, orsextract.ErrorCode(err))
	})

	t.Run("requires positive page ID", func(t *testing.T) {
		t.Parallel()

		page := &orsextract.Page{URL: "https://oregon.public.law/x"}

		err := page.Validate()
		require.Error(t, err)
		assert.Equal(t, orsextract.EINVALID, orsextract.ErrorCode(err))
	})
}

func TestMultiPageWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to every writer", func(t *testing.T) {
		t.Parallel()

		a := &mock.PageRecorder{}
		b := &mock.PageRecorder{}
		w := orsextract.MultiPageWriter(a, b)

		err := w.WritePage(context.Background(), &orsextract.Page{URL: "u", PageID: 1})

		require.NoError(t, err)
		assert.Len(t, a.Pages(), 1)
		assert.Len(t, b.Pages(), 1)
	})

	t.Run("stops at first write error", func(t *testing.T) {
		t.Parallel()

		failing := &mock.PageWriter{
			WritePageFn: func(context.Context, *orsextract.Page) error {
				return errors.New("disk full")
			},
		}
		after := &mock.PageRecorder{}
		w := orsextract.MultiPageWriter(failing, after)

		err := w.WritePage(context.Background(), &orsextract.Page{URL: "u", PageID: 1})

		require.EqualError(t, err, "disk full")
		assert.Empty(t, after.Pages())
	})

	t.Run("closes every writer and joins errors", func(t *testing.T) {
		t.Parallel()

		failing := &mock.PageWriter{
			CloseFn: func() error { return errors.New("close failed") },
		}
		other := &mock.PageRecorder{}
		w := orsextract.MultiPageWriter(failing, other)

		err := w.Close()

		require.ErrorContains(t, err, "close failed")
		assert.True(t, other.Closed())
	})

	t.Run("flattens nested writers", func(t *testing.T) {
		t.Parallel()

		a := &mock.PageRecorder{}
		b := &mock.PageRecorder{}
		w := orsextract.MultiPageWriter(orsextract.MultiPageWriter(a), b)

		require.NoError(t, w.WritePage(context.Background(), &orsextract.Page{URL: "u", PageID: 1}))

		assert.Len(t, a.Pages(), 1)
		assert.Len(t, b.Pages(), 1)
	})
}
