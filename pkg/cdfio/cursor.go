// Package cdfio provides the decoder's I/O cursor: sequential reads plus
// absolute/relative seeks over a single ReadSeeker, grounded on the
// io.ReaderAt-based sector reads in rstms-iso-kit's
// pkg/iso9660/parser.Parser (which reads fixed-size sectors at computed
// offsets rather than threading a position through every call).
package cdfio

import (
	"io"

	"github.com/cdfkit/cdf-kit/pkg/cdferr"
)

// Cursor reads from, and seeks within, a single underlying stream. The
// reader is single-threaded and synchronous (spec.md §5): a Cursor is not
// safe for concurrent use, but independent Cursors over independent
// readers may run concurrently.
type Cursor struct {
	r   io.ReadSeeker
	pos int64
}

// NewCursor wraps r, positioned at its current offset (callers typically
// pass a freshly-opened file or bytes.Reader starting at 0).
func NewCursor(r io.ReadSeeker) *Cursor {
	return &Cursor{r: r}
}

// ReadExact reads exactly n bytes or returns a wrapped I/O error.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.r, buf); err != nil {
		return nil, cdferr.NewIO(err)
	}
	c.pos += int64(n)
	return buf, nil
}

// SeekAbs moves the cursor to an absolute file offset.
func (c *Cursor) SeekAbs(offset int64) error {
	pos, err := c.r.Seek(offset, io.SeekStart)
	if err != nil {
		return cdferr.NewIO(err)
	}
	c.pos = pos
	return nil
}

// SeekRel moves the cursor by delta bytes relative to its current
// position.
func (c *Cursor) SeekRel(delta int64) error {
	pos, err := c.r.Seek(delta, io.SeekCurrent)
	if err != nil {
		return cdferr.NewIO(err)
	}
	c.pos = pos
	return nil
}

// Pos reports the cursor's current absolute offset.
func (c *Cursor) Pos() int64 {
	return c.pos
}
