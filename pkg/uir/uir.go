// Package uir implements the Unused Internal Record free list and its
// isolated "unsociable" variant, grounded on the original decoder's
// record::uir module (UnusedInternalRecord /
// UnsociableUnusedInternalRecord).
package uir

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdferr"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/record"
)

// UIR is a free-space record linked from GDR.uir_head.
type UIR struct {
	Next      int64
	Prev      int64
	Remainder []byte
}

// headerBytes returns the byte count already consumed by
// record_size+record_type+next+prev, needed to size the remainder.
func headerBytes(version cdfctx.Version) int {
	if version.Major3OrLater() {
		return 28
	}
	return 16
}

// DecodeUIR decodes one UIR at the cursor's current position.
func DecodeUIR(cur *cdfio.Cursor, ctx *cdfctx.Context, log *logging.Logger) (*UIR, int64, error) {
	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := record.ExpectType("UIR", consts.RecordTypeUIR, header.RecordType); err != nil {
		return nil, 0, err
	}
	log.Trace("decoding record", "record_class", "UIR", "record_type", header.RecordType, "record_size", header.RecordSize)

	next, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, 0, err
	}
	prev, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, 0, err
	}

	version, err := ctx.Version()
	if err != nil {
		return nil, 0, err
	}
	remLen, err := cdferr.ToCount("UIR", "remainder_len", header.RecordSize-int64(headerBytes(version)))
	if err != nil {
		return nil, 0, err
	}
	remainder, err := cur.ReadExact(remLen)
	if err != nil {
		return nil, 0, err
	}

	return &UIR{Next: next, Prev: prev, Remainder: remainder}, next, nil
}

// UnsociableUIR is an isolated free block with no next/prev linkage.
type UnsociableUIR struct {
	Remainder []byte
}

// unsociableHeaderBytes returns the byte count consumed by
// record_size+record_type alone.
func unsociableHeaderBytes(version cdfctx.Version) int {
	if version.Major3OrLater() {
		return 12
	}
	return 8
}

// DecodeUnsociableUIR decodes an isolated free block at the cursor's
// current position.
func DecodeUnsociableUIR(cur *cdfio.Cursor, ctx *cdfctx.Context, log *logging.Logger) (*UnsociableUIR, error) {
	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return nil, err
	}
	if err := record.ExpectType("UIR", consts.RecordTypeUIR, header.RecordType); err != nil {
		return nil, err
	}
	log.Trace("decoding record", "record_class", "UIR", "record_type", header.RecordType, "record_size", header.RecordSize)

	version, err := ctx.Version()
	if err != nil {
		return nil, err
	}
	remLen, err := cdferr.ToCount("UIR", "remainder_len", header.RecordSize-int64(unsociableHeaderBytes(version)))
	if err != nil {
		return nil, err
	}
	remainder, err := cur.ReadExact(remLen)
	if err != nil {
		return nil, err
	}

	return &UnsociableUIR{Remainder: remainder}, nil
}
