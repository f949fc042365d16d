// Package vxr implements the Variable Value Tree: VXR index records
// branching to further VXRs, VVR (uncompressed) leaves, or CVVR
// (compressed) leaves. Grounded on the original cdf-rs decoder's
// record::vxr module, restructured into the cursor+context style used
// throughout this decoder; the off-by-one the original source computes
// for num_records (spec.md §9) is corrected here to last-first+1.
package vxr

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdferr"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/record"
)

// Child is the discriminated union of what a VXR entry's offset may
// point to: another VXR, a VVR, or a CVVR. Exactly one field is set.
type Child struct {
	VXR  *VXR
	VVR  *VVR
	CVVR *CVVR
}

// Entry is one (first, last, offset) triple of a VXR, resolved to its
// decoded child.
type Entry struct {
	First  int32
	Last   int32
	Offset int64
	Child  *Child
}

// VXR is a Variable Index Record: a branch node in the variable-values
// tree, rooted at a VDR's vxr_head.
type VXR struct {
	NumEntries     int32
	NumUsedEntries int32
	Entries        []Entry
}

// maxChainDepth bounds recursive VXR nesting against a corrupt file
// whose index tree cycles back on itself; the format has no legitimate
// use for more than a few dozen levels.
const maxChainDepth = 64

// DecodeVXR decodes one VXR at the cursor's current position, resolving
// every present entry's child (spec.md §4.7), and returns the offset of
// the next VXR in this level's chain. skipValueDecode is threaded down
// to every VVR leaf reached from this tree.
func DecodeVXR(cur *cdfio.Cursor, ctx *cdfctx.Context, skipValueDecode bool, log *logging.Logger) (*VXR, int64, error) {
	return decodeVXR(cur, ctx, 0, skipValueDecode, log)
}

func decodeVXR(cur *cdfio.Cursor, ctx *cdfctx.Context, depth int, skipValueDecode bool, log *logging.Logger) (*VXR, int64, error) {
	if depth > maxChainDepth {
		return nil, 0, cdferr.NewMissingContext("vxr_nesting_depth_exceeded")
	}

	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := record.ExpectType("VXR", consts.RecordTypeVXR, header.RecordType); err != nil {
		return nil, 0, err
	}
	log.Trace("decoding record", "record_class", "VXR", "record_type", header.RecordType, "record_size", header.RecordSize)

	next, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, 0, err
	}
	numEntries, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	numUsedEntries, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}

	n, err := cdferr.ToCount("VXR", "num_entries", int64(numEntries))
	if err != nil {
		return nil, 0, err
	}
	firsts := make([]int32, n)
	for i := range firsts {
		firsts[i], err = record.ReadInt32(cur)
		if err != nil {
			return nil, 0, err
		}
	}
	lasts := make([]int32, n)
	for i := range lasts {
		lasts[i], err = record.ReadInt32(cur)
		if err != nil {
			return nil, 0, err
		}
	}
	offsets := make([]int64, n)
	for i := range offsets {
		offsets[i], err = record.ReadOffset(cur, ctx)
		if err != nil {
			return nil, 0, err
		}
	}

	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = Entry{First: firsts[i], Last: lasts[i], Offset: offsets[i]}
		if offsets[i] == consts.NoOffset {
			continue
		}

		// num_records is the count of variable records stored at this
		// child: last-first+1, not last-first (spec.md §9's correction
		// of the source's off-by-one). Computed in int64 so a corrupt
		// last < first doesn't wrap silently before the range check.
		numRecords, err := cdferr.ToCount("VXR", "num_records", int64(lasts[i])-int64(firsts[i])+1)
		if err != nil {
			return nil, 0, err
		}
		ctx.SetNumRecords(int32(numRecords))

		if err := cur.SeekAbs(offsets[i]); err != nil {
			return nil, 0, err
		}
		child, err := decodeChild(cur, ctx, depth, skipValueDecode, log)
		if err != nil {
			return nil, 0, err
		}
		entries[i].Child = child
	}

	return &VXR{
		NumEntries:     numEntries,
		NumUsedEntries: numUsedEntries,
		Entries:        entries,
	}, next, nil
}

// decodeChild peeks record_size+record_type, seeks back over exactly
// the bytes consumed, and dispatches on the tag (spec.md §4.7).
func decodeChild(cur *cdfio.Cursor, ctx *cdfctx.Context, depth int, skipValueDecode bool, log *logging.Logger) (*Child, error) {
	width, err := ctx.OffsetWidth()
	if err != nil {
		return nil, err
	}
	headerBytes := width + 4

	if _, err := record.ReadOffset(cur, ctx); err != nil {
		return nil, err
	}
	tag, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	if err := cur.SeekRel(-int64(headerBytes)); err != nil {
		return nil, err
	}

	switch tag {
	case consts.RecordTypeVXR:
		child, _, err := decodeVXR(cur, ctx, depth+1, skipValueDecode, log)
		if err != nil {
			return nil, err
		}
		return &Child{VXR: child}, nil
	case consts.RecordTypeVVR:
		child, err := DecodeVVR(cur, ctx, skipValueDecode, log)
		if err != nil {
			return nil, err
		}
		return &Child{VVR: child}, nil
	case consts.RecordTypeCVVR:
		child, err := DecodeCVVR(cur, ctx, log)
		if err != nil {
			return nil, err
		}
		return &Child{CVVR: child}, nil
	default:
		return nil, cdferr.NewBadRecordType("VXR child", consts.RecordTypeVXR, tag)
	}
}
