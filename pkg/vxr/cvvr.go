package vxr

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdferr"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/record"
	"github.com/cdfkit/cdf-kit/pkg/validation"
)

// CVVR is a Compressed Variable Values Record: a leaf of the variable
// index tree holding opaque per-variable compressed bytes. Decompression
// is out of scope; Data is exposed verbatim (spec.md §4.8).
type CVVR struct {
	CompressedSize int64
	Data           []byte
}

// DecodeCVVR decodes one CVVR at the cursor's current position.
func DecodeCVVR(cur *cdfio.Cursor, ctx *cdfctx.Context, log *logging.Logger) (*CVVR, error) {
	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return nil, err
	}
	if err := record.ExpectType("CVVR", consts.RecordTypeCVVR, header.RecordType); err != nil {
		return nil, err
	}
	log.Trace("decoding record", "record_class", "CVVR", "record_type", header.RecordType, "record_size", header.RecordSize)

	rfuA, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckReservedInt32("CVVR", "rfu_a", rfuA, 0); err != nil {
		return nil, err
	}

	compressedSize, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, err
	}
	n, err := cdferr.ToCount("CVVR", "compressed_size", compressedSize)
	if err != nil {
		return nil, err
	}
	data, err := cur.ReadExact(n)
	if err != nil {
		return nil, err
	}

	return &CVVR{CompressedSize: compressedSize, Data: data}, nil
}
