package descriptor

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdferr"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/record"
	"github.com/cdfkit/cdf-kit/pkg/validation"
)

// GDR is the Global Descriptor Record, the catalog of every chain head
// in the file. Its size_r_dims vector is pushed into ctx for every RVDR
// to size its dimension variances and per-record payload length.
type GDR struct {
	RecordSize           int64
	RvdrHead             int64 // consts.NoNext if absent
	ZvdrHead             int64
	AdrHead              int64
	Eof                  int64
	NumRVars             int32
	NumAttributes        int32
	MaxRVar              int32
	NumRDims             int32
	NumZVars             int32
	UirHead              int64
	LastLeapsecondUpdate int32
	SizeRDims            []int32
}

// DecodeGDR decodes the GDR at ctx's current offset width hint and the
// cursor seeked to gdr_offset, installing size_r_dims into ctx.
func DecodeGDR(cur *cdfio.Cursor, ctx *cdfctx.Context, log *logging.Logger) (*GDR, error) {
	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return nil, err
	}
	if err := record.ExpectType("GDR", consts.RecordTypeGDR, header.RecordType); err != nil {
		return nil, err
	}
	log.Trace("decoding record", "record_class", "GDR", "record_type", header.RecordType, "record_size", header.RecordSize)

	rvdrHead, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, err
	}
	zvdrHead, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, err
	}
	adrHead, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, err
	}
	eof, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, err
	}
	numRVars, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	numAttributes, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	maxRVar, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	numRDims, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	numZVars, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	uirHead, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, err
	}

	rfuC, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckReservedInt32("GDR", "rfu_c", rfuC, 0); err != nil {
		return nil, err
	}

	lastLeapsecondUpdate, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}

	rfuE, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckReservedInt32("GDR", "rfu_e", rfuE, -1); err != nil {
		return nil, err
	}

	nRDims, err := cdferr.ToCount("GDR", "num_r_dims", int64(numRDims))
	if err != nil {
		return nil, err
	}
	sizeRDims := make([]int32, nRDims)
	for i := range sizeRDims {
		sizeRDims[i], err = record.ReadInt32(cur)
		if err != nil {
			return nil, err
		}
	}

	version, err := ctx.Version()
	if err != nil {
		return nil, err
	}
	if version.Major < 2 || (version.Major == 2 && version.Release < 2) {
		zvdrHead = consts.NoNext
	}

	ctx.SetRDims(sizeRDims)

	return &GDR{
		RecordSize:           header.RecordSize,
		RvdrHead:             rvdrHead,
		ZvdrHead:             zvdrHead,
		AdrHead:              adrHead,
		Eof:                  eof,
		NumRVars:             numRVars,
		NumAttributes:        numAttributes,
		MaxRVar:              maxRVar,
		NumRDims:             numRDims,
		NumZVars:             numZVars,
		UirHead:              uirHead,
		LastLeapsecondUpdate: lastLeapsecondUpdate,
		SizeRDims:            sizeRDims,
	}, nil
}
