// Package ccr implements the whole-file compression wrapper: the CCR
// header and its CPR compression-parameters record. Decompression is
// out of scope (spec.md §1 Non-goals); both records are decoded down to
// their declared parameters and raw bytes only.
package ccr

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdferr"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/record"
	"github.com/cdfkit/cdf-kit/pkg/validation"
)

// CCR wraps the entire compressed CDF body.
type CCR struct {
	CprOffset        int64
	UncompressedSize int64
	Data             []byte
}

// DecodeCCR decodes one CCR at the cursor's current position.
func DecodeCCR(cur *cdfio.Cursor, ctx *cdfctx.Context, log *logging.Logger) (*CCR, error) {
	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return nil, err
	}
	if err := record.ExpectType("CCR", consts.RecordTypeCCR, header.RecordType); err != nil {
		return nil, err
	}
	log.Trace("decoding record", "record_class", "CCR", "record_type", header.RecordType, "record_size", header.RecordSize)

	cprOffset, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, err
	}
	uncompressedSize, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, err
	}

	rfuA, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckReservedInt32("CCR", "rfu_a", rfuA, 0); err != nil {
		return nil, err
	}

	version, err := ctx.Version()
	if err != nil {
		return nil, err
	}
	headerBytes := 20
	if version.Major3OrLater() {
		headerBytes = 32
	}
	dataLen, err := cdferr.ToCount("CCR", "data_len", header.RecordSize-int64(headerBytes))
	if err != nil {
		return nil, err
	}
	data, err := cur.ReadExact(dataLen)
	if err != nil {
		return nil, err
	}

	return &CCR{CprOffset: cprOffset, UncompressedSize: uncompressedSize, Data: data}, nil
}

// CompressionType identifies a CPR's compression algorithm.
type CompressionType int32

// CPR is the Compression Parameters Record pointed to by a CCR (or a
// VDR, for per-variable compression).
type CPR struct {
	CompressionType  CompressionType
	ParameterCount   int32
	CompressionLevel int32
}

// DecodeCPR decodes one CPR at the cursor's current position, enforcing
// the level constraint from spec.md §4.9: Gzip requires a level in
// [1,9]; every other compression type requires level 0.
func DecodeCPR(cur *cdfio.Cursor, ctx *cdfctx.Context, log *logging.Logger) (*CPR, error) {
	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return nil, err
	}
	if err := record.ExpectType("CPR", consts.RecordTypeCPR, header.RecordType); err != nil {
		return nil, err
	}
	log.Trace("decoding record", "record_class", "CPR", "record_type", header.RecordType, "record_size", header.RecordSize)

	compressionTypeRaw, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	parameterCount, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}

	rfuA, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckReservedInt32("CPR", "rfu_a", rfuA, 0); err != nil {
		return nil, err
	}

	compressionLevel, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}

	if compressionTypeRaw == consts.CompressionGzip {
		if compressionLevel < 1 || compressionLevel > 9 {
			return nil, cdferr.NewIntegerOutOfRange("CPR", "compression_level", int64(compressionLevel))
		}
	} else if compressionLevel != 0 {
		return nil, cdferr.NewIntegerOutOfRange("CPR", "compression_level", int64(compressionLevel))
	}

	return &CPR{
		CompressionType:  CompressionType(compressionTypeRaw),
		ParameterCount:   parameterCount,
		CompressionLevel: compressionLevel,
	}, nil
}
