// Package descriptor implements the CDF metadata skeleton: the CDR, GDR,
// ADR/AGREDR/AZEDR attribute chain, and RVDR/ZVDR variable descriptors.
// Field order and reserved-value constants are grounded directly on the
// original cdf-rs decoder's record/{cdr,gdr,adr,agredr,azedr,rvdr,zvdr}.rs,
// restructured into the cursor+context style of
// rstms-iso-kit's iso9660/descriptor package.
package descriptor

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/helpers"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/record"
	"github.com/cdfkit/cdf-kit/pkg/validation"
	"github.com/cdfkit/cdf-kit/pkg/value"
)

// CDRFlags are the per-file flags carried in the CDR's flags bitfield.
type CDRFlags struct {
	RowMajor    bool
	SingleFile  bool
	HasChecksum bool
	ChecksumMD5 bool
}

// CDR is the CDF Descriptor Record, the first record after the 8-byte
// magic prelude. Decoding it resolves the file's authoritative version
// and endianness, both written back into the decode context.
type CDR struct {
	RecordSize int64
	GdrOffset  int64
	Version    cdfctx.Version
	Encoding   value.Encoding
	Flags      CDRFlags
	Identifier int32
	Copyright  string
}

// DecodeCDR decodes the CDR at the cursor's current position (offset 8)
// and installs the confirmed version, encoding, endianness, and
// row-major flag into ctx for every downstream record to consume.
func DecodeCDR(cur *cdfio.Cursor, ctx *cdfctx.Context, log *logging.Logger) (*CDR, error) {
	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return nil, err
	}
	if err := record.ExpectType("CDR", consts.RecordTypeCDR, header.RecordType); err != nil {
		return nil, err
	}
	log.Trace("decoding record", "record_class", "CDR", "record_type", header.RecordType, "record_size", header.RecordSize)

	gdrOffset, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, err
	}
	versionRaw, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	releaseRaw, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	encodingRaw, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	flagsRaw, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}

	rfuA, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckReservedInt32("CDR", "rfu_a", rfuA, 0); err != nil {
		return nil, err
	}
	rfuB, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckReservedInt32("CDR", "rfu_b", rfuB, 0); err != nil {
		return nil, err
	}

	increment, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	identifier, err := record.ReadInt32(cur)
	if err != nil {
		return nil, err
	}
	// rfu_e carries no documented constant; real files observe -1, but it
	// is not validated (spec.md only constrains rfu_a and rfu_b).
	if _, err := record.ReadInt32(cur); err != nil {
		return nil, err
	}

	version := cdfctx.Version{Major: versionRaw, Release: releaseRaw, Increment: increment}

	width := consts.CopyrightWidthOld
	if versionRaw > consts.CopyrightWidthCutoffMajor ||
		(versionRaw == consts.CopyrightWidthCutoffMajor && releaseRaw >= consts.CopyrightWidthCutoffRelease) {
		width = consts.CopyrightWidthNew
	}
	copyrightBuf, err := cur.ReadExact(width)
	if err != nil {
		return nil, err
	}
	copyright, err := helpers.FixedString("CDR", "copyright", copyrightBuf)
	if err != nil {
		return nil, err
	}

	encoding := value.Encoding(encodingRaw)
	endianness, err := value.ResolveEndianness(encoding)
	if err != nil {
		return nil, err
	}

	ctx.SetVersion(version)
	ctx.SetEncoding(encoding, endianness)
	ctx.SetRowMajor(flagsRaw&consts.CDRFlagRowMajor != 0)

	return &CDR{
		RecordSize: header.RecordSize,
		GdrOffset:  gdrOffset,
		Version:    version,
		Encoding:   encoding,
		Flags: CDRFlags{
			RowMajor:    flagsRaw&consts.CDRFlagRowMajor != 0,
			SingleFile:  flagsRaw&consts.CDRFlagSingleFile != 0,
			HasChecksum: flagsRaw&consts.CDRFlagHasChecksum != 0,
			ChecksumMD5: flagsRaw&consts.CDRFlagChecksumMD5 != 0,
		},
		Identifier: identifier,
		Copyright:  copyright,
	}, nil
}
