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

// VDRFlags are the per-variable flags shared by RVDR and ZVDR.
type VDRFlags struct {
	RecordVariance bool
	HasPadding     bool
	IsCompressed   bool
}

// vdrCommon holds the fields RVDR and ZVDR decode identically, from the
// header through the variable name (spec.md §4.6). Variable names are
// always 256 bytes wide regardless of file version, matching the
// original decoder's (unconditional) choice.
type vdrCommon struct {
	next           int64
	dataType       value.DataType
	maxRecord      int32
	vxrHead        int64
	vxrTail        int64
	flags          VDRFlags
	sparseRecords  int32
	numElements    int32
	num            int32
	cprSprOffset   int64
	blockingFactor int32
	name           string
}

func decodeVDRCommon(cur *cdfio.Cursor, ctx *cdfctx.Context, recordClass string, expectedType int32, log *logging.Logger) (vdrCommon, error) {
	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return vdrCommon{}, err
	}
	if err := record.ExpectType(recordClass, expectedType, header.RecordType); err != nil {
		return vdrCommon{}, err
	}
	log.Trace("decoding record", "record_class", recordClass, "record_type", header.RecordType, "record_size", header.RecordSize)

	next, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return vdrCommon{}, err
	}
	dataTypeRaw, err := record.ReadInt32(cur)
	if err != nil {
		return vdrCommon{}, err
	}
	maxRecord, err := record.ReadInt32(cur)
	if err != nil {
		return vdrCommon{}, err
	}
	vxrHead, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return vdrCommon{}, err
	}
	vxrTail, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return vdrCommon{}, err
	}
	flagsRaw, err := record.ReadInt32(cur)
	if err != nil {
		return vdrCommon{}, err
	}
	sparseRecords, err := record.ReadInt32(cur)
	if err != nil {
		return vdrCommon{}, err
	}

	rfuB, err := record.ReadInt32(cur)
	if err != nil {
		return vdrCommon{}, err
	}
	if err := validation.CheckReservedInt32(recordClass, "rfu_b", rfuB, 0); err != nil {
		return vdrCommon{}, err
	}
	rfuC, err := record.ReadInt32(cur)
	if err != nil {
		return vdrCommon{}, err
	}
	if err := validation.CheckReservedInt32(recordClass, "rfu_c", rfuC, -1); err != nil {
		return vdrCommon{}, err
	}
	rfuF, err := record.ReadInt32(cur)
	if err != nil {
		return vdrCommon{}, err
	}
	if err := validation.CheckReservedInt32(recordClass, "rfu_f", rfuF, -1); err != nil {
		return vdrCommon{}, err
	}

	numElements, err := record.ReadInt32(cur)
	if err != nil {
		return vdrCommon{}, err
	}
	num, err := record.ReadInt32(cur)
	if err != nil {
		return vdrCommon{}, err
	}

	// cpr_spr_offset's absence sentinel is -1 (all-ones), never 0
	// (spec.md §4.6) — the raw value is kept as-is, not remapped.
	cprSprOffset, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return vdrCommon{}, err
	}

	blockingFactor, err := record.ReadInt32(cur)
	if err != nil {
		return vdrCommon{}, err
	}

	nameBuf, err := cur.ReadExact(consts.NameWidthV3)
	if err != nil {
		return vdrCommon{}, err
	}
	name, err := helpers.FixedString(recordClass, "name", nameBuf)
	if err != nil {
		return vdrCommon{}, err
	}

	return vdrCommon{
		next:      next,
		dataType:  value.DataType(dataTypeRaw),
		maxRecord: maxRecord,
		vxrHead:   vxrHead,
		vxrTail:   vxrTail,
		flags: VDRFlags{
			RecordVariance: flagsRaw&consts.VDRFlagRecordVariance != 0,
			HasPadding:     flagsRaw&consts.VDRFlagHasPadding != 0,
			IsCompressed:   flagsRaw&consts.VDRFlagIsCompressed != 0,
		},
		sparseRecords:  sparseRecords,
		numElements:    numElements,
		num:            num,
		cprSprOffset:   cprSprOffset,
		blockingFactor: blockingFactor,
		name:           name,
	}, nil
}

// decodeDimVariances reads n Int4 dimension-variance flags, accepting
// only -1 (variant) or 0 (invariant) per spec.md's data-model invariant.
func decodeDimVariances(cur *cdfio.Cursor, recordClass string, n int32) ([]bool, error) {
	out := make([]bool, n)
	for i := range out {
		v, err := record.ReadInt32(cur)
		if err != nil {
			return nil, err
		}
		if v != -1 && v != 0 {
			return nil, validation.CheckReservedInt32(recordClass, "dim_variances", v, -1)
		}
		out[i] = v == -1
	}
	return out, nil
}

// decodePadValue decodes num_elements values of dataType when
// has_padding is set; otherwise it returns an empty (never nil-checked)
// slice, per spec.md §9's explicit correction of the source's
// inconsistent behavior.
func decodePadValue(cur *cdfio.Cursor, ctx *cdfctx.Context, hasPadding bool, dataType value.DataType, numElements int32, skipValueDecode bool) ([]value.Value, error) {
	if !hasPadding {
		return nil, nil
	}
	if skipValueDecode {
		return nil, value.SkipVec(cur, dataType, int(numElements))
	}
	endianness, err := ctx.Endianness()
	if err != nil {
		return nil, err
	}
	if endianness == value.BigEndian {
		return value.DecodeVecBE(cur, dataType, int(numElements))
	}
	return value.DecodeVecLE(cur, dataType, int(numElements))
}

// activeDimSize computes the product of dimension sizes over variant
// dimensions, used to derive var_data_len (spec.md §4.6).
func activeDimSize(sizeDims []int32, dimVariances []bool) int32 {
	var size int32 = 1
	for i, variant := range dimVariances {
		if variant {
			size *= sizeDims[i]
		}
	}
	return size
}
