package descriptor

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/record"
	"github.com/cdfkit/cdf-kit/pkg/validation"
	"github.com/cdfkit/cdf-kit/pkg/value"
)

// AttributeEntry is the shape shared by AGREDR (record_type 5) and AZEDR
// (record_type 9): an attribute value attached to a global/rVariable or
// zVariable scope. The two record classes differ only in their tag and
// in which ADR chain they hang from.
type AttributeEntry struct {
	AttrNum     int32
	DataType    value.DataType
	Num         int32
	NumElements int32
	NumStrings  int32
	Value       []value.Value
}

// decodeAttributeEntry decodes one AGREDR/AZEDR at the cursor's current
// position. recordClass and expectedType select which of the two record
// tags is enforced; both share field layout and RFU constants otherwise.
func decodeAttributeEntry(cur *cdfio.Cursor, ctx *cdfctx.Context, recordClass string, expectedType int32, skipValueDecode bool, log *logging.Logger) (*AttributeEntry, int64, error) {
	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := record.ExpectType(recordClass, expectedType, header.RecordType); err != nil {
		return nil, 0, err
	}
	log.Trace("decoding record", "record_class", recordClass, "record_type", header.RecordType, "record_size", header.RecordSize)

	next, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, 0, err
	}
	attrNum, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	dataTypeRaw, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	num, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	numElements, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	numStrings, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}

	rfuB, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	if err := validation.CheckReservedInt32(recordClass, "rfu_b", rfuB, 0); err != nil {
		return nil, 0, err
	}
	rfuC, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	if err := validation.CheckReservedInt32(recordClass, "rfu_c", rfuC, 0); err != nil {
		return nil, 0, err
	}
	rfuD, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	if err := validation.CheckReservedInt32(recordClass, "rfu_d", rfuD, -1); err != nil {
		return nil, 0, err
	}
	rfuE, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	if err := validation.CheckReservedInt32(recordClass, "rfu_e", rfuE, -1); err != nil {
		return nil, 0, err
	}

	dataType := value.DataType(dataTypeRaw)
	endianness, err := ctx.Endianness()
	if err != nil {
		return nil, 0, err
	}
	var vals []value.Value
	if skipValueDecode {
		err = value.SkipVec(cur, dataType, int(numElements))
	} else if endianness == value.BigEndian {
		vals, err = value.DecodeVecBE(cur, dataType, int(numElements))
	} else {
		vals, err = value.DecodeVecLE(cur, dataType, int(numElements))
	}
	if err != nil {
		return nil, 0, err
	}

	return &AttributeEntry{
		AttrNum:     attrNum,
		DataType:    dataType,
		Num:         num,
		NumElements: numElements,
		NumStrings:  numStrings,
		Value:       vals,
	}, next, nil
}
