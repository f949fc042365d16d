package vxr

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/record"
	"github.com/cdfkit/cdf-kit/pkg/value"
)

// VariableRecord is one (data_type, data_len, data) triple; both
// data_type and data_len are never re-read from the VVR itself but come
// solely from the context the enclosing VDR set (spec.md's data-model
// invariant).
type VariableRecord struct {
	DataType value.DataType
	DataLen  int32
	Data     []value.Value
}

// VVR is a Variable Values Record: a leaf of the variable index tree
// holding exactly NumRecords (set by the enclosing VXR entry) variable
// records.
type VVR struct {
	Records []VariableRecord
}

// DecodeVVR decodes one VVR at the cursor's current position. When
// skipValueDecode is set, record bytes are consumed but not materialized
// into Value slices (option.WithoutValueDecode).
func DecodeVVR(cur *cdfio.Cursor, ctx *cdfctx.Context, skipValueDecode bool, log *logging.Logger) (*VVR, error) {
	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return nil, err
	}
	if err := record.ExpectType("VVR", consts.RecordTypeVVR, header.RecordType); err != nil {
		return nil, err
	}
	log.Trace("decoding record", "record_class", "VVR", "record_type", header.RecordType, "record_size", header.RecordSize)

	numRecords, err := ctx.NumRecords()
	if err != nil {
		return nil, err
	}
	dataType, dataLen, err := ctx.VarData()
	if err != nil {
		return nil, err
	}
	endianness, err := ctx.Endianness()
	if err != nil {
		return nil, err
	}

	records := make([]VariableRecord, numRecords)
	for i := range records {
		var data []value.Value
		if skipValueDecode {
			err = value.SkipVec(cur, dataType, int(dataLen))
		} else if endianness == value.BigEndian {
			data, err = value.DecodeVecBE(cur, dataType, int(dataLen))
		} else {
			data, err = value.DecodeVecLE(cur, dataType, int(dataLen))
		}
		if err != nil {
			return nil, err
		}
		records[i] = VariableRecord{DataType: dataType, DataLen: dataLen, Data: data}
	}

	return &VVR{Records: records}, nil
}
