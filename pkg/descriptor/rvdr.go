package descriptor

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/record"
	"github.com/cdfkit/cdf-kit/pkg/value"
	"github.com/cdfkit/cdf-kit/pkg/vxr"
)

// RVDR is an r-variable descriptor. r-variables share their dimensions
// with every other r-variable in the file, carried in the GDR's
// size_r_dims rather than decoded per-variable.
type RVDR struct {
	DataType       value.DataType
	MaxRecord      int32
	VxrHead        int64
	VxrTail        int64
	Flags          VDRFlags
	NumElements    int32
	Num            int32
	CprSprOffset   int64
	BlockingFactor int32
	Name           string
	DimVariances   []bool
	PadValue       []value.Value

	VarDataLen int32
	Vxrs       []*vxr.VXR
}

// DecodeRVDR decodes one RVDR at the cursor's current position, derives
// its per-record payload length from the GDR's shared r-dimensions, and
// pushes data_type/var_data_len into ctx before the caller walks
// VxrHead. skipValueDecode leaves the pad value and every VVR payload
// reached from VxrHead unmaterialized (option.WithoutValueDecode).
func DecodeRVDR(cur *cdfio.Cursor, ctx *cdfctx.Context, skipValueDecode bool, log *logging.Logger) (*RVDR, int64, error) {
	common, err := decodeVDRCommon(cur, ctx, "RVDR", consts.RecordTypeRVDR, log)
	if err != nil {
		return nil, 0, err
	}

	sizeRDims, err := ctx.RDims()
	if err != nil {
		return nil, 0, err
	}
	dimVariances, err := decodeDimVariances(cur, "RVDR", int32(len(sizeRDims)))
	if err != nil {
		return nil, 0, err
	}

	padValue, err := decodePadValue(cur, ctx, common.flags.HasPadding, common.dataType, common.numElements, skipValueDecode)
	if err != nil {
		return nil, 0, err
	}

	varDataLen := common.numElements * activeDimSize(sizeRDims, dimVariances)
	ctx.SetVarData(common.dataType, varDataLen)

	vxrs, err := record.CollectChain(cur, ctx, common.vxrHead, 0, func(c *cdfio.Cursor, x *cdfctx.Context) (*vxr.VXR, int64, error) {
		return vxr.DecodeVXR(c, x, skipValueDecode, log)
	})
	if err != nil {
		return nil, 0, err
	}

	return &RVDR{
		DataType:       common.dataType,
		MaxRecord:      common.maxRecord,
		VxrHead:        common.vxrHead,
		VxrTail:        common.vxrTail,
		Flags:          common.flags,
		NumElements:    common.numElements,
		Num:            common.num,
		CprSprOffset:   common.cprSprOffset,
		BlockingFactor: common.blockingFactor,
		Name:           common.name,
		DimVariances:   dimVariances,
		PadValue:       padValue,
		VarDataLen:     varDataLen,
		Vxrs:           vxrs,
	}, common.next, nil
}
