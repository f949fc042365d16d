package descriptor

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdferr"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/record"
	"github.com/cdfkit/cdf-kit/pkg/value"
	"github.com/cdfkit/cdf-kit/pkg/vxr"
)

// ZVDR is a z-variable descriptor: unlike an RVDR it carries its own
// dimension sizes, introduced in CDF 2.2 to let each variable have an
// independent shape.
type ZVDR struct {
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
	SizeZDims      []int32
	DimVariances   []bool
	PadValue       []value.Value

	VarDataLen int32
	Vxrs       []*vxr.VXR
}

// DecodeZVDR decodes one ZVDR at the cursor's current position,
// including its own num_z_dims/size_z_dims, and pushes this variable's
// dimensions, data_type, and var_data_len into ctx before the caller
// walks VxrHead. skipValueDecode leaves the pad value and every VVR
// payload reached from VxrHead unmaterialized (option.WithoutValueDecode).
func DecodeZVDR(cur *cdfio.Cursor, ctx *cdfctx.Context, skipValueDecode bool, log *logging.Logger) (*ZVDR, int64, error) {
	common, err := decodeVDRCommon(cur, ctx, "ZVDR", consts.RecordTypeZVDR, log)
	if err != nil {
		return nil, 0, err
	}

	numZDims, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	nZDims, err := cdferr.ToCount("ZVDR", "num_z_dims", int64(numZDims))
	if err != nil {
		return nil, 0, err
	}
	sizeZDims := make([]int32, nZDims)
	for i := range sizeZDims {
		sizeZDims[i], err = record.ReadInt32(cur)
		if err != nil {
			return nil, 0, err
		}
	}

	dimVariances, err := decodeDimVariances(cur, "ZVDR", numZDims)
	if err != nil {
		return nil, 0, err
	}

	padValue, err := decodePadValue(cur, ctx, common.flags.HasPadding, common.dataType, common.numElements, skipValueDecode)
	if err != nil {
		return nil, 0, err
	}

	ctx.SetZDims(sizeZDims)
	varDataLen := common.numElements * activeDimSize(sizeZDims, dimVariances)
	ctx.SetVarData(common.dataType, varDataLen)

	vxrs, err := record.CollectChain(cur, ctx, common.vxrHead, 0, func(c *cdfio.Cursor, x *cdfctx.Context) (*vxr.VXR, int64, error) {
		return vxr.DecodeVXR(c, x, skipValueDecode, log)
	})
	if err != nil {
		return nil, 0, err
	}

	return &ZVDR{
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
		SizeZDims:      sizeZDims,
		DimVariances:   dimVariances,
		PadValue:       padValue,
		VarDataLen:     varDataLen,
		Vxrs:           vxrs,
	}, common.next, nil
}
