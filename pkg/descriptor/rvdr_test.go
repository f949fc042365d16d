package descriptor

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/value"
)

// buildRVDRWithVxrChain assembles one RVDR (one variant r-dimension, no
// padding) whose vxr_head points at a VXR with one present entry
// (first=0, last=1) resolving to a VVR leaf holding two records of two
// Int4 elements each -- a full VDR -> VXR -> VVR chain end to end.
func buildRVDRWithVxrChain(t *testing.T) []byte {
	t.Helper()

	const rvdrFixedLen = 12 + 8 + 4 + 4 + 8 + 8 + 4 + 4 + 4 + 4 + 4 + 4 + 4 + 8 + 4 // 84
	const rvdrSize = rvdrFixedLen + consts.NameWidthV3 + 4 // +1 dim_variance entry

	const vxrOffset = rvdrSize
	const vxrSize = 8 + 4 + 8 + 4 + 4 + 4 + 4 + 8 // 44
	const vvrOffset = vxrOffset + vxrSize
	const vvrSize = 8 + 4 + 4*4 // header + 2 records * 2 Int4 elements

	buf := make([]byte, vvrOffset+vvrSize)

	r := buf
	binary.BigEndian.PutUint64(r[0:8], uint64(rvdrSize))
	binary.BigEndian.PutUint32(r[8:12], uint32(consts.RecordTypeRVDR))
	binary.BigEndian.PutUint64(r[12:20], uint64(consts.NoNext)) // next
	binary.BigEndian.PutUint32(r[20:24], uint32(value.TypeInt4))
	binary.BigEndian.PutUint32(r[24:28], 1) // max_record
	binary.BigEndian.PutUint64(r[28:36], uint64(vxrOffset))      // vxr_head
	binary.BigEndian.PutUint64(r[36:44], uint64(vxrOffset))      // vxr_tail
	binary.BigEndian.PutUint32(r[44:48], 0)                      // flags
	binary.BigEndian.PutUint32(r[48:52], 0)                      // sparse_records
	binary.BigEndian.PutUint32(r[52:56], 0)                      // rfu_b
	binary.BigEndian.PutUint32(r[56:60], 0xFFFFFFFF)              // rfu_c = -1
	binary.BigEndian.PutUint32(r[60:64], 0xFFFFFFFF)              // rfu_f = -1
	binary.BigEndian.PutUint32(r[64:68], 1)                       // num_elements
	binary.BigEndian.PutUint32(r[68:72], 1)                       // num
	binary.BigEndian.PutUint64(r[72:80], uint64(consts.NoOffset)) // cpr_spr_offset
	binary.BigEndian.PutUint32(r[80:84], 1)                       // blocking_factor
	copy(r[84:], []byte("density"))
	binary.BigEndian.PutUint32(r[rvdrFixedLen+consts.NameWidthV3:rvdrFixedLen+consts.NameWidthV3+4], 0xFFFFFFFF) // dim_variances[0] = -1 (variant)

	v := buf[vxrOffset:]
	binary.BigEndian.PutUint64(v[0:8], uint64(vxrSize))
	binary.BigEndian.PutUint32(v[8:12], uint32(consts.RecordTypeVXR))
	binary.BigEndian.PutUint64(v[12:20], uint64(consts.NoNext))
	binary.BigEndian.PutUint32(v[20:24], 1) // num_entries
	binary.BigEndian.PutUint32(v[24:28], 1) // num_used_entries
	binary.BigEndian.PutUint32(v[28:32], 0) // first[0]
	binary.BigEndian.PutUint32(v[32:36], 1) // last[0]
	binary.BigEndian.PutUint64(v[36:44], uint64(vvrOffset))

	vv := buf[vvrOffset:]
	binary.BigEndian.PutUint64(vv[0:8], uint64(vvrSize))
	binary.BigEndian.PutUint32(vv[8:12], uint32(consts.RecordTypeVVR))
	binary.BigEndian.PutUint32(vv[12:16], 10)
	binary.BigEndian.PutUint32(vv[16:20], 20)
	binary.BigEndian.PutUint32(vv[20:24], 30)
	binary.BigEndian.PutUint32(vv[24:28], 40)

	return buf
}

func TestDecodeRVDR_WalksVxrChainEndToEnd(t *testing.T) {
	ctx := cdfctx.New()
	ctx.SetVersion(cdfctx.Version{Major: 3})
	ctx.SetEncoding(value.EncodingNetwork, value.BigEndian)
	ctx.SetRDims([]int32{2})

	data := buildRVDRWithVxrChain(t)
	cur := cdfio.NewCursor(bytes.NewReader(data))

	rvdr, next, err := DecodeRVDR(cur, ctx, false, logging.DefaultLogger())
	require.NoError(t, err)
	require.Equal(t, int64(consts.NoNext), next)
	require.Equal(t, "density", rvdr.Name)
	require.Equal(t, int32(2), rvdr.VarDataLen) // num_elements(1) * variant dim size(2)

	require.Len(t, rvdr.Vxrs, 1)
	tree := rvdr.Vxrs[0]
	require.Len(t, tree.Entries, 1)
	require.NotNil(t, tree.Entries[0].Child)
	require.NotNil(t, tree.Entries[0].Child.VVR)

	records := tree.Entries[0].Child.VVR.Records
	require.Len(t, records, 2)
	require.Equal(t, []value.Value{value.Int4(10), value.Int4(20)}, records[0].Data)
	require.Equal(t, []value.Value{value.Int4(30), value.Int4(40)}, records[1].Data)
}
