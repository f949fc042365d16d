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

// buildZVDRWithVxrChain mirrors buildRVDRWithVxrChain but carries its own
// num_z_dims/size_z_dims rather than reading the GDR's shared r-dims.
func buildZVDRWithVxrChain(t *testing.T) []byte {
	t.Helper()

	const zvdrFixedLen = 12 + 8 + 4 + 4 + 8 + 8 + 4 + 4 + 4 + 4 + 4 + 4 + 4 + 8 + 4 // 84
	const zvdrSize = zvdrFixedLen + consts.NameWidthV3 + 4 + 4 + 4 // +num_z_dims+size_z_dims[0]+dim_variances[0]

	const vxrOffset = zvdrSize
	const vxrSize = 8 + 4 + 8 + 4 + 4 + 4 + 4 + 8 // 44
	const vvrOffset = vxrOffset + vxrSize
	const vvrSize = 8 + 4 + 4*2 // header + 1 record * 2 Int4 elements

	buf := make([]byte, vvrOffset+vvrSize)

	z := buf
	binary.BigEndian.PutUint64(z[0:8], uint64(zvdrSize))
	binary.BigEndian.PutUint32(z[8:12], uint32(consts.RecordTypeZVDR))
	binary.BigEndian.PutUint64(z[12:20], uint64(consts.NoNext)) // next
	binary.BigEndian.PutUint32(z[20:24], uint32(value.TypeInt4))
	binary.BigEndian.PutUint32(z[24:28], 0)                 // max_record
	binary.BigEndian.PutUint64(z[28:36], uint64(vxrOffset)) // vxr_head
	binary.BigEndian.PutUint64(z[36:44], uint64(vxrOffset)) // vxr_tail
	binary.BigEndian.PutUint32(z[44:48], 0)                 // flags
	binary.BigEndian.PutUint32(z[48:52], 0)                 // sparse_records
	binary.BigEndian.PutUint32(z[52:56], 0)                 // rfu_b
	binary.BigEndian.PutUint32(z[56:60], 0xFFFFFFFF)        // rfu_c = -1
	binary.BigEndian.PutUint32(z[60:64], 0xFFFFFFFF)        // rfu_f = -1
	binary.BigEndian.PutUint32(z[64:68], 1)                 // num_elements
	binary.BigEndian.PutUint32(z[68:72], 1)                 // num
	binary.BigEndian.PutUint64(z[72:80], uint64(consts.NoOffset))
	binary.BigEndian.PutUint32(z[80:84], 1) // blocking_factor
	copy(z[84:], []byte("flux"))

	afterName := zvdrFixedLen + consts.NameWidthV3
	binary.BigEndian.PutUint32(z[afterName:afterName+4], 1)           // num_z_dims
	binary.BigEndian.PutUint32(z[afterName+4:afterName+8], 2)         // size_z_dims[0]
	binary.BigEndian.PutUint32(z[afterName+8:afterName+12], 0xFFFFFFFF) // dim_variances[0] = -1

	v := buf[vxrOffset:]
	binary.BigEndian.PutUint64(v[0:8], uint64(vxrSize))
	binary.BigEndian.PutUint32(v[8:12], uint32(consts.RecordTypeVXR))
	binary.BigEndian.PutUint64(v[12:20], uint64(consts.NoNext))
	binary.BigEndian.PutUint32(v[20:24], 1) // num_entries
	binary.BigEndian.PutUint32(v[24:28], 1) // num_used_entries
	binary.BigEndian.PutUint32(v[28:32], 0) // first[0]
	binary.BigEndian.PutUint32(v[32:36], 0) // last[0] -- one record
	binary.BigEndian.PutUint64(v[36:44], uint64(vvrOffset))

	vv := buf[vvrOffset:]
	binary.BigEndian.PutUint64(vv[0:8], uint64(vvrSize))
	binary.BigEndian.PutUint32(vv[8:12], uint32(consts.RecordTypeVVR))
	binary.BigEndian.PutUint32(vv[12:16], 7)
	binary.BigEndian.PutUint32(vv[16:20], 9)

	return buf
}

func TestDecodeZVDR_WalksVxrChainEndToEnd(t *testing.T) {
	ctx := cdfctx.New()
	ctx.SetVersion(cdfctx.Version{Major: 3})
	ctx.SetEncoding(value.EncodingNetwork, value.BigEndian)

	data := buildZVDRWithVxrChain(t)
	cur := cdfio.NewCursor(bytes.NewReader(data))

	zvdr, next, err := DecodeZVDR(cur, ctx, false, logging.DefaultLogger())
	require.NoError(t, err)
	require.Equal(t, int64(consts.NoNext), next)
	require.Equal(t, "flux", zvdr.Name)
	require.Equal(t, []int32{2}, zvdr.SizeZDims)
	require.Equal(t, int32(2), zvdr.VarDataLen) // num_elements(1) * variant dim size(2)

	require.Len(t, zvdr.Vxrs, 1)
	tree := zvdr.Vxrs[0]
	require.Len(t, tree.Entries, 1)
	records := tree.Entries[0].Child.VVR.Records
	require.Len(t, records, 1)
	require.Equal(t, []value.Value{value.Int4(7), value.Int4(9)}, records[0].Data)
}
