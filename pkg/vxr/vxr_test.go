package vxr

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

// buildVXRWithVVRChild assembles a minimal VXR (one present entry,
// first=0, last=1) pointing at a VVR leaf holding two Int4 records.
func buildVXRWithVVRChild(t *testing.T) []byte {
	t.Helper()

	const vxrSize = 8 + 4 + 8 + 4 + 4 + 4 + 4 + 8 // 44
	const vvrOffset = vxrSize
	const vvrSize = 8 + 4 + 4 + 4 // record_size+record_type+two Int4 values

	buf := make([]byte, vvrOffset+vvrSize)

	binary.BigEndian.PutUint64(buf[0:8], uint64(vxrSize))
	binary.BigEndian.PutUint32(buf[8:12], uint32(consts.RecordTypeVXR))
	binary.BigEndian.PutUint64(buf[12:20], uint64(consts.NoNext))
	binary.BigEndian.PutUint32(buf[20:24], 1) // num_entries
	binary.BigEndian.PutUint32(buf[24:28], 1) // num_used_entries
	binary.BigEndian.PutUint32(buf[28:32], 0) // first[0]
	binary.BigEndian.PutUint32(buf[32:36], 1) // last[0]
	binary.BigEndian.PutUint64(buf[36:44], uint64(vvrOffset))

	binary.BigEndian.PutUint64(buf[vvrOffset:vvrOffset+8], uint64(vvrSize))
	binary.BigEndian.PutUint32(buf[vvrOffset+8:vvrOffset+12], uint32(consts.RecordTypeVVR))
	binary.BigEndian.PutUint32(buf[vvrOffset+12:vvrOffset+16], 100)
	binary.BigEndian.PutUint32(buf[vvrOffset+16:vvrOffset+20], 200)

	return buf
}

func TestDecodeVXR_NumRecordsOffByOneCorrection(t *testing.T) {
	ctx := cdfctx.New()
	ctx.SetVersion(cdfctx.Version{Major: 3})
	ctx.SetEncoding(value.EncodingNetwork, value.BigEndian)
	ctx.SetVarData(value.TypeInt4, 1)

	data := buildVXRWithVVRChild(t)
	cur := cdfio.NewCursor(bytes.NewReader(data))

	tree, next, err := DecodeVXR(cur, ctx, false, logging.DefaultLogger())
	require.NoError(t, err)
	require.Equal(t, int64(consts.NoNext), next)
	require.Len(t, tree.Entries, 1)

	entry := tree.Entries[0]
	require.Equal(t, int32(0), entry.First)
	require.Equal(t, int32(1), entry.Last)
	require.NotNil(t, entry.Child)
	require.NotNil(t, entry.Child.VVR)

	// first=0, last=1 must yield 2 records (last-first+1), not 1
	// (last-first), correcting the original decoder's off-by-one.
	require.Len(t, entry.Child.VVR.Records, 2)
	require.Equal(t, value.Int4(100), entry.Child.VVR.Records[0].Data[0])
	require.Equal(t, value.Int4(200), entry.Child.VVR.Records[1].Data[0])
}

func TestDecodeVXR_AbsentEntrySkipsChild(t *testing.T) {
	ctx := cdfctx.New()
	ctx.SetVersion(cdfctx.Version{Major: 3})

	const vxrSize = 8 + 4 + 8 + 4 + 4 + 4 + 4 + 8
	buf := make([]byte, vxrSize)
	binary.BigEndian.PutUint64(buf[0:8], uint64(vxrSize))
	binary.BigEndian.PutUint32(buf[8:12], uint32(consts.RecordTypeVXR))
	binary.BigEndian.PutUint64(buf[12:20], uint64(consts.NoNext))
	binary.BigEndian.PutUint32(buf[20:24], 1)
	binary.BigEndian.PutUint32(buf[24:28], 0)
	binary.BigEndian.PutUint32(buf[28:32], 0)
	binary.BigEndian.PutUint32(buf[32:36], 0)
	binary.BigEndian.PutUint64(buf[36:44], uint64(consts.NoOffset))

	cur := cdfio.NewCursor(bytes.NewReader(buf))
	tree, _, err := DecodeVXR(cur, ctx, false, logging.DefaultLogger())
	require.NoError(t, err)
	require.Nil(t, tree.Entries[0].Child)
}
