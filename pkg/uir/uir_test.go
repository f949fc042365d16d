package uir

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/logging"
)

func TestDecodeUIR(t *testing.T) {
	ctx := cdfctx.New()
	ctx.SetVersion(cdfctx.Version{Major: 3})

	remainder := []byte{1, 2, 3, 4}
	buf := make([]byte, 28+len(remainder))
	binary.BigEndian.PutUint64(buf[0:8], uint64(len(buf)))
	binary.BigEndian.PutUint32(buf[8:12], uint32(consts.RecordTypeUIR))
	binary.BigEndian.PutUint64(buf[12:20], 500) // next
	binary.BigEndian.PutUint64(buf[20:28], 100) // prev
	copy(buf[28:], remainder)

	cur := cdfio.NewCursor(bytes.NewReader(buf))
	u, next, err := DecodeUIR(cur, ctx, logging.DefaultLogger())
	require.NoError(t, err)
	require.Equal(t, int64(500), next)
	require.Equal(t, int64(500), u.Next)
	require.Equal(t, int64(100), u.Prev)
	require.Equal(t, remainder, u.Remainder)
}

func TestDecodeUnsociableUIR(t *testing.T) {
	ctx := cdfctx.New()
	ctx.SetVersion(cdfctx.Version{Major: 3})

	remainder := []byte{9, 9, 9}
	buf := make([]byte, 12+len(remainder))
	binary.BigEndian.PutUint64(buf[0:8], uint64(len(buf)))
	binary.BigEndian.PutUint32(buf[8:12], uint32(consts.RecordTypeUIR))
	copy(buf[12:], remainder)

	cur := cdfio.NewCursor(bytes.NewReader(buf))
	u, err := DecodeUnsociableUIR(cur, ctx, logging.DefaultLogger())
	require.NoError(t, err)
	require.Equal(t, remainder, u.Remainder)
}
