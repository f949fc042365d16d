package ccr

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

func buildCPR(t *testing.T, compressionType, level int32) []byte {
	t.Helper()
	buf := make([]byte, 8+4+20)
	binary.BigEndian.PutUint64(buf[0:8], uint64(len(buf)))
	binary.BigEndian.PutUint32(buf[8:12], uint32(consts.RecordTypeCPR))
	binary.BigEndian.PutUint32(buf[12:16], uint32(compressionType))
	binary.BigEndian.PutUint32(buf[16:20], 0) // parameter_count
	binary.BigEndian.PutUint32(buf[20:24], 0) // rfu_a
	binary.BigEndian.PutUint32(buf[24:28], uint32(level))
	return buf
}

func TestDecodeCPR_GzipLevelRange(t *testing.T) {
	ctx := cdfctx.New()
	ctx.SetVersion(cdfctx.Version{Major: 3})

	t.Run("valid gzip level", func(t *testing.T) {
		cur := cdfio.NewCursor(bytes.NewReader(buildCPR(t, consts.CompressionGzip, 6)))
		cpr, err := DecodeCPR(cur, ctx, logging.DefaultLogger())
		require.NoError(t, err)
		require.Equal(t, CompressionType(consts.CompressionGzip), cpr.CompressionType)
		require.Equal(t, int32(6), cpr.CompressionLevel)
	})

	t.Run("gzip level 0 rejected", func(t *testing.T) {
		cur := cdfio.NewCursor(bytes.NewReader(buildCPR(t, consts.CompressionGzip, 0)))
		_, err := DecodeCPR(cur, ctx, logging.DefaultLogger())
		require.Error(t, err)
	})

	t.Run("gzip level 10 rejected", func(t *testing.T) {
		cur := cdfio.NewCursor(bytes.NewReader(buildCPR(t, consts.CompressionGzip, 10)))
		_, err := DecodeCPR(cur, ctx, logging.DefaultLogger())
		require.Error(t, err)
	})

	t.Run("non-gzip requires level 0", func(t *testing.T) {
		cur := cdfio.NewCursor(bytes.NewReader(buildCPR(t, consts.CompressionRLE, 0)))
		cpr, err := DecodeCPR(cur, ctx, logging.DefaultLogger())
		require.NoError(t, err)
		require.Equal(t, CompressionType(consts.CompressionRLE), cpr.CompressionType)
	})

	t.Run("non-gzip with nonzero level rejected", func(t *testing.T) {
		cur := cdfio.NewCursor(bytes.NewReader(buildCPR(t, consts.CompressionRLE, 3)))
		_, err := DecodeCPR(cur, ctx, logging.DefaultLogger())
		require.Error(t, err)
	})
}

func TestDecodeCCR(t *testing.T) {
	ctx := cdfctx.New()
	ctx.SetVersion(cdfctx.Version{Major: 3})

	payload := []byte("compressed-bytes")
	headerBytes := 32
	buf := make([]byte, headerBytes+len(payload))
	binary.BigEndian.PutUint64(buf[0:8], uint64(len(buf)))
	binary.BigEndian.PutUint32(buf[8:12], uint32(consts.RecordTypeCCR))
	binary.BigEndian.PutUint64(buf[12:20], 999) // cpr_offset
	binary.BigEndian.PutUint64(buf[20:28], uint64(len(payload)))
	binary.BigEndian.PutUint32(buf[28:32], 0) // rfu_a
	copy(buf[32:], payload)

	cur := cdfio.NewCursor(bytes.NewReader(buf))
	c, err := DecodeCCR(cur, ctx, logging.DefaultLogger())
	require.NoError(t, err)
	require.Equal(t, int64(999), c.CprOffset)
	require.Equal(t, int64(len(payload)), c.UncompressedSize)
	require.Equal(t, payload, c.Data)
}
