// Package record implements the shape every CDF record shares: a
// version-aware record_size field, a big-endian record_type tag checked
// against the caller's expectation, and a version-aware offset decoder
// used by every file-offset and size field in the format. Grounded on
// rstms-iso-kit's iso9660/descriptor.VolumeDescriptorHeader, which
// likewise factors the few bytes common to every descriptor type into
// one decode step shared by Primary/Supplementary/Boot/Partition.
package record

import (
	"encoding/binary"

	"github.com/cdfkit/cdf-kit/pkg/cdferr"
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
)

// Header is the record_size/record_type pair common to every CDF
// record. Both fields are always big-endian, regardless of the file's
// declared payload encoding (spec.md §4.3).
type Header struct {
	RecordSize int64
	RecordType int32
}

// ReadHeader decodes a Header at the cursor's current position.
func ReadHeader(cur *cdfio.Cursor, ctx *cdfctx.Context) (Header, error) {
	size, err := ReadOffset(cur, ctx)
	if err != nil {
		return Header{}, err
	}
	typeBuf, err := cur.ReadExact(4)
	if err != nil {
		return Header{}, err
	}
	return Header{
		RecordSize: size,
		RecordType: int32(binary.BigEndian.Uint32(typeBuf)),
	}, nil
}

// ExpectType validates a decoded record_type against the tag a given
// record class requires, failing with a typed BadRecordType error naming
// both.
func ExpectType(recordClass string, expected, actual int32) error {
	if expected != actual {
		return cdferr.NewBadRecordType(recordClass, expected, actual)
	}
	return nil
}

// ReadOffset decodes a single version-aware offset/size field: an Int8
// when the context's confirmed version is >= 3, otherwise an Int4
// sign-extended to 64 bits (spec.md §4.2's "version-aware offset
// decode" helper). Every record_size, next-record pointer, and
// head/offset field in the format goes through this one helper.
func ReadOffset(cur *cdfio.Cursor, ctx *cdfctx.Context) (int64, error) {
	width, err := ctx.OffsetWidth()
	if err != nil {
		return 0, err
	}
	buf, err := cur.ReadExact(width)
	if err != nil {
		return 0, err
	}
	if width == 8 {
		return int64(binary.BigEndian.Uint64(buf)), nil
	}
	return int64(int32(binary.BigEndian.Uint32(buf))), nil
}

// ReadInt32 decodes a plain big-endian 4-byte signed field (record_type
// tags, flags, data_type tags, RFU words — none of these are
// version-aware).
func ReadInt32(cur *cdfio.Cursor) (int32, error) {
	buf, err := cur.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf)), nil
}
