package value

import (
	"bytes"
	"unicode/utf8"

	"github.com/cdfkit/cdf-kit/pkg/cdferr"
)

// ByteSource is the minimal read surface DecodeVec{BE,LE} need from a
// cursor: read exactly n bytes or fail. cdfio.Cursor satisfies it.
type ByteSource interface {
	ReadExact(n int) ([]byte, error)
}

// DecodeVecBE decodes numElements primitives of dataType from r, reading
// multi-byte fields as big-endian.
func DecodeVecBE(r ByteSource, dataType DataType, numElements int) ([]Value, error) {
	return decodeVec(r, dataType, numElements, BigEndian)
}

// DecodeVecLE decodes numElements primitives of dataType from r, reading
// multi-byte fields as little-endian.
func DecodeVecLE(r ByteSource, dataType DataType, numElements int) ([]Value, error) {
	return decodeVec(r, dataType, numElements, LittleEndian)
}

func decodeVec(r ByteSource, dataType DataType, numElements int, end Endianness) ([]Value, error) {
	width, err := dataType.Size()
	if err != nil {
		return nil, err
	}

	n, err := cdferr.ToCount("Value", "num_elements", int64(numElements))
	if err != nil {
		return nil, err
	}

	if dataType.IsCharLike() {
		buf, err := r.ReadExact(width * n)
		if err != nil {
			return nil, err
		}
		if i := bytes.IndexByte(buf, 0); i >= 0 {
			buf = buf[:i]
		}
		if !utf8.Valid(buf) {
			return nil, cdferr.NewInvalidUTF8("Value", "char_vector")
		}
		return []Value{String(buf)}, nil
	}

	out := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		buf, err := r.ReadExact(width)
		if err != nil {
			return nil, err
		}
		v, err := decodeOne(buf, dataType, end)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SkipVec advances past numElements primitives of dataType without
// materializing them, for callers that only need the record skeleton
// (option.WithoutValueDecode). Consumes exactly the bytes DecodeVecBE/LE
// would have read.
func SkipVec(r ByteSource, dataType DataType, numElements int) error {
	width, err := dataType.Size()
	if err != nil {
		return err
	}
	n, err := cdferr.ToCount("Value", "num_elements", int64(numElements))
	if err != nil {
		return err
	}
	_, err = r.ReadExact(width * n)
	return err
}

func decodeOne(buf []byte, dataType DataType, end Endianness) (Value, error) {
	be := end == BigEndian
	switch dataType {
	case TypeInt1, TypeByte:
		if be {
			return Int1FromBE(buf), nil
		}
		return Int1FromLE(buf), nil
	case TypeInt2:
		if be {
			return Int2FromBE(buf), nil
		}
		return Int2FromLE(buf), nil
	case TypeInt4:
		if be {
			return Int4FromBE(buf), nil
		}
		return Int4FromLE(buf), nil
	case TypeInt8:
		if be {
			return Int8FromBE(buf), nil
		}
		return Int8FromLE(buf), nil
	case TypeUint1:
		if be {
			return Uint1FromBE(buf), nil
		}
		return Uint1FromLE(buf), nil
	case TypeUint2:
		if be {
			return Uint2FromBE(buf), nil
		}
		return Uint2FromLE(buf), nil
	case TypeUint4:
		if be {
			return Uint4FromBE(buf), nil
		}
		return Uint4FromLE(buf), nil
	case TypeReal4, TypeFloat:
		if be {
			return Real4FromBE(buf), nil
		}
		return Real4FromLE(buf), nil
	case TypeReal8, TypeDouble:
		if be {
			return Real8FromBE(buf), nil
		}
		return Real8FromLE(buf), nil
	case TypeEpoch:
		if be {
			return EpochFromBE(buf), nil
		}
		return EpochFromLE(buf), nil
	case TypeEpoch16:
		if be {
			return Epoch16FromBE(buf), nil
		}
		return Epoch16FromLE(buf), nil
	case TypeTimeTT2000:
		if be {
			return TimeTT2000FromBE(buf), nil
		}
		return TimeTT2000FromLE(buf), nil
	default:
		return nil, cdferr.NewBadDataTypeTag(int32(dataType))
	}
}
