// Package value implements the CDF Primitive Type Algebra: a closed family
// of scalar types plus a Value sum type, decoded from a byte cursor under
// either endianness. Primitives are kept as distinct nominal Go types (Int4
// and Uint4 share a width but are never interchangeable), mirroring the
// way rstms-iso-kit's encoding package keeps MarshalBothByteOrders32 and
// MarshalDateTime as separate typed helpers rather than one generic codec.
package value

import "github.com/cdfkit/cdf-kit/pkg/cdferr"

// DataType is the on-disk tag selecting a primitive's decode path (spec.md
// §4.1 tag table).
type DataType int32

const (
	TypeInt1       DataType = 1
	TypeInt2       DataType = 2
	TypeInt4       DataType = 4
	TypeInt8       DataType = 8
	TypeUint1      DataType = 11
	TypeUint2      DataType = 12
	TypeUint4      DataType = 14
	TypeReal4      DataType = 21
	TypeReal8      DataType = 22
	TypeEpoch      DataType = 31
	TypeEpoch16    DataType = 32
	TypeTimeTT2000 DataType = 33
	TypeByte       DataType = 41 // alias of Int1
	TypeFloat      DataType = 44 // alias of Real4
	TypeDouble     DataType = 45 // alias of Real8
	TypeChar       DataType = 51
	TypeUchar      DataType = 52
)

// Size returns the on-disk byte width of a single element of the given
// type. String-collapsed types (Char/Uchar) report their per-byte width;
// the Char collection rule combines N of them into one Value, so callers
// computing a buffer length still read Size()*numElements bytes.
func (t DataType) Size() (int, error) {
	switch t {
	case TypeInt1, TypeUint1, TypeByte, TypeChar, TypeUchar:
		return 1, nil
	case TypeInt2, TypeUint2:
		return 2, nil
	case TypeInt4, TypeUint4, TypeReal4, TypeFloat:
		return 4, nil
	case TypeInt8, TypeReal8, TypeEpoch, TypeTimeTT2000, TypeDouble:
		return 8, nil
	case TypeEpoch16:
		return 16, nil
	default:
		return 0, cdferr.NewBadDataTypeTag(int32(t))
	}
}

// IsCharLike reports whether t is collapsed into a single String by the
// Char/Uchar collection rule (spec.md §4.1).
func (t DataType) IsCharLike() bool {
	return t == TypeChar || t == TypeUchar
}

// Fixed-width primitive types. Each is a distinct nominal type so that,
// e.g., Int4 and Uint4 cannot be confused even though they share a width.
type (
	Int1  int8
	Int2  int16
	Int4  int32
	Int8  int64
	Uint1 uint8
	Uint2 uint16
	Uint4 uint32
	Real4 float32
	Real8 float64
	Char  byte
	Uchar byte

	// Epoch is milliseconds since 0 AD, stored as a raw float64 with no
	// calendar conversion performed (see SPEC_FULL.md's supplemented
	// features: the original cdf-rs decoder keeps this numeric too).
	Epoch float64

	// TimeTT2000 is nanoseconds since the J2000 epoch with leap seconds,
	// stored as a raw int64 with no leap-second conversion performed.
	TimeTT2000 int64
)

// Byte, Float, and Double are true aliases of Int1/Real4/Real8 per the
// spec's tag table ("41 -> Byte (alias of Int1)" etc.) — not merely
// same-width types, but the identical Go type.
type (
	Byte   = Int1
	Float  = Real4
	Double = Real8
)

// Epoch16 is two independent Real8 halves; the halves are never combined
// into a single 16-byte word (spec.md §4.1).
type Epoch16 struct {
	Seconds      Real8
	Milliseconds Real8
}

// String is the result of collapsing a vector of Char/Uchar into a single
// NUL-truncated, UTF-8-validated value (spec.md's Char/Uchar collection
// rule), or of decoding a fixed-width name/copyright field.
type String string

// Value is the CDF value sum type: every primitive above, plus String,
// implements it. Go has no native sum type, so — in the style of
// go/ast.Expr — a marker method closes the set to exactly these types.
type Value interface {
	isValue()
}

func (Int1) isValue()       {}
func (Int2) isValue()       {}
func (Int4) isValue()       {}
func (Int8) isValue()       {}
func (Uint1) isValue()      {}
func (Uint2) isValue()      {}
func (Uint4) isValue()      {}
func (Real4) isValue()      {}
func (Real8) isValue()      {}
func (Epoch) isValue()      {}
func (Epoch16) isValue()    {}
func (TimeTT2000) isValue() {}
func (Char) isValue()       {}
func (Uchar) isValue()      {}
func (String) isValue()     {}
