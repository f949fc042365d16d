package value

import (
	"encoding/binary"
	"math"
)

// ToBE/ToLE serialize a primitive to its on-disk byte representation.
// FromBE/FromLE are the corresponding constructors. These are used
// directly by the round-trip property in spec.md §8 item 6 and indirectly
// by every decode_vec_{be,le} call in decode.go.

func (v Int1) ToBE() []byte { return []byte{byte(v)} }
func (v Int1) ToLE() []byte { return []byte{byte(v)} }
func Int1FromBE(b []byte) Int1 { return Int1(int8(b[0])) }
func Int1FromLE(b []byte) Int1 { return Int1(int8(b[0])) }

func (v Int2) ToBE() []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}
func (v Int2) ToLE() []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(v))
	return b
}
func Int2FromBE(b []byte) Int2 { return Int2(int16(binary.BigEndian.Uint16(b))) }
func Int2FromLE(b []byte) Int2 { return Int2(int16(binary.LittleEndian.Uint16(b))) }

func (v Int4) ToBE() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}
func (v Int4) ToLE() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}
func Int4FromBE(b []byte) Int4 { return Int4(int32(binary.BigEndian.Uint32(b))) }
func Int4FromLE(b []byte) Int4 { return Int4(int32(binary.LittleEndian.Uint32(b))) }

func (v Int8) ToBE() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
func (v Int8) ToLE() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return b
}
func Int8FromBE(b []byte) Int8 { return Int8(int64(binary.BigEndian.Uint64(b))) }
func Int8FromLE(b []byte) Int8 { return Int8(int64(binary.LittleEndian.Uint64(b))) }

func (v Uint1) ToBE() []byte { return []byte{byte(v)} }
func (v Uint1) ToLE() []byte { return []byte{byte(v)} }
func Uint1FromBE(b []byte) Uint1 { return Uint1(b[0]) }
func Uint1FromLE(b []byte) Uint1 { return Uint1(b[0]) }

func (v Uint2) ToBE() []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(v))
	return b
}
func (v Uint2) ToLE() []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(v))
	return b
}
func Uint2FromBE(b []byte) Uint2 { return Uint2(binary.BigEndian.Uint16(b)) }
func Uint2FromLE(b []byte) Uint2 { return Uint2(binary.LittleEndian.Uint16(b)) }

func (v Uint4) ToBE() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}
func (v Uint4) ToLE() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}
func Uint4FromBE(b []byte) Uint4 { return Uint4(binary.BigEndian.Uint32(b)) }
func Uint4FromLE(b []byte) Uint4 { return Uint4(binary.LittleEndian.Uint32(b)) }

func (v Real4) ToBE() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, math.Float32bits(float32(v)))
	return b
}
func (v Real4) ToLE() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v)))
	return b
}
func Real4FromBE(b []byte) Real4 { return Real4(math.Float32frombits(binary.BigEndian.Uint32(b))) }
func Real4FromLE(b []byte) Real4 { return Real4(math.Float32frombits(binary.LittleEndian.Uint32(b))) }

func (v Real8) ToBE() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, math.Float64bits(float64(v)))
	return b
}
func (v Real8) ToLE() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(float64(v)))
	return b
}
func Real8FromBE(b []byte) Real8 { return Real8(math.Float64frombits(binary.BigEndian.Uint64(b))) }
func Real8FromLE(b []byte) Real8 { return Real8(math.Float64frombits(binary.LittleEndian.Uint64(b))) }

func (v Epoch) ToBE() []byte { return Real8(v).ToBE() }
func (v Epoch) ToLE() []byte { return Real8(v).ToLE() }
func EpochFromBE(b []byte) Epoch { return Epoch(Real8FromBE(b)) }
func EpochFromLE(b []byte) Epoch { return Epoch(Real8FromLE(b)) }

func (v TimeTT2000) ToBE() []byte { return Int8(v).ToBE() }
func (v TimeTT2000) ToLE() []byte { return Int8(v).ToLE() }
func TimeTT2000FromBE(b []byte) TimeTT2000 { return TimeTT2000(Int8FromBE(b)) }
func TimeTT2000FromLE(b []byte) TimeTT2000 { return TimeTT2000(Int8FromLE(b)) }

// Epoch16 is laid out as two consecutive Real8 halves; each half is
// byte-swapped independently (spec.md §4.1) — the two are never combined
// into one 16-byte word.
func (v Epoch16) ToBE() []byte {
	b := make([]byte, 16)
	copy(b[0:8], v.Seconds.ToBE())
	copy(b[8:16], v.Milliseconds.ToBE())
	return b
}
func (v Epoch16) ToLE() []byte {
	b := make([]byte, 16)
	copy(b[0:8], v.Seconds.ToLE())
	copy(b[8:16], v.Milliseconds.ToLE())
	return b
}
func Epoch16FromBE(b []byte) Epoch16 {
	return Epoch16{Seconds: Real8FromBE(b[0:8]), Milliseconds: Real8FromBE(b[8:16])}
}
func Epoch16FromLE(b []byte) Epoch16 {
	return Epoch16{Seconds: Real8FromLE(b[0:8]), Milliseconds: Real8FromLE(b[8:16])}
}

