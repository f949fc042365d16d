package cdferr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		InvalidMagic:        "InvalidMagic",
		BadRecordType:       "BadRecordType",
		BadReservedValue:    "BadReservedValue",
		UnsupportedEncoding: "UnsupportedEncoding",
		BadDataTypeTag:      "BadDataTypeTag",
		InvalidUTF8:         "InvalidUTF8",
		IntegerOutOfRange:   "IntegerOutOfRange",
		MissingContext:      "MissingContext",
		IO:                  "Io",
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}

	require.Equal(t, "Kind(99)", Kind(99).String())
}

func TestNewInvalidMagic(t *testing.T) {
	err := NewInvalidMagic(0xDEADBEEF)
	require.EqualError(t, err, "cdf: invalid magic word 0xDEADBEEF")

	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, InvalidMagic, cerr.Kind)
}

func TestNewBadRecordType(t *testing.T) {
	err := NewBadRecordType("CDR", 1, 2)
	require.EqualError(t, err, "cdf: CDR: expected record_type 1, got 2")
}

func TestNewBadReservedValue(t *testing.T) {
	err := NewBadReservedValue("GDR", "rfu_c", 0, 5)
	require.EqualError(t, err, `cdf: GDR: reserved field "rfu_c" expected 0, got 5`)
}

func TestNewMissingContext(t *testing.T) {
	err := NewMissingContext("version")
	require.EqualError(t, err, "cdf: missing version in decoding context")
}

func TestNewIO_UnwrapsCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewIO(cause)
	require.EqualError(t, err, "cdf: io: unexpected EOF")
	require.ErrorIs(t, err, cause)
}

func TestNewUnsupportedEncoding(t *testing.T) {
	err := NewUnsupportedEncoding(3)
	require.Contains(t, err.Error(), "unsupported encoding tag 3")
}

func TestNewIntegerOutOfRange(t *testing.T) {
	err := NewIntegerOutOfRange("VDR", "num", -1)
	require.EqualError(t, err, `cdf: VDR: field "num" out of range for unsigned conversion: -1`)
}
