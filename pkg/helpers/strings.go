// Package helpers holds small byte-buffer utilities shared by the record
// decoders.
package helpers

import (
	"bytes"
	"unicode/utf8"

	"github.com/cdfkit/cdf-kit/pkg/cdferr"
)

// FixedString reads a NUL-terminated, NUL-padded fixed-width string out of
// a buffer of exactly width bytes: it truncates at the first NUL byte and
// validates that the remainder is UTF-8, per spec.md §4.1.
//
// recordClass and field are used only to annotate a returned error.
func FixedString(recordClass, field string, data []byte) (string, error) {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	if !utf8.Valid(data) {
		return "", cdferr.NewInvalidUTF8(recordClass, field)
	}
	return string(data), nil
}
