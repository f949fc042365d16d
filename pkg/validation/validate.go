// Package validation checks reserved-for-future-use fields against their
// documented constants. The teacher's package by this name validated
// ISO9660 file/directory identifiers against the standard's allowed
// character sets (consts.D_CHARACTERS et al.); CDF has no analogous
// identifier alphabet, but it has the same shape of problem — a field that
// must equal one of a small set of documented constants, with a typed
// error when it doesn't.
package validation

import "github.com/cdfkit/cdf-kit/pkg/cdferr"

// CheckReservedInt32 confirms a reserved-for-future-use int32 field
// carries its documented constant.
func CheckReservedInt32(recordClass, field string, got, want int32) error {
	if got != want {
		return cdferr.NewBadReservedValue(recordClass, field, int64(want), int64(got))
	}
	return nil
}
