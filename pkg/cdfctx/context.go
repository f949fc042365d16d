// Package cdfctx holds the Decoder Context: the "sliding dictionary" of
// file-global state that downstream records consume, grounded on the way
// rstms-iso-kit's iso9660/parser.Parser threads a single shared state
// (system area, path table, extensions) through its descriptor and
// directory decode calls instead of passing a dozen arguments by hand.
// Context has exactly one producer field group and several consumer call
// sites; reading an unset field is a MissingContext error, never a zero
// value silently substituted. The z-dimensions are the one exception:
// ZDims returns nil when no ZVDR has set them.
package cdfctx

import (
	"github.com/cdfkit/cdf-kit/pkg/cdferr"
	"github.com/cdfkit/cdf-kit/pkg/value"
)

// Version is the (major, release, increment) triple the magic prelude
// hints at and the CDR later confirms authoritatively.
type Version struct {
	Major     int32
	Release   int32
	Increment int32
}

// Major3OrLater reports whether offsets in this file are 8-byte (Int8)
// rather than 4-byte sign-extended Int4.
func (v Version) Major3OrLater() bool {
	return v.Major >= 3
}

// Context accumulates state as the decode proceeds. Every field except
// numZDims/sizeZDims is a pointer or has an "isSet" companion so a
// read-before-write is detectable rather than silently defaulting to
// zero; the z-dimension fields have no such guard.
type Context struct {
	version    *Version
	encoding   *value.Encoding
	endianness *value.Endianness
	rowMajor   *bool

	numRDims  *int32
	sizeRDims []int32

	numZDims  int32
	sizeZDims []int32

	varDataType value.DataType
	varDataLen  int32
	hasVarData  bool

	numRecords    int32
	hasNumRecords bool
}

// New returns an empty Context; every field is unset until its producer
// runs.
func New() *Context {
	return &Context{}
}

// SetVersion is called once, by the magic prelude (a hint) and again by
// the CDR (the authoritative value).
func (c *Context) SetVersion(v Version) {
	c.version = &v
}

// Version returns the most recently set version tuple.
func (c *Context) Version() (Version, error) {
	if c.version == nil {
		return Version{}, cdferr.NewMissingContext("version")
	}
	return *c.version, nil
}

// SetEncoding records the CDR's declared encoding and its resolved
// endianness together, since the two are always set in the same step.
func (c *Context) SetEncoding(enc value.Encoding, end value.Endianness) {
	c.encoding = &enc
	c.endianness = &end
}

// Encoding returns the file's declared hardware encoding.
func (c *Context) Encoding() (value.Encoding, error) {
	if c.encoding == nil {
		return 0, cdferr.NewMissingContext("encoding")
	}
	return *c.encoding, nil
}

// Endianness returns the byte order variable payload values decode
// under.
func (c *Context) Endianness() (value.Endianness, error) {
	if c.endianness == nil {
		return 0, cdferr.NewMissingContext("endianness")
	}
	return *c.endianness, nil
}

// SetRowMajor records the CDR's row-major flag. It is exposed to callers
// but never consulted by the decoder itself (spec.md §4.2).
func (c *Context) SetRowMajor(rowMajor bool) {
	c.rowMajor = &rowMajor
}

// RowMajor returns the CDR's row-major flag.
func (c *Context) RowMajor() (bool, error) {
	if c.rowMajor == nil {
		return false, cdferr.NewMissingContext("row_major")
	}
	return *c.rowMajor, nil
}

// SetRDims records the GDR's shared r-variable dimension sizes.
func (c *Context) SetRDims(sizeRDims []int32) {
	n := int32(len(sizeRDims))
	c.numRDims = &n
	c.sizeRDims = sizeRDims
}

// RDims returns the GDR's r-variable dimension sizes.
func (c *Context) RDims() ([]int32, error) {
	if c.numRDims == nil {
		return nil, cdferr.NewMissingContext("size_r_dims")
	}
	return c.sizeRDims, nil
}

// SetZDims records the current ZVDR's own dimension sizes, valid only
// while that ZVDR's VXR subtree is being walked.
func (c *Context) SetZDims(sizeZDims []int32) {
	c.numZDims = int32(len(sizeZDims))
	c.sizeZDims = sizeZDims
}

// ZDims returns the current ZVDR's dimension sizes, or nil if no ZVDR
// has set them; it never returns a MissingContext error.
func (c *Context) ZDims() []int32 {
	return c.sizeZDims
}

// SetVarData records the enclosing VDR's data type and per-record
// element count, consumed by every VVR record under that VDR's VXR
// subtree (spec.md §4.6-4.8: a VVR never re-reads its own data type).
func (c *Context) SetVarData(dataType value.DataType, dataLen int32) {
	c.varDataType = dataType
	c.varDataLen = dataLen
	c.hasVarData = true
}

// VarData returns the data type and per-record element count set by the
// enclosing VDR.
func (c *Context) VarData() (value.DataType, int32, error) {
	if !c.hasVarData {
		return 0, 0, cdferr.NewMissingContext("var_data_type")
	}
	return c.varDataType, c.varDataLen, nil
}

// SetNumRecords records the record count computed by a VXR entry
// (last-first+1), consumed by the VVR child it points to.
func (c *Context) SetNumRecords(n int32) {
	c.numRecords = n
	c.hasNumRecords = true
}

// NumRecords returns the record count set by the enclosing VXR entry.
func (c *Context) NumRecords() (int32, error) {
	if !c.hasNumRecords {
		return 0, cdferr.NewMissingContext("num_records")
	}
	return c.numRecords, nil
}

// OffsetWidth reports the byte width of version-aware offset/size
// fields: 8 once the confirmed version is >= 3, 4 otherwise. Callers
// that haven't set a version yet (i.e. while still reading the magic
// prelude's own width-4 words) never call this.
func (c *Context) OffsetWidth() (int, error) {
	v, err := c.Version()
	if err != nil {
		return 0, err
	}
	if v.Major3OrLater() {
		return 8, nil
	}
	return 4, nil
}
