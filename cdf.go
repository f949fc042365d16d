// Package cdf decodes NASA Common Data Format files: the CDR/GDR
// metadata skeleton, attribute chains, and variable descriptors together
// with their variable-index trees. Grounded on rstms-iso-kit's top-level
// iso.go, which exposes a single Open entry point over its parser
// package; this module keeps that shape and swaps ISO9660 semantics for
// CDF's.
package cdf

import (
	"io"

	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/ccr"
	"github.com/cdfkit/cdf-kit/pkg/descriptor"
	"github.com/cdfkit/cdf-kit/pkg/option"
	"github.com/cdfkit/cdf-kit/pkg/parser"
	"github.com/cdfkit/cdf-kit/pkg/uir"
)

// CDF is the decoded skeleton of a (possibly whole-file-compressed) CDF
// file.
type CDF struct {
	CDR *descriptor.CDR
	GDR *descriptor.GDR

	Attributes []*descriptor.ADR
	RVariables []*descriptor.RVDR
	ZVariables []*descriptor.ZVDR
	FreeBlocks []*uir.UIR

	// Compressed is true when the file is wrapped in a whole-file CCR;
	// in that case every other field above is nil and only CCR/CPR are
	// populated (decompression is out of scope).
	Compressed bool
	CCR        *ccr.CCR
	CPR        *ccr.CPR
}

// Open decodes r, which must support seeking (a memory-mapped or
// on-disk file, or an in-memory byte buffer). r is read but never
// retained past Open's return.
func Open(r io.ReadSeeker, opts ...option.DecodeOption) (*CDF, error) {
	o := option.Defaults()
	for _, opt := range opts {
		opt(o)
	}

	cur := cdfio.NewCursor(r)
	res, err := parser.Parse(cur, o)
	if err != nil {
		return nil, err
	}

	return &CDF{
		CDR:        res.CDR,
		GDR:        res.GDR,
		Attributes: res.Attributes,
		RVariables: res.RVariables,
		ZVariables: res.ZVariables,
		FreeBlocks: res.FreeBlocks,
		Compressed: res.CCR != nil,
		CCR:        res.CCR,
		CPR:        res.CPR,
	}, nil
}

// OpenFile memory-maps path and decodes it, the way rstms-iso-kit's
// Open(path string) wraps a bare os.File for callers that don't already
// have a ReadSeeker in hand.
func OpenFile(path string, opts ...option.DecodeOption) (*CDF, error) {
	mf, err := cdfio.OpenMmap(path)
	if err != nil {
		return nil, err
	}
	defer mf.Close()

	o := option.Defaults()
	for _, opt := range opts {
		opt(o)
	}

	res, err := parser.Parse(mf.Cursor, o)
	if err != nil {
		return nil, err
	}

	return &CDF{
		CDR:        res.CDR,
		GDR:        res.GDR,
		Attributes: res.Attributes,
		RVariables: res.RVariables,
		ZVariables: res.ZVariables,
		FreeBlocks: res.FreeBlocks,
		Compressed: res.CCR != nil,
		CCR:        res.CCR,
		CPR:        res.CPR,
	}, nil
}
