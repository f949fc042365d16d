// Package parser orchestrates a whole-file decode: the magic prelude,
// the CDR/GDR skeleton, every ADR/RVDR/ZVDR/UIR chain the GDR's heads
// name, and the CCR/CPR short-circuit for a whole-file-compressed CDF.
// Grounded on rstms-iso-kit's iso9660/parser.Parser, which likewise reads
// one fixed leading descriptor, then walks every chain it names.
package parser

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdferr"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/ccr"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/descriptor"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/option"
	"github.com/cdfkit/cdf-kit/pkg/record"
	"github.com/cdfkit/cdf-kit/pkg/uir"
)

// Result is the fully decoded file skeleton: every record reachable from
// the GDR's chain heads, resolved and attached.
type Result struct {
	CDR *descriptor.CDR
	GDR *descriptor.GDR

	Attributes []*descriptor.ADR
	RVariables []*descriptor.RVDR
	ZVariables []*descriptor.ZVDR
	FreeBlocks []*uir.UIR

	// CCR/CPR are set instead of the above when the file is
	// whole-file-compressed; decompression is out of scope (spec.md §1
	// Non-goals), so the compressed body is surfaced verbatim rather
	// than walked further.
	CCR *ccr.CCR
	CPR *ccr.CPR
}

// Prelude is the two-word magic header preceding the CDR (spec.md §3).
type Prelude struct {
	VersionWord    uint32
	CompressedWord uint32
	Compressed     bool
}

// decodePrelude reads the 8-byte magic prelude and derives a provisional
// Version hint: just enough (major-version only) to pick the right
// offset width for the CDR's own record_size field, which the CDR then
// overwrites with its authoritative (major, release, increment) triple.
func decodePrelude(cur *cdfio.Cursor, ctx *cdfctx.Context) (Prelude, error) {
	versionWord, err := record.ReadInt32(cur)
	if err != nil {
		return Prelude{}, err
	}
	compressedWord, err := record.ReadInt32(cur)
	if err != nil {
		return Prelude{}, err
	}

	var majorHint int32
	switch uint32(versionWord) {
	case consts.MagicVersionV3:
		majorHint = 3
	case consts.MagicVersionV26:
		majorHint = 2
	case consts.MagicVersionV2:
		majorHint = 2
	default:
		return Prelude{}, cdferr.NewInvalidMagic(uint32(versionWord))
	}
	ctx.SetVersion(cdfctx.Version{Major: majorHint})

	compressed := uint32(compressedWord) == consts.MagicCompressed
	if !compressed && uint32(compressedWord) != consts.MagicCompressedNone {
		return Prelude{}, cdferr.NewInvalidMagic(uint32(compressedWord))
	}

	return Prelude{
		VersionWord:    uint32(versionWord),
		CompressedWord: uint32(compressedWord),
		Compressed:     compressed,
	}, nil
}

// Parse decodes the whole file skeleton starting at the cursor's current
// position (expected to be offset 0).
func Parse(cur *cdfio.Cursor, opts *option.DecodeOptions) (*Result, error) {
	if opts == nil {
		opts = option.Defaults()
	}
	log := opts.Logger
	if log == nil {
		log = logging.DefaultLogger()
	}
	ctx := cdfctx.New()

	prelude, err := decodePrelude(cur, ctx)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded magic prelude", "compressed", prelude.Compressed)

	if prelude.Compressed {
		return parseCompressed(cur, ctx, log)
	}
	return parseUncompressed(cur, ctx, opts, log)
}

// parseCompressed decodes only the CCR wrapper and its CPR compression
// parameters; the CDR/GDR skeleton inside the compressed body is never
// reached (spec.md §1 Non-goals: decompression is out of scope).
func parseCompressed(cur *cdfio.Cursor, ctx *cdfctx.Context, log *logging.Logger) (*Result, error) {
	c, err := ccr.DecodeCCR(cur, ctx, log)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded CCR", "cpr_offset", c.CprOffset, "uncompressed_size", c.UncompressedSize)

	if err := cur.SeekAbs(c.CprOffset); err != nil {
		return nil, err
	}
	cpr, err := ccr.DecodeCPR(cur, ctx, log)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded CPR", "compression_type", cpr.CompressionType)

	return &Result{CCR: c, CPR: cpr}, nil
}

// parseUncompressed decodes the CDR, the GDR, and every chain the GDR
// names.
func parseUncompressed(cur *cdfio.Cursor, ctx *cdfctx.Context, opts *option.DecodeOptions, log *logging.Logger) (*Result, error) {
	cdr, err := descriptor.DecodeCDR(cur, ctx, log)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded CDR", "version", cdr.Version, "encoding", cdr.Encoding)

	if err := cur.SeekAbs(cdr.GdrOffset); err != nil {
		return nil, err
	}
	gdr, err := descriptor.DecodeGDR(cur, ctx, log)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded GDR", "num_rvars", gdr.NumRVars, "num_zvars", gdr.NumZVars, "num_attributes", gdr.NumAttributes)

	attrs, err := record.CollectChain(cur, ctx, gdr.AdrHead, opts.MaxChainLength, func(c *cdfio.Cursor, x *cdfctx.Context) (*descriptor.ADR, int64, error) {
		return descriptor.DecodeADR(c, x, opts.SkipValueDecode, log)
	})
	if err != nil {
		return nil, err
	}
	log.Debug("walked ADR chain", "count", len(attrs))

	rvars, err := record.CollectChain(cur, ctx, gdr.RvdrHead, opts.MaxChainLength, func(c *cdfio.Cursor, x *cdfctx.Context) (*descriptor.RVDR, int64, error) {
		return descriptor.DecodeRVDR(c, x, opts.SkipValueDecode, log)
	})
	if err != nil {
		return nil, err
	}
	log.Debug("walked RVDR chain", "count", len(rvars))

	zvars, err := record.CollectChain(cur, ctx, gdr.ZvdrHead, opts.MaxChainLength, func(c *cdfio.Cursor, x *cdfctx.Context) (*descriptor.ZVDR, int64, error) {
		return descriptor.DecodeZVDR(c, x, opts.SkipValueDecode, log)
	})
	if err != nil {
		return nil, err
	}
	log.Debug("walked ZVDR chain", "count", len(zvars))

	free, err := record.CollectChain(cur, ctx, gdr.UirHead, opts.MaxChainLength, func(c *cdfio.Cursor, x *cdfctx.Context) (*uir.UIR, int64, error) {
		return uir.DecodeUIR(c, x, log)
	})
	if err != nil {
		return nil, err
	}
	log.Debug("walked UIR chain", "count", len(free))

	return &Result{
		CDR:        cdr,
		GDR:        gdr,
		Attributes: attrs,
		RVariables: rvars,
		ZVariables: zvars,
		FreeBlocks: free,
	}, nil
}
