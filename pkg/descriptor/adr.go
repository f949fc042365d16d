package descriptor

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
	"github.com/cdfkit/cdf-kit/pkg/helpers"
	"github.com/cdfkit/cdf-kit/pkg/logging"
	"github.com/cdfkit/cdf-kit/pkg/record"
	"github.com/cdfkit/cdf-kit/pkg/validation"
)

// ADR is the Attribute Descriptor Record. After decoding the fixed
// header, DecodeADR walks its AGREDR and AZEDR chains and attaches the
// resulting entry vectors, so num_gr_entries/num_z_entries can be
// cross-checked against the decoded chain lengths (spec.md §8 item 4).
type ADR struct {
	Scope        int32
	Num          int32
	NumGrEntries int32
	MaxGrEntry   int32
	NumZEntries  int32
	MaxZEntry    int32
	Name         string

	GrEntries []*AttributeEntry
	ZEntries  []*AttributeEntry
}

// DecodeADR decodes one ADR and its AGREDR/AZEDR chains at the cursor's
// current position, returning the file offset of the next ADR in the
// chain (consts.NoNext if this is the last). skipValueDecode leaves
// every entry's value vector unmaterialized (option.WithoutValueDecode).
func DecodeADR(cur *cdfio.Cursor, ctx *cdfctx.Context, skipValueDecode bool, log *logging.Logger) (*ADR, int64, error) {
	header, err := record.ReadHeader(cur, ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := record.ExpectType("ADR", consts.RecordTypeADR, header.RecordType); err != nil {
		return nil, 0, err
	}
	log.Trace("decoding record", "record_class", "ADR", "record_type", header.RecordType, "record_size", header.RecordSize)

	next, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, 0, err
	}
	agredrHead, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, 0, err
	}
	scope, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	num, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	numGrEntries, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	maxGrEntry, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}

	rfuA, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	if err := validation.CheckReservedInt32("ADR", "rfu_a", rfuA, 0); err != nil {
		return nil, 0, err
	}

	azedrHead, err := record.ReadOffset(cur, ctx)
	if err != nil {
		return nil, 0, err
	}
	numZEntries, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	maxZEntry, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}

	rfuE, err := record.ReadInt32(cur)
	if err != nil {
		return nil, 0, err
	}
	if err := validation.CheckReservedInt32("ADR", "rfu_e", rfuE, -1); err != nil {
		return nil, 0, err
	}

	version, err := ctx.Version()
	if err != nil {
		return nil, 0, err
	}
	nameWidth := consts.NameWidthLegacy
	if version.Major3OrLater() {
		nameWidth = consts.NameWidthV3
	}
	nameBuf, err := cur.ReadExact(nameWidth)
	if err != nil {
		return nil, 0, err
	}
	name, err := helpers.FixedString("ADR", "name", nameBuf)
	if err != nil {
		return nil, 0, err
	}

	grEntries, err := record.CollectChain(cur, ctx, agredrHead, 0, func(c *cdfio.Cursor, x *cdfctx.Context) (*AttributeEntry, int64, error) {
		return decodeAttributeEntry(c, x, "AGREDR", consts.RecordTypeAGREDR, skipValueDecode, log)
	})
	if err != nil {
		return nil, 0, err
	}
	zEntries, err := record.CollectChain(cur, ctx, azedrHead, 0, func(c *cdfio.Cursor, x *cdfctx.Context) (*AttributeEntry, int64, error) {
		return decodeAttributeEntry(c, x, "AZEDR", consts.RecordTypeAZEDR, skipValueDecode, log)
	})
	if err != nil {
		return nil, 0, err
	}

	return &ADR{
		Scope:        scope,
		Num:          num,
		NumGrEntries: numGrEntries,
		MaxGrEntry:   maxGrEntry,
		NumZEntries:  numZEntries,
		MaxZEntry:    maxZEntry,
		Name:         name,
		GrEntries:    grEntries,
		ZEntries:     zEntries,
	}, next, nil
}
