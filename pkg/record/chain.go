package record

import (
	"github.com/cdfkit/cdf-kit/pkg/cdfctx"
	"github.com/cdfkit/cdf-kit/pkg/cdfio"
	"github.com/cdfkit/cdf-kit/pkg/consts"
)

// DecodeOneFunc decodes a single record of a linked list at the cursor's
// current position (already seeked to the record's offset) and reports
// the offset of the next record in the chain, or consts.NoNext.
type DecodeOneFunc[T any] func(cur *cdfio.Cursor, ctx *cdfctx.Context) (rec T, next int64, err error)

// CollectChain walks a singly linked list starting at head, the generic
// traversal named in spec.md §4.3: seek, decode one record, follow its
// next-record pointer until the chain reaches consts.NoNext. maxLen
// bounds the walk against a corrupt file whose chain never terminates;
// zero means unbounded.
func CollectChain[T any](cur *cdfio.Cursor, ctx *cdfctx.Context, head int64, maxLen int, decodeOne DecodeOneFunc[T]) ([]T, error) {
	var out []T
	offset := head
	for offset != consts.NoNext {
		if maxLen > 0 && len(out) >= maxLen {
			break
		}
		if err := cur.SeekAbs(offset); err != nil {
			return nil, err
		}
		rec, next, err := decodeOne(cur, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
		offset = next
	}
	return out, nil
}
