// Package option provides functional options for Open, following the
// OpenOption/OpenOptions pattern of rstms-iso-kit's pkg/option package.
package option

import "github.com/cdfkit/cdf-kit/pkg/logging"

// DecodeOptions controls how Open walks a CDF file.
type DecodeOptions struct {
	// Logger receives one Trace per record decoded and one Debug per
	// completed top-level chain walk (ADR, RVDR, ZVDR, UIR). Defaults to
	// a discarding logger.
	Logger *logging.Logger
	// SkipValueDecode leaves VVR/AGREDR/AZEDR payload bytes undecoded
	// (Value slices empty) when the caller only needs the metadata
	// skeleton and wants to avoid materializing every primitive.
	SkipValueDecode bool
	// MaxChainLength bounds how many records each top-level chain walk
	// (ADR, RVDR, ZVDR, UIR) follows before it stops and keeps the
	// records read so far, guarding against a corrupt file whose linked
	// list never reaches a zero "next" sentinel. The AGREDR, AZEDR and
	// VXR chains are not bounded by it. Zero means unbounded.
	MaxChainLength int
}

// DecodeOption mutates a DecodeOptions in place.
type DecodeOption func(*DecodeOptions)

// WithLogger installs a logger for the decode.
func WithLogger(logger *logging.Logger) DecodeOption {
	return func(o *DecodeOptions) {
		o.Logger = logger
	}
}

// WithoutValueDecode skips materializing variable and attribute-entry
// payload values, decoding only the record skeleton.
func WithoutValueDecode() DecodeOption {
	return func(o *DecodeOptions) {
		o.SkipValueDecode = true
	}
}

// WithMaxChainLength bounds linked-list traversal length.
func WithMaxChainLength(n int) DecodeOption {
	return func(o *DecodeOptions) {
		o.MaxChainLength = n
	}
}

// Defaults returns the baseline DecodeOptions Open starts from.
func Defaults() *DecodeOptions {
	return &DecodeOptions{
		Logger: logging.DefaultLogger(),
	}
}
