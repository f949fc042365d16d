// Package consts holds the fixed numeric constants of the CDF binary
// format: magic words, record type tags, reserved-field constants, and the
// fixed string widths that vary only with file version.
package consts

const (
	// MagicVersionV3 identifies CDF >= 3.0 (first magic word).
	MagicVersionV3 uint32 = 0xCDF30001
	// MagicVersionV26 identifies CDF 2.6.x (first magic word).
	MagicVersionV26 uint32 = 0xCDF26002
	// MagicVersionV2 identifies CDF < 2.6 (first magic word).
	MagicVersionV2 uint32 = 0x0000FFFF

	// MagicCompressedNone is the second magic word for an uncompressed file.
	MagicCompressedNone uint32 = 0x0000FFFF
	// MagicCompressed is the second magic word for a whole-file-compressed CDF.
	MagicCompressed uint32 = 0xCCCC0001
)

// Record type tags (CDF spec §6 record tag table).
const (
	RecordTypeCDR   int32 = 1
	RecordTypeGDR   int32 = 2
	RecordTypeRVDR  int32 = 3
	RecordTypeADR   int32 = 4
	RecordTypeAGREDR int32 = 5
	RecordTypeVXR   int32 = 6
	RecordTypeVVR   int32 = 7
	RecordTypeZVDR  int32 = 8
	RecordTypeAZEDR int32 = 9
	RecordTypeCCR   int32 = 10
	RecordTypeCPR   int32 = 11
	RecordTypeSPR   int32 = 12
	RecordTypeCVVR  int32 = 13
	RecordTypeUIR   int32 = -1
)

// CDR flag bits (spec §6).
const (
	CDRFlagRowMajor     = 1 << 0
	CDRFlagSingleFile   = 1 << 1
	CDRFlagHasChecksum  = 1 << 2
	CDRFlagChecksumMD5  = 1 << 3
)

// VDR flag bits (spec §6).
const (
	VDRFlagRecordVariance = 1 << 0
	VDRFlagHasPadding     = 1 << 1
	VDRFlagIsCompressed   = 1 << 2
)

// Absence sentinels.
const (
	// NoNext is the sentinel for "end of linked list" on next-record offsets.
	NoNext int64 = 0
	// NoOffset is the sentinel for "absent" VXR first/last/offset slots and
	// for the RVDR/ZVDR CprSprOffset field.
	NoOffset int64 = -1
)

// Fixed string widths, keyed by file version (spec §4.1).
const (
	NameWidthV3       = 256
	NameWidthLegacy   = 64
	CopyrightWidthNew = 256
	CopyrightWidthOld = 1945

	// CopyrightWidthCutoffMajor/CopyrightWidthCutoffRelease are the
	// (major, release) at which the copyright field changes from 1945 to
	// 256 bytes: releases >= 2.5.0 use the new width.
	CopyrightWidthCutoffMajor   = 2
	CopyrightWidthCutoffRelease = 5
)

// MagicPreludeSize is the size in bytes of the two-word magic prelude that
// precedes the CDR.
const MagicPreludeSize = 8

// Compression type tags carried by a CPR (spec §4.9).
const (
	CompressionNone  int32 = 0
	CompressionRLE   int32 = 1
	CompressionHuff  int32 = 2
	CompressionAHuff int32 = 3
	CompressionGzip  int32 = 5
)
