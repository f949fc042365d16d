package value

import "github.com/cdfkit/cdf-kit/pkg/cdferr"

// Endianness is the resolved byte order variable payload values decode
// under, derived once from the file's declared Encoding (spec.md §6
// encoding table) and cached in the decoder context.
type Endianness int

const (
	BigEndian Endianness = iota
	LittleEndian
)

// Encoding is the on-disk CDR encoding tag (spec.md §6).
type Encoding int32

const (
	EncodingNetwork    Encoding = 1
	EncodingSun        Encoding = 2
	EncodingVAX        Encoding = 3
	EncodingDECStation Encoding = 4
	EncodingSGi        Encoding = 5
	EncodingIBMPC      Encoding = 6
	EncodingIBMRS      Encoding = 7
	EncodingMacPPC     Encoding = 9
	EncodingHP         Encoding = 11
	EncodingNeXT       Encoding = 12
	EncodingAlphaOSF1  Encoding = 13
	EncodingAlphaVMSd  Encoding = 14
	EncodingAlphaVMSg  Encoding = 15
	EncodingAlphaVMSi  Encoding = 16
	EncodingARMLittle  Encoding = 17
	EncodingARMBig     Encoding = 18
	EncodingIA64VMSi   Encoding = 19
	EncodingIA64VMSd   Encoding = 20
	EncodingIA64VMSg   Encoding = 21
	EncodingUnspecified Encoding = 0
)

// ResolveEndianness maps an encoding tag to the byte order variable
// payload values must be decoded under, rejecting VAX/D_FLOAT/G_FLOAT and
// the unspecified encoding with a typed UnsupportedEncoding error (the
// "non-IEEE-754 floating-point representation is not supported" boundary
// named in spec.md §4.1 and §8 item 8).
func ResolveEndianness(enc Encoding) (Endianness, error) {
	switch enc {
	case EncodingNetwork, EncodingSun, EncodingSGi, EncodingIBMRS, EncodingMacPPC, EncodingNeXT, EncodingARMBig:
		return BigEndian, nil
	case EncodingDECStation, EncodingIBMPC, EncodingAlphaOSF1, EncodingAlphaVMSi, EncodingARMLittle, EncodingIA64VMSi:
		return LittleEndian, nil
	default:
		return 0, cdferr.NewUnsupportedEncoding(int32(enc))
	}
}
