package token

// Flag is a bitset carried on a Token. Integer suffix bits and encoding
// bits are independent; exactly one encoding bit is set on a string or
// character token.
type Flag uint32

const (
	FlagUnsigned Flag = 1 << iota
	FlagLong
	FlagLongLong

	FlagPlain
	FlagUTF8
	FlagUTF16
	FlagUTF32
	FlagWide
)

// EncodingFlags is the mask of the five mutually-exclusive
// string/char encoding bits.
const EncodingFlags = FlagPlain | FlagUTF8 | FlagUTF16 | FlagUTF32 | FlagWide

func (f Flag) Has(bit Flag) bool { return f&bit != 0 }

// Encoding is the rank of a string/char literal's encoding, used for
// cross-prefix concatenation promotion (plain < u8 < u16 < u32 < wide).
type Encoding int

const (
	EncPlain Encoding = iota
	EncUTF8
	EncUTF16
	EncUTF32
	EncWide
)

func (e Encoding) String() string {
	switch e {
	case EncPlain:
		return "plain"
	case EncUTF8:
		return "u8"
	case EncUTF16:
		return "u16"
	case EncUTF32:
		return "u32"
	case EncWide:
		return "wide"
	default:
		return "?"
	}
}

// Flag returns the token.Flag bit corresponding to this encoding.
func (e Encoding) Flag() Flag {
	switch e {
	case EncPlain:
		return FlagPlain
	case EncUTF8:
		return FlagUTF8
	case EncUTF16:
		return FlagUTF16
	case EncUTF32:
		return FlagUTF32
	case EncWide:
		return FlagWide
	default:
		return 0
	}
}

// EncodingFromFlag recovers the Encoding from a token's flag bits.
func EncodingFromFlag(f Flag) Encoding {
	switch {
	case f.Has(FlagUTF8):
		return EncUTF8
	case f.Has(FlagUTF16):
		return EncUTF16
	case f.Has(FlagUTF32):
		return EncUTF32
	case f.Has(FlagWide):
		return EncWide
	default:
		return EncPlain
	}
}

// Base tags the radix of an integer constant.
type Base int

const (
	BaseNone Base = iota
	BaseDec
	BaseHex
	BaseOctal
	BaseBinary
)

// FloatStyle distinguishes decimal from hexadecimal floating literals.
type FloatStyle int

const (
	FloatDec FloatStyle = iota
	FloatHex
)

// FloatSuffix classifies a floating literal's suffix.
type FloatSuffix int

const (
	FloatSuffixNone FloatSuffix = iota
	FloatSuffixF        // f/F -> float
	FloatSuffixL        // l/L -> long double (see DESIGN.md open question 2)
	FloatSuffixF16      // GNU _Float16
	FloatSuffixF32      // GNU _Float32
	FloatSuffixF64      // GNU _Float64
	FloatSuffixF128     // GNU _Float128
	FloatSuffixF32x     // GNU _Float32x
	FloatSuffixF64x     // GNU _Float64x
	FloatSuffixF128x    // GNU _Float128x
	FloatSuffixDF       // C23 _Decimal32
	FloatSuffixDD       // C23 _Decimal64
	FloatSuffixDL       // C23 _Decimal128
)
