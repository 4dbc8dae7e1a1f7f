package smtfuzz

// Term is a backend-owned handle for an expression.
//
// Equality is the backend's structural equality, so two differently built
// terms may compare equal after native simplification.
type Term interface {
	Hash() uint64
	Equals(other Term) bool
	String() string

	IsArray() bool
	IsBool() bool
	IsBV() bool
	IsFP() bool
	IsFun() bool
	IsInt() bool
	IsReal() bool
	IsRM() bool
	IsString() bool

	BVSize() uint32
	FPExpSize() uint32
	FPSigSize() uint32
}

// SpecialValueKind names a canonical constant of a sort family.
type SpecialValueKind string

// Bit-vector special values.
const (
	SpecialValueBVZero      SpecialValueKind = "bv-zero"
	SpecialValueBVOne       SpecialValueKind = "bv-one"
	SpecialValueBVOnes      SpecialValueKind = "bv-ones"
	SpecialValueBVMinSigned SpecialValueKind = "bv-min-signed"
	SpecialValueBVMaxSigned SpecialValueKind = "bv-max-signed"
)

// Floating-point special values.
const (
	SpecialValueFPNaN     SpecialValueKind = "fp-nan"
	SpecialValueFPPosInf  SpecialValueKind = "fp-pos-inf"
	SpecialValueFPNegInf  SpecialValueKind = "fp-neg-inf"
	SpecialValueFPPosZero SpecialValueKind = "fp-pos-zero"
	SpecialValueFPNegZero SpecialValueKind = "fp-neg-zero"
)

// Rounding-mode special values.
const (
	SpecialValueRMRNA SpecialValueKind = "rm-rna"
	SpecialValueRMRNE SpecialValueKind = "rm-rne"
	SpecialValueRMRTN SpecialValueKind = "rm-rtn"
	SpecialValueRMRTP SpecialValueKind = "rm-rtp"
	SpecialValueRMRTZ SpecialValueKind = "rm-rtz"
)

// SpecialValueKinds returns the special values defined for a sort kind.
func SpecialValueKinds(kind SortKind) []SpecialValueKind {
	switch kind {
	case SortBV:
		return []SpecialValueKind{
			SpecialValueBVZero, SpecialValueBVOne, SpecialValueBVOnes,
			SpecialValueBVMinSigned, SpecialValueBVMaxSigned,
		}
	case SortFP:
		return []SpecialValueKind{
			SpecialValueFPNaN, SpecialValueFPPosInf, SpecialValueFPNegInf,
			SpecialValueFPPosZero, SpecialValueFPNegZero,
		}
	case SortRM:
		return []SpecialValueKind{
			SpecialValueRMRNA, SpecialValueRMRNE, SpecialValueRMRTN,
			SpecialValueRMRTP, SpecialValueRMRTZ,
		}
	default:
		return nil
	}
}
