package smtfuzz

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
)

// OpKind identifies an operator. Backend-specific kinds carry a backend
// prefix after "OP_", e.g. "OP_Z3_BV_REDAND".
type OpKind string

// Core operators.
const (
	OpDistinct OpKind = "OP_DISTINCT"
	OpEqual    OpKind = "OP_EQUAL"
	OpITE      OpKind = "OP_ITE"
	OpUFApply  OpKind = "OP_UF_APPLY"

	OpForall OpKind = "OP_FORALL"
	OpExists OpKind = "OP_EXISTS"
)

// Boolean operators.
const (
	OpAnd     OpKind = "OP_AND"
	OpImplies OpKind = "OP_IMPLIES"
	OpNot     OpKind = "OP_NOT"
	OpOr      OpKind = "OP_OR"
	OpXor     OpKind = "OP_XOR"
)

// Array operators.
const (
	OpArraySelect OpKind = "OP_ARRAY_SELECT"
	OpArrayStore  OpKind = "OP_ARRAY_STORE"
)

// Bit-vector operators.
const (
	OpBVAdd         OpKind = "OP_BV_ADD"
	OpBVAnd         OpKind = "OP_BV_AND"
	OpBVAShr        OpKind = "OP_BV_ASHR"
	OpBVComp        OpKind = "OP_BV_COMP"
	OpBVConcat      OpKind = "OP_BV_CONCAT"
	OpBVExtract     OpKind = "OP_BV_EXTRACT"
	OpBVLShr        OpKind = "OP_BV_LSHR"
	OpBVMul         OpKind = "OP_BV_MUL"
	OpBVNand        OpKind = "OP_BV_NAND"
	OpBVNeg         OpKind = "OP_BV_NEG"
	OpBVNor         OpKind = "OP_BV_NOR"
	OpBVNot         OpKind = "OP_BV_NOT"
	OpBVOr          OpKind = "OP_BV_OR"
	OpBVRepeat      OpKind = "OP_BV_REPEAT"
	OpBVRotateLeft  OpKind = "OP_BV_ROTATE_LEFT"
	OpBVRotateRight OpKind = "OP_BV_ROTATE_RIGHT"
	OpBVSDiv        OpKind = "OP_BV_SDIV"
	OpBVSGe         OpKind = "OP_BV_SGE"
	OpBVSGt         OpKind = "OP_BV_SGT"
	OpBVShl         OpKind = "OP_BV_SHL"
	OpBVSignExtend  OpKind = "OP_BV_SIGN_EXTEND"
	OpBVSLe         OpKind = "OP_BV_SLE"
	OpBVSLt         OpKind = "OP_BV_SLT"
	OpBVSMod        OpKind = "OP_BV_SMOD"
	OpBVSRem        OpKind = "OP_BV_SREM"
	OpBVSub         OpKind = "OP_BV_SUB"
	OpBVUDiv        OpKind = "OP_BV_UDIV"
	OpBVUGe         OpKind = "OP_BV_UGE"
	OpBVUGt         OpKind = "OP_BV_UGT"
	OpBVULe         OpKind = "OP_BV_ULE"
	OpBVULt         OpKind = "OP_BV_ULT"
	OpBVURem        OpKind = "OP_BV_UREM"
	OpBVXnor        OpKind = "OP_BV_XNOR"
	OpBVXor         OpKind = "OP_BV_XOR"
	OpBVZeroExtend  OpKind = "OP_BV_ZERO_EXTEND"
)

// Integer operators.
const (
	OpIntAbs    OpKind = "OP_INT_ABS"
	OpIntAdd    OpKind = "OP_INT_ADD"
	OpIntDiv    OpKind = "OP_INT_DIV"
	OpIntGe     OpKind = "OP_INT_GE"
	OpIntGt     OpKind = "OP_INT_GT"
	OpIntLe     OpKind = "OP_INT_LE"
	OpIntLt     OpKind = "OP_INT_LT"
	OpIntMod    OpKind = "OP_INT_MOD"
	OpIntMul    OpKind = "OP_INT_MUL"
	OpIntNeg    OpKind = "OP_INT_NEG"
	OpIntSub    OpKind = "OP_INT_SUB"
	OpIntToReal OpKind = "OP_INT_TO_REAL"
)

// Real operators.
const (
	OpRealAdd   OpKind = "OP_REAL_ADD"
	OpRealDiv   OpKind = "OP_REAL_DIV"
	OpRealGe    OpKind = "OP_REAL_GE"
	OpRealGt    OpKind = "OP_REAL_GT"
	OpRealIsInt OpKind = "OP_REAL_IS_INT"
	OpRealLe    OpKind = "OP_REAL_LE"
	OpRealLt    OpKind = "OP_REAL_LT"
	OpRealMul   OpKind = "OP_REAL_MUL"
	OpRealNeg   OpKind = "OP_REAL_NEG"
	OpRealSub   OpKind = "OP_REAL_SUB"
	OpRealToInt OpKind = "OP_REAL_TO_INT"
)

// Floating-point operators.
const (
	OpFPAbs          OpKind = "OP_FP_ABS"
	OpFPAdd          OpKind = "OP_FP_ADD"
	OpFPDiv          OpKind = "OP_FP_DIV"
	OpFPEq           OpKind = "OP_FP_EQ"
	OpFPFma          OpKind = "OP_FP_FMA"
	OpFPFP           OpKind = "OP_FP_FP"
	OpFPGeq          OpKind = "OP_FP_GEQ"
	OpFPGt           OpKind = "OP_FP_GT"
	OpFPIsInf        OpKind = "OP_FP_IS_INF"
	OpFPIsNaN        OpKind = "OP_FP_IS_NAN"
	OpFPIsNeg        OpKind = "OP_FP_IS_NEG"
	OpFPIsNormal     OpKind = "OP_FP_IS_NORMAL"
	OpFPIsPos        OpKind = "OP_FP_IS_POS"
	OpFPIsSubnormal  OpKind = "OP_FP_IS_SUBNORMAL"
	OpFPIsZero       OpKind = "OP_FP_IS_ZERO"
	OpFPLeq          OpKind = "OP_FP_LEQ"
	OpFPLt           OpKind = "OP_FP_LT"
	OpFPMax          OpKind = "OP_FP_MAX"
	OpFPMin          OpKind = "OP_FP_MIN"
	OpFPMul          OpKind = "OP_FP_MUL"
	OpFPNeg          OpKind = "OP_FP_NEG"
	OpFPRem          OpKind = "OP_FP_REM"
	OpFPRTI          OpKind = "OP_FP_RTI"
	OpFPSqrt         OpKind = "OP_FP_SQRT"
	OpFPSub          OpKind = "OP_FP_SUB"
	OpFPToFPFromBV   OpKind = "OP_FP_TO_FP_FROM_BV"
	OpFPToFPFromFP   OpKind = "OP_FP_TO_FP_FROM_FP"
	OpFPToFPFromReal OpKind = "OP_FP_TO_FP_FROM_REAL"
	OpFPToFPFromSBV  OpKind = "OP_FP_TO_FP_FROM_SBV"
	OpFPToFPFromUBV  OpKind = "OP_FP_TO_FP_FROM_UBV"
	OpFPToReal       OpKind = "OP_FP_TO_REAL"
	OpFPToSBV        OpKind = "OP_FP_TO_SBV"
	OpFPToUBV        OpKind = "OP_FP_TO_UBV"
)

// String operators.
const (
	OpStrAt       OpKind = "OP_STR_AT"
	OpStrConcat   OpKind = "OP_STR_CONCAT"
	OpStrContains OpKind = "OP_STR_CONTAINS"
	OpStrFromInt  OpKind = "OP_STR_FROM_INT"
	OpStrIndexOf  OpKind = "OP_STR_INDEXOF"
	OpStrLe       OpKind = "OP_STR_LE"
	OpStrLen      OpKind = "OP_STR_LEN"
	OpStrLt       OpKind = "OP_STR_LT"
	OpStrPrefixOf OpKind = "OP_STR_PREFIXOF"
	OpStrReplace  OpKind = "OP_STR_REPLACE"
	OpStrSubstr   OpKind = "OP_STR_SUBSTR"
	OpStrSuffixOf OpKind = "OP_STR_SUFFIXOF"
	OpStrToInt    OpKind = "OP_STR_TO_INT"
)

// Datatype operators. These are built with named arguments rather than indices.
const (
	OpDTApplyCons   OpKind = "OP_DT_APPLY_CONS"
	OpDTApplySel    OpKind = "OP_DT_APPLY_SEL"
	OpDTApplyTester OpKind = "OP_DT_APPLY_TESTER"
)

// ArityN marks an operator accepting any number of arguments at or above
// its minimum arity.
const ArityN = -1

// Op describes the shape of an operator kind.
type Op struct {
	Kind     OpKind
	Arity    int // exact argument count, or ArityN
	NIndices int
	Result   SortKind
	Args     []SortKind // argument sort kinds; the last entry repeats for ArityN
	Theory   Theory
}

// ArgSortKind returns the expected sort kind of the i-th argument.
func (op *Op) ArgSortKind(i int) SortKind {
	if len(op.Args) == 0 {
		return SortAny
	} else if i < len(op.Args) {
		return op.Args[i]
	}
	return op.Args[len(op.Args)-1]
}

// String returns a short description of the operator.
func (op *Op) String() string {
	arity := fmt.Sprint(op.Arity)
	if op.Arity == ArityN {
		arity = "n"
	}
	return fmt.Sprintf("%s/%s[%d] -> %s", op.Kind, arity, op.NIndices, op.Result)
}

// OpKindManager receives operator kinds registered by a backend.
type OpKindManager interface {
	AddOpKind(op *Op) error
}

// OpKindRegistry is an OpKindManager that keeps operators sorted by kind.
// The zero value is not usable; use NewOpKindRegistry.
type OpKindRegistry struct {
	ops *immutable.SortedMap
}

// NewOpKindRegistry returns a registry containing ops.
func NewOpKindRegistry(ops ...*Op) *OpKindRegistry {
	r := &OpKindRegistry{ops: immutable.NewSortedMap(&opKindComparer{})}
	for _, op := range ops {
		r.ops = r.ops.Set(op.Kind, op)
	}
	return r
}

// AddOpKind registers op. Registering a kind twice is an error.
func (r *OpKindRegistry) AddOpKind(op *Op) error {
	if op == nil || op.Kind == "" {
		return Errorf("AddOpKind", "", "empty operator kind")
	} else if !strings.HasPrefix(string(op.Kind), "OP_") {
		return Errorf("AddOpKind", string(op.Kind), "operator kind must start with OP_")
	} else if _, ok := r.ops.Get(op.Kind); ok {
		return Errorf("AddOpKind", string(op.Kind), "operator kind already registered")
	}
	r.ops = r.ops.Set(op.Kind, op)
	return nil
}

// Op returns the operator registered under kind, or nil.
func (r *OpKindRegistry) Op(kind OpKind) *Op {
	if v, ok := r.ops.Get(kind); ok {
		return v.(*Op)
	}
	return nil
}

// Len returns the number of registered operators.
func (r *OpKindRegistry) Len() int { return r.ops.Len() }

// Kinds returns all registered kinds in sorted order.
func (r *OpKindRegistry) Kinds() []OpKind {
	kinds := make([]OpKind, 0, r.ops.Len())
	itr := r.ops.Iterator()
	for itr.First(); !itr.Done(); {
		k, _ := itr.Next()
		kinds = append(kinds, k.(OpKind))
	}
	return kinds
}

// opKindComparer orders operator kinds lexically. Implements immutable.Comparer.
type opKindComparer struct{}

func (c *opKindComparer) Compare(a, b interface{}) int {
	return strings.Compare(string(a.(OpKind)), string(b.(OpKind)))
}
