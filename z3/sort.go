package z3

/*
#include <z3.h>
*/
import "C"

import (
	"github.com/benbjohnson/smtfuzz"
)

// Ensure sort implements interface.
var _ smtfuzz.Sort = (*Sort)(nil)

// Sort wraps a native Z3 sort.
//
// Z3 has no function sorts, so function sorts are built as (n-dimensional)
// array sorts. Such sorts carry the original domain and codomain so they can
// be told apart from arrays and so that their per-argument domain survives
// flattening.
type Sort struct {
	ctx *Context
	raw C.Z3_sort

	fun      bool
	domain   []*Sort
	codomain *Sort
}

// Hash returns the native hash of the sort.
func (s *Sort) Hash() uint64 {
	return uint64(C.Z3_get_ast_hash(s.ctx.raw, C.Z3_sort_to_ast(s.ctx.raw, s.raw)))
}

// Equals returns true if other wraps a sort Z3 considers equal.
func (s *Sort) Equals(other smtfuzz.Sort) bool {
	o, ok := other.(*Sort)
	if !ok || o == nil || o.ctx != s.ctx {
		return false
	}
	return bool(C.Z3_is_eq_sort(s.ctx.raw, s.raw, o.raw))
}

// String returns the SMT-LIB rendering of the sort.
func (s *Sort) String() string { return s.ctx.sortToString(s.raw) }

// Kind returns the sort family.
func (s *Sort) Kind() smtfuzz.SortKind {
	if s.fun {
		return smtfuzz.SortFun
	}

	switch s.ctx.sortKind(s.raw) {
	case C.Z3_BOOL_SORT:
		return smtfuzz.SortBool
	case C.Z3_INT_SORT:
		return smtfuzz.SortInt
	case C.Z3_REAL_SORT:
		return smtfuzz.SortReal
	case C.Z3_BV_SORT:
		return smtfuzz.SortBV
	case C.Z3_ARRAY_SORT:
		return smtfuzz.SortArray
	case C.Z3_DATATYPE_SORT:
		return smtfuzz.SortDT
	case C.Z3_UNINTERPRETED_SORT:
		return smtfuzz.SortUninterpreted
	case C.Z3_FLOATING_POINT_SORT:
		return smtfuzz.SortFP
	case C.Z3_ROUNDING_MODE_SORT:
		return smtfuzz.SortRM
	case C.Z3_SEQ_SORT:
		if s.ctx.isStringSort(s.raw) {
			return smtfuzz.SortString
		}
		return smtfuzz.SortSeq
	case C.Z3_RE_SORT:
		return smtfuzz.SortRegLan
	default:
		return smtfuzz.SortAny
	}
}

func (s *Sort) IsArray() bool         { return s.Kind() == smtfuzz.SortArray }
func (s *Sort) IsBool() bool          { return s.Kind() == smtfuzz.SortBool }
func (s *Sort) IsBV() bool            { return s.Kind() == smtfuzz.SortBV }
func (s *Sort) IsDT() bool            { return s.Kind() == smtfuzz.SortDT }
func (s *Sort) IsFP() bool            { return s.Kind() == smtfuzz.SortFP }
func (s *Sort) IsFun() bool           { return s.fun }
func (s *Sort) IsInt() bool           { return s.Kind() == smtfuzz.SortInt }
func (s *Sort) IsReal() bool          { return s.Kind() == smtfuzz.SortReal }
func (s *Sort) IsRM() bool            { return s.Kind() == smtfuzz.SortRM }
func (s *Sort) IsString() bool        { return s.Kind() == smtfuzz.SortString }
func (s *Sort) IsUninterpreted() bool { return s.Kind() == smtfuzz.SortUninterpreted }

// BVSize returns the width of a bit-vector sort.
func (s *Sort) BVSize() uint32 {
	smtfuzz.Assert(s.IsBV(), "BVSize on %s sort", s.Kind())
	return s.ctx.bvSortSize(s.raw)
}

// FPExpSize returns the exponent width of a floating-point sort.
func (s *Sort) FPExpSize() uint32 {
	smtfuzz.Assert(s.IsFP(), "FPExpSize on %s sort", s.Kind())
	e, _ := s.ctx.fpSortSizes(s.raw)
	return e
}

// FPSigSize returns the significand width, hidden bit included.
func (s *Sort) FPSigSize() uint32 {
	smtfuzz.Assert(s.IsFP(), "FPSigSize on %s sort", s.Kind())
	_, sig := s.ctx.fpSortSizes(s.raw)
	return sig
}

// DTName returns the name of a datatype sort.
func (s *Sort) DTName() string {
	smtfuzz.Assert(s.IsDT(), "DTName on %s sort", s.Kind())
	return s.ctx.symbolString(C.Z3_get_sort_name(s.ctx.raw, s.raw))
}

func (s *Sort) ArrayIndexSort() smtfuzz.Sort {
	smtfuzz.Assert(s.IsArray(), "ArrayIndexSort on %s sort", s.Kind())
	return s.wrap(C.Z3_get_array_sort_domain(s.ctx.raw, s.raw), "Z3_get_array_sort_domain")
}

func (s *Sort) ArrayElementSort() smtfuzz.Sort {
	smtfuzz.Assert(s.IsArray(), "ArrayElementSort on %s sort", s.Kind())
	return s.wrap(C.Z3_get_array_sort_range(s.ctx.raw, s.raw), "Z3_get_array_sort_range")
}

func (s *Sort) FunArity() uint32 {
	smtfuzz.Assert(s.fun, "FunArity on %s sort", s.Kind())
	return uint32(len(s.domain))
}

func (s *Sort) FunDomainSorts() []smtfuzz.Sort {
	smtfuzz.Assert(s.fun, "FunDomainSorts on %s sort", s.Kind())
	a := make([]smtfuzz.Sort, len(s.domain))
	for i := range s.domain {
		a[i] = s.domain[i]
	}
	return a
}

func (s *Sort) FunCodomainSort() smtfuzz.Sort {
	smtfuzz.Assert(s.fun, "FunCodomainSort on %s sort", s.Kind())
	return s.codomain
}

// wrap returns a plain sort in the same context. Panics on native error.
func (s *Sort) wrap(raw C.Z3_sort, op string) *Sort {
	raw, err := s.ctx.sort(raw, op)
	if err != nil {
		panic(err)
	}
	return &Sort{ctx: s.ctx, raw: raw}
}

// sortList returns the native handles of sorts.
func sortList(sorts []*Sort) []C.Z3_sort {
	a := make([]C.Z3_sort, len(sorts))
	for i := range sorts {
		a[i] = sorts[i].raw
	}
	return a
}
