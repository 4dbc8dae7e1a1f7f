package z3

/*
#include <z3.h>
#include <stdlib.h>
*/
import "C"

import (
	"math/big"
	"unsafe"

	"github.com/benbjohnson/smtfuzz"
)

// MkVar returns a variable for use as a quantifier or lambda binder.
// Z3 binds constants, so a variable is a constant.
func (s *Solver) MkVar(sort smtfuzz.Sort, name string) (smtfuzz.Term, error) {
	s.mustInit("MkVar")
	return termResult(s.mkConst(s.toSort(sort), name))
}

// MkConst returns a free constant.
func (s *Solver) MkConst(sort smtfuzz.Sort, name string) (smtfuzz.Term, error) {
	s.mustInit("MkConst")
	return termResult(s.mkConst(s.toSort(sort), name))
}

func (s *Solver) mkConst(sort *Sort, name string) (*Term, error) {
	t, err := s.newTerm(C.Z3_mk_const(s.ctx.raw, s.ctx.symbol(name), sort.raw), "Z3_mk_const")
	if err != nil {
		return nil, err
	}
	if sort.fun {
		t.fun = sort
	}
	return t, nil
}

// MkFun returns a function with the given bound arguments and body. Z3
// lambdas are anonymous, so name is only used for logging.
func (s *Solver) MkFun(name string, args []smtfuzz.Term, body smtfuzz.Term) (smtfuzz.Term, error) {
	s.mustInit("MkFun")
	vars, b := s.toTerms(args), s.toTerm(body)
	if len(vars) == 0 {
		return nil, smtfuzz.Errorf("MkFun", name, "function needs at least one argument")
	}

	bound := make([]C.Z3_app, len(vars))
	for i, v := range vars {
		if !s.ctx.isConst(v.raw) {
			return nil, smtfuzz.Errorf("MkFun", name, "argument %d is not a variable: %s", i, v)
		}
		bound[i] = C.Z3_to_app(s.ctx.raw, v.raw)
	}

	t, err := s.newTerm(C.Z3_mk_lambda_const(s.ctx.raw, C.uint(len(bound)), &bound[0], b.raw), "Z3_mk_lambda_const")
	if err != nil {
		return nil, err
	}

	domain := make([]*Sort, len(vars))
	for i, v := range vars {
		domain[i] = v.Sort()
	}
	if t.fun, err = s.mkFunSort(domain, b.Sort()); err != nil {
		return nil, err
	}

	s.logger.Debug("function defined", "name", name, "arity", len(vars))
	return t, nil
}

// MkValueBool returns true or false.
func (s *Solver) MkValueBool(sort smtfuzz.Sort, value bool) (smtfuzz.Term, error) {
	s.mustInit("MkValueBool")
	if v := s.toSort(sort); !v.IsBool() {
		return nil, smtfuzz.Errorf("MkValueBool", string(v.Kind()), "expected Boolean sort")
	}
	if value {
		return termResult(s.newTerm(C.Z3_mk_true(s.ctx.raw), "Z3_mk_true"))
	}
	return termResult(s.newTerm(C.Z3_mk_false(s.ctx.raw), "Z3_mk_false"))
}

// MkValue returns an integer, real or string literal. Integers are decimal
// numerals; reals are decimal numerals or "num/den" fractions.
func (s *Solver) MkValue(sort smtfuzz.Sort, value string) (smtfuzz.Term, error) {
	s.mustInit("MkValue")
	v := s.toSort(sort)

	switch v.Kind() {
	case smtfuzz.SortInt:
		i, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return nil, smtfuzz.Errorf("MkValue", value, "invalid integer numeral")
		}
		return termResult(s.mkNumeral(i.String(), v))
	case smtfuzz.SortReal:
		r, ok := new(big.Rat).SetString(value)
		if !ok {
			return nil, smtfuzz.Errorf("MkValue", value, "invalid real numeral")
		}
		return termResult(s.mkNumeral(r.RatString(), v))
	case smtfuzz.SortString:
		cvalue := C.CString(value)
		defer C.free(unsafe.Pointer(cvalue))
		return termResult(s.newTerm(C.Z3_mk_string(s.ctx.raw, cvalue), "Z3_mk_string"))
	default:
		return nil, smtfuzz.Errorf("MkValue", string(v.Kind()), "expected Int, Real or String sort")
	}
}

// MkValueRational returns the real num/den as the quotient of two integers.
func (s *Solver) MkValueRational(sort smtfuzz.Sort, num, den string) (smtfuzz.Term, error) {
	s.mustInit("MkValueRational")
	if v := s.toSort(sort); !v.IsReal() {
		return nil, smtfuzz.Errorf("MkValueRational", string(v.Kind()), "expected Real sort")
	}

	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, smtfuzz.Errorf("MkValueRational", num, "invalid numerator")
	}
	d, ok := new(big.Int).SetString(den, 10)
	if !ok {
		return nil, smtfuzz.Errorf("MkValueRational", den, "invalid denominator")
	} else if d.Sign() == 0 {
		return nil, smtfuzz.Errorf("MkValueRational", den, "zero denominator")
	}

	intSort, err := s.newSort(C.Z3_mk_int_sort(s.ctx.raw), "Z3_mk_int_sort")
	if err != nil {
		return nil, err
	}
	var operands [2]C.Z3_ast
	for i, x := range []*big.Int{n, d} {
		lit, err := s.mkNumeral(x.String(), intSort)
		if err != nil {
			return nil, err
		}
		if operands[i], err = s.ctx.ast(C.Z3_mk_int2real(s.ctx.raw, lit.raw), "Z3_mk_int2real"); err != nil {
			return nil, err
		}
	}
	return termResult(s.newTerm(C.Z3_mk_div(s.ctx.raw, operands[0], operands[1]), "Z3_mk_div"))
}

// MkValueBase returns a bit-vector literal from a numeral in base.
func (s *Solver) MkValueBase(sort smtfuzz.Sort, value string, base smtfuzz.Base) (smtfuzz.Term, error) {
	s.mustInit("MkValueBase")
	v := s.toSort(sort)
	if !v.IsBV() {
		return nil, smtfuzz.Errorf("MkValueBase", string(v.Kind()), "expected bit-vector sort")
	}

	n, err := normalizeBVNumeral(value, base, v.BVSize())
	if err != nil {
		return nil, err
	}
	return termResult(s.mkBV(n, v))
}

// mkBV returns the bit-vector literal n, which must fit in sort.
func (s *Solver) mkBV(n *big.Int, sort *Sort) (*Term, error) {
	if sort.BVSize() <= 64 {
		return s.newTerm(C.Z3_mk_unsigned_int64(s.ctx.raw, C.uint64_t(n.Uint64()), sort.raw), "Z3_mk_unsigned_int64")
	}
	return s.mkNumeral(n.String(), sort)
}

func (s *Solver) mkNumeral(numeral string, sort *Sort) (*Term, error) {
	cnumeral := C.CString(numeral)
	defer C.free(unsafe.Pointer(cnumeral))
	return s.newTerm(C.Z3_mk_numeral(s.ctx.raw, cnumeral, sort.raw), "Z3_mk_numeral")
}

// MkSpecialValue returns a named constant of a bit-vector, floating-point or
// rounding-mode sort.
func (s *Solver) MkSpecialValue(sort smtfuzz.Sort, kind smtfuzz.SpecialValueKind) (smtfuzz.Term, error) {
	s.mustInit("MkSpecialValue")
	v, raw := s.toSort(sort), s.ctx.raw

	switch v.Kind() {
	case smtfuzz.SortBV:
		n, ok := bvSpecialValue(kind, v.BVSize())
		if !ok {
			break
		}
		return termResult(s.mkBV(n, v))

	case smtfuzz.SortFP:
		switch kind {
		case smtfuzz.SpecialValueFPNaN:
			return termResult(s.newTerm(C.Z3_mk_fpa_nan(raw, v.raw), "Z3_mk_fpa_nan"))
		case smtfuzz.SpecialValueFPPosInf, smtfuzz.SpecialValueFPNegInf:
			neg := kind == smtfuzz.SpecialValueFPNegInf
			return termResult(s.newTerm(C.Z3_mk_fpa_inf(raw, v.raw, C.bool(neg)), "Z3_mk_fpa_inf"))
		case smtfuzz.SpecialValueFPPosZero, smtfuzz.SpecialValueFPNegZero:
			neg := kind == smtfuzz.SpecialValueFPNegZero
			return termResult(s.newTerm(C.Z3_mk_fpa_zero(raw, v.raw, C.bool(neg)), "Z3_mk_fpa_zero"))
		}

	case smtfuzz.SortRM:
		switch kind {
		case smtfuzz.SpecialValueRMRNA:
			return termResult(s.newTerm(C.Z3_mk_fpa_rna(raw), "Z3_mk_fpa_rna"))
		case smtfuzz.SpecialValueRMRNE:
			return termResult(s.newTerm(C.Z3_mk_fpa_rne(raw), "Z3_mk_fpa_rne"))
		case smtfuzz.SpecialValueRMRTN:
			return termResult(s.newTerm(C.Z3_mk_fpa_rtn(raw), "Z3_mk_fpa_rtn"))
		case smtfuzz.SpecialValueRMRTP:
			return termResult(s.newTerm(C.Z3_mk_fpa_rtp(raw), "Z3_mk_fpa_rtp"))
		case smtfuzz.SpecialValueRMRTZ:
			return termResult(s.newTerm(C.Z3_mk_fpa_rtz(raw), "Z3_mk_fpa_rtz"))
		}

	default:
		return nil, smtfuzz.Errorf("MkSpecialValue", string(v.Kind()), "sort has no special values")
	}
	return nil, smtfuzz.Errorf("MkSpecialValue", string(kind), "unsupported special value for %s sort", v.Kind())
}

// GetSort returns the sort of term. Function and array terms share native
// sorts, so kind selects which view of an array-sorted term is returned.
func (s *Solver) GetSort(term smtfuzz.Term, kind smtfuzz.SortKind) (smtfuzz.Sort, error) {
	s.mustInit("GetSort")
	t := s.toTerm(term)

	switch {
	case kind == smtfuzz.SortFun && t.fun != nil:
		return t.fun, nil
	case kind == smtfuzz.SortFun:
		if !t.IsArray() {
			return nil, smtfuzz.Errorf("GetSort", string(kind), "term of sort %s is not a function", t.Sort())
		}
		sort := t.Sort()
		return sortResult(s.mkFunSort([]*Sort{sort.ArrayIndexSort().(*Sort)}, sort.ArrayElementSort().(*Sort)))
	case t.fun != nil:
		return sortResult(s.newSort(t.ctx.sortOf(t.raw), "Z3_get_sort"))
	default:
		return t.Sort(), nil
	}
}
