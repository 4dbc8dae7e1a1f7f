package z3

/*
#include <z3.h>
*/
import "C"

import (
	"github.com/benbjohnson/smtfuzz"
)

// MkSort returns a sort that takes no parameters.
func (s *Solver) MkSort(kind smtfuzz.SortKind) (smtfuzz.Sort, error) {
	s.mustInit("MkSort")
	raw := s.ctx.raw
	switch kind {
	case smtfuzz.SortBool:
		return sortResult(s.newSort(C.Z3_mk_bool_sort(raw), "Z3_mk_bool_sort"))
	case smtfuzz.SortInt:
		return sortResult(s.newSort(C.Z3_mk_int_sort(raw), "Z3_mk_int_sort"))
	case smtfuzz.SortReal:
		return sortResult(s.newSort(C.Z3_mk_real_sort(raw), "Z3_mk_real_sort"))
	case smtfuzz.SortRM:
		return sortResult(s.newSort(C.Z3_mk_fpa_rounding_mode_sort(raw), "Z3_mk_fpa_rounding_mode_sort"))
	case smtfuzz.SortString:
		return sortResult(s.newSort(C.Z3_mk_string_sort(raw), "Z3_mk_string_sort"))
	default:
		return nil, smtfuzz.Errorf("MkSort", string(kind), "unsupported sort kind")
	}
}

// MkSortSize returns a bit-vector sort of the given width or one of the
// standard IEEE floating-point sorts (16, 32, 64 or 128 bits).
func (s *Solver) MkSortSize(kind smtfuzz.SortKind, size uint32) (smtfuzz.Sort, error) {
	s.mustInit("MkSortSize")
	raw := s.ctx.raw
	switch kind {
	case smtfuzz.SortBV:
		if size == 0 {
			return nil, smtfuzz.Errorf("MkSortSize", string(kind), "zero bit-vector width")
		}
		return sortResult(s.newSort(C.Z3_mk_bv_sort(raw, C.uint(size)), "Z3_mk_bv_sort"))
	case smtfuzz.SortFP:
		switch size {
		case 16:
			return sortResult(s.newSort(C.Z3_mk_fpa_sort_16(raw), "Z3_mk_fpa_sort_16"))
		case 32:
			return sortResult(s.newSort(C.Z3_mk_fpa_sort_32(raw), "Z3_mk_fpa_sort_32"))
		case 64:
			return sortResult(s.newSort(C.Z3_mk_fpa_sort_64(raw), "Z3_mk_fpa_sort_64"))
		case 128:
			return sortResult(s.newSort(C.Z3_mk_fpa_sort_128(raw), "Z3_mk_fpa_sort_128"))
		default:
			return nil, smtfuzz.Errorf("MkSortSize", string(kind), "no standard floating-point format of %d bits", size)
		}
	default:
		return nil, smtfuzz.Errorf("MkSortSize", string(kind), "unsupported sort kind")
	}
}

// MkSortSizes returns a floating-point sort with the given exponent and
// significand widths.
func (s *Solver) MkSortSizes(kind smtfuzz.SortKind, esize, ssize uint32) (smtfuzz.Sort, error) {
	s.mustInit("MkSortSizes")
	if kind != smtfuzz.SortFP {
		return nil, smtfuzz.Errorf("MkSortSizes", string(kind), "unsupported sort kind")
	} else if esize < 2 || ssize < 2 {
		return nil, smtfuzz.Errorf("MkSortSizes", string(kind), "exponent and significand must be at least 2 bits, got %d and %d", esize, ssize)
	}
	return sortResult(s.newSort(C.Z3_mk_fpa_sort(s.ctx.raw, C.uint(esize), C.uint(ssize)), "Z3_mk_fpa_sort"))
}

// MkSortNamed returns an uninterpreted sort.
func (s *Solver) MkSortNamed(name string) (smtfuzz.Sort, error) {
	s.mustInit("MkSortNamed")
	return sortResult(s.newSort(C.Z3_mk_uninterpreted_sort(s.ctx.raw, s.ctx.symbol(name)), "Z3_mk_uninterpreted_sort"))
}

// MkSortComposite returns an array sort from (index, element) or a function
// sort from (domain..., codomain).
func (s *Solver) MkSortComposite(kind smtfuzz.SortKind, sorts []smtfuzz.Sort) (smtfuzz.Sort, error) {
	s.mustInit("MkSortComposite")
	a := s.toSorts(sorts)

	switch kind {
	case smtfuzz.SortArray:
		if len(a) != 2 {
			return nil, smtfuzz.Errorf("MkSortComposite", string(kind), "expected index and element sort, got %d sorts", len(a))
		}
		return sortResult(s.newSort(C.Z3_mk_array_sort(s.ctx.raw, a[0].raw, a[1].raw), "Z3_mk_array_sort"))
	case smtfuzz.SortFun:
		if len(a) < 2 {
			return nil, smtfuzz.Errorf("MkSortComposite", string(kind), "expected domain and codomain sorts, got %d sorts", len(a))
		}
		return sortResult(s.mkFunSort(a[:len(a)-1], a[len(a)-1]))
	default:
		return nil, smtfuzz.Errorf("MkSortComposite", string(kind), "unsupported sort kind")
	}
}

// mkFunSort returns a function sort encoded as an array sort. Unary
// functions use a plain array sort; wider ones need an n-dimensional array.
func (s *Solver) mkFunSort(domain []*Sort, codomain *Sort) (*Sort, error) {
	var sort *Sort
	var err error
	if len(domain) == 1 {
		sort, err = s.newSort(C.Z3_mk_array_sort(s.ctx.raw, domain[0].raw, codomain.raw), "Z3_mk_array_sort")
	} else {
		dom := sortList(domain)
		sort, err = s.newSort(C.Z3_mk_array_sort_n(s.ctx.raw, C.uint(len(dom)), &dom[0], codomain.raw), "Z3_mk_array_sort_n")
	}
	if err != nil {
		return nil, err
	}

	sort.fun = true
	sort.domain = append([]*Sort(nil), domain...)
	sort.codomain = codomain
	return sort, nil
}
