package z3

/*
#include <z3.h>
*/
import "C"

import (
	"github.com/benbjohnson/smtfuzz"
)

// MkDatatypeSort returns a datatype sort with the given constructors. A
// selector with a nil sort refers to the datatype being defined.
func (s *Solver) MkDatatypeSort(name string, ctors []smtfuzz.Constructor) (smtfuzz.Sort, error) {
	s.mustInit("MkDatatypeSort")
	if len(ctors) == 0 {
		return nil, smtfuzz.Errorf("MkDatatypeSort", name, "datatype needs at least one constructor")
	}

	raw := s.ctx.raw
	cs := make([]C.Z3_constructor, 0, len(ctors))
	defer func() {
		for _, c := range cs {
			C.Z3_del_constructor(raw, c)
		}
	}()

	for _, ctor := range ctors {
		n := len(ctor.Selectors)
		fields := make([]C.Z3_symbol, n)
		sorts := make([]C.Z3_sort, n)
		refs := make([]C.uint, n)
		for i, sel := range ctor.Selectors {
			fields[i] = s.ctx.symbol(sel.Name)
			if sel.Sort != nil {
				sorts[i] = s.toSort(sel.Sort).raw
			}
		}

		var pfields *C.Z3_symbol
		var psorts *C.Z3_sort
		var prefs *C.uint
		if n > 0 {
			pfields, psorts, prefs = &fields[0], &sorts[0], &refs[0]
		}

		c := C.Z3_mk_constructor(raw, s.ctx.symbol(ctor.Name), s.ctx.symbol("is-"+ctor.Name), C.uint(n), pfields, psorts, prefs)
		if err := s.ctx.err("Z3_mk_constructor"); err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}

	sort, err := s.newSort(C.Z3_mk_datatype(raw, s.ctx.symbol(name), C.uint(len(cs)), &cs[0]), "Z3_mk_datatype")
	if err != nil {
		return nil, err
	}
	s.datatypes = append(s.datatypes, sort)

	s.logger.Debug("datatype declared", "name", name, "constructors", len(ctors))
	return sort, nil
}

// MkTermNamed applies a datatype constructor, selector or tester, each
// identified by a single name. Constructors are looked up among the
// datatypes declared on this solver; selectors and testers in the datatype
// of args[0].
func (s *Solver) MkTermNamed(kind smtfuzz.OpKind, names []string, args []smtfuzz.Term) (smtfuzz.Term, error) {
	s.mustInit("MkTermNamed")
	terms := s.toTerms(args)
	if len(names) != 1 {
		return nil, smtfuzz.Errorf("MkTermNamed", string(kind), "expected 1 name, got %d", len(names))
	}
	name := names[0]

	var decl C.Z3_func_decl
	switch kind {
	case smtfuzz.OpDTApplyCons:
		decl = s.lookupConstructor(name)
		if decl == nil {
			return nil, smtfuzz.Errorf("MkTermNamed", name, "unknown constructor")
		}

	case smtfuzz.OpDTApplySel, smtfuzz.OpDTApplyTester:
		if len(terms) != 1 {
			return nil, smtfuzz.Errorf("MkTermNamed", string(kind), "expected 1 argument, got %d", len(terms))
		}
		dt := s.ctx.sortOf(terms[0].raw)
		if s.ctx.sortKind(dt) != C.Z3_DATATYPE_SORT {
			return nil, smtfuzz.Errorf("MkTermNamed", string(kind), "argument of sort %s is not a datatype", terms[0].Sort())
		}
		if kind == smtfuzz.OpDTApplySel {
			decl = s.ctx.datatypeSelector(dt, name)
		} else {
			decl = s.ctx.datatypeTester(dt, name)
		}
		if decl == nil {
			return nil, smtfuzz.Errorf("MkTermNamed", name, "no such name in datatype %s", s.ctx.sortToString(dt))
		}

	default:
		return nil, smtfuzz.Errorf("MkTermNamed", string(kind), "operator kind not supported by Z3")
	}

	if n := int(C.Z3_get_domain_size(s.ctx.raw, decl)); n != len(terms) {
		return nil, smtfuzz.Errorf("MkTermNamed", name, "expected %d arguments, got %d", n, len(terms))
	}

	a := termList(terms)
	var pa *C.Z3_ast
	if len(a) > 0 {
		pa = &a[0]
	}
	return termResult(s.newTerm(C.Z3_mk_app(s.ctx.raw, decl, C.uint(len(a)), pa), "Z3_mk_app"))
}

// lookupConstructor returns the constructor named name, most recent datatype first.
func (s *Solver) lookupConstructor(name string) C.Z3_func_decl {
	for i := len(s.datatypes) - 1; i >= 0; i-- {
		dt := s.datatypes[i].raw
		for j := C.uint(0); j < C.Z3_get_datatype_sort_num_constructors(s.ctx.raw, dt); j++ {
			d := C.Z3_get_datatype_sort_constructor(s.ctx.raw, dt, j)
			if s.ctx.declName(d) == name {
				return d
			}
		}
	}
	return nil
}

// datatypeSelector returns the selector named name in dt, or nil.
func (ctx *Context) datatypeSelector(dt C.Z3_sort, name string) C.Z3_func_decl {
	for i := C.uint(0); i < C.Z3_get_datatype_sort_num_constructors(ctx.raw, dt); i++ {
		ctor := C.Z3_get_datatype_sort_constructor(ctx.raw, dt, i)
		for j := C.uint(0); j < C.Z3_get_domain_size(ctx.raw, ctor); j++ {
			d := C.Z3_get_datatype_sort_constructor_accessor(ctx.raw, dt, i, j)
			if ctx.declName(d) == name {
				return d
			}
		}
	}
	return nil
}

// datatypeTester returns the recognizer of the constructor named name in dt, or nil.
func (ctx *Context) datatypeTester(dt C.Z3_sort, name string) C.Z3_func_decl {
	for i := C.uint(0); i < C.Z3_get_datatype_sort_num_constructors(ctx.raw, dt); i++ {
		if ctx.declName(C.Z3_get_datatype_sort_constructor(ctx.raw, dt, i)) == name {
			return C.Z3_get_datatype_sort_recognizer(ctx.raw, dt, i)
		}
	}
	return nil
}

func (ctx *Context) declName(d C.Z3_func_decl) string {
	return ctx.symbolString(C.Z3_get_decl_name(ctx.raw, d))
}
