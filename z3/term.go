package z3

/*
#include <z3.h>
*/
import "C"

import (
	"github.com/benbjohnson/smtfuzz"
)

// Ensure term implements interface.
var _ smtfuzz.Term = (*Term)(nil)

// Term wraps a native Z3 expression. Terms built as functions keep the
// function sort they were created with since their native sort is an array.
type Term struct {
	ctx *Context
	raw C.Z3_ast
	fun *Sort
}

// Hash returns the native hash of the term.
func (t *Term) Hash() uint64 { return uint64(C.Z3_get_ast_hash(t.ctx.raw, t.raw)) }

// Equals returns true if other wraps an expression Z3 considers equal.
func (t *Term) Equals(other smtfuzz.Term) bool {
	o, ok := other.(*Term)
	if !ok || o == nil || o.ctx != t.ctx {
		return false
	}
	return bool(C.Z3_is_eq_ast(t.ctx.raw, t.raw, o.raw))
}

// String returns the SMT-LIB rendering of the term.
func (t *Term) String() string { return t.ctx.astToString(t.raw) }

// Sort returns the sort of the term.
func (t *Term) Sort() *Sort {
	if t.fun != nil {
		return t.fun
	}
	raw, err := t.ctx.sort(t.ctx.sortOf(t.raw), "Z3_get_sort")
	if err != nil {
		panic(err)
	}
	return &Sort{ctx: t.ctx, raw: raw}
}

func (t *Term) kind() smtfuzz.SortKind {
	if t.fun != nil {
		return smtfuzz.SortFun
	}
	return (&Sort{ctx: t.ctx, raw: t.ctx.sortOf(t.raw)}).Kind()
}

func (t *Term) IsArray() bool  { return t.kind() == smtfuzz.SortArray }
func (t *Term) IsBool() bool   { return t.kind() == smtfuzz.SortBool }
func (t *Term) IsBV() bool     { return t.kind() == smtfuzz.SortBV }
func (t *Term) IsFP() bool     { return t.kind() == smtfuzz.SortFP }
func (t *Term) IsFun() bool    { return t.fun != nil }
func (t *Term) IsInt() bool    { return t.kind() == smtfuzz.SortInt }
func (t *Term) IsReal() bool   { return t.kind() == smtfuzz.SortReal }
func (t *Term) IsRM() bool     { return t.kind() == smtfuzz.SortRM }
func (t *Term) IsString() bool { return t.kind() == smtfuzz.SortString }

// BVSize returns the width of a bit-vector term.
func (t *Term) BVSize() uint32 {
	smtfuzz.Assert(t.IsBV(), "BVSize on %s term", t.kind())
	return t.ctx.bvSortSize(t.ctx.sortOf(t.raw))
}

func (t *Term) FPExpSize() uint32 {
	smtfuzz.Assert(t.IsFP(), "FPExpSize on %s term", t.kind())
	e, _ := t.ctx.fpSortSizes(t.ctx.sortOf(t.raw))
	return e
}

func (t *Term) FPSigSize() uint32 {
	smtfuzz.Assert(t.IsFP(), "FPSigSize on %s term", t.kind())
	_, s := t.ctx.fpSortSizes(t.ctx.sortOf(t.raw))
	return s
}

// termList returns the native handles of terms.
func termList(terms []*Term) []C.Z3_ast {
	a := make([]C.Z3_ast, len(terms))
	for i := range terms {
		a[i] = terms[i].raw
	}
	return a
}
