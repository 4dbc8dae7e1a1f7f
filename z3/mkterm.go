package z3

/*
#include <z3.h>
*/
import "C"

import (
	"github.com/benbjohnson/smtfuzz"
)

// Z3-specific operator kinds, registered through ConfigureOpMgr.
const (
	OpBVRedAnd     smtfuzz.OpKind = "OP_Z3_BV_REDAND"
	OpBVRedOr      smtfuzz.OpKind = "OP_Z3_BV_REDOR"
	OpArrayDefault smtfuzz.OpKind = "OP_Z3_ARRAY_DEFAULT"
)

// opBuilder builds a native term from validated arguments and indices.
// Every intermediate term a builder creates must go through Context.ast.
type opBuilder func(ctx *Context, args []C.Z3_ast, idx []uint32) (C.Z3_ast, error)

// opDef is one entry in the dispatch table.
type opDef struct {
	theory smtfuzz.Theory
	arity  int // exact argument count, or smtfuzz.ArityN for two or more
	nidx   int
	build  opBuilder
}

// check enforces the arity and index contract of the operator.
func (def *opDef) check(kind smtfuzz.OpKind, nargs, nidx int) error {
	if def.arity == smtfuzz.ArityN && nargs < 2 {
		return smtfuzz.Errorf("MkTerm", string(kind), "expected at least 2 arguments, got %d", nargs)
	} else if def.arity != smtfuzz.ArityN && nargs != def.arity {
		return smtfuzz.Errorf("MkTerm", string(kind), "expected %d arguments, got %d", def.arity, nargs)
	} else if nidx != def.nidx {
		return smtfuzz.Errorf("MkTerm", string(kind), "expected %d indices, got %d", def.nidx, nidx)
	}
	return nil
}

// MkTerm applies the operator kind to args. N-ary associative operators are
// built as a strict left fold.
func (s *Solver) MkTerm(kind smtfuzz.OpKind, args []smtfuzz.Term, indices []uint32) (smtfuzz.Term, error) {
	s.mustInit("MkTerm")
	terms := s.toTerms(args)

	def, ok := ops[kind]
	switch {
	case kind == smtfuzz.OpDTApplyCons, kind == smtfuzz.OpDTApplySel, kind == smtfuzz.OpDTApplyTester:
		return nil, smtfuzz.Errorf("MkTerm", string(kind), "datatype operators take names; use MkTermNamed")
	case !ok:
		return nil, smtfuzz.Errorf("MkTerm", string(kind), "operator kind not supported by Z3")
	}
	if err := def.check(kind, len(terms), len(indices)); err != nil {
		return nil, err
	}

	raw, err := def.build(s.ctx, termList(terms), indices)
	if err != nil {
		return nil, err
	}
	t := &Term{ctx: s.ctx, raw: raw}

	// Results that share a function argument's sort are functions too.
	if kind != smtfuzz.OpUFApply {
		sort := s.ctx.sortOf(raw)
		for _, a := range terms {
			if a.fun != nil && bool(C.Z3_is_eq_sort(s.ctx.raw, a.fun.raw, sort)) {
				t.fun = a.fun
				break
			}
		}
	}
	return t, nil
}

// Ops returns the standard operators served by MkTerm, sorted by kind.
// The Z3-specific kinds are returned by ExtensionOps instead.
func Ops() []*smtfuzz.Op {
	ext := make(map[smtfuzz.OpKind]struct{})
	for _, op := range ExtensionOps() {
		ext[op.Kind] = struct{}{}
	}

	r := smtfuzz.NewOpKindRegistry()
	for kind, def := range ops {
		if _, ok := ext[kind]; ok {
			continue
		}
		result, args := signature(kind, def.theory)
		err := r.AddOpKind(&smtfuzz.Op{Kind: kind, Arity: def.arity, NIndices: def.nidx, Result: result, Args: args, Theory: def.theory})
		smtfuzz.Assert(err == nil, "register %s: %v", kind, err)
	}

	a := make([]*smtfuzz.Op, 0, r.Len())
	for _, kind := range r.Kinds() {
		a = append(a, r.Op(kind))
	}
	return a
}

// opSig is the result and argument sort kinds of an operator.
type opSig struct {
	result smtfuzz.SortKind
	args   []smtfuzz.SortKind
}

var (
	sigAnyArgs  = []smtfuzz.SortKind{smtfuzz.SortAny}
	sigBoolArgs = []smtfuzz.SortKind{smtfuzz.SortBool}
	sigBVArgs   = []smtfuzz.SortKind{smtfuzz.SortBV}
	sigIntArgs  = []smtfuzz.SortKind{smtfuzz.SortInt}
	sigRealArgs = []smtfuzz.SortKind{smtfuzz.SortReal}
	sigFPArgs   = []smtfuzz.SortKind{smtfuzz.SortFP}
	sigRMFPArgs = []smtfuzz.SortKind{smtfuzz.SortRM, smtfuzz.SortFP}
	sigStrArgs  = []smtfuzz.SortKind{smtfuzz.SortString}
)

// theorySigs maps a theory to the signature most of its operators share.
var theorySigs = map[smtfuzz.Theory]opSig{
	smtfuzz.TheoryBool:   {smtfuzz.SortBool, sigBoolArgs},
	smtfuzz.TheoryBV:     {smtfuzz.SortBV, sigBVArgs},
	smtfuzz.TheoryInt:    {smtfuzz.SortInt, sigIntArgs},
	smtfuzz.TheoryReal:   {smtfuzz.SortReal, sigRealArgs},
	smtfuzz.TheoryFP:     {smtfuzz.SortFP, sigFPArgs},
	smtfuzz.TheoryString: {smtfuzz.SortString, sigStrArgs},
	smtfuzz.TheoryUF:     {smtfuzz.SortAny, []smtfuzz.SortKind{smtfuzz.SortFun, smtfuzz.SortAny}},
	smtfuzz.TheoryQuant:  {smtfuzz.SortBool, sigAnyArgs},
}

// opSigs lists the operators whose signature differs from their theory's.
var opSigs = map[smtfuzz.OpKind]opSig{
	smtfuzz.OpEqual:    {smtfuzz.SortBool, sigAnyArgs},
	smtfuzz.OpDistinct: {smtfuzz.SortBool, sigAnyArgs},
	smtfuzz.OpITE:      {smtfuzz.SortAny, []smtfuzz.SortKind{smtfuzz.SortBool, smtfuzz.SortAny}},

	smtfuzz.OpArraySelect: {smtfuzz.SortAny, []smtfuzz.SortKind{smtfuzz.SortArray, smtfuzz.SortAny}},
	smtfuzz.OpArrayStore:  {smtfuzz.SortArray, []smtfuzz.SortKind{smtfuzz.SortArray, smtfuzz.SortAny}},

	smtfuzz.OpBVULt: {smtfuzz.SortBool, sigBVArgs},
	smtfuzz.OpBVULe: {smtfuzz.SortBool, sigBVArgs},
	smtfuzz.OpBVUGt: {smtfuzz.SortBool, sigBVArgs},
	smtfuzz.OpBVUGe: {smtfuzz.SortBool, sigBVArgs},
	smtfuzz.OpBVSLt: {smtfuzz.SortBool, sigBVArgs},
	smtfuzz.OpBVSLe: {smtfuzz.SortBool, sigBVArgs},
	smtfuzz.OpBVSGt: {smtfuzz.SortBool, sigBVArgs},
	smtfuzz.OpBVSGe: {smtfuzz.SortBool, sigBVArgs},

	smtfuzz.OpIntLt:     {smtfuzz.SortBool, sigIntArgs},
	smtfuzz.OpIntLe:     {smtfuzz.SortBool, sigIntArgs},
	smtfuzz.OpIntGt:     {smtfuzz.SortBool, sigIntArgs},
	smtfuzz.OpIntGe:     {smtfuzz.SortBool, sigIntArgs},
	smtfuzz.OpIntToReal: {smtfuzz.SortReal, sigIntArgs},

	smtfuzz.OpRealLt:    {smtfuzz.SortBool, sigRealArgs},
	smtfuzz.OpRealLe:    {smtfuzz.SortBool, sigRealArgs},
	smtfuzz.OpRealGt:    {smtfuzz.SortBool, sigRealArgs},
	smtfuzz.OpRealGe:    {smtfuzz.SortBool, sigRealArgs},
	smtfuzz.OpRealToInt: {smtfuzz.SortInt, sigRealArgs},
	smtfuzz.OpRealIsInt: {smtfuzz.SortBool, sigRealArgs},

	smtfuzz.OpFPAdd:          {smtfuzz.SortFP, sigRMFPArgs},
	smtfuzz.OpFPSub:          {smtfuzz.SortFP, sigRMFPArgs},
	smtfuzz.OpFPMul:          {smtfuzz.SortFP, sigRMFPArgs},
	smtfuzz.OpFPDiv:          {smtfuzz.SortFP, sigRMFPArgs},
	smtfuzz.OpFPSqrt:         {smtfuzz.SortFP, sigRMFPArgs},
	smtfuzz.OpFPRTI:          {smtfuzz.SortFP, sigRMFPArgs},
	smtfuzz.OpFPFma:          {smtfuzz.SortFP, sigRMFPArgs},
	smtfuzz.OpFPEq:           {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPLeq:          {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPLt:           {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPGeq:          {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPGt:           {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPIsNormal:     {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPIsSubnormal:  {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPIsZero:       {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPIsInf:        {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPIsNaN:        {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPIsNeg:        {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPIsPos:        {smtfuzz.SortBool, sigFPArgs},
	smtfuzz.OpFPFP:           {smtfuzz.SortFP, sigBVArgs},
	smtfuzz.OpFPToReal:       {smtfuzz.SortReal, sigFPArgs},
	smtfuzz.OpFPToFPFromBV:   {smtfuzz.SortFP, sigBVArgs},
	smtfuzz.OpFPToFPFromFP:   {smtfuzz.SortFP, sigRMFPArgs},
	smtfuzz.OpFPToFPFromReal: {smtfuzz.SortFP, []smtfuzz.SortKind{smtfuzz.SortRM, smtfuzz.SortReal}},
	smtfuzz.OpFPToFPFromSBV:  {smtfuzz.SortFP, []smtfuzz.SortKind{smtfuzz.SortRM, smtfuzz.SortBV}},
	smtfuzz.OpFPToFPFromUBV:  {smtfuzz.SortFP, []smtfuzz.SortKind{smtfuzz.SortRM, smtfuzz.SortBV}},
	smtfuzz.OpFPToSBV:        {smtfuzz.SortBV, sigRMFPArgs},
	smtfuzz.OpFPToUBV:        {smtfuzz.SortBV, sigRMFPArgs},

	smtfuzz.OpStrLen:      {smtfuzz.SortInt, sigStrArgs},
	smtfuzz.OpStrAt:       {smtfuzz.SortString, []smtfuzz.SortKind{smtfuzz.SortString, smtfuzz.SortInt}},
	smtfuzz.OpStrSubstr:   {smtfuzz.SortString, []smtfuzz.SortKind{smtfuzz.SortString, smtfuzz.SortInt}},
	smtfuzz.OpStrContains: {smtfuzz.SortBool, sigStrArgs},
	smtfuzz.OpStrPrefixOf: {smtfuzz.SortBool, sigStrArgs},
	smtfuzz.OpStrSuffixOf: {smtfuzz.SortBool, sigStrArgs},
	smtfuzz.OpStrIndexOf:  {smtfuzz.SortInt, []smtfuzz.SortKind{smtfuzz.SortString, smtfuzz.SortString, smtfuzz.SortInt}},
	smtfuzz.OpStrLt:       {smtfuzz.SortBool, sigStrArgs},
	smtfuzz.OpStrLe:       {smtfuzz.SortBool, sigStrArgs},
	smtfuzz.OpStrToInt:    {smtfuzz.SortInt, sigStrArgs},
	smtfuzz.OpStrFromInt:  {smtfuzz.SortString, sigIntArgs},
}

// signature returns the result and argument sort kinds of an operator.
// Unknown operators have SortAny results and unconstrained arguments.
func signature(kind smtfuzz.OpKind, theory smtfuzz.Theory) (smtfuzz.SortKind, []smtfuzz.SortKind) {
	sig, ok := opSigs[kind]
	if !ok {
		if sig, ok = theorySigs[theory]; !ok {
			return smtfuzz.SortAny, nil
		}
	}
	return sig.result, append([]smtfuzz.SortKind(nil), sig.args...)
}

type (
	fn1 = func(C.Z3_context, C.Z3_ast) C.Z3_ast
	fn2 = func(C.Z3_context, C.Z3_ast, C.Z3_ast) C.Z3_ast
	fn3 = func(C.Z3_context, C.Z3_ast, C.Z3_ast, C.Z3_ast) C.Z3_ast
	fnN = func(C.Z3_context, C.uint, *C.Z3_ast) C.Z3_ast
)

func unary(theory smtfuzz.Theory, op string, f fn1) opDef {
	return opDef{theory: theory, arity: 1, build: func(ctx *Context, args []C.Z3_ast, _ []uint32) (C.Z3_ast, error) {
		return ctx.ast(f(ctx.raw, args[0]), op)
	}}
}

func binary(theory smtfuzz.Theory, op string, f fn2) opDef {
	return opDef{theory: theory, arity: 2, build: func(ctx *Context, args []C.Z3_ast, _ []uint32) (C.Z3_ast, error) {
		return ctx.ast(f(ctx.raw, args[0], args[1]), op)
	}}
}

func ternary(theory smtfuzz.Theory, op string, f fn3) opDef {
	return opDef{theory: theory, arity: 3, build: func(ctx *Context, args []C.Z3_ast, _ []uint32) (C.Z3_ast, error) {
		return ctx.ast(f(ctx.raw, args[0], args[1], args[2]), op)
	}}
}

// leftFold builds ((a0 op a1) op a2) ... op an.
func leftFold(theory smtfuzz.Theory, op string, f fn2) opDef {
	return opDef{theory: theory, arity: smtfuzz.ArityN, build: func(ctx *Context, args []C.Z3_ast, _ []uint32) (C.Z3_ast, error) {
		acc := args[0]
		for _, a := range args[1:] {
			v, err := ctx.ast(f(ctx.raw, acc, a), op)
			if err != nil {
				return nil, err
			}
			acc = v
		}
		return acc, nil
	}}
}

// pair adapts a native n-ary constructor to two operands.
func pair(f fnN) fn2 {
	return func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast {
		args := [2]C.Z3_ast{a, b}
		return f(c, 2, &args[0])
	}
}

// nary calls a native n-ary constructor on all arguments at once.
func nary(theory smtfuzz.Theory, op string, f fnN) opDef {
	return opDef{theory: theory, arity: smtfuzz.ArityN, build: func(ctx *Context, args []C.Z3_ast, _ []uint32) (C.Z3_ast, error) {
		return ctx.ast(f(ctx.raw, C.uint(len(args)), &args[0]), op)
	}}
}

// indexed builds a single-operand operator with one index.
func indexed(op string, min uint32, f func(C.Z3_context, C.uint, C.Z3_ast) C.Z3_ast) opDef {
	return opDef{theory: smtfuzz.TheoryBV, arity: 1, nidx: 1, build: func(ctx *Context, args []C.Z3_ast, idx []uint32) (C.Z3_ast, error) {
		if err := ctx.checkBV(op, args[0]); err != nil {
			return nil, err
		} else if idx[0] < min {
			return nil, smtfuzz.Errorf("MkTerm", op, "index must be at least %d, got %d", min, idx[0])
		}
		return ctx.ast(f(ctx.raw, C.uint(idx[0]), args[0]), op)
	}}
}

// checkBV returns a configuration error if a is not a bit-vector.
func (ctx *Context) checkBV(op string, a C.Z3_ast) error {
	if ctx.sortKind(ctx.sortOf(a)) != C.Z3_BV_SORT {
		return smtfuzz.Errorf("MkTerm", op, "expected bit-vector operand of sort %s", ctx.sortToString(ctx.sortOf(a)))
	}
	return nil
}

// extract takes bits high down to low, inclusive.
func extract(ctx *Context, args []C.Z3_ast, idx []uint32) (C.Z3_ast, error) {
	if err := ctx.checkBV("Z3_mk_extract", args[0]); err != nil {
		return nil, err
	}
	hi, lo := idx[0], idx[1]
	if w := ctx.bvSortSize(ctx.sortOf(args[0])); hi < lo || hi >= w {
		return nil, smtfuzz.Errorf("MkTerm", string(smtfuzz.OpBVExtract), "invalid indices (%d, %d) for width %d", hi, lo, w)
	}
	return ctx.ast(C.Z3_mk_extract(ctx.raw, C.uint(hi), C.uint(lo), args[0]), "Z3_mk_extract")
}

// equal chains n operands as a conjunction of adjacent equalities.
func equal(ctx *Context, args []C.Z3_ast, _ []uint32) (C.Z3_ast, error) {
	if len(args) == 2 {
		return ctx.ast(C.Z3_mk_eq(ctx.raw, args[0], args[1]), "Z3_mk_eq")
	}

	eqs := make([]C.Z3_ast, len(args)-1)
	for i := range eqs {
		eq, err := ctx.ast(C.Z3_mk_eq(ctx.raw, args[i], args[i+1]), "Z3_mk_eq")
		if err != nil {
			return nil, err
		}
		eqs[i] = eq
	}
	return ctx.ast(C.Z3_mk_and(ctx.raw, C.uint(len(eqs)), &eqs[0]), "Z3_mk_and")
}

// intAbs builds ite(x >= 0, x, -x).
func intAbs(ctx *Context, args []C.Z3_ast, _ []uint32) (C.Z3_ast, error) {
	x := args[0]
	zero, err := ctx.ast(C.Z3_mk_int(ctx.raw, 0, ctx.sortOf(x)), "Z3_mk_int")
	if err != nil {
		return nil, err
	}
	ge, err := ctx.ast(C.Z3_mk_ge(ctx.raw, x, zero), "Z3_mk_ge")
	if err != nil {
		return nil, err
	}
	neg, err := ctx.ast(C.Z3_mk_unary_minus(ctx.raw, x), "Z3_mk_unary_minus")
	if err != nil {
		return nil, err
	}
	return ctx.ast(C.Z3_mk_ite(ctx.raw, ge, x, neg), "Z3_mk_ite")
}

// bvComp builds ite(a = b, #b1, #b0).
func bvComp(ctx *Context, args []C.Z3_ast, _ []uint32) (C.Z3_ast, error) {
	eq, err := ctx.ast(C.Z3_mk_eq(ctx.raw, args[0], args[1]), "Z3_mk_eq")
	if err != nil {
		return nil, err
	}
	bit, err := ctx.sort(C.Z3_mk_bv_sort(ctx.raw, 1), "Z3_mk_bv_sort")
	if err != nil {
		return nil, err
	}
	one, err := ctx.ast(C.Z3_mk_unsigned_int(ctx.raw, 1, bit), "Z3_mk_unsigned_int")
	if err != nil {
		return nil, err
	}
	zero, err := ctx.ast(C.Z3_mk_unsigned_int(ctx.raw, 0, bit), "Z3_mk_unsigned_int")
	if err != nil {
		return nil, err
	}
	return ctx.ast(C.Z3_mk_ite(ctx.raw, eq, one, zero), "Z3_mk_ite")
}

// ufApply applies args[0] to the remaining arguments. Functions are arrays,
// so application is an (n-dimensional) select.
func ufApply(ctx *Context, args []C.Z3_ast, _ []uint32) (C.Z3_ast, error) {
	fn, params := args[0], args[1:]
	if ctx.sortKind(ctx.sortOf(fn)) != C.Z3_ARRAY_SORT {
		return nil, smtfuzz.Errorf("MkTerm", string(smtfuzz.OpUFApply), "cannot apply term of sort %s", ctx.sortToString(ctx.sortOf(fn)))
	}
	if len(params) == 1 {
		return ctx.ast(C.Z3_mk_select(ctx.raw, fn, params[0]), "Z3_mk_select")
	}
	return ctx.ast(C.Z3_mk_select_n(ctx.raw, fn, C.uint(len(params)), &params[0]), "Z3_mk_select_n")
}

// quantifier binds args[:n-1] in the body args[n-1].
func quantifier(kind smtfuzz.OpKind) opBuilder {
	return func(ctx *Context, args []C.Z3_ast, _ []uint32) (C.Z3_ast, error) {
		vars, body := args[:len(args)-1], args[len(args)-1]
		bound := make([]C.Z3_app, len(vars))
		for i, v := range vars {
			if !ctx.isConst(v) {
				return nil, smtfuzz.Errorf("MkTerm", string(kind), "argument %d is not a variable", i)
			}
			bound[i] = C.Z3_to_app(ctx.raw, v)
		}

		if kind == smtfuzz.OpForall {
			return ctx.ast(C.Z3_mk_forall_const(ctx.raw, 0, C.uint(len(bound)), &bound[0], 0, nil, body), "Z3_mk_forall_const")
		}
		return ctx.ast(C.Z3_mk_exists_const(ctx.raw, 0, C.uint(len(bound)), &bound[0], 0, nil, body), "Z3_mk_exists_const")
	}
}

// fpSortIndex returns the floating-point sort named by (ebits, sbits) indices.
func (ctx *Context) fpSortIndex(op string, idx []uint32) (C.Z3_sort, error) {
	if idx[0] < 2 || idx[1] < 2 {
		return nil, smtfuzz.Errorf("MkTerm", op, "invalid floating-point format (%d, %d)", idx[0], idx[1])
	}
	return ctx.sort(C.Z3_mk_fpa_sort(ctx.raw, C.uint(idx[0]), C.uint(idx[1])), "Z3_mk_fpa_sort")
}

// toFP converts (rm, t) to the floating-point format given by the indices.
func toFP(op string, f func(C.Z3_context, C.Z3_ast, C.Z3_ast, C.Z3_sort) C.Z3_ast) opDef {
	return opDef{theory: smtfuzz.TheoryFP, arity: 2, nidx: 2, build: func(ctx *Context, args []C.Z3_ast, idx []uint32) (C.Z3_ast, error) {
		sort, err := ctx.fpSortIndex(op, idx)
		if err != nil {
			return nil, err
		}
		return ctx.ast(f(ctx.raw, args[0], args[1], sort), op)
	}}
}

// fpToBV converts (rm, t) to a bit-vector of the width given by the index.
func fpToBV(op string, f func(C.Z3_context, C.Z3_ast, C.Z3_ast, C.uint) C.Z3_ast) opDef {
	return opDef{theory: smtfuzz.TheoryFP, arity: 2, nidx: 1, build: func(ctx *Context, args []C.Z3_ast, idx []uint32) (C.Z3_ast, error) {
		if idx[0] == 0 {
			return nil, smtfuzz.Errorf("MkTerm", op, "zero bit-vector width")
		}
		return ctx.ast(f(ctx.raw, args[0], args[1], C.uint(idx[0])), op)
	}}
}

// ops is the dispatch table of MkTerm.
var ops = map[smtfuzz.OpKind]opDef{
	// Core
	smtfuzz.OpEqual:    {theory: smtfuzz.TheoryBool, arity: smtfuzz.ArityN, build: equal},
	smtfuzz.OpDistinct: nary(smtfuzz.TheoryBool, "Z3_mk_distinct", func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_distinct(c, n, a) }),
	smtfuzz.OpITE:      ternary(smtfuzz.TheoryBool, "Z3_mk_ite", func(c C.Z3_context, a, b, d C.Z3_ast) C.Z3_ast { return C.Z3_mk_ite(c, a, b, d) }),
	smtfuzz.OpUFApply:  {theory: smtfuzz.TheoryUF, arity: smtfuzz.ArityN, build: ufApply},
	smtfuzz.OpForall:   {theory: smtfuzz.TheoryQuant, arity: smtfuzz.ArityN, build: quantifier(smtfuzz.OpForall)},
	smtfuzz.OpExists:   {theory: smtfuzz.TheoryQuant, arity: smtfuzz.ArityN, build: quantifier(smtfuzz.OpExists)},

	// Boolean
	smtfuzz.OpNot:     unary(smtfuzz.TheoryBool, "Z3_mk_not", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_not(c, a) }),
	smtfuzz.OpAnd:     leftFold(smtfuzz.TheoryBool, "Z3_mk_and", pair(func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_and(c, n, a) })),
	smtfuzz.OpOr:      leftFold(smtfuzz.TheoryBool, "Z3_mk_or", pair(func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_or(c, n, a) })),
	smtfuzz.OpXor:     leftFold(smtfuzz.TheoryBool, "Z3_mk_xor", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_xor(c, a, b) }),
	smtfuzz.OpImplies: binary(smtfuzz.TheoryBool, "Z3_mk_implies", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_implies(c, a, b) }),

	// Arrays
	smtfuzz.OpArraySelect: binary(smtfuzz.TheoryArray, "Z3_mk_select", func(c C.Z3_context, a, i C.Z3_ast) C.Z3_ast { return C.Z3_mk_select(c, a, i) }),
	smtfuzz.OpArrayStore:  ternary(smtfuzz.TheoryArray, "Z3_mk_store", func(c C.Z3_context, a, i, v C.Z3_ast) C.Z3_ast { return C.Z3_mk_store(c, a, i, v) }),

	// Bit-vectors
	smtfuzz.OpBVNot:    unary(smtfuzz.TheoryBV, "Z3_mk_bvnot", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvnot(c, a) }),
	smtfuzz.OpBVNeg:    unary(smtfuzz.TheoryBV, "Z3_mk_bvneg", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvneg(c, a) }),
	smtfuzz.OpBVAnd:    leftFold(smtfuzz.TheoryBV, "Z3_mk_bvand", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvand(c, a, b) }),
	smtfuzz.OpBVOr:     leftFold(smtfuzz.TheoryBV, "Z3_mk_bvor", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvor(c, a, b) }),
	smtfuzz.OpBVXor:    leftFold(smtfuzz.TheoryBV, "Z3_mk_bvxor", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvxor(c, a, b) }),
	smtfuzz.OpBVAdd:    leftFold(smtfuzz.TheoryBV, "Z3_mk_bvadd", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvadd(c, a, b) }),
	smtfuzz.OpBVSub:    leftFold(smtfuzz.TheoryBV, "Z3_mk_bvsub", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsub(c, a, b) }),
	smtfuzz.OpBVMul:    leftFold(smtfuzz.TheoryBV, "Z3_mk_bvmul", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvmul(c, a, b) }),
	smtfuzz.OpBVConcat: leftFold(smtfuzz.TheoryBV, "Z3_mk_concat", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_concat(c, a, b) }),
	smtfuzz.OpBVNand:   binary(smtfuzz.TheoryBV, "Z3_mk_bvnand", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvnand(c, a, b) }),
	smtfuzz.OpBVNor:    binary(smtfuzz.TheoryBV, "Z3_mk_bvnor", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvnor(c, a, b) }),
	smtfuzz.OpBVXnor:   binary(smtfuzz.TheoryBV, "Z3_mk_bvxnor", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvxnor(c, a, b) }),
	smtfuzz.OpBVUDiv:   binary(smtfuzz.TheoryBV, "Z3_mk_bvudiv", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvudiv(c, a, b) }),
	smtfuzz.OpBVURem:   binary(smtfuzz.TheoryBV, "Z3_mk_bvurem", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvurem(c, a, b) }),
	smtfuzz.OpBVSDiv:   binary(smtfuzz.TheoryBV, "Z3_mk_bvsdiv", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsdiv(c, a, b) }),
	smtfuzz.OpBVSRem:   binary(smtfuzz.TheoryBV, "Z3_mk_bvsrem", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsrem(c, a, b) }),
	smtfuzz.OpBVSMod:   binary(smtfuzz.TheoryBV, "Z3_mk_bvsmod", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsmod(c, a, b) }),
	smtfuzz.OpBVShl:    binary(smtfuzz.TheoryBV, "Z3_mk_bvshl", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvshl(c, a, b) }),
	smtfuzz.OpBVLShr:   binary(smtfuzz.TheoryBV, "Z3_mk_bvlshr", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvlshr(c, a, b) }),
	smtfuzz.OpBVAShr:   binary(smtfuzz.TheoryBV, "Z3_mk_bvashr", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvashr(c, a, b) }),
	smtfuzz.OpBVULt:    binary(smtfuzz.TheoryBV, "Z3_mk_bvult", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvult(c, a, b) }),
	smtfuzz.OpBVULe:    binary(smtfuzz.TheoryBV, "Z3_mk_bvule", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvule(c, a, b) }),
	smtfuzz.OpBVUGt:    binary(smtfuzz.TheoryBV, "Z3_mk_bvugt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvugt(c, a, b) }),
	smtfuzz.OpBVUGe:    binary(smtfuzz.TheoryBV, "Z3_mk_bvuge", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvuge(c, a, b) }),
	smtfuzz.OpBVSLt:    binary(smtfuzz.TheoryBV, "Z3_mk_bvslt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvslt(c, a, b) }),
	smtfuzz.OpBVSLe:    binary(smtfuzz.TheoryBV, "Z3_mk_bvsle", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsle(c, a, b) }),
	smtfuzz.OpBVSGt:    binary(smtfuzz.TheoryBV, "Z3_mk_bvsgt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsgt(c, a, b) }),
	smtfuzz.OpBVSGe:    binary(smtfuzz.TheoryBV, "Z3_mk_bvsge", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvsge(c, a, b) }),
	smtfuzz.OpBVComp:   {theory: smtfuzz.TheoryBV, arity: 2, build: bvComp},

	smtfuzz.OpBVExtract:     {theory: smtfuzz.TheoryBV, arity: 1, nidx: 2, build: extract},
	smtfuzz.OpBVRepeat:      indexed("Z3_mk_repeat", 1, func(c C.Z3_context, i C.uint, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_repeat(c, i, a) }),
	smtfuzz.OpBVZeroExtend:  indexed("Z3_mk_zero_ext", 0, func(c C.Z3_context, i C.uint, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_zero_ext(c, i, a) }),
	smtfuzz.OpBVSignExtend:  indexed("Z3_mk_sign_ext", 0, func(c C.Z3_context, i C.uint, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_sign_ext(c, i, a) }),
	smtfuzz.OpBVRotateLeft:  indexed("Z3_mk_rotate_left", 0, func(c C.Z3_context, i C.uint, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_rotate_left(c, i, a) }),
	smtfuzz.OpBVRotateRight: indexed("Z3_mk_rotate_right", 0, func(c C.Z3_context, i C.uint, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_rotate_right(c, i, a) }),

	// Integers
	smtfuzz.OpIntNeg:    unary(smtfuzz.TheoryInt, "Z3_mk_unary_minus", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_unary_minus(c, a) }),
	smtfuzz.OpIntAdd:    leftFold(smtfuzz.TheoryInt, "Z3_mk_add", pair(func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_add(c, n, a) })),
	smtfuzz.OpIntSub:    leftFold(smtfuzz.TheoryInt, "Z3_mk_sub", pair(func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_sub(c, n, a) })),
	smtfuzz.OpIntMul:    leftFold(smtfuzz.TheoryInt, "Z3_mk_mul", pair(func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_mul(c, n, a) })),
	smtfuzz.OpIntDiv:    leftFold(smtfuzz.TheoryInt, "Z3_mk_div", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_div(c, a, b) }),
	smtfuzz.OpIntMod:    binary(smtfuzz.TheoryInt, "Z3_mk_mod", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_mod(c, a, b) }),
	smtfuzz.OpIntAbs:    {theory: smtfuzz.TheoryInt, arity: 1, build: intAbs},
	smtfuzz.OpIntLt:     binary(smtfuzz.TheoryInt, "Z3_mk_lt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_lt(c, a, b) }),
	smtfuzz.OpIntLe:     binary(smtfuzz.TheoryInt, "Z3_mk_le", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_le(c, a, b) }),
	smtfuzz.OpIntGt:     binary(smtfuzz.TheoryInt, "Z3_mk_gt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_gt(c, a, b) }),
	smtfuzz.OpIntGe:     binary(smtfuzz.TheoryInt, "Z3_mk_ge", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_ge(c, a, b) }),
	smtfuzz.OpIntToReal: unary(smtfuzz.TheoryInt, "Z3_mk_int2real", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_int2real(c, a) }),

	// Reals
	smtfuzz.OpRealNeg:   unary(smtfuzz.TheoryReal, "Z3_mk_unary_minus", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_unary_minus(c, a) }),
	smtfuzz.OpRealAdd:   leftFold(smtfuzz.TheoryReal, "Z3_mk_add", pair(func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_add(c, n, a) })),
	smtfuzz.OpRealSub:   leftFold(smtfuzz.TheoryReal, "Z3_mk_sub", pair(func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_sub(c, n, a) })),
	smtfuzz.OpRealMul:   leftFold(smtfuzz.TheoryReal, "Z3_mk_mul", pair(func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_mul(c, n, a) })),
	smtfuzz.OpRealDiv:   leftFold(smtfuzz.TheoryReal, "Z3_mk_div", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_div(c, a, b) }),
	smtfuzz.OpRealLt:    binary(smtfuzz.TheoryReal, "Z3_mk_lt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_lt(c, a, b) }),
	smtfuzz.OpRealLe:    binary(smtfuzz.TheoryReal, "Z3_mk_le", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_le(c, a, b) }),
	smtfuzz.OpRealGt:    binary(smtfuzz.TheoryReal, "Z3_mk_gt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_gt(c, a, b) }),
	smtfuzz.OpRealGe:    binary(smtfuzz.TheoryReal, "Z3_mk_ge", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_ge(c, a, b) }),
	smtfuzz.OpRealToInt: unary(smtfuzz.TheoryReal, "Z3_mk_real2int", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_real2int(c, a) }),
	smtfuzz.OpRealIsInt: unary(smtfuzz.TheoryReal, "Z3_mk_is_int", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_is_int(c, a) }),

	// Floating-point
	smtfuzz.OpFPAbs:         unary(smtfuzz.TheoryFP, "Z3_mk_fpa_abs", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_abs(c, a) }),
	smtfuzz.OpFPNeg:         unary(smtfuzz.TheoryFP, "Z3_mk_fpa_neg", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_neg(c, a) }),
	smtfuzz.OpFPAdd:         ternary(smtfuzz.TheoryFP, "Z3_mk_fpa_add", func(c C.Z3_context, rm, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_add(c, rm, a, b) }),
	smtfuzz.OpFPSub:         ternary(smtfuzz.TheoryFP, "Z3_mk_fpa_sub", func(c C.Z3_context, rm, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_sub(c, rm, a, b) }),
	smtfuzz.OpFPMul:         ternary(smtfuzz.TheoryFP, "Z3_mk_fpa_mul", func(c C.Z3_context, rm, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_mul(c, rm, a, b) }),
	smtfuzz.OpFPDiv:         ternary(smtfuzz.TheoryFP, "Z3_mk_fpa_div", func(c C.Z3_context, rm, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_div(c, rm, a, b) }),
	smtfuzz.OpFPSqrt:        binary(smtfuzz.TheoryFP, "Z3_mk_fpa_sqrt", func(c C.Z3_context, rm, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_sqrt(c, rm, a) }),
	smtfuzz.OpFPRTI:         binary(smtfuzz.TheoryFP, "Z3_mk_fpa_round_to_integral", func(c C.Z3_context, rm, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_round_to_integral(c, rm, a) }),
	smtfuzz.OpFPRem:         binary(smtfuzz.TheoryFP, "Z3_mk_fpa_rem", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_rem(c, a, b) }),
	smtfuzz.OpFPMin:         binary(smtfuzz.TheoryFP, "Z3_mk_fpa_min", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_min(c, a, b) }),
	smtfuzz.OpFPMax:         binary(smtfuzz.TheoryFP, "Z3_mk_fpa_max", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_max(c, a, b) }),
	smtfuzz.OpFPEq:          binary(smtfuzz.TheoryFP, "Z3_mk_fpa_eq", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_eq(c, a, b) }),
	smtfuzz.OpFPLeq:         binary(smtfuzz.TheoryFP, "Z3_mk_fpa_leq", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_leq(c, a, b) }),
	smtfuzz.OpFPLt:          binary(smtfuzz.TheoryFP, "Z3_mk_fpa_lt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_lt(c, a, b) }),
	smtfuzz.OpFPGeq:         binary(smtfuzz.TheoryFP, "Z3_mk_fpa_geq", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_geq(c, a, b) }),
	smtfuzz.OpFPGt:          binary(smtfuzz.TheoryFP, "Z3_mk_fpa_gt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_gt(c, a, b) }),
	smtfuzz.OpFPIsNormal:    unary(smtfuzz.TheoryFP, "Z3_mk_fpa_is_normal", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_is_normal(c, a) }),
	smtfuzz.OpFPIsSubnormal: unary(smtfuzz.TheoryFP, "Z3_mk_fpa_is_subnormal", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_is_subnormal(c, a) }),
	smtfuzz.OpFPIsZero:      unary(smtfuzz.TheoryFP, "Z3_mk_fpa_is_zero", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_is_zero(c, a) }),
	smtfuzz.OpFPIsInf:       unary(smtfuzz.TheoryFP, "Z3_mk_fpa_is_infinite", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_is_infinite(c, a) }),
	smtfuzz.OpFPIsNaN:       unary(smtfuzz.TheoryFP, "Z3_mk_fpa_is_nan", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_is_nan(c, a) }),
	smtfuzz.OpFPIsNeg:       unary(smtfuzz.TheoryFP, "Z3_mk_fpa_is_negative", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_is_negative(c, a) }),
	smtfuzz.OpFPIsPos:       unary(smtfuzz.TheoryFP, "Z3_mk_fpa_is_positive", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_is_positive(c, a) }),
	smtfuzz.OpFPFP:          ternary(smtfuzz.TheoryFP, "Z3_mk_fpa_fp", func(c C.Z3_context, sgn, exp, sig C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_fp(c, sgn, exp, sig) }),
	smtfuzz.OpFPToReal:      unary(smtfuzz.TheoryFP, "Z3_mk_fpa_to_real", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_fpa_to_real(c, a) }),
	smtfuzz.OpFPFma: {theory: smtfuzz.TheoryFP, arity: 4, build: func(ctx *Context, args []C.Z3_ast, _ []uint32) (C.Z3_ast, error) {
		return ctx.ast(C.Z3_mk_fpa_fma(ctx.raw, args[0], args[1], args[2], args[3]), "Z3_mk_fpa_fma")
	}},
	smtfuzz.OpFPToFPFromBV: {theory: smtfuzz.TheoryFP, arity: 1, nidx: 2, build: func(ctx *Context, args []C.Z3_ast, idx []uint32) (C.Z3_ast, error) {
		sort, err := ctx.fpSortIndex("Z3_mk_fpa_to_fp_bv", idx)
		if err != nil {
			return nil, err
		}
		return ctx.ast(C.Z3_mk_fpa_to_fp_bv(ctx.raw, args[0], sort), "Z3_mk_fpa_to_fp_bv")
	}},
	smtfuzz.OpFPToFPFromFP:   toFP("Z3_mk_fpa_to_fp_float", func(c C.Z3_context, rm, a C.Z3_ast, s C.Z3_sort) C.Z3_ast { return C.Z3_mk_fpa_to_fp_float(c, rm, a, s) }),
	smtfuzz.OpFPToFPFromReal: toFP("Z3_mk_fpa_to_fp_real", func(c C.Z3_context, rm, a C.Z3_ast, s C.Z3_sort) C.Z3_ast { return C.Z3_mk_fpa_to_fp_real(c, rm, a, s) }),
	smtfuzz.OpFPToFPFromSBV:  toFP("Z3_mk_fpa_to_fp_signed", func(c C.Z3_context, rm, a C.Z3_ast, s C.Z3_sort) C.Z3_ast { return C.Z3_mk_fpa_to_fp_signed(c, rm, a, s) }),
	smtfuzz.OpFPToFPFromUBV:  toFP("Z3_mk_fpa_to_fp_unsigned", func(c C.Z3_context, rm, a C.Z3_ast, s C.Z3_sort) C.Z3_ast { return C.Z3_mk_fpa_to_fp_unsigned(c, rm, a, s) }),
	smtfuzz.OpFPToSBV:        fpToBV("Z3_mk_fpa_to_sbv", func(c C.Z3_context, rm, a C.Z3_ast, sz C.uint) C.Z3_ast { return C.Z3_mk_fpa_to_sbv(c, rm, a, sz) }),
	smtfuzz.OpFPToUBV:        fpToBV("Z3_mk_fpa_to_ubv", func(c C.Z3_context, rm, a C.Z3_ast, sz C.uint) C.Z3_ast { return C.Z3_mk_fpa_to_ubv(c, rm, a, sz) }),

	// Strings
	smtfuzz.OpStrConcat:   leftFold(smtfuzz.TheoryString, "Z3_mk_seq_concat", pair(func(c C.Z3_context, n C.uint, a *C.Z3_ast) C.Z3_ast { return C.Z3_mk_seq_concat(c, n, a) })),
	smtfuzz.OpStrLen:      unary(smtfuzz.TheoryString, "Z3_mk_seq_length", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_seq_length(c, a) }),
	smtfuzz.OpStrAt:       binary(smtfuzz.TheoryString, "Z3_mk_seq_at", func(c C.Z3_context, a, i C.Z3_ast) C.Z3_ast { return C.Z3_mk_seq_at(c, a, i) }),
	smtfuzz.OpStrSubstr:   ternary(smtfuzz.TheoryString, "Z3_mk_seq_extract", func(c C.Z3_context, a, off, n C.Z3_ast) C.Z3_ast { return C.Z3_mk_seq_extract(c, a, off, n) }),
	smtfuzz.OpStrContains: binary(smtfuzz.TheoryString, "Z3_mk_seq_contains", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_seq_contains(c, a, b) }),
	smtfuzz.OpStrPrefixOf: binary(smtfuzz.TheoryString, "Z3_mk_seq_prefix", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_seq_prefix(c, a, b) }),
	smtfuzz.OpStrSuffixOf: binary(smtfuzz.TheoryString, "Z3_mk_seq_suffix", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_seq_suffix(c, a, b) }),
	smtfuzz.OpStrIndexOf:  ternary(smtfuzz.TheoryString, "Z3_mk_seq_index", func(c C.Z3_context, a, b, off C.Z3_ast) C.Z3_ast { return C.Z3_mk_seq_index(c, a, b, off) }),
	smtfuzz.OpStrReplace:  ternary(smtfuzz.TheoryString, "Z3_mk_seq_replace", func(c C.Z3_context, a, b, d C.Z3_ast) C.Z3_ast { return C.Z3_mk_seq_replace(c, a, b, d) }),
	smtfuzz.OpStrLt:       binary(smtfuzz.TheoryString, "Z3_mk_str_lt", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_str_lt(c, a, b) }),
	smtfuzz.OpStrLe:       binary(smtfuzz.TheoryString, "Z3_mk_str_le", func(c C.Z3_context, a, b C.Z3_ast) C.Z3_ast { return C.Z3_mk_str_le(c, a, b) }),
	smtfuzz.OpStrToInt:    unary(smtfuzz.TheoryString, "Z3_mk_str_to_int", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_str_to_int(c, a) }),
	smtfuzz.OpStrFromInt:  unary(smtfuzz.TheoryString, "Z3_mk_int_to_str", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_int_to_str(c, a) }),

	// Z3 extensions
	OpBVRedAnd:     unary(smtfuzz.TheoryBV, "Z3_mk_bvredand", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvredand(c, a) }),
	OpBVRedOr:      unary(smtfuzz.TheoryBV, "Z3_mk_bvredor", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_bvredor(c, a) }),
	OpArrayDefault: unary(smtfuzz.TheoryArray, "Z3_mk_array_default", func(c C.Z3_context, a C.Z3_ast) C.Z3_ast { return C.Z3_mk_array_default(c, a) }),
}
