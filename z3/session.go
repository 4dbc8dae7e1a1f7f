package z3

/*
#include <z3.h>
*/
import "C"

import (
	"io"
	"time"

	"github.com/benbjohnson/smtfuzz"
)

// AssertFormula adds a Boolean formula to the current scope. With unsat
// cores enabled the formula is tracked under a fresh label.
func (s *Solver) AssertFormula(term smtfuzz.Term) error {
	s.mustInit("AssertFormula")
	t := s.toTerm(term)
	if !t.IsBool() {
		return smtfuzz.Errorf("AssertFormula", string(t.kind()), "expected Boolean formula")
	}

	if s.settings.unsatCores {
		label, err := s.ctx.boolConst(s.freshName("core"))
		if err != nil {
			return err
		}
		C.Z3_solver_assert_and_track(s.ctx.raw, s.solver, t.raw, label)
		if err := s.ctx.err("Z3_solver_assert_and_track"); err != nil {
			return err
		}
		s.tracked = append(s.tracked, trackedFormula{label: label, formula: t, depth: s.depth})
	} else {
		C.Z3_solver_assert(s.ctx.raw, s.solver, t.raw)
		if err := s.ctx.err("Z3_solver_assert"); err != nil {
			return err
		}
	}

	s.stateChanged()
	return nil
}

// CheckSat checks the satisfiability of the current assertions.
func (s *Solver) CheckSat() (smtfuzz.Result, error) {
	s.mustInit("CheckSat")
	s.assumptions = nil
	return s.check(nil)
}

// CheckSatAssuming checks the current assertions under Boolean assumptions.
// Assumptions that are not literals are replaced by fresh proxy constants
// defined at the current scope.
func (s *Solver) CheckSatAssuming(assumptions []smtfuzz.Term) (smtfuzz.Result, error) {
	s.mustInit("CheckSatAssuming")
	terms := s.toTerms(assumptions)

	s.stateChanged()

	for i, t := range terms {
		if !t.IsBool() {
			return smtfuzz.UNKNOWN, smtfuzz.Errorf("CheckSatAssuming", string(t.kind()), "assumption %d is not Boolean", i)
		}
	}

	a := make([]assumption, len(terms))
	lits := make([]C.Z3_ast, len(terms))
	for i, t := range terms {
		lit := t.raw
		if !s.ctx.isLiteral(t.raw) {
			p, err := s.ctx.boolConst(s.freshName("assume"))
			if err != nil {
				return smtfuzz.UNKNOWN, err
			}
			def, err := s.ctx.ast(C.Z3_mk_eq(s.ctx.raw, p, t.raw), "Z3_mk_eq")
			if err != nil {
				return smtfuzz.UNKNOWN, err
			}
			C.Z3_solver_assert(s.ctx.raw, s.solver, def)
			if err := s.ctx.err("Z3_solver_assert"); err != nil {
				return smtfuzz.UNKNOWN, err
			}
			lit = p
		}
		a[i], lits[i] = assumption{term: t, lit: lit}, lit
	}

	s.assumptions = a
	return s.check(lits)
}

// check runs the native check and records the result for later queries.
func (s *Solver) check(lits []C.Z3_ast) (smtfuzz.Result, error) {
	s.invalidateModel()
	s.checked = false

	start := time.Now()
	var r C.Z3_lbool
	if len(lits) == 0 {
		r = C.Z3_solver_check(s.ctx.raw, s.solver)
	} else {
		r = C.Z3_solver_check_assumptions(s.ctx.raw, s.solver, C.uint(len(lits)), &lits[0])
	}
	elapsed := time.Since(start)
	s.stats.CheckN++
	s.stats.CheckTime += elapsed

	if err := s.ctx.err("Z3_solver_check"); err != nil {
		return smtfuzz.UNKNOWN, err
	}

	s.reason = ""
	switch r {
	case C.Z3_L_TRUE:
		s.result = smtfuzz.SAT
	case C.Z3_L_FALSE:
		s.result = smtfuzz.UNSAT
	default:
		s.result = smtfuzz.UNKNOWN
		s.reason = C.GoString(C.Z3_solver_get_reason_unknown(s.ctx.raw, s.solver))
	}
	s.checked = true

	s.logger.Debug("check", "result", s.result.String(), "assumptions", len(lits), "depth", s.depth, "elapsed", elapsed)
	return s.result, nil
}

// IsUnsatAssumption returns true if term is an assumption of the last
// unsatisfiable CheckSatAssuming call that is part of the unsat core.
func (s *Solver) IsUnsatAssumption(term smtfuzz.Term) bool {
	s.mustInit("IsUnsatAssumption")
	t := s.toTerm(term)

	a, err := s.GetUnsatAssumptions()
	if err != nil {
		return false
	}
	for _, u := range a {
		if t.Equals(u) {
			return true
		}
	}
	return false
}

// GetUnsatAssumptions returns the assumptions, as passed to the last
// CheckSatAssuming call, that Z3 reports in its unsat core.
func (s *Solver) GetUnsatAssumptions() ([]smtfuzz.Term, error) {
	s.mustInit("GetUnsatAssumptions")
	if !s.settings.unsatAssumptions {
		return nil, smtfuzz.Errorf("GetUnsatAssumptions", smtfuzz.OptionProduceUnsatAssumptions, "option not enabled")
	} else if !s.checked || s.result != smtfuzz.UNSAT || s.assumptions == nil {
		return nil, smtfuzz.Errorf("GetUnsatAssumptions", "", "last check was not an unsatisfiable check with assumptions")
	}

	core, err := s.unsatCore()
	if err != nil {
		return nil, err
	}

	var a []smtfuzz.Term
	for _, asm := range s.assumptions {
		if containsAST(s.ctx, core, asm.lit) {
			a = append(a, asm.term)
		}
	}
	return a, nil
}

// GetUnsatCore returns the asserted formulas in the unsat core of the last
// check. Only formulas asserted while unsat cores were enabled are tracked.
func (s *Solver) GetUnsatCore() ([]smtfuzz.Term, error) {
	s.mustInit("GetUnsatCore")
	if !s.settings.unsatCores {
		return nil, smtfuzz.Errorf("GetUnsatCore", smtfuzz.OptionProduceUnsatCores, "option not enabled")
	} else if !s.checked || s.result != smtfuzz.UNSAT {
		return nil, smtfuzz.Errorf("GetUnsatCore", "", "last check was not unsatisfiable")
	}

	core, err := s.unsatCore()
	if err != nil {
		return nil, err
	}

	var a []smtfuzz.Term
	for _, f := range s.tracked {
		if containsAST(s.ctx, core, f.label) {
			a = append(a, f.formula)
		}
	}
	return a, nil
}

// unsatCore returns the native unsat core of the last check.
func (s *Solver) unsatCore() ([]C.Z3_ast, error) {
	raw := s.ctx.raw
	v := C.Z3_solver_get_unsat_core(raw, s.solver)
	if err := s.ctx.err("Z3_solver_get_unsat_core"); err != nil {
		return nil, err
	}
	C.Z3_ast_vector_inc_ref(raw, v)
	defer C.Z3_ast_vector_dec_ref(raw, v)

	n := C.Z3_ast_vector_size(raw, v)
	a := make([]C.Z3_ast, 0, int(n))
	for i := C.uint(0); i < n; i++ {
		e, err := s.ctx.ast(C.Z3_ast_vector_get(raw, v, i), "Z3_ast_vector_get")
		if err != nil {
			return nil, err
		}
		a = append(a, e)
	}
	return a, nil
}

func containsAST(ctx *Context, a []C.Z3_ast, x C.Z3_ast) bool {
	for _, e := range a {
		if bool(C.Z3_is_eq_ast(ctx.raw, e, x)) {
			return true
		}
	}
	return false
}

// GetValue evaluates terms in the model of the last satisfiable check. The
// model is built on first use and cached until the assertion state changes.
func (s *Solver) GetValue(terms []smtfuzz.Term) ([]smtfuzz.Term, error) {
	s.mustInit("GetValue")
	a := s.toTerms(terms)

	m, err := s.getModel("GetValue")
	if err != nil {
		return nil, err
	}

	values := make([]smtfuzz.Term, len(a))
	for i, t := range a {
		var out C.Z3_ast
		if !bool(C.Z3_model_eval(s.ctx.raw, m, t.raw, true, &out)) {
			if err := s.ctx.err("Z3_model_eval"); err != nil {
				return nil, err
			}
			return nil, smtfuzz.Errorf("GetValue", t.String(), "term cannot be evaluated in model")
		}
		v, err := s.newTerm(out, "Z3_model_eval")
		if err != nil {
			return nil, err
		}
		v.fun = t.fun
		values[i] = v
	}
	return values, nil
}

// PrintModel writes the model of the last satisfiable check to w.
func (s *Solver) PrintModel(w io.Writer) error {
	s.mustInit("PrintModel")
	m, err := s.getModel("PrintModel")
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s.ctx.modelToString(m))
	return err
}

// getModel returns the cached model, building it if necessary.
func (s *Solver) getModel(op string) (C.Z3_model, error) {
	if !s.settings.modelGen {
		return nil, smtfuzz.Errorf(op, smtfuzz.OptionProduceModels, "option not enabled")
	} else if !s.checked || s.result != smtfuzz.SAT {
		return nil, smtfuzz.Errorf(op, "", "last check was not satisfiable")
	}
	if s.model != nil {
		return s.model, nil
	}

	m := C.Z3_solver_get_model(s.ctx.raw, s.solver)
	if err := s.ctx.err("Z3_solver_get_model"); err != nil {
		return nil, err
	}
	C.Z3_model_inc_ref(s.ctx.raw, m)
	s.model = m
	s.stats.ModelN++

	s.logger.Debug("model built")
	return m, nil
}

// Push opens n scopes.
func (s *Solver) Push(n uint32) error {
	s.mustInit("Push")
	s.stateChanged()
	for i := uint32(0); i < n; i++ {
		C.Z3_solver_push(s.ctx.raw, s.solver)
		if err := s.ctx.err("Z3_solver_push"); err != nil {
			return err
		}
		s.depth++
	}

	s.logger.Debug("push", "n", n, "depth", s.depth)
	return nil
}

// Pop closes n scopes and forgets the formulas tracked within them.
func (s *Solver) Pop(n uint32) error {
	s.mustInit("Pop")
	if n > s.depth {
		return smtfuzz.Errorf("Pop", "", "cannot pop %d scopes at depth %d", n, s.depth)
	}
	s.stateChanged()

	var err error
	for i := uint32(0); i < n; i++ {
		C.Z3_solver_pop(s.ctx.raw, s.solver, 1)
		if err = s.ctx.err("Z3_solver_pop"); err != nil {
			break
		}
		s.depth--
	}

	s.dropTracked()
	if err != nil {
		return err
	}

	s.logger.Debug("pop", "n", n, "depth", s.depth)
	return nil
}

// dropTracked forgets tracked formulas asserted in scopes above the current depth.
func (s *Solver) dropTracked() {
	tracked := s.tracked[:0]
	for _, f := range s.tracked {
		if f.depth <= s.depth {
			tracked = append(tracked, f)
		}
	}
	s.tracked = tracked
}
