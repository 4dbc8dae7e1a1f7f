package z3

/*
#cgo LDFLAGS: -lz3
#include <z3.h>
*/
import "C"

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/benbjohnson/smtfuzz"
)

// Name is the name the backend reports to the harness.
const Name = "Z3"

// Ensure solver implements interface.
var _ smtfuzz.Solver = (*Solver)(nil)

// Solver drives an embedded Z3 solver on behalf of the harness.
//
// A Solver starts uninitialized. NewSolver allocates the native context and
// solver; DeleteSolver releases them. Sorts and terms are only valid while
// the solver that created them is initialized.
type Solver struct {
	ctx    *Context
	solver C.Z3_solver
	model  C.Z3_model // cached model; nil when invalid
	params C.Z3_params

	settings settings

	depth   uint32
	result  smtfuzz.Result
	checked bool // result is for the current assertion state
	reason  string

	assumptions []assumption
	tracked     []trackedFormula
	nextID      int

	datatypes []*Sort // declared by MkDatatypeSort, searched by constructor name

	logger *slog.Logger
	stats  Stats
}

// assumption pairs a check-sat-assuming argument with the literal passed to Z3.
type assumption struct {
	term *Term
	lit  C.Z3_ast
}

// trackedFormula is an assertion tracked by a label for unsat cores.
type trackedFormula struct {
	label   C.Z3_ast
	formula *Term
	depth   uint32
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger used for solver events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) { s.logger = logger }
}

// New returns a new, uninitialized instance of Solver.
func New(opts ...Option) *Solver {
	s := &Solver{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSolver allocates the native context and solver. It may be called again
// after DeleteSolver.
func (s *Solver) NewSolver() error {
	smtfuzz.Assert(s.ctx == nil, "NewSolver: solver already initialized")

	ctx := NewContext()
	solver := C.Z3_mk_solver(ctx.raw)
	if err := ctx.err("Z3_mk_solver"); err != nil {
		ctx.Close()
		return err
	}
	C.Z3_solver_inc_ref(ctx.raw, solver)

	s.ctx, s.solver = ctx, solver
	s.clearState()
	s.settings = defaultSettings()
	if err := s.applySettings(s.settings); err != nil {
		s.DeleteSolver()
		return err
	}

	s.logger.Debug("solver initialized", "name", Name)
	return nil
}

// DeleteSolver releases the solver, then the cached model, then the context.
func (s *Solver) DeleteSolver() error {
	smtfuzz.Assert(s.ctx != nil, "DeleteSolver: solver not initialized")

	C.Z3_solver_dec_ref(s.ctx.raw, s.solver)
	s.solver = nil
	s.invalidateModel()
	if s.params != nil {
		C.Z3_params_dec_ref(s.ctx.raw, s.params)
		s.params = nil
	}

	err := s.ctx.Close()
	s.ctx = nil
	s.datatypes = nil
	s.clearState()

	s.logger.Debug("solver deleted")
	return err
}

// IsInitialized returns true between NewSolver and DeleteSolver.
func (s *Solver) IsInitialized() bool { return s.ctx != nil }

// Name returns "Z3".
func (s *Solver) Name() string { return Name }

// Stats returns statistics for the solver.
func (s *Solver) Stats() Stats { return s.stats }

// Depth returns the current push depth.
func (s *Solver) Depth() uint32 { return s.depth }

// ReasonUnknown returns the reason Z3 gave for the last UNKNOWN result.
func (s *Solver) ReasonUnknown() string { return s.reason }

// Reset clears all assertions and restores default options.
func (s *Solver) Reset() error {
	s.mustInit("Reset")
	C.Z3_solver_reset(s.ctx.raw, s.solver)
	if err := s.ctx.err("Z3_solver_reset"); err != nil {
		return err
	}
	s.clearState()

	st := defaultSettings()
	if err := s.applySettings(st); err != nil {
		return err
	}
	s.settings = st
	s.logger.Debug("solver reset")
	return nil
}

// ResetAssertions clears all assertions and keeps options.
func (s *Solver) ResetAssertions() error {
	s.mustInit("ResetAssertions")
	C.Z3_solver_reset(s.ctx.raw, s.solver)
	if err := s.ctx.err("Z3_solver_reset"); err != nil {
		return err
	}
	s.clearState()
	if err := s.applySettings(s.settings); err != nil {
		return err
	}
	s.logger.Debug("assertions reset")
	return nil
}

// ResetSat invalidates the cached model only.
func (s *Solver) ResetSat() {
	s.invalidateModel()
}

// clearState drops everything tied to the assertion stack.
func (s *Solver) clearState() {
	s.invalidateModel()
	s.depth = 0
	s.result, s.checked, s.reason = smtfuzz.UNKNOWN, false, ""
	s.assumptions, s.tracked = nil, nil
}

// invalidateModel releases the cached model, if any.
func (s *Solver) invalidateModel() {
	if s.model == nil {
		return
	}
	if s.ctx != nil {
		C.Z3_model_dec_ref(s.ctx.raw, s.model)
	}
	s.model = nil
}

// stateChanged is called by every operation that changes the assertion state.
func (s *Solver) stateChanged() {
	s.invalidateModel()
	s.checked = false
	s.assumptions = nil
}

func (s *Solver) mustInit(op string) {
	smtfuzz.Assert(s.ctx != nil, "%s: solver not initialized", op)
}

// toSort returns the Z3 sort behind sort. Sorts from another backend or
// solver instance are a caller bug.
func (s *Solver) toSort(sort smtfuzz.Sort) *Sort {
	v, ok := sort.(*Sort)
	smtfuzz.Assert(ok && v != nil, "unexpected sort type %T", sort)
	smtfuzz.Assert(s.ctx != nil && v.ctx == s.ctx, "sort %p does not belong to this solver", v)
	return v
}

func (s *Solver) toSorts(sorts []smtfuzz.Sort) []*Sort {
	a := make([]*Sort, len(sorts))
	for i := range sorts {
		a[i] = s.toSort(sorts[i])
	}
	return a
}

// toTerm returns the Z3 term behind term. Terms from another backend or
// solver instance are a caller bug.
func (s *Solver) toTerm(term smtfuzz.Term) *Term {
	v, ok := term.(*Term)
	smtfuzz.Assert(ok && v != nil, "unexpected term type %T", term)
	smtfuzz.Assert(s.ctx != nil && v.ctx == s.ctx, "term %p does not belong to this solver", v)
	return v
}

func (s *Solver) toTerms(terms []smtfuzz.Term) []*Term {
	a := make([]*Term, len(terms))
	for i := range terms {
		a[i] = s.toTerm(terms[i])
	}
	return a
}

func (s *Solver) newSort(raw C.Z3_sort, op string) (*Sort, error) {
	raw, err := s.ctx.sort(raw, op)
	if err != nil {
		return nil, err
	}
	return &Sort{ctx: s.ctx, raw: raw}, nil
}

func (s *Solver) newTerm(raw C.Z3_ast, op string) (*Term, error) {
	raw, err := s.ctx.ast(raw, op)
	if err != nil {
		return nil, err
	}
	return &Term{ctx: s.ctx, raw: raw}, nil
}

// sortResult returns sort as an interface, or a nil interface on error.
func sortResult(sort *Sort, err error) (smtfuzz.Sort, error) {
	if err != nil {
		return nil, err
	}
	return sort, nil
}

// termResult returns term as an interface, or a nil interface on error.
func termResult(term *Term, err error) (smtfuzz.Term, error) {
	if err != nil {
		return nil, err
	}
	return term, nil
}

// freshName returns a numbered internal name.
func (s *Solver) freshName(prefix string) string {
	s.nextID++
	return prefix + "!" + strconv.Itoa(s.nextID)
}

// Stats holds counters for a solver.
type Stats struct {
	CheckN    int
	CheckTime time.Duration
	ModelN    int // models built
}
