package z3_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/benbjohnson/smtfuzz"
	"github.com/benbjohnson/smtfuzz/z3"
	"github.com/google/go-cmp/cmp"
)

func TestSolver_PushPop(t *testing.T) {
	s := MustNewSolver(t)
	defer MustDeleteSolver(s)

	x := MustMkConst(t, s, MustMkSort(t, s, smtfuzz.SortBool), "x")
	MustAssertFormula(t, s, x)

	if err := s.Push(1); err != nil {
		t.Fatal(err)
	} else if got := s.Depth(); got != 1 {
		t.Fatalf("Depth()=%d, want 1", got)
	}
	MustAssertFormula(t, s, MustMkTerm(t, s, smtfuzz.OpNot, []smtfuzz.Term{x}))
	if got := MustCheckSat(t, s); got != smtfuzz.UNSAT {
		t.Fatalf("CheckSat()=%s, want unsat", got)
	}

	if err := s.Pop(1); err != nil {
		t.Fatal(err)
	} else if got := s.Depth(); got != 0 {
		t.Fatalf("Depth()=%d, want 0", got)
	}
	if got := MustCheckSat(t, s); got != smtfuzz.SAT {
		t.Fatalf("CheckSat()=%s, want sat", got)
	}

	t.Run("Multiple", func(t *testing.T) {
		if err := s.Push(3); err != nil {
			t.Fatal(err)
		} else if err := s.Pop(2); err != nil {
			t.Fatal(err)
		} else if got := s.Depth(); got != 1 {
			t.Fatalf("Depth()=%d, want 1", got)
		} else if err := s.Pop(1); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("ErrPopTooFar", func(t *testing.T) {
		if err := s.Pop(1); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		} else if got := s.Depth(); got != 0 {
			t.Fatalf("Depth()=%d, want 0", got)
		}
	})
}

func TestSolver_GetValue(t *testing.T) {
	s := MustNewSolver(t)
	defer MustDeleteSolver(s)

	sort := MustMkBVSort(t, s, 8)
	x := MustMkConst(t, s, sort, "x")
	five, six := MustMkValueBase(t, s, sort, "5", smtfuzz.DEC), MustMkValueBase(t, s, sort, "6", smtfuzz.DEC)

	if _, err := s.GetValue([]smtfuzz.Term{x}); !errors.Is(err, smtfuzz.ErrConfig) {
		t.Fatalf("unexpected error before check: %v", err)
	}

	MustAssertFormula(t, s, MustMkTerm(t, s, smtfuzz.OpBVUGe, []smtfuzz.Term{x, five}))
	if got := MustCheckSat(t, s); got != smtfuzz.SAT {
		t.Fatalf("CheckSat()=%s, want sat", got)
	}

	// The model is built once and reused until the state changes.
	v0 := MustGetValue(t, s, x)
	v1 := MustGetValue(t, s, x)
	if !v0.Equals(v1) {
		t.Fatalf("unstable value: %s != %s", v0, v1)
	} else if got := s.Stats().ModelN; got != 1 {
		t.Fatalf("ModelN=%d, want 1", got)
	}

	MustAssertFormula(t, s, MustMkTerm(t, s, smtfuzz.OpEqual, []smtfuzz.Term{x, six}))
	if _, err := s.GetValue([]smtfuzz.Term{x}); !errors.Is(err, smtfuzz.ErrConfig) {
		t.Fatalf("unexpected error after assert: %v", err)
	}

	if got := MustCheckSat(t, s); got != smtfuzz.SAT {
		t.Fatalf("CheckSat()=%s, want sat", got)
	}
	if v := MustGetValue(t, s, x); !v.Equals(six) {
		t.Fatalf("GetValue()=%s, want %s", v, six)
	} else if got := s.Stats().ModelN; got != 2 {
		t.Fatalf("ModelN=%d, want 2", got)
	}

	t.Run("ResetSat", func(t *testing.T) {
		s.ResetSat()
		MustGetValue(t, s, x)
		if got := s.Stats().ModelN; got != 3 {
			t.Fatalf("ModelN=%d, want 3", got)
		}
	})

	t.Run("PrintModel", func(t *testing.T) {
		var buf bytes.Buffer
		if err := s.PrintModel(&buf); err != nil {
			t.Fatal(err)
		} else if !strings.Contains(buf.String(), "x") {
			t.Fatalf("unexpected model: %s", buf.String())
		}
	})

	t.Run("ErrUnsat", func(t *testing.T) {
		MustAssertFormula(t, s, MustMkTerm(t, s, smtfuzz.OpEqual, []smtfuzz.Term{x, five}))
		if got := MustCheckSat(t, s); got != smtfuzz.UNSAT {
			t.Fatalf("CheckSat()=%s, want unsat", got)
		} else if _, err := s.GetValue([]smtfuzz.Term{x}); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		} else if err := s.PrintModel(&bytes.Buffer{}); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSolver_CheckSatAssuming(t *testing.T) {
	s := MustNewSolver(t)
	defer MustDeleteSolver(s)

	boolSort := MustMkSort(t, s, smtfuzz.SortBool)
	p, q, r := MustMkConst(t, s, boolSort, "p"), MustMkConst(t, s, boolSort, "q"), MustMkConst(t, s, boolSort, "r")
	notP := MustMkTerm(t, s, smtfuzz.OpNot, []smtfuzz.Term{p})
	qAndR := MustMkTerm(t, s, smtfuzz.OpAnd, []smtfuzz.Term{q, r})

	MustAssertFormula(t, s, MustMkTerm(t, s, smtfuzz.OpImplies, []smtfuzz.Term{p, MustMkTerm(t, s, smtfuzz.OpNot, []smtfuzz.Term{q})}))

	t.Run("Sat", func(t *testing.T) {
		if got, err := s.CheckSatAssuming([]smtfuzz.Term{notP, qAndR}); err != nil {
			t.Fatal(err)
		} else if got != smtfuzz.SAT {
			t.Fatalf("CheckSatAssuming()=%s, want sat", got)
		}
		if _, err := s.GetUnsatAssumptions(); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Unsat", func(t *testing.T) {
		if got, err := s.CheckSatAssuming([]smtfuzz.Term{p, qAndR, notP}); err != nil {
			t.Fatal(err)
		} else if got != smtfuzz.UNSAT {
			t.Fatalf("CheckSatAssuming()=%s, want unsat", got)
		}

		core, err := s.GetUnsatAssumptions()
		if err != nil {
			t.Fatal(err)
		} else if len(core) == 0 {
			t.Fatal("expected unsat assumptions")
		}
		for _, a := range core {
			if !a.Equals(p) && !a.Equals(qAndR) && !a.Equals(notP) {
				t.Fatalf("unexpected assumption in core: %s", a)
			} else if !s.IsUnsatAssumption(a) {
				t.Fatalf("IsUnsatAssumption(%s)=false", a)
			}
		}
		if s.IsUnsatAssumption(r) {
			t.Fatal("IsUnsatAssumption(r)=true")
		}
	})

	t.Run("StateChangeClearsAssumptions", func(t *testing.T) {
		MustAssertFormula(t, s, r)
		if _, err := s.GetUnsatAssumptions(); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ErrNotBool", func(t *testing.T) {
		x := MustMkConst(t, s, MustMkSort(t, s, smtfuzz.SortInt), "x")
		if _, err := s.CheckSatAssuming([]smtfuzz.Term{x}); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	// A rejected call discards the results of the previous check.
	t.Run("ErrNotBoolClearsResult", func(t *testing.T) {
		x := MustMkConst(t, s, MustMkSort(t, s, smtfuzz.SortInt), "y")

		if got, err := s.CheckSatAssuming([]smtfuzz.Term{p, qAndR, notP}); err != nil {
			t.Fatal(err)
		} else if got != smtfuzz.UNSAT {
			t.Fatalf("CheckSatAssuming()=%s, want unsat", got)
		}
		if _, err := s.CheckSatAssuming([]smtfuzz.Term{qAndR, x}); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		} else if _, err := s.GetUnsatAssumptions(); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		}

		if got, err := s.CheckSatAssuming([]smtfuzz.Term{notP}); err != nil {
			t.Fatal(err)
		} else if got != smtfuzz.SAT {
			t.Fatalf("CheckSatAssuming()=%s, want sat", got)
		}
		if _, err := s.CheckSatAssuming([]smtfuzz.Term{x}); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		} else if _, err := s.GetValue([]smtfuzz.Term{p}); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		}

		// The rejected calls leave no assertions behind.
		if got, err := s.CheckSatAssuming([]smtfuzz.Term{qAndR}); err != nil {
			t.Fatal(err)
		} else if got != smtfuzz.SAT {
			t.Fatalf("CheckSatAssuming()=%s, want sat", got)
		}
	})
}

func TestSolver_GetUnsatCore(t *testing.T) {
	s := MustNewSolver(t)
	defer MustDeleteSolver(s)

	boolSort := MustMkSort(t, s, smtfuzz.SortBool)
	p, q := MustMkConst(t, s, boolSort, "p"), MustMkConst(t, s, boolSort, "q")
	notP := MustMkTerm(t, s, smtfuzz.OpNot, []smtfuzz.Term{p})

	MustAssertFormula(t, s, p)
	if got := MustCheckSat(t, s); got != smtfuzz.SAT {
		t.Fatalf("CheckSat()=%s, want sat", got)
	} else if _, err := s.GetUnsatCore(); !errors.Is(err, smtfuzz.ErrConfig) {
		t.Fatalf("unexpected error with cores disabled: %v", err)
	}

	MustSetOpt(t, s, smtfuzz.OptionProduceUnsatCores, "true")
	MustResetAssertions(t, s)

	MustAssertFormula(t, s, q)
	MustAssertFormula(t, s, p)
	if err := s.Push(1); err != nil {
		t.Fatal(err)
	}
	MustAssertFormula(t, s, notP)
	if got := MustCheckSat(t, s); got != smtfuzz.UNSAT {
		t.Fatalf("CheckSat()=%s, want unsat", got)
	}

	core, err := s.GetUnsatCore()
	if err != nil {
		t.Fatal(err)
	} else if !containsTerm(core, p) || !containsTerm(core, notP) {
		t.Fatalf("unexpected core: %v", core)
	}

	// Formulas in popped scopes leave the core.
	if err := s.Pop(1); err != nil {
		t.Fatal(err)
	}
	notQ := MustMkTerm(t, s, smtfuzz.OpNot, []smtfuzz.Term{q})
	MustAssertFormula(t, s, notQ)
	if got := MustCheckSat(t, s); got != smtfuzz.UNSAT {
		t.Fatalf("CheckSat()=%s, want unsat", got)
	}
	if core, err = s.GetUnsatCore(); err != nil {
		t.Fatal(err)
	} else if !containsTerm(core, q) || !containsTerm(core, notQ) {
		t.Fatalf("unexpected core: %v", core)
	} else if containsTerm(core, notP) {
		t.Fatalf("popped formula in core: %v", core)
	}
}

func containsTerm(a []smtfuzz.Term, t smtfuzz.Term) bool {
	for _, x := range a {
		if x.Equals(t) {
			return true
		}
	}
	return false
}

func TestSolver_SetOpt(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		s := MustNewSolver(t)
		defer MustDeleteSolver(s)

		if !s.OptionIncrementalEnabled() || !s.OptionModelGenEnabled() || !s.OptionUnsatAssumptionsEnabled() {
			t.Fatal("expected incremental, models and unsat assumptions enabled")
		} else if s.OptionUnsatCoresEnabled() {
			t.Fatal("expected unsat cores disabled")
		}

		if diff := cmp.Diff(
			[]string{s.OptionNameIncremental(), s.OptionNameModelGen(), s.OptionNameUnsatAssumptions(), s.OptionNameUnsatCores()},
			[]string{"incremental", "produce-models", "produce-unsat-assumptions", "produce-unsat-cores"},
		); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("Canonical", func(t *testing.T) {
		s := MustNewSolver(t)
		defer MustDeleteSolver(s)

		MustSetOpt(t, s, smtfuzz.OptionIncremental, "false")
		if !s.OptionIncrementalEnabled() {
			t.Fatal("expected incremental to stay enabled")
		}

		MustSetOpt(t, s, smtfuzz.OptionProduceModels, "false")
		if s.OptionModelGenEnabled() {
			t.Fatal("expected models disabled")
		}
		x := MustMkConst(t, s, MustMkSort(t, s, smtfuzz.SortBool), "x")
		MustAssertFormula(t, s, x)
		if got := MustCheckSat(t, s); got != smtfuzz.SAT {
			t.Fatalf("CheckSat()=%s, want sat", got)
		} else if _, err := s.GetValue([]smtfuzz.Term{x}); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		}

		MustSetOpt(t, s, smtfuzz.OptionProduceUnsatAssumptions, "false")
		MustSetOpt(t, s, smtfuzz.OptionProduceUnsatCores, "true")
		if s.OptionUnsatAssumptionsEnabled() || !s.OptionUnsatCoresEnabled() {
			t.Fatal("unexpected unsat option state")
		}

		// ResetAssertions keeps options; Reset restores the defaults.
		MustResetAssertions(t, s)
		if s.OptionModelGenEnabled() {
			t.Fatal("expected models to stay disabled")
		}
		if err := s.Reset(); err != nil {
			t.Fatal(err)
		} else if !s.OptionModelGenEnabled() || s.OptionUnsatCoresEnabled() {
			t.Fatal("expected default options after reset")
		}
	})

	t.Run("PassThrough", func(t *testing.T) {
		s := MustNewSolver(t)
		defer MustDeleteSolver(s)

		MustSetOpt(t, s, "timeout", "1000")
		MustSetOpt(t, s, "random_seed", "7")
		if diff := cmp.Diff(s.Options(), map[string]string{"timeout": "1000", "random_seed": "7"}); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("ErrRejectedKeepsPrevious", func(t *testing.T) {
		s := MustNewSolver(t)
		defer MustDeleteSolver(s)

		MustSetOpt(t, s, "timeout", "1000")
		if err := s.SetOpt("no_such_parameter", "1"); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		} else if diff := cmp.Diff(s.Options(), map[string]string{"timeout": "1000"}); diff != "" {
			t.Fatal(diff)
		}

		// The solver keeps working with the previous parameters.
		x := MustMkConst(t, s, MustMkSort(t, s, smtfuzz.SortBool), "x")
		MustAssertFormula(t, s, x)
		if got := MustCheckSat(t, s); got != smtfuzz.SAT {
			t.Fatalf("CheckSat()=%s, want sat", got)
		}

		// Parameters re-applied by ResetAssertions are still the valid set.
		MustResetAssertions(t, s)
		MustAssertFormula(t, s, x)
		if got := MustCheckSat(t, s); got != smtfuzz.SAT {
			t.Fatalf("CheckSat()=%s, want sat", got)
		}
	})

	t.Run("ErrRejectedAfterUse", func(t *testing.T) {
		s := MustNewSolver(t)
		defer MustDeleteSolver(s)

		x := MustMkConst(t, s, MustMkSort(t, s, smtfuzz.SortBool), "x")
		MustAssertFormula(t, s, x)
		if got := MustCheckSat(t, s); got != smtfuzz.SAT {
			t.Fatalf("CheckSat()=%s, want sat", got)
		}

		if err := s.SetOpt("no_such_parameter", "1"); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		} else if len(s.Options()) != 0 {
			t.Fatalf("unexpected options: %v", s.Options())
		}
		MustAssertFormula(t, s, MustMkTerm(t, s, smtfuzz.OpNot, []smtfuzz.Term{x}))
		if got := MustCheckSat(t, s); got != smtfuzz.UNSAT {
			t.Fatalf("CheckSat()=%s, want unsat", got)
		}
	})

	t.Run("ErrInvalidBool", func(t *testing.T) {
		s := MustNewSolver(t)
		defer MustDeleteSolver(s)

		if err := s.SetOpt(smtfuzz.OptionProduceModels, "yes"); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		} else if !s.OptionModelGenEnabled() {
			t.Fatal("expected models to stay enabled")
		} else if err := s.SetOpt("", "1"); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSolver_Profile(t *testing.T) {
	s := z3.New()

	p, err := smtfuzz.ParseProfile([]byte(s.Profile()))
	if err != nil {
		t.Fatal(err)
	}
	for _, theory := range []smtfuzz.Theory{smtfuzz.TheoryBV, smtfuzz.TheoryDT, smtfuzz.TheoryFP, smtfuzz.TheoryQuant, smtfuzz.TheoryUF} {
		if !p.IncludesTheory(theory) {
			t.Fatalf("expected %s included", theory)
		}
	}
	if p.IncludesTheory(smtfuzz.TheorySet) || p.IncludesTheory(smtfuzz.TheoryBag) {
		t.Fatal("expected sets and bags excluded")
	}
	for _, kind := range []smtfuzz.SortKind{smtfuzz.SortRegLan, smtfuzz.SortBag, smtfuzz.SortSet} {
		if !p.ExcludesSort(kind) {
			t.Fatalf("expected %s excluded", kind)
		}
	}

	t.Run("ConfigureOpMgr", func(t *testing.T) {
		r := smtfuzz.NewOpKindRegistry()
		if err := s.ConfigureOpMgr(r); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(r.Kinds(), []smtfuzz.OpKind{z3.OpArrayDefault, z3.OpBVRedAnd, z3.OpBVRedOr}); diff != "" {
			t.Fatal(diff)
		}

		// Registering twice is rejected by the registry.
		if err := s.ConfigureOpMgr(r); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DisableUnsupportedActions", func(t *testing.T) {
		var fsm disabledActions
		s.DisableUnsupportedActions(&fsm)
		if len(fsm) != 0 {
			t.Fatalf("unexpected disabled actions: %v", fsm)
		}
	})
}

// disabledActions records the actions a backend disables.
type disabledActions []string

func (a *disabledActions) DisableAction(name string) { *a = append(*a, name) }

func MustGetValue(tb testing.TB, s *z3.Solver, t smtfuzz.Term) smtfuzz.Term {
	tb.Helper()
	a, err := s.GetValue([]smtfuzz.Term{t})
	if err != nil {
		tb.Fatal(err)
	}
	return a[0]
}

func MustSetOpt(tb testing.TB, s *z3.Solver, name, value string) {
	tb.Helper()
	if err := s.SetOpt(name, value); err != nil {
		tb.Fatal(err)
	}
}
