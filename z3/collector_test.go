package z3_test

import (
	"strings"
	"testing"

	"github.com/benbjohnson/smtfuzz"
	"github.com/benbjohnson/smtfuzz/z3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector(t *testing.T) {
	s := MustNewSolver(t)
	defer MustDeleteSolver(s)

	c := z3.NewCollector(s)
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		t.Fatal(err)
	}

	x := MustMkConst(t, s, MustMkSort(t, s, smtfuzz.SortBool), "x")
	MustAssertFormula(t, s, x)
	MustCheckSat(t, s)
	MustCheckSat(t, s)
	MustGetValue(t, s, x)
	if err := s.Push(2); err != nil {
		t.Fatal(err)
	}

	if err := testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP smtfuzz_solver_checks_total Total number of satisfiability checks.
# TYPE smtfuzz_solver_checks_total counter
smtfuzz_solver_checks_total{solver="Z3"} 2
# HELP smtfuzz_solver_depth Current assertion scope depth.
# TYPE smtfuzz_solver_depth gauge
smtfuzz_solver_depth{solver="Z3"} 2
# HELP smtfuzz_solver_models_total Total number of models built.
# TYPE smtfuzz_solver_models_total counter
smtfuzz_solver_models_total{solver="Z3"} 1
`), "smtfuzz_solver_checks_total", "smtfuzz_solver_depth", "smtfuzz_solver_models_total"); err != nil {
		t.Fatal(err)
	}

	if n := testutil.CollectAndCount(c); n != 4 {
		t.Fatalf("CollectAndCount()=%d, want 4", n)
	}
}
