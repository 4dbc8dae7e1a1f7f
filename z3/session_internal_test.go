package z3

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSolver_dropTracked(t *testing.T) {
	// A pop that stopped at depth 1 keeps only formulas from scopes 0 and 1.
	s := &Solver{depth: 1}
	for _, depth := range []uint32{0, 2, 1, 3, 0} {
		s.tracked = append(s.tracked, trackedFormula{depth: depth})
	}
	s.dropTracked()

	var got []uint32
	for _, f := range s.tracked {
		got = append(got, f.depth)
	}
	if diff := cmp.Diff(got, []uint32{0, 1, 0}); diff != "" {
		t.Fatal(diff)
	}
}
