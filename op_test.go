package smtfuzz_test

import (
	"errors"
	"testing"

	"github.com/benbjohnson/smtfuzz"
	"github.com/google/go-cmp/cmp"
)

func TestOpKindRegistry(t *testing.T) {
	t.Run("Kinds", func(t *testing.T) {
		r := smtfuzz.NewOpKindRegistry(
			&smtfuzz.Op{Kind: smtfuzz.OpOr, Arity: smtfuzz.ArityN},
			&smtfuzz.Op{Kind: smtfuzz.OpAnd, Arity: smtfuzz.ArityN},
		)
		if err := r.AddOpKind(&smtfuzz.Op{Kind: "OP_Z3_BV_REDOR", Arity: 1}); err != nil {
			t.Fatal(err)
		}

		if got := r.Len(); got != 3 {
			t.Fatalf("Len()=%d, want 3", got)
		} else if diff := cmp.Diff(r.Kinds(), []smtfuzz.OpKind{"OP_AND", "OP_OR", "OP_Z3_BV_REDOR"}); diff != "" {
			t.Fatal(diff)
		} else if op := r.Op("OP_Z3_BV_REDOR"); op == nil || op.Arity != 1 {
			t.Fatalf("unexpected op: %v", op)
		} else if op := r.Op("OP_XOR"); op != nil {
			t.Fatalf("unexpected op: %v", op)
		}
	})

	t.Run("Err", func(t *testing.T) {
		r := smtfuzz.NewOpKindRegistry(&smtfuzz.Op{Kind: smtfuzz.OpAnd})
		for _, op := range []*smtfuzz.Op{
			nil,
			{Kind: ""},
			{Kind: "BV_REDOR"},
			{Kind: smtfuzz.OpAnd},
		} {
			if err := r.AddOpKind(op); !errors.Is(err, smtfuzz.ErrConfig) {
				t.Fatalf("%v: unexpected error: %v", op, err)
			}
		}
		if got := r.Len(); got != 1 {
			t.Fatalf("Len()=%d, want 1", got)
		}
	})
}

func TestOp(t *testing.T) {
	op := &smtfuzz.Op{
		Kind:   smtfuzz.OpBVConcat,
		Arity:  smtfuzz.ArityN,
		Result: smtfuzz.SortBV,
		Args:   []smtfuzz.SortKind{smtfuzz.SortBV},
	}
	if got, want := op.String(), "OP_BV_CONCAT/n[0] -> SORT_BV"; got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	} else if got := op.ArgSortKind(5); got != smtfuzz.SortBV {
		t.Fatalf("ArgSortKind(5)=%s, want SORT_BV", got)
	}

	if got := (&smtfuzz.Op{Kind: smtfuzz.OpITE, Arity: 3}).ArgSortKind(0); got != smtfuzz.SortAny {
		t.Fatalf("ArgSortKind(0)=%s, want SORT_ANY", got)
	}
}
