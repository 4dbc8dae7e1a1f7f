package z3

import (
	"github.com/benbjohnson/smtfuzz"
)

// profile is the capability document published to the harness.
const profile = `{
  "theories": {
    "include": [
      "THEORY_ARRAY",
      "THEORY_BOOL",
      "THEORY_BV",
      "THEORY_DT",
      "THEORY_FP",
      "THEORY_INT",
      "THEORY_QUANT",
      "THEORY_REAL",
      "THEORY_STRING",
      "THEORY_UF"
    ]
  },
  "sorts": {
    "exclude": [
      "SORT_REGLAN",
      "SORT_BAG",
      "SORT_SET"
    ]
  }
}
`

// Profile returns the JSON capability profile.
func (s *Solver) Profile() string { return profile }

// DisableUnsupportedActions disables nothing; Z3 serves every action.
func (s *Solver) DisableUnsupportedActions(fsm smtfuzz.FSM) {
	s.logger.Debug("no actions disabled")
}

// ConfigureOpMgr registers the Z3-specific operator kinds.
func (s *Solver) ConfigureOpMgr(mgr smtfuzz.OpKindManager) error {
	for _, op := range ExtensionOps() {
		if err := mgr.AddOpKind(op); err != nil {
			return err
		}
	}
	return nil
}

// ExtensionOps returns the operator kinds only Z3 provides.
func ExtensionOps() []*smtfuzz.Op {
	return []*smtfuzz.Op{
		{Kind: OpBVRedAnd, Arity: 1, Result: smtfuzz.SortBV, Args: []smtfuzz.SortKind{smtfuzz.SortBV}, Theory: smtfuzz.TheoryBV},
		{Kind: OpBVRedOr, Arity: 1, Result: smtfuzz.SortBV, Args: []smtfuzz.SortKind{smtfuzz.SortBV}, Theory: smtfuzz.TheoryBV},
		{Kind: OpArrayDefault, Arity: 1, Result: smtfuzz.SortAny, Args: []smtfuzz.SortKind{smtfuzz.SortArray}, Theory: smtfuzz.TheoryArray},
	}
}
