package smtfuzz

import (
	"io"
)

// Canonical option names understood by every backend.
const (
	OptionIncremental             = "incremental"
	OptionProduceModels           = "produce-models"
	OptionProduceUnsatAssumptions = "produce-unsat-assumptions"
	OptionProduceUnsatCores       = "produce-unsat-cores"
)

// FSM is the harness state machine as seen by a backend.
type FSM interface {
	// DisableAction removes the named action from the set the harness may issue.
	DisableAction(name string)
}

// Solver is the interface the harness drives. A Solver is used by a single
// caller; implementations do no locking.
//
// Errors returned by construction and session methods match ErrConfig when
// the request is not realizable by the backend. Passing sorts or terms that
// were created by a different backend or a different solver instance panics.
type Solver interface {
	// Lifecycle.
	NewSolver() error
	DeleteSolver() error
	IsInitialized() bool
	Name() string

	// Capability negotiation.
	Profile() string
	DisableUnsupportedActions(fsm FSM)
	ConfigureOpMgr(mgr OpKindManager) error

	// Options.
	SetOpt(name, value string) error
	OptionNameIncremental() string
	OptionNameModelGen() string
	OptionNameUnsatAssumptions() string
	OptionNameUnsatCores() string
	OptionIncrementalEnabled() bool
	OptionModelGenEnabled() bool
	OptionUnsatAssumptionsEnabled() bool
	OptionUnsatCoresEnabled() bool

	// Sorts.
	MkSort(kind SortKind) (Sort, error)
	MkSortSize(kind SortKind, size uint32) (Sort, error)
	MkSortSizes(kind SortKind, esize, ssize uint32) (Sort, error)
	MkSortNamed(name string) (Sort, error)
	MkSortComposite(kind SortKind, sorts []Sort) (Sort, error)
	MkDatatypeSort(name string, ctors []Constructor) (Sort, error)

	// Terms and values.
	MkVar(sort Sort, name string) (Term, error)
	MkConst(sort Sort, name string) (Term, error)
	MkFun(name string, args []Term, body Term) (Term, error)
	MkValueBool(sort Sort, value bool) (Term, error)
	MkValue(sort Sort, value string) (Term, error)
	MkValueRational(sort Sort, num, den string) (Term, error)
	MkValueBase(sort Sort, value string, base Base) (Term, error)
	MkSpecialValue(sort Sort, kind SpecialValueKind) (Term, error)
	MkTerm(kind OpKind, args []Term, indices []uint32) (Term, error)
	MkTermNamed(kind OpKind, names []string, args []Term) (Term, error)
	GetSort(term Term, kind SortKind) (Sort, error)

	// Session.
	Reset() error
	ResetAssertions() error
	ResetSat()
	AssertFormula(t Term) error
	CheckSat() (Result, error)
	CheckSatAssuming(assumptions []Term) (Result, error)
	IsUnsatAssumption(t Term) bool
	GetUnsatAssumptions() ([]Term, error)
	GetUnsatCore() ([]Term, error)
	GetValue(terms []Term) ([]Term, error)
	Push(n uint32) error
	Pop(n uint32) error
	PrintModel(w io.Writer) error
}
