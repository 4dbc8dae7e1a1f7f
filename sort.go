package smtfuzz

// SortKind identifies the family of a sort.
type SortKind string

// Sort kinds known to the harness. Not every backend supports all of them.
const (
	SortArray         SortKind = "SORT_ARRAY"
	SortBag           SortKind = "SORT_BAG"
	SortBool          SortKind = "SORT_BOOL"
	SortBV            SortKind = "SORT_BV"
	SortDT            SortKind = "SORT_DT"
	SortFP            SortKind = "SORT_FP"
	SortFun           SortKind = "SORT_FUN"
	SortInt           SortKind = "SORT_INT"
	SortReal          SortKind = "SORT_REAL"
	SortRegLan        SortKind = "SORT_REGLAN"
	SortRM            SortKind = "SORT_RM"
	SortSeq           SortKind = "SORT_SEQ"
	SortSet           SortKind = "SORT_SET"
	SortString        SortKind = "SORT_STRING"
	SortUninterpreted SortKind = "SORT_UNINTERPRETED"
	SortAny           SortKind = "SORT_ANY"
)

// SortKinds returns all concrete sort kinds in a stable order.
func SortKinds() []SortKind {
	return []SortKind{
		SortArray, SortBag, SortBool, SortBV, SortDT, SortFP, SortFun, SortInt,
		SortReal, SortRegLan, SortRM, SortSeq, SortSet, SortString, SortUninterpreted,
	}
}

// Sort is a backend-owned handle for a value domain.
//
// Identity is defined by the backend: two sorts are equal when the backend
// considers their native objects equal. Accessors for a family other than
// the sort's own panic.
type Sort interface {
	Hash() uint64
	Equals(other Sort) bool
	String() string

	// Kind returns the family of the sort.
	Kind() SortKind

	IsArray() bool
	IsBool() bool
	IsBV() bool
	IsDT() bool
	IsFP() bool
	IsFun() bool
	IsInt() bool
	IsReal() bool
	IsRM() bool
	IsString() bool
	IsUninterpreted() bool

	BVSize() uint32
	FPExpSize() uint32
	FPSigSize() uint32
	DTName() string

	ArrayIndexSort() Sort
	ArrayElementSort() Sort

	FunArity() uint32
	FunDomainSorts() []Sort
	FunCodomainSort() Sort
}

// Constructor describes one constructor of a datatype sort.
type Constructor struct {
	Name      string
	Selectors []Selector
}

// Selector describes one field of a datatype constructor.
type Selector struct {
	Name string
	Sort Sort
}
