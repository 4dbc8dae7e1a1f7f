package smtfuzz

import (
	"encoding/json"
)

// Theory identifies a background theory.
type Theory string

// Theories known to the harness.
const (
	TheoryArray  Theory = "THEORY_ARRAY"
	TheoryBag    Theory = "THEORY_BAG"
	TheoryBool   Theory = "THEORY_BOOL"
	TheoryBV     Theory = "THEORY_BV"
	TheoryDT     Theory = "THEORY_DT"
	TheoryFP     Theory = "THEORY_FP"
	TheoryInt    Theory = "THEORY_INT"
	TheoryQuant  Theory = "THEORY_QUANT"
	TheoryReal   Theory = "THEORY_REAL"
	TheorySeq    Theory = "THEORY_SEQ"
	TheorySet    Theory = "THEORY_SET"
	TheoryString Theory = "THEORY_STRING"
	TheoryUF     Theory = "THEORY_UF"
)

// Profile is the capability document a backend publishes to the harness.
type Profile struct {
	Theories struct {
		Include []Theory `json:"include,omitempty" yaml:"include,omitempty"`
		Exclude []Theory `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	} `json:"theories" yaml:"theories"`
	Sorts struct {
		Exclude []SortKind `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	} `json:"sorts" yaml:"sorts"`
}

// ParseProfile decodes a JSON profile document.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, Errorf("ParseProfile", "", "%s", err)
	}
	return &p, nil
}

// IncludesTheory returns true if the profile enables theory. An empty
// include list enables every theory that is not excluded.
func (p *Profile) IncludesTheory(theory Theory) bool {
	for _, t := range p.Theories.Exclude {
		if t == theory {
			return false
		}
	}
	if len(p.Theories.Include) == 0 {
		return true
	}
	for _, t := range p.Theories.Include {
		if t == theory {
			return true
		}
	}
	return false
}

// ExcludesSort returns true if the profile rules out sorts of kind.
func (p *Profile) ExcludesSort(kind SortKind) bool {
	for _, k := range p.Sorts.Exclude {
		if k == kind {
			return true
		}
	}
	return false
}

// Prune returns the operators whose theory is included and whose result and
// argument sorts are not excluded.
func (p *Profile) Prune(ops []*Op) []*Op {
	var a []*Op
	for _, op := range ops {
		if op.Theory != "" && !p.IncludesTheory(op.Theory) {
			continue
		} else if p.ExcludesSort(op.Result) {
			continue
		}

		excluded := false
		for _, k := range op.Args {
			if p.ExcludesSort(k) {
				excluded = true
				break
			}
		}
		if !excluded {
			a = append(a, op)
		}
	}
	return a
}
