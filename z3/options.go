package z3

/*
#include <z3.h>
*/
import "C"

import (
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/benbjohnson/smtfuzz"
)

// Z3 parameter names for the canonical options.
const (
	paramModel     = "model"
	paramUnsatCore = "unsat_core"
)

// settings is the full option state of a solver. It is replaced as a whole
// so that a rejected option leaves the previous state in force.
type settings struct {
	modelGen         bool
	unsatAssumptions bool
	unsatCores       bool

	// Pass-through Z3 parameters, keyed by name.
	params *immutable.SortedMap
}

func defaultSettings() settings {
	return settings{
		modelGen:         true,
		unsatAssumptions: true,
		params:           immutable.NewSortedMap(&stringComparer{}),
	}
}

// SetOpt sets a solver option. The canonical options are mapped onto Z3
// parameters; any other name is passed to Z3 as a parameter of the same name.
func (s *Solver) SetOpt(name, value string) error {
	s.mustInit("SetOpt")

	st := s.settings
	switch name {
	case smtfuzz.OptionIncremental:
		// Z3 solvers are always incremental.
		if _, err := parseBoolOption(name, value); err != nil {
			return err
		}
		s.logger.Debug("option ignored", "name", name, "value", value)
		return nil
	case smtfuzz.OptionProduceModels:
		v, err := parseBoolOption(name, value)
		if err != nil {
			return err
		}
		st.modelGen = v
	case smtfuzz.OptionProduceUnsatAssumptions:
		v, err := parseBoolOption(name, value)
		if err != nil {
			return err
		}
		st.unsatAssumptions = v
	case smtfuzz.OptionProduceUnsatCores:
		v, err := parseBoolOption(name, value)
		if err != nil {
			return err
		}
		st.unsatCores = v
	default:
		if name == "" {
			return smtfuzz.Errorf("SetOpt", name, "empty option name")
		}
		st.params = st.params.Set(name, value)
	}

	if err := s.applySettings(st); err != nil {
		s.logger.Debug("option rejected", "name", name, "value", value, "err", err)
		return err
	}
	s.settings = st
	s.logger.Debug("option set", "name", name, "value", value)
	return nil
}

// applySettings installs st on the native solver as a fresh parameter set.
// The previous parameter set stays in force on error.
func (s *Solver) applySettings(st settings) error {
	raw := s.ctx.raw
	p := C.Z3_mk_params(raw)
	if err := s.ctx.err("Z3_mk_params"); err != nil {
		return err
	}
	C.Z3_params_inc_ref(raw, p)

	C.Z3_params_set_bool(raw, p, s.ctx.symbol(paramModel), C.bool(st.modelGen))
	C.Z3_params_set_bool(raw, p, s.ctx.symbol(paramUnsatCore), C.bool(st.unsatAssumptions || st.unsatCores))

	itr := st.params.Iterator()
	for itr.First(); !itr.Done(); {
		k, v := itr.Next()
		s.setParam(p, k.(string), v.(string))
	}

	if err := s.validateParams(p); err != nil {
		C.Z3_params_dec_ref(raw, p)
		return err
	}

	C.Z3_solver_set_params(raw, s.solver, p)
	if err := s.ctx.err("Z3_solver_set_params"); err != nil {
		C.Z3_params_dec_ref(raw, p)
		return err
	}

	if s.params != nil {
		C.Z3_params_dec_ref(raw, s.params)
	}
	s.params = p
	return nil
}

// validateParams checks p against the parameters the solver accepts.
// Z3_solver_set_params only validates once the solver has been used.
func (s *Solver) validateParams(p C.Z3_params) error {
	raw := s.ctx.raw
	d := C.Z3_solver_get_param_descrs(raw, s.solver)
	if err := s.ctx.err("Z3_solver_get_param_descrs"); err != nil {
		return err
	}
	C.Z3_param_descrs_inc_ref(raw, d)
	defer C.Z3_param_descrs_dec_ref(raw, d)

	C.Z3_params_validate(raw, p, d)
	return s.ctx.err("Z3_params_validate")
}

// setParam sets a pass-through parameter, typed by the shape of its value.
func (s *Solver) setParam(p C.Z3_params, name, value string) {
	raw, key := s.ctx.raw, s.ctx.symbol(name)
	if isBoolLiteral(value) {
		C.Z3_params_set_bool(raw, p, key, C.bool(strings.EqualFold(value, "true")))
	} else if u, err := strconv.ParseUint(value, 10, 32); err == nil {
		C.Z3_params_set_uint(raw, p, key, C.uint(u))
	} else if f, err := strconv.ParseFloat(value, 64); err == nil {
		C.Z3_params_set_double(raw, p, key, C.double(f))
	} else {
		C.Z3_params_set_symbol(raw, p, key, s.ctx.symbol(value))
	}
}

// Options returns the pass-through parameters currently set.
func (s *Solver) Options() map[string]string {
	m := make(map[string]string)
	if s.settings.params == nil {
		return m
	}
	itr := s.settings.params.Iterator()
	for itr.First(); !itr.Done(); {
		k, v := itr.Next()
		m[k.(string)] = v.(string)
	}
	return m
}

func (s *Solver) OptionNameIncremental() string      { return smtfuzz.OptionIncremental }
func (s *Solver) OptionNameModelGen() string         { return smtfuzz.OptionProduceModels }
func (s *Solver) OptionNameUnsatAssumptions() string { return smtfuzz.OptionProduceUnsatAssumptions }
func (s *Solver) OptionNameUnsatCores() string       { return smtfuzz.OptionProduceUnsatCores }

// OptionIncrementalEnabled is always true.
func (s *Solver) OptionIncrementalEnabled() bool { return true }

func (s *Solver) OptionModelGenEnabled() bool { return s.settings.modelGen }

func (s *Solver) OptionUnsatAssumptionsEnabled() bool { return s.settings.unsatAssumptions }

func (s *Solver) OptionUnsatCoresEnabled() bool { return s.settings.unsatCores }

func parseBoolOption(name, value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, smtfuzz.Errorf("SetOpt", name, "expected true or false, got %q", value)
	}
}

func isBoolLiteral(value string) bool {
	switch strings.ToLower(value) {
	case "true", "false":
		return true
	}
	return false
}

// stringComparer compares two strings. Implements immutable.Comparer.
type stringComparer struct{}

// Compare returns -1 if a is less than b, returns 1 if a is greater than b, and
// returns 0 if a is equal to b. Panic if a or b is not a string.
func (c *stringComparer) Compare(a, b interface{}) int {
	return strings.Compare(a.(string), b.(string))
}
