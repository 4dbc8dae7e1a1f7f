package smtfuzz

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every error caused by a request that the backend
// cannot or will not serve (unsupported kind, bad literal, bad arity, etc).
var ErrConfig = errors.New("smtfuzz: configuration error")

// ConfigError is returned when a request is rejected by the backend.
type ConfigError struct {
	Op      string // operation that rejected the request, e.g. "MkTerm"
	Subject string // offending kind, option or value
	Message string
}

// Error returns the error as a string.
func (e *ConfigError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Subject, e.Message)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// Errorf returns a new ConfigError with a formatted message.
func Errorf(op, subject, format string, args ...interface{}) error {
	return &ConfigError{Op: op, Subject: subject, Message: fmt.Sprintf(format, args...)}
}

// Base is the radix of a bit-vector literal string.
type Base int

// Supported literal bases.
const (
	BIN Base = 2
	DEC Base = 10
	HEX Base = 16
)

// String returns the name of the base.
func (b Base) String() string {
	switch b {
	case BIN:
		return "bin"
	case DEC:
		return "dec"
	case HEX:
		return "hex"
	default:
		return fmt.Sprintf("Base<%d>", int(b))
	}
}

// Result is the outcome of a satisfiability check.
type Result int

// Check results.
const (
	UNKNOWN Result = iota
	SAT
	UNSAT
)

var results = [...]string{
	UNKNOWN: "unknown",
	SAT:     "sat",
	UNSAT:   "unsat",
}

// String returns the SMT-LIB name of the result.
func (r Result) String() string {
	if r >= 0 && r < Result(len(results)) {
		return results[r]
	}
	return fmt.Sprintf("Result<%d>", int(r))
}

// Assert panics if condition is false. Backends use it for contract
// violations by the caller, which are not recoverable errors.
func Assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}
