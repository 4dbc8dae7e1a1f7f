package main

import (
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/smtfuzz"
	"github.com/benbjohnson/smtfuzz/z3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// SelfCheckCommand represents a command that runs a fixed solving session
// against the backend and reports the outcome.
type SelfCheckCommand struct {
	load    func() (*Config, error)
	Metrics bool

	// Log output. Defaults to stderr.
	LogOutput io.Writer
}

// NewSelfCheckCommand returns a new instance of SelfCheckCommand.
func NewSelfCheckCommand(load func() (*Config, error)) *SelfCheckCommand {
	return &SelfCheckCommand{load: load, LogOutput: os.Stderr}
}

// Command returns the cobra command for "selfcheck".
func (cmd *SelfCheckCommand) Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "selfcheck",
		Short: "Run a short push/pop session and report results",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			config, err := cmd.load()
			if err != nil {
				return err
			}
			return cmd.Run(c.OutOrStdout(), config)
		},
	}
	c.Flags().BoolVar(&cmd.Metrics, "metrics", false, "print solver metrics after the session")
	return c
}

// Run executes the session and writes results to w.
func (cmd *SelfCheckCommand) Run(w io.Writer, config *Config) (err error) {
	s := z3.New(z3.WithLogger(config.Logger(cmd.LogOutput)))
	if err := s.NewSolver(); err != nil {
		return err
	}
	defer func() {
		if e := s.DeleteSolver(); err == nil {
			err = e
		}
	}()

	if err := config.Apply(s); err != nil {
		return err
	} else if err := SelfCheck(s, w); err != nil {
		return err
	}

	if !cmd.Metrics {
		return nil
	}

	reg := prometheus.NewRegistry()
	if err := reg.Register(z3.NewCollector(s)); err != nil {
		return err
	}
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// SelfCheck asserts x, checks x∧¬x inside a scope, pops it, and checks
// again. The first check must be unsat and the second sat. The value of x
// is written to w when model generation is enabled.
func SelfCheck(s smtfuzz.Solver, w io.Writer) error {
	boolSort, err := s.MkSort(smtfuzz.SortBool)
	if err != nil {
		return err
	}
	x, err := s.MkConst(boolSort, "x")
	if err != nil {
		return err
	}
	notX, err := s.MkTerm(smtfuzz.OpNot, []smtfuzz.Term{x}, nil)
	if err != nil {
		return err
	}

	if err := s.AssertFormula(x); err != nil {
		return err
	} else if err := s.Push(1); err != nil {
		return err
	} else if err := s.AssertFormula(notX); err != nil {
		return err
	} else if err := expectResult(s, w, 1, smtfuzz.UNSAT); err != nil {
		return err
	}

	if err := s.Pop(1); err != nil {
		return err
	} else if err := expectResult(s, w, 2, smtfuzz.SAT); err != nil {
		return err
	}

	if !s.OptionModelGenEnabled() {
		return nil
	}
	values, err := s.GetValue([]smtfuzz.Term{x})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s = %s\n", x, values[0])
	return nil
}

func expectResult(s smtfuzz.Solver, w io.Writer, n int, want smtfuzz.Result) error {
	result, err := s.CheckSat()
	if err != nil {
		return err
	} else if result != want {
		return fmt.Errorf("check %d: got %s, want %s", n, result, want)
	}
	fmt.Fprintf(w, "check %d: %s\n", n, result)
	return nil
}
