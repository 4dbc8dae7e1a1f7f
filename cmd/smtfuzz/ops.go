package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/benbjohnson/smtfuzz"
	"github.com/benbjohnson/smtfuzz/z3"
	"github.com/spf13/cobra"
)

// OpsCommand represents a command for listing supported operator kinds.
type OpsCommand struct {
	load   func() (*Config, error)
	Theory string
}

// NewOpsCommand returns a new instance of OpsCommand.
func NewOpsCommand(load func() (*Config, error)) *OpsCommand {
	return &OpsCommand{load: load}
}

// Command returns the cobra command for "ops".
func (cmd *OpsCommand) Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "ops",
		Short: "List operator kinds enabled by the profile",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			config, err := cmd.load()
			if err != nil {
				return err
			}
			return cmd.Run(c.OutOrStdout(), config)
		},
	}
	c.Flags().StringVarP(&cmd.Theory, "theory", "t", "", "only list operators of this theory")
	return c
}

// Run writes one line per operator kind to w.
func (cmd *OpsCommand) Run(w io.Writer, config *Config) error {
	s := z3.New()
	p, err := smtfuzz.ParseProfile([]byte(s.Profile()))
	if err != nil {
		return err
	}
	p.Theories.Exclude = append(p.Theories.Exclude, config.ExcludeTheories...)

	r := smtfuzz.NewOpKindRegistry(z3.Ops()...)
	if err := s.ConfigureOpMgr(r); err != nil {
		return err
	}

	ops := make([]*smtfuzz.Op, 0, r.Len())
	for _, kind := range r.Kinds() {
		ops = append(ops, r.Op(kind))
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tARITY\tINDICES\tTHEORY")
	for _, op := range p.Prune(ops) {
		if cmd.Theory != "" && string(op.Theory) != cmd.Theory {
			continue
		}

		arity := fmt.Sprint(op.Arity)
		if op.Arity == smtfuzz.ArityN {
			arity = "n"
		}
		theory := string(op.Theory)
		if theory == "" {
			theory = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", op.Kind, arity, op.NIndices, theory)
	}
	return tw.Flush()
}
