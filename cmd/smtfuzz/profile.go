package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/benbjohnson/smtfuzz"
	"github.com/benbjohnson/smtfuzz/z3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ProfileCommand represents a command for printing the capability profile.
type ProfileCommand struct {
	Format string
}

// NewProfileCommand returns a new instance of ProfileCommand.
func NewProfileCommand() *ProfileCommand {
	return &ProfileCommand{Format: "json"}
}

// Command returns the cobra command for "profile".
func (cmd *ProfileCommand) Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "profile",
		Short: "Print the backend capability profile",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Run(c.OutOrStdout())
		},
	}
	c.Flags().StringVarP(&cmd.Format, "format", "f", cmd.Format, "output format (json, yaml)")
	return c
}

// Run writes the profile to w in the configured format.
func (cmd *ProfileCommand) Run(w io.Writer) error {
	if err := validate.Var(cmd.Format, "oneof=json yaml"); err != nil {
		return fmt.Errorf("invalid format: %q", cmd.Format)
	}

	p, err := smtfuzz.ParseProfile([]byte(z3.New().Profile()))
	if err != nil {
		return err
	}

	switch cmd.Format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}
}
