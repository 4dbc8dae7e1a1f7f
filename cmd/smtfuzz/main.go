package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand returns the "smtfuzz" command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	var configPath string
	var verbose bool

	root := &cobra.Command{
		Use:   "smtfuzz",
		Short: "Inspect and exercise the Z3 backend of the SMT fuzzer",
		Long: `Smtfuzz drives the Z3 backend adapter used by the model-based SMT
fuzzer. It publishes the backend's capability profile, lists the operator
kinds it supports, and runs a short self-check session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver events to stderr")

	// Subcommands load the config lazily so that "help" never touches disk.
	load := func() (*Config, error) {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		} else if verbose {
			config.LogLevel = "debug"
		}
		return config, nil
	}

	root.AddCommand(
		NewProfileCommand().Command(),
		NewOpsCommand(load).Command(),
		NewSelfCheckCommand(load).Command(),
	)
	return root
}
