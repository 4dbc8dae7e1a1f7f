package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benbjohnson/smtfuzz"
	"github.com/benbjohnson/smtfuzz/z3"
	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
)

func TestConfig_Parse(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		config := NewConfig()
		if err := config.Parse([]byte(`
log-level: debug
options:
  produce-unsat-cores: "true"
  timeout: "1000"
exclude-theories: [THEORY_FP]
`)); err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff(config, &Config{
			LogLevel:        "debug",
			Options:         map[string]string{"produce-unsat-cores": "true", "timeout": "1000"},
			ExcludeTheories: []smtfuzz.Theory{smtfuzz.TheoryFP},
		}); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("ErrValidation", func(t *testing.T) {
		for _, s := range []string{
			`log-level: loud`,
			`options: {timeout: ""}`,
			`exclude-theories: [FP]`,
		} {
			var verrs validator.ValidationErrors
			if err := NewConfig().Parse([]byte(s)); !errors.As(err, &verrs) {
				t.Fatalf("%q: unexpected error: %v", s, err)
			}
		}
	})

	t.Run("ErrSyntax", func(t *testing.T) {
		if err := NewConfig().Parse([]byte("options: [")); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := (&Config{LogLevel: "info"}).Logger(&buf)
	logger.Debug("hidden")
	logger.Info("shown", "n", 1)
	if got := buf.String(); strings.Contains(got, "hidden") || !strings.Contains(got, "msg=shown n=1") {
		t.Fatalf("unexpected log output: %q", got)
	}
}

func TestProfileCommand(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		out := MustExecute(t, "profile")
		got, err := smtfuzz.ParseProfile([]byte(out))
		if err != nil {
			t.Fatal(err)
		}
		want, err := smtfuzz.ParseProfile([]byte(z3.New().Profile()))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(got, want); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("YAML", func(t *testing.T) {
		out := MustExecute(t, "profile", "--format", "yaml")
		if !strings.HasPrefix(out, "theories:\n  include:\n") {
			t.Fatalf("unexpected output:\n%s", out)
		} else if !strings.Contains(out, "- THEORY_ARRAY\n") || !strings.Contains(out, "- SORT_REGLAN\n") {
			t.Fatalf("unexpected output:\n%s", out)
		}
	})

	t.Run("ErrFormat", func(t *testing.T) {
		if _, err := Execute("profile", "--format", "xml"); err == nil || err.Error() != `invalid format: "xml"` {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOpsCommand(t *testing.T) {
	t.Run("Theory", func(t *testing.T) {
		out := MustExecute(t, "ops", "--theory", "THEORY_BV")
		if !strings.HasPrefix(out, "KIND") {
			t.Fatalf("missing header:\n%s", out)
		}
		for _, kind := range []string{"OP_BV_ADD", "OP_BV_EXTRACT", "OP_Z3_BV_REDOR"} {
			if !strings.Contains(out, kind+" ") {
				t.Fatalf("missing %s:\n%s", kind, out)
			}
		}
		if strings.Contains(out, "OP_AND ") || strings.Contains(out, "OP_FP_ADD ") {
			t.Fatalf("unexpected operator:\n%s", out)
		}
	})

	t.Run("ExcludeTheories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "smtfuzz.yaml")
		if err := os.WriteFile(path, []byte("exclude-theories: [THEORY_FP, THEORY_STRING]\n"), 0o666); err != nil {
			t.Fatal(err)
		}

		out := MustExecute(t, "ops", "--config", path)
		if !strings.Contains(out, "OP_AND ") {
			t.Fatalf("missing OP_AND:\n%s", out)
		} else if strings.Contains(out, "OP_FP_") || strings.Contains(out, "OP_STR_") {
			t.Fatalf("excluded theory listed:\n%s", out)
		}
	})

	t.Run("ErrConfigNotFound", func(t *testing.T) {
		if _, err := Execute("ops", "--config", filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSelfCheckCommand(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := NewSelfCheckCommand(nil)
		cmd.LogOutput = io.Discard
		if err := cmd.Run(&buf, NewConfig()); err != nil {
			t.Fatal(err)
		} else if got, want := buf.String(), "check 1: unsat\ncheck 2: sat\nx = true\n"; got != want {
			t.Fatalf("output=%q, want %q", got, want)
		}
	})

	t.Run("NoModels", func(t *testing.T) {
		config := NewConfig()
		config.Options = map[string]string{smtfuzz.OptionProduceModels: "false"}

		var buf bytes.Buffer
		cmd := NewSelfCheckCommand(nil)
		cmd.LogOutput = io.Discard
		if err := cmd.Run(&buf, config); err != nil {
			t.Fatal(err)
		} else if got, want := buf.String(), "check 1: unsat\ncheck 2: sat\n"; got != want {
			t.Fatalf("output=%q, want %q", got, want)
		}
	})

	t.Run("Metrics", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := NewSelfCheckCommand(nil)
		cmd.LogOutput = io.Discard
		cmd.Metrics = true
		if err := cmd.Run(&buf, NewConfig()); err != nil {
			t.Fatal(err)
		}
		for _, line := range []string{
			`smtfuzz_solver_checks_total{solver="Z3"} 2`,
			`smtfuzz_solver_models_total{solver="Z3"} 1`,
			`smtfuzz_solver_depth{solver="Z3"} 0`,
		} {
			if !strings.Contains(buf.String(), line+"\n") {
				t.Fatalf("missing %q:\n%s", line, buf.String())
			}
		}
	})

	t.Run("ErrOption", func(t *testing.T) {
		config := NewConfig()
		config.Options = map[string]string{smtfuzz.OptionProduceModels: "maybe"}

		cmd := NewSelfCheckCommand(nil)
		cmd.LogOutput = io.Discard
		if err := cmd.Run(io.Discard, config); !errors.Is(err, smtfuzz.ErrConfig) {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DeletesSolver", func(t *testing.T) {
		for _, options := range []map[string]string{
			nil,
			{smtfuzz.OptionProduceModels: "maybe"},
		} {
			config := NewConfig()
			config.LogLevel = "debug"
			config.Options = options

			var logs bytes.Buffer
			cmd := NewSelfCheckCommand(nil)
			cmd.LogOutput = &logs
			err := cmd.Run(io.Discard, config)
			if options == nil && err != nil {
				t.Fatal(err)
			} else if options != nil && !errors.Is(err, smtfuzz.ErrConfig) {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(logs.String(), "msg=\"solver deleted\"") {
				t.Fatalf("%v: solver not deleted:\n%s", options, logs.String())
			}
		}
	})
}

// Execute runs the root command with args and returns its standard output.
func Execute(args ...string) (string, error) {
	var buf bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// MustExecute runs the root command and fails the test on error.
func MustExecute(tb testing.TB, args ...string) string {
	tb.Helper()
	out, err := Execute(args...)
	if err != nil {
		tb.Fatal(err)
	}
	return out
}
