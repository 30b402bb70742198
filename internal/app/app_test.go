package app

import (
	"fmt"
	"testing"

	"github.com/statforge/rkit/internal/config"
	"github.com/statforge/rkit/internal/errors"
	"github.com/statforge/rkit/internal/rexec"
	"github.com/statforge/rkit/internal/system"
)

func TestNew_ResolvesInterpreter(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.LookPathResult = "/usr/bin/Rscript"

	a, err := New(WithConfig(config.Default()), WithExecutor(exec))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if a.RscriptPath != "/usr/bin/Rscript" {
		t.Errorf("RscriptPath = %q", a.RscriptPath)
	}
	if err := a.RequireRuntime(); err != nil {
		t.Errorf("RequireRuntime() error = %v", err)
	}
}

func TestNew_UnresolvedInterpreter(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.LookPathErr = fmt.Errorf("executable file not found in $PATH")

	a, err := New(WithConfig(config.Default()), WithExecutor(exec))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	err = a.RequireRuntime()
	if err == nil {
		t.Fatal("RequireRuntime() should fail")
	}
	if got := errors.GetExitCode(err); got != errors.ExitRuntimeNotFound {
		t.Errorf("exit code = %d, want %d", got, errors.ExitRuntimeNotFound)
	}
}

func TestNew_InvalidExtraArgs(t *testing.T) {
	cfg := config.Default()
	cfg.RscriptArgs = `"unterminated`

	_, err := New(WithConfig(cfg), WithExecutor(system.NewMockExecutor()))
	if err == nil {
		t.Error("New() should fail on invalid rscript_args")
	}
}

func TestNew_InjectedRunner(t *testing.T) {
	runner := rexec.NewMockRunner()

	a, err := New(
		WithConfig(config.Default()),
		WithRunner(runner),
		WithRscriptPath("/usr/bin/Rscript"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if a.Runner != runner {
		t.Error("injected runner was replaced")
	}
	if a.Repo == nil {
		t.Error("Repo not initialized")
	}
}
