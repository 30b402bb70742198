package rrepo

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/statforge/rkit/internal/app"
	"github.com/statforge/rkit/internal/config"
	"github.com/statforge/rkit/internal/errors"
	"github.com/statforge/rkit/internal/rexec"
	"github.com/statforge/rkit/internal/system"
)

func newTestApp(t *testing.T, opts ...app.Option) (*app.App, *rexec.MockRunner) {
	t.Helper()

	runner := rexec.NewMockRunner()
	base := []app.Option{
		app.WithConfig(config.Default()),
		app.WithRunner(runner),
		app.WithRscriptPath("/usr/bin/Rscript"),
	}

	a, err := app.New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}
	return a, runner
}

func executeCommand(a *app.App, args ...string) (string, string, error) {
	cmd := NewCommand(a, "test")

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func markDir(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "PACKAGES"), []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write marker: %v", err)
	}
}

func TestVersion(t *testing.T) {
	a, runner := newTestApp(t)

	stdout, _, err := executeCommand(a, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "rrepo version test") {
		t.Errorf("stdout = %q", stdout)
	}
	if len(runner.GetCalls()) != 0 {
		t.Error("version must not invoke R")
	}
}

func TestVersion_ShortCircuitsActions(t *testing.T) {
	a, runner := newTestApp(t)

	stdout, _, err := executeCommand(a, "--version", "--update", t.TempDir())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "rrepo version test") {
		t.Errorf("stdout = %q", stdout)
	}
	if len(runner.GetCalls()) != 0 {
		t.Error("version must short-circuit the primary action")
	}
}

func TestNoAction_ShowsHelp(t *testing.T) {
	a, runner := newTestApp(t)

	stdout, _, err := executeCommand(a)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "rrepo") || !strings.Contains(stdout, "--new") {
		t.Errorf("expected help output, got: %q", stdout)
	}
	if len(runner.GetCalls()) != 0 {
		t.Error("help must not invoke R")
	}
}

func TestNew_FreshPath(t *testing.T) {
	a, runner := newTestApp(t)
	target := filepath.Join(t.TempDir(), "repo1")

	_, _, err := executeCommand(a, "--new", target)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	info, statErr := os.Stat(target)
	if statErr != nil || !info.IsDir() {
		t.Errorf("target directory missing: %v", statErr)
	}

	calls := runner.GetCalls()
	if len(calls) != 1 {
		t.Fatalf("got %d R calls, want 1", len(calls))
	}
	if calls[0].Script != rexec.ScriptWriteIndex {
		t.Errorf("script = %q", calls[0].Script)
	}
	if calls[0].Dir != target {
		t.Errorf("dir = %q, want %q", calls[0].Dir, target)
	}
}

func TestNew_AlreadyRepository(t *testing.T) {
	a, runner := newTestApp(t)
	target := t.TempDir()
	markDir(t, target)

	_, _, err := executeCommand(a, "--new", target)
	if err == nil {
		t.Fatal("Execute() should fail")
	}
	if got := errors.GetExitCode(err); got != errors.ExitAlreadyRepo {
		t.Errorf("exit code = %d, want %d", got, errors.ExitAlreadyRepo)
	}
	if len(runner.GetCalls()) != 0 {
		t.Error("no R call may happen for an already initialized repository")
	}
}

func TestNew_NonEmptyDir(t *testing.T) {
	a, runner := newTestApp(t)
	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, "stray"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := executeCommand(a, "--new", target)
	if got := errors.GetExitCode(err); got != errors.ExitBadTargetPath {
		t.Errorf("exit code = %d, want %d", got, errors.ExitBadTargetPath)
	}
	if len(runner.GetCalls()) != 0 {
		t.Error("no R call may happen for an unusable target")
	}
}

func TestUpdate(t *testing.T) {
	a, runner := newTestApp(t)
	target := t.TempDir()
	markDir(t, target)

	_, _, err := executeCommand(a, "--update", target)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	calls := runner.GetCalls()
	if len(calls) != 1 || calls[0].Script != rexec.ScriptWriteIndex {
		t.Errorf("calls = %v", calls)
	}
}

func TestUpdate_NotARepository(t *testing.T) {
	a, runner := newTestApp(t)

	_, _, err := executeCommand(a, "--update", t.TempDir())
	if got := errors.GetExitCode(err); got != errors.ExitNotARepository {
		t.Errorf("exit code = %d, want %d", got, errors.ExitNotARepository)
	}
	if len(runner.GetCalls()) != 0 {
		t.Error("no R call may happen outside a repository")
	}
}

func TestUpdate_ExternalFailurePropagates(t *testing.T) {
	a, runner := newTestApp(t)
	runner.SetExitCode(rexec.ScriptWriteIndex, 7)

	target := t.TempDir()
	markDir(t, target)

	_, _, err := executeCommand(a, "--update", target)
	if got := errors.GetExitCode(err); got != 7 {
		t.Errorf("exit code = %d, want 7", got)
	}
}

func TestAdd(t *testing.T) {
	a, runner := newTestApp(t)
	target := t.TempDir()
	markDir(t, target)

	src := filepath.Join(t.TempDir(), "mypkg_0.1.0.tar.gz")
	if err := os.WriteFile(src, []byte("tarball"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := executeCommand(a, "--add", src, target)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(target, "mypkg_0.1.0.tar.gz")); err != nil {
		t.Errorf("tarball not copied: %v", err)
	}

	calls := runner.GetCalls()
	if len(calls) != 1 || calls[0].Script != rexec.ScriptWriteIndex {
		t.Errorf("calls = %v", calls)
	}
}

func TestAdd_NotARepository(t *testing.T) {
	a, runner := newTestApp(t)

	src := filepath.Join(t.TempDir(), "mypkg_0.1.0.tar.gz")
	if err := os.WriteFile(src, []byte("tarball"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := executeCommand(a, "--add", src, t.TempDir())
	if got := errors.GetExitCode(err); got != errors.ExitNotARepository {
		t.Errorf("exit code = %d, want %d", got, errors.ExitNotARepository)
	}
	if len(runner.GetCalls()) != 0 {
		t.Error("no R call may happen outside a repository")
	}
}

func TestPrimaryActionsMutuallyExclusive(t *testing.T) {
	a, _ := newTestApp(t)

	_, _, err := executeCommand(a, "--new", "--update", t.TempDir())
	if err == nil {
		t.Error("combining --new and --update should fail")
	}
}

func TestUnresolvedRuntime_FailsBeforeSpawn(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.LookPathErr = os.ErrNotExist

	runner := rexec.NewMockRunner()
	a, err := app.New(
		app.WithConfig(config.Default()),
		app.WithRunner(runner),
		app.WithExecutor(exec),
	)
	if err != nil {
		t.Fatalf("app.New() error = %v", err)
	}

	target := filepath.Join(t.TempDir(), "repo1")
	_, _, execErr := executeCommand(a, "--new", target)
	if got := errors.GetExitCode(execErr); got != errors.ExitRuntimeNotFound {
		t.Errorf("exit code = %d, want %d", got, errors.ExitRuntimeNotFound)
	}
	if len(runner.GetCalls()) != 0 {
		t.Error("no R call may happen without a resolved interpreter")
	}
	if _, statErr := os.Stat(target); statErr == nil {
		t.Error("filesystem must be untouched when the interpreter is missing")
	}
}

func TestRinfo(t *testing.T) {
	a, runner := newTestApp(t)

	_, _, err := executeCommand(a, "--rinfo")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	calls := runner.GetCalls()
	if len(calls) != 1 || calls[0].Script != rexec.ScriptSessionInfo {
		t.Errorf("calls = %v", calls)
	}
}

func TestRinfo_CombinesWithPrimaryAction(t *testing.T) {
	a, runner := newTestApp(t)
	target := t.TempDir()
	markDir(t, target)

	_, _, err := executeCommand(a, "--rinfo", "--update", target)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	calls := runner.GetCalls()
	if len(calls) != 2 {
		t.Fatalf("got %d calls, want 2", len(calls))
	}
	if calls[0].Script != rexec.ScriptSessionInfo || calls[1].Script != rexec.ScriptWriteIndex {
		t.Errorf("calls = %v", calls)
	}
}
