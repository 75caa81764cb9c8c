// Package shell implements the Process/CmdLine leaf: argv assembly and
// synchronous child-process execution with an optional watchdog timeout.
// Spec.md §4.8.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ToolRunner = (*Runner)(nil)

// Runner spawns toolchain child processes and reports what it ran through
// logger, matching the "print, then spawn" contract of spec.md §4.8.
type Runner struct {
	logger ports.Logger
}

// New creates a Runner.
func New(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// ExecuteSync runs argv to completion. A non-zero exit or signal
// termination is fatal: it is returned as a *domain.ToolchainError rather
// than exiting the process, so the top-level handler decides the exit
// code (spec.md §9's "fatal exits from deep call chains" design note).
func (r *Runner) ExecuteSync(ctx context.Context, argv []string) error {
	r.announce(argv)
	if len(argv) == 0 {
		return zerr.New("empty argv")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv is toolchain-controlled
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	return toolchainErr(argv, err, stderr.String())
}

// ExecuteSyncGetOutput runs argv to completion, capturing stdout into
// memory.
func (r *Runner) ExecuteSyncGetOutput(ctx context.Context, argv []string) (ports.ChildResult, error) {
	r.announce(argv)
	if len(argv) == 0 {
		return ports.ChildResult{}, zerr.New("empty argv")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result := ports.ChildResult{Stdout: stdout.Bytes()}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}
	if runErr != nil {
		return result, toolchainErr(argv, runErr, stderr.String())
	}
	return result, nil
}

// ExecuteSyncGetOutputTimeout is like ExecuteSyncGetOutput, but a sibling
// watchdog kills the child after timeoutSeconds. Per spec.md §5, the
// watchdog is the only concurrency inside kiln's own logic: it does
// nothing but sleep and kill, and the only state it shares with the main
// goroutine is the Killed flag on the returned ChildResult, written once
// and read after both goroutines have joined.
func (r *Runner) ExecuteSyncGetOutputTimeout(
	ctx context.Context, argv []string, timeoutSeconds int,
) (ports.ChildResult, error) {
	r.announce(argv)
	if len(argv) == 0 {
		return ports.ChildResult{}, zerr.New("empty argv")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return ports.ChildResult{}, toolchainErr(argv, err, "")
	}

	var killed bool
	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stopWatch()
		return cmd.Wait()
	})
	g.Go(func() error {
		timer := time.NewTimer(time.Duration(timeoutSeconds) * time.Second)
		defer timer.Stop()
		select {
		case <-timer.C:
			killed = true
			_ = cmd.Process.Kill()
		case <-watchCtx.Done():
		}
		return nil
	})

	waitErr := g.Wait()
	result := ports.ChildResult{Stdout: stdout.Bytes(), Killed: killed}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if killed {
		// The kill produces an EOF on the child's pipes; the reader loop
		// (buffered by exec.Cmd internally) exits cleanly, and we report
		// the kill rather than treating it as an ordinary tool failure.
		return result, nil
	}
	if waitErr != nil {
		return result, toolchainErr(argv, waitErr, stderr.String())
	}
	return result, nil
}

func (r *Runner) announce(argv []string) {
	r.logger.Info("running command", "argv", strings.Join(argv, " "))
}

func toolchainErr(argv []string, err error, stderrTail string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.ToolchainError{
			Argv:       argv,
			ExitCode:   exitErr.ExitCode(),
			Signaled:   exitErr.ExitCode() < 0,
			StderrTail: tail(stderrTail, 4096),
		}
	}
	var pathErr *exec.Error
	if errors.As(err, &pathErr) && errors.Is(pathErr.Err, exec.ErrNotFound) {
		return zerr.With(zerr.Wrap(domain.ErrToolNotFound, ""), "tool", pathErr.Name)
	}
	return zerr.With(zerr.Wrap(err, "failed to run command"), "argv", strings.Join(argv, " "))
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
