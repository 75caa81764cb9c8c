package ports

import "context"

// ChildResult is the outcome of a child process run through
// ExecuteSyncGetOutput or ExecuteSyncGetOutputTimeout.
type ChildResult struct {
	Stdout   []byte
	ExitCode int
	Killed   bool // set when a watchdog timeout killed the child
}

// ToolRunner spawns toolchain child processes (compiler, archiver, linker)
// synchronously, per spec.md §4.8.
//
//go:generate go run go.uber.org/mock/mockgen -source=shell.go -destination=mocks/mock_shell.go -package=mocks
type ToolRunner interface {
	// ExecuteSync runs argv to completion. A non-zero exit or a signal
	// termination is returned as a *domain.ToolchainError.
	ExecuteSync(ctx context.Context, argv []string) error

	// ExecuteSyncGetOutput runs argv to completion, capturing stdout.
	ExecuteSyncGetOutput(ctx context.Context, argv []string) (ChildResult, error)

	// ExecuteSyncGetOutputTimeout is like ExecuteSyncGetOutput, but kills
	// the child after timeoutSeconds and reports the kill in the result.
	ExecuteSyncGetOutputTimeout(ctx context.Context, argv []string, timeoutSeconds int) (ChildResult, error)
}
