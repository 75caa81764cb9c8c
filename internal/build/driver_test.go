package build_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// recordingRunner is a fake ports.ToolRunner that records every argv it
// was asked to run instead of spawning a child process.
type recordingRunner struct {
	calls [][]string
	fail  bool
}

func (r *recordingRunner) ExecuteSync(_ context.Context, argv []string) error {
	r.calls = append(r.calls, append([]string{}, argv...))
	if r.fail {
		return &domain.ToolchainError{Argv: argv, ExitCode: 1}
	}
	return nil
}

func (r *recordingRunner) ExecuteSyncGetOutput(_ context.Context, argv []string) (ports.ChildResult, error) {
	r.calls = append(r.calls, append([]string{}, argv...))
	return ports.ChildResult{}, nil
}

func (r *recordingRunner) ExecuteSyncGetOutputTimeout(
	_ context.Context, argv []string, _ int,
) (ports.ChildResult, error) {
	r.calls = append(r.calls, append([]string{}, argv...))
	return ports.ChildResult{}, nil
}

type noopSpan struct{}

func (noopSpan) SetAttribute(string, any) {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) End()                     {}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopVertex struct{}

func (noopVertex) Write(p []byte) (int, error)  { return len(p), nil }
func (noopVertex) Log(domain.LogLevel, string)  {}
func (noopVertex) Cached()                      {}
func (noopVertex) Complete(error)               {}

type noopRecorder struct{}

func (noopRecorder) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}
func (noopRecorder) Close() error { return nil }

type noopLogger struct{}

func (noopLogger) Info(string, ...any)         {}
func (noopLogger) Warn(string, ...any)         {}
func (noopLogger) Error(error, string, ...any) {}

func newTestDriver(t *testing.T, dir string) (*build.Driver, *recordingRunner) {
	t.Helper()
	config := domain.NewBuildConfig(domain.BuildConfigParams{
		BuildDir: filepath.Join(dir, "build"),
		CC:       []string{"gcc"},
		LD:       []string{"gcc"},
		AR:       []string{"ar"},
		ObjExt:   ".o",
		LibExt:   ".a",
		ExecExt:  "",
	})
	buildCtx := domain.NewBuildContext()
	fileOps := fs.New(buildCtx)
	runner := &recordingRunner{}
	drv := build.NewDriver(
		config, buildCtx, fileOps, build.NewScanner(buildCtx, fileOps),
		runner, noopTracer{}, noopRecorder{}, noopLogger{},
	)
	return drv, runner
}

func TestDriver_BuildSource_CompilesAndCaches(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.c")
	require.NoError(t, os.WriteFile(src, []byte("int main(void) { return 0; }\n"), 0o644))

	drv, runner := newTestDriver(t, dir)

	obj, err := drv.BuildSource(context.Background(), src, domain.Deps())
	require.NoError(t, err)
	require.Contains(t, obj, "obj")
	require.Len(t, runner.calls, 1)

	// The fake runner never actually produces obj on disk, so create it by
	// hand with a timestamp newer than src to exercise the cache-hit path.
	require.NoError(t, os.WriteFile(obj, []byte("placeholder-object"), 0o644))

	obj2, err := drv.BuildSource(context.Background(), src, domain.Deps())
	require.NoError(t, err)
	require.Equal(t, obj, obj2)
	require.Len(t, runner.calls, 1, "up-to-date object should not recompile")
}

func TestDriver_BuildSource_RejectsNonCSource(t *testing.T) {
	dir := t.TempDir()
	drv, _ := newTestDriver(t, dir)

	_, err := drv.BuildSource(context.Background(), filepath.Join(dir, "main.s"), domain.Deps())
	require.Error(t, err)
}

func TestDriver_BuildLibrary_ArchivesAllSources(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.c")
	b := filepath.Join(dir, "b.c")
	require.NoError(t, os.WriteFile(a, []byte("void a(void) {}\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("void b(void) {}\n"), 0o644))

	drv, runner := newTestDriver(t, dir)

	archive, err := drv.BuildLibrary(context.Background(), "libfoo", []string{a, b}, domain.Deps())
	require.NoError(t, err)
	require.Contains(t, archive, "lib")
	// Two compiles plus one archive invocation.
	require.Len(t, runner.calls, 3)
}

func TestDriver_BuildExecutable_LinksObjects(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "main.o")
	require.NoError(t, os.WriteFile(obj, []byte("obj"), 0o644))

	drv, runner := newTestDriver(t, dir)

	exe, err := drv.BuildExecutable(context.Background(), "app", []string{obj}, domain.Deps())
	require.NoError(t, err)
	require.Contains(t, exe, "bin")
	require.Len(t, runner.calls, 1)
}

func TestDriver_BuildExecutable_PropagatesToolchainFailure(t *testing.T) {
	dir := t.TempDir()
	obj := filepath.Join(dir, "main.o")
	require.NoError(t, os.WriteFile(obj, []byte("obj"), 0o644))

	drv, runner := newTestDriver(t, dir)
	runner.fail = true

	_, err := drv.BuildExecutable(context.Background(), "app", []string{obj}, domain.Deps())
	require.Error(t, err)
}
