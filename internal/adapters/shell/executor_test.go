package shell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/core/domain"
)

type nullLogger struct{}

func (nullLogger) Info(string, ...any)          {}
func (nullLogger) Warn(string, ...any)          {}
func (nullLogger) Error(error, string, ...any)  {}

func TestRunner_ExecuteSync_Success(t *testing.T) {
	r := shell.New(nullLogger{})
	err := r.ExecuteSync(context.Background(), []string{"true"})
	require.NoError(t, err)
}

func TestRunner_ExecuteSync_Failure(t *testing.T) {
	r := shell.New(nullLogger{})
	err := r.ExecuteSync(context.Background(), []string{"false"})
	require.Error(t, err)
}

func TestRunner_ExecuteSyncGetOutput(t *testing.T) {
	r := shell.New(nullLogger{})
	result, err := r.ExecuteSyncGetOutput(context.Background(), []string{"echo", "hi"})
	require.NoError(t, err)
	require.Contains(t, string(result.Stdout), "hi")
}

func TestRunner_ExecuteSyncGetOutputTimeout_Kills(t *testing.T) {
	r := shell.New(nullLogger{})
	result, err := r.ExecuteSyncGetOutputTimeout(context.Background(), []string{"sleep", "5"}, 1)
	require.NoError(t, err)
	require.True(t, result.Killed)
}

func TestRunner_ExecuteSyncGetOutputTimeout_CompletesInTime(t *testing.T) {
	r := shell.New(nullLogger{})
	result, err := r.ExecuteSyncGetOutputTimeout(context.Background(), []string{"echo", "fast"}, 5)
	require.NoError(t, err)
	require.False(t, result.Killed)
	require.Contains(t, string(result.Stdout), "fast")
}

func TestRunner_ExecuteSync_ToolNotFoundOnPath(t *testing.T) {
	r := shell.New(nullLogger{})
	err := r.ExecuteSync(context.Background(), []string{"kiln-nonexistent-toolchain-binary"})
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestArgvBuilder(t *testing.T) {
	b := shell.NewArgvBuilder("gcc", "-c").Append("-o", "out.o", "in.c")
	require.Equal(t, []string{"gcc", "-c", "-o", "out.o", "in.c"}, b.Build())
}
