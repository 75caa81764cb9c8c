package build_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanner_Dependencies_Transitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "include", "b.h"), "#include \"c.h\"\nint b;")
	writeFile(t, filepath.Join(dir, "include", "c.h"), "int c;")
	writeFile(t, filepath.Join(dir, "src", "a.c"), "#include \"b.h\"\nint a;")

	cfg := domain.NewBuildConfig(domain.BuildConfigParams{
		IncludeDirs: []string{"-I" + filepath.Join(dir, "include")},
	})

	buildCtx := domain.NewBuildContext()
	scanner := build.NewScanner(buildCtx, fs.New(buildCtx))
	src := filepath.Join(dir, "src", "a.c")
	deps, err := scanner.Dependencies(cfg, src, src)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "include", "b.h"),
		filepath.Join(dir, "include", "c.h"),
	}, deps)
}

func TestScanner_Dependencies_UnresolvedIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "a.c"), "#include \"missing.h\"\nint a;")

	cfg := domain.NewBuildConfig(domain.BuildConfigParams{})
	buildCtx := domain.NewBuildContext()
	scanner := build.NewScanner(buildCtx, fs.New(buildCtx))
	src := filepath.Join(dir, "src", "a.c")

	deps, err := scanner.Dependencies(cfg, src, src)
	require.NoError(t, err)
	require.Empty(t, deps)
}

func TestScanner_Dependencies_DedupesDiamond(t *testing.T) {
	dir := t.TempDir()
	inc := filepath.Join(dir, "include")
	writeFile(t, filepath.Join(inc, "shared.h"), "int shared;")
	writeFile(t, filepath.Join(inc, "left.h"), "#include \"shared.h\"\nint left;")
	writeFile(t, filepath.Join(inc, "right.h"), "#include \"shared.h\"\nint right;")
	writeFile(t, filepath.Join(dir, "src", "a.c"), "#include \"left.h\"\n#include \"right.h\"\nint a;")

	cfg := domain.NewBuildConfig(domain.BuildConfigParams{IncludeDirs: []string{"-I" + inc}})
	buildCtx := domain.NewBuildContext()
	scanner := build.NewScanner(buildCtx, fs.New(buildCtx))
	src := filepath.Join(dir, "src", "a.c")

	deps, err := scanner.Dependencies(cfg, src, src)
	require.NoError(t, err)

	count := 0
	for _, d := range deps {
		if d == filepath.Join(inc, "shared.h") {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestScanner_Dependencies_MemoizedOnSecondCall(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "a.c"), "int a;")

	cfg := domain.NewBuildConfig(domain.BuildConfigParams{})
	ctx := domain.NewBuildContext()
	scanner := build.NewScanner(ctx, fs.New(ctx))
	src := filepath.Join(dir, "src", "a.c")

	_, err := scanner.Dependencies(cfg, src, src)
	require.NoError(t, err)
	require.True(t, ctx.IncludedDeps.Contains(src))

	statsBefore := ctx.IncludedDeps.Stats()
	_, err = scanner.Dependencies(cfg, src, src)
	require.NoError(t, err)
	statsAfter := ctx.IncludedDeps.Stats()
	require.Equal(t, statsBefore.Hits+1, statsAfter.Hits)
}

func TestScanner_Dependencies_RejectsFileExceedingReadLimit(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src", "a.c")
	writeFile(t, src, "#include \"b.h\"\nint a;")

	cfg := domain.NewBuildConfig(domain.BuildConfigParams{ReadLimit: 4})
	buildCtx := domain.NewBuildContext()
	scanner := build.NewScanner(buildCtx, fs.New(buildCtx))

	_, err := scanner.Dependencies(cfg, src, src)
	require.ErrorIs(t, err, domain.ErrFileTooBig)
}
