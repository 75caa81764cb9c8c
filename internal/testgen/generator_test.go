package testgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/testgen"
)

func newGenerator() (*testgen.Generator, func(t *testing.T, path string) string) {
	ctx := domain.NewBuildContext()
	gen := testgen.New(fs.New(ctx))
	read := func(t *testing.T, path string) string {
		t.Helper()
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(data)
	}
	return gen, read
}

func TestGenerator_ProcessFile_BasicGroupAndCase(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "test_add.c")
	require.NoError(t, os.WriteFile(src, []byte(
		"#include \"unity_fixture.h\"\n"+
			"TEST_GROUP(g);\n"+
			"TEST_SETUP(g) {}\n"+
			"TEST_TEAR_DOWN(g) {}\n"+
			"TEST(g, t) {}\n",
	), 0o644))

	gen, read := newGenerator()
	groups := domain.NewTestGroupSet()

	runner, err := gen.ProcessFile(src, 0, groups)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "runner", "test_add_runner.c"), runner)

	want := "/* AUTOGENERATED FILE. DO NOT EDIT. */\n" +
		"#include \"unity_fixture.h\"\n" +
		"\n" +
		"TEST_GROUP_RUNNER(g) {\n" +
		"    RUN_TEST_CASE(g, t); /* TEST_g_t_ */\n" +
		"}\n"
	require.Equal(t, want, read(t, runner))
	require.Equal(t, []string{"g"}, groups.Names())
}

func TestGenerator_ProcessFile_CommentedTestIsIgnored(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "test_add.c")
	require.NoError(t, os.WriteFile(src, []byte(
		"TEST_GROUP(g);\n"+
			"// TEST(g, t) {}\n"+
			"/* TEST(g, u) {} */\n",
	), 0o644))

	gen, read := newGenerator()
	groups := domain.NewTestGroupSet()

	runner, err := gen.ProcessFile(src, 0, groups)
	require.NoError(t, err)

	want := "/* AUTOGENERATED FILE. DO NOT EDIT. */\n" +
		"\n" +
		"TEST_GROUP_RUNNER(g) {\n" +
		"}\n"
	require.Equal(t, want, read(t, runner))
}

func TestGenerator_ProcessFile_ClosesGroupOnNewGroupWithNoIntervening(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "test_two.c")
	require.NoError(t, os.WriteFile(src, []byte(
		"TEST_GROUP(A);\n"+
			"TEST_GROUP(B);\n"+
			"TEST(B, only) {}\n",
	), 0o644))

	gen, read := newGenerator()
	groups := domain.NewTestGroupSet()

	runner, err := gen.ProcessFile(src, 0, groups)
	require.NoError(t, err)

	want := "/* AUTOGENERATED FILE. DO NOT EDIT. */\n" +
		"\n" +
		"TEST_GROUP_RUNNER(A) {\n" +
		"}\n" +
		"\n" +
		"TEST_GROUP_RUNNER(B) {\n" +
		"    RUN_TEST_CASE(B, only); /* TEST_B_only_ */\n" +
		"}\n"
	require.Equal(t, want, read(t, runner))
	require.Equal(t, []string{"A", "B"}, groups.Names())
}

func TestGenerator_ProcessFile_PreservesConditionalDirectivesInOrder(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "test_cond.c")
	require.NoError(t, os.WriteFile(src, []byte(
		"TEST_GROUP(g);\n"+
			"#ifdef FEATURE_X\n"+
			"TEST(g, enabled) {}\n"+
			"#endif\n",
	), 0o644))

	gen, read := newGenerator()
	groups := domain.NewTestGroupSet()

	runner, err := gen.ProcessFile(src, 0, groups)
	require.NoError(t, err)

	want := "/* AUTOGENERATED FILE. DO NOT EDIT. */\n" +
		"\n" +
		"TEST_GROUP_RUNNER(g) {\n" +
		"#ifdef FEATURE_X\n" +
		"    RUN_TEST_CASE(g, enabled); /* TEST_g_enabled_ */\n" +
		"#endif\n" +
		"}\n"
	require.Equal(t, want, read(t, runner))
}

func TestGenerator_ProcessFile_IdempotentRewriteLeavesMTimeUnchanged(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "test_add.c")
	require.NoError(t, os.WriteFile(src, []byte("TEST_GROUP(g);\nTEST(g, t) {}\n"), 0o644))

	gen, _ := newGenerator()
	groups := domain.NewTestGroupSet()

	runner, err := gen.ProcessFile(src, 0, groups)
	require.NoError(t, err)

	before, err := os.Stat(runner)
	require.NoError(t, err)

	groups2 := domain.NewTestGroupSet()
	_, err = gen.ProcessFile(src, 0, groups2)
	require.NoError(t, err)

	after, err := os.Stat(runner)
	require.NoError(t, err)
	require.Equal(t, before.ModTime(), after.ModTime())
}

func TestGenerator_ProcessFile_RejectsFileExceedingReadLimit(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "test_add.c")
	require.NoError(t, os.WriteFile(src, []byte("TEST_GROUP(g);\nTEST(g, t) {}\n"), 0o644))

	gen, _ := newGenerator()
	groups := domain.NewTestGroupSet()

	_, err := gen.ProcessFile(src, 4, groups)
	require.ErrorIs(t, err, domain.ErrFileTooBig)
}

func TestGenerator_WriteAggregate_ListsGroupsOnce(t *testing.T) {
	dir := t.TempDir()
	gen, read := newGenerator()

	groups := domain.NewTestGroupSet()
	groups.Add("suite_a")
	groups.Add("suite_b")

	out := filepath.Join(dir, "all_tests.c")
	require.NoError(t, gen.WriteAggregate(out, groups))

	want := "/* AUTOGENERATED FILE. DO NOT EDIT. */\n" +
		"#include \"unity_fixture.h\"\n" +
		"\n" +
		"void run_all_tests(void) {\n" +
		"    RUN_TEST_GROUP(suite_a);\n" +
		"    RUN_TEST_GROUP(suite_b);\n" +
		"}\n"
	require.Equal(t, want, read(t, out))
}
